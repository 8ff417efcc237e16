package catalog

// AddResult reports the outcome of Library.Add.
type AddResult int

const (
	// Added means the movie was appended as the last element.
	Added AddResult = iota
	// DuplicateExists means a movie with the same title and year is already present.
	DuplicateExists
)

func (r AddResult) String() string {
	switch r {
	case Added:
		return "added"
	case DuplicateExists:
		return "duplicate_exists"
	default:
		return "unknown"
	}
}

// RemoveResult reports the outcome of Library.Remove.
type RemoveResult int

const (
	// Removed means exactly one matching movie was taken out.
	Removed RemoveResult = iota
	// NotFound means no movie matched title and year.
	NotFound
)

func (r RemoveResult) String() string {
	switch r {
	case Removed:
		return "removed"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
