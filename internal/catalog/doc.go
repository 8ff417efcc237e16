// Package catalog holds the in-memory movie library and its query and
// mutation operations.
//
// Movie is an immutable value; Library is an ordered collection that keeps
// insertion order for every listing. Lookups that serve people (FindByTitle)
// compare titles case-insensitively after trimming, while identity checks
// (Add, Remove) compare title and year exactly. Actor lookups are exact.
//
// A Library is not safe for concurrent mutation. Callers that share one must
// serialize Add, Remove, and Replace behind a single writer; reads may run
// together but never alongside a mutation.
package catalog
