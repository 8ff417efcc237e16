package main

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"movielib/internal/catalog"
	"movielib/internal/catalogfile"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(toRow(headers, columns))
	for _, row := range rows {
		tw.AppendRow(toRow(row, columns))
	}

	configs := make([]table.ColumnConfig, columns)
	for i := range configs {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft}
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// toRow pads or truncates cells to exactly width columns.
func toRow(cells []string, width int) table.Row {
	row := make(table.Row, width)
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = ""
		}
	}
	return row
}

func renderMovieTable(movies []catalog.Movie) string {
	rows := make([][]string, 0, len(movies))
	for i, movie := range movies {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			movie.Title(),
			strconv.Itoa(movie.Year()),
			movie.Director(),
			catalogfile.FormatRating(movie.Rating()),
		})
	}
	return renderTable(
		[]string{"#", "Title", "Year", "Director", "Rating"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignRight},
	)
}

func renderMovieDetail(movie catalog.Movie) string {
	rows := [][]string{
		{"Title", movie.Title()},
		{"Year", strconv.Itoa(movie.Year())},
		{"Director", movie.Director()},
		{"Actors", joinActors(movie.Actors())},
		{"Rating", catalogfile.FormatRating(movie.Rating())},
	}
	return renderTable([]string{"Field", "Value"}, rows, nil)
}

func joinActors(actors []string) string {
	return strings.Join(actors, catalogfile.ActorDelimiter)
}
