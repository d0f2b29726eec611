// Package csvio parses CSV text into task rows.
package csvio

import (
	"encoding/csv"
	"io"
	"strings"
)

// Row is one logical CSV record after header exclusion and blank-line
// filtering. Cells are positional: 0=title, 1=notes, 2=due.
type Row struct {
	cells []string
}

// NewRow builds a Row from raw cells.
func NewRow(cells ...string) Row {
	return Row{cells: cells}
}

// Title returns the trimmed title cell.
func (r Row) Title() string { return r.cell(0) }

// Notes returns the trimmed notes cell.
func (r Row) Notes() string { return r.cell(1) }

// DueRaw returns the trimmed due cell as written in the CSV.
func (r Row) DueRaw() string { return r.cell(2) }

// Cells returns the raw cells of the row.
func (r Row) Cells() []string { return r.cells }

// cell reads position i, treating missing cells as empty.
func (r Row) cell(i int) string {
	if i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

// Parsed is the result of parsing CSV text.
type Parsed struct {
	// Header holds the header row's cells, or nil if the input
	// carried no header row.
	Header []string

	// Rows holds the data rows in input order.
	Rows []Row
}

// Parse splits csvText into rows using standard CSV quoting rules
// (embedded commas and newlines inside double quotes, doubled quotes
// as escape). It never fails: records that cannot be decoded are
// skipped and blank rows (every cell empty after trim) are dropped.
// A header row is detected when any cell of the first retained row
// equals "title" case-insensitively after trimming; the header is
// excluded from Rows.
func Parse(csvText string) Parsed {
	var out Parsed
	if strings.TrimSpace(csvText) == "" {
		return out
	}

	r := csv.NewReader(strings.NewReader(csvText))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	first := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Best effort: drop the record, keep reading.
			continue
		}
		if isBlank(record) {
			continue
		}
		if first {
			first = false
			if isHeader(record) {
				out.Header = record
				continue
			}
		}
		out.Rows = append(out.Rows, Row{cells: record})
	}
	return out
}

// isBlank reports whether every cell is empty after trimming.
func isBlank(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// isHeader reports whether any cell equals "title" after lowercasing
// and trimming.
func isHeader(record []string) bool {
	for _, c := range record {
		if strings.ToLower(strings.TrimSpace(c)) == "title" {
			return true
		}
	}
	return false
}
