package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/andareed/modalstate/dialogs"
	"github.com/andareed/modalstate/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type tableRow struct {
	cells         []string
	originalIndex int // row number in the source file, 1-based
}

type table struct {
	header []ColumnMeta
	rows   []tableRow
}

func loadCSVFile(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV %q has no rows", path)
	}
	return newTable(records), nil
}

// newTable builds a table from CSV records; the first record is the header.
func newTable(records [][]string) *table {
	cols := make([]ColumnMeta, len(records[0]))
	for i, name := range records[0] {
		cols[i] = newColumn(name, i)
	}

	rows := make([]tableRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		rows = append(rows, tableRow{cells: rec, originalIndex: i + 1})
	}

	hideEmptyColumns(cols, rows)
	logging.Debugf("table: %d columns, %d rows", len(cols), len(rows))
	return &table{header: cols, rows: rows}
}

// record is the dialog payload for row i: every column, hidden ones included.
func (t *table) record(i int) dialogs.Record {
	r := t.rows[i]
	fields := make([]dialogs.Field, len(t.header))
	for c, col := range t.header {
		var v string
		if col.Index < len(r.cells) {
			v = r.cells[col.Index]
		}
		fields[c] = dialogs.Field{Name: col.Name, Value: v}
	}
	return dialogs.Record{Index: r.originalIndex, Fields: fields}
}

func (t *table) renderHeader() string {
	var cells []string
	for _, col := range t.header {
		if !col.Visible || col.Width <= 0 {
			continue
		}
		cells = append(cells, headerCellStyle.Width(col.Width).Render(fit(col.Name, col.Width)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (t *table) renderRow(i int, selected bool) string {
	style := rowTextStyle
	if selected {
		style = rowSelectedStyle
	}
	r := t.rows[i]
	var cells []string
	for _, col := range t.header {
		if !col.Visible || col.Width <= 0 {
			continue
		}
		var text string
		if col.Index < len(r.cells) {
			text = r.cells[col.Index]
		}
		cells = append(cells, style.Width(col.Width).Render(fit(text, col.Width)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// fit keeps a cell on one line within width, leaving room for cell padding.
func fit(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	w := width - 2
	if w <= 0 {
		return ""
	}
	return truncate.StringWithTail(s, uint(w), "…")
}
