package dialogs

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Field is one named value of a Record.
type Field struct {
	Name  string
	Value string
}

// Record is the payload shown by the Detail and Export dialogs: one row of the
// loaded table with its column names.
type Record struct {
	Index  int // row number in the source, 1-based
	Fields []Field
}

// String joins the values with tabs, which pastes cleanly into spreadsheets.
func (r Record) String() string {
	values := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		values[i] = f.Value
	}
	return strings.Join(values, "\t")
}

// WriteCSV writes a header line and the record's values.
func (r Record) WriteCSV(w io.Writer) error {
	header := make([]string, len(r.Fields))
	values := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		header[i] = f.Name
		values[i] = f.Value
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := cw.Write(values); err != nil {
		return fmt.Errorf("write row %d: %w", r.Index, err)
	}
	cw.Flush()
	return cw.Error()
}
