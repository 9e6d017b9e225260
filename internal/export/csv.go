// Package export writes tabular projections of the knowledge base as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/milaivanova-cpu/construct-atlas/internal/kb"
)

// WriteDimensionTable emits the model-comparison table as UTF-8 CSV: a
// header row ("Dimension" plus one column per model label), then one row
// per dimension. Absent values keep the table's placeholder.
func WriteDimensionTable(w io.Writer, table kb.DimensionTable) error {
	cw := csv.NewWriter(w)
	header := append([]string{"Dimension"}, table.Labels...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for i, dim := range table.Dimensions {
		row := append([]string{dim}, table.Cells[i]...)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %q: %w", dim, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// RenderDimensionTable returns the CSV text of a dimension table, for the
// clipboard path in the browser.
func RenderDimensionTable(table kb.DimensionTable) (string, error) {
	var sb strings.Builder
	if err := WriteDimensionTable(&sb, table); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// MeasureHeader is the header row of the measures CSV.
var MeasureHeader = []string{"Construct", "Measure", "Type", "Targets", "Notes"}

// WriteMeasureRows emits the flattened measures table as UTF-8 CSV.
func WriteMeasureRows(w io.Writer, rows []kb.MeasureRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(MeasureHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{r.ConstructLabel, r.Measure, r.Type, r.Targets, r.Notes}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row for %q: %w", r.Measure, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
