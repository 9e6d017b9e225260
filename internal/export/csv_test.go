package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/milaivanova-cpu/construct-atlas/internal/kb"
)

func sampleTable() kb.DimensionTable {
	return kb.DimensionTable{
		Dimensions: []string{"level of analysis", "conflict"},
		ModelKeys:  []string{"dual-systems", "srl-cycle"},
		Labels:     []string{"Dual Systems", "SRL Cycle"},
		Cells: [][]string{
			{"neural systems", "learning episode"},
			{"impulse vs control", kb.Placeholder},
		},
	}
}

func TestWriteDimensionTable_RoundTrip(t *testing.T) {
	var sb strings.Builder
	if err := WriteDimensionTable(&sb, sampleTable()); err != nil {
		t.Fatalf("WriteDimensionTable failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(sb.String())).ReadAll()
	if err != nil {
		t.Fatalf("re-parsing csv failed: %v", err)
	}

	want := [][]string{
		{"Dimension", "Dual Systems", "SRL Cycle"},
		{"level of analysis", "neural systems", "learning episode"},
		{"conflict", "impulse vs control", kb.Placeholder},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("csv round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteDimensionTable_EmptyColumns(t *testing.T) {
	table := kb.DimensionTable{
		Dimensions: []string{"conflict"},
		Cells:      [][]string{{}},
	}
	var sb strings.Builder
	if err := WriteDimensionTable(&sb, table); err != nil {
		t.Fatalf("WriteDimensionTable failed: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(sb.String())).ReadAll()
	if err != nil {
		t.Fatalf("re-parsing csv failed: %v", err)
	}
	want := [][]string{{"Dimension"}, {"conflict"}}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("csv mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderDimensionTable(t *testing.T) {
	text, err := RenderDimensionTable(sampleTable())
	if err != nil {
		t.Fatalf("RenderDimensionTable failed: %v", err)
	}
	if !strings.HasPrefix(text, "Dimension,Dual Systems,SRL Cycle\n") {
		t.Errorf("unexpected csv header: %q", text)
	}
}

func TestWriteMeasureRows(t *testing.T) {
	rows := []kb.MeasureRow{
		{ConstructLabel: "Self-Control", Measure: "BSCS", Type: "self-report", Targets: "adults, adolescents", Notes: "13 items"},
	}
	var sb strings.Builder
	if err := WriteMeasureRows(&sb, rows); err != nil {
		t.Fatalf("WriteMeasureRows failed: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(sb.String())).ReadAll()
	if err != nil {
		t.Fatalf("re-parsing csv failed: %v", err)
	}
	want := [][]string{
		MeasureHeader,
		{"Self-Control", "BSCS", "self-report", "adults, adolescents", "13 items"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("csv mismatch (-want +got):\n%s", diff)
	}
}
