package kb

// DefaultTaxonomy is used when the document omits components_taxonomy.
// Order matters: it fixes the axis order of every component vector.
var DefaultTaxonomy = []string{
	"inhibition",
	"working-memory",
	"cognitive-flexibility",
	"goal-setting",
	"self-monitoring",
	"emotion-regulation",
}

// Strength levels for construct components. Categorical labels in the
// document resolve to these; numeric values 0-3 pass through unchanged.
const (
	StrengthNone   = 0
	StrengthLow    = 1
	StrengthMedium = 2
	StrengthStrong = 3
)

// Construct is one entry of the constructs collection, fully resolved at
// load time so accessors never re-check for absent or mistyped fields.
type Construct struct {
	Key        string
	Label      string
	Synonyms   []string
	Definition string

	// Components maps taxonomy dimension -> resolved strength (0-3).
	// RawComponents preserves the author's original spelling ("strong",
	// "2", ...) for card rendering.
	Components    map[string]int
	RawComponents map[string]string

	Theories         []string
	Mechanisms       []string
	ExemplarOutcomes []string
	Interventions    []Intervention
	Measures         []Measure
	Citations        []string
	Notes            string
}

// Intervention is a named manipulation with the components it targets.
type Intervention struct {
	Name             string
	TargetComponents []string
	Strength         string
}

// Measure is one instrument or task associated with a construct.
type Measure struct {
	Name    string
	Type    string
	Targets []string
	Notes   string
}

// ComparisonModel is a theoretical framework characterized along a fixed
// set of descriptive dimensions. Distinct from a Construct.
type ComparisonModel struct {
	Key        string
	Label      string
	Domain     string
	Dimensions map[string]string
	KeyPapers  []string
}

// ModelDimensions is the fixed dimension order used by the comparison
// table. Models may describe only a subset; absent cells render as
// Placeholder.
var ModelDimensions = []string{
	"level of analysis",
	"conflict",
	"emotion role",
	"cognitive function",
}

// Placeholder marks an absent value in tabular projections.
const Placeholder = "—"

// DomainAll is the sentinel domain that matches every model.
const DomainAll = "all"

// MeasureRow is one flattened row of the measures table: one measure of
// one selected construct.
type MeasureRow struct {
	ConstructLabel string
	Measure        string
	Type           string
	Targets        string
	Notes          string
}

// DimensionTable is the model-comparison projection: one row per
// dimension, one value column per selected model.
type DimensionTable struct {
	Dimensions []string   // row labels, in requested order
	ModelKeys  []string   // column keys, in requested order
	Labels     []string   // column headers (model labels)
	Cells      [][]string // Cells[i][j] = value of Dimensions[i] for ModelKeys[j]
}
