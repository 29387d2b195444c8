package output

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Estimates only; not a tax-compliant or authoritative pension calculation",
	"FERS COLA follows the diet COLA rule and starts at age 62 (default inflation 2.5%)",
	"CalPERS COLA compounds at a flat 2% a year",
	"FIRE projections assume a constant annual return and stop after 50 years",
	"Monetary figures are rounded to whole dollars for display",
}
