package chart

import "strings"

// Type represents the chart type as an enum
type Type string

const (
	TypeBar           Type = "bar"
	TypeHorizontalBar Type = "horizontalBar"
	TypeLine          Type = "line"
	TypePie           Type = "pie"
	TypeDoughnut      Type = "doughnut"
	TypeRadar         Type = "radar"
	TypePolarArea     Type = "polarArea"
	TypeScatter       Type = "scatter"
	TypeBubble        Type = "bubble"
	TypeRadialGauge   Type = "radialGauge"
	TypeSparkline     Type = "sparkline"
	TypeProgressBar   Type = "progressBar"
	TypeUnknown       Type = "unknown"
)

// typeAliases maps normalized user input to chart types.
// QuickChart expects the camelCase names on the wire.
var typeAliases = map[string]Type{
	"bar":            TypeBar,
	"horizontalbar":  TypeHorizontalBar,
	"horizontal-bar": TypeHorizontalBar,
	"horizontal_bar": TypeHorizontalBar,
	"line":           TypeLine,
	"pie":            TypePie,
	"doughnut":       TypeDoughnut,
	"donut":          TypeDoughnut,
	"radar":          TypeRadar,
	"polararea":      TypePolarArea,
	"polar-area":     TypePolarArea,
	"polar_area":     TypePolarArea,
	"scatter":        TypeScatter,
	"bubble":         TypeBubble,
	"radialgauge":    TypeRadialGauge,
	"radial-gauge":   TypeRadialGauge,
	"radial_gauge":   TypeRadialGauge,
	"gauge":          TypeRadialGauge,
	"sparkline":      TypeSparkline,
	"progressbar":    TypeProgressBar,
	"progress-bar":   TypeProgressBar,
	"progress_bar":   TypeProgressBar,
	"progress":       TypeProgressBar,
}

// ParseType converts a user-supplied chart type string to a Type
func ParseType(s string) Type {
	if t, ok := typeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t
	}
	return TypeUnknown
}

// Valid reports whether the type is a supported chart type
func (t Type) Valid() bool {
	return t != TypeUnknown && t != ""
}

// String returns the wire representation of the type
func (t Type) String() string {
	return string(t)
}

// UsesPoints reports whether datasets of this type carry {x, y} point data
// instead of plain numbers.
func (t Type) UsesPoints() bool {
	return t == TypeScatter || t == TypeBubble
}

// UsesSegmentColors reports whether the type colors individual segments,
// so a per-element color array should be applied.
func (t Type) UsesSegmentColors() bool {
	return t == TypePie || t == TypeDoughnut || t == TypePolarArea
}

// Types returns all supported chart types in display order
func Types() []Type {
	return []Type{
		TypeBar,
		TypeHorizontalBar,
		TypeLine,
		TypePie,
		TypeDoughnut,
		TypeRadar,
		TypePolarArea,
		TypeScatter,
		TypeBubble,
		TypeRadialGauge,
		TypeSparkline,
		TypeProgressBar,
	}
}

// TypeDescriptions maps each supported type to a one-line description
var TypeDescriptions = map[Type]string{
	TypeBar:           "Vertical bar chart; requires labels and one or more datasets",
	TypeHorizontalBar: "Horizontal bar chart; requires labels and one or more datasets",
	TypeLine:          "Line chart; requires labels and one or more datasets",
	TypePie:           "Pie chart; one dataset, one value per slice",
	TypeDoughnut:      "Doughnut chart; one dataset, one value per slice",
	TypeRadar:         "Radar chart; requires labels and one or more datasets",
	TypePolarArea:     "Polar area chart; one dataset, one value per segment",
	TypeScatter:       "Scatter plot; datasets of {x, y} points",
	TypeBubble:        "Bubble chart; datasets of {x, y, r} points",
	TypeRadialGauge:   "Radial gauge; single dataset with a single value",
	TypeSparkline:     "Compact line chart without axes or legend",
	TypeProgressBar:   "Horizontal progress bar; single dataset with a single value",
}
