package chart

import (
	"encoding/json"
	"fmt"
)

// Dimension bounds accepted by the QuickChart render endpoint.
const (
	MinDimension = 1
	MaxDimension = 3000
)

// Formats supported by the QuickChart render endpoint.
var supportedFormats = map[string]bool{
	"png":  true,
	"webp": true,
	"svg":  true,
	"pdf":  true,
}

// ValidFormat reports whether the output format is supported
func ValidFormat(format string) bool {
	return supportedFormats[format]
}

// Dataset represents a single Chart.js dataset.
// Data elements are numbers, or {x, y} / {x, y, r} objects for point charts.
type Dataset struct {
	Label           string `json:"label,omitempty"`
	Data            []any  `json:"data"`
	BackgroundColor any    `json:"backgroundColor,omitempty"`
	BorderColor     any    `json:"borderColor,omitempty"`
	Fill            *bool  `json:"fill,omitempty"`
}

// Config represents the subset of the Chart.js configuration that the
// server builds from tool arguments.
type Config struct {
	Type     Type
	Labels   []string
	Datasets []Dataset
	Title    string
	Legend   bool
}

// chartJS is the wire form QuickChart expects.
type chartJS struct {
	Type string     `json:"type"`
	Data chartData  `json:"data"`
	Opts *chartOpts `json:"options,omitempty"`
}

type chartData struct {
	Labels   []string  `json:"labels,omitempty"`
	Datasets []Dataset `json:"datasets"`
}

type chartOpts struct {
	Title  *titleOpts  `json:"title,omitempty"`
	Legend *legendOpts `json:"legend,omitempty"`
}

type titleOpts struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

type legendOpts struct {
	Display bool `json:"display"`
}

// Validate checks the config against the constraints of its chart type
func (c *Config) Validate() error {
	if !c.Type.Valid() {
		return fmt.Errorf("unsupported chart type: %q", c.Type)
	}
	if len(c.Datasets) == 0 {
		return fmt.Errorf("at least one dataset is required")
	}
	for i, ds := range c.Datasets {
		if len(ds.Data) == 0 {
			return fmt.Errorf("dataset %d has no data", i)
		}
		for j, v := range ds.Data {
			if err := validateDatum(c.Type, v); err != nil {
				return fmt.Errorf("dataset %d, element %d: %w", i, j, err)
			}
		}
		if err := validateColor(ds.BackgroundColor); err != nil {
			return fmt.Errorf("dataset %d: invalid backgroundColor: %w", i, err)
		}
		if err := validateColor(ds.BorderColor); err != nil {
			return fmt.Errorf("dataset %d: invalid borderColor: %w", i, err)
		}
	}
	// Category charts need a label per data element.
	if needsLabels(c.Type) {
		if len(c.Labels) == 0 {
			return fmt.Errorf("chart type %q requires labels", c.Type)
		}
		for i, ds := range c.Datasets {
			if len(ds.Data) != len(c.Labels) {
				return fmt.Errorf("dataset %d has %d values but %d labels", i, len(ds.Data), len(c.Labels))
			}
		}
	}
	if c.Type == TypeRadialGauge || c.Type == TypeProgressBar {
		if len(c.Datasets) != 1 || len(c.Datasets[0].Data) != 1 {
			return fmt.Errorf("chart type %q requires exactly one dataset with a single value", c.Type)
		}
	}
	return nil
}

func needsLabels(t Type) bool {
	switch t {
	case TypeBar, TypeHorizontalBar, TypeLine, TypePie, TypeDoughnut, TypeRadar, TypePolarArea:
		return true
	}
	return false
}

func validateDatum(t Type, v any) error {
	if t.UsesPoints() {
		point, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("expected an {x, y} point, got %T", v)
		}
		for _, axis := range []string{"x", "y"} {
			if _, ok := toFloat(point[axis]); !ok {
				return fmt.Errorf("point is missing a numeric %q coordinate", axis)
			}
		}
		if t == TypeBubble {
			if _, ok := toFloat(point["r"]); !ok {
				return fmt.Errorf("bubble point is missing a numeric \"r\" radius")
			}
		}
		return nil
	}
	if _, ok := toFloat(v); !ok {
		return fmt.Errorf("expected a number, got %T", v)
	}
	return nil
}

func validateColor(v any) error {
	switch c := v.(type) {
	case nil, string:
		return nil
	case []any:
		for _, e := range c {
			if _, ok := e.(string); !ok {
				return fmt.Errorf("color array element is %T, not a string", e)
			}
		}
		return nil
	case []string:
		return nil
	default:
		return fmt.Errorf("expected a color string or array, got %T", v)
	}
}

// toFloat coerces JSON number representations to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// MarshalJSON serializes the config into the Chart.js shape QuickChart expects
func (c *Config) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	datasets := make([]Dataset, len(c.Datasets))
	copy(datasets, c.Datasets)
	applyPalette(c.Type, datasets)

	wire := chartJS{
		Type: c.Type.String(),
		Data: chartData{
			Labels:   c.Labels,
			Datasets: datasets,
		},
	}
	opts := &chartOpts{}
	if c.Title != "" {
		opts.Title = &titleOpts{Display: true, Text: c.Title}
	}
	if !c.Legend {
		opts.Legend = &legendOpts{Display: false}
	}
	if opts.Title != nil || opts.Legend != nil {
		wire.Opts = opts
	}

	return json.Marshal(wire)
}
