package chart

// defaultPalette holds the fallback series colors, applied when a dataset
// does not specify its own. Matches the QuickChart default look.
var defaultPalette = []string{
	"rgba(54, 162, 235, 0.5)",
	"rgba(255, 99, 132, 0.5)",
	"rgba(255, 159, 64, 0.5)",
	"rgba(75, 192, 192, 0.5)",
	"rgba(153, 102, 255, 0.5)",
	"rgba(255, 205, 86, 0.5)",
	"rgba(201, 203, 207, 0.5)",
}

// applyPalette fills in default colors for datasets that have none.
// Segment-colored charts get a per-element color array; series charts
// get one color per dataset.
func applyPalette(t Type, datasets []Dataset) {
	for i := range datasets {
		if datasets[i].BackgroundColor != nil {
			continue
		}
		if t.UsesSegmentColors() {
			colors := make([]string, len(datasets[i].Data))
			for j := range colors {
				colors[j] = defaultPalette[j%len(defaultPalette)]
			}
			datasets[i].BackgroundColor = colors
		} else {
			datasets[i].BackgroundColor = defaultPalette[i%len(defaultPalette)]
		}
	}
}
