package results

// ChartTypesResult represents the JSON structure for the chart type listing
type ChartTypesResult struct {
	Count int              `json:"count"`
	Types []ChartTypeEntry `json:"types"`
}

// ChartTypeEntry represents a single supported chart type
type ChartTypeEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
