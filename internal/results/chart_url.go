package results

// ChartURLResult represents the JSON structure for chart URL results
type ChartURLResult struct {
	URL       string `json:"url"`
	Short     bool   `json:"short"`
	ChartType string `json:"chart_type"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Format    string `json:"format"`
	Message   string `json:"message"`
}
