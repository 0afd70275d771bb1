package results

// DownloadResult represents the JSON structure for chart download results
type DownloadResult struct {
	Path      string `json:"path"`
	Bytes     int    `json:"bytes"`
	ChartType string `json:"chart_type"`
	Format    string `json:"format"`
	Cached    bool   `json:"cached"`
	Message   string `json:"message"`
}
