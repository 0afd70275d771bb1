package tools

// Tool name prefix for all MCP tools
const ToolPrefix = "quickchart."

// Tool names
const (
	ToolGenerateChart  = ToolPrefix + "generate_chart"
	ToolDownloadChart  = ToolPrefix + "download_chart"
	ToolCreateChartURL = ToolPrefix + "create_chart_url"
	ToolListChartTypes = ToolPrefix + "list_chart_types"
)
