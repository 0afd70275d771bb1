package project

// Name is the MCP server name reported to clients
const Name = "quickchart-mcp"

// Version is the MCP server version reported to clients
const Version = "0.2.0"
