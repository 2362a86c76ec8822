// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"trendscope/internal/contract"
)

// NewMCPServer initializes and configures the Trendscope MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Trendscope Scoring Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: score_keywords ---
	s.AddTool(mcp.NewTool("score_keywords",
		mcp.WithDescription("Score keyword search-interest series and rank them by combined trend and potential."),
		mcp.WithString("input_path", mcp.Description("Path to a keyword series file or directory (.json or .csv)."), mcp.Required()),
		mcp.WithString("keywords", mcp.Description("Comma-separated keyword filter (case-insensitive substring match).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleScoreKeywords)

	// --- 2. Tool: get_seasonality ---
	s.AddTool(mcp.NewTool("get_seasonality",
		mcp.WithDescription("Detect recurring seasonal demand patterns and forecast the next peak per keyword."),
		mcp.WithString("input_path", mcp.Description("Path to a keyword series file or directory (.json or .csv)."), mcp.Required()),
		mcp.WithString("keywords", mcp.Description("Comma-separated keyword filter (case-insensitive substring match).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetSeasonality)

	// --- 3. Tool: get_opportunity_matrix ---
	s.AddTool(mcp.NewTool("get_opportunity_matrix",
		mcp.WithDescription("Group scored keywords into opportunity quadrants (Star, Emerging, Established, Niche)."),
		mcp.WithString("input_path", mcp.Description("Path to a keyword series file or directory (.json or .csv)."), mcp.Required()),
		mcp.WithString("keywords", mcp.Description("Comma-separated keyword filter (case-insensitive substring match).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetOpportunityMatrix)

	return s
}

// StartMCPServer starts the Trendscope MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
