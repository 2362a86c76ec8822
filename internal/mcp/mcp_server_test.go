package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendscope/internal/contract"
	mcp_internal "trendscope/internal/mcp"
	"trendscope/schema"
)

func baseConfig() *contract.Config {
	return &contract.Config{
		ResultLimit: 25,
		Workers:     2,
		Precision:   1,
		Output:      schema.TextOut,
		Params:      schema.DefaultEngineParams(),
	}
}

func writeKeywordFile(t *testing.T) string {
	t.Helper()

	doc := `{
		"keyword": "matcha",
		"points": [
			{"date": "2024-01-01", "value": 20},
			{"date": "2024-02-01", "value": 30},
			{"date": "2024-03-01", "value": 42},
			{"date": "2024-04-01", "value": 55}
		]
	}`
	path := filepath.Join(t.TempDir(), "matcha.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()

	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	var mgr contract.CacheManager
	s := mcp_internal.NewMCPServer(baseConfig(), mgr)

	t.Run("score_keywords missing input_path", func(t *testing.T) {
		res := callTool(t, s, "score_keywords", map[string]any{
			"input_path": "",
		})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "input_path is required")
	})

	t.Run("score_keywords unreadable input", func(t *testing.T) {
		res := callTool(t, s, "score_keywords", map[string]any{
			"input_path": "/nonexistent/keywords.json",
		})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "scoring failed")
	})

	t.Run("get_seasonality missing input_path", func(t *testing.T) {
		res := callTool(t, s, "get_seasonality", map[string]any{})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "input_path is required")
	})
}

func TestMCPServerHandlers_ScoreKeywords(t *testing.T) {
	var mgr contract.CacheManager
	s := mcp_internal.NewMCPServer(baseConfig(), mgr)
	inputPath := writeKeywordFile(t)

	res := callTool(t, s, "score_keywords", map[string]any{
		"input_path": inputPath,
	})
	require.False(t, res.IsError)

	var reports []map[string]any
	text := res.Content[0].(mcp.TextContent).Text
	require.NoError(t, json.Unmarshal([]byte(text), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "matcha", reports[0]["keyword"])
	assert.Contains(t, reports[0], "combined")
	assert.Contains(t, reports[0], "opportunity")
}

func TestMCPServerHandlers_GetSeasonality(t *testing.T) {
	var mgr contract.CacheManager
	s := mcp_internal.NewMCPServer(baseConfig(), mgr)
	inputPath := writeKeywordFile(t)

	res := callTool(t, s, "get_seasonality", map[string]any{
		"input_path": inputPath,
	})
	require.False(t, res.IsError)

	var profiles []map[string]any
	text := res.Content[0].(mcp.TextContent).Text
	require.NoError(t, json.Unmarshal([]byte(text), &profiles))
	require.Len(t, profiles, 1)
	assert.Equal(t, "matcha", profiles[0]["keyword"])
	// Four months of data cannot establish a seasonal pattern
	assert.Equal(t, false, profiles[0]["is_seasonal"])
}

func TestMCPServerHandlers_GetOpportunityMatrix(t *testing.T) {
	var mgr contract.CacheManager
	s := mcp_internal.NewMCPServer(baseConfig(), mgr)
	inputPath := writeKeywordFile(t)

	res := callTool(t, s, "get_opportunity_matrix", map[string]any{
		"input_path": inputPath,
		"keywords":   "matcha",
		"limit":      5.0,
	})
	require.False(t, res.IsError)

	var matrix map[string][]map[string]any
	text := res.Content[0].(mcp.TextContent).Text
	require.NoError(t, json.Unmarshal([]byte(text), &matrix))

	total := 0
	for _, entries := range matrix {
		total += len(entries)
	}
	assert.Equal(t, 1, total)
}
