package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"trendscope/core"
	"trendscope/internal/contract"
	"trendscope/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

// configForRequest applies the common request arguments onto a config clone.
func (h *toolHandler) configForRequest(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()

	if p := request.GetString("input_path", ""); p != "" {
		cfg.InputPath = p
	}
	if cfg.InputPath == "" {
		return nil, fmt.Errorf("input_path is required")
	}
	if k := request.GetString("keywords", ""); k != "" {
		cfg.Keywords = nil
		for part := range strings.SplitSeq(k, ",") {
			trimmed := strings.TrimSpace(part)
			if trimmed != "" {
				cfg.Keywords = append(cfg.Keywords, trimmed)
			}
		}
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	return cfg, nil
}

func (h *toolHandler) handleScoreKeywords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid scoring parameters: %v", err)), nil
	}

	ranked, _, err := core.GetKeywordReports(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(ranked, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSeasonality(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid scoring parameters: %v", err)), nil
	}

	ranked, _, err := core.GetKeywordReports(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	type seasonalityResult struct {
		Keyword string `json:"keyword"`
		schema.SeasonalityProfile
	}
	profiles := make([]seasonalityResult, len(ranked))
	for i, r := range ranked {
		profiles[i] = seasonalityResult{
			Keyword:            r.Keyword,
			SeasonalityProfile: r.Seasonality,
		}
	}

	jsonData, _ := json.MarshalIndent(profiles, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetOpportunityMatrix(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid scoring parameters: %v", err)), nil
	}

	ranked, _, err := core.GetKeywordReports(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	type matrixEntry struct {
		Keyword        string  `json:"keyword"`
		TrendScore     int     `json:"trend_score"`
		PotentialScore int     `json:"potential_score"`
		Combined       float64 `json:"combined"`
		Lifecycle      string  `json:"lifecycle"`
	}
	matrix := make(map[string][]matrixEntry)
	for _, r := range ranked {
		matrix[string(r.Opportunity)] = append(matrix[string(r.Opportunity)], matrixEntry{
			Keyword:        r.Keyword,
			TrendScore:     r.Trend.Score,
			PotentialScore: r.Potential.Score,
			Combined:       r.Combined,
			Lifecycle:      string(r.Lifecycle),
		})
	}

	jsonData, _ := json.MarshalIndent(matrix, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
