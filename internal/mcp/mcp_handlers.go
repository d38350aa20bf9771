package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/crawlscore/crawlscore/core"
	"github.com/crawlscore/crawlscore/internal/contract"
	"github.com/crawlscore/crawlscore/internal/loader"
	"github.com/crawlscore/crawlscore/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleScoreCrawl(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := request.GetString("path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}

	cfg := h.baseCfg.Clone()
	overrides := map[schema.Category]float64{
		schema.ContentCategory:   request.GetFloat("content_weight", -1),
		schema.TechnicalCategory: request.GetFloat("technical_weight", -1),
		schema.UXCategory:        request.GetFloat("ux_weight", -1),
	}
	for cat, w := range overrides {
		if w >= 0 {
			cfg.Weights[cat] = w
		}
	}

	ds, err := loader.LoadFile(path, cfg.MaxRows)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading failed: %v", err)), nil
	}
	result, err := core.ScoreDataset(cfg, ds)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleBatchScoreCrawls(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := request.GetString("paths", "")
	if strings.TrimSpace(raw) == "" {
		return mcp.NewToolResultError("paths is required"), nil
	}

	cfg := h.baseCfg.Clone()
	var inputs []core.BatchInput
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		ds, err := loader.LoadFile(p, cfg.MaxRows)
		inputs = append(inputs, core.BatchInput{FileID: p, Dataset: ds, LoadErr: err})
	}
	if len(inputs) == 0 {
		return mcp.NewToolResultError("paths contained no files"), nil
	}

	batch := core.RunBatch(cfg, inputs)
	jsonData, _ := json.MarshalIndent(batch, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListMetrics(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type metricEntry struct {
		ID             string          `json:"id"`
		Category       schema.Category `json:"category"`
		Columns        []string        `json:"columns"`
		AlertThreshold int             `json:"alert_threshold"`
		Weakness       string          `json:"weakness"`
	}

	var entries []metricEntry
	for _, def := range core.Catalog() {
		columns := def.Required
		if len(def.AnyOf) > 0 {
			columns = def.AnyOf
		}
		entries = append(entries, metricEntry{
			ID:             def.ID,
			Category:       def.Category,
			Columns:        columns,
			AlertThreshold: def.AlertThreshold,
			Weakness:       def.Weakness,
		})
	}

	jsonData, _ := json.MarshalIndent(entries, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
