package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/crawlscore/crawlscore/internal/contract"
	mcp_internal "github.com/crawlscore/crawlscore/internal/mcp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() *contract.Config {
	return &contract.Config{
		Weights: contract.DefaultWeights(),
		Alerts:  map[string]int{},
		Workers: 2,
	}
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	s := mcp_internal.NewMCPServer(baseConfig())
	ctx := context.Background()

	t.Run("score_crawl missing path", func(t *testing.T) {
		tool := s.GetTool("score_crawl")
		require.NotNil(t, tool, "Tool score_crawl should exist")

		res, err := tool.Handler(ctx, callRequest("score_crawl", map[string]any{"path": ""}))
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "path is required")
	})

	t.Run("score_crawl unreadable file", func(t *testing.T) {
		tool := s.GetTool("score_crawl")
		require.NotNil(t, tool)

		res, err := tool.Handler(ctx, callRequest("score_crawl", map[string]any{
			"path": filepath.Join(t.TempDir(), "nope.csv"),
		}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "loading failed")
	})

	t.Run("batch_score_crawls missing paths", func(t *testing.T) {
		tool := s.GetTool("batch_score_crawls")
		require.NotNil(t, tool, "Tool batch_score_crawls should exist")

		res, err := tool.Handler(ctx, callRequest("batch_score_crawls", map[string]any{"paths": "  "}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "paths is required")
	})
}

func TestMCPServerHandlers_Scoring(t *testing.T) {
	s := mcp_internal.NewMCPServer(baseConfig())
	ctx := context.Background()

	export := writeExport(t, "Title 1,Title 1 Length,Status Code\nHome,45,200\nAbout,10,404\n")

	t.Run("score_crawl returns result JSON", func(t *testing.T) {
		tool := s.GetTool("score_crawl")
		require.NotNil(t, tool)

		res, err := tool.Handler(ctx, callRequest("score_crawl", map[string]any{"path": export}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var result struct {
			Score  int    `json:"score"`
			Grade  string `json:"grade"`
			Status string `json:"status"`
		}
		text := res.Content[0].(mcp.TextContent).Text
		require.NoError(t, json.Unmarshal([]byte(text), &result))
		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, 100)
		assert.NotEmpty(t, result.Grade)
		assert.NotEmpty(t, result.Status)
	})

	t.Run("score_crawl weight overrides must not mutate base config", func(t *testing.T) {
		cfg := baseConfig()
		server := mcp_internal.NewMCPServer(cfg)
		tool := server.GetTool("score_crawl")
		require.NotNil(t, tool)

		res, err := tool.Handler(ctx, callRequest("score_crawl", map[string]any{
			"path":           export,
			"content_weight": 1.0,
			"ux_weight":      0.0,
		}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		assert.Equal(t, contract.DefaultWeights(), cfg.Weights)
	})

	t.Run("batch_score_crawls mixes successes and failures", func(t *testing.T) {
		tool := s.GetTool("batch_score_crawls")
		require.NotNil(t, tool)

		missing := filepath.Join(t.TempDir(), "missing.csv")
		res, err := tool.Handler(ctx, callRequest("batch_score_crawls", map[string]any{
			"paths": export + "," + missing,
		}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var batch struct {
			Outcomes []struct {
				FileID string `json:"file_id"`
				Error  string `json:"error"`
			} `json:"outcomes"`
			Summary *struct {
				Scored int `json:"scored"`
				Failed int `json:"failed"`
			} `json:"summary"`
		}
		text := res.Content[0].(mcp.TextContent).Text
		require.NoError(t, json.Unmarshal([]byte(text), &batch))
		require.Len(t, batch.Outcomes, 2)
		assert.Empty(t, batch.Outcomes[0].Error)
		assert.NotEmpty(t, batch.Outcomes[1].Error)
		require.NotNil(t, batch.Summary)
		assert.Equal(t, 1, batch.Summary.Scored)
		assert.Equal(t, 1, batch.Summary.Failed)
	})
}

func TestMCPServerHandlers_ListMetrics(t *testing.T) {
	s := mcp_internal.NewMCPServer(baseConfig())
	tool := s.GetTool("list_seo_metrics")
	require.NotNil(t, tool, "Tool list_seo_metrics should exist")

	res, err := tool.Handler(context.Background(), callRequest("list_seo_metrics", nil))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var entries []struct {
		ID       string `json:"id"`
		Category string `json:"category"`
	}
	text := res.Content[0].(mcp.TextContent).Text
	require.NoError(t, json.Unmarshal([]byte(text), &entries))
	assert.Len(t, entries, 13)
}
