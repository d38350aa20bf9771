// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/crawlscore/crawlscore/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the crawlscore MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Crawlscore SEO Scoring Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: score_crawl ---
	s.AddTool(mcp.NewTool("score_crawl",
		mcp.WithDescription("Score a single website crawl export (CSV/TSV) against the SEO metric catalog."),
		mcp.WithString("path", mcp.Description("Path to the crawl export file."), mcp.Required()),
		mcp.WithNumber("content_weight", mcp.Description("Override for the content category weight (non-negative).")),
		mcp.WithNumber("technical_weight", mcp.Description("Override for the technical category weight (non-negative).")),
		mcp.WithNumber("ux_weight", mcp.Description("Override for the UX category weight (non-negative).")),
	), h.handleScoreCrawl)

	// --- 2. Tool: batch_score_crawls ---
	s.AddTool(mcp.NewTool("batch_score_crawls",
		mcp.WithDescription("Score multiple crawl exports independently and compare them (summary with average, best and worst)."),
		mcp.WithString("paths", mcp.Description("Comma-separated list of crawl export paths."), mcp.Required()),
	), h.handleBatchScoreCrawls)

	// --- 3. Tool: list_seo_metrics ---
	s.AddTool(mcp.NewTool("list_seo_metrics",
		mcp.WithDescription("List the fixed SEO metric catalog: categories, required columns, predicates and alert thresholds."),
	), h.handleListMetrics)

	return s
}

// StartMCPServer starts the crawlscore MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
