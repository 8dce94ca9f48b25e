package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to run against the course materials"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 5)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	ChunkID  string  `json:"chunk_id"`
	Citation string  `json:"citation"`
	Locator  string  `json:"locator"`
	Kind     string  `json:"kind"`
	Score    float64 `json:"score"`
	Content  string  `json:"content"`
}

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the student question to answer from the course materials"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer    string            `json:"answer"`
	Citations []domain.Citation `json:"citations"`
}

// StatsOutput is the output schema for the index_stats tool.
type StatsOutput struct {
	Ready       bool `json:"ready"`
	TotalChunks int  `json:"total_chunks"`
	Modules     int  `json:"modules"`
	Sections    int  `json:"sections"`
	CodeBlocks  int  `json:"code_blocks"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the student's unlocked course materials",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "index_stats",
		Description: "Report the size and readiness of the course index",
	}, s.handleStats)

	if s.ports.Tutor != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "ask",
			Description: "Ask the course tutor a question; answers cite unlocked course materials",
		}, s.handleAsk)
	}
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = domain.DefaultTopK
	}

	results, err := s.ports.Search.Search(ctx, input.Query, limit)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = SearchResultOutput{
			ChunkID:  results[i].Chunk.ID,
			Citation: results[i].Chunk.Citation,
			Locator:  results[i].Chunk.Locator,
			Kind:     string(results[i].Chunk.Kind),
			Score:    results[i].Score,
			Content:  results[i].Chunk.Text,
		}
	}

	return nil, output, nil
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Tutor.Ask(ctx, input.Question)
	if err != nil {
		return nil, AskOutput{}, fmt.Errorf("ask tutor: %w", err)
	}

	return nil, AskOutput{
		Answer:    answer.Text,
		Citations: answer.Citations,
	}, nil
}

// handleStats handles the index_stats tool invocation.
func (s *Server) handleStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, StatsOutput, error) {
	stats, err := s.ports.Index.Stats(ctx)
	if err != nil {
		return nil, StatsOutput{}, err
	}

	return nil, StatsOutput{
		Ready:       stats.Ready,
		TotalChunks: stats.TotalChunks,
		Modules:     stats.Sources,
		Sections:    stats.Sections,
		CodeBlocks:  stats.CodeBlocks,
	}, nil
}
