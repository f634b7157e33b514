package mcp

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	protoserver "github.com/viant/mcp-protocol/server"

	"github.com/viant/policybin/reindex"
	"github.com/viant/policybin/search"
	"github.com/viant/policybin/service"
)

//go:embed tools/classify.md
var descClassify string

//go:embed tools/bins.md
var descBins string

//go:embed tools/search.md
var descSearch string

//go:embed tools/reindex.md
var descReindex string

func registerTools(registry *protoserver.Registry, h *Handler) error {
	if err := protoserver.RegisterTool[*ClassifyInput, *ClassifyOutput](registry, "classify", descClassify, func(ctx context.Context, in *ClassifyInput) (*schema.CallToolResult, *jsonrpc.Error) {
		out, err := h.classify(ctx, in)
		if err != nil {
			return buildErrorResult(err.Error())
		}
		return buildSuccessResult(out)
	}); err != nil {
		return err
	}

	if err := protoserver.RegisterTool[*BinsInput, *BinsOutput](registry, "bins", descBins, func(ctx context.Context, in *BinsInput) (*schema.CallToolResult, *jsonrpc.Error) {
		out, err := h.bins(ctx, in)
		if err != nil {
			return buildErrorResult(err.Error())
		}
		return buildSuccessResult(out)
	}); err != nil {
		return err
	}

	if err := protoserver.RegisterTool[*SearchInput, *SearchOutput](registry, "search", descSearch, func(ctx context.Context, in *SearchInput) (*schema.CallToolResult, *jsonrpc.Error) {
		out, err := h.search(ctx, in)
		if err != nil {
			return buildErrorResult(err.Error())
		}
		return buildSuccessResult(out)
	}); err != nil {
		return err
	}

	if err := protoserver.RegisterTool[*ReindexInput, *ReindexOutput](registry, "reindex", descReindex, func(ctx context.Context, in *ReindexInput) (*schema.CallToolResult, *jsonrpc.Error) {
		out, err := h.reindex(ctx, in)
		if err != nil {
			return buildErrorResult(err.Error())
		}
		return buildSuccessResult(out)
	}); err != nil {
		return err
	}
	return nil
}

func buildErrorResult(message string) (*schema.CallToolResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewError(jsonrpc.InvalidParams, message, nil)
}

func buildSuccessResult(payload any) (*schema.CallToolResult, *jsonrpc.Error) {
	b, _ := json.Marshal(payload)
	return &schema.CallToolResult{
		Content: []schema.CallToolResultContentElem{
			schema.TextContent{Type: "text", Text: string(b)},
		},
		StructuredContent: map[string]any{"result": payload},
	}, nil
}

func (h *Handler) classify(_ context.Context, in *ClassifyInput) (*ClassifyOutput, error) {
	if h == nil || h.service == nil {
		return nil, fmt.Errorf("mcp: service unavailable")
	}
	if in == nil || len(in.FileNames) == 0 {
		return nil, fmt.Errorf("mcp: missing fileNames")
	}
	out := &ClassifyOutput{Matches: h.service.Classify(in.FileNames...)}
	for _, match := range out.Matches {
		if !match.Matched {
			out.Unmatched++
		}
	}
	return out, nil
}

func (h *Handler) bins(ctx context.Context, in *BinsInput) (*BinsOutput, error) {
	if h == nil || h.service == nil {
		return nil, fmt.Errorf("mcp: service unavailable")
	}
	if in == nil {
		in = &BinsInput{}
	}
	bins := h.service.Bins(ctx, service.Filter{Category: in.Category, Query: in.Query})
	if in.Summary {
		for i, bin := range bins {
			bin = bin.Clone()
			for _, doc := range bin.Documents {
				doc.Content = ""
			}
			bins[i] = bin
		}
	}
	return &BinsOutput{Categories: h.service.Categories(), Bins: bins}, nil
}

func (h *Handler) search(ctx context.Context, in *SearchInput) (*SearchOutput, error) {
	start := time.Now()
	if h == nil || h.service == nil {
		return nil, fmt.Errorf("mcp: service unavailable")
	}
	if in == nil || strings.TrimSpace(in.Query) == "" {
		return nil, fmt.Errorf("mcp: missing query")
	}
	limit := in.Limit
	if limit <= 0 {
		limit = search.DefaultLimit
	}
	hits, err := h.service.Search(ctx, in.Query, limit)
	if err != nil {
		return nil, err
	}
	h.logger.Debug("mcp_search", "query", in.Query, "hits", len(hits), "elapsed", time.Since(start).String())
	return &SearchOutput{Hits: hits}, nil
}

func (h *Handler) reindex(ctx context.Context, _ *ReindexInput) (*ReindexOutput, error) {
	start := time.Now()
	if h == nil || h.service == nil {
		return nil, fmt.Errorf("mcp: service unavailable")
	}
	result, err := h.service.Reindex(ctx)
	if err != nil {
		if errors.Is(err, reindex.ErrNoMetadata) && result != nil {
			return result, nil
		}
		return nil, err
	}
	h.logger.Info("mcp_reindex", "documentsParsed", result.DocumentsParsed, "elapsed", time.Since(start).String())
	return result, nil
}
