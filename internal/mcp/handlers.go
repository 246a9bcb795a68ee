package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/portfoliai/internal/editor"
	"github.com/ziadkadry99/portfoliai/internal/portfolio"
	"github.com/ziadkadry99/portfoliai/internal/preview"
)

// handleGetPortfolio returns the current snapshot as JSON.
func (s *Server) handleGetPortfolio(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.ctrl.Snapshot())
}

// handleUpdatePortfolio merges a JSON patch into the document.
func (s *Server) handleUpdatePortfolio(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("patch")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: patch"), nil
	}

	var patch portfolio.Patch
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid patch: %v", err)), nil
	}

	snap, err := s.ctrl.MergeUpdate(patch)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("update rejected: %v", err)), nil
	}
	return jsonResult(snap)
}

func (s *Server) handleEnhanceBio(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return enrichResult(s.ctrl.EnhanceBio(ctx))
}

func (s *Server) handleSuggestSkills(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return enrichResult(s.ctrl.SuggestSkills(ctx))
}

func (s *Server) handleSuggestBrandKeywords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return enrichResult(s.ctrl.SuggestBrandKeywords(ctx))
}

func (s *Server) handleGenerateProjectStory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.enrichProject(ctx, request, s.ctrl.GenerateProjectStory)
}

func (s *Server) handleEnhanceProjectDescription(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.enrichProject(ctx, request, s.ctrl.EnhanceProjectDescription)
}

func (s *Server) enrichProject(ctx context.Context, request mcp.CallToolRequest, op func(context.Context, string) (editor.Result, error)) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("project_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: project_id"), nil
	}
	res, err := op(ctx, id)
	if errors.Is(err, editor.ErrProjectNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("no project with id %q", id)), nil
	}
	if err != nil {
		return nil, err
	}
	return enrichResult(res)
}

// handleRenderPreview renders the document as a standalone HTML page.
func (s *Server) handleRenderPreview(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	theme, err := preview.ParseTheme(request.GetString("theme", string(preview.ThemeModern)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode, err := preview.ParseColorMode(request.GetString("mode", string(preview.ModeLight)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	view := preview.BuildView(s.ctrl.Document(), theme, mode, preview.ViewState{Year: s.now().Year()})
	var buf bytes.Buffer
	if err := s.renderer.RenderPage(&buf, view, false); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

// enrichResult reports an enrichment outcome. Failures are tool errors so
// agents do not mistake them for an unchanged field.
func enrichResult(res editor.Result) (*mcp.CallToolResult, error) {
	if res.Outcome == editor.OutcomeFailed {
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %s", res.Key, res.Error)), nil
	}
	return jsonResult(res)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
