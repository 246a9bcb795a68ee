package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/portfoliai/internal/editor"
	"github.com/ziadkadry99/portfoliai/internal/portfolio"
	"github.com/ziadkadry99/portfoliai/internal/preview"
)

// mockGateway implements gateway.Gateway for testing.
type mockGateway struct {
	err error
}

func (m *mockGateway) EnhanceBio(context.Context, string, string, string) (string, error) {
	return "An agent-polished bio.", m.err
}

func (m *mockGateway) SuggestSkills(context.Context, string) ([]string, error) {
	return []string{"Go"}, m.err
}

func (m *mockGateway) SuggestBrandKeywords(context.Context, string, string) ([]string, error) {
	return []string{"Craftsman"}, m.err
}

func (m *mockGateway) GenerateProjectStory(context.Context, string, string) (*portfolio.Story, error) {
	return &portfolio.Story{Problem: "Slow checkout", Outcome: "Faster checkout"}, m.err
}

func (m *mockGateway) EnhanceProjectDescription(context.Context, string, string) (string, error) {
	return "Sharper.", m.err
}

func newTestServer(t *testing.T, gw *mockGateway) *Server {
	t.Helper()
	ctrl, err := editor.New(portfolio.Sample(), editor.WithGateway(gw))
	if err != nil {
		t.Fatalf("editor.New: %v", err)
	}
	renderer, err := preview.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	srv := NewServer(ctrl, renderer)
	srv.now = func() time.Time { return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC) }
	return srv
}

func call(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		tool     mcp.Tool
		wantName string
	}{
		{getPortfolioTool, "get_portfolio"},
		{updatePortfolioTool, "update_portfolio"},
		{enhanceBioTool, "enhance_bio"},
		{suggestSkillsTool, "suggest_skills"},
		{suggestBrandKeywordsTool, "suggest_brand_keywords"},
		{generateProjectStoryTool, "generate_project_story"},
		{enhanceProjectDescriptionTool, "enhance_project_description"},
		{renderPreviewTool, "render_preview"},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := newTestServer(t, &mockGateway{})
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.ctrl == nil || srv.renderer == nil {
		t.Fatal("dependencies not set")
	}
}

func TestHandleGetPortfolio(t *testing.T) {
	srv := newTestServer(t, &mockGateway{})

	result, err := srv.handleGetPortfolio(context.Background(), call(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var snap editor.Snapshot
	if err := json.Unmarshal([]byte(resultText(t, result)), &snap); err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}
	if snap.Version != 1 || snap.Document.Profile.Name != "Alex Rivera" {
		t.Errorf("unexpected snapshot: version=%d name=%q", snap.Version, snap.Document.Profile.Name)
	}
}

func TestHandleUpdatePortfolio(t *testing.T) {
	srv := newTestServer(t, &mockGateway{})
	ctx := context.Background()

	t.Run("valid patch", func(t *testing.T) {
		result, err := srv.handleUpdatePortfolio(ctx, call(map[string]any{"patch": `{"title":"Staff Engineer"}`}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %s", resultText(t, result))
		}
		if got := srv.ctrl.Document().Profile.Title; got != "Staff Engineer" {
			t.Errorf("title = %q", got)
		}
	})

	t.Run("missing patch", func(t *testing.T) {
		result, _ := srv.handleUpdatePortfolio(ctx, call(map[string]any{}))
		if !result.IsError {
			t.Error("expected error for missing patch")
		}
	})

	t.Run("malformed patch", func(t *testing.T) {
		result, _ := srv.handleUpdatePortfolio(ctx, call(map[string]any{"patch": `{"title":`}))
		if !result.IsError {
			t.Error("expected error for malformed JSON")
		}
	})

	t.Run("document shape", func(t *testing.T) {
		result, _ := srv.handleUpdatePortfolio(ctx, call(map[string]any{"patch": `{"profile":{"bio":"Nested bio"}}`}))
		if result.IsError {
			t.Fatalf("unexpected tool error: %s", resultText(t, result))
		}
		if got := srv.ctrl.Document().Profile.Bio; got != "Nested bio" {
			t.Errorf("bio = %q", got)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		before := srv.ctrl.Snapshot().Version
		result, _ := srv.handleUpdatePortfolio(ctx, call(map[string]any{"patch": `{"skils":["Go"]}`}))
		if !result.IsError {
			t.Error("expected unknown key to be rejected")
		}
		if srv.ctrl.Snapshot().Version != before {
			t.Error("rejected patch must not change the version")
		}
	})

	t.Run("duplicate ids", func(t *testing.T) {
		before := srv.ctrl.Snapshot().Version
		result, _ := srv.handleUpdatePortfolio(ctx, call(map[string]any{
			"patch": `{"experiences":[{"id":"x"},{"id":"x"}]}`,
		}))
		if !result.IsError {
			t.Error("expected duplicate ids to be rejected")
		}
		if srv.ctrl.Snapshot().Version != before {
			t.Error("rejected patch must not change the version")
		}
	})
}

func TestHandleEnrichment(t *testing.T) {
	srv := newTestServer(t, &mockGateway{})
	ctx := context.Background()

	result, err := srv.handleEnhanceBio(ctx, call(nil))
	if err != nil || result.IsError {
		t.Fatalf("enhance_bio: err=%v result=%v", err, result)
	}
	if !strings.Contains(resultText(t, result), `"outcome": "applied"`) {
		t.Errorf("expected applied outcome, got %s", resultText(t, result))
	}
	if srv.ctrl.Document().Profile.Bio != "An agent-polished bio." {
		t.Error("expected bio merged")
	}

	srv.handleSuggestSkills(ctx, call(nil))
	srv.handleSuggestBrandKeywords(ctx, call(nil))
	doc := srv.ctrl.Document()
	if doc.Skills[len(doc.Skills)-1] != "Go" {
		t.Errorf("expected Go appended, got %v", doc.Skills)
	}
	if len(doc.Profile.BrandKeywords) != 1 || doc.Profile.BrandKeywords[0] != "Craftsman" {
		t.Errorf("expected keywords replaced, got %v", doc.Profile.BrandKeywords)
	}

	result, _ = srv.handleGenerateProjectStory(ctx, call(map[string]any{"project_id": "1"}))
	if result.IsError {
		t.Fatalf("generate_project_story: %s", resultText(t, result))
	}
	if story := srv.ctrl.Document().Projects[0].Story; story == nil || story.Problem != "Slow checkout" {
		t.Errorf("expected story merged, got %+v", story)
	}

	result, _ = srv.handleEnhanceProjectDescription(ctx, call(map[string]any{"project_id": "1"}))
	if result.IsError {
		t.Fatalf("enhance_project_description: %s", resultText(t, result))
	}
}

func TestHandleEnrichmentErrors(t *testing.T) {
	ctx := context.Background()

	srv := newTestServer(t, &mockGateway{})
	result, _ := srv.handleGenerateProjectStory(ctx, call(map[string]any{"project_id": "missing"}))
	if !result.IsError {
		t.Error("expected error for unknown project")
	}
	result, _ = srv.handleEnhanceProjectDescription(ctx, call(map[string]any{}))
	if !result.IsError {
		t.Error("expected error for missing project_id")
	}

	failing := newTestServer(t, &mockGateway{err: errors.New("upstream down")})
	result, _ = failing.handleEnhanceBio(ctx, call(nil))
	if !result.IsError {
		t.Fatal("expected failed enrichment to be a tool error")
	}
	if !strings.Contains(resultText(t, result), "upstream down") {
		t.Errorf("expected cause in error, got %s", resultText(t, result))
	}
}

func TestHandleRenderPreview(t *testing.T) {
	srv := newTestServer(t, &mockGateway{})
	ctx := context.Background()

	result, err := srv.handleRenderPreview(ctx, call(map[string]any{"theme": "creative", "mode": "dark"}))
	if err != nil || result.IsError {
		t.Fatalf("render_preview: err=%v", err)
	}
	html := resultText(t, result)
	for _, want := range []string{`data-theme="creative"`, `data-mode="dark"`, "Alex Rivera", "2030"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in rendered page", want)
		}
	}
	if strings.Contains(html, "window.print()") {
		t.Error("preview page must not open the print dialog")
	}

	result, _ = srv.handleRenderPreview(ctx, call(map[string]any{"theme": "neon"}))
	if !result.IsError {
		t.Error("expected error for unknown theme")
	}
}
