package gateway

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/ziadkadry99/portfoliai/internal/llm"
)

// mockProvider returns a canned completion and records requests.
type mockProvider struct {
	mu      sync.Mutex
	calls   []llm.CompletionRequest
	content string
	err     error
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, req)
	if m.err != nil {
		return nil, m.err
	}
	return &llm.CompletionResponse{Content: m.content, Model: "mock-model"}, nil
}

func (m *mockProvider) lastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	msgs := m.calls[len(m.calls)-1].Messages
	return msgs[len(msgs)-1].Content
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Go, Rust ,  Kubernetes", []string{"Go", "Rust", "Kubernetes"}},
		{"Go,", []string{"Go", ""}},
		{"", []string{""}},
		{"  single  ", []string{"single"}},
	}
	for _, tt := range tests {
		if got := SplitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitList(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitQuotedList(t *testing.T) {
	got := SplitQuotedList(`"Full-stack Evangelist", Data-driven Strategist , ""UX"", "half`)
	want := []string{"Full-stack Evangelist", "Data-driven Strategist", `"UX"`, "half"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParseStory(t *testing.T) {
	s := ParseStory(`{"problem":"p","approach":"a","solution":"s","outcome":"o"}`)
	if s == nil || s.Problem != "p" || s.Approach != "a" || s.Solution != "s" || s.Outcome != "o" {
		t.Fatalf("unexpected story %+v", s)
	}

	fenced := ParseStory("```json\n{\"problem\":\"p\"}\n```")
	if fenced == nil || fenced.Problem != "p" {
		t.Errorf("expected fenced story to parse, got %+v", fenced)
	}

	chatty := ParseStory("Here is the story you asked for:\n{\"problem\":\"p\",\"outcome\":\"o\"}\nLet me know if you need changes.")
	if chatty == nil || chatty.Problem != "p" || chatty.Outcome != "o" {
		t.Errorf("expected object embedded in prose to parse, got %+v", chatty)
	}

	partial := ParseStory(`{"problem":"p","outcome":42}`)
	if partial == nil || partial.Problem != "p" || partial.Outcome != "" {
		t.Errorf("expected non-string field to be ignored, got %+v", partial)
	}

	for _, bad := range []string{"", "not json", `["a"]`, `"text"`, `{}`, "} then {", "see {not json}", `{"problem":""}`, "```"} {
		if got := ParseStory(bad); got != nil {
			t.Errorf("ParseStory(%q) = %+v, want nil", bad, got)
		}
	}
}

func TestSuggestSkills(t *testing.T) {
	mock := &mockProvider{content: "Go, Rust ,  Kubernetes"}
	g := New(mock, "model-x")

	skills, err := g.SuggestSkills(context.Background(), "Platform Engineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(skills, []string{"Go", "Rust", "Kubernetes"}) {
		t.Errorf("unexpected skills %q", skills)
	}
	if !strings.Contains(mock.lastPrompt(), "Platform Engineer") {
		t.Errorf("prompt should mention the title: %q", mock.lastPrompt())
	}
	if mock.calls[0].Model != "model-x" {
		t.Errorf("expected model-x, got %q", mock.calls[0].Model)
	}
}

func TestSuggestBrandKeywords(t *testing.T) {
	mock := &mockProvider{content: `"Systems Thinker", "Calm Debugger"`}
	g := New(mock, "")

	kws, err := g.SuggestBrandKeywords(context.Background(), "SRE", "keeps things up")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(kws, []string{"Systems Thinker", "Calm Debugger"}) {
		t.Errorf("unexpected keywords %q", kws)
	}
	if !strings.Contains(mock.lastPrompt(), "keeps things up") {
		t.Error("prompt should carry the bio")
	}
}

func TestEnhanceBioAndDescription(t *testing.T) {
	mock := &mockProvider{content: "A polished text."}
	g := New(mock, "")

	bio, err := g.EnhanceBio(context.Background(), "Alex", "Engineer", "likes Go")
	if err != nil || bio != "A polished text." {
		t.Fatalf("EnhanceBio = %q, %v", bio, err)
	}
	for _, want := range []string{"Alex", "Engineer", "likes Go"} {
		if !strings.Contains(mock.lastPrompt(), want) {
			t.Errorf("bio prompt missing %q", want)
		}
	}

	desc, err := g.EnhanceProjectDescription(context.Background(), "Shop", "sells things")
	if err != nil || desc != "A polished text." {
		t.Fatalf("EnhanceProjectDescription = %q, %v", desc, err)
	}
}

func TestGenerateProjectStoryRequestsJSON(t *testing.T) {
	mock := &mockProvider{content: `{"problem":"p","approach":"a","solution":"s","outcome":"o"}`}
	g := New(mock, "")

	story, err := g.GenerateProjectStory(context.Background(), "Shop", "sells things")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if story == nil || story.Outcome != "o" {
		t.Fatalf("unexpected story %+v", story)
	}
	req := mock.calls[0]
	if !req.JSONMode || req.ResponseSchema == nil {
		t.Error("expected JSON mode with a response schema")
	}
}

func TestGenerateProjectStoryUnparseableIsNil(t *testing.T) {
	g := New(&mockProvider{content: "Sorry, I cannot help with that."}, "")
	story, err := g.GenerateProjectStory(context.Background(), "Shop", "sells things")
	if err != nil {
		t.Fatalf("parse failure must not be an error, got %v", err)
	}
	if story != nil {
		t.Errorf("expected nil story, got %+v", story)
	}
}

func TestProviderErrorsPropagate(t *testing.T) {
	boom := errors.New("provider down")
	g := New(&mockProvider{err: boom}, "")
	ctx := context.Background()

	if _, err := g.EnhanceBio(ctx, "", "", ""); !errors.Is(err, boom) {
		t.Errorf("EnhanceBio: expected wrapped error, got %v", err)
	}
	if _, err := g.SuggestSkills(ctx, ""); !errors.Is(err, boom) {
		t.Errorf("SuggestSkills: expected wrapped error, got %v", err)
	}
	if _, err := g.SuggestBrandKeywords(ctx, "", ""); !errors.Is(err, boom) {
		t.Errorf("SuggestBrandKeywords: expected wrapped error, got %v", err)
	}
	if _, err := g.GenerateProjectStory(ctx, "", ""); !errors.Is(err, boom) {
		t.Errorf("GenerateProjectStory: expected wrapped error, got %v", err)
	}
}

func TestNilProviderFails(t *testing.T) {
	if _, err := New(nil, "").SuggestSkills(context.Background(), "x"); err == nil {
		t.Error("expected error without provider")
	}
}
