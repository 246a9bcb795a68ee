package cmd

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/ziadkadry99/portfoliai/internal/editor"
	"github.com/ziadkadry99/portfoliai/internal/portfolio"
	"github.com/ziadkadry99/portfoliai/internal/progress"
)

type countingGateway struct {
	calls atomic.Int32
	fail  bool
}

func (g *countingGateway) result() error {
	g.calls.Add(1)
	if g.fail {
		return errors.New("model unavailable")
	}
	return nil
}

func (g *countingGateway) EnhanceBio(context.Context, string, string, string) (string, error) {
	return "Enriched bio.", g.result()
}

func (g *countingGateway) SuggestSkills(context.Context, string) ([]string, error) {
	return []string{"Go"}, g.result()
}

func (g *countingGateway) SuggestBrandKeywords(context.Context, string, string) ([]string, error) {
	return []string{"Builder"}, g.result()
}

func (g *countingGateway) GenerateProjectStory(context.Context, string, string) (*portfolio.Story, error) {
	return &portfolio.Story{Problem: "p", Approach: "a", Solution: "s", Outcome: "o"}, g.result()
}

func (g *countingGateway) EnhanceProjectDescription(context.Context, string, string) (string, error) {
	return "Better description.", g.result()
}

func twoProjectDoc() portfolio.Document {
	doc := portfolio.Sample()
	second := doc.Projects[0].Clone()
	second.ID = "2"
	second.Title = "Analytics Dashboard"
	doc.Projects = append(doc.Projects, second)
	return doc
}

func TestParseEnrichSteps(t *testing.T) {
	all, err := parseEnrichSteps(nil)
	if err != nil {
		t.Fatalf("parseEnrichSteps: %v", err)
	}
	if len(all) != len(enrichSteps) {
		t.Errorf("expected every step by default, got %v", all)
	}

	some, err := parseEnrichSteps([]string{" Bio", "stories"})
	if err != nil {
		t.Fatalf("parseEnrichSteps: %v", err)
	}
	if !some["bio"] || !some["stories"] || some["skills"] {
		t.Errorf("unexpected steps: %v", some)
	}

	if _, err := parseEnrichSteps([]string{"poems"}); err == nil {
		t.Error("expected error for unknown step")
	}
}

func TestRunEnrichment(t *testing.T) {
	gw := &countingGateway{}
	ctrl, err := editor.New(twoProjectDoc(), editor.WithGateway(gw))
	if err != nil {
		t.Fatalf("editor.New: %v", err)
	}
	steps, _ := parseEnrichSteps(nil)

	t.Setenv("CI", "true")
	var log bytes.Buffer
	results, err := runEnrichment(context.Background(), ctrl, steps, 2, progress.NewReporter(&log))
	if err != nil {
		t.Fatalf("runEnrichment: %v", err)
	}

	// bio, skills, keywords plus story and description for two projects.
	if len(results) != 7 {
		t.Fatalf("expected 7 results, got %d", len(results))
	}
	for _, res := range results {
		if res.Outcome != editor.OutcomeApplied {
			t.Errorf("%s: outcome %s", res.Key, res.Outcome)
		}
	}

	doc := ctrl.Document()
	if !bytes.Contains(log.Bytes(), []byte("[7/7]")) {
		t.Errorf("expected progress for every operation, got %q", log.String())
	}
	if doc.Profile.Bio != "Enriched bio." {
		t.Errorf("bio = %q", doc.Profile.Bio)
	}
	for _, p := range doc.Projects {
		if p.Story == nil || p.Description != "Better description." {
			t.Errorf("project %s not enriched: %+v", p.ID, p)
		}
	}
}

func TestRunEnrichmentKeepsGoingAfterFailures(t *testing.T) {
	gw := &countingGateway{fail: true}
	ctrl, err := editor.New(twoProjectDoc(), editor.WithGateway(gw))
	if err != nil {
		t.Fatalf("editor.New: %v", err)
	}
	steps, _ := parseEnrichSteps([]string{"bio", "stories"})

	t.Setenv("CI", "true")
	results, err := runEnrichment(context.Background(), ctrl, steps, 0, progress.NewReporter(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("runEnrichment: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if got := gw.calls.Load(); got != 3 {
		t.Errorf("expected every operation attempted, got %d calls", got)
	}
	for _, res := range results {
		if res.Outcome != editor.OutcomeFailed {
			t.Errorf("%s: expected failed, got %s", res.Key, res.Outcome)
		}
	}
	if ctrl.Snapshot().Version != 1 {
		t.Error("failed enrichment must not change the document")
	}
}

func TestRunEnrichmentStopsWhenCancelled(t *testing.T) {
	gw := &countingGateway{}
	ctrl, err := editor.New(twoProjectDoc(), editor.WithGateway(gw), editor.WithCallerCancellation())
	if err != nil {
		t.Fatalf("editor.New: %v", err)
	}
	steps, _ := parseEnrichSteps(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	t.Setenv("CI", "true")
	results, err := runEnrichment(ctx, ctrl, steps, 2, progress.NewReporter(&bytes.Buffer{}))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if got := gw.calls.Load(); got != 0 {
		t.Errorf("expected no gateway calls after cancellation, got %d", got)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
	if ctrl.Snapshot().Version != 1 {
		t.Error("cancelled run must not change the document")
	}
}
