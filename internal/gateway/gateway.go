// Package gateway adapts a generative-text provider to the enrichment
// operations of the portfolio editor.
package gateway

import (
	"context"
	"fmt"

	"github.com/ziadkadry99/portfoliai/internal/llm"
	"github.com/ziadkadry99/portfoliai/internal/portfolio"
)

// Gateway offers the enrichment operations. Each call is one request/response
// round trip; implementations do not retry or cache. Errors mean a transport
// or provider failure; GenerateProjectStory reports an unparseable answer as
// a nil story, not an error.
type Gateway interface {
	EnhanceBio(ctx context.Context, name, title, draft string) (string, error)
	SuggestSkills(ctx context.Context, title string) ([]string, error)
	SuggestBrandKeywords(ctx context.Context, title, bio string) ([]string, error)
	GenerateProjectStory(ctx context.Context, title, description string) (*portfolio.Story, error)
	EnhanceProjectDescription(ctx context.Context, title, description string) (string, error)
}

// LLMGateway implements Gateway on top of an llm.Provider.
type LLMGateway struct {
	provider llm.Provider
	model    string
}

// New creates an LLMGateway. An empty model defers to the provider default.
func New(provider llm.Provider, model string) *LLMGateway {
	return &LLMGateway{provider: provider, model: model}
}

func (g *LLMGateway) complete(ctx context.Context, op string, req llm.CompletionRequest) (string, error) {
	if g.provider == nil {
		return "", fmt.Errorf("%s: no LLM provider configured", op)
	}
	req.Model = g.model
	resp, err := g.provider.Complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return resp.Content, nil
}

func (g *LLMGateway) EnhanceBio(ctx context.Context, name, title, draft string) (string, error) {
	return g.complete(ctx, "enhance bio", llm.UserPrompt(enhanceBioPrompt(name, title, draft)))
}

func (g *LLMGateway) SuggestSkills(ctx context.Context, title string) ([]string, error) {
	text, err := g.complete(ctx, "suggest skills", llm.UserPrompt(suggestSkillsPrompt(title)))
	if err != nil {
		return nil, err
	}
	return SplitList(text), nil
}

func (g *LLMGateway) SuggestBrandKeywords(ctx context.Context, title, bio string) ([]string, error) {
	text, err := g.complete(ctx, "suggest brand keywords", llm.UserPrompt(brandKeywordsPrompt(title, bio)))
	if err != nil {
		return nil, err
	}
	return SplitQuotedList(text), nil
}

func (g *LLMGateway) GenerateProjectStory(ctx context.Context, title, description string) (*portfolio.Story, error) {
	req := llm.UserPrompt(projectStoryPrompt(title, description))
	req.JSONMode = true
	req.ResponseSchema = storySchema
	text, err := g.complete(ctx, "generate project story", req)
	if err != nil {
		return nil, err
	}
	return ParseStory(text), nil
}

func (g *LLMGateway) EnhanceProjectDescription(ctx context.Context, title, description string) (string, error) {
	return g.complete(ctx, "enhance project description", llm.UserPrompt(projectDescriptionPrompt(title, description)))
}
