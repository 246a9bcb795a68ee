package gateway

import (
	"fmt"

	"github.com/ziadkadry99/portfoliai/internal/llm"
)

func enhanceBioPrompt(name, title, draft string) string {
	return fmt.Sprintf(`As an expert career coach, write a professional and compelling "About Me" summary for a portfolio website.
Name: %s
Current Title: %s
Draft Notes: %s

Make it professional yet personable. Keep it between 2-3 paragraphs.`, name, title, draft)
}

func suggestSkillsPrompt(title string) string {
	return fmt.Sprintf(`List 10 highly relevant skills (technical and soft) for a professional with the title: %s. Return only a comma-separated list.`, title)
}

func brandKeywordsPrompt(title, bio string) string {
	return fmt.Sprintf(`Based on this professional profile, suggest 5-8 short "Personal Brand Keywords" or punchy phrases (e.g., "Full-stack Evangelist", "Data-driven Strategist", "UX Perfectionist").
Title: %s
Bio: %s

Return only a comma-separated list.`, title, bio)
}

func projectStoryPrompt(title, description string) string {
	return fmt.Sprintf(`Convert this project description into a structured story using the Problem-Approach-Solution-Outcome framework.
Project: %s
Description: %s

Format the output as a JSON object with keys: problem, approach, solution, outcome.`, title, description)
}

func projectDescriptionPrompt(title, description string) string {
	return fmt.Sprintf(`Rewrite this project description for a professional portfolio. Make it focus on impact, technologies used, and technical challenges solved.
Project: %s
Current Description: %s`, title, description)
}

// storySchema is the structured response the story prompt asks for.
var storySchema = llm.Schema{
	"type": "object",
	"properties": map[string]any{
		"problem":  map[string]any{"type": "string"},
		"approach": map[string]any{"type": "string"},
		"solution": map[string]any{"type": "string"},
		"outcome":  map[string]any{"type": "string"},
	},
	"required": []string{"problem", "approach", "solution", "outcome"},
}
