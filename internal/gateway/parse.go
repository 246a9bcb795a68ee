package gateway

import (
	"encoding/json"
	"strings"

	"github.com/ziadkadry99/portfoliai/internal/portfolio"
)

// SplitList splits provider text on commas and trims each segment.
// Nothing is dropped: trailing delimiters yield empty segments and
// empty text yields a single empty segment.
func SplitList(text string) []string {
	parts := strings.Split(text, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// SplitQuotedList is SplitList followed by stripping one leading and one
// trailing double quote from each segment.
func SplitQuotedList(text string) []string {
	parts := SplitList(text)
	for i, p := range parts {
		p = strings.TrimPrefix(p, `"`)
		parts[i] = strings.TrimSuffix(p, `"`)
	}
	return parts
}

// ParseStory decodes a structured story. A surrounding code fence is
// stripped, and when the text is not itself a JSON object the outermost
// {...} span inside it is tried instead. It returns nil when no object
// decodes or when every field is empty.
func ParseStory(text string) *portfolio.Story {
	text = stripCodeFence(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		obj, ok := embeddedObject(text)
		if !ok {
			return nil
		}
		if err := json.Unmarshal([]byte(obj), &raw); err != nil {
			return nil
		}
	}

	story := portfolio.Story{
		Problem:  stringField(raw, "problem"),
		Approach: stringField(raw, "approach"),
		Solution: stringField(raw, "solution"),
		Outcome:  stringField(raw, "outcome"),
	}
	if story.IsEmpty() {
		return nil
	}
	return &story
}

// embeddedObject returns the span from the first '{' to the last '}'.
func embeddedObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func stringField(raw map[string]json.RawMessage, key string) string {
	v, ok := raw[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}
	return s
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	} else {
		return ""
	}
	text = strings.TrimSpace(text)
	return strings.TrimSpace(strings.TrimSuffix(text, "```"))
}
