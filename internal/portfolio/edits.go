package portfolio

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a fresh opaque identifier for an experience or project.
func NewID() string {
	return uuid.New().String()
}

// NewExperience returns an experience filled with placeholder text.
func NewExperience(id string) Experience {
	return Experience{
		ID:          id,
		Company:     "Company Name",
		Role:        "Job Title",
		Period:      "Start - End",
		Description: "Role achievements and responsibilities...",
	}
}

// NewProject returns a project filled with placeholder text. existing is the
// number of projects already in the document and picks the placeholder image.
func NewProject(id string, existing int) Project {
	return Project{
		ID:           id,
		Title:        "New Project",
		Description:  "Describe your amazing work...",
		Technologies: []string{},
		SkillsTagged: []string{},
		ImageURL:     fmt.Sprintf("https://picsum.photos/800/600?random=%d", existing+1),
	}
}

// AppendExperience returns a new slice with e appended.
func AppendExperience(list []Experience, e Experience) []Experience {
	out := make([]Experience, 0, len(list)+1)
	out = append(out, list...)
	return append(out, e)
}

// RemoveExperience returns a new slice without the experience with the given
// id. An absent id yields an unchanged copy.
func RemoveExperience(list []Experience, id string) []Experience {
	out := make([]Experience, 0, len(list))
	for _, e := range list {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// ReplaceExperience returns a new slice with the entry whose id matches e.ID
// replaced in place. The bool is false when no entry matched.
func ReplaceExperience(list []Experience, e Experience) ([]Experience, bool) {
	out := cloneExperiences(list)
	for i := range out {
		if out[i].ID == e.ID {
			out[i] = e
			return out, true
		}
	}
	return out, false
}

// AppendProject returns a new slice with p appended.
func AppendProject(list []Project, p Project) []Project {
	out := make([]Project, 0, len(list)+1)
	out = append(out, cloneProjects(list)...)
	return append(out, p.Clone())
}

// RemoveProject returns a new slice without the project with the given id.
// An absent id yields an unchanged copy.
func RemoveProject(list []Project, id string) []Project {
	out := make([]Project, 0, len(list))
	for _, p := range list {
		if p.ID != id {
			out = append(out, p.Clone())
		}
	}
	return out
}

// ReplaceProject returns a new slice with the project whose id matches
// p.ID replaced in place. The bool is false when no project matched.
func ReplaceProject(list []Project, p Project) ([]Project, bool) {
	out := cloneProjects(list)
	for i := range out {
		if out[i].ID == p.ID {
			out[i] = p.Clone()
			return out, true
		}
	}
	return out, false
}

// IndexOfProject returns the position of the project with the given id, or -1.
func IndexOfProject(list []Project, id string) int {
	for i, p := range list {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// IndexOfExperience returns the position of the experience with the given id, or -1.
func IndexOfExperience(list []Experience, id string) int {
	for i, e := range list {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// AppendString returns a new slice with v appended.
func AppendString(list []string, v string) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	return append(out, v)
}

// RemoveIndex returns a new slice without the element at i. An index out of
// range yields an unchanged copy.
func RemoveIndex(list []string, i int) []string {
	out := make([]string, 0, len(list))
	for j, v := range list {
		if j != i {
			out = append(out, v)
		}
	}
	return out
}

// ToggleString removes every occurrence of v when present, otherwise appends it.
func ToggleString(list []string, v string) []string {
	out := make([]string, 0, len(list)+1)
	found := false
	for _, s := range list {
		if s == v {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found {
		out = append(out, v)
	}
	return out
}

// UnionAppend returns list followed by every value of extra that is not
// already present, in the order of extra. Values already in list are never
// removed or reordered, duplicates included. Empty values are skipped.
func UnionAppend(list, extra []string) []string {
	seen := make(map[string]struct{}, len(list)+len(extra))
	out := make([]string, 0, len(list)+len(extra))
	for _, v := range list {
		seen[v] = struct{}{}
		out = append(out, v)
	}
	for _, v := range extra {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
