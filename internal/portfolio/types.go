package portfolio

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned when two experiences or two projects share an id.
var ErrDuplicateID = errors.New("duplicate id")

// Document is the complete in-memory portfolio record.
type Document struct {
	Profile     Profile      `json:"profile" yaml:"profile"`
	Skills      []string     `json:"skills" yaml:"skills"`
	Experiences []Experience `json:"experiences" yaml:"experiences"`
	Projects    []Project    `json:"projects" yaml:"projects"`
}

// Profile holds the identity and contact part of a portfolio.
type Profile struct {
	Name              string   `json:"name" yaml:"name"`
	Title             string   `json:"title" yaml:"title"`
	Bio               string   `json:"bio" yaml:"bio"`
	Email             string   `json:"email" yaml:"email"`
	GitHub            string   `json:"github" yaml:"github"`
	LinkedIn          string   `json:"linkedin" yaml:"linkedin"`
	Twitter           string   `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	ProfilePictureURL string   `json:"profilePictureUrl,omitempty" yaml:"profilePictureUrl,omitempty"`
	BrandKeywords     []string `json:"brandKeywords,omitempty" yaml:"brandKeywords,omitempty"`
}

// Experience is one entry of the work history.
type Experience struct {
	ID          string `json:"id" yaml:"id"`
	Company     string `json:"company" yaml:"company"`
	Role        string `json:"role" yaml:"role"`
	Period      string `json:"period" yaml:"period"`
	Description string `json:"description" yaml:"description"`
}

// Project is one showcased piece of work.
//
// SkillsTagged holds skill names, not references into Document.Skills:
// removing a skill leaves every tag that names it in place.
type Project struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	SkillsTagged []string `json:"skillsTagged,omitempty" yaml:"skillsTagged,omitempty"`
	Link         string   `json:"link" yaml:"link"`
	GitHubRepo   string   `json:"githubRepo,omitempty" yaml:"githubRepo,omitempty"`
	ImageURL     string   `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	Story        *Story   `json:"story,omitempty" yaml:"story,omitempty"`
	Stats        *Stats   `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// Story is the problem-approach-solution-outcome narrative of a project.
type Story struct {
	Problem  string `json:"problem,omitempty" yaml:"problem,omitempty"`
	Approach string `json:"approach,omitempty" yaml:"approach,omitempty"`
	Solution string `json:"solution,omitempty" yaml:"solution,omitempty"`
	Outcome  string `json:"outcome,omitempty" yaml:"outcome,omitempty"`
}

// IsEmpty reports whether none of the four story fields carries text.
func (s Story) IsEmpty() bool {
	return s.Problem == "" && s.Approach == "" && s.Solution == "" && s.Outcome == ""
}

// Stats are repository counters shown next to a project.
type Stats struct {
	Stars int `json:"stars,omitempty" yaml:"stars,omitempty"`
	Forks int `json:"forks,omitempty" yaml:"forks,omitempty"`
}

// Validate checks the structural invariants of the document: experience
// ids and project ids are each unique within their sequence.
func (d Document) Validate() error {
	if err := uniqueIDs("experience", len(d.Experiences), func(i int) string { return d.Experiences[i].ID }); err != nil {
		return err
	}
	return uniqueIDs("project", len(d.Projects), func(i int) string { return d.Projects[i].ID })
}

func uniqueIDs(kind string, n int, id func(int) string) error {
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if _, ok := seen[v]; ok {
			return fmt.Errorf("%s %q: %w", kind, v, ErrDuplicateID)
		}
		seen[v] = struct{}{}
	}
	return nil
}

// Clone returns a deep copy that shares no slices or pointers with d.
func (d Document) Clone() Document {
	out := d
	out.Profile.BrandKeywords = cloneStrings(d.Profile.BrandKeywords)
	out.Skills = cloneStrings(d.Skills)
	out.Experiences = cloneExperiences(d.Experiences)
	out.Projects = cloneProjects(d.Projects)
	return out
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	out := p
	out.Technologies = cloneStrings(p.Technologies)
	out.SkillsTagged = cloneStrings(p.SkillsTagged)
	if p.Story != nil {
		s := *p.Story
		out.Story = &s
	}
	if p.Stats != nil {
		s := *p.Stats
		out.Stats = &s
	}
	return out
}

// HasSkillTag reports whether the project is tagged with exactly skill.
func (p Project) HasSkillTag(skill string) bool {
	for _, s := range p.SkillsTagged {
		if s == skill {
			return true
		}
	}
	return false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneExperiences(in []Experience) []Experience {
	if in == nil {
		return nil
	}
	out := make([]Experience, len(in))
	copy(out, in)
	return out
}

func cloneProjects(in []Project) []Project {
	if in == nil {
		return nil
	}
	out := make([]Project, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
