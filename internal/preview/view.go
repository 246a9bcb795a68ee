// Package preview renders a portfolio document into themed HTML and holds
// the transient, document-external state of the preview: the expanded story
// panel and the contact form.
package preview

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/ziadkadry99/portfoliai/internal/portfolio"
)

// markdown converts free-text fields. Raw HTML in user text is dropped.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
)

// ViewState is the preview state that is not part of the document.
type ViewState struct {
	ExpandedStory string
	Contact       ContactSnapshot
	Year          int
}

// SkillView is one skill and whether any project proves it.
type SkillView struct {
	Name   string
	Proven bool
}

type ProfileView struct {
	Name          string
	Title         string
	Bio           template.HTML
	Email         string
	GitHub        string
	LinkedIn      string
	Twitter       string
	Picture       template.URL
	BrandKeywords []string
}

type ExperienceView struct {
	ID          string
	Company     string
	Role        string
	Period      string
	Description template.HTML
}

type StoryView struct {
	Problem  template.HTML
	Approach template.HTML
	Solution template.HTML
	Outcome  template.HTML
}

type ProjectView struct {
	ID           string
	Title        string
	Description  template.HTML
	Technologies []string
	SkillsTagged []string
	Link         string
	GitHubRepo   string
	Image        template.URL
	Story        *StoryView
	Stats        *portfolio.Stats
	// Expanded is true when this project's story panel is open.
	Expanded bool
}

// View is everything the templates need for one render.
type View struct {
	Styles      Styles
	Profile     ProfileView
	Skills      []SkillView
	Experiences []ExperienceView
	Projects    []ProjectView
	Contact     ContactSnapshot
	Year        int
}

// ProvenSkills marks each skill as proven when at least one project's tagged
// skills contain the exact, case-sensitive string.
func ProvenSkills(doc portfolio.Document) []SkillView {
	tagged := make(map[string]struct{})
	for _, p := range doc.Projects {
		for _, s := range p.SkillsTagged {
			tagged[s] = struct{}{}
		}
	}
	out := make([]SkillView, len(doc.Skills))
	for i, s := range doc.Skills {
		_, proven := tagged[s]
		out[i] = SkillView{Name: s, Proven: proven}
	}
	return out
}

// BuildView maps a document and preview state to a View. It does not modify doc.
func BuildView(doc portfolio.Document, theme Theme, mode ColorMode, state ViewState) View {
	v := View{
		Styles: StylesFor(theme, mode),
		Profile: ProfileView{
			Name:          doc.Profile.Name,
			Title:         doc.Profile.Title,
			Bio:           renderMarkdown(doc.Profile.Bio),
			Email:         doc.Profile.Email,
			GitHub:        doc.Profile.GitHub,
			LinkedIn:      doc.Profile.LinkedIn,
			Twitter:       doc.Profile.Twitter,
			Picture:       imageURL(doc.Profile.ProfilePictureURL),
			BrandKeywords: append([]string(nil), doc.Profile.BrandKeywords...),
		},
		Skills:  ProvenSkills(doc),
		Contact: state.Contact,
		Year:    state.Year,
	}
	if v.Contact.Status == "" {
		v.Contact.Status = StatusIdle
	}

	for _, e := range doc.Experiences {
		v.Experiences = append(v.Experiences, ExperienceView{
			ID:          e.ID,
			Company:     e.Company,
			Role:        e.Role,
			Period:      e.Period,
			Description: renderMarkdown(e.Description),
		})
	}

	for _, p := range doc.Projects {
		pv := ProjectView{
			ID:           p.ID,
			Title:        p.Title,
			Description:  renderMarkdown(p.Description),
			Technologies: append([]string(nil), p.Technologies...),
			SkillsTagged: append([]string(nil), p.SkillsTagged...),
			Link:         p.Link,
			GitHubRepo:   p.GitHubRepo,
			Image:        imageURL(p.ImageURL),
		}
		if p.Story != nil {
			pv.Story = &StoryView{
				Problem:  renderMarkdown(p.Story.Problem),
				Approach: renderMarkdown(p.Story.Approach),
				Solution: renderMarkdown(p.Story.Solution),
				Outcome:  renderMarkdown(p.Story.Outcome),
			}
			pv.Expanded = state.ExpandedStory == p.ID
		}
		if p.Stats != nil {
			stats := *p.Stats
			pv.Stats = &stats
		}
		v.Projects = append(v.Projects, pv)
	}
	return v
}

func renderMarkdown(s string) template.HTML {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(buf.String())
}

// imageURL admits inline data:image references and http(s) or relative URLs.
// Anything else is replaced by an empty reference.
func imageURL(s string) template.URL {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case s == "":
		return ""
	case strings.HasPrefix(lower, "data:image/"),
		strings.HasPrefix(lower, "https://"),
		strings.HasPrefix(lower, "http://"),
		strings.HasPrefix(s, "/"):
		return template.URL(s)
	case !strings.Contains(s, ":"):
		return template.URL(s)
	}
	return ""
}
