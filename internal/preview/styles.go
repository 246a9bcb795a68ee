package preview

import (
	"fmt"
	"html/template"
	"strings"
)

// Palette holds the colors of one (theme, mode) pair as CSS hex values.
type Palette struct {
	Background string
	Surface    string
	Text       string
	Muted      string
	Accent     string
	AccentSoft string
	Border     string
}

// StoryStyles styles the expanded story panel.
type StoryStyles struct {
	Container string
	Header    string
	Label     string
	Content   string
}

// Styles is the complete style descriptor for one render. It is looked up
// once per render from the style table; templates never branch on the theme.
type Styles struct {
	Theme   Theme
	Mode    ColorMode
	Palette Palette

	Container      string
	Header         string
	Name           string
	Title          string
	Bio            string
	SectionHeading string
	Card           string
	CardTitle      string
	Footer         string
	Story          StoryStyles
	Input          string
	Submit         string

	// HeadingAccent draws an accent bar before section headings.
	HeadingAccent bool
	// ExperienceTimeline puts the period in a side column instead of next
	// to the company.
	ExperienceTimeline bool
	// ProjectColumns is the number of project cards per row.
	ProjectColumns int
	// ContactSplit places the contact blurb and form side by side.
	ContactSplit bool
}

// RootClass is the class list of the outermost preview element.
func (s Styles) RootClass() string {
	return fmt.Sprintf("pf pf-%s pf-%s", s.Theme, s.Mode)
}

// CSSVars renders the palette as CSS custom properties for a style attribute.
func (s Styles) CSSVars() template.CSS {
	p := s.Palette
	vars := []string{
		"--pf-bg:" + p.Background,
		"--pf-surface:" + p.Surface,
		"--pf-text:" + p.Text,
		"--pf-muted:" + p.Muted,
		"--pf-accent:" + p.Accent,
		"--pf-accent-soft:" + p.AccentSoft,
		"--pf-border:" + p.Border,
	}
	return template.CSS(strings.Join(vars, ";"))
}

// Label is the "THEME - MODE" caption shown above a live preview.
func (s Styles) Label() string {
	return strings.ToUpper(string(s.Theme)) + " - " + strings.ToUpper(string(s.Mode))
}

type styleKey struct {
	theme Theme
	mode  ColorMode
}

var palettes = map[styleKey]Palette{
	{ThemeModern, ModeLight}: {
		Background: "#ffffff", Surface: "#f8fafc", Text: "#0f172a", Muted: "#475569",
		Accent: "#4f46e5", AccentSoft: "#eef2ff", Border: "#e2e8f0",
	},
	{ThemeModern, ModeDark}: {
		Background: "#0f172a", Surface: "#1e293b", Text: "#f8fafc", Muted: "#cbd5e1",
		Accent: "#818cf8", AccentSoft: "#1e1b4b", Border: "#334155",
	},
	{ThemeMinimal, ModeLight}: {
		Background: "#ffffff", Surface: "#f8fafc", Text: "#0f172a", Muted: "#64748b",
		Accent: "#0f172a", AccentSoft: "#f1f5f9", Border: "#f1f5f9",
	},
	{ThemeMinimal, ModeDark}: {
		Background: "#0f172a", Surface: "#1e293b", Text: "#ffffff", Muted: "#94a3b8",
		Accent: "#818cf8", AccentSoft: "#1e293b", Border: "#1e293b",
	},
	{ThemeCreative, ModeLight}: {
		Background: "#ffffff", Surface: "#ffffff", Text: "#0f172a", Muted: "#64748b",
		Accent: "#312e81", AccentSoft: "#e0e7ff", Border: "#0f172a",
	},
	{ThemeCreative, ModeDark}: {
		Background: "#0f172a", Surface: "#1e293b", Text: "#ffffff", Muted: "#94a3b8",
		Accent: "#818cf8", AccentSoft: "#312e81", Border: "#334155",
	},
}

var layouts = map[Theme]Styles{
	ThemeModern: {
		Container:      "pf-container pf-container-wide",
		Header:         "pf-header pf-header-split",
		Name:           "pf-name pf-name-bold",
		Title:          "pf-title pf-title-accent",
		Bio:            "pf-bio",
		SectionHeading: "pf-heading pf-heading-accent",
		Card:           "pf-card pf-card-soft",
		CardTitle:      "pf-card-title",
		Footer:         "pf-footer pf-footer-centered",
		Story: StoryStyles{
			Container: "pf-story pf-story-rounded",
			Header:    "pf-story-header",
			Label:     "pf-story-label pf-mono",
			Content:   "pf-story-content",
		},
		Input:              "pf-input pf-input-boxed",
		Submit:             "pf-submit pf-submit-rounded",
		HeadingAccent:      true,
		ExperienceTimeline: true,
		ProjectColumns:     2,
		ContactSplit:       true,
	},
	ThemeMinimal: {
		Container:      "pf-container pf-container-narrow",
		Header:         "pf-header",
		Name:           "pf-name pf-name-light",
		Title:          "pf-title",
		Bio:            "pf-bio",
		SectionHeading: "pf-heading pf-heading-rule",
		Card:           "pf-card pf-card-plain",
		CardTitle:      "pf-card-title",
		Footer:         "pf-footer pf-footer-spread",
		Story: StoryStyles{
			Container: "pf-story pf-story-rule",
			Header:    "pf-story-header pf-upper",
			Label:     "pf-story-label",
			Content:   "pf-story-content",
		},
		Input:          "pf-input pf-input-underline",
		Submit:         "pf-submit pf-submit-solid",
		ProjectColumns: 2,
	},
	ThemeCreative: {
		Container:      "pf-container pf-container-wide pf-serif",
		Header:         "pf-header pf-header-centered",
		Name:           "pf-name pf-name-display",
		Title:          "pf-title pf-upper pf-tracked",
		Bio:            "pf-bio pf-bio-large",
		SectionHeading: "pf-heading pf-heading-marker",
		Card:           "pf-card pf-card-offset",
		CardTitle:      "pf-card-title pf-card-title-large",
		Footer:         "pf-footer pf-footer-centered",
		Story: StoryStyles{
			Container: "pf-story pf-story-offset",
			Header:    "pf-story-header pf-serif pf-italic",
			Label:     "pf-story-label pf-serif",
			Content:   "pf-story-content pf-serif",
		},
		Input:          "pf-input pf-input-thick",
		Submit:         "pf-submit pf-submit-offset",
		ProjectColumns: 1,
	},
}

var styleTable = buildStyleTable()

func buildStyleTable() map[styleKey]Styles {
	table := make(map[styleKey]Styles, len(Themes)*len(ColorModes))
	for _, t := range Themes {
		for _, m := range ColorModes {
			s := layouts[t]
			s.Theme, s.Mode = t, m
			s.Palette = palettes[styleKey{t, m}]
			table[styleKey{t, m}] = s
		}
	}
	return table
}

// StylesFor returns the style descriptor for a theme and mode. Unknown
// values fall back to modern and light.
func StylesFor(t Theme, m ColorMode) Styles {
	if s, ok := styleTable[styleKey{t, m}]; ok {
		return s
	}
	if _, ok := layouts[t]; !ok {
		t = ThemeModern
	}
	if m != ModeDark {
		m = ModeLight
	}
	return styleTable[styleKey{t, m}]
}
