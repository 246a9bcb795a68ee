package preview

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

type headingData struct {
	Styles Styles
	Text   string
}

type pageData struct {
	View  View
	CSS   template.CSS
	Print bool
}

// Renderer executes the preview templates. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"heading": func(v View, text string) headingData {
			return headingData{Styles: v.Styles, Text: text}
		},
	}
	tmpl, err := template.New("page").Funcs(funcs).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	if _, err := tmpl.Parse(fragmentTemplate); err != nil {
		return nil, fmt.Errorf("parsing preview template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the preview fragment for embedding in another page.
func (r *Renderer) Render(w io.Writer, v View) error {
	return r.tmpl.ExecuteTemplate(w, "preview", v)
}

// RenderPage writes a standalone HTML document with inline CSS. With print
// set, the document opens the print dialog once loaded.
func (r *Renderer) RenderPage(w io.Writer, v View, print bool) error {
	return r.tmpl.ExecuteTemplate(w, "page", pageData{View: v, CSS: template.CSS(cssContent), Print: print})
}

// Stylesheet returns the CSS the fragment needs.
func Stylesheet() string { return cssContent }

// RenderString renders the fragment to a string.
func (r *Renderer) RenderString(v View) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}
