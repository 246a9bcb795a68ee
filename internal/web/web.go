// Package web serves the editor page, the JSON editing API and the live
// preview websocket.
package web

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/portfoliai/internal/activity"
	"github.com/ziadkadry99/portfoliai/internal/editor"
	"github.com/ziadkadry99/portfoliai/internal/shell"
)

// DefaultMaxImageBytes caps uploaded images when no limit is configured.
const DefaultMaxImageBytes = 2 << 20

// Web provides the editor page and its API.
type Web struct {
	shell         *shell.Shell
	ctrl          *editor.Controller
	maxImageBytes int64
	recorder      *activity.Recorder
	logger        *slog.Logger
}

// Option configures a Web.
type Option func(*Web)

// WithMaxImageBytes caps the size of uploaded images.
func WithMaxImageBytes(n int64) Option {
	return func(w *Web) {
		if n > 0 {
			w.maxImageBytes = n
		}
	}
}

// WithRecorder records contact submissions in the activity log.
func WithRecorder(r *activity.Recorder) Option {
	return func(w *Web) { w.recorder = r }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Web) { w.logger = l }
}

// New creates a Web around sh.
func New(sh *shell.Shell, opts ...Option) *Web {
	h := &Web{
		shell:         sh,
		ctrl:          sh.Controller(),
		maxImageBytes: DefaultMaxImageBytes,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterRoutes mounts all editor routes onto the given router.
func (h *Web) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ServeIndex)
	r.Get("/preview", h.handlePreviewPage)
	r.Get("/preview.css", h.ServeStylesheet)
	r.Get("/export", h.handleExport)
	r.Get("/ws/preview", h.handlePreviewSocket)

	r.Route("/api", func(r chi.Router) {
		r.Get("/document", h.handleGetDocument)
		r.Patch("/document", h.handleMergeDocument)

		r.Post("/experiences", h.handleAddExperience)
		r.Patch("/experiences/{id}", h.handleUpdateExperience)
		r.Delete("/experiences/{id}", h.handleRemoveExperience)

		r.Post("/projects", h.handleAddProject)
		r.Patch("/projects/{id}", h.handleUpdateProject)
		r.Delete("/projects/{id}", h.handleRemoveProject)
		r.Post("/projects/{id}/technologies", h.handleAddTechnology)
		r.Delete("/projects/{id}/technologies/{index}", h.handleRemoveTechnology)
		r.Post("/projects/{id}/skills/toggle", h.handleToggleProjectSkill)
		r.Post("/projects/{id}/image", h.handleProjectImage)
		r.Post("/projects/{id}/enrich/{op}", h.handleEnrichProject)

		r.Post("/skills", h.handleAddSkill)
		r.Delete("/skills/{index}", h.handleRemoveSkill)
		r.Post("/keywords", h.handleAddKeyword)
		r.Delete("/keywords/{index}", h.handleRemoveKeyword)

		r.Post("/images/profile", h.handleProfileImage)

		r.Post("/enrich/{op}", h.handleEnrich)
		r.Get("/busy", h.handleBusy)

		r.Get("/shell", h.handleGetShell)
		r.Put("/shell", h.handleUpdateShell)
		r.Post("/preview/stories/{id}", h.handleToggleStory)

		r.Get("/contact", h.handleGetContact)
		r.Put("/contact", h.handleUpdateContact)
		r.Post("/contact/submit", h.handleSubmitContact)
		r.Post("/contact/reset", h.handleResetContact)
	})
}
