package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/portfoliai/internal/editor"
)

var errUnknownOperation = errors.New("unknown enrichment operation")

// handleEnrich runs a document-wide enrichment. Provider failures are
// reported in the body with status 200; the document is left unchanged.
func (h *Web) handleEnrich(w http.ResponseWriter, r *http.Request) {
	var run func(ctx context.Context) editor.Result
	switch op := chi.URLParam(r, "op"); op {
	case "bio":
		run = h.ctrl.EnhanceBio
	case "skills":
		run = h.ctrl.SuggestSkills
	case "keywords", "brand":
		run = h.ctrl.SuggestBrandKeywords
	default:
		writeError(w, fmt.Errorf("%w: %q", errUnknownOperation, op))
		return
	}
	writeJSON(w, http.StatusOK, run(r.Context()))
}

// handleEnrichProject runs a per-project enrichment.
func (h *Web) handleEnrichProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var run func(ctx context.Context, projectID string) (editor.Result, error)
	switch op := chi.URLParam(r, "op"); op {
	case "story":
		run = h.ctrl.GenerateProjectStory
	case "description":
		run = h.ctrl.EnhanceProjectDescription
	default:
		writeError(w, fmt.Errorf("%w: %q", errUnknownOperation, op))
		return
	}
	res, err := run(r.Context(), id)
	respond(w, http.StatusOK, res, err)
}

func (h *Web) handleBusy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]editor.OpKey{"busy": h.ctrl.BusyKeys()})
}
