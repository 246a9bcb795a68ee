package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/portfoliai/internal/editor"
	"github.com/ziadkadry99/portfoliai/internal/portfolio"
	"github.com/ziadkadry99/portfoliai/internal/preview"
	"github.com/ziadkadry99/portfoliai/internal/shell"
)

// errBadRequest marks request bodies and parameters that cannot be used.
var errBadRequest = errors.New("bad request")

// valueRequest is the body of the list append endpoints.
type valueRequest struct {
	Value string `json:"value"`
}

// createdResponse reports a new entry together with the resulting snapshot.
type createdResponse struct {
	ID       string          `json:"id"`
	Snapshot editor.Snapshot `json:"snapshot"`
}

func (h *Web) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ctrl.Snapshot())
}

func (h *Web) handleMergeDocument(w http.ResponseWriter, r *http.Request) {
	var p portfolio.Patch
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, err)
		return
	}
	snap, err := h.ctrl.MergeUpdate(p)
	respond(w, http.StatusOK, snap, err)
}

func (h *Web) handleAddExperience(w http.ResponseWriter, r *http.Request) {
	e, snap, err := h.ctrl.AddExperience()
	respond(w, http.StatusCreated, createdResponse{ID: e.ID, Snapshot: snap}, err)
}

func (h *Web) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	var e portfolio.Experience
	if err := decodeJSON(r, &e); err != nil {
		writeError(w, err)
		return
	}
	e.ID = chi.URLParam(r, "id")
	snap, err := h.ctrl.UpdateExperience(e)
	respond(w, http.StatusOK, snap, err)
}

func (h *Web) handleRemoveExperience(w http.ResponseWriter, r *http.Request) {
	snap, err := h.ctrl.RemoveExperience(chi.URLParam(r, "id"))
	respond(w, http.StatusOK, snap, err)
}

func (h *Web) handleAddProject(w http.ResponseWriter, r *http.Request) {
	p, snap, err := h.ctrl.AddProject()
	respond(w, http.StatusCreated, createdResponse{ID: p.ID, Snapshot: snap}, err)
}

func (h *Web) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var p portfolio.Project
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, err)
		return
	}
	p.ID = chi.URLParam(r, "id")
	snap, err := h.ctrl.UpdateProject(p)
	respond(w, http.StatusOK, snap, err)
}

func (h *Web) handleRemoveProject(w http.ResponseWriter, r *http.Request) {
	snap, err := h.ctrl.RemoveProject(chi.URLParam(r, "id"))
	respond(w, http.StatusOK, snap, err)
}

func (h *Web) handleAddTechnology(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	snap, err := h.ctrl.AddTechnology(chi.URLParam(r, "id"), req.Value)
	respond(w, http.StatusOK, snap, err)
}

func (h *Web) handleRemoveTechnology(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	snap, err := h.ctrl.RemoveTechnology(chi.URLParam(r, "id"), index)
	respond(w, http.StatusOK, snap, err)
}

func (h *Web) handleToggleProjectSkill(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	snap, err := h.ctrl.ToggleProjectSkill(chi.URLParam(r, "id"), req.Value)
	respond(w, http.StatusOK, snap, err)
}

func (h *Web) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	snap, err := h.ctrl.AddSkill(req.Value)
	respond(w, http.StatusOK, snap, err)
}

func (h *Web) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	snap, err := h.ctrl.RemoveSkill(index)
	respond(w, http.StatusOK, snap, err)
}

func (h *Web) handleAddKeyword(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	snap, err := h.ctrl.AddBrandKeyword(req.Value)
	respond(w, http.StatusOK, snap, err)
}

func (h *Web) handleRemoveKeyword(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	snap, err := h.ctrl.RemoveBrandKeyword(index)
	respond(w, http.StatusOK, snap, err)
}

func (h *Web) handleGetShell(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.shell.State())
}

func (h *Web) handleUpdateShell(w http.ResponseWriter, r *http.Request) {
	var u shell.SettingsUpdate
	if err := decodeJSON(r, &u); err != nil {
		writeError(w, err)
		return
	}
	if _, err := h.shell.UpdateSettings(u); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.shell.State())
}

func (h *Web) handleToggleStory(w http.ResponseWriter, r *http.Request) {
	expanded := h.shell.ToggleStory(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, map[string]string{"expanded": expanded})
}

func (h *Web) handlePreviewPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.shell.Page()
	if err != nil {
		writeError(w, err)
		return
	}
	writeHTML(w, page)
}

func (h *Web) handleExport(w http.ResponseWriter, r *http.Request) {
	page, err := h.shell.ExportContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if r.URL.Query().Get("download") != "" {
		w.Header().Set("Content-Disposition", `attachment; filename="portfolio.html"`)
	}
	writeHTML(w, page)
}

// decodeJSON decodes the request body into v. Malformed bodies and unknown
// keys wrap errBadRequest.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", errBadRequest)
		}
		return fmt.Errorf("%w: invalid JSON: %v", errBadRequest, err)
	}
	return nil
}

func indexParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid index %q", errBadRequest, raw)
	}
	return n, nil
}

// respond writes v with status, or the error response for err.
func respond(w http.ResponseWriter, status int, v any, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, status, v)
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, preview.ErrUnknownTheme),
		errors.Is(err, preview.ErrUnknownColorMode),
		errors.Is(err, preview.ErrUnknownField),
		errors.Is(err, preview.ErrIncompleteForm),
		errors.Is(err, shell.ErrUnknownTab):
		return http.StatusBadRequest
	case errors.Is(err, editor.ErrProjectNotFound),
		errors.Is(err, editor.ErrExperienceNotFound),
		errors.Is(err, errUnknownOperation):
		return http.StatusNotFound
	case errors.Is(err, portfolio.ErrDuplicateID),
		errors.Is(err, preview.ErrAlreadySending),
		errors.Is(err, preview.ErrNotIdle):
		return http.StatusConflict
	case errors.Is(err, errImageTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errNotImage):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeHTML(w http.ResponseWriter, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}
