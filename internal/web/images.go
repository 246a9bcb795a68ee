package web

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
)

var (
	errImageTooLarge = errors.New("image too large")
	errNotImage      = errors.New("uploaded file is not an image")
)

// multipartOverhead leaves room for boundaries and headers around the file.
const multipartOverhead = 64 << 10

func (h *Web) handleProfileImage(w http.ResponseWriter, r *http.Request) {
	ref, err := h.readImage(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	snap, err := h.ctrl.SetProfilePicture(ref)
	respond(w, http.StatusOK, snap, err)
}

func (h *Web) handleProjectImage(w http.ResponseWriter, r *http.Request) {
	ref, err := h.readImage(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	snap, err := h.ctrl.SetProjectImage(chi.URLParam(r, "id"), ref)
	respond(w, http.StatusOK, snap, err)
}

// readImage reads the "image" part of a multipart upload and returns it as a
// data: URL. The content type is sniffed from the bytes, not taken from the
// client.
func (h *Web) readImage(w http.ResponseWriter, r *http.Request) (string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxImageBytes+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxImageBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			return "", fmt.Errorf("%w: limit is %d bytes", errImageTooLarge, h.maxImageBytes)
		}
		return "", fmt.Errorf("%w: reading upload: %v", errBadRequest, err)
	}
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile("image")
	if err != nil {
		return "", fmt.Errorf("%w: missing image field: %v", errBadRequest, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	if int64(len(data)) > h.maxImageBytes {
		return "", fmt.Errorf("%w: limit is %d bytes", errImageTooLarge, h.maxImageBytes)
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", errNotImage, mt.String())
	}
	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
