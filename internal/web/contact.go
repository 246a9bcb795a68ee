package web

import (
	"context"
	"net/http"

	"github.com/ziadkadry99/portfoliai/internal/activity"
	"github.com/ziadkadry99/portfoliai/internal/preview"
)

func (h *Web) handleGetContact(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.shell.Contact().Snapshot())
}

func (h *Web) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	var fields preview.ContactFields
	if err := decodeJSON(r, &fields); err != nil {
		writeError(w, err)
		return
	}
	form := h.shell.Contact()
	form.SetFields(fields)
	writeJSON(w, http.StatusOK, form.Snapshot())
}

// handleSubmitContact starts delivery and answers immediately with the
// sending state. The outcome arrives over the live preview socket.
func (h *Web) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	form := h.shell.Contact()
	done, err := form.Submit(context.WithoutCancel(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	if h.recorder != nil {
		go func() {
			<-done
			snap := form.Snapshot()
			outcome := "sent"
			if snap.Error != "" {
				outcome = "failed"
			}
			h.recorder.Record(context.Background(), activity.ActionContact, outcome, snap.Error)
		}()
	}
	writeJSON(w, http.StatusAccepted, form.Snapshot())
}

func (h *Web) handleResetContact(w http.ResponseWriter, r *http.Request) {
	form := h.shell.Contact()
	form.Reset()
	writeJSON(w, http.StatusOK, form.Snapshot())
}
