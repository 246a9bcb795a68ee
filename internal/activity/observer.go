package activity

import (
	"context"
	"log/slog"

	"github.com/ziadkadry99/portfoliai/internal/editor"
)

// Recorder logs every enrichment attempt to the store.
type Recorder struct {
	store  *Store
	actor  Actor
	logger *slog.Logger
}

// NewRecorder creates a Recorder attributing entries to actor.
func NewRecorder(store *Store, actor Actor, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{store: store, actor: actor, logger: logger}
}

// EnrichmentFinished implements editor.Observer.
func (r *Recorder) EnrichmentFinished(ctx context.Context, ev editor.Event) {
	entry := Entry{
		Timestamp:  ev.At,
		Actor:      r.actor,
		Action:     ActionEnrichment,
		OpKey:      ev.Key.String(),
		ProjectID:  ev.Key.ProjectID,
		Outcome:    string(ev.Outcome),
		DurationMS: ev.Duration.Milliseconds(),
	}
	if ev.Err != nil {
		entry.Detail = ev.Err.Error()
	}
	if err := r.store.Log(context.WithoutCancel(ctx), entry); err != nil {
		r.logger.Warn("recording activity failed", "error", err)
	}
}

// Record logs a non-enrichment action.
func (r *Recorder) Record(ctx context.Context, action Action, outcome, detail string) {
	entry := Entry{Actor: r.actor, Action: action, Outcome: outcome, Detail: detail}
	if err := r.store.Log(context.WithoutCancel(ctx), entry); err != nil {
		r.logger.Warn("recording activity failed", "error", err)
	}
}
