// Package shell composes the edit controller and the preview renderer into
// the application the editor page, the MCP server and the CLI drive.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ziadkadry99/portfoliai/internal/activity"
	"github.com/ziadkadry99/portfoliai/internal/contact"
	"github.com/ziadkadry99/portfoliai/internal/editor"
	"github.com/ziadkadry99/portfoliai/internal/metrics"
	"github.com/ziadkadry99/portfoliai/internal/preview"
)

// ErrUnknownTab is returned for a tab other than editor or preview.
var ErrUnknownTab = errors.New("unknown tab")

// Tab is the active pane of the editor page.
type Tab string

const (
	TabEditor  Tab = "editor"
	TabPreview Tab = "preview"
)

// ParseTab accepts "editor" or "preview" in any case.
func ParseTab(s string) (Tab, error) {
	switch t := Tab(strings.ToLower(strings.TrimSpace(s))); t {
	case TabEditor, TabPreview:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// Settings are the presentation choices of the session.
type Settings struct {
	Theme preview.Theme     `json:"theme"`
	Mode  preview.ColorMode `json:"mode"`
	Tab   Tab               `json:"tab"`
}

// DefaultSettings is modern, light, editor tab.
func DefaultSettings() Settings {
	return Settings{Theme: preview.ThemeModern, Mode: preview.ModeLight, Tab: TabEditor}
}

// SettingsUpdate changes some settings. Dark is the dark-mode switch and is
// applied after Mode when both are set.
type SettingsUpdate struct {
	Theme *string `json:"theme,omitempty"`
	Mode  *string `json:"mode,omitempty"`
	Dark  *bool   `json:"dark,omitempty"`
	Tab   *string `json:"tab,omitempty"`
}

// State is everything the editor page shows besides the document itself.
type State struct {
	Version       uint64                  `json:"version"`
	Settings      Settings                `json:"settings"`
	ExpandedStory string                  `json:"expanded_story,omitempty"`
	Contact       preview.ContactSnapshot `json:"contact"`
	Busy          []editor.OpKey          `json:"busy"`
}

// Frame is one live preview push.
type Frame struct {
	Type     string         `json:"type"`
	Version  uint64         `json:"version"`
	HTML     string         `json:"html"`
	Busy     []editor.OpKey `json:"busy"`
	Settings Settings       `json:"settings"`
}

// Shell holds the UI state around one controller.
type Shell struct {
	ctrl     *editor.Controller
	renderer *preview.Renderer
	stories  *preview.StorySelector
	form     *preview.ContactForm

	mu       sync.Mutex
	settings Settings
	subs     map[int]chan struct{}
	nextSub  int

	now      func() time.Time
	recorder *activity.Recorder
	formOpts []preview.ContactOption
	logger   *slog.Logger
}

// Option configures a Shell.
type Option func(*Shell)

// WithSettings sets the initial settings.
func WithSettings(s Settings) Option {
	return func(sh *Shell) { sh.settings = s }
}

// WithClock replaces time.Now, used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(sh *Shell) { sh.now = now }
}

// WithRecorder records exports in the activity log.
func WithRecorder(r *activity.Recorder) Option {
	return func(sh *Shell) { sh.recorder = r }
}

// WithContactOptions passes options to the contact form.
func WithContactOptions(opts ...preview.ContactOption) Option {
	return func(sh *Shell) { sh.formOpts = append(sh.formOpts, opts...) }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(sh *Shell) { sh.logger = l }
}

// New builds a Shell around ctrl. Contact form messages go to sender.
func New(ctrl *editor.Controller, sender contact.Sender, opts ...Option) (*Shell, error) {
	renderer, err := preview.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	sh := &Shell{
		ctrl:     ctrl,
		renderer: renderer,
		stories:  &preview.StorySelector{},
		settings: DefaultSettings(),
		subs:     make(map[int]chan struct{}),
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(sh)
	}
	formOpts := append([]preview.ContactOption{preview.WithFormLogger(sh.logger)}, sh.formOpts...)
	formOpts = append(formOpts, preview.WithOnChange(func(preview.ContactSnapshot) { sh.changed() }))
	sh.form = preview.NewContactForm(sender, formOpts...)
	return sh, nil
}

// Controller returns the edit controller.
func (sh *Shell) Controller() *editor.Controller { return sh.ctrl }

// Contact returns the preview's contact form.
func (sh *Shell) Contact() *preview.ContactForm { return sh.form }

// Settings returns the current settings.
func (sh *Shell) Settings() Settings {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.settings
}

// UpdateSettings applies u. Nothing changes when any value is invalid.
// Only the fields present in u are written, so concurrent updates to
// different fields do not overwrite each other.
func (sh *Shell) UpdateSettings(u SettingsUpdate) (Settings, error) {
	var (
		theme preview.Theme
		mode  preview.ColorMode
		tab   Tab
		err   error
	)
	if u.Theme != nil {
		if theme, err = preview.ParseTheme(*u.Theme); err != nil {
			return sh.Settings(), err
		}
	}
	if u.Mode != nil {
		if mode, err = preview.ParseColorMode(*u.Mode); err != nil {
			return sh.Settings(), err
		}
	}
	if u.Tab != nil {
		if tab, err = ParseTab(*u.Tab); err != nil {
			return sh.Settings(), err
		}
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if u.Theme != nil {
		sh.settings.Theme = theme
	}
	if u.Mode != nil {
		sh.settings.Mode = mode
	}
	if u.Dark != nil {
		sh.settings.Mode = preview.ModeFor(*u.Dark)
	}
	if u.Tab != nil {
		sh.settings.Tab = tab
	}
	sh.notifyLocked()
	return sh.settings, nil
}

// ToggleStory opens the story panel of projectID, or closes it when it is
// already open. It returns the id of the open panel, or "".
func (sh *Shell) ToggleStory(projectID string) string {
	active := sh.stories.Toggle(projectID)
	sh.changed()
	return active
}

// State returns the UI state together with the current version and busy keys.
func (sh *Shell) State() State {
	return State{
		Version:       sh.ctrl.Snapshot().Version,
		Settings:      sh.Settings(),
		ExpandedStory: sh.stories.Expanded(),
		Contact:       sh.form.Snapshot(),
		Busy:          sh.ctrl.BusyKeys(),
	}
}

// View builds the preview view of the current document.
func (sh *Shell) View() (preview.View, editor.Snapshot) {
	snap := sh.ctrl.Snapshot()
	settings := sh.Settings()
	state := preview.ViewState{
		ExpandedStory: sh.stories.Expanded(),
		Contact:       sh.form.Snapshot(),
		Year:          sh.now().Year(),
	}
	return preview.BuildView(snap.Document, settings.Theme, settings.Mode, state), snap
}

// Preview renders the preview fragment of the current document.
func (sh *Shell) Preview() ([]byte, error) {
	b, _, err := sh.render()
	return b, err
}

// Frame renders the preview and packages it for a live preview client.
func (sh *Shell) Frame() (Frame, error) {
	b, snap, err := sh.render()
	if err != nil {
		return Frame{}, err
	}
	return Frame{
		Type:     "preview",
		Version:  snap.Version,
		HTML:     string(b),
		Busy:     sh.ctrl.BusyKeys(),
		Settings: sh.Settings(),
	}, nil
}

func (sh *Shell) render() ([]byte, editor.Snapshot, error) {
	view, snap := sh.View()
	var buf bytes.Buffer
	if err := sh.renderer.Render(&buf, view); err != nil {
		return nil, snap, fmt.Errorf("rendering preview: %w", err)
	}
	metrics.PreviewRenders.WithLabelValues(string(view.Styles.Theme), string(view.Styles.Mode)).Inc()
	metrics.DocumentVersion.Set(float64(snap.Version))
	return buf.Bytes(), snap, nil
}

// Page renders the current preview as a standalone page.
func (sh *Shell) Page() ([]byte, error) {
	view, _ := sh.View()
	var buf bytes.Buffer
	if err := sh.renderer.RenderPage(&buf, view, false); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	metrics.PreviewRenders.WithLabelValues(string(view.Styles.Theme), string(view.Styles.Mode)).Inc()
	return buf.Bytes(), nil
}

// Export renders the current preview as a standalone page that opens the
// print dialog when loaded.
func (sh *Shell) Export() ([]byte, error) {
	return sh.ExportContext(context.Background())
}

// ExportContext is Export with a context for the activity log.
func (sh *Shell) ExportContext(ctx context.Context) ([]byte, error) {
	view, snap := sh.View()
	var buf bytes.Buffer
	err := sh.renderer.RenderPage(&buf, view, true)
	if err != nil {
		err = fmt.Errorf("rendering export: %w", err)
		sh.logger.Error("export failed", "error", err)
	} else {
		sh.logger.Info("exported portfolio", "version", snap.Version, "theme", view.Styles.Theme, "bytes", buf.Len())
	}
	if sh.recorder != nil {
		outcome, detail := "ok", fmt.Sprintf("version %d, %s/%s", snap.Version, view.Styles.Theme, view.Styles.Mode)
		if err != nil {
			outcome, detail = "failed", err.Error()
		}
		sh.recorder.Record(ctx, activity.ActionExport, outcome, detail)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Subscribe returns a channel signalled after every document, busy-flag or
// UI state change. Signals coalesce; readers fetch State or Frame after
// each one. cancel closes the channel.
func (sh *Shell) Subscribe() (<-chan struct{}, func()) {
	out := make(chan struct{}, 1)
	docCh, docCancel := sh.ctrl.Subscribe()

	sh.mu.Lock()
	id := sh.nextSub
	sh.nextSub++
	sh.subs[id] = out
	sh.mu.Unlock()

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		for {
			select {
			case _, ok := <-docCh:
				if !ok {
					return
				}
				signal(out)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			docCancel()
			<-stopped
			sh.mu.Lock()
			delete(sh.subs, id)
			sh.mu.Unlock()
			close(out)
		})
	}
	return out, cancel
}

func (sh *Shell) changed() {
	sh.mu.Lock()
	sh.notifyLocked()
	sh.mu.Unlock()
}

func (sh *Shell) notifyLocked() {
	for _, ch := range sh.subs {
		signal(ch)
	}
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
