package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ziadkadry99/portfoliai/internal/contact"
)

// DefaultResetDelay is how long the form shows success before returning to idle.
const DefaultResetDelay = 5 * time.Second

var (
	// ErrAlreadySending is returned by Submit while a send is in flight.
	ErrAlreadySending = errors.New("contact form is already sending")
	// ErrNotIdle is returned by Submit while the success message is shown.
	ErrNotIdle = errors.New("contact form is not ready for a new message")
	// ErrIncompleteForm is returned by Submit when a required field is blank.
	ErrIncompleteForm = errors.New("name, email and message are required")
	// ErrUnknownField is returned by SetField for a field the form lacks.
	ErrUnknownField = errors.New("unknown contact field")
)

// FormStatus is the state of the contact form.
type FormStatus string

const (
	StatusIdle    FormStatus = "idle"
	StatusSending FormStatus = "sending"
	StatusSuccess FormStatus = "success"
)

// ContactFields are the form's input bindings.
type ContactFields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactSnapshot is a copy of the form state.
type ContactSnapshot struct {
	Status FormStatus    `json:"status"`
	Fields ContactFields `json:"fields"`
	// Error describes the last failed delivery. It is cleared by the next submit.
	Error string `json:"error,omitempty"`
}

// AfterFunc schedules f after d and returns a function that cancels it.
type AfterFunc func(d time.Duration, f func()) (stop func() bool)

func realAfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// ContactForm is the idle -> sending -> success -> idle state machine behind
// the preview's contact section. Delivery goes through a contact.Sender.
type ContactForm struct {
	mu     sync.Mutex
	status FormStatus
	fields ContactFields
	err    string

	// gen invalidates pending auto-reset timers.
	gen       uint64
	stopTimer func() bool

	sender     contact.Sender
	resetDelay time.Duration
	afterFunc  AfterFunc
	onChange   func(ContactSnapshot)
	logger     *slog.Logger
}

// ContactOption configures a ContactForm.
type ContactOption func(*ContactForm)

// WithResetDelay sets how long success is shown before reverting to idle.
func WithResetDelay(d time.Duration) ContactOption {
	return func(f *ContactForm) { f.resetDelay = d }
}

// WithAfterFunc replaces the timer used for the auto-reset.
func WithAfterFunc(af AfterFunc) ContactOption {
	return func(f *ContactForm) { f.afterFunc = af }
}

// WithOnChange registers a callback run after every state transition.
func WithOnChange(fn func(ContactSnapshot)) ContactOption {
	return func(f *ContactForm) { f.onChange = fn }
}

// WithFormLogger sets the logger for delivery failures.
func WithFormLogger(l *slog.Logger) ContactOption {
	return func(f *ContactForm) { f.logger = l }
}

// NewContactForm creates an idle form delivering through sender.
func NewContactForm(sender contact.Sender, opts ...ContactOption) *ContactForm {
	f := &ContactForm{
		status:     StatusIdle,
		sender:     sender,
		resetDelay: DefaultResetDelay,
		afterFunc:  realAfterFunc,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Snapshot returns the current state.
func (f *ContactForm) Snapshot() ContactSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *ContactForm) snapshotLocked() ContactSnapshot {
	return ContactSnapshot{Status: f.status, Fields: f.fields, Error: f.err}
}

// SetField updates one input binding: "name", "email" or "message".
func (f *ContactForm) SetField(field, value string) error {
	f.mu.Lock()
	switch field {
	case "name":
		f.fields.Name = value
	case "email":
		f.fields.Email = value
	case "message":
		f.fields.Message = value
	default:
		f.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	snap := f.snapshotLocked()
	f.mu.Unlock()

	f.changed(snap)
	return nil
}

// SetFields replaces all input bindings.
func (f *ContactForm) SetFields(fields ContactFields) {
	f.mu.Lock()
	f.fields = fields
	snap := f.snapshotLocked()
	f.mu.Unlock()

	f.changed(snap)
}

// Submit moves an idle form to sending and delivers the current fields in
// the background. The returned channel is closed once the delivery has
// settled. On success the fields are cleared and the form shows success
// until Reset or the reset delay elapses; on failure it returns to idle with
// the fields kept.
func (f *ContactForm) Submit(ctx context.Context) (<-chan struct{}, error) {
	f.mu.Lock()
	switch f.status {
	case StatusSending:
		f.mu.Unlock()
		return nil, ErrAlreadySending
	case StatusSuccess:
		f.mu.Unlock()
		return nil, ErrNotIdle
	}
	if strings.TrimSpace(f.fields.Name) == "" ||
		strings.TrimSpace(f.fields.Email) == "" ||
		strings.TrimSpace(f.fields.Message) == "" {
		f.mu.Unlock()
		return nil, ErrIncompleteForm
	}

	f.status = StatusSending
	f.err = ""
	f.gen++
	gen := f.gen
	msg := contact.Message{
		ID:         uuid.New().String(),
		Name:       f.fields.Name,
		Email:      f.fields.Email,
		Body:       f.fields.Message,
		ReceivedAt: time.Now(),
	}
	snap := f.snapshotLocked()
	f.mu.Unlock()

	f.changed(snap)

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.deliver(context.WithoutCancel(ctx), gen, msg)
	}()
	return done, nil
}

func (f *ContactForm) deliver(ctx context.Context, gen uint64, msg contact.Message) {
	var err error
	if f.sender == nil {
		err = errors.New("no contact sender configured")
	} else {
		err = f.sender.Send(ctx, msg)
	}

	f.mu.Lock()
	if f.gen != gen || f.status != StatusSending {
		f.mu.Unlock()
		return
	}
	if err != nil {
		f.status = StatusIdle
		f.err = err.Error()
		snap := f.snapshotLocked()
		f.mu.Unlock()

		f.logger.Warn("contact delivery failed", "error", err)
		f.changed(snap)
		return
	}

	f.status = StatusSuccess
	f.fields = ContactFields{}
	f.stopTimer = f.afterFunc(f.resetDelay, func() { f.expire(gen) })
	snap := f.snapshotLocked()
	f.mu.Unlock()

	f.changed(snap)
}

// expire reverts a success state that is still the one the timer was set for.
func (f *ContactForm) expire(gen uint64) {
	f.mu.Lock()
	if f.gen != gen || f.status != StatusSuccess {
		f.mu.Unlock()
		return
	}
	f.status = StatusIdle
	f.stopTimer = nil
	snap := f.snapshotLocked()
	f.mu.Unlock()

	f.changed(snap)
}

// Reset returns a form showing success to idle ("send another message").
// It does nothing in other states.
func (f *ContactForm) Reset() {
	f.mu.Lock()
	if f.status != StatusSuccess {
		f.mu.Unlock()
		return
	}
	if f.stopTimer != nil {
		f.stopTimer()
		f.stopTimer = nil
	}
	f.gen++
	f.status = StatusIdle
	snap := f.snapshotLocked()
	f.mu.Unlock()

	f.changed(snap)
}

func (f *ContactForm) changed(snap ContactSnapshot) {
	if f.onChange != nil {
		f.onChange(snap)
	}
}
