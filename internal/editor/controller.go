// Package editor owns the portfolio document being edited. All writes go
// through MergeUpdate; readers always receive deep copies.
package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ziadkadry99/portfoliai/internal/gateway"
	"github.com/ziadkadry99/portfoliai/internal/portfolio"
)

var (
	// ErrProjectNotFound is returned when an element edit names an unknown project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrExperienceNotFound is returned when an element edit names an unknown experience.
	ErrExperienceNotFound = errors.New("experience not found")
)

// DefaultTimeout bounds a single enrichment call.
const DefaultTimeout = 60 * time.Second

// Snapshot is an immutable, versioned copy of the document.
type Snapshot struct {
	Version  uint64             `json:"version"`
	Document portfolio.Document `json:"document"`
}

// Controller is the single writer of the document.
type Controller struct {
	mu      sync.Mutex
	snap    Snapshot
	subs    map[int]chan uint64
	nextSub int

	gateway   gateway.Gateway
	busy      *BusySet
	timeout   time.Duration
	observers []Observer
	logger    *slog.Logger

	// followCaller lets caller cancellation abort gateway calls.
	followCaller bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithGateway sets the enrichment gateway.
func WithGateway(g gateway.Gateway) Option {
	return func(c *Controller) { c.gateway = g }
}

// WithTimeout bounds each enrichment call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) { c.timeout = d }
}

// WithCallerCancellation makes enrichment calls stop when the caller's
// context is cancelled. By default a call outlives its caller.
func WithCallerCancellation() Option {
	return func(c *Controller) { c.followCaller = true }
}

// WithObserver registers observers of enrichment attempts.
func WithObserver(obs ...Observer) Option {
	return func(c *Controller) { c.observers = append(c.observers, obs...) }
}

// WithLogger sets the logger used for the diagnostic channel.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// New creates a Controller holding doc at version 1.
func New(doc portfolio.Document, opts ...Option) (*Controller, error) {
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("initial document: %w", err)
	}
	c := &Controller{
		snap:    Snapshot{Version: 1, Document: doc.Clone()},
		subs:    make(map[int]chan uint64),
		busy:    NewBusySet(),
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Snapshot returns a deep copy of the current snapshot.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Document returns a deep copy of the current document.
func (c *Controller) Document() portfolio.Document {
	return c.Snapshot().Document
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{Version: c.snap.Version, Document: c.snap.Document.Clone()}
}

// MergeUpdate overwrites every field present in p and leaves the rest
// untouched. Slices are replaced wholesale, so a caller merging an array
// derived from a stale snapshot overwrites edits made since then.
// A patch that would duplicate an experience or project id is refused
// and the document is left unchanged.
func (c *Controller) MergeUpdate(p portfolio.Patch) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mergeLocked(p)
}

// Modify computes a patch from the current document and merges it while
// holding the writer lock, so concurrent element edits do not overwrite each
// other. An empty patch is a no-op and does not bump the version.
func (c *Controller) Modify(fn func(doc portfolio.Document) (portfolio.Patch, error)) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := fn(c.snap.Document.Clone())
	if err != nil {
		return c.snapshotLocked(), err
	}
	return c.mergeLocked(p)
}

func (c *Controller) mergeLocked(p portfolio.Patch) (Snapshot, error) {
	if p.IsEmpty() {
		return c.snapshotLocked(), nil
	}
	next := p.Apply(c.snap.Document)
	if err := next.Validate(); err != nil {
		return c.snapshotLocked(), fmt.Errorf("merge update: %w", err)
	}
	c.snap = Snapshot{Version: c.snap.Version + 1, Document: next}
	c.notifyLocked()
	return c.snapshotLocked(), nil
}

// Subscribe returns a channel that receives the latest version after every
// change, including busy-flag changes. Slow readers only see the newest
// value. cancel closes the channel.
func (c *Controller) Subscribe() (<-chan uint64, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	ch := make(chan uint64, 1)
	c.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// touch notifies subscribers without changing the document.
func (c *Controller) touch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifyLocked()
}

func (c *Controller) notifyLocked() {
	v := c.snap.Version
	for _, ch := range c.subs {
		select {
		case ch <- v:
		default:
			// Replace the stale pending value.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
}
