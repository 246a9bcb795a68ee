package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ziadkadry99/portfoliai/internal/portfolio"
)

// ErrNoGateway is reported when enrichment is requested without a gateway.
var ErrNoGateway = errors.New("no enrichment gateway configured")

// Outcome is the result class of one enrichment attempt.
type Outcome string

const (
	// OutcomeApplied means the result was merged into the document.
	OutcomeApplied Outcome = "applied"
	// OutcomeNoResult means the call succeeded but produced nothing to merge.
	OutcomeNoResult Outcome = "no_result"
	// OutcomeBusy means the same operation was already in flight; no call was made.
	OutcomeBusy Outcome = "busy"
	// OutcomeFailed means the call failed; the document is unchanged.
	OutcomeFailed Outcome = "failed"
)

// Result reports one enrichment attempt to the caller.
type Result struct {
	Key     OpKey   `json:"key"`
	Outcome Outcome `json:"outcome"`
	Version uint64  `json:"version"`
	Error   string  `json:"error,omitempty"`
	Err     error   `json:"-"`
}

// Event is delivered to observers after every attempt, including busy refusals.
type Event struct {
	Key      OpKey
	Outcome  Outcome
	Err      error
	Duration time.Duration
	At       time.Time
}

// Observer receives enrichment events. Calls are synchronous.
type Observer interface {
	EnrichmentFinished(ctx context.Context, ev Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, ev Event)

func (f ObserverFunc) EnrichmentFinished(ctx context.Context, ev Event) { f(ctx, ev) }

// Busy reports whether the operation is in flight.
func (c *Controller) Busy(k OpKey) bool { return c.busy.IsBusy(k) }

// BusyKeys lists the operations in flight.
func (c *Controller) BusyKeys() []OpKey { return c.busy.Keys() }

// mergeFunc turns a gateway result into a patch against the document current
// at merge time. An empty patch means there is nothing to merge.
type mergeFunc func(doc portfolio.Document) portfolio.Patch

// EnhanceBio rewrites the profile bio from the current name, title and bio.
// An empty answer leaves the bio untouched.
func (c *Controller) EnhanceBio(ctx context.Context) Result {
	return c.run(ctx, KeyBio, func(ctx context.Context, doc portfolio.Document) (mergeFunc, error) {
		text, err := c.gateway.EnhanceBio(ctx, doc.Profile.Name, doc.Profile.Title, doc.Profile.Bio)
		if err != nil {
			return nil, err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return nil, nil
		}
		return func(portfolio.Document) portfolio.Patch {
			return portfolio.Patch{Bio: &text}
		}, nil
	})
}

// SuggestSkills appends suggested skills not already in the list. Existing
// skills keep their order.
func (c *Controller) SuggestSkills(ctx context.Context) Result {
	return c.run(ctx, KeySkills, func(ctx context.Context, doc portfolio.Document) (mergeFunc, error) {
		suggested, err := c.gateway.SuggestSkills(ctx, doc.Profile.Title)
		if err != nil {
			return nil, err
		}
		return func(cur portfolio.Document) portfolio.Patch {
			merged := portfolio.UnionAppend(cur.Skills, suggested)
			if len(merged) == len(cur.Skills) {
				return portfolio.Patch{}
			}
			return portfolio.Patch{Skills: &merged}
		}, nil
	})
}

// SuggestBrandKeywords replaces the brand keywords with the suggestion.
func (c *Controller) SuggestBrandKeywords(ctx context.Context) Result {
	return c.run(ctx, KeyBrandKeywords, func(ctx context.Context, doc portfolio.Document) (mergeFunc, error) {
		kws, err := c.gateway.SuggestBrandKeywords(ctx, doc.Profile.Title, doc.Profile.Bio)
		if err != nil {
			return nil, err
		}
		if len(kws) == 0 {
			return nil, nil
		}
		return func(portfolio.Document) portfolio.Patch {
			return portfolio.Patch{BrandKeywords: &kws}
		}, nil
	})
}

// GenerateProjectStory synthesizes a four-part story for one project. The
// project id must exist when the call starts; if the project is removed while
// the call is in flight, the result is discarded.
func (c *Controller) GenerateProjectStory(ctx context.Context, projectID string) (Result, error) {
	if err := c.requireProject(projectID); err != nil {
		return Result{}, err
	}
	return c.run(ctx, StoryKey(projectID), func(ctx context.Context, doc portfolio.Document) (mergeFunc, error) {
		p, err := projectFrom(doc, projectID)
		if err != nil {
			return nil, err
		}
		story, err := c.gateway.GenerateProjectStory(ctx, p.Title, p.Description)
		if err != nil {
			return nil, err
		}
		if story == nil || story.IsEmpty() {
			return nil, nil
		}
		return mergeIntoProject(projectID, func(p *portfolio.Project) {
			s := *story
			p.Story = &s
		}), nil
	}), nil
}

// EnhanceProjectDescription rewrites one project's description.
func (c *Controller) EnhanceProjectDescription(ctx context.Context, projectID string) (Result, error) {
	if err := c.requireProject(projectID); err != nil {
		return Result{}, err
	}
	return c.run(ctx, DescriptionKey(projectID), func(ctx context.Context, doc portfolio.Document) (mergeFunc, error) {
		p, err := projectFrom(doc, projectID)
		if err != nil {
			return nil, err
		}
		text, err := c.gateway.EnhanceProjectDescription(ctx, p.Title, p.Description)
		if err != nil {
			return nil, err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return nil, nil
		}
		return mergeIntoProject(projectID, func(p *portfolio.Project) {
			p.Description = text
		}), nil
	}), nil
}

func (c *Controller) requireProject(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if portfolio.IndexOfProject(c.snap.Document.Projects, id) < 0 {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return nil
}

func projectFrom(doc portfolio.Document, id string) (portfolio.Project, error) {
	i := portfolio.IndexOfProject(doc.Projects, id)
	if i < 0 {
		return portfolio.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return doc.Projects[i], nil
}

// mergeIntoProject applies edit to the project with id in the document
// current at merge time. A project removed in the meantime is not restored.
func mergeIntoProject(id string, edit func(p *portfolio.Project)) mergeFunc {
	return func(cur portfolio.Document) portfolio.Patch {
		i := portfolio.IndexOfProject(cur.Projects, id)
		if i < 0 {
			return portfolio.Patch{}
		}
		list := cur.Projects
		edit(&list[i])
		return portfolio.Patch{Projects: &list}
	}
}

// run performs one guarded enrichment attempt. The busy flag for key is held
// for the whole attempt and released on every exit path. The gateway call is
// bounded by the controller timeout and, unless the controller follows its
// callers, detached from caller cancellation.
func (c *Controller) run(ctx context.Context, key OpKey, call func(ctx context.Context, doc portfolio.Document) (mergeFunc, error)) Result {
	start := time.Now()

	release, ok := c.busy.TryAcquire(key)
	if !ok {
		res := Result{Key: key, Outcome: OutcomeBusy, Version: c.Snapshot().Version}
		c.observe(ctx, Event{Key: key, Outcome: OutcomeBusy, At: start})
		return res
	}
	c.touch()
	defer func() {
		release()
		c.touch()
	}()

	detached := context.WithoutCancel(ctx)
	callCtx := detached
	if c.followCaller {
		callCtx = ctx
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(callCtx, c.timeout)
		defer cancel()
	}

	outcome, err := c.attempt(callCtx, call)

	res := Result{Key: key, Outcome: outcome, Version: c.Snapshot().Version, Err: err}
	if err != nil {
		res.Error = err.Error()
		c.logger.Warn("enrichment failed", "op", key.String(), "error", err)
	} else {
		c.logger.Debug("enrichment finished", "op", key.String(), "outcome", string(outcome))
	}
	// Observers run outside the call timeout.
	c.observe(detached, Event{Key: key, Outcome: outcome, Err: err, Duration: time.Since(start), At: start})
	return res
}

// attempt calls the gateway and merges its result. Panics count as failures.
func (c *Controller) attempt(ctx context.Context, call func(ctx context.Context, doc portfolio.Document) (mergeFunc, error)) (outcome Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			outcome, err = OutcomeFailed, fmt.Errorf("enrichment panicked: %v", r)
		}
	}()

	if c.gateway == nil {
		return OutcomeFailed, ErrNoGateway
	}
	if err := ctx.Err(); err != nil {
		return OutcomeFailed, err
	}

	merge, err := call(ctx, c.Snapshot().Document)
	if err != nil {
		return OutcomeFailed, err
	}
	if merge == nil {
		return OutcomeNoResult, nil
	}

	applied := false
	_, err = c.Modify(func(doc portfolio.Document) (portfolio.Patch, error) {
		p := merge(doc)
		applied = !p.IsEmpty()
		return p, nil
	})
	if err != nil {
		return OutcomeFailed, err
	}
	if !applied {
		return OutcomeNoResult, nil
	}
	return OutcomeApplied, nil
}

func (c *Controller) observe(ctx context.Context, ev Event) {
	for _, o := range c.observers {
		o.EnrichmentFinished(ctx, ev)
	}
}
