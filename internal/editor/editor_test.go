package editor

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ziadkadry99/portfoliai/internal/portfolio"
)

// fakeGateway returns canned answers. When gate is non-nil every call blocks
// until it is closed.
type fakeGateway struct {
	calls atomic.Int32
	gate  chan struct{}

	bio      string
	skills   []string
	keywords []string
	story    *portfolio.Story
	desc     string
	err      error
	panicMsg string
}

func (f *fakeGateway) wait(ctx context.Context) error {
	f.calls.Add(1)
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return f.err
}

func (f *fakeGateway) EnhanceBio(ctx context.Context, name, title, draft string) (string, error) {
	return f.bio, f.wait(ctx)
}

func (f *fakeGateway) SuggestSkills(ctx context.Context, title string) ([]string, error) {
	return f.skills, f.wait(ctx)
}

func (f *fakeGateway) SuggestBrandKeywords(ctx context.Context, title, bio string) ([]string, error) {
	return f.keywords, f.wait(ctx)
}

func (f *fakeGateway) GenerateProjectStory(ctx context.Context, title, description string) (*portfolio.Story, error) {
	return f.story, f.wait(ctx)
}

func (f *fakeGateway) EnhanceProjectDescription(ctx context.Context, title, description string) (string, error) {
	return f.desc, f.wait(ctx)
}

func newController(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	c, err := New(portfolio.Sample(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

// waitBusy polls until k is in flight.
func waitBusy(t *testing.T, c *Controller, k OpKey) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !c.Busy(k) {
		if time.Now().After(deadline) {
			t.Fatalf("%s never became busy", k)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	doc := portfolio.Sample()
	doc.Projects = append(doc.Projects, doc.Projects[0])
	if _, err := New(doc); !errors.Is(err, portfolio.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestMergeUpdateTouchesOnlyPresentFields(t *testing.T) {
	c := newController(t)
	before := c.Document()

	snap, err := c.MergeUpdate(portfolio.Patch{Title: portfolio.Ptr("Staff Engineer")})
	if err != nil {
		t.Fatalf("MergeUpdate: %v", err)
	}
	if snap.Version != 2 {
		t.Errorf("expected version 2, got %d", snap.Version)
	}
	after := snap.Document
	if after.Profile.Title != "Staff Engineer" {
		t.Errorf("title not applied: %q", after.Profile.Title)
	}
	after.Profile.Title = before.Profile.Title
	if !reflect.DeepEqual(before, after) {
		t.Error("fields outside the patch changed")
	}
}

func TestMergeUpdateIsIdempotent(t *testing.T) {
	c := newController(t)
	p := portfolio.Patch{Skills: &[]string{"Go"}, Bio: portfolio.Ptr("hi")}

	first, _ := c.MergeUpdate(p)
	second, _ := c.MergeUpdate(p)
	if !reflect.DeepEqual(first.Document, second.Document) {
		t.Error("merging the same patch twice changed the result")
	}
}

func TestMergeUpdateEmptyPatchKeepsVersion(t *testing.T) {
	c := newController(t)
	snap, err := c.MergeUpdate(portfolio.Patch{})
	if err != nil || snap.Version != 1 {
		t.Errorf("expected version 1 and no error, got %d, %v", snap.Version, err)
	}
}

func TestMergeUpdateRejectsDuplicateIDs(t *testing.T) {
	c := newController(t)
	dup := []portfolio.Experience{{ID: "a"}, {ID: "a"}}
	if _, err := c.MergeUpdate(portfolio.Patch{Experiences: &dup}); !errors.Is(err, portfolio.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if got := c.Snapshot(); got.Version != 1 || len(got.Document.Experiences) != 1 {
		t.Error("rejected patch must leave the document unchanged")
	}
}

func TestSnapshotsDoNotAlias(t *testing.T) {
	c := newController(t)
	doc := c.Document()
	doc.Skills[0] = "mutated"
	doc.Projects[0].Technologies[0] = "mutated"

	fresh := c.Document()
	if fresh.Skills[0] == "mutated" || fresh.Projects[0].Technologies[0] == "mutated" {
		t.Error("mutating a snapshot leaked into the controller")
	}
}

func TestStaleArrayMergeOverwrites(t *testing.T) {
	c := newController(t)
	stale := c.Document().Skills

	if _, err := c.AddSkill("Go"); err != nil {
		t.Fatal(err)
	}
	stale = append(stale, "Rust")
	snap, _ := c.MergeUpdate(portfolio.Patch{Skills: &stale})

	for _, s := range snap.Document.Skills {
		if s == "Go" {
			t.Error("a merge built from a stale array should overwrite the newer edit")
		}
	}
}

func TestAddRemoveExperience(t *testing.T) {
	c := newController(t)
	before := c.Document()

	e, _, err := c.AddExperience()
	if err != nil {
		t.Fatal(err)
	}
	if e.ID == "" || e.Company != "Company Name" {
		t.Errorf("unexpected placeholder %+v", e)
	}
	snap, err := c.RemoveExperience(e.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before.Experiences, snap.Document.Experiences) {
		t.Error("add then remove should restore the list")
	}

	v := snap.Version
	snap, _ = c.RemoveExperience("missing")
	if snap.Version != v {
		t.Error("removing an unknown id should be a no-op")
	}
}

func TestUpdateExperienceUnknown(t *testing.T) {
	c := newController(t)
	if _, err := c.UpdateExperience(portfolio.Experience{ID: "nope"}); !errors.Is(err, ErrExperienceNotFound) {
		t.Errorf("expected ErrExperienceNotFound, got %v", err)
	}
}

func TestAddProjectPlaceholder(t *testing.T) {
	c := newController(t)
	p, snap, err := c.AddProject()
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Document.Projects) != 2 || snap.Document.Projects[1].ID != p.ID {
		t.Fatalf("project not appended: %+v", snap.Document.Projects)
	}
	if p.ImageURL != "https://picsum.photos/800/600?random=2" {
		t.Errorf("unexpected placeholder image %q", p.ImageURL)
	}
}

func TestProjectElementEdits(t *testing.T) {
	c := newController(t)

	if _, err := c.AddTechnology("1", "Go"); err != nil {
		t.Fatal(err)
	}
	snap, _ := c.AddTechnology("1", "")
	techs := snap.Document.Projects[0].Technologies
	if techs[len(techs)-1] != "Go" || len(techs) != 4 {
		t.Errorf("unexpected technologies %q", techs)
	}

	snap, _ = c.RemoveTechnology("1", 0)
	if snap.Document.Projects[0].Technologies[0] != "Node.js" {
		t.Errorf("unexpected technologies after removal %q", snap.Document.Projects[0].Technologies)
	}

	snap, _ = c.ToggleProjectSkill("1", "React")
	if !snap.Document.Projects[0].HasSkillTag("React") {
		t.Error("toggle should tag the skill")
	}
	snap, _ = c.ToggleProjectSkill("1", "React")
	if snap.Document.Projects[0].HasSkillTag("React") {
		t.Error("second toggle should untag the skill")
	}

	if _, err := c.AddTechnology("missing", "Go"); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestRemoveSkillKeepsProjectTags(t *testing.T) {
	c := newController(t)
	if _, err := c.ToggleProjectSkill("1", "React"); err != nil {
		t.Fatal(err)
	}
	snap, _ := c.RemoveSkill(0)
	if snap.Document.Skills[0] == "React" {
		t.Fatal("skill not removed")
	}
	if !snap.Document.Projects[0].HasSkillTag("React") {
		t.Error("removing a skill must not prune project tags")
	}
}

func TestBrandKeywordEdits(t *testing.T) {
	c := newController(t)
	c.AddBrandKeyword("Builder")
	c.AddBrandKeyword("")
	snap, _ := c.AddBrandKeyword("Mentor")
	if !reflect.DeepEqual(snap.Document.Profile.BrandKeywords, []string{"Builder", "Mentor"}) {
		t.Errorf("unexpected keywords %q", snap.Document.Profile.BrandKeywords)
	}
	snap, _ = c.RemoveBrandKeyword(0)
	if !reflect.DeepEqual(snap.Document.Profile.BrandKeywords, []string{"Mentor"}) {
		t.Errorf("unexpected keywords %q", snap.Document.Profile.BrandKeywords)
	}
}

func TestSubscribeCoalesces(t *testing.T) {
	c := newController(t)
	ch, cancel := c.Subscribe()
	defer cancel()

	c.AddSkill("a")
	c.AddSkill("b")
	c.AddSkill("c")

	select {
	case v := <-ch:
		if v != 4 {
			t.Errorf("expected latest version 4, got %d", v)
		}
	case <-time.After(time.Second):
		t.Fatal("no notification")
	}
	select {
	case v := <-ch:
		t.Errorf("expected a single pending notification, got extra %d", v)
	default:
	}

	cancel()
	if _, ok := <-ch; ok {
		t.Error("channel should be closed after cancel")
	}
	cancel()
}

func TestEnhanceBio(t *testing.T) {
	c := newController(t, WithGateway(&fakeGateway{bio: "  Polished bio.  "}))
	res := c.EnhanceBio(context.Background())
	if res.Outcome != OutcomeApplied {
		t.Fatalf("expected applied, got %s (%v)", res.Outcome, res.Err)
	}
	if got := c.Document().Profile.Bio; got != "Polished bio." {
		t.Errorf("unexpected bio %q", got)
	}
	if c.Busy(KeyBio) {
		t.Error("busy flag not released")
	}
}

func TestEnhanceBioEmptyIsNoResult(t *testing.T) {
	c := newController(t, WithGateway(&fakeGateway{bio: " "}))
	before := c.Document().Profile.Bio
	res := c.EnhanceBio(context.Background())
	if res.Outcome != OutcomeNoResult {
		t.Fatalf("expected no_result, got %s", res.Outcome)
	}
	if c.Document().Profile.Bio != before {
		t.Error("empty answer must not change the bio")
	}
}

func TestSuggestSkillsUnionAppends(t *testing.T) {
	c := newController(t, WithGateway(&fakeGateway{skills: []string{"Go", "React", "", "Rust"}}))
	res := c.SuggestSkills(context.Background())
	if res.Outcome != OutcomeApplied {
		t.Fatalf("expected applied, got %s", res.Outcome)
	}
	want := []string{"React", "TypeScript", "Tailwind CSS", "Node.js", "Go", "Rust"}
	if got := c.Document().Skills; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}

	again := c.SuggestSkills(context.Background())
	if again.Outcome != OutcomeNoResult {
		t.Errorf("nothing new should be no_result, got %s", again.Outcome)
	}
}

func TestSuggestBrandKeywordsReplaces(t *testing.T) {
	c := newController(t, WithGateway(&fakeGateway{keywords: []string{"Systems Thinker"}}))
	c.AddBrandKeyword("Old")
	c.SuggestBrandKeywords(context.Background())
	if got := c.Document().Profile.BrandKeywords; !reflect.DeepEqual(got, []string{"Systems Thinker"}) {
		t.Errorf("expected replacement, got %q", got)
	}
}

func TestGenerateProjectStory(t *testing.T) {
	story := &portfolio.Story{Problem: "p", Approach: "a", Solution: "s", Outcome: "o"}
	c := newController(t, WithGateway(&fakeGateway{story: story}))

	res, err := c.GenerateProjectStory(context.Background(), "1")
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != OutcomeApplied || res.Key != StoryKey("1") {
		t.Fatalf("unexpected result %+v", res)
	}
	got := c.Document().Projects[0].Story
	if got == nil || *got != *story {
		t.Errorf("story not stored: %+v", got)
	}

	if _, err := c.GenerateProjectStory(context.Background(), "missing"); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestGenerateProjectStoryNilIsNoResult(t *testing.T) {
	c := newController(t, WithGateway(&fakeGateway{}))
	res, _ := c.GenerateProjectStory(context.Background(), "1")
	if res.Outcome != OutcomeNoResult {
		t.Fatalf("expected no_result, got %s", res.Outcome)
	}
	if c.Document().Projects[0].Story != nil {
		t.Error("story should stay absent")
	}
}

func TestEnhanceProjectDescription(t *testing.T) {
	c := newController(t, WithGateway(&fakeGateway{desc: "Sharper."}))
	res, err := c.EnhanceProjectDescription(context.Background(), "1")
	if err != nil || res.Outcome != OutcomeApplied {
		t.Fatalf("unexpected %+v, %v", res, err)
	}
	if got := c.Document().Projects[0].Description; got != "Sharper." {
		t.Errorf("unexpected description %q", got)
	}
}

func TestFailureLeavesDocumentAndReleasesFlag(t *testing.T) {
	boom := errors.New("upstream down")
	c := newController(t, WithGateway(&fakeGateway{err: boom}))
	before := c.Snapshot()

	res := c.SuggestSkills(context.Background())
	if res.Outcome != OutcomeFailed || !errors.Is(res.Err, boom) || res.Error == "" {
		t.Fatalf("unexpected result %+v", res)
	}
	if after := c.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Error("failed call changed the document")
	}
	if c.Busy(KeySkills) {
		t.Error("busy flag not released after failure")
	}
}

func TestPanicIsFailure(t *testing.T) {
	c := newController(t, WithGateway(&fakeGateway{panicMsg: "kaboom"}))
	res := c.EnhanceBio(context.Background())
	if res.Outcome != OutcomeFailed {
		t.Fatalf("expected failed, got %s", res.Outcome)
	}
	if c.Busy(KeyBio) {
		t.Error("busy flag not released after panic")
	}
}

func TestNoGatewayFails(t *testing.T) {
	c := newController(t)
	res := c.EnhanceBio(context.Background())
	if res.Outcome != OutcomeFailed || !errors.Is(res.Err, ErrNoGateway) {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestTimeoutBoundsCall(t *testing.T) {
	gw := &fakeGateway{gate: make(chan struct{})}
	defer close(gw.gate)
	c := newController(t, WithGateway(gw), WithTimeout(20*time.Millisecond))

	res := c.EnhanceBio(context.Background())
	if res.Outcome != OutcomeFailed || !errors.Is(res.Err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline failure, got %+v", res)
	}
	if c.Busy(KeyBio) {
		t.Error("busy flag not released after timeout")
	}
}

func TestCallerCancellationDoesNotAbortCall(t *testing.T) {
	gw := &fakeGateway{gate: make(chan struct{}), bio: "Done."}
	c := newController(t, WithGateway(gw))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan Result, 1)
	go func() { done <- c.EnhanceBio(ctx) }()

	waitBusy(t, c, KeyBio)
	cancel()
	close(gw.gate)

	if res := <-done; res.Outcome != OutcomeApplied {
		t.Errorf("expected applied despite cancellation, got %+v", res)
	}
}

func TestCallerCancellationAbortsCallWhenFollowed(t *testing.T) {
	gw := &fakeGateway{gate: make(chan struct{}), bio: "Done."}
	defer close(gw.gate)
	c := newController(t, WithGateway(gw), WithCallerCancellation())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan Result, 1)
	go func() { done <- c.EnhanceBio(ctx) }()

	waitBusy(t, c, KeyBio)
	cancel()

	res := <-done
	if res.Outcome != OutcomeFailed || !errors.Is(res.Err, context.Canceled) {
		t.Fatalf("expected cancelled failure, got %+v", res)
	}
	if c.Busy(KeyBio) {
		t.Error("busy flag not released after cancellation")
	}
	if c.Snapshot().Version != 1 {
		t.Error("cancelled call changed the document")
	}
}

func TestCancelledCallerSkipsGateway(t *testing.T) {
	gw := &fakeGateway{bio: "Done."}
	c := newController(t, WithGateway(gw), WithCallerCancellation())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if res := c.EnhanceBio(ctx); res.Outcome != OutcomeFailed || !errors.Is(res.Err, context.Canceled) {
		t.Errorf("expected cancelled failure, got %+v", res)
	}
	if got := gw.calls.Load(); got != 0 {
		t.Errorf("expected no gateway call, got %d", got)
	}
}

func TestSameKeyCallsAreExclusive(t *testing.T) {
	gw := &fakeGateway{gate: make(chan struct{}), skills: []string{"Go"}}
	c := newController(t, WithGateway(gw))

	first := make(chan Result, 1)
	go func() { first <- c.SuggestSkills(context.Background()) }()
	waitBusy(t, c, KeySkills)

	second := c.SuggestSkills(context.Background())
	if second.Outcome != OutcomeBusy {
		t.Errorf("expected busy, got %s", second.Outcome)
	}

	close(gw.gate)
	if res := <-first; res.Outcome != OutcomeApplied {
		t.Errorf("first call should apply, got %s", res.Outcome)
	}
	if n := gw.calls.Load(); n != 1 {
		t.Errorf("expected exactly one gateway call, got %d", n)
	}
}

func TestDifferentProjectsRunConcurrently(t *testing.T) {
	gw := &fakeGateway{gate: make(chan struct{}), story: &portfolio.Story{Problem: "p"}}
	c := newController(t, WithGateway(gw))
	p2, _, _ := c.AddProject()

	var wg sync.WaitGroup
	results := make([]Result, 2)
	for i, id := range []string{"1", p2.ID} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			results[i], _ = c.GenerateProjectStory(context.Background(), id)
		}(i, id)
	}
	waitBusy(t, c, StoryKey("1"))
	waitBusy(t, c, StoryKey(p2.ID))

	keys := c.BusyKeys()
	if len(keys) != 2 {
		t.Errorf("expected two keys in flight, got %v", keys)
	}

	close(gw.gate)
	wg.Wait()
	for _, r := range results {
		if r.Outcome != OutcomeApplied {
			t.Errorf("expected applied, got %+v", r)
		}
	}
	for _, p := range c.Document().Projects {
		if p.Story == nil {
			t.Errorf("project %s missing story", p.ID)
		}
	}
}

func TestStoryMergeKeepsConcurrentEdits(t *testing.T) {
	gw := &fakeGateway{gate: make(chan struct{}), story: &portfolio.Story{Problem: "p"}}
	c := newController(t, WithGateway(gw))

	done := make(chan Result, 1)
	go func() {
		r, _ := c.GenerateProjectStory(context.Background(), "1")
		done <- r
	}()
	waitBusy(t, c, StoryKey("1"))

	if _, err := c.AddTechnology("1", "Go"); err != nil {
		t.Fatal(err)
	}
	close(gw.gate)
	<-done

	p := c.Document().Projects[0]
	if p.Story == nil {
		t.Fatal("story not applied")
	}
	if p.Technologies[len(p.Technologies)-1] != "Go" {
		t.Error("edit made during the call was lost")
	}
}

func TestStoryForRemovedProjectIsDiscarded(t *testing.T) {
	gw := &fakeGateway{gate: make(chan struct{}), story: &portfolio.Story{Problem: "p"}}
	c := newController(t, WithGateway(gw))

	done := make(chan Result, 1)
	go func() {
		r, _ := c.GenerateProjectStory(context.Background(), "1")
		done <- r
	}()
	waitBusy(t, c, StoryKey("1"))

	c.RemoveProject("1")
	close(gw.gate)

	if res := <-done; res.Outcome != OutcomeNoResult {
		t.Errorf("expected no_result, got %s", res.Outcome)
	}
	if len(c.Document().Projects) != 0 {
		t.Error("removed project was resurrected")
	}
}

func TestObserverSeesEveryAttempt(t *testing.T) {
	var mu sync.Mutex
	var events []Event
	obs := ObserverFunc(func(_ context.Context, ev Event) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	})
	c := newController(t, WithGateway(&fakeGateway{bio: "x"}), WithObserver(obs))

	c.EnhanceBio(context.Background())
	c.GenerateProjectStory(context.Background(), "1")

	mu.Lock()
	defer mu.Unlock()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Key != KeyBio || events[0].Outcome != OutcomeApplied {
		t.Errorf("unexpected first event %+v", events[0])
	}
	if events[1].Outcome != OutcomeNoResult {
		t.Errorf("unexpected second event %+v", events[1])
	}
}

func TestOpKeyText(t *testing.T) {
	for _, k := range []OpKey{KeyBio, KeySkills, KeyBrandKeywords, StoryKey("abc-1"), DescriptionKey("7")} {
		got, err := ParseOpKey(k.String())
		if err != nil || got != k {
			t.Errorf("ParseOpKey(%q) = %+v, %v", k.String(), got, err)
		}
	}
	if StoryKey("9").String() != "story-9" {
		t.Errorf("unexpected key string %q", StoryKey("9").String())
	}
	for _, bad := range []string{"", "story-", "bogus-1"} {
		if _, err := ParseOpKey(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
