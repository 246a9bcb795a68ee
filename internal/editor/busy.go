package editor

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// OpKind names an enrichment operation.
type OpKind string

const (
	OpBio           OpKind = "bio"
	OpSkills        OpKind = "skills"
	OpBrandKeywords OpKind = "brand"
	OpStory         OpKind = "story"
	OpDescription   OpKind = "description"
)

// OpKey identifies one busy flag. Global operations leave ProjectID empty;
// per-project operations carry the project id so different projects never
// block each other.
type OpKey struct {
	Kind      OpKind
	ProjectID string
}

var (
	KeyBio           = OpKey{Kind: OpBio}
	KeySkills        = OpKey{Kind: OpSkills}
	KeyBrandKeywords = OpKey{Kind: OpBrandKeywords}
)

// StoryKey is the busy key of story synthesis for one project.
func StoryKey(projectID string) OpKey { return OpKey{Kind: OpStory, ProjectID: projectID} }

// DescriptionKey is the busy key of description rewriting for one project.
func DescriptionKey(projectID string) OpKey {
	return OpKey{Kind: OpDescription, ProjectID: projectID}
}

func (k OpKey) String() string {
	if k.ProjectID == "" {
		return string(k.Kind)
	}
	return string(k.Kind) + "-" + k.ProjectID
}

func (k OpKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *OpKey) UnmarshalText(b []byte) error {
	parsed, err := ParseOpKey(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseOpKey parses the String form of a key.
func ParseOpKey(s string) (OpKey, error) {
	switch OpKind(s) {
	case OpBio, OpSkills, OpBrandKeywords:
		return OpKey{Kind: OpKind(s)}, nil
	}
	kind, id, ok := strings.Cut(s, "-")
	if ok && id != "" && (OpKind(kind) == OpStory || OpKind(kind) == OpDescription) {
		return OpKey{Kind: OpKind(kind), ProjectID: id}, nil
	}
	return OpKey{}, fmt.Errorf("unknown operation key %q", s)
}

// BusySet holds the set of operation keys currently in flight.
type BusySet struct {
	mu   sync.Mutex
	held map[OpKey]struct{}
}

// NewBusySet returns an empty set.
func NewBusySet() *BusySet {
	return &BusySet{held: make(map[OpKey]struct{})}
}

// TryAcquire sets the flag for k. It reports false, and does nothing, when the
// flag is already set. The returned release clears the flag; calling it more
// than once is harmless.
func (b *BusySet) TryAcquire(k OpKey) (release func(), ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, held := b.held[k]; held {
		return func() {}, false
	}
	b.held[k] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.held, k)
			b.mu.Unlock()
		})
	}, true
}

// IsBusy reports whether k is in flight.
func (b *BusySet) IsBusy(k OpKey) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, held := b.held[k]
	return held
}

// Keys returns the keys in flight, sorted by their string form.
func (b *BusySet) Keys() []OpKey {
	b.mu.Lock()
	keys := make([]OpKey, 0, len(b.held))
	for k := range b.held {
		keys = append(keys, k)
	}
	b.mu.Unlock()

	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}
