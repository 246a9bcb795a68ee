package portfolio

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestSampleIsValid(t *testing.T) {
	if err := Sample().Validate(); err != nil {
		t.Fatalf("sample document invalid: %v", err)
	}
}

func TestValidateDuplicateIDs(t *testing.T) {
	doc := Sample()
	doc.Projects = append(doc.Projects, NewProject(doc.Projects[0].ID, 1))
	if err := doc.Validate(); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID for projects, got %v", err)
	}

	doc = Sample()
	doc.Experiences = append(doc.Experiences, NewExperience(doc.Experiences[0].ID))
	if err := doc.Validate(); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID for experiences, got %v", err)
	}

	// Experience and project ids live in separate namespaces.
	doc = Sample()
	if doc.Experiences[0].ID != doc.Projects[0].ID {
		t.Fatal("sample should reuse id across sequences for this test")
	}
	if err := doc.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCloneSharesNothing(t *testing.T) {
	doc := Sample()
	doc.Profile.BrandKeywords = []string{"Builder"}
	doc.Projects[0].Story = &Story{Problem: "slow checkout"}
	doc.Projects[0].SkillsTagged = []string{"React"}

	c := doc.Clone()
	c.Skills[0] = "changed"
	c.Profile.BrandKeywords[0] = "changed"
	c.Experiences[0].Company = "changed"
	c.Projects[0].Technologies[0] = "changed"
	c.Projects[0].SkillsTagged[0] = "changed"
	c.Projects[0].Story.Problem = "changed"

	if doc.Skills[0] != "React" {
		t.Errorf("skills aliased: %q", doc.Skills[0])
	}
	if doc.Profile.BrandKeywords[0] != "Builder" {
		t.Errorf("brand keywords aliased: %q", doc.Profile.BrandKeywords[0])
	}
	if doc.Experiences[0].Company != "TechFlow Inc." {
		t.Errorf("experiences aliased: %q", doc.Experiences[0].Company)
	}
	if doc.Projects[0].Technologies[0] != "React" {
		t.Errorf("technologies aliased: %q", doc.Projects[0].Technologies[0])
	}
	if doc.Projects[0].SkillsTagged[0] != "React" {
		t.Errorf("skill tags aliased: %q", doc.Projects[0].SkillsTagged[0])
	}
	if doc.Projects[0].Story.Problem != "slow checkout" {
		t.Errorf("story aliased: %q", doc.Projects[0].Story.Problem)
	}
}

func TestPatchApplyChangesOnlyPresentFields(t *testing.T) {
	doc := Sample()
	p := Patch{
		Bio:    Ptr("New bio"),
		Skills: &[]string{"Go"},
	}

	got := p.Apply(doc)

	want := doc.Clone()
	want.Profile.Bio = "New bio"
	want.Skills = []string{"Go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("apply mismatch:\n got %+v\nwant %+v", got, want)
	}
	if doc.Profile.Bio == "New bio" {
		t.Error("apply mutated its input")
	}
}

func TestPatchApplyDoesNotAliasPatch(t *testing.T) {
	skills := []string{"Go", "Rust"}
	got := Patch{Skills: &skills}.Apply(Sample())
	skills[0] = "changed"
	if got.Skills[0] != "Go" {
		t.Errorf("document aliased patch slice: %q", got.Skills[0])
	}
}

func TestPatchApplyNestedProfile(t *testing.T) {
	p := Patch{
		Profile: &ProfilePatch{
			Bio:           Ptr("Nested bio"),
			Title:         Ptr("Nested title"),
			BrandKeywords: &[]string{"Pragmatic"},
		},
		Title: Ptr("Flat title"),
	}

	got := p.Apply(Sample())

	if got.Profile.Bio != "Nested bio" {
		t.Errorf("bio = %q", got.Profile.Bio)
	}
	if got.Profile.Title != "Flat title" {
		t.Errorf("flat field should win, title = %q", got.Profile.Title)
	}
	if !reflect.DeepEqual(got.Profile.BrandKeywords, []string{"Pragmatic"}) {
		t.Errorf("keywords = %v", got.Profile.BrandKeywords)
	}
	if got.Profile.Name != Sample().Profile.Name {
		t.Errorf("absent nested field changed: %q", got.Profile.Name)
	}
}

func TestPatchDecodesDocumentShape(t *testing.T) {
	doc := Sample()
	doc.Profile.Bio = "Round-tripped"
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var p Patch
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := p.Apply(Sample()); !reflect.DeepEqual(got, doc) {
		t.Errorf("document shape did not round-trip:\n got %+v\nwant %+v", got, doc)
	}
}

func TestPatchIsEmpty(t *testing.T) {
	if !(Patch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	if !(Patch{Profile: &ProfilePatch{}}).IsEmpty() {
		t.Error("patch with an empty profile should be empty")
	}
	if (Patch{Profile: &ProfilePatch{Bio: Ptr("x")}}).IsEmpty() {
		t.Error("patch with a nested bio is not empty")
	}
	if (Patch{Projects: &[]Project{}}).IsEmpty() {
		t.Error("patch with empty projects slice is not empty")
	}
}

func TestAddThenRemoveRestoresSequence(t *testing.T) {
	before := Sample().Experiences
	added := AppendExperience(before, NewExperience("x"))
	if len(added) != len(before)+1 {
		t.Fatalf("expected %d entries, got %d", len(before)+1, len(added))
	}
	after := RemoveExperience(added, "x")
	if !reflect.DeepEqual(after, before) {
		t.Errorf("expected %+v, got %+v", before, after)
	}

	projects := Sample().Projects
	withNew := AppendProject(projects, NewProject("p2", len(projects)))
	if got := RemoveProject(withNew, "p2"); !reflect.DeepEqual(got, projects) {
		t.Errorf("expected %+v, got %+v", projects, got)
	}
}

func TestRemoveMissingIDIsNoop(t *testing.T) {
	exps := Sample().Experiences
	if got := RemoveExperience(exps, "missing"); !reflect.DeepEqual(got, exps) {
		t.Errorf("expected unchanged experiences, got %+v", got)
	}
	projects := Sample().Projects
	if got := RemoveProject(projects, "missing"); !reflect.DeepEqual(got, projects) {
		t.Errorf("expected unchanged projects, got %+v", got)
	}
}

func TestReplaceProject(t *testing.T) {
	projects := Sample().Projects
	p := projects[0]
	p.Title = "Renamed"
	got, ok := ReplaceProject(projects, p)
	if !ok {
		t.Fatal("expected match")
	}
	if got[0].Title != "Renamed" {
		t.Errorf("expected Renamed, got %q", got[0].Title)
	}
	if projects[0].Title == "Renamed" {
		t.Error("replace mutated input")
	}
	if _, ok := ReplaceProject(projects, Project{ID: "missing"}); ok {
		t.Error("expected no match for missing id")
	}
}

func TestNewProjectPlaceholders(t *testing.T) {
	p := NewProject("id", 2)
	if p.Title != "New Project" {
		t.Errorf("unexpected title %q", p.Title)
	}
	if p.ImageURL != "https://picsum.photos/800/600?random=3" {
		t.Errorf("unexpected image %q", p.ImageURL)
	}
	if p.Technologies == nil || p.SkillsTagged == nil {
		t.Error("expected empty, non-nil tag lists")
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestToggleString(t *testing.T) {
	got := ToggleString([]string{"React"}, "Go")
	if !reflect.DeepEqual(got, []string{"React", "Go"}) {
		t.Errorf("toggle on: got %v", got)
	}
	got = ToggleString(got, "React")
	if !reflect.DeepEqual(got, []string{"Go"}) {
		t.Errorf("toggle off: got %v", got)
	}
}

func TestRemoveIndex(t *testing.T) {
	in := []string{"a", "b", "c"}
	if got := RemoveIndex(in, 1); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("got %v", got)
	}
	if got := RemoveIndex(in, 7); !reflect.DeepEqual(got, in) {
		t.Errorf("out of range should be no-op, got %v", got)
	}
	if got := RemoveIndex(in, -1); !reflect.DeepEqual(got, in) {
		t.Errorf("negative index should be no-op, got %v", got)
	}
}

func TestUnionAppend(t *testing.T) {
	got := UnionAppend([]string{"React", "React", "Go"}, []string{"Go", "Rust", "", "Rust", "Kubernetes"})
	want := []string{"React", "React", "Go", "Rust", "Kubernetes"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLoadFileYAMLAndJSON(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "seed.yml")
	yamlDoc := `profile:
  name: Sam
  title: Go Engineer
skills: [Go, SQL]
projects:
  - id: p1
    title: Router
    technologies: [Go]
    skillsTagged: [Go]
`
	if err := os.WriteFile(yamlPath, []byte(yamlDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := LoadFile(yamlPath)
	if err != nil {
		t.Fatalf("LoadFile yaml: %v", err)
	}
	if doc.Profile.Name != "Sam" || len(doc.Skills) != 2 || doc.Projects[0].SkillsTagged[0] != "Go" {
		t.Errorf("unexpected yaml document: %+v", doc)
	}

	jsonPath := filepath.Join(dir, "seed.json")
	if err := os.WriteFile(jsonPath, []byte(`{"profile":{"name":"Kim"},"skills":["Rust"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err = LoadFile(jsonPath)
	if err != nil {
		t.Fatalf("LoadFile json: %v", err)
	}
	if doc.Profile.Name != "Kim" || doc.Skills[0] != "Rust" {
		t.Errorf("unexpected json document: %+v", doc)
	}
}

func TestLoadFileRejectsDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.yaml")
	content := "projects:\n  - id: a\n  - id: a\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

func TestLoadFileUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil || !strings.Contains(err.Error(), "unsupported extension") {
		t.Errorf("expected unsupported extension error, got %v", err)
	}
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	var sb strings.Builder
	if err := EncodeYAML(&sb, Sample()); err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}
	doc, err := DecodeYAML(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("DecodeYAML: %v", err)
	}
	if !reflect.DeepEqual(doc, Sample()) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", doc, Sample())
	}
}
