package catalog

import (
	"errors"
	"strings"
	"testing"
)

func testConfig(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	return c
}

func TestLoadDefault(t *testing.T) {
	c := testConfig(t)
	if c.ModuleCount() == 0 {
		t.Fatal("expected modules in default catalog")
	}
}

func TestModuleLookup(t *testing.T) {
	c := testConfig(t)

	m, err := c.Module("programming_with_ai")
	if err != nil {
		t.Fatalf("Module: %v", err)
	}
	if m.Title != "Programming/Building Projects with AI" {
		t.Errorf("Title = %q", m.Title)
	}
	if m.Difficulty != DifficultyIntermediate {
		t.Errorf("Difficulty = %q, want intermediate", m.Difficulty)
	}
	if !m.HandsOn {
		t.Error("HandsOn = false, want true")
	}
	if len(m.Topics) != 5 {
		t.Errorf("Topics count = %d, want 5", len(m.Topics))
	}
}

func TestModuleNotFound(t *testing.T) {
	c := testConfig(t)

	_, err := c.Module("no_such_module")
	var notFound *ErrModuleNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want ErrModuleNotFound", err)
	}
	if notFound.ID != "no_such_module" {
		t.Errorf("ID = %q", notFound.ID)
	}
}

func TestModulesOrderedAndStable(t *testing.T) {
	c := testConfig(t)

	first := c.Modules()
	second := c.Modules()
	if len(first) != len(second) {
		t.Fatalf("module count changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("order unstable at %d: %q vs %q", i, first[i].ID, second[i].ID)
		}
		if i > 0 && first[i-1].ID >= first[i].ID {
			t.Errorf("modules not sorted: %q before %q", first[i-1].ID, first[i].ID)
		}
	}
}

func TestCriteriaSumTo100(t *testing.T) {
	c := testConfig(t)

	for _, d := range AllDifficulties() {
		ac := c.Criteria(d)
		if ac.Sum() != 100 {
			t.Errorf("criteria for %s sum to %d, want 100", d, ac.Sum())
		}
	}
}

func TestCriteriaValues(t *testing.T) {
	c := testConfig(t)

	tests := []struct {
		difficulty Difficulty
		want       AssessmentCriteria
	}{
		{DifficultyBeginner, AssessmentCriteria{Understanding: 40, Application: 30, ProblemSolving: 30}},
		{DifficultyIntermediate, AssessmentCriteria{Understanding: 30, Application: 40, ProblemSolving: 30}},
		{DifficultyAdvanced, AssessmentCriteria{Understanding: 20, Application: 40, ProblemSolving: 40}},
	}

	for _, tt := range tests {
		if got := c.Criteria(tt.difficulty); got != tt.want {
			t.Errorf("Criteria(%s) = %+v, want %+v", tt.difficulty, got, tt.want)
		}
	}
}

func TestCriteriaTotalOverEnum(t *testing.T) {
	c := testConfig(t)

	// Even a malformed difficulty must yield weights that sum to 100.
	if got := c.Criteria(Difficulty("bogus")).Sum(); got != 100 {
		t.Errorf("fallback criteria sum = %d, want 100", got)
	}
}

func TestTemplateSlideCounts(t *testing.T) {
	c := testConfig(t)

	tests := []struct {
		kind TemplateKind
		want int
	}{
		{KindIntroduction, 4},
		{KindModuleOverview, 5},
		{KindHandsOnSession, 5},
		{KindConclusion, 4},
	}

	for _, tt := range tests {
		tpl, ok := c.Template(tt.kind)
		if !ok {
			t.Errorf("Template(%s) missing", tt.kind)
			continue
		}
		if len(tpl.Slides) != tt.want {
			t.Errorf("Template(%s) slides = %d, want %d", tt.kind, len(tpl.Slides), tt.want)
		}
	}
}

func TestDifficultyTitle(t *testing.T) {
	tests := []struct {
		in   Difficulty
		want string
	}{
		{DifficultyBeginner, "Beginner"},
		{DifficultyIntermediate, "Intermediate"},
		{DifficultyAdvanced, "Advanced"},
		{Difficulty(""), ""},
	}
	for _, tt := range tests {
		if got := tt.in.Title(); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

const minimalConfig = `{
  "modules": {
    "test_module": {
      "title": "Test Module",
      "description": "A test module",
      "topics": ["Topic 1"],
      "hands_on": false,
      "difficulty": "beginner"
    }
  },
  "presentation_templates": {
    "introduction": {"slides": ["Welcome"]}
  },
  "assessment_criteria": {
    "beginner": {"understanding": 100, "application": 0, "problem_solving": 0},
    "intermediate": {"understanding": 30, "application": 40, "problem_solving": 30},
    "advanced": {"understanding": 20, "application": 40, "problem_solving": 40}
  }
}`

func TestLoadMinimalConfig(t *testing.T) {
	c, err := Load([]byte(minimalConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tpl, ok := c.Template(KindIntroduction)
	if !ok || len(tpl.Slides) != 1 {
		t.Errorf("introduction template = %+v, want single slide", tpl)
	}
}

func TestLoadRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not JSON", `{`},
		{"missing sections", `{"modules": {}}`},
		{"bad difficulty", strings.Replace(minimalConfig, `"beginner"
    }`, `"expert"
    }`, 1)},
		{"empty topics", strings.Replace(minimalConfig, `["Topic 1"]`, `[]`, 1)},
		{"weights off", strings.Replace(minimalConfig, `"understanding": 100`, `"understanding": 90`, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load([]byte(tt.doc)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadRejectsMissingCriteriaRow(t *testing.T) {
	doc := strings.Replace(minimalConfig,
		`"advanced": {"understanding": 20, "application": 40, "problem_solving": 40}`,
		`"advanced2": {"understanding": 20, "application": 40, "problem_solving": 40}`, 1)
	_, err := Load([]byte(doc))
	var invalid *ErrInvalidConfig
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestHandsOnMarker(t *testing.T) {
	if got := (Module{HandsOn: true}).HandsOnMarker(); got != "✅ Yes" {
		t.Errorf("marker = %q", got)
	}
	if got := (Module{}).HandsOnMarker(); got != "❌ No" {
		t.Errorf("marker = %q", got)
	}
}
