package progress

import (
	"errors"
	"testing"

	"github.com/qaport/qaport/internal/catalog"
)

const testCatalogConfig = `{
  "modules": {
    "ai_best_practices": {
      "title": "Best Practices with AI",
      "description": "Effective and safe AI usage in QA workflows",
      "topics": ["Prompt Design for QA", "Workflow Integration"],
      "hands_on": false,
      "difficulty": "beginner"
    },
    "programming_with_ai": {
      "title": "Programming with AI",
      "description": "Practical AI-driven development",
      "topics": ["Automation", "Chatbots"],
      "hands_on": true,
      "difficulty": "intermediate"
    }
  },
  "presentation_templates": {
    "module_overview": {
      "slides": ["Module Introduction", "Learning Objectives", "Key Topics", "Hands-on Activities", "Assessment Criteria"]
    }
  },
  "assessment_criteria": {
    "beginner": {"understanding": 40, "application": 30, "problem_solving": 30},
    "intermediate": {"understanding": 30, "application": 40, "problem_solving": 30},
    "advanced": {"understanding": 20, "application": 40, "problem_solving": 40}
  }
}`

func testMachine(t *testing.T) *Machine {
	t.Helper()
	c, err := catalog.Load([]byte(testCatalogConfig))
	if err != nil {
		t.Fatalf("load test catalog: %v", err)
	}
	return NewMachine(c, nil)
}

func advanceThrough(t *testing.T, m *Machine, total int) {
	t.Helper()
	for pos := 0; pos < total; pos++ {
		if _, err := m.AdvanceSlide(pos, total); err != nil {
			t.Fatalf("AdvanceSlide(%d, %d): %v", pos, total, err)
		}
	}
}

func TestNewRecordDefaults(t *testing.T) {
	r := NewRecord()

	if r.CurrentModule != "" {
		t.Errorf("CurrentModule = %q, want empty", r.CurrentModule)
	}
	if len(r.CompletedModules) != 0 {
		t.Errorf("CompletedModules = %v, want empty", r.CompletedModules)
	}
	if r.CurrentProgress != 0 {
		t.Errorf("CurrentProgress = %d, want 0", r.CurrentProgress)
	}
	if r.Preferences.DifficultyLevel != catalog.DifficultyIntermediate {
		t.Errorf("DifficultyLevel = %q, want intermediate", r.Preferences.DifficultyLevel)
	}
	if !r.Preferences.HandsOnPreference {
		t.Error("HandsOnPreference = false, want true")
	}
	if r.LearningPath != "custom" {
		t.Errorf("LearningPath = %q, want custom", r.LearningPath)
	}
}

func TestStartModuleUnknown(t *testing.T) {
	m := testMachine(t)

	err := m.StartModule("no_such_module")
	var notFound *catalog.ErrModuleNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want ErrModuleNotFound", err)
	}
}

func TestAdvanceSlideProgressSequence(t *testing.T) {
	m := testMachine(t)
	if err := m.StartModule("ai_best_practices"); err != nil {
		t.Fatalf("StartModule: %v", err)
	}

	want := []int{20, 40, 60, 80, 100}
	for pos := 0; pos < 5; pos++ {
		got, err := m.AdvanceSlide(pos, 5)
		if err != nil {
			t.Fatalf("AdvanceSlide(%d, 5): %v", pos, err)
		}
		if got != want[pos] {
			t.Errorf("progress after slide %d = %d, want %d", pos, got, want[pos])
		}
	}

	// hands_on=false skips HandsOnPending.
	if got := m.CurrentStatus(); got != StatusAssessmentPending {
		t.Errorf("status = %s, want assessment_pending", got)
	}
}

func TestAdvanceSlideMonotonic(t *testing.T) {
	m := testMachine(t)
	if err := m.StartModule("ai_best_practices"); err != nil {
		t.Fatalf("StartModule: %v", err)
	}

	if _, err := m.AdvanceSlide(3, 5); err != nil {
		t.Fatalf("AdvanceSlide: %v", err)
	}
	got, err := m.AdvanceSlide(1, 5)
	if err != nil {
		t.Fatalf("AdvanceSlide backward: %v", err)
	}
	if got != 80 {
		t.Errorf("progress after navigating back = %d, want 80", got)
	}
}

func TestAdvanceSlideRequiresActiveModule(t *testing.T) {
	m := testMachine(t)

	_, err := m.AdvanceSlide(0, 5)
	var invalid *ErrInvalidTransition
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	if invalid.Expected != StatusInProgress {
		t.Errorf("Expected = %s, want in_progress", invalid.Expected)
	}
}

func TestAdvanceSlideBadPosition(t *testing.T) {
	m := testMachine(t)
	if err := m.StartModule("ai_best_practices"); err != nil {
		t.Fatalf("StartModule: %v", err)
	}

	if _, err := m.AdvanceSlide(-1, 5); err == nil {
		t.Error("expected error for position -1")
	}
	if _, err := m.AdvanceSlide(5, 5); err == nil {
		t.Error("expected error for position == total")
	}
	if _, err := m.AdvanceSlide(0, 0); err == nil {
		t.Error("expected error for zero total")
	}
}

func TestHandsOnPath(t *testing.T) {
	m := testMachine(t)
	if err := m.StartModule("programming_with_ai"); err != nil {
		t.Fatalf("StartModule: %v", err)
	}
	advanceThrough(t, m, 5)

	if got := m.CurrentStatus(); got != StatusHandsOnPending {
		t.Fatalf("status = %s, want hands_on_pending", got)
	}

	if err := m.CompleteHandsOn("test_case_generator"); err != nil {
		t.Fatalf("CompleteHandsOn: %v", err)
	}
	if got := m.CurrentStatus(); got != StatusAssessmentPending {
		t.Errorf("status = %s, want assessment_pending", got)
	}

	rec := m.Record()
	if len(rec.HandsOnProjects) != 1 {
		t.Fatalf("HandsOnProjects = %d entries, want 1", len(rec.HandsOnProjects))
	}
	p := rec.HandsOnProjects[0]
	if p.Module != "programming_with_ai" || p.ProjectID != "test_case_generator" {
		t.Errorf("project = %+v", p)
	}
}

func TestCompleteHandsOnInvalidTransition(t *testing.T) {
	m := testMachine(t)
	if err := m.StartModule("programming_with_ai"); err != nil {
		t.Fatalf("StartModule: %v", err)
	}

	err := m.CompleteHandsOn("too_early")
	var invalid *ErrInvalidTransition
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	if invalid.Current != StatusInProgress || invalid.Expected != StatusHandsOnPending {
		t.Errorf("transition = %s → want %s", invalid.Current, invalid.Expected)
	}
	if len(m.Record().HandsOnProjects) != 0 {
		t.Error("failed transition must not record a project")
	}
}

func TestSubmitAssessmentPassCompletes(t *testing.T) {
	m := testMachine(t)
	if err := m.StartModule("ai_best_practices"); err != nil {
		t.Fatalf("StartModule: %v", err)
	}
	advanceThrough(t, m, 5)

	// Beginner weights 40/30/30: 80·0.4 + 85·0.3 + 70·0.3 = 78.5.
	out, err := m.SubmitAssessment(Scores{Understanding: 80, Application: 85, ProblemSolving: 70})
	if err != nil {
		t.Fatalf("SubmitAssessment: %v", err)
	}
	if out.Total != 78.5 {
		t.Errorf("Total = %v, want 78.5", out.Total)
	}
	if !out.Passed {
		t.Fatal("Passed = false, want true")
	}

	rec := m.Record()
	if !rec.HasCompleted("ai_best_practices") {
		t.Error("module not in completed_modules")
	}
	if rec.CurrentModule != "" {
		t.Errorf("CurrentModule = %q, want cleared", rec.CurrentModule)
	}
	if rec.CurrentProgress != 0 {
		t.Errorf("CurrentProgress = %d, want 0", rec.CurrentProgress)
	}
	if m.Status("ai_best_practices") != StatusCompleted {
		t.Errorf("status = %s, want completed", m.Status("ai_best_practices"))
	}

	// Skills union from module topics.
	for _, skill := range []string{"Prompt Design for QA", "Workflow Integration"} {
		if !rec.HasSkill(skill) {
			t.Errorf("skill %q not acquired", skill)
		}
	}

	// One of two catalog modules completed.
	if rec.OverallCompletion != 50 {
		t.Errorf("OverallCompletion = %d, want 50", rec.OverallCompletion)
	}

	if len(rec.SessionHistory) != 1 {
		t.Fatalf("SessionHistory = %d entries, want 1", len(rec.SessionHistory))
	}
	entry := rec.SessionHistory[0]
	if entry.Module != "ai_best_practices" || entry.ID == "" {
		t.Errorf("session entry = %+v", entry)
	}

	if len(rec.AssessmentsCompleted) != 1 {
		t.Fatalf("AssessmentsCompleted = %d entries, want 1", len(rec.AssessmentsCompleted))
	}
	if got := rec.AssessmentsCompleted[0]; got.Module != "ai_best_practices" || got.Total != 78.5 {
		t.Errorf("assessment record = %+v", got)
	}
}

func TestSubmitAssessmentFailRetry(t *testing.T) {
	m := testMachine(t)
	if err := m.StartModule("ai_best_practices"); err != nil {
		t.Fatalf("StartModule: %v", err)
	}
	advanceThrough(t, m, 5)

	low := Scores{Understanding: 50, Application: 50, ProblemSolving: 50}
	out, err := m.SubmitAssessment(low)
	if err != nil {
		t.Fatalf("SubmitAssessment: %v", err)
	}
	if out.Passed {
		t.Fatal("Passed = true, want false")
	}
	if out.Total != 50 {
		t.Errorf("Total = %v, want 50", out.Total)
	}
	if got := m.CurrentStatus(); got != StatusAssessmentPending {
		t.Errorf("status after fail = %s, want assessment_pending", got)
	}

	// Identical scores yield the identical outcome; the pending attempt is
	// overwritten, not accumulated.
	again, err := m.SubmitAssessment(low)
	if err != nil {
		t.Fatalf("SubmitAssessment retry: %v", err)
	}
	if again != out {
		t.Errorf("retry outcome = %+v, want %+v", again, out)
	}
	st := m.Record().ModuleStates["ai_best_practices"]
	if st.LastAttempt == nil || st.LastAttempt.Total != 50 {
		t.Errorf("LastAttempt = %+v", st.LastAttempt)
	}
	if len(m.Record().AssessmentsCompleted) != 0 {
		t.Error("failed attempts must not enter assessments_completed")
	}

	// A later passing attempt still completes.
	pass, err := m.SubmitAssessment(Scores{Understanding: 90, Application: 90, ProblemSolving: 90})
	if err != nil {
		t.Fatalf("SubmitAssessment pass: %v", err)
	}
	if !pass.Passed {
		t.Error("Passed = false, want true")
	}
	if m.Status("ai_best_practices") != StatusCompleted {
		t.Error("module not completed after passing retry")
	}
}

func TestSubmitAssessmentScoreOutOfRange(t *testing.T) {
	m := testMachine(t)
	if err := m.StartModule("ai_best_practices"); err != nil {
		t.Fatalf("StartModule: %v", err)
	}
	advanceThrough(t, m, 5)

	_, err := m.SubmitAssessment(Scores{Understanding: 101, Application: 50, ProblemSolving: 50})
	var oor *ErrScoreOutOfRange
	if !errors.As(err, &oor) {
		t.Fatalf("err = %v, want ErrScoreOutOfRange", err)
	}
	if oor.Dimension != "understanding" || oor.Score != 101 {
		t.Errorf("err fields = %+v", oor)
	}

	if _, err := m.SubmitAssessment(Scores{Understanding: 50, Application: -1, ProblemSolving: 50}); err == nil {
		t.Error("expected error for negative score")
	}
}

func TestSubmitAssessmentInvalidTransition(t *testing.T) {
	m := testMachine(t)

	_, err := m.SubmitAssessment(Scores{Understanding: 90, Application: 90, ProblemSolving: 90})
	var invalid *ErrInvalidTransition
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestStartModuleSwitchingRetainsPartialState(t *testing.T) {
	m := testMachine(t)
	if err := m.StartModule("ai_best_practices"); err != nil {
		t.Fatalf("StartModule: %v", err)
	}
	if _, err := m.AdvanceSlide(0, 5); err != nil {
		t.Fatalf("AdvanceSlide: %v", err)
	}
	if _, err := m.AdvanceSlide(1, 5); err != nil {
		t.Fatalf("AdvanceSlide: %v", err)
	}

	// Switch away, then come back.
	if err := m.StartModule("programming_with_ai"); err != nil {
		t.Fatalf("StartModule switch: %v", err)
	}
	if m.Record().CurrentProgress != 0 {
		t.Errorf("fresh module progress = %d, want 0", m.Record().CurrentProgress)
	}

	if err := m.StartModule("ai_best_practices"); err != nil {
		t.Fatalf("StartModule resume: %v", err)
	}
	if m.Record().CurrentProgress != 40 {
		t.Errorf("resumed progress = %d, want 40", m.Record().CurrentProgress)
	}
	if st := m.Record().ModuleStates["ai_best_practices"]; st.SlidePosition != 1 {
		t.Errorf("resumed slide position = %d, want 1", st.SlidePosition)
	}
}

func TestStartCompletedModuleRejected(t *testing.T) {
	m := testMachine(t)
	if err := m.StartModule("ai_best_practices"); err != nil {
		t.Fatalf("StartModule: %v", err)
	}
	advanceThrough(t, m, 5)
	if _, err := m.SubmitAssessment(Scores{Understanding: 90, Application: 90, ProblemSolving: 90}); err != nil {
		t.Fatalf("SubmitAssessment: %v", err)
	}

	err := m.StartModule("ai_best_practices")
	var invalid *ErrInvalidTransition
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	if invalid.Current != StatusCompleted {
		t.Errorf("Current = %s, want completed", invalid.Current)
	}
}

func TestSkillsMonotone(t *testing.T) {
	m := testMachine(t)
	if err := m.StartModule("ai_best_practices"); err != nil {
		t.Fatalf("StartModule: %v", err)
	}
	advanceThrough(t, m, 5)
	if _, err := m.SubmitAssessment(Scores{Understanding: 90, Application: 90, ProblemSolving: 90}); err != nil {
		t.Fatalf("SubmitAssessment: %v", err)
	}
	before := len(m.Record().SkillsAcquired)

	// Completing the other module only appends.
	if err := m.StartModule("programming_with_ai"); err != nil {
		t.Fatalf("StartModule: %v", err)
	}
	advanceThrough(t, m, 5)
	if err := m.CompleteHandsOn("p1"); err != nil {
		t.Fatalf("CompleteHandsOn: %v", err)
	}
	if _, err := m.SubmitAssessment(Scores{Understanding: 90, Application: 90, ProblemSolving: 90}); err != nil {
		t.Fatalf("SubmitAssessment: %v", err)
	}

	rec := m.Record()
	if len(rec.SkillsAcquired) < before {
		t.Error("skills_acquired shrank")
	}
	if rec.OverallCompletion != 100 {
		t.Errorf("OverallCompletion = %d, want 100", rec.OverallCompletion)
	}
}

func TestBookmarksAndNotes(t *testing.T) {
	m := testMachine(t)

	m.AddBookmark("programming_with_ai/2")
	m.AddBookmark("programming_with_ai/2")
	m.AddBookmark("ai_best_practices/0")
	if got := len(m.Record().Bookmarks); got != 2 {
		t.Errorf("bookmarks = %d, want 2 (deduplicated)", got)
	}

	m.SetNote("programming_with_ai/2", "first draft")
	m.SetNote("programming_with_ai/2", "revised")
	if got := m.Record().Notes["programming_with_ai/2"]; got != "revised" {
		t.Errorf("note = %q, want last write", got)
	}
}

func TestRecommendations(t *testing.T) {
	m := testMachine(t)

	// Default preferences: intermediate, hands-on. programming_with_ai
	// (intermediate, hands-on) outranks ai_best_practices (beginner).
	recs := m.Recommendations()
	if len(recs) != 2 {
		t.Fatalf("recommendations = %d, want 2", len(recs))
	}
	if recs[0].ID != "programming_with_ai" {
		t.Errorf("first recommendation = %s, want programming_with_ai", recs[0].ID)
	}

	// Completed modules drop out.
	if err := m.StartModule("programming_with_ai"); err != nil {
		t.Fatalf("StartModule: %v", err)
	}
	advanceThrough(t, m, 5)
	if err := m.CompleteHandsOn("p1"); err != nil {
		t.Fatalf("CompleteHandsOn: %v", err)
	}
	if _, err := m.SubmitAssessment(Scores{Understanding: 90, Application: 90, ProblemSolving: 90}); err != nil {
		t.Fatalf("SubmitAssessment: %v", err)
	}
	recs = m.Recommendations()
	if len(recs) != 1 || recs[0].ID != "ai_best_practices" {
		t.Errorf("recommendations after completion = %+v", recs)
	}
}
