package progress

import (
	"fmt"
	"slices"
	"time"

	"github.com/qaport/qaport/internal/catalog"
)

// Scores holds the three raw assessment scores, each in [0, 100].
type Scores struct {
	Understanding  int `json:"understanding"`
	Application    int `json:"application"`
	ProblemSolving int `json:"problem_solving"`
}

// AssessmentResult is one recorded assessment attempt for a module.
type AssessmentResult struct {
	Module      string    `json:"module"`
	Scores      Scores    `json:"areas"`
	Total       float64   `json:"total"`
	Passed      bool      `json:"passed"`
	CompletedAt time.Time `json:"completed_at"`
}

// HandsOnProject is a completed hands-on project, scoped to its module.
type HandsOnProject struct {
	ProjectID   string    `json:"project_id"`
	Module      string    `json:"module"`
	CompletedAt time.Time `json:"completion_date"`
}

// SessionEntry is one append-only session history line.
type SessionEntry struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	Module          string    `json:"module"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Preferences holds the learner's portal preferences.
type Preferences struct {
	DifficultyLevel   catalog.Difficulty `json:"difficulty_level"`
	FocusAreas        []string           `json:"focus_areas"`
	HandsOnPreference bool               `json:"hands_on_preference"`
}

// ModuleState is the retained per-module progress. Switching to another
// module keeps this state so the learner can resume later.
type ModuleState struct {
	Status        Status            `json:"status"`
	SlidePosition int               `json:"slide_position"`
	Progress      int               `json:"progress"`
	StartedAt     time.Time         `json:"started_at"`
	LastAttempt   *AssessmentResult `json:"last_attempt,omitempty"`
}

// Record is the full mutable state tracking one learner's journey.
// It is mutated exclusively through Machine transitions.
type Record struct {
	CurrentModule        string                  `json:"current_module"`
	CompletedModules     []string                `json:"completed_modules"`
	CurrentProgress      int                     `json:"current_progress"`
	OverallCompletion    int                     `json:"overall_completion"`
	SkillsAcquired       []string                `json:"skills_acquired"`
	AssessmentsCompleted []AssessmentResult      `json:"assessments_completed"`
	HandsOnProjects      []HandsOnProject        `json:"hands_on_projects"`
	LearningPath         string                  `json:"learning_path"`
	Preferences          Preferences             `json:"preferences"`
	SessionHistory       []SessionEntry          `json:"session_history"`
	Bookmarks            []string                `json:"bookmarks"`
	Notes                map[string]string       `json:"notes"`
	ModuleStates         map[string]*ModuleState `json:"module_states"`
}

// NewRecord returns the documented all-default record for a new learner.
func NewRecord() *Record {
	return &Record{
		CompletedModules: []string{},
		SkillsAcquired:   []string{},
		LearningPath:     "custom",
		Preferences: Preferences{
			DifficultyLevel:   catalog.DifficultyIntermediate,
			FocusAreas:        []string{},
			HandsOnPreference: true,
		},
		Notes:        make(map[string]string),
		ModuleStates: make(map[string]*ModuleState),
	}
}

// Validate checks the record's structural invariants. A violating record is
// rejected with ErrInvalidRecord; repair is the storage layer's decision,
// not ours.
func (r *Record) Validate() error {
	if r.CurrentProgress < 0 || r.CurrentProgress > 100 {
		return &ErrInvalidRecord{Err: fmt.Errorf("current_progress %d out of range [0, 100]", r.CurrentProgress)}
	}
	if r.OverallCompletion < 0 || r.OverallCompletion > 100 {
		return &ErrInvalidRecord{Err: fmt.Errorf("overall_completion %d out of range [0, 100]", r.OverallCompletion)}
	}
	seen := make(map[string]bool, len(r.CompletedModules))
	for _, id := range r.CompletedModules {
		if seen[id] {
			return &ErrInvalidRecord{Err: fmt.Errorf("module %q completed more than once", id)}
		}
		seen[id] = true
	}
	if r.CurrentModule != "" && seen[r.CurrentModule] {
		return &ErrInvalidRecord{Err: fmt.Errorf("current module %q already completed", r.CurrentModule)}
	}
	if d := r.Preferences.DifficultyLevel; d != "" && !d.Valid() {
		return &ErrInvalidRecord{Err: fmt.Errorf("unknown preference difficulty %q", d)}
	}
	for id, st := range r.ModuleStates {
		if st == nil {
			return &ErrInvalidRecord{Err: fmt.Errorf("module state for %q is null", id)}
		}
		if !st.Status.Valid() {
			return &ErrInvalidRecord{Err: fmt.Errorf("module %q has unknown status %q", id, st.Status)}
		}
		if st.Progress < 0 || st.Progress > 100 {
			return &ErrInvalidRecord{Err: fmt.Errorf("module %q progress %d out of range [0, 100]", id, st.Progress)}
		}
	}
	return nil
}

// HasCompleted reports whether the module is in completed_modules.
func (r *Record) HasCompleted(id string) bool {
	return slices.Contains(r.CompletedModules, id)
}

// HasSkill reports whether the skill tag has been acquired.
func (r *Record) HasSkill(skill string) bool {
	return slices.Contains(r.SkillsAcquired, skill)
}

// HasBookmark reports whether the slide reference is bookmarked.
func (r *Record) HasBookmark(ref string) bool {
	return slices.Contains(r.Bookmarks, ref)
}
