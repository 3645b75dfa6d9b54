// Package progress owns the learner's progress record and the per-module
// state machine that mutates it:
//
//	NotStarted → InProgress → HandsOnPending → AssessmentPending → Completed
//
// HandsOnPending is skipped for modules without a hands-on component. Every
// operation either applies fully or returns a typed error leaving the record
// untouched.
package progress

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/qaport/qaport/internal/catalog"
)

// PassThreshold is the weighted assessment total required to complete a module.
const PassThreshold = 70.0

// AssessmentOutcome is the result of one assessment submission. A failed
// outcome is a normal, retryable result, not an error.
type AssessmentOutcome struct {
	Scores Scores
	Total  float64
	Passed bool
}

// Machine drives a single learner's progress record against a catalog.
// Not safe for concurrent use; the caller serializes per-learner mutations.
type Machine struct {
	catalog *catalog.Catalog
	record  *Record
}

// NewMachine creates a Machine over the given record. A nil record starts a
// new learner from defaults.
func NewMachine(c *catalog.Catalog, rec *Record) *Machine {
	if rec == nil {
		rec = NewRecord()
	}
	if rec.Notes == nil {
		rec.Notes = make(map[string]string)
	}
	if rec.ModuleStates == nil {
		rec.ModuleStates = make(map[string]*ModuleState)
	}
	return &Machine{catalog: c, record: rec}
}

// Record exposes the record read-only (for rendering and for the external
// recommendation/persistence collaborators). Callers must not mutate it.
func (m *Machine) Record() *Record {
	return m.record
}

// Status returns the module's current lifecycle status.
func (m *Machine) Status(moduleID string) Status {
	if m.record.HasCompleted(moduleID) {
		return StatusCompleted
	}
	if st, ok := m.record.ModuleStates[moduleID]; ok {
		return st.Status
	}
	return StatusNotStarted
}

// CurrentStatus returns the status of the active module, or StatusNotStarted
// when no module is active.
func (m *Machine) CurrentStatus() Status {
	if m.record.CurrentModule == "" {
		return StatusNotStarted
	}
	return m.Status(m.record.CurrentModule)
}

// StartModule makes the module active. An in-progress module being switched
// away from keeps its partial state and can be resumed later; restarting a
// previously visited module resumes from its retained position.
func (m *Machine) StartModule(moduleID string) error {
	if _, err := m.catalog.Module(moduleID); err != nil {
		return err
	}
	if m.record.HasCompleted(moduleID) {
		return &ErrInvalidTransition{Op: "start module", Current: StatusCompleted, Expected: StatusNotStarted}
	}

	st, ok := m.record.ModuleStates[moduleID]
	if !ok {
		st = &ModuleState{
			Status:    StatusInProgress,
			StartedAt: time.Now(),
		}
		m.record.ModuleStates[moduleID] = st
	}

	m.record.CurrentModule = moduleID
	m.record.CurrentProgress = st.Progress
	return nil
}

// AdvanceSlide records that the learner reached slide position pos of a deck
// with total slides, recomputing current progress. Progress is monotone
// within a module pass: navigating backward never lowers it. Reaching the
// final slide transitions to HandsOnPending, or straight to
// AssessmentPending for modules without a hands-on component.
func (m *Machine) AdvanceSlide(pos, total int) (int, error) {
	st, err := m.activeState("advance slide", StatusInProgress)
	if err != nil {
		return 0, err
	}
	if total <= 0 {
		return 0, fmt.Errorf("advance slide: total slides %d must be positive", total)
	}
	if pos < 0 || pos >= total {
		return 0, fmt.Errorf("advance slide: position %d out of range [0, %d)", pos, total)
	}

	pct := int(math.Round(100 * float64(pos+1) / float64(total)))
	if pct > st.Progress {
		st.Progress = pct
	}
	if pos > st.SlidePosition {
		st.SlidePosition = pos
	}
	m.record.CurrentProgress = st.Progress

	if pos+1 == total {
		mod, err := m.catalog.Module(m.record.CurrentModule)
		if err != nil {
			return 0, err
		}
		if mod.HandsOn {
			st.Status = StatusHandsOnPending
		} else {
			st.Status = StatusAssessmentPending
		}
	}
	return st.Progress, nil
}

// CompleteHandsOn records the module's hands-on project as done and moves the
// module to AssessmentPending. Project identifiers are module-scoped.
func (m *Machine) CompleteHandsOn(projectID string) error {
	st, err := m.activeState("complete hands-on", StatusHandsOnPending)
	if err != nil {
		return err
	}

	moduleID := m.record.CurrentModule
	already := slices.ContainsFunc(m.record.HandsOnProjects, func(p HandsOnProject) bool {
		return p.Module == moduleID && p.ProjectID == projectID
	})
	if !already {
		m.record.HandsOnProjects = append(m.record.HandsOnProjects, HandsOnProject{
			ProjectID:   projectID,
			Module:      moduleID,
			CompletedAt: time.Now(),
		})
	}

	st.Status = StatusAssessmentPending
	return nil
}

// SubmitAssessment evaluates the raw scores against the module's
// difficulty-weighted criteria. A passing total completes and finalizes the
// module; a failing total leaves the module in AssessmentPending with the
// attempt recorded (overwriting any prior pending attempt) so the learner
// can retry.
func (m *Machine) SubmitAssessment(scores Scores) (AssessmentOutcome, error) {
	st, err := m.activeState("submit assessment", StatusAssessmentPending)
	if err != nil {
		return AssessmentOutcome{}, err
	}
	if err := validateScores(scores); err != nil {
		return AssessmentOutcome{}, err
	}

	mod, err := m.catalog.Module(m.record.CurrentModule)
	if err != nil {
		return AssessmentOutcome{}, err
	}
	crit := m.catalog.Criteria(mod.Difficulty)

	total := (float64(scores.Understanding)*float64(crit.Understanding) +
		float64(scores.Application)*float64(crit.Application) +
		float64(scores.ProblemSolving)*float64(crit.ProblemSolving)) / 100

	outcome := AssessmentOutcome{
		Scores: scores,
		Total:  total,
		Passed: total >= PassThreshold,
	}

	attempt := &AssessmentResult{
		Module:      mod.ID,
		Scores:      scores,
		Total:       total,
		Passed:      outcome.Passed,
		CompletedAt: time.Now(),
	}
	st.LastAttempt = attempt

	if outcome.Passed {
		m.finalizeCompletion(mod, st, *attempt)
	}
	return outcome, nil
}

// finalizeCompletion moves the active module into completed state: record
// the assessment, union the module's topics into acquired skills, append a
// session history entry, clear the active module, and recompute overall
// completion.
func (m *Machine) finalizeCompletion(mod catalog.Module, st *ModuleState, result AssessmentResult) {
	if !m.record.HasCompleted(mod.ID) {
		m.record.CompletedModules = append(m.record.CompletedModules, mod.ID)
	}

	for _, topic := range mod.Topics {
		if !m.record.HasSkill(topic) {
			m.record.SkillsAcquired = append(m.record.SkillsAcquired, topic)
		}
	}

	m.record.AssessmentsCompleted = append(m.record.AssessmentsCompleted, result)

	duration := 0
	if !st.StartedAt.IsZero() {
		duration = int(time.Since(st.StartedAt).Minutes())
	}
	m.record.SessionHistory = append(m.record.SessionHistory, SessionEntry{
		ID:              uuid.NewString(),
		Date:            time.Now(),
		Module:          mod.ID,
		DurationMinutes: duration,
	})

	st.Status = StatusCompleted
	st.Progress = 100
	st.LastAttempt = nil

	m.record.CurrentModule = ""
	m.record.CurrentProgress = 0
	m.record.OverallCompletion = m.OverallCompletion()
}

// OverallCompletion returns 100·|completed|/|catalog modules|, rounded.
func (m *Machine) OverallCompletion() int {
	totalModules := m.catalog.ModuleCount()
	if totalModules == 0 {
		return 0
	}
	return int(math.Round(100 * float64(len(m.record.CompletedModules)) / float64(totalModules)))
}

// AddBookmark records a slide reference. Unconstrained by module status;
// duplicates are ignored.
func (m *Machine) AddBookmark(ref string) {
	if ref == "" || m.record.HasBookmark(ref) {
		return
	}
	m.record.Bookmarks = append(m.record.Bookmarks, ref)
}

// SetNote stores free text against a slide reference, last write wins.
func (m *Machine) SetNote(ref, text string) {
	if ref == "" {
		return
	}
	m.record.Notes[ref] = text
}

// Recommendations returns not-yet-completed modules ordered by fit with the
// learner's preferences: preferred difficulty first, then hands-on modules
// when the learner prefers them, stable by catalog order within a band.
func (m *Machine) Recommendations() []catalog.Module {
	prefs := m.record.Preferences

	var out []catalog.Module
	for _, mod := range m.catalog.Modules() {
		if m.record.HasCompleted(mod.ID) {
			continue
		}
		out = append(out, mod)
	}

	rank := func(mod catalog.Module) int {
		r := 0
		if mod.Difficulty != prefs.DifficultyLevel {
			r += 2
		}
		if mod.HandsOn != prefs.HandsOnPreference {
			r++
		}
		return r
	}
	slices.SortStableFunc(out, func(a, b catalog.Module) int {
		return rank(a) - rank(b)
	})
	return out
}

// activeState fetches the active module's state, enforcing the expected
// status for the named operation.
func (m *Machine) activeState(op string, expected Status) (*ModuleState, error) {
	if m.record.CurrentModule == "" {
		return nil, &ErrInvalidTransition{Op: op, Current: StatusNotStarted, Expected: expected}
	}
	st, ok := m.record.ModuleStates[m.record.CurrentModule]
	if !ok {
		return nil, &ErrInvalidTransition{Op: op, Current: StatusNotStarted, Expected: expected}
	}
	if st.Status != expected {
		return nil, &ErrInvalidTransition{Op: op, Current: st.Status, Expected: expected}
	}
	return st, nil
}

func validateScores(s Scores) error {
	checks := []struct {
		dimension string
		score     int
	}{
		{"understanding", s.Understanding},
		{"application", s.Application},
		{"problem_solving", s.ProblemSolving},
	}
	for _, c := range checks {
		if c.score < 0 || c.score > 100 {
			return &ErrScoreOutOfRange{Dimension: c.dimension, Score: c.score}
		}
	}
	return nil
}
