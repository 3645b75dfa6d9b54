package progress

// Status represents a module's position in the learner's lifecycle.
type Status string

const (
	StatusNotStarted        Status = "not_started"
	StatusInProgress        Status = "in_progress"
	StatusHandsOnPending    Status = "hands_on_pending"
	StatusAssessmentPending Status = "assessment_pending"
	StatusCompleted         Status = "completed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusHandsOnPending,
		StatusAssessmentPending, StatusCompleted:
		return true
	}
	return false
}

// Label returns the display label for a status.
func (s Status) Label() string {
	switch s {
	case StatusNotStarted:
		return "Not Started"
	case StatusInProgress:
		return "In Progress"
	case StatusHandsOnPending:
		return "Hands-on Pending"
	case StatusAssessmentPending:
		return "Assessment Pending"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Icon returns the display icon for a status.
func (s Status) Icon() string {
	switch s {
	case StatusNotStarted:
		return "○"
	case StatusInProgress:
		return "◐"
	case StatusHandsOnPending:
		return "🛠"
	case StatusAssessmentPending:
		return "📝"
	case StatusCompleted:
		return "✅"
	default:
		return "?"
	}
}
