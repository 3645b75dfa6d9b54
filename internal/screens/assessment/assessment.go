// Package assessment collects the learner's scores for a module's three
// assessment areas and reports the weighted result.
package assessment

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/qaport/qaport/internal/catalog"
	"github.com/qaport/qaport/internal/progress"
	"github.com/qaport/qaport/internal/router"
	"github.com/qaport/qaport/internal/screen"
	"github.com/qaport/qaport/internal/store"
	"github.com/qaport/qaport/internal/ui/components"
	"github.com/qaport/qaport/internal/ui/layout"
	"github.com/qaport/qaport/internal/ui/theme"
)

// AssessmentScreen walks three score inputs, submits them, and shows the
// weighted outcome. A failed attempt can be retried in place.
type AssessmentScreen struct {
	cat  *catalog.Catalog
	mach *progress.Machine
	st   *store.Store
	mod  catalog.Module

	inputs  [3]components.TextInput
	focus   int
	outcome *progress.AssessmentOutcome

	statusMsg string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)

var areaLabels = [3]string{"Understanding", "Application", "Problem Solving"}

// New creates an AssessmentScreen for the module.
func New(cat *catalog.Catalog, mach *progress.Machine, st *store.Store, mod catalog.Module) *AssessmentScreen {
	s := &AssessmentScreen{
		cat:  cat,
		mach: mach,
		st:   st,
		mod:  mod,
	}
	for i := range s.inputs {
		s.inputs[i] = components.NewTextInput("0-100", true, 3)
		if i > 0 {
			s.inputs[i].Model.Blur()
		}
	}
	return s
}

func (a *AssessmentScreen) Init() tea.Cmd {
	return a.inputs[0].Init()
}

func (a *AssessmentScreen) Title() string {
	return "Assessment"
}

func (a *AssessmentScreen) KeyHints() []layout.KeyHint {
	if a.outcome != nil {
		if a.outcome.Passed {
			return []layout.KeyHint{{Key: "Enter", Description: "Finish"}}
		}
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next area"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (a *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	if a.outcome != nil {
		switch kmsg.String() {
		case "enter":
			if a.outcome.Passed {
				return a, func() tea.Msg { return router.PopScreenMsg{} }
			}
		case "r":
			if !a.outcome.Passed {
				a.outcome = nil
				a.statusMsg = ""
				for i := range a.inputs {
					a.inputs[i].Reset()
					a.inputs[i].Model.Blur()
				}
				a.focus = 0
				return a, a.inputs[0].Init()
			}
		}
		return a, nil
	}

	switch kmsg.String() {
	case "tab", "down":
		return a, a.setFocus((a.focus + 1) % len(a.inputs))
	case "shift+tab", "up":
		return a, a.setFocus((a.focus + len(a.inputs) - 1) % len(a.inputs))
	case "enter":
		if a.focus < len(a.inputs)-1 {
			return a, a.setFocus(a.focus + 1)
		}
		a.submit()
		return a, nil
	}

	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return a, cmd
}

func (a *AssessmentScreen) setFocus(i int) tea.Cmd {
	a.inputs[a.focus].Model.Blur()
	a.focus = i
	return a.inputs[i].Model.Focus()
}

func (a *AssessmentScreen) submit() {
	var vals [3]int
	for i := range a.inputs {
		v, err := a.inputs[i].NumericValue()
		if err != nil {
			a.statusMsg = fmt.Sprintf("enter a score for %s", areaLabels[i])
			return
		}
		vals[i] = v
	}

	outcome, err := a.mach.SubmitAssessment(progress.Scores{
		Understanding:  vals[0],
		Application:    vals[1],
		ProblemSolving: vals[2],
	})
	if err != nil {
		a.statusMsg = err.Error()
		return
	}
	if err := a.st.Save(a.mach.Record()); err != nil {
		a.statusMsg = fmt.Sprintf("save failed: %v", err)
		return
	}
	a.statusMsg = ""
	a.outcome = &outcome
}

func (a *AssessmentScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Assessment: " + a.mod.Title))
	b.WriteString("\n\n")

	crit := a.cat.Criteria(a.mod.Difficulty)
	weights := [3]int{crit.Understanding, crit.Application, crit.ProblemSolving}

	if a.outcome == nil {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  Score each area 0-100. Weights for %s modules: %d/%d/%d.",
				a.mod.Difficulty.Title(), weights[0], weights[1], weights[2])))
		b.WriteString("\n\n")

		for i, label := range areaLabels {
			marker := "  "
			if i == a.focus {
				marker = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ ")
			}
			line := fmt.Sprintf("%s%-16s (%d%%)  %s", marker, label, weights[i], a.inputs[i].View())
			b.WriteString("  " + line + "\n")
		}
	} else {
		b.WriteString(a.renderOutcome(width, weights))
	}

	if a.statusMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("  "+a.statusMsg))
	}

	return b.String()
}

func (a *AssessmentScreen) renderOutcome(width int, weights [3]int) string {
	out := a.outcome
	var b strings.Builder

	scores := [3]int{out.Scores.Understanding, out.Scores.Application, out.Scores.ProblemSolving}
	for i, label := range areaLabels {
		b.WriteString(fmt.Sprintf("    %-16s %3d × %d%%\n", label, scores[i], weights[i]))
	}
	b.WriteString("\n")

	total := fmt.Sprintf("Total: %.1f (pass mark %.0f)", out.Total, progress.PassThreshold)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(total))
	b.WriteString("\n\n")

	if out.Passed {
		b.WriteString(theme.Passed.
			Width(width).
			Align(lipgloss.Center).
			Render("✅ Module completed!"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Overall completion: %d%%", a.mach.Record().OverallCompletion)))
	} else {
		b.WriteString(theme.Failed.
			Width(width).
			Align(lipgloss.Center).
			Render("Not yet — review the material and retry."))
	}
	return b.String()
}
