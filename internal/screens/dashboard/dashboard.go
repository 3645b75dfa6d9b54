// Package dashboard summarizes the learner's journey: overall completion,
// per-module status, acquired skills, and recommended next modules.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/qaport/qaport/internal/catalog"
	"github.com/qaport/qaport/internal/progress"
	"github.com/qaport/qaport/internal/screen"
	"github.com/qaport/qaport/internal/ui/components"
	"github.com/qaport/qaport/internal/ui/layout"
	"github.com/qaport/qaport/internal/ui/theme"
)

// DashboardScreen is a read-only progress overview.
type DashboardScreen struct {
	cat  *catalog.Catalog
	mach *progress.Machine
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a DashboardScreen.
func New(cat *catalog.Catalog, mach *progress.Machine) *DashboardScreen {
	return &DashboardScreen{cat: cat, mach: mach}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "My Progress"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	rec := d.mach.Record()
	var b strings.Builder

	overall := components.NewProgressBar("Overall", float64(rec.OverallCompletion)/100, true, width-8)
	b.WriteString("  " + overall.View())
	b.WriteString("\n\n")

	b.WriteString("  " + theme.Heading.Render("Modules"))
	b.WriteString("\n")
	for _, mod := range d.cat.Modules() {
		status := d.mach.Status(mod.ID)
		pct := 0
		if status == progress.StatusCompleted {
			pct = 100
		} else if st, ok := rec.ModuleStates[mod.ID]; ok {
			pct = st.Progress
		}
		line := fmt.Sprintf("  %s %-32s %3d%%  %s", status.Icon(), mod.Title, pct, status.Label())
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("  " + theme.Heading.Render(fmt.Sprintf("Skills acquired (%d)", len(rec.SkillsAcquired))))
	b.WriteString("\n")
	if len(rec.SkillsAcquired) == 0 {
		b.WriteString("    " + lipgloss.NewStyle().Foreground(theme.TextDim).Render("Complete a module to earn skills."))
		b.WriteString("\n")
	} else {
		b.WriteString("    " + lipgloss.NewStyle().
			Foreground(theme.Text).
			Render(strings.Join(rec.SkillsAcquired, ", ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if recs := d.mach.Recommendations(); len(recs) > 0 {
		b.WriteString("  " + theme.Heading.Render("Recommended next"))
		b.WriteString("\n")
		limit := min(len(recs), 3)
		for _, mod := range recs[:limit] {
			b.WriteString("    " +
				lipgloss.NewStyle().Foreground(theme.Secondary).Render("•") + " " +
				lipgloss.NewStyle().Foreground(theme.Text).Render(
					fmt.Sprintf("%s (%s)", mod.Title, mod.Difficulty.Title())))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if n := len(rec.SessionHistory); n > 0 {
		last := rec.SessionHistory[n-1]
		b.WriteString("  " + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Sessions: %d   Last: %s (%d min)",
				n, last.Module, last.DurationMinutes)))
		b.WriteString("\n")
	}

	return b.String()
}
