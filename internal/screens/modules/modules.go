// Package modules lists the catalog with live per-module status and starts
// or resumes a module's slideshow.
package modules

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/qaport/qaport/internal/catalog"
	"github.com/qaport/qaport/internal/progress"
	"github.com/qaport/qaport/internal/router"
	"github.com/qaport/qaport/internal/screen"
	"github.com/qaport/qaport/internal/screens/assessment"
	"github.com/qaport/qaport/internal/screens/slideshow"
	"github.com/qaport/qaport/internal/slides"
	"github.com/qaport/qaport/internal/store"
	"github.com/qaport/qaport/internal/ui/layout"
	"github.com/qaport/qaport/internal/ui/theme"
)

// ModulesScreen shows the catalog as a navigable list. Statuses are read
// from the machine on every render so they stay current after a module
// flow pops back here.
type ModulesScreen struct {
	cat  *catalog.Catalog
	gen  *slides.Generator
	mach *progress.Machine
	st   *store.Store

	cursor    int
	statusMsg string
}

var _ screen.Screen = (*ModulesScreen)(nil)
var _ screen.KeyHintProvider = (*ModulesScreen)(nil)

// New creates a ModulesScreen.
func New(cat *catalog.Catalog, gen *slides.Generator, mach *progress.Machine, st *store.Store) *ModulesScreen {
	return &ModulesScreen{cat: cat, gen: gen, mach: mach, st: st}
}

func (m *ModulesScreen) Init() tea.Cmd {
	return nil
}

func (m *ModulesScreen) Title() string {
	return "Modules"
}

func (m *ModulesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (m *ModulesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	mods := m.cat.Modules()
	m.statusMsg = ""

	switch kmsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor+1 < len(mods) {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(mods) {
			return m, m.open(mods[m.cursor])
		}
	}
	return m, nil
}

// open resumes the module at whatever stage it is in.
func (m *ModulesScreen) open(mod catalog.Module) tea.Cmd {
	switch m.mach.Status(mod.ID) {
	case progress.StatusCompleted:
		m.statusMsg = fmt.Sprintf("%s is already completed", mod.Title)
		return nil
	case progress.StatusHandsOnPending:
		next := slideshow.New(m.cat, m.gen, m.mach, m.st, catalog.KindHandsOnSession, &mod)
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	case progress.StatusAssessmentPending:
		next := assessment.New(m.cat, m.mach, m.st, mod)
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}

	if err := m.mach.StartModule(mod.ID); err != nil {
		m.statusMsg = err.Error()
		return nil
	}
	if err := m.st.Save(m.mach.Record()); err != nil {
		m.statusMsg = fmt.Sprintf("save failed: %v", err)
		return nil
	}
	next := slideshow.New(m.cat, m.gen, m.mach, m.st, catalog.KindModuleOverview, &mod)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (m *ModulesScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  Select a module to start or resume it."))
	b.WriteString("\n\n")

	for i, mod := range m.cat.Modules() {
		status := m.mach.Status(mod.ID)
		line := fmt.Sprintf("%s %-32s %-12s %s",
			status.Icon(), mod.Title, mod.Difficulty.Title(), status.Label())

		if st, ok := m.mach.Record().ModuleStates[mod.ID]; ok && status == progress.StatusInProgress {
			line += fmt.Sprintf(" (%d%%)", st.Progress)
		}

		if i == m.cursor {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ " + line))
		} else if status == progress.StatusCompleted {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("    " + line))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    " + line))
		}
		b.WriteString("\n")
	}

	if m.statusMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("  "+m.statusMsg))
	}

	return b.String()
}
