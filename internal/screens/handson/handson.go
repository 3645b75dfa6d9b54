// Package handson collects the learner's hands-on project for a module and
// moves the module on to its assessment.
package handson

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
	"github.com/qaport/qaport/internal/store"
	"github.com/qaport/qaport/internal/ui/components"
	"github.com/qaport/qaport/internal/ui/layout"
	"github.com/qaport/qaport/internal/ui/theme"
)

// HandsOnScreen prompts for the identifier of the project the learner built
// during the module's hands-on session.
type HandsOnScreen struct {
	cat  *catalog.Catalog
	mach *progress.Machine
	st   *store.Store
	mod  catalog.Module

	input     components.TextInput
	statusMsg string
}

var _ screen.Screen = (*HandsOnScreen)(nil)
var _ screen.KeyHintProvider = (*HandsOnScreen)(nil)

// New creates a HandsOnScreen for the module.
func New(cat *catalog.Catalog, mach *progress.Machine, st *store.Store, mod catalog.Module) *HandsOnScreen {
	input := components.NewTextInput(mod.ID+"_project", false, 64)
	return &HandsOnScreen{
		cat:   cat,
		mach:  mach,
		st:    st,
		mod:   mod,
		input: input,
	}
}

func (h *HandsOnScreen) Init() tea.Cmd {
	return h.input.Init()
}

func (h *HandsOnScreen) Title() string {
	return "Hands-on Session"
}

func (h *HandsOnScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Mark complete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HandsOnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	if kmsg.String() == "enter" {
		projectID := strings.TrimSpace(h.input.Value())
		if projectID == "" {
			projectID = h.mod.ID + "_project"
		}
		if err := h.mach.CompleteHandsOn(projectID); err != nil {
			h.statusMsg = err.Error()
			return h, nil
		}
		if err := h.st.Save(h.mach.Record()); err != nil {
			h.statusMsg = fmt.Sprintf("save failed: %v", err)
			return h, nil
		}
		next := assessment.New(h.cat, h.mach, h.st, h.mod)
		return h, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}

	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return h, cmd
}

func (h *HandsOnScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Hands-on: " + h.mod.Title))
	b.WriteString("\n\n")

	intro := "Build a small project applying what this module covered, then\n" +
		"record it here. Suggested directions:"
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  " + strings.ReplaceAll(intro, "\n", "\n  ")))
	b.WriteString("\n\n")

	for _, topic := range h.mod.Topics {
		b.WriteString("    " +
			lipgloss.NewStyle().Foreground(theme.Secondary).Render("•") + " " +
			lipgloss.NewStyle().Foreground(theme.Text).Render("A mini project exercising "+topic))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("  Project name: " + h.input.View())
	b.WriteString("\n")

	if h.statusMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("  "+h.statusMsg))
	}

	return b.String()
}
