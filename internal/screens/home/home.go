// Package home is the portal's entry screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/qaport/qaport/internal/catalog"
	"github.com/qaport/qaport/internal/progress"
	"github.com/qaport/qaport/internal/router"
	"github.com/qaport/qaport/internal/screen"
	"github.com/qaport/qaport/internal/screens/dashboard"
	"github.com/qaport/qaport/internal/screens/modules"
	"github.com/qaport/qaport/internal/screens/slideshow"
	"github.com/qaport/qaport/internal/slides"
	"github.com/qaport/qaport/internal/store"
	"github.com/qaport/qaport/internal/ui/components"
	"github.com/qaport/qaport/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	cat  *catalog.Catalog
	gen  *slides.Generator
	mach *progress.Machine
	st   *store.Store

	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(cat *catalog.Catalog, gen *slides.Generator, mach *progress.Machine, st *store.Store) *HomeScreen {
	h := &HomeScreen{cat: cat, gen: gen, mach: mach, st: st}

	items := []components.MenuItem{
		{Label: "BROWSE MODULES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: modules.New(cat, gen, mach, st)}
			}
		}},
		{Label: "PORTAL TOUR", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: slideshow.New(cat, gen, mach, st, catalog.KindIntroduction, nil),
				}
			}
		}},
		{Label: "MY PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(cat, mach)}
			}
		}},
		{Label: "WRAP-UP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: slideshow.New(cat, gen, mach, st, catalog.KindConclusion, nil),
				}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	rec := h.mach.Record()

	var sections []string

	title := theme.Title.Width(width).Render("QA Portal — AI Learning")
	subtitle := theme.Subtitle.Width(width).Render("Structured modules for AI-assisted quality assurance")
	sections = append(sections, title+"\n"+subtitle)

	stats := fmt.Sprintf("Modules completed: %d/%d    Skills: %d    Overall: %d%%",
		len(rec.CompletedModules), h.cat.ModuleCount(),
		len(rec.SkillsAcquired), rec.OverallCompletion)
	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stats))

	if rec.CurrentModule != "" {
		if mod, err := h.cat.Module(rec.CurrentModule); err == nil {
			sections = append(sections, lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Render(fmt.Sprintf("In progress: %s (%d%%)", mod.Title, rec.CurrentProgress)))
		}
	}

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
