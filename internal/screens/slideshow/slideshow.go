// Package slideshow renders a presentation deck slide by slide and drives
// the learner's progress as slides are viewed.
package slideshow

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/qaport/qaport/internal/catalog"
	"github.com/qaport/qaport/internal/progress"
	"github.com/qaport/qaport/internal/router"
	"github.com/qaport/qaport/internal/screen"
	"github.com/qaport/qaport/internal/screens/assessment"
	"github.com/qaport/qaport/internal/screens/handson"
	"github.com/qaport/qaport/internal/slides"
	"github.com/qaport/qaport/internal/store"
	"github.com/qaport/qaport/internal/ui/components"
	"github.com/qaport/qaport/internal/ui/layout"
)

// SlideshowScreen steps through one deck. For module decks it records slide
// progress on the learner's record; static decks (introduction, conclusion)
// are read-only.
type SlideshowScreen struct {
	cat  *catalog.Catalog
	gen  *slides.Generator
	mach *progress.Machine
	st   *store.Store

	kind  catalog.TemplateKind
	mod   *catalog.Module
	names []string
	pos   int

	noteMode  bool
	noteInput components.TextInput
	statusMsg string
}

var _ screen.Screen = (*SlideshowScreen)(nil)
var _ screen.KeyHintProvider = (*SlideshowScreen)(nil)

// New creates a slideshow over the given template kind. mod must be non-nil
// for module-bound templates and nil for static ones.
func New(cat *catalog.Catalog, gen *slides.Generator, mach *progress.Machine, st *store.Store, kind catalog.TemplateKind, mod *catalog.Module) *SlideshowScreen {
	var names []string
	if tpl, ok := cat.Template(kind); ok {
		names = tpl.Slides
	}

	s := &SlideshowScreen{
		cat:   cat,
		gen:   gen,
		mach:  mach,
		st:    st,
		kind:  kind,
		mod:   mod,
		names: names,
	}
	if s.tracked() {
		if ms := mach.Record().ModuleStates[mod.ID]; ms != nil {
			if ms.SlidePosition < len(names) {
				s.pos = ms.SlidePosition
			}
		}
	}
	return s
}

// tracked reports whether this deck records progress.
func (s *SlideshowScreen) tracked() bool {
	return s.mod != nil && s.mach != nil &&
		s.mach.Status(s.mod.ID) == progress.StatusInProgress
}

func (s *SlideshowScreen) Init() tea.Cmd {
	s.recordView()
	return nil
}

func (s *SlideshowScreen) Title() string {
	if s.mod != nil {
		return s.mod.Title
	}
	return s.kind.Label()
}

func (s *SlideshowScreen) KeyHints() []layout.KeyHint {
	if s.noteMode {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save note"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Slides"},
	}
	if s.mod != nil {
		hints = append(hints,
			layout.KeyHint{Key: "b", Description: "Bookmark"},
			layout.KeyHint{Key: "n", Description: "Note"},
		)
	}
	if s.deckDone() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Continue"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

// deckDone reports whether the module deck has been finished and the next
// stage is waiting.
func (s *SlideshowScreen) deckDone() bool {
	if s.mod == nil || s.mach == nil {
		return false
	}
	st := s.mach.Status(s.mod.ID)
	return st == progress.StatusHandsOnPending || st == progress.StatusAssessmentPending
}

func (s *SlideshowScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.noteMode {
		switch kmsg.String() {
		case "enter":
			s.mach.SetNote(s.slideRef(), s.noteInput.Value())
			s.persist()
			s.noteMode = false
			s.statusMsg = "Note saved"
		case "esc":
			s.noteMode = false
		default:
			var cmd tea.Cmd
			s.noteInput, cmd = s.noteInput.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	s.statusMsg = ""
	switch kmsg.String() {
	case "right", "l", " ":
		if s.pos+1 < len(s.names) {
			s.pos++
			s.recordView()
		}
	case "left", "h":
		if s.pos > 0 {
			s.pos--
			s.recordView()
		}
	case "b":
		if s.mod != nil {
			s.mach.AddBookmark(s.slideRef())
			s.persist()
			s.statusMsg = "Bookmarked"
		}
	case "n":
		if s.mod != nil {
			s.noteInput = components.NewTextInput("Your note", false, 120)
			if existing := s.mach.Record().Notes[s.slideRef()]; existing != "" {
				s.noteInput.Model.SetValue(existing)
			}
			s.noteMode = true
			return s, s.noteInput.Init()
		}
	case "enter":
		if s.deckDone() {
			return s, s.advanceStage()
		}
		if s.pos+1 < len(s.names) {
			s.pos++
			s.recordView()
		}
	}
	return s, nil
}

// advanceStage replaces this screen with the module's next stage. The
// overview deck hands off to the hands-on session deck first; that deck
// hands off to the project capture screen.
func (s *SlideshowScreen) advanceStage() tea.Cmd {
	switch s.mach.Status(s.mod.ID) {
	case progress.StatusHandsOnPending:
		var next screen.Screen
		if s.kind == catalog.KindModuleOverview {
			next = New(s.cat, s.gen, s.mach, s.st, catalog.KindHandsOnSession, s.mod)
		} else {
			next = handson.New(s.cat, s.mach, s.st, *s.mod)
		}
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	case progress.StatusAssessmentPending:
		next := assessment.New(s.cat, s.mach, s.st, *s.mod)
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return nil
}

// recordView marks the current slide as reached on the learner's record.
func (s *SlideshowScreen) recordView() {
	if !s.tracked() {
		return
	}
	if _, err := s.mach.AdvanceSlide(s.pos, len(s.names)); err != nil {
		s.statusMsg = err.Error()
		return
	}
	s.persist()
}

func (s *SlideshowScreen) persist() {
	if s.st == nil {
		return
	}
	if err := s.st.Save(s.mach.Record()); err != nil {
		s.statusMsg = fmt.Sprintf("save failed: %v", err)
	}
}

// slideRef identifies the current slide for bookmarks and notes. The
// overview deck keeps the original bare module/index form; other decks
// include the deck kind so references stay unambiguous.
func (s *SlideshowScreen) slideRef() string {
	if s.kind == catalog.KindModuleOverview {
		return fmt.Sprintf("%s/%d", s.mod.ID, s.pos)
	}
	return fmt.Sprintf("%s/%s/%d", s.mod.ID, s.kind, s.pos)
}
