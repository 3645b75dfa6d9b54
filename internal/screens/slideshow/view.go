package slideshow

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/qaport/qaport/internal/ui/components"
	"github.com/qaport/qaport/internal/ui/theme"
)

func (s *SlideshowScreen) View(width, height int) string {
	if len(s.names) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nNo slides in this deck.")
	}

	body, err := s.gen.Generate(s.kind, s.pos, s.mod)
	if err != nil {
		body = "# Error\n\n- " + err.Error()
	}

	var b strings.Builder

	// Deck position line.
	counter := fmt.Sprintf("Slide %d/%d — %s", s.pos+1, len(s.names), s.names[s.pos])
	marks := s.slideMarks()
	posLine := lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + counter)
	if marks != "" {
		posLine += "  " + lipgloss.NewStyle().Foreground(theme.Accent).Render(marks)
	}
	b.WriteString(posLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(renderMarkdown(body, width))
	b.WriteString("\n")

	if s.noteMode {
		b.WriteString("\n  Note: " + s.noteInput.View() + "\n")
	}

	if s.statusMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("  "+s.statusMsg) + "\n")
	}

	if s.deckDone() {
		b.WriteString("\n" + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Deck complete — press Enter to continue"))
		b.WriteString("\n")
	}

	// Deck progress along the bottom.
	bar := components.NewProgressBar("", float64(s.pos+1)/float64(len(s.names)), true, width-8)
	b.WriteString("\n  " + bar.View())

	return b.String()
}

// slideMarks shows bookmark/note indicators for the current slide.
func (s *SlideshowScreen) slideMarks() string {
	if s.mod == nil {
		return ""
	}
	rec := s.mach.Record()
	ref := s.slideRef()
	var marks []string
	if rec.HasBookmark(ref) {
		marks = append(marks, "🔖")
	}
	if rec.Notes[ref] != "" {
		marks = append(marks, "✎")
	}
	return strings.Join(marks, " ")
}

// renderMarkdown applies terminal styling to the generator's markdown:
// headings, bullets, and bold spans.
func renderMarkdown(body string, width int) string {
	var b strings.Builder
	for _, line := range strings.Split(body, "\n") {
		switch {
		case strings.HasPrefix(line, "# "):
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Primary).
				Bold(true).
				Render(strings.TrimPrefix(line, "# ")))
		case strings.HasPrefix(line, "## "):
			b.WriteString("  " + theme.Heading.Render(strings.TrimPrefix(line, "## ")))
		case strings.HasPrefix(line, "- "):
			text := strings.ReplaceAll(strings.TrimPrefix(line, "- "), "**", "")
			b.WriteString("    " +
				lipgloss.NewStyle().Foreground(theme.Secondary).Render("•") + " " +
				lipgloss.NewStyle().Foreground(theme.Text).Render(text))
		default:
			b.WriteString("  " + lipgloss.NewStyle().
				Foreground(theme.Text).
				Render(strings.ReplaceAll(line, "**", "")))
		}
		b.WriteString("\n")
	}
	return b.String()
}
