package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qaport/qaport/internal/catalog"
	"github.com/qaport/qaport/internal/slides"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render presentation slides to stdout (no progress tracking)",
	Long: `Render slides from a presentation template as markdown.

This is a stateless tool — nothing is read from or written to the progress
file. Useful for reviewing deck content and authoring module configs.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("template", "", "Template kind: introduction, module_overview, hands_on_session, conclusion (required)")
	previewCmd.Flags().String("module", "", "Module ID (required for module-bound templates)")
	previewCmd.Flags().Int("slide", -1, "Slide index to render; -1 renders the whole deck")
	_ = previewCmd.MarkFlagRequired("template")
}

func runPreview(cmd *cobra.Command, args []string) error {
	templateVal, _ := cmd.Flags().GetString("template")
	moduleVal, _ := cmd.Flags().GetString("module")
	slideIdx, _ := cmd.Flags().GetInt("slide")

	cat, err := loadCatalog(cmd)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	kind := catalog.TemplateKind(strings.ToLower(templateVal))
	tpl, ok := cat.Template(kind)
	if !ok {
		return fmt.Errorf("unknown template %q", templateVal)
	}

	var mod *catalog.Module
	if moduleVal != "" {
		m, err := cat.Module(moduleVal)
		if err != nil {
			return err
		}
		mod = &m
	}

	gen := slides.New(cat)

	render := func(idx int) error {
		body, err := gen.Generate(kind, idx, mod)
		if err != nil {
			return err
		}
		fmt.Printf("── %s (%d/%d) ──\n\n", tpl.Slides[idx], idx+1, len(tpl.Slides))
		fmt.Println(body)
		fmt.Println()
		return nil
	}

	if slideIdx >= 0 {
		return render(slideIdx)
	}
	for i := range tpl.Slides {
		if err := render(i); err != nil {
			return err
		}
	}
	return nil
}
