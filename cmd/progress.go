package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qaport/qaport/internal/progress"
	"github.com/qaport/qaport/internal/store"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show a summary of the learner's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		dataPath, err := resolveDataPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve data path: %w", err)
		}
		rec, err := store.New(dataPath).Load()
		if errors.Is(err, store.ErrNotFound) {
			fmt.Println("No progress yet. Run 'qaport' to start learning.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		mach := progress.NewMachine(cat, rec)

		fmt.Printf("Overall completion: %d%%\n", rec.OverallCompletion)
		fmt.Printf("Modules completed:  %d/%d\n", len(rec.CompletedModules), cat.ModuleCount())
		if rec.CurrentModule != "" {
			fmt.Printf("Current module:     %s (%d%%)\n", rec.CurrentModule, rec.CurrentProgress)
		}
		if len(rec.SkillsAcquired) > 0 {
			fmt.Printf("Skills acquired:    %s\n", strings.Join(rec.SkillsAcquired, ", "))
		}
		fmt.Printf("Sessions recorded:  %d\n", len(rec.SessionHistory))
		fmt.Println()

		for _, mod := range cat.Modules() {
			status := mach.Status(mod.ID)
			pct := 0
			switch {
			case status == progress.StatusCompleted:
				pct = 100
			default:
				if st, ok := rec.ModuleStates[mod.ID]; ok {
					pct = st.Progress
				}
			}
			fmt.Printf("%s %-28s %3d%%  %s\n", status.Icon(), mod.ID, pct, status.Label())
		}
		return nil
	},
}
