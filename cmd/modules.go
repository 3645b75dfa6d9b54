package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qaport/qaport/internal/progress"
	"github.com/qaport/qaport/internal/store"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List catalog modules with their status",
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
			rec = progress.NewRecord()
		} else if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		mach := progress.NewMachine(cat, rec)
		for _, mod := range cat.Modules() {
			status := mach.Status(mod.ID)
			fmt.Printf("%s %-28s %-12s %-10s %s\n",
				status.Icon(), mod.ID, mod.Difficulty.Title(),
				mod.HandsOnMarker(), status.Label())
		}
		return nil
	},
}
