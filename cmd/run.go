package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qaport/qaport/internal/app"
	"github.com/qaport/qaport/internal/progress"
	"github.com/qaport/qaport/internal/slides"
	"github.com/qaport/qaport/internal/store"
)

// runApp loads the catalog and progress record, builds dependencies, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	dataPath, err := resolveDataPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve data path: %w", err)
	}
	st := store.New(dataPath)

	rec, err := st.LoadOrInit()
	if err != nil {
		var invalid *progress.ErrInvalidRecord
		if errors.As(err, &invalid) {
			fmt.Fprintf(os.Stderr, "Progress file %s is unusable: %v\n", st.Path(), invalid.Err)
			fmt.Fprintln(os.Stderr, "Run 'qaport reset' to start over, or fix the file by hand.")
		}
		return fmt.Errorf("load progress: %w", err)
	}

	opts := app.Options{
		Catalog:   cat,
		Generator: slides.New(cat),
		Machine:   progress.NewMachine(cat, rec),
		Store:     st,
	}
	return app.Run(opts)
}
