package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/qaport/qaport/internal/catalog"
	"github.com/qaport/qaport/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "qaport",
	Short: "Terminal learning portal for AI-assisted QA",
	Long:  "QAPort — terminal learning portal that teaches QA professionals to work with AI through slide decks, hands-on projects, and assessments.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// A .env in the working directory may supply QAPORT_DATA and friends.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Path to progress file (overrides QAPORT_DATA env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to a module config JSON (defaults to the built-in catalog)")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDataPath returns the progress file path using --data (highest
// priority), then QAPORT_DATA, then the default XDG path.
func resolveDataPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p, nil
	}
	return store.DefaultPath()
}

// loadCatalog loads the catalog from --config when given, otherwise the
// embedded default.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return catalog.LoadFile(p)
	}
	return catalog.LoadDefault()
}
