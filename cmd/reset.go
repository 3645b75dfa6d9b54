package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qaport/qaport/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the progress file and start over",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataPath, err := resolveDataPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve data path: %w", err)
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("Delete all progress at %s? [y/N] ", dataPath)
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() {
				return nil
			}
			answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
			if answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := store.New(dataPath).Reset(); err != nil {
			return err
		}
		fmt.Println("Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
