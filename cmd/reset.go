package cmd

import (
	"fmt"

	"github.com/abhisek/tably/internal/store"
	"github.com/spf13/cobra"
)

var resetSettings bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear mastery scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		if err := st.Delete(ctx, store.ScoresKey); err != nil {
			return fmt.Errorf("reset mastery: %w", err)
		}
		fmt.Println("Mastery scores cleared.")

		if resetSettings {
			if err := st.Delete(ctx, store.SettingsKey); err != nil {
				return fmt.Errorf("reset settings: %w", err)
			}
			fmt.Println("Settings cleared.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetSettings, "settings", false, "Also clear saved practice settings")
}
