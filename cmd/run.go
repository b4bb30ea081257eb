package cmd

import (
	"fmt"

	"github.com/abhisek/tably/internal/app"
	"github.com/abhisek/tably/internal/exercise"
	"github.com/abhisek/tably/internal/mastery"
	"github.com/abhisek/tably/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	masterySvc, err := mastery.NewService(cmd.Context(), st)
	if err != nil {
		return fmt.Errorf("load mastery: %w", err)
	}

	return app.Run(app.Options{
		KV:        st,
		Generator: exercise.New(),
		Mastery:   masterySvc,
	})
}
