package cmd

import (
	"fmt"

	"github.com/abhisek/tably/internal/exercise"
	"github.com/abhisek/tably/internal/mastery"
	"github.com/abhisek/tably/internal/settings"
	"github.com/abhisek/tably/internal/store"
	"github.com/abhisek/tably/internal/ui/components"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-table mastery scores",
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

		svc, err := mastery.NewService(cmd.Context(), st)
		if err != nil {
			return fmt.Errorf("load mastery: %w", err)
		}

		printOp(svc, "Multiplication", exercise.OpMultiplication, settings.MinTable)
		fmt.Println()
		printOp(svc, "Division", exercise.OpDivision, 1)
		return nil
	},
}

func printOp(svc *mastery.Service, label string, op exercise.Operation, lo int) {
	fmt.Println(label)
	for t := lo; t <= settings.MaxTable; t++ {
		fmt.Printf("  %2d  %s\n", t, components.ScoreBar(svc.Score(op, t), mastery.MaxScore))
	}
}
