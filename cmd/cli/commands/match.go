package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hartfield-tutoring/adviser-match/pkg/core/services"
	"github.com/hartfield-tutoring/adviser-match/pkg/report"
)

// MatchCmd creates the match command
func MatchCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Pair learners with advisers",
		Long:  "Load both rosters, score every adviser/learner combination and run the selected assignment strategy",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, _ := cmd.Flags().GetString("strategy")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			app.Logger.Debug("match command",
				zap.String("strategy", strategy),
				zap.Bool("dry_run", dryRun))

			result, err := services.MatchPeople(app.Cfg, app.Logger, strategy)
			if err != nil {
				return fmt.Errorf("matching failed: %w", err)
			}

			fmt.Printf("\n🎯 Matching Results\n\n")
			fmt.Printf("Run ID:     %s\n", result.RunID)
			fmt.Printf("Strategy:   %s\n", result.Strategy)
			fmt.Printf("Advisers:   %d\n", result.AdviserCount)
			fmt.Printf("Learners:   %d\n", result.LearnerCount)
			fmt.Printf("Candidates: %d\n\n", result.CandidateCount)

			if len(result.Warnings) > 0 {
				fmt.Printf("⚠️  Roster Warnings (%d):\n", len(result.Warnings))
				for _, w := range result.Warnings {
					fmt.Printf("  • %s\n", w)
				}
				fmt.Println()
			}

			fmt.Println(report.Summary(result.Assignment, result.Loads, result.PrimaryOverlapHours))

			if dryRun {
				fmt.Printf("Mode: 🧪 DRY RUN (reports not written)\n")
				return nil
			}

			paths, err := report.WriteFiles(app.Cfg.ReportDir, result.RunID, result.Assignment)
			if err != nil {
				return fmt.Errorf("failed to write reports: %w", err)
			}
			fmt.Printf("Reports written:\n")
			for _, p := range paths {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	cmd.Flags().String("strategy", "", "Override the configured strategy (greedy or phased)")
	cmd.Flags().Bool("dry-run", false, "Run the matcher without writing report files")
	return cmd
}
