package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hartfield-tutoring/adviser-match/pkg/ingest"
)

// ValidateRostersCmd creates the validateRosters command
func ValidateRostersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validateRosters",
		Short: "Check both roster files for data-quality problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			advisers, adviserWarnings, err := ingest.ReadAdvisers(app.Cfg.AdviserRoster)
			if err != nil {
				return fmt.Errorf("adviser roster: %w", err)
			}
			learners, learnerWarnings, err := ingest.ReadLearners(app.Cfg.LearnerRoster)
			if err != nil {
				return fmt.Errorf("learner roster: %w", err)
			}

			fmt.Printf("\n📋 Roster Validation\n\n")
			fmt.Printf("Advisers: %d loaded, %d warnings\n", len(advisers), len(adviserWarnings))
			fmt.Printf("Learners: %d loaded, %d warnings\n\n", len(learners), len(learnerWarnings))

			warnings := append(adviserWarnings, learnerWarnings...)
			if len(warnings) == 0 {
				fmt.Printf("✅ No data-quality problems found\n\n")
				return nil
			}

			for _, w := range warnings {
				fmt.Printf("  ⚠️  %s\n", w)
			}
			fmt.Println()
			return nil
		},
	}
}
