package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hartfield-tutoring/adviser-match/pkg/core/services"
)

// ExplainCmd creates the explain command
func ExplainCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <adviser_id> <learner_id>",
		Short: "Explain why a pair scored as it did",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ExplainPair(app.Cfg, app.Logger, args[0], args[1])
			if err != nil {
				return err
			}

			ex := result.Explanation

			fmt.Printf("\n🔍 %s ↔ %s\n\n", result.Adviser.ID, result.Learner.ID)
			fmt.Printf("Hard gates:\n")
			fmt.Printf("  %s Shared topic", mark(ex.TopicOK))
			if ex.TopicOK {
				fmt.Printf(" (%s, preference #%d)", ex.SharedTopic, ex.TopicRank+1)
			}
			fmt.Println()
			fmt.Printf("  %s Language", mark(ex.LanguageOK))
			if !ex.LanguageRequired {
				fmt.Printf(" (no requirement)")
			}
			fmt.Println()
			fmt.Printf("  %s Level eligibility (%s)\n", mark(ex.LevelOK), result.Learner.Level)
			fmt.Printf("  %s Schedule overlap (%.1f hours)\n", mark(ex.OverlapHours > 0), ex.OverlapHours)
			if !ex.Overlap.IsEmpty() {
				fmt.Printf("      %s\n", ex.Overlap)
			}
			fmt.Println()

			if !ex.Compatible {
				fmt.Printf("Result: ❌ not a candidate\n\n")
				return nil
			}

			fmt.Printf("Score components:\n")
			fmt.Printf("  Overlap base:   %.2f\n", ex.BaseBonus)
			fmt.Printf("  Two-hour bonus: %.2f\n", ex.TwoHourBonus)
			fmt.Printf("  Language bonus: %.2f\n", ex.LanguageBonus)
			fmt.Printf("  Topic bonus:    %.2f\n", ex.TopicBonus)
			fmt.Printf("\nResult: ✅ score %.2f\n\n", ex.Score)
			return nil
		},
	}
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
