package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hartfield-tutoring/adviser-match/cmd/cli/commands"
	"github.com/hartfield-tutoring/adviser-match/internal/config"
	"github.com/hartfield-tutoring/adviser-match/pkg/utils/logging"
)

var (
	cfgPath string
	app     = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "matcher",
		Short: "Adviser Match CLI - Pair learners with advisers",
		Long:  `A CLI tool for pairing learners with advisers based on weekly availability, language compatibility, level eligibility and topic preferences.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to config file (default: adviser_match.yaml in current or home directory)")

	rootCmd.AddCommand(commands.MatchCmd(app))
	rootCmd.AddCommand(commands.ExplainCmd(app))
	rootCmd.AddCommand(commands.ValidateRostersCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger and loads configuration
func initApp() error {
	var err error

	app.Logger, err = logging.InitLogger("matcher")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if cfgPath != "" {
		app.Cfg, err = config.LoadFromPath(cfgPath)
	} else {
		app.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app.Logger.Debug("configuration loaded",
		zap.String("adviser_roster", app.Cfg.AdviserRoster),
		zap.String("learner_roster", app.Cfg.LearnerRoster),
		zap.String("strategy", app.Cfg.Strategy))

	return nil
}
