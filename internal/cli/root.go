// Package cli wires the anketa commands.
package cli

import (
	"fmt"

	"anketa/internal/core"
	"anketa/internal/repository"
	"anketa/internal/survey"
	"anketa/internal/ui"

	"github.com/spf13/cobra"
)

// app holds the dependencies shared by every subcommand, built once per invocation.
type app struct {
	clock    core.Clock
	cfg      *core.Config
	logger   core.Logger
	repo     *repository.Repository
	catalog  *survey.Catalog
	registry *survey.Registry
}

// NewRootCommand creates the anketa command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{clock: core.SystemClock{}})
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func newRootCommand(a *app) *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:   "anketa",
		Short: "Анкетирование разработчиков",
		Long: `anketa collects developer questionnaires, stores each one as a text file
and reports statistics over the stored answers.

During "anketa new" the following commands can be typed instead of an answer:
  -goto_question <N>    return to question N
  -goto_prev_question   return to the previous question
  -restart_profile      start the survey over`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(envFile)
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(
		newNewCommand(a),
		newListCommand(a),
		newListTodayCommand(a),
		newFindCommand(a),
		newDeleteCommand(a),
		newStatsCommand(a),
		newZipCommand(a),
		newTypesCommand(a),
	)
	return root
}

func (a *app) init(envFile string) error {
	cfg, err := core.LoadConfig(envFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.logger == nil {
		a.logger = core.NewLogger(cfg.LogLevel)
	}

	catalog, err := survey.NewCatalog()
	if err != nil {
		return fmt.Errorf("load survey catalog: %w", err)
	}
	if cfg.CatalogDir != "" {
		if err := catalog.LoadDir(cfg.CatalogDir); err != nil {
			return fmt.Errorf("load survey catalog: %w", err)
		}
	}
	a.catalog = catalog

	a.registry = survey.DefaultRegistry(a.clock, cfg.MinAge, cfg.MaxAge)
	a.repo = repository.NewRepository(cfg.SurveyDir,
		repository.WithClock(a.clock),
		repository.WithLogger(a.logger),
		repository.WithConcurrency(cfg.ReadConcurrency),
	)

	a.logger.Debug("configuration loaded", "survey_dir", cfg.SurveyDir, "survey_type", cfg.SurveyType)
	return nil
}

func console(cmd *cobra.Command) *ui.Console {
	return ui.NewConsole(cmd.OutOrStdout())
}
