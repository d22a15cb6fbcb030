package cli

import (
	"anketa/internal/session"

	"github.com/spf13/cobra"
)

func newNewCommand(a *app) *cobra.Command {
	var surveyType string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Заполнить новую анкету",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if surveyType == "" {
				surveyType = a.cfg.SurveyType
			}
			def, err := a.catalog.Lookup(surveyType)
			if err != nil {
				return err
			}

			s, err := session.NewCLISession(def, a.registry, a.clock, a.repo, a.logger, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = s.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&surveyType, "type", "t", "", "survey type (default from SURVEY_TYPE)")
	return cmd
}

func newTypesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "Показать доступные типы анкет",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := console(cmd)
			for _, t := range a.catalog.Types() {
				def, err := a.catalog.Lookup(t)
				if err != nil {
					return err
				}
				out.Printf("- %s: %s, вопросов: %d\n", def.SurveyType, def.DisplayName, def.QuestionCount())
			}
			return nil
		},
	}
}
