package cli

import (
	"errors"

	"anketa/internal/stats"
	"anketa/pkg/schema"

	"github.com/spf13/cobra"
)

func newStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Показать статистику всех заполненных анкет",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := console(cmd)

			st, err := stats.NewService(a.repo, a.clock).Calculate()
			if errors.Is(err, stats.ErrNoRecords) {
				out.Warn(err.Error())
				return nil
			}
			if err != nil {
				return err
			}

			out.Heading("Статистика анкет")
			if st.HasAverageAge {
				out.Printf("1. Средний возраст всех опрошенных: %d %s\n", st.AverageAge, stats.AgeWord(st.AverageAge))
			} else {
				out.Println("1. Средний возраст всех опрошенных: нет данных")
			}

			language := "нет данных"
			if st.MostPopularLanguage != schema.LanguageUnknown {
				language = st.MostPopularLanguage.String()
			}
			out.Printf("2. Самый популярный язык программирования: %s\n", language)
			out.Printf("3. Самый опытный программист: %s\n", st.MostExperienced)
			return nil
		},
	}
}
