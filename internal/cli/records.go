package cli

import (
	"fmt"

	"anketa/internal/archive"
	"anketa/internal/core"
	"anketa/pkg/schema"

	"github.com/spf13/cobra"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Показать список файлов всех сохранённых анкет",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := a.repo.ListFileNames()
			if err != nil {
				return fmt.Errorf("ошибка при получении списка анкет: %w", err)
			}

			out := console(cmd)
			if len(names) == 0 {
				out.Println("Нет сохранённых анкет")
				return nil
			}
			out.Println("Список всех сохранённых анкет:")
			for _, name := range names {
				out.Printf("- %s\n", name)
			}
			return nil
		},
	}
}

func newListTodayCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list-today",
		Short: "Показать анкеты, созданные сегодня",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			surveys, err := a.repo.GetToday()
			if err != nil {
				return fmt.Errorf("ошибка при получении списка сегодняшних анкет: %w", err)
			}

			out := console(cmd)
			if len(surveys) == 0 {
				out.Println("Нет анкет, созданных сегодня")
				return nil
			}
			out.Println("Список анкет, созданных сегодня:")
			for _, s := range surveys {
				out.Printf("- %s\n", s.FileName)
			}
			return nil
		},
	}
}

func newFindCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find <file>",
		Short: "Найти анкету и показать её данные",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileName := args[0]
			s, err := a.repo.Find(fileName)
			if err != nil {
				return err
			}
			if s == nil {
				return recordNotFound(fileName)
			}

			out := console(cmd)
			out.Printf("Данные анкеты '%s':\n", fileName)
			n := 1
			for label, value := range s.Answers.All() {
				out.Printf("%d. %s: %s\n", n, label, value)
				n++
			}
			out.Printf("%s %s\n", schema.CompletedMarker, s.CreatedAt.Format(schema.DateLayout))
			return nil
		},
	}
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <file>",
		Short: "Удалить анкету",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileName := args[0]
			deleted, err := a.repo.Delete(fileName)
			if err != nil {
				return err
			}
			if !deleted {
				return recordNotFound(fileName)
			}
			console(cmd).Success(fmt.Sprintf("Анкета '%s' успешно удалена", fileName))
			return nil
		},
	}
}

func newZipCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "zip <file> <dest>",
		Short:   "Запаковать анкету в zip-архив",
		Example: "  anketa zip Иван.txt ./archives",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := archive.New(a.repo, a.logger).Create(args[0], args[1])
			if err != nil {
				return err
			}
			console(cmd).Success(fmt.Sprintf("Анкета '%s' успешно заархивирована: %s", args[0], path))
			return nil
		},
	}
}

func recordNotFound(fileName string) error {
	return &core.NotFoundError{
		Resource: "record",
		Key:      fileName,
		Message:  fmt.Sprintf("Анкета с именем файла '%s' не найдена", fileName),
	}
}
