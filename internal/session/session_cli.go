package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"anketa/internal/core"
	"anketa/internal/repository"
	"anketa/internal/survey"
	"anketa/internal/ui"
	"anketa/pkg/schema"
)

// ErrInputClosed is returned when input ends before the session finishes.
var ErrInputClosed = errors.New("input closed before the survey was finished")

// CLISession runs an interactive fill of one survey definition.
type CLISession struct {
	State     *SessionState
	Collector *survey.Collector
	Lock      *repository.FileLock
	Repo      *repository.Repository

	def      *schema.SurveyDefinition
	registry *survey.Registry
	clock    core.Clock
	logger   core.Logger
	in       *bufio.Scanner
	out      *ui.Console
}

// NewCLISession creates a session reading answers from in and writing prompts to out.
func NewCLISession(
	def *schema.SurveyDefinition,
	registry *survey.Registry,
	clock core.Clock,
	repo *repository.Repository,
	logger core.Logger,
	in io.Reader,
	out io.Writer,
) (*CLISession, error) {
	state, err := NewSessionState(def.SurveyType, def.QuestionCount())
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &CLISession{
		State:     state,
		Collector: survey.NewCollector(def, registry, clock),
		Lock:      repo.Lock(state.ID),
		Repo:      repo,
		def:       def,
		registry:  registry,
		clock:     clock,
		logger:    logger,
		in:        bufio.NewScanner(in),
		out:       ui.NewConsole(out),
	}, nil
}

// Run fills the survey, asks whether to save it and saves on confirmation. The
// returned survey has FileName set when it was saved.
func (s *CLISession) Run() (*schema.Survey, error) {
	if err := s.Repo.EnsureStorageExists(); err != nil {
		return nil, err
	}
	if err := s.Lock.Acquire(); err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer func() {
		if err := s.Lock.Release(); err != nil {
			s.logger.Warn("failed to release lock", "session_id", s.State.ID, "error", err)
		}
	}()

	s.logger.Info("survey session started", "session_id", s.State.ID, "survey_type", s.State.SurveyType)
	s.out.Heading(s.def.DisplayName)
	s.out.Hint(fmt.Sprintf("Навигация: %s <номер>, %s, %s", CmdGotoQuestion, CmdGotoPrevQuestion, CmdRestartProfile))

	if err := s.fill(); err != nil {
		return nil, err
	}

	result, err := s.Collector.Build()
	if err != nil {
		return nil, err
	}
	s.State.Completed = true
	s.out.Success("Анкета заполнена успешно!")

	save, err := s.Confirm("Сохранить анкету? (да/нет): ")
	if err != nil {
		return nil, err
	}
	if !save {
		s.out.Warn("Анкета не сохранена")
		return result, nil
	}

	fileName, err := s.Repo.Save(result)
	if err != nil {
		return nil, fmt.Errorf("save survey: %w", err)
	}
	s.State.Saved = true
	s.out.Success("Анкета сохранена в файл " + fileName)
	return result, nil
}

// fill loops over questions until every required one has an answer.
func (s *CLISession) fill() error {
	for {
		for !s.State.Done() {
			if err := s.ask(); err != nil {
				return err
			}
		}

		result := s.Collector.ValidateCompleteness()
		if result.Valid {
			return nil
		}
		s.out.Error(result.Message)
		if missing := s.Collector.MissingRequired(); len(missing) > 0 {
			s.State.Current = missing[0].Index
		}
	}
}

func (s *CLISession) ask() error {
	s.showProgress()

	index := s.State.Current
	prompt, err := s.Collector.Prompt(index)
	if err != nil {
		return err
	}
	s.out.Printf("%d. %s\n", index+1, prompt)
	if s.Collector.HasAnswer(index) {
		s.out.Hint(fmt.Sprintf("Текущий ответ: %s (Enter, чтобы оставить)", s.Collector.CurrentAnswer(index)))
	}

	line, err := s.readLine()
	if err != nil {
		return err
	}

	if nav, n := ParseNavigation(line); nav != NavNone {
		s.navigate(nav, n)
		return nil
	}

	if strings.TrimSpace(line) == "" && s.Collector.HasAnswer(index) {
		s.out.Success("Сохранен текущий ответ")
		s.State.Next()
		return nil
	}

	result, err := s.Collector.SetAnswer(index, line)
	if err != nil {
		return err
	}
	if !result.Valid {
		s.out.Error(result.Message)
		return nil
	}
	s.out.Success("Ответ сохранен")
	s.State.Next()
	return nil
}

func (s *CLISession) navigate(nav Navigation, number int) {
	switch nav {
	case NavPrev:
		s.State.Prev()
	case NavRestart:
		s.Collector = survey.NewCollector(s.def, s.registry, s.clock)
		s.State.Restart()
		s.out.Warn("Анкета начата заново")
	case NavGoto:
		if !s.State.Goto(number) {
			s.out.Error(fmt.Sprintf("Номер вопроса должен быть от 1 до %d", s.State.Total))
		}
	}
}

func (s *CLISession) showProgress() {
	p := s.Collector.Progress()
	s.out.Printf("\n📊 Прогресс: %d/%d полей заполнено\n", p.Answered, p.Total)
	if len(p.AnsweredLabels) > 0 {
		s.out.Success("Заполнено: " + strings.Join(p.AnsweredLabels, ", "))
	}
	if len(p.MissingLabels) > 0 {
		s.out.Warn("Требует заполнения: " + strings.Join(p.MissingLabels, ", "))
	}
}

// Confirm asks a yes/no question until it gets a recognizable answer.
func (s *CLISession) Confirm(question string) (bool, error) {
	for {
		s.out.Printf("%s", question)
		line, err := s.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes", "да", "д":
			return true, nil
		case "n", "no", "нет", "н":
			return false, nil
		}
		s.out.Error("Ответьте «да» или «нет»")
	}
}

func (s *CLISession) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return s.in.Text(), nil
}
