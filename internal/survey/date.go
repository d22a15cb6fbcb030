package survey

import (
	"fmt"
	"strings"
	"time"

	"anketa/internal/core"
	"anketa/pkg/schema"
)

// DateProcessor handles birth dates in dd.MM.yyyy.
//
// A date is accepted when it lies in the window
// [today - MaxAge years, today - MinAge years], both ends inclusive.
type DateProcessor struct {
	Clock  core.Clock
	MinAge int
	MaxAge int
}

func (p *DateProcessor) Type() schema.QuestionType { return schema.QuestionDate }

func (p *DateProcessor) Validate(raw string, q schema.QuestionDefinition) schema.ValidationResult {
	value := strings.TrimSpace(raw)
	if value == "" {
		if q.Required {
			return schema.Failure("Дата не может быть пустой")
		}
		return schema.Success()
	}

	today := schema.DateOnly(p.Clock.Now())
	birth, err := time.ParseInLocation(schema.DateLayout, value, today.Location())
	if err != nil {
		return schema.Failure("Дата должна быть в формате " + schema.DateHint)
	}

	if birth.After(today) {
		return schema.Failure("Дата рождения не может быть в будущем")
	}
	if birth.Before(schema.YearsBefore(today, p.MaxAge)) {
		return schema.Failure(fmt.Sprintf("Дата рождения не может быть более %d лет назад", p.MaxAge))
	}
	if birth.After(schema.YearsBefore(today, p.MinAge)) {
		return schema.Failure(fmt.Sprintf("Возраст должен быть не менее %d лет", p.MinAge))
	}
	return schema.Success()
}

func (p *DateProcessor) Format(raw string, _ schema.QuestionDefinition) string {
	return strings.TrimSpace(raw)
}

func (p *DateProcessor) Prompt(q schema.QuestionDefinition) string {
	return promptWithHints(q.Prompt, "в формате "+schema.DateHint)
}
