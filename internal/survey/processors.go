package survey

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"anketa/pkg/schema"
)

// TextProcessor handles free text with optional length bounds counted in characters.
type TextProcessor struct{}

func (TextProcessor) Type() schema.QuestionType { return schema.QuestionText }

func (TextProcessor) Validate(raw string, q schema.QuestionDefinition) schema.ValidationResult {
	value := strings.TrimSpace(raw)
	if value == "" && q.Required {
		return schema.Failure("Поле не может быть пустым")
	}
	if strings.ContainsFunc(value, unicode.IsControl) {
		return schema.Failure("Ответ не должен содержать переводов строки и управляющих символов")
	}

	// Bounds apply to a blank optional answer too.
	n := utf8.RuneCountInString(value)
	if lo := q.Options.MinLength; lo != nil && n < *lo {
		return schema.Failure(fmt.Sprintf("Минимальная длина: %d символов", *lo))
	}
	if hi := q.Options.MaxLength; hi != nil && n > *hi {
		return schema.Failure(fmt.Sprintf("Максимальная длина: %d символов", *hi))
	}
	return schema.Success()
}

func (TextProcessor) Format(raw string, _ schema.QuestionDefinition) string {
	return strings.TrimSpace(raw)
}

func (TextProcessor) Prompt(q schema.QuestionDefinition) string {
	var hints []string
	if lo := q.Options.MinLength; lo != nil {
		hints = append(hints, fmt.Sprintf("мин. %d символов", *lo))
	}
	if hi := q.Options.MaxLength; hi != nil {
		hints = append(hints, fmt.Sprintf("макс. %d символов", *hi))
	}
	return promptWithHints(q.Prompt, hints...)
}

// NumberProcessor handles decimal numbers with optional inclusive bounds.
type NumberProcessor struct{}

func (NumberProcessor) Type() schema.QuestionType { return schema.QuestionNumber }

func (NumberProcessor) Validate(raw string, q schema.QuestionDefinition) schema.ValidationResult {
	value := strings.TrimSpace(raw)
	if value == "" {
		if q.Required {
			return schema.Failure("Число не может быть пустым")
		}
		return schema.Success()
	}

	n, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return schema.Failure("Введите корректное число")
	}
	if lo := q.Options.Min; lo != nil && n < *lo {
		return schema.Failure(fmt.Sprintf("Минимальное значение: %s", formatNumber(*lo)))
	}
	if hi := q.Options.Max; hi != nil && n > *hi {
		return schema.Failure(fmt.Sprintf("Максимальное значение: %s", formatNumber(*hi)))
	}
	return schema.Success()
}

func (NumberProcessor) Format(raw string, _ schema.QuestionDefinition) string {
	return strings.TrimSpace(raw)
}

func (NumberProcessor) Prompt(q schema.QuestionDefinition) string {
	var hints []string
	if lo := q.Options.Min; lo != nil {
		hints = append(hints, "мин. "+formatNumber(*lo))
	}
	if hi := q.Options.Max; hi != nil {
		hints = append(hints, "макс. "+formatNumber(*hi))
	}
	return promptWithHints(q.Prompt, hints...)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SelectProcessor accepts exactly one of the configured values, case-sensitively and
// without trimming.
type SelectProcessor struct{}

func (SelectProcessor) Type() schema.QuestionType { return schema.QuestionSelect }

func (SelectProcessor) Validate(raw string, q schema.QuestionDefinition) schema.ValidationResult {
	if q.Required && strings.TrimSpace(raw) == "" {
		return schema.Failure("Выберите один из вариантов")
	}

	// Membership is checked on the raw input: " C# " is not a member.
	if len(q.Options.Values) > 0 && !slices.Contains(q.Options.Values, raw) {
		return schema.Failure("Недопустимое значение. Доступные варианты: " + strings.Join(q.Options.Values, ", "))
	}
	return schema.Success()
}

func (SelectProcessor) Format(raw string, _ schema.QuestionDefinition) string {
	return strings.TrimSpace(raw)
}

func (SelectProcessor) Prompt(q schema.QuestionDefinition) string {
	if len(q.Options.Values) == 0 {
		return promptWithHints(q.Prompt)
	}
	return promptWithHints(q.Prompt, strings.Join(q.Options.Values, "/"))
}

// +7 or 8, then 3-3-2-2 digit groups with optional space/dash separators and
// optional parentheses around the area code.
var phonePattern = regexp.MustCompile(`^(\+7|8)[\s\-]?\(?\d{3}\)?[\s\-]?\d{3}[\s\-]?\d{2}[\s\-]?\d{2}$`)

// PhoneProcessor handles Russian mobile numbers.
type PhoneProcessor struct{}

func (PhoneProcessor) Type() schema.QuestionType { return schema.QuestionPhone }

func (PhoneProcessor) Validate(raw string, q schema.QuestionDefinition) schema.ValidationResult {
	value := strings.TrimSpace(raw)
	if value == "" {
		if q.Required {
			return schema.Failure("Номер телефона не может быть пустым")
		}
		return schema.Success()
	}

	if !phonePattern.MatchString(value) {
		return schema.Failure("Некорректный формат номера телефона. Используйте формат: +7(999)999-99-99 или 8-999-999-99-99")
	}
	return schema.Success()
}

func (PhoneProcessor) Format(raw string, _ schema.QuestionDefinition) string {
	return strings.TrimSpace(raw)
}

func (PhoneProcessor) Prompt(q schema.QuestionDefinition) string {
	return promptWithHints(q.Prompt, "например: +7(999)999-99-99")
}
