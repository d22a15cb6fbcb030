package schema

import (
	"fmt"
	"strings"
)

// ValidationResult is the outcome of checking one answer. Message is empty on success.
type ValidationResult struct {
	Valid   bool
	Message string
}

// Success returns a passing result.
func Success() ValidationResult {
	return ValidationResult{Valid: true}
}

// Failure returns a failing result carrying a user-facing message.
func Failure(message string) ValidationResult {
	return ValidationResult{Valid: false, Message: message}
}

// ValidateDefinition checks the structural invariants of a survey definition:
// contiguous indices starting at zero, unique non-blank prompts, known types and sane options.
func ValidateDefinition(d *SurveyDefinition) error {
	if strings.TrimSpace(d.SurveyType) == "" {
		return fmt.Errorf("survey type must not be blank")
	}
	if len(d.Questions) == 0 {
		return fmt.Errorf("survey %s has no questions", d.SurveyType)
	}

	prompts := make(map[string]bool, len(d.Questions))
	for i, q := range d.Questions {
		if q.Index != i {
			return fmt.Errorf("question %d: index must be %d", q.Index, i)
		}
		if strings.TrimSpace(q.Prompt) == "" {
			return fmt.Errorf("question %d: prompt must not be blank", i)
		}
		if prompts[q.Prompt] {
			return fmt.Errorf("question %d: duplicate prompt %q", i, q.Prompt)
		}
		prompts[q.Prompt] = true

		if !q.Type.Valid() {
			return fmt.Errorf("question %d: unknown type %q", i, q.Type)
		}
		if err := validateOptions(q); err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
	}
	return nil
}

func validateOptions(q QuestionDefinition) error {
	o := q.Options
	if o.MinLength != nil && *o.MinLength < 0 {
		return fmt.Errorf("min_length must not be negative")
	}
	if o.MinLength != nil && o.MaxLength != nil && *o.MinLength > *o.MaxLength {
		return fmt.Errorf("min_length %d exceeds max_length %d", *o.MinLength, *o.MaxLength)
	}
	if o.Min != nil && o.Max != nil && *o.Min > *o.Max {
		return fmt.Errorf("min %v exceeds max %v", *o.Min, *o.Max)
	}
	if q.Type == QuestionSelect && len(o.Values) == 0 {
		return fmt.Errorf("select question requires values")
	}
	return nil
}
