package survey

import (
	"fmt"
	"strings"

	"anketa/internal/core"
	"anketa/pkg/schema"
)

// Processor validates, formats and prompts for one question type.
type Processor interface {
	Type() schema.QuestionType
	Validate(raw string, q schema.QuestionDefinition) schema.ValidationResult
	Format(raw string, q schema.QuestionDefinition) string
	Prompt(q schema.QuestionDefinition) string
}

// Registry dispatches question types to processors.
type Registry struct {
	processors map[schema.QuestionType]Processor
}

// NewRegistry creates a registry holding the given processors. A later processor
// replaces an earlier one of the same type.
func NewRegistry(processors ...Processor) *Registry {
	r := &Registry{processors: make(map[schema.QuestionType]Processor, len(processors))}
	for _, p := range processors {
		r.Register(p)
	}
	return r
}

// DefaultRegistry registers a processor for every built-in question type.
func DefaultRegistry(clock core.Clock, minAge, maxAge int) *Registry {
	return NewRegistry(
		TextProcessor{},
		NumberProcessor{},
		SelectProcessor{},
		PhoneProcessor{},
		&DateProcessor{Clock: clock, MinAge: minAge, MaxAge: maxAge},
	)
}

// Register adds or replaces the processor for p.Type().
func (r *Registry) Register(p Processor) {
	r.processors[p.Type()] = p
}

// Get returns the processor for t.
func (r *Registry) Get(t schema.QuestionType) (Processor, error) {
	p, ok := r.processors[t]
	if !ok {
		return nil, &core.ConfigurationError{
			Component: "processor",
			Message:   fmt.Sprintf("Обработчик для типа вопроса %s не найден", t),
		}
	}
	return p, nil
}

// promptWithHints appends a parenthetical list of constraints and a trailing colon.
func promptWithHints(prompt string, hints ...string) string {
	if len(hints) == 0 {
		return prompt + ":"
	}
	return fmt.Sprintf("%s (%s):", prompt, strings.Join(hints, ", "))
}
