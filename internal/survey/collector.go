package survey

import (
	"fmt"
	"strconv"
	"strings"

	"anketa/internal/core"
	"anketa/pkg/schema"
)

// Progress summarizes how much of a survey has been answered.
type Progress struct {
	Answered       int
	Total          int
	AnsweredLabels []string
	MissingLabels  []string
}

// Collector accumulates raw answers for one survey definition. It tracks answers by
// question index only; the fill position belongs to the caller.
type Collector struct {
	def      *schema.SurveyDefinition
	registry *Registry
	clock    core.Clock
	answers  map[int]string
}

// NewCollector creates an empty collector for def.
func NewCollector(def *schema.SurveyDefinition, registry *Registry, clock core.Clock) *Collector {
	return &Collector{
		def:      def,
		registry: registry,
		clock:    clock,
		answers:  make(map[int]string, def.QuestionCount()),
	}
}

// Definition returns the survey definition being filled.
func (c *Collector) Definition() *schema.SurveyDefinition {
	return c.def
}

// SetAnswer validates raw for the question at index and stores it on success.
// A failed validation leaves the stored answers untouched.
func (c *Collector) SetAnswer(index int, raw string) (schema.ValidationResult, error) {
	q, p, err := c.resolve(index)
	if err != nil {
		return schema.ValidationResult{}, err
	}

	result := p.Validate(raw, q)
	if !result.Valid {
		return result, nil
	}
	c.answers[index] = raw
	return result, nil
}

// ValidateAnswer runs validation for the question at index without storing anything.
func (c *Collector) ValidateAnswer(index int, raw string) (schema.ValidationResult, error) {
	q, p, err := c.resolve(index)
	if err != nil {
		return schema.ValidationResult{}, err
	}
	return p.Validate(raw, q), nil
}

// Prompt returns the processor-built prompt for the question at index.
func (c *Collector) Prompt(index int) (string, error) {
	q, p, err := c.resolve(index)
	if err != nil {
		return "", err
	}
	return p.Prompt(q), nil
}

// QuestionCount returns the number of questions in the definition.
func (c *Collector) QuestionCount() int {
	return c.def.QuestionCount()
}

// CurrentAnswer returns the stored raw answer, or "" when none.
func (c *Collector) CurrentAnswer(index int) string {
	return c.answers[index]
}

// HasAnswer reports whether a non-blank answer is stored for index.
func (c *Collector) HasAnswer(index int) bool {
	return strings.TrimSpace(c.answers[index]) != ""
}

// Progress reports answered and missing questions in definition order.
func (c *Collector) Progress() Progress {
	p := Progress{Total: c.def.QuestionCount()}
	for _, q := range c.def.Questions {
		if c.HasAnswer(q.Index) {
			p.AnsweredLabels = append(p.AnsweredLabels, q.Prompt)
		} else {
			p.MissingLabels = append(p.MissingLabels, q.Prompt)
		}
	}
	p.Answered = len(p.AnsweredLabels)
	return p
}

// ValidateCompleteness fails when a required question has no non-blank answer.
func (c *Collector) ValidateCompleteness() schema.ValidationResult {
	missing := c.MissingRequired()
	if len(missing) == 0 {
		return schema.Success()
	}

	labels := make([]string, len(missing))
	for i, q := range missing {
		labels[i] = q.Prompt
	}
	return schema.Failure("Не заполнены обязательные поля: " + strings.Join(labels, ", "))
}

// MissingRequired returns the required questions still lacking an answer.
func (c *Collector) MissingRequired() []schema.QuestionDefinition {
	var missing []schema.QuestionDefinition
	for _, q := range c.def.Questions {
		if q.Required && !c.HasAnswer(q.Index) {
			missing = append(missing, q)
		}
	}
	return missing
}

// Build formats every non-blank answer in definition order into a new Survey stamped
// with the current time. Unanswered questions are left out, optional or not.
func (c *Collector) Build() (*schema.Survey, error) {
	answers := schema.NewAnswers()
	for _, q := range c.def.Questions {
		if !c.HasAnswer(q.Index) {
			continue
		}
		p, err := c.registry.Get(q.Type)
		if err != nil {
			return nil, err
		}
		answers.Set(q.Prompt, p.Format(c.answers[q.Index], q))
	}

	return &schema.Survey{
		Answers:   answers,
		CreatedAt: c.clock.Now(),
	}, nil
}

func (c *Collector) resolve(index int) (schema.QuestionDefinition, Processor, error) {
	q, ok := c.def.Question(index)
	if !ok {
		return q, nil, &core.NotFoundError{
			Resource: "question",
			Key:      strconv.Itoa(index),
			Message:  fmt.Sprintf("Вопрос с индексом %d не найден", index),
		}
	}
	p, err := c.registry.Get(q.Type)
	if err != nil {
		return q, nil, err
	}
	return q, p, nil
}
