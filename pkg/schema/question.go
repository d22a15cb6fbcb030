package schema

import (
	"gopkg.in/yaml.v3"
)

// Options holds the per-question constraints a processor may consult.
// Nil pointers mean the bound is not set.
type Options struct {
	MinLength *int     `json:"min_length,omitempty" yaml:"min_length,omitempty"`
	MaxLength *int     `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Values    []string `json:"values,omitempty" yaml:"values,omitempty"`
}

// QuestionDefinition describes one question of a survey. The prompt doubles as the
// answer label in stored records.
type QuestionDefinition struct {
	Index    int          `json:"index" yaml:"index"`
	Prompt   string       `json:"prompt" yaml:"prompt"`
	Type     QuestionType `json:"type" yaml:"type"`
	Required bool         `json:"required" yaml:"required"`
	Options  Options      `json:"options" yaml:"options"`
}

// UnmarshalYAML decodes a question, treating an absent required flag as true.
func (q *QuestionDefinition) UnmarshalYAML(node *yaml.Node) error {
	type questionAlias struct {
		Index    int          `yaml:"index"`
		Prompt   string       `yaml:"prompt"`
		Type     QuestionType `yaml:"type"`
		Required *bool        `yaml:"required"`
		Options  Options      `yaml:"options"`
	}

	var temp questionAlias
	if err := node.Decode(&temp); err != nil {
		return err
	}

	q.Index = temp.Index
	q.Prompt = temp.Prompt
	q.Type = temp.Type
	q.Options = temp.Options
	q.Required = temp.Required == nil || *temp.Required

	return nil
}

// SurveyDefinition is an ordered list of questions identified by a survey type.
type SurveyDefinition struct {
	SurveyType  string               `json:"survey_type" yaml:"survey_type"`
	DisplayName string               `json:"display_name" yaml:"display_name"`
	Questions   []QuestionDefinition `json:"questions" yaml:"questions"`
}

// Question returns the question at index.
func (d *SurveyDefinition) Question(index int) (QuestionDefinition, bool) {
	if index < 0 || index >= len(d.Questions) {
		return QuestionDefinition{}, false
	}
	return d.Questions[index], true
}

// QuestionCount returns the number of questions.
func (d *SurveyDefinition) QuestionCount() int {
	return len(d.Questions)
}

// IntOption is a helper for building Options literals.
func IntOption(v int) *int {
	return &v
}

// FloatOption is a helper for building Options literals.
func FloatOption(v float64) *float64 {
	return &v
}
