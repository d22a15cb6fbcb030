package record

import (
	"testing"

	"anketa/pkg/schema"

	"github.com/stretchr/testify/assert"
)

func TestResolveLegacy(t *testing.T) {
	tests := []struct {
		name   string
		pairs  []string
		assert func(t *testing.T, s *schema.Survey)
	}{
		{
			name:  "experience from shorter alias",
			pairs: []string{"Опыт программирования", "7"},
			assert: func(t *testing.T, s *schema.Survey) {
				assert.Equal(t, 7, s.ExperienceYears)
			},
		},
		{
			name:  "unparsable primary falls through to next alias",
			pairs: []string{"Опыт работы (лет)", "много", "Experience", "3"},
			assert: func(t *testing.T, s *schema.Survey) {
				assert.Equal(t, 3, s.ExperienceYears)
			},
		},
		{
			name:  "fractional experience does not resolve",
			pairs: []string{"Опыт работы (лет)", "2.5"},
			assert: func(t *testing.T, s *schema.Survey) {
				assert.Equal(t, 0, s.ExperienceYears)
			},
		},
		{
			name:  "name priority",
			pairs: []string{"Name", "John Smith", "ФИО", "Иванов Иван"},
			assert: func(t *testing.T, s *schema.Survey) {
				assert.Equal(t, "Иванов Иван", s.FullName)
			},
		},
		{
			name:  "birth date must parse",
			pairs: []string{"Дата рождения", "1990-06-15", "Birthday", "15.06.1990"},
			assert: func(t *testing.T, s *schema.Survey) {
				assert.Equal(t, "15.06.1990", s.BirthDate.Format(schema.DateLayout))
			},
		},
		{
			name:  "unresolved birth date stays zero",
			pairs: []string{"Дата рождения", "давно"},
			assert: func(t *testing.T, s *schema.Survey) {
				assert.False(t, s.HasBirthDate())
			},
		},
		{
			name:  "language matched case-insensitively",
			pairs: []string{"Любимый язык программирования", "javascript"},
			assert: func(t *testing.T, s *schema.Survey) {
				assert.Equal(t, schema.LanguageJavaScript, s.Language)
			},
		},
		{
			name:  "unknown language stays unknown",
			pairs: []string{"Language", "Go"},
			assert: func(t *testing.T, s *schema.Survey) {
				assert.Equal(t, schema.LanguageUnknown, s.Language)
			},
		},
		{
			name:  "phone taken without re-validation",
			pairs: []string{"Мобильный телефон", "не скажу"},
			assert: func(t *testing.T, s *schema.Survey) {
				assert.Equal(t, "не скажу", s.PhoneNumber)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &schema.Survey{Answers: answersOf(tt.pairs...)}
			ResolveLegacy(s)
			tt.assert(t, s)
		})
	}
}

func TestResolveName(t *testing.T) {
	tests := []struct {
		name     string
		survey   *schema.Survey
		expected string
	}{
		{"from answers", &schema.Survey{Answers: answersOf("ФИО", "Иванов Иван")}, "Иванов Иван"},
		{"blank alias skipped", &schema.Survey{Answers: answersOf("ФИО", " ", "Имя", "Пётр")}, "Пётр"},
		{"falls back to legacy field", &schema.Survey{FullName: "Сидоров Сидор"}, "Сидоров Сидор"},
		{"unknown", &schema.Survey{Answers: answersOf("Опыт работы (лет)", "3")}, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveName(tt.survey))
		})
	}
}
