package record

import (
	"strconv"
	"strings"
	"time"

	"anketa/pkg/schema"
)

// Aliases lists, per legacy field, the answer labels probed in priority order.
type Aliases struct {
	FullName   []string
	BirthDate  []string
	Language   []string
	Experience []string
	Phone      []string
}

// LegacyAliases is the label table used to fill a Survey's scalar fields.
var LegacyAliases = Aliases{
	FullName:   []string{"ФИО", "Введите ваше имя", "Имя", "Name"},
	BirthDate:  []string{"Дата рождения", "Date of birth", "Birthday"},
	Language:   []string{"Язык программирования", "Любимый язык программирования", "Programming language", "Language"},
	Experience: []string{"Опыт работы (лет)", "Опыт программирования на указанном языке", "Опыт программирования", "Experience"},
	Phone:      []string{"Номер телефона", "Мобильный телефон"},
}

// Labels of the fixed five-field layout.
const (
	legacyNameLabel       = "ФИО"
	legacyBirthDateLabel  = "Дата рождения"
	legacyLanguageLabel   = "Любимый язык программирования"
	legacyExperienceLabel = "Опыт программирования на указанном языке"
	legacyPhoneLabel      = "Мобильный телефон"
)

// ResolveLegacy fills the scalar fields of s from its answers. For each field the
// first alias that is present and parses wins; fields without a match keep their
// zero value.
func ResolveLegacy(s *schema.Survey) {
	if v, ok := firstPresent(s.Answers, LegacyAliases.FullName); ok {
		s.FullName = v
	}
	if v, ok := firstParsed(s.Answers, LegacyAliases.BirthDate, parseDate); ok {
		s.BirthDate = v
	}
	if v, ok := firstParsed(s.Answers, LegacyAliases.Language, schema.ParseLanguage); ok {
		s.Language = v
	}
	if v, ok := firstParsed(s.Answers, LegacyAliases.Experience, parseInt); ok {
		s.ExperienceYears = v
	}
	if v, ok := firstPresent(s.Answers, LegacyAliases.Phone); ok {
		s.PhoneNumber = v
	}
}

// ResolveName returns the respondent name used for the file name: the first non-blank
// name alias, then the survey's FullName, then "Unknown".
func ResolveName(s *schema.Survey) string {
	for _, label := range LegacyAliases.FullName {
		if v, ok := s.Answers.Get(label); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	if strings.TrimSpace(s.FullName) != "" {
		return s.FullName
	}
	return schema.UnknownName
}

func firstPresent(answers *schema.Answers, labels []string) (string, bool) {
	for _, label := range labels {
		if v, ok := answers.Get(label); ok {
			return v, true
		}
	}
	return "", false
}

func firstParsed[T any](answers *schema.Answers, labels []string, parse func(string) (T, bool)) (T, bool) {
	for _, label := range labels {
		raw, ok := answers.Get(label)
		if !ok {
			continue
		}
		if v, ok := parse(raw); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func parseDate(raw string) (time.Time, bool) {
	t, err := time.ParseInLocation(schema.DateLayout, strings.TrimSpace(raw), time.Local)
	return t, err == nil
}

func parseInt(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	return n, err == nil
}

func legacyAnswers(s *schema.Survey) *schema.Answers {
	birth := ""
	if s.HasBirthDate() {
		birth = s.BirthDate.Format(schema.DateLayout)
	}

	a := schema.NewAnswers()
	a.Set(legacyNameLabel, s.FullName)
	a.Set(legacyBirthDateLabel, birth)
	a.Set(legacyLanguageLabel, s.Language.String())
	a.Set(legacyExperienceLabel, strconv.Itoa(s.ExperienceYears))
	a.Set(legacyPhoneLabel, s.PhoneNumber)
	return a
}
