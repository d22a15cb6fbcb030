package stats

import (
	"errors"
	"fmt"
	"math"
	"time"

	"anketa/internal/core"
	"anketa/pkg/schema"
)

// ErrNoRecords is returned when there is nothing to aggregate.
var ErrNoRecords = errors.New("Нет заполненных анкет для расчета статистики")

// Statistics aggregates all stored surveys.
type Statistics struct {
	Respondents int

	// AverageAge is rounded half to even. HasAverageAge is false when no record
	// carries a birth date.
	AverageAge    int
	HasAverageAge bool

	// MostPopularLanguage is LanguageUnknown when no record names a known language.
	MostPopularLanguage schema.Language

	MostExperienced string
	MaxExperience   int
}

// Source supplies the surveys to aggregate.
type Source interface {
	GetAll() ([]*schema.Survey, error)
}

// Service computes statistics over a Source.
type Service struct {
	source Source
	clock  core.Clock
}

// NewService creates a statistics service.
func NewService(source Source, clock core.Clock) *Service {
	return &Service{source: source, clock: clock}
}

// Calculate loads every survey and aggregates it.
func (s *Service) Calculate() (*Statistics, error) {
	surveys, err := s.source.GetAll()
	if err != nil {
		return nil, fmt.Errorf("load surveys: %w", err)
	}
	return Calculate(surveys, s.clock.Now())
}

// Calculate aggregates surveys with ages measured at now. Ties for the most popular
// language go to the language seen first; ties for experience go to the first survey.
func Calculate(surveys []*schema.Survey, now time.Time) (*Statistics, error) {
	if len(surveys) == 0 {
		return nil, ErrNoRecords
	}

	st := &Statistics{Respondents: len(surveys), MaxExperience: -1}

	ageSum, aged := 0, 0
	counts := make(map[schema.Language]int)
	var order []schema.Language

	for _, s := range surveys {
		if s.HasBirthDate() {
			ageSum += s.Age(now)
			aged++
		}

		if s.Language != schema.LanguageUnknown {
			if counts[s.Language] == 0 {
				order = append(order, s.Language)
			}
			counts[s.Language]++
		}

		if s.ExperienceYears > st.MaxExperience {
			st.MaxExperience = s.ExperienceYears
			st.MostExperienced = s.FullName
		}
	}

	if aged > 0 {
		st.AverageAge = int(math.RoundToEven(float64(ageSum) / float64(aged)))
		st.HasAverageAge = true
	}

	best := 0
	for _, lang := range order {
		if counts[lang] > best {
			best = counts[lang]
			st.MostPopularLanguage = lang
		}
	}

	return st, nil
}

// AgeWord returns the Russian noun for "years" agreeing with n.
func AgeWord(n int) string {
	if n < 0 {
		n = -n
	}
	switch {
	case n%10 == 1 && n%100 != 11:
		return "год"
	case n%10 >= 2 && n%10 <= 4 && (n%100 < 10 || n%100 >= 20):
		return "года"
	default:
		return "лет"
	}
}
