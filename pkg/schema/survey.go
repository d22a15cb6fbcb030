package schema

import "time"

// Survey is one completed questionnaire.
//
// Answers is authoritative. The scalar fields are derived from it when a record is
// read (see the record package) and exist for consumers written against the older
// fixed five-question format. Derivation never reverses: setting a scalar field does
// not add an answer.
type Survey struct {
	Answers   *Answers
	CreatedAt time.Time

	FullName        string
	BirthDate       time.Time // zero when unresolved
	Language        Language  // LanguageUnknown when unresolved
	ExperienceYears int
	PhoneNumber     string

	// FileName is the record file the survey was read from or saved to.
	FileName string
}

// HasBirthDate reports whether the birth date was resolved.
func (s *Survey) HasBirthDate() bool {
	return !s.BirthDate.IsZero()
}

// Age returns the respondent's age in full years at now, or 0 without a birth date.
func (s *Survey) Age(now time.Time) int {
	if !s.HasBirthDate() {
		return 0
	}
	return AgeAt(s.BirthDate, now)
}

// AgeAt returns the number of full years between birth and ref. The year difference
// is decremented when the birthday has not yet occurred in ref's year.
func AgeAt(birth, ref time.Time) int {
	age := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}
	return age
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// YearsBefore returns the calendar date n years before t. February 29 maps to
// February 28 when the target year is not a leap year.
func YearsBefore(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	target := y - n
	if m == time.February && d == 29 && !isLeap(target) {
		d = 28
	}
	return time.Date(target, m, d, 0, 0, 0, 0, t.Location())
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
