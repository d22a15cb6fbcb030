package session

import (
	"strconv"
	"strings"

	"anketa/pkg/schema"
)

// SessionState tracks the fill position of one interactive survey session.
type SessionState struct {
	ID         string
	SurveyType string
	Current    int // zero-based question index
	Total      int
	Completed  bool
	Saved      bool
}

// NewSessionState creates a session positioned on the first question.
func NewSessionState(surveyType string, total int) (*SessionState, error) {
	id, err := schema.NewSessionID()
	if err != nil {
		return nil, err
	}
	return &SessionState{
		ID:         id,
		SurveyType: surveyType,
		Total:      total,
	}, nil
}

// Done reports whether the position has moved past the last question.
func (s *SessionState) Done() bool {
	return s.Current >= s.Total
}

// Next advances to the following question.
func (s *SessionState) Next() {
	if s.Current < s.Total {
		s.Current++
	}
}

// Prev steps back one question; it stays put on the first one.
func (s *SessionState) Prev() {
	if s.Current > 0 {
		s.Current--
	}
}

// Goto jumps to a 1-based question number. Out-of-range numbers are ignored.
func (s *SessionState) Goto(number int) bool {
	if number < 1 || number > s.Total {
		return false
	}
	s.Current = number - 1
	return true
}

// Restart returns to the first question.
func (s *SessionState) Restart() {
	s.Current = 0
	s.Completed = false
	s.Saved = false
}

// Clone creates a copy of the session state.
func (s *SessionState) Clone() *SessionState {
	clone := *s
	return &clone
}

// Navigation is a fill-loop command typed in place of an answer.
type Navigation int

const (
	NavNone Navigation = iota
	NavGoto
	NavPrev
	NavRestart
)

// Navigation command words.
const (
	CmdGotoQuestion     = "-goto_question"
	CmdGotoPrevQuestion = "-goto_prev_question"
	CmdRestartProfile   = "-restart_profile"
)

// ParseNavigation recognizes a navigation command. For NavGoto the returned number is
// the 1-based target, or 0 when the argument is missing or not a number.
func ParseNavigation(input string) (Navigation, int) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return NavNone, 0
	}

	switch fields[0] {
	case CmdGotoPrevQuestion:
		return NavPrev, 0
	case CmdRestartProfile:
		return NavRestart, 0
	case CmdGotoQuestion:
		if len(fields) < 2 {
			return NavGoto, 0
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return NavGoto, 0
		}
		return NavGoto, n
	}
	return NavNone, 0
}
