package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionState(t *testing.T) {
	state, err := NewSessionState("developer", 5)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(state.ID, "SES-"))
	assert.Equal(t, "developer", state.SurveyType)
	assert.Equal(t, 0, state.Current)
	assert.Equal(t, 5, state.Total)
	assert.False(t, state.Completed)
	assert.False(t, state.Done())
}

func TestSessionState_Navigation(t *testing.T) {
	state, err := NewSessionState("developer", 3)
	require.NoError(t, err)

	state.Prev()
	assert.Equal(t, 0, state.Current, "prev on first question stays put")

	state.Next()
	state.Next()
	assert.Equal(t, 2, state.Current)

	state.Prev()
	assert.Equal(t, 1, state.Current)

	assert.True(t, state.Goto(3))
	assert.Equal(t, 2, state.Current)

	assert.False(t, state.Goto(0))
	assert.False(t, state.Goto(4))
	assert.Equal(t, 2, state.Current)

	state.Next()
	assert.True(t, state.Done())
	state.Next()
	assert.Equal(t, 3, state.Current)

	state.Completed = true
	state.Restart()
	assert.Equal(t, 0, state.Current)
	assert.False(t, state.Completed)
}

func TestSessionState_Clone(t *testing.T) {
	state, err := NewSessionState("developer", 5)
	require.NoError(t, err)
	state.Current = 2

	clone := state.Clone()
	clone.Current = 4

	assert.Equal(t, state.ID, clone.ID)
	assert.Equal(t, 2, state.Current)
	assert.Equal(t, 4, clone.Current)
}

func TestParseNavigation(t *testing.T) {
	tests := []struct {
		input  string
		nav    Navigation
		number int
	}{
		{"-goto_question 3", NavGoto, 3},
		{"  -goto_question   12 ", NavGoto, 12},
		{"-goto_question", NavGoto, 0},
		{"-goto_question abc", NavGoto, 0},
		{"-goto_prev_question", NavPrev, 0},
		{"-restart_profile", NavRestart, 0},
		{"Python", NavNone, 0},
		{"", NavNone, 0},
		{"goto_question 3", NavNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			nav, number := ParseNavigation(tt.input)
			assert.Equal(t, tt.nav, nav)
			assert.Equal(t, tt.number, number)
		})
	}
}
