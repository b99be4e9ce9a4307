package console

import (
	"github.com/lefinal/scoreboard/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    command
		wantErr bool
	}{
		{name: "empty", line: "   ", want: command{}},
		{name: "start", line: "start Mexico Canada", want: command{name: commandStart, homeTeam: "Mexico", awayTeam: "Canada"}},
		{name: "start upper case", line: "START Mexico Canada", want: command{name: commandStart, homeTeam: "Mexico", awayTeam: "Canada"}},
		{name: "start quoted", line: `start "Costa Rica" 'South Korea'`, want: command{name: commandStart, homeTeam: "Costa Rica", awayTeam: "South Korea"}},
		{name: "start missing away", line: "start Mexico", wantErr: true},
		{name: "start unterminated quote", line: `start "Costa Rica Peru`, wantErr: true},
		{name: "update", line: "update Mexico Canada 0 5", want: command{name: commandUpdate, homeTeam: "Mexico", awayTeam: "Canada", homeScore: 0, awayScore: 5}},
		{name: "update negative", line: "update Mexico Canada -1 5", want: command{name: commandUpdate, homeTeam: "Mexico", awayTeam: "Canada", homeScore: -1, awayScore: 5}},
		{name: "update bad home score", line: "update Mexico Canada x 5", wantErr: true},
		{name: "update bad away score", line: "update Mexico Canada 1 1.5", wantErr: true},
		{name: "update missing score", line: "update Mexico Canada 1", wantErr: true},
		{name: "finish", line: "finish Mexico Canada", want: command{name: commandFinish, homeTeam: "Mexico", awayTeam: "Canada"}},
		{name: "summary", line: "summary", want: command{name: commandSummary}},
		{name: "summary with args", line: "summary now", wantErr: true},
		{name: "help", line: "help", want: command{name: commandHelp}},
		{name: "quit", line: "quit", want: command{name: commandQuit}},
		{name: "exit", line: "exit", want: command{name: commandExit}},
		{name: "unknown", line: "kickoff Mexico Canada", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCommand(tt.line)
			if tt.wantErr {
				require.NotNil(t, err, "should fail")
				assert.True(t, errors.BlameUser(err), "should blame user but got: %s", errors.Prettify(err))
				return
			}
			require.Nilf(t, err, "should not fail but got: %s", errors.Prettify(err))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommandUnknownKind(t *testing.T) {
	_, err := parseCommand("kickoff")
	e, ok := errors.Cast(err)
	require.True(t, ok, "should be rich error")
	assert.Equal(t, errors.KindUnknownCommand, e.Kind)
}
