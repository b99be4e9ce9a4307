package scoreboard

import (
	"fmt"
	"github.com/google/uuid"
	"time"
)

// MatchKey identifies a tracked Match. It is the directed pair of home and away
// team, so (A, B) and (B, A) are different keys.
type MatchKey struct {
	HomeTeam string
	AwayTeam string
}

// Match is a snapshot of a match in progress. Matches are values: the Registry
// replaces its stored Match on score updates and hands out copies only.
type Match struct {
	// ID is assigned when the match starts. It is meant for referencing a match
	// in logs and output and not used as tracking key.
	ID uuid.UUID
	// HomeTeam is the name of the home team.
	HomeTeam string
	// AwayTeam is the name of the away team.
	AwayTeam string
	// HomeScore is the current score of the home team.
	HomeScore int
	// AwayScore is the current score of the away team.
	AwayScore int
	// StartOrder is the sequence number assigned when the match started. A
	// greater value means the match started later. It never changes.
	StartOrder uint64
	// StartedAt is the time the match started.
	StartedAt time.Time
}

// Key returns the MatchKey for the Match.
func (m Match) Key() MatchKey {
	return MatchKey{
		HomeTeam: m.HomeTeam,
		AwayTeam: m.AwayTeam,
	}
}

// TotalScore is the sum of home and away score.
func (m Match) TotalScore() int {
	return m.HomeScore + m.AwayScore
}

// withScore returns a copy of the Match with the given scores.
func (m Match) withScore(homeScore int, awayScore int) Match {
	m.HomeScore = homeScore
	m.AwayScore = awayScore
	return m
}

// String renders the match like "Mexico 0 - Canada 5".
func (m Match) String() string {
	return fmt.Sprintf("%s %d - %s %d", m.HomeTeam, m.HomeScore, m.AwayTeam, m.AwayScore)
}
