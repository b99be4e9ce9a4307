package scoreboard

import (
	"github.com/google/uuid"
	"github.com/lefinal/scoreboard/errors"
	"math"
	"sort"
	"strings"
	"sync"
	"time"
)

// UpdateKind describes what happened to a Match in an Update.
type UpdateKind string

const (
	// UpdateKindStarted is used when a match was started.
	UpdateKindStarted UpdateKind = "started"
	// UpdateKindScoreUpdated is used when the score of a match changed.
	UpdateKindScoreUpdated UpdateKind = "score-updated"
	// UpdateKindFinished is used when a match was finished and removed.
	UpdateKindFinished UpdateKind = "finished"
)

// Update is published by the Registry after each successful mutation.
type Update struct {
	Kind UpdateKind
	// Match is the snapshot after the operation. For UpdateKindFinished it is the
	// removed one.
	Match Match
}

// Registry holds all matches in progress. It is safe for concurrent use.
type Registry struct {
	// matches holds all matches in progress by their key.
	matches map[MatchKey]Match
	// order holds the keys of matches in insertion order.
	order []MatchKey
	// nextStartOrder is the Match.StartOrder for the next started match.
	nextStartOrder uint64
	// m locks matches, order and nextStartOrder.
	m sync.RWMutex
	// updates is an optional channel that receives an Update for each successful
	// start, score update and finish.
	updates chan<- Update
	// now returns the current time. It is replaced in tests.
	now func() time.Time
}

// NewRegistry creates a new empty Registry. The passed update channel is
// optional. If set, it must be drained as sends happen while holding the lock.
// For the same reason, the receiver must not call any Registry method while
// handling an Update. Otherwise, it deadlocks on unbuffered or full channels.
func NewRegistry(updates chan<- Update) *Registry {
	return &Registry{
		matches:        make(map[MatchKey]Match),
		order:          make([]MatchKey, 0),
		nextStartOrder: 1,
		updates:        updates,
		now:            time.Now,
	}
}

// StartMatch starts a new match with score 0-0 for the given teams. If a match
// with the same home and away team is already in progress, an
// errors.ErrConflict error is returned.
func (r *Registry) StartMatch(homeTeam string, awayTeam string) (Match, error) {
	err := validateTeams(homeTeam, awayTeam)
	if err != nil {
		return Match{}, err
	}
	key := MatchKey{HomeTeam: homeTeam, AwayTeam: awayTeam}
	r.m.Lock()
	defer r.m.Unlock()
	if _, ok := r.matches[key]; ok {
		return Match{}, errors.NewMatchAlreadyExistsError(key.HomeTeam, key.AwayTeam)
	}
	match := Match{
		ID:         uuid.New(),
		HomeTeam:   homeTeam,
		AwayTeam:   awayTeam,
		StartOrder: r.nextStartOrder,
		StartedAt:  r.now(),
	}
	r.nextStartOrder++
	r.matches[key] = match
	r.order = append(r.order, key)
	r.publish(UpdateKindStarted, match)
	return match, nil
}

// UpdateScore sets the absolute scores for the match with the given teams.
func (r *Registry) UpdateScore(homeTeam string, awayTeam string, homeScore int, awayScore int) (Match, error) {
	err := validateTeams(homeTeam, awayTeam)
	if err != nil {
		return Match{}, err
	}
	err = validateScores(homeScore, awayScore)
	if err != nil {
		return Match{}, err
	}
	key := MatchKey{HomeTeam: homeTeam, AwayTeam: awayTeam}
	r.m.Lock()
	defer r.m.Unlock()
	match, ok := r.matches[key]
	if !ok {
		return Match{}, errors.NewMatchNotFoundError(key.HomeTeam, key.AwayTeam)
	}
	match = match.withScore(homeScore, awayScore)
	r.matches[key] = match
	r.publish(UpdateKindScoreUpdated, match)
	return match, nil
}

// FinishMatch removes the match with the given teams and returns its last
// state.
func (r *Registry) FinishMatch(homeTeam string, awayTeam string) (Match, error) {
	err := validateTeams(homeTeam, awayTeam)
	if err != nil {
		return Match{}, err
	}
	key := MatchKey{HomeTeam: homeTeam, AwayTeam: awayTeam}
	r.m.Lock()
	defer r.m.Unlock()
	match, ok := r.matches[key]
	if !ok {
		return Match{}, errors.NewMatchNotFoundError(key.HomeTeam, key.AwayTeam)
	}
	delete(r.matches, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.publish(UpdateKindFinished, match)
	return match, nil
}

// Match retrieves the match in progress with the given teams.
func (r *Registry) Match(homeTeam string, awayTeam string) (Match, error) {
	err := validateTeams(homeTeam, awayTeam)
	if err != nil {
		return Match{}, err
	}
	key := MatchKey{HomeTeam: homeTeam, AwayTeam: awayTeam}
	r.m.RLock()
	defer r.m.RUnlock()
	match, ok := r.matches[key]
	if !ok {
		return Match{}, errors.NewMatchNotFoundError(key.HomeTeam, key.AwayTeam)
	}
	return match, nil
}

// Len returns the number of matches in progress.
func (r *Registry) Len() int {
	r.m.RLock()
	defer r.m.RUnlock()
	return len(r.matches)
}

// Summary returns all matches in progress ordered by total score descending.
// Matches with the same total score are ordered by start, the most recently
// started first.
func (r *Registry) Summary() []Match {
	r.m.RLock()
	summary := make([]Match, 0, len(r.order))
	for _, key := range r.order {
		summary = append(summary, r.matches[key])
	}
	r.m.RUnlock()
	sort.SliceStable(summary, func(i, j int) bool {
		if summary[i].TotalScore() != summary[j].TotalScore() {
			return summary[i].TotalScore() > summary[j].TotalScore()
		}
		return summary[i].StartOrder > summary[j].StartOrder
	})
	return summary
}

// publish sends an Update if an update channel is set. Call it while holding
// the lock in order to keep updates in operation order.
func (r *Registry) publish(kind UpdateKind, match Match) {
	if r.updates == nil {
		return
	}
	r.updates <- Update{
		Kind:  kind,
		Match: match,
	}
}

// validateTeams assures that both team names are not blank and that they
// differ.
func validateTeams(homeTeam string, awayTeam string) error {
	if strings.TrimSpace(homeTeam) == "" {
		return errors.NewValidationError("home team must not be empty", errors.Details{"home_team": homeTeam})
	}
	if strings.TrimSpace(awayTeam) == "" {
		return errors.NewValidationError("away team must not be empty", errors.Details{"away_team": awayTeam})
	}
	if homeTeam == awayTeam {
		return errors.NewValidationError("team cannot play against itself", errors.Details{"team": homeTeam})
	}
	return nil
}

// validateScores assures that no score is negative and that the total score
// fits into an int. The home score is checked first.
func validateScores(homeScore int, awayScore int) error {
	if homeScore < 0 {
		return errors.NewValidationError("home score must not be negative", errors.Details{"home_score": homeScore})
	}
	if awayScore < 0 {
		return errors.NewValidationError("away score must not be negative", errors.Details{"away_score": awayScore})
	}
	if homeScore > math.MaxInt-awayScore {
		return errors.NewValidationError("total score exceeds maximum", errors.Details{
			"home_score": homeScore,
			"away_score": awayScore,
		})
	}
	return nil
}
