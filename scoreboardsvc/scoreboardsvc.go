package scoreboardsvc

import (
	"context"
	"github.com/lefinal/scoreboard/scoreboard"
	"github.com/lefinal/scoreboard/service"
	"go.uber.org/zap"
)

// updateLogService logs each scoreboard.Update it receives.
type updateLogService struct {
	logger  *zap.Logger
	updates <-chan scoreboard.Update
}

// New creates a service.Service that reads from the given update channel until
// it is closed. The context is ignored as the registry blocks on publishing
// until the update is read.
func New(logger *zap.Logger, updates <-chan scoreboard.Update) service.Service {
	return &updateLogService{
		logger:  logger,
		updates: updates,
	}
}

func (s *updateLogService) Run(_ context.Context) error {
	for update := range s.updates {
		s.logUpdate(update)
	}
	return nil
}

func (s *updateLogService) logUpdate(update scoreboard.Update) {
	s.logger.Info("match "+string(update.Kind),
		zap.String("match_id", update.Match.ID.String()),
		zap.String("home_team", update.Match.HomeTeam),
		zap.String("away_team", update.Match.AwayTeam),
		zap.Int("home_score", update.Match.HomeScore),
		zap.Int("away_score", update.Match.AwayScore))
}
