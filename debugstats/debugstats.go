package debugstats

import (
	"context"
	"fmt"
	"github.com/lefinal/scoreboard/errors"
	"github.com/lefinal/scoreboard/service"
	"go.uber.org/zap"
	"runtime"
	"time"
)

type Config struct {
	// IsEnabled describes whether periodic debug stats logging is desired.
	IsEnabled bool
	// Interval in which to log debug stats.
	Interval time.Duration
}

// MatchCounter provides the number of matches in progress.
type MatchCounter interface {
	Len() int
}

type debugStatsService struct {
	logger  *zap.Logger
	config  Config
	matches MatchCounter
}

// NewService creates a service.Service that logs system stats and the number
// of matches in progress in the configured interval.
func NewService(logger *zap.Logger, config Config, matches MatchCounter) (service.Service, error) {
	if config.IsEnabled && config.Interval <= 0 {
		return nil, errors.Error{
			Code:    errors.ErrBadRequest,
			Kind:    errors.KindInvalidConfig,
			Message: "debug stats interval must be positive",
			Details: errors.Details{"interval": config.Interval.String()},
		}
	}
	return &debugStatsService{
		logger:  logger,
		config:  config,
		matches: matches,
	}, nil
}

func (s *debugStatsService) Run(ctx context.Context) error {
	if !s.config.IsEnabled {
		return nil
	}
	s.logger.Debug(fmt.Sprintf("logging system state every %gs", s.config.Interval.Seconds()))
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.config.Interval):
			s.logger.Debug(formatDebugStats(readDebugStats(s.matches)))
		}
	}
}

// debugStats is a snapshot of the system state.
type debugStats struct {
	numCPU        int
	numGoroutine  int
	memoryUsageMB uint64
	matches       int
}

func readDebugStats(matches MatchCounter) debugStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	return debugStats{
		numCPU:        runtime.NumCPU(),
		numGoroutine:  runtime.NumGoroutine(),
		memoryUsageMB: memStats.Sys / 1000 / 1000,
		matches:       matches.Len(),
	}
}

func formatDebugStats(stats debugStats) string {
	return fmt.Sprintf(`
----------BEGIN OF DEBUG SYSTEM STATS-----------
           Num CPU: %d
    Num goroutines: %d
     Memory in use: %dMB
Matches in progress: %d
----------END OF DEBUG SYSTEM STATS-------------
`, stats.numCPU, stats.numGoroutine, stats.memoryUsageMB, stats.matches)
}
