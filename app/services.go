package app

import (
	"context"
	"fmt"
	"github.com/lefinal/scoreboard/console"
	"github.com/lefinal/scoreboard/debugstats"
	"github.com/lefinal/scoreboard/errors"
	"github.com/lefinal/scoreboard/scoreboard"
	"github.com/lefinal/scoreboard/scoreboardsvc"
	"github.com/lefinal/scoreboard/service"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"io"
	"time"
)

type services map[string]service.Service

// createServices creates all services. The console is the only caller of
// registry operations, so the update channel is closed once it stops.
func createServices(appConfig Config, logger *zap.Logger, registry *scoreboard.Registry,
	updates chan scoreboard.Update, in io.Reader, out io.Writer) (services, error) {
	services := make(services)
	// Debug stats service.
	s, err := debugstats.NewService(logger.Named("debug-stats"), debugstats.Config{
		IsEnabled: appConfig.SystemDebugStatsInterval.Valid,
		Interval:  time.Duration(appConfig.SystemDebugStatsInterval.Int) * time.Minute,
	}, registry)
	if err != nil {
		return nil, errors.Wrap(err, "new debug stats service", nil)
	}
	services["debug-stats"] = s
	// Match update logging.
	services["match-updates"] = scoreboardsvc.New(logger.Named("match-updates"), updates)
	// Console.
	services[consoleServiceName] = notifyOnStop(console.New(logger.Named("console"), registry, in, out), func() {
		close(updates)
	})
	return services, nil
}

// stopNotifyingService calls onStop when the wrapped service.Service stopped.
type stopNotifyingService struct {
	service.Service
	onStop func()
}

func notifyOnStop(s service.Service, onStop func()) service.Service {
	return &stopNotifyingService{
		Service: s,
		onStop:  onStop,
	}
}

func (s *stopNotifyingService) Run(ctx context.Context) error {
	defer s.onStop()
	return s.Service.Run(ctx)
}

// consoleServiceName is the name of the console service. When it stops, all
// other services are stopped as well.
const consoleServiceName = "console"

func (s services) run(ctx context.Context, logger *zap.Logger) error {
	wg, lifetime := errgroup.WithContext(ctx)
	lifetime, stopAll := context.WithCancel(lifetime)
	defer stopAll()
	// Run each.
	for name, serviceToRun := range s {
		// Copy values.
		name, serviceToRun := name, serviceToRun
		wg.Go(func() error {
			logger.Debug(fmt.Sprintf("service %s up", name))
			defer logger.Debug(fmt.Sprintf("service %s down", name))
			if name == consoleServiceName {
				defer stopAll()
			}
			if err := serviceToRun.Run(lifetime); err != nil {
				return errors.Wrap(err, "run service", errors.Details{"service_name": name})
			}
			return nil
		})
	}
	return wg.Wait()
}
