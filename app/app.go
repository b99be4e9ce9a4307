package app

import (
	"context"
	"github.com/lefinal/scoreboard/errors"
	"github.com/lefinal/scoreboard/logging"
	"github.com/lefinal/scoreboard/scoreboard"
	"go.uber.org/zap"
	"io"
)

// App is a complete scoreboard instance with a console on the given input and
// output.
type App struct {
	// config is the main config used for the App.
	config Config
	// logOutputs are where the logger writes to.
	logOutputs logging.Outputs
	// in is where console commands are read from.
	in io.Reader
	// out is where console output is written to.
	out io.Writer
}

// NewApp creates a new App. Commands are read from in and results are written
// to out.
func NewApp(config Config, logOutputs logging.Outputs, in io.Reader, out io.Writer) *App {
	return &App{
		config:     config,
		logOutputs: logOutputs,
		in:         in,
		out:        out,
	}
}

// Boot sets everything up based on the set config and runs until the console
// stops or the given context.Context is done.
func (app *App) Boot(ctx context.Context) error {
	// Validate config.
	err := ValidateConfig(app.config)
	if err != nil {
		return errors.Wrap(err, "invalid config", nil)
	}
	// Setup logger.
	logger := logging.NewLogger(app.config.Log, app.logOutputs)
	defer func(loggerToSync *zap.Logger) {
		_ = loggerToSync.Sync()
	}(logger)
	// Boot.
	err = app.boot(ctx, logger)
	if err != nil {
		err = errors.Wrap(err, "boot", nil)
		errors.Log(logger, err)
		return err
	}
	return nil
}

func (app *App) boot(ctx context.Context, logger *zap.Logger) error {
	logger.Debug("booting up")
	updates := make(chan scoreboard.Update, app.config.UpdateBufferSize)
	registry := scoreboard.NewRegistry(updates)
	services, err := createServices(app.config, logger, registry, updates, app.in, app.out)
	if err != nil {
		return errors.Wrap(err, "create services", nil)
	}
	logger.Debug("completed setup. running services...")
	err = services.run(ctx, logger)
	if err != nil {
		return errors.Wrap(err, "run services", nil)
	}
	logger.Debug("shut down")
	return nil
}
