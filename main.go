package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/lefinal/scoreboard/app"
	"github.com/lefinal/scoreboard/errors"
	"github.com/lefinal/scoreboard/logging"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	configPath := flag.String("config", "", "path to the JSON config file; defaults are used if not set")
	flag.Parse()
	config := app.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = app.LoadConfig(*configPath)
		if err != nil {
			_, _ = fmt.Fprint(os.Stderr, errors.Prettify(err))
			os.Exit(1)
		}
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	scoreboard := app.NewApp(config, logging.DefaultOutputs(), os.Stdin, os.Stdout)
	if err := scoreboard.Boot(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
