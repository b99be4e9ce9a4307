package console

import (
	"bufio"
	"context"
	"fmt"
	"github.com/lefinal/scoreboard/errors"
	"github.com/lefinal/scoreboard/scoreboard"
	"github.com/lefinal/scoreboard/service"
	"go.uber.org/zap"
	"io"
	"strings"
)

// prompt is written before reading each line.
const prompt = "> "

// Registry are the scoreboard operations needed by the console.
type Registry interface {
	StartMatch(homeTeam string, awayTeam string) (scoreboard.Match, error)
	UpdateScore(homeTeam string, awayTeam string, homeScore int, awayScore int) (scoreboard.Match, error)
	FinishMatch(homeTeam string, awayTeam string) (scoreboard.Match, error)
	Summary() []scoreboard.Match
}

// console reads commands line by line and applies them to the Registry.
type console struct {
	logger   *zap.Logger
	registry Registry
	in       io.Reader
	out      io.Writer
}

// New creates a console service.Service. It stops when the input reaches EOF,
// on quit or when the context is done.
func New(logger *zap.Logger, registry Registry, in io.Reader, out io.Writer) service.Service {
	return &console{
		logger:   logger,
		registry: registry,
		in:       in,
		out:      out,
	}
}

func (c *console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case <-ctx.Done():
				return
			case lines <- scanner.Text():
			}
		}
		readErr <- scanner.Err()
	}()
	c.write(prompt)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, more := <-lines:
			if !more {
				select {
				case err := <-readErr:
					if err != nil {
						return errors.NewInternalErrorFromErr(err, "read input", nil)
					}
				default:
				}
				return nil
			}
			output, quit := c.execute(line)
			if output != "" {
				c.write(output + "\n")
			}
			if quit {
				return nil
			}
			c.write(prompt)
		}
	}
}

// execute runs the given line and returns the output. The second return value
// is true when the console should stop.
func (c *console) execute(line string) (string, bool) {
	cmd, err := parseCommand(line)
	if err != nil {
		return c.handleErr(err), false
	}
	switch cmd.name {
	case "":
		return "", false
	case commandStart:
		m, err := c.registry.StartMatch(cmd.homeTeam, cmd.awayTeam)
		if err != nil {
			return c.handleErr(errors.Wrap(err, "start match", nil)), false
		}
		return fmt.Sprintf("started %s", m), false
	case commandUpdate:
		m, err := c.registry.UpdateScore(cmd.homeTeam, cmd.awayTeam, cmd.homeScore, cmd.awayScore)
		if err != nil {
			return c.handleErr(errors.Wrap(err, "update score", nil)), false
		}
		return fmt.Sprintf("updated %s", m), false
	case commandFinish:
		m, err := c.registry.FinishMatch(cmd.homeTeam, cmd.awayTeam)
		if err != nil {
			return c.handleErr(errors.Wrap(err, "finish match", nil)), false
		}
		return fmt.Sprintf("finished %s", m), false
	case commandSummary:
		return formatSummary(c.registry.Summary()), false
	case commandHelp:
		return usage, false
	case commandQuit, commandExit:
		return "bye", true
	}
	return c.handleErr(errors.Error{
		Code:    errors.ErrInternal,
		Message: fmt.Sprintf("unhandled command %q", cmd.name),
	}), false
}

// handleErr logs the given error and returns the text to print for it. Errors
// caused by input are only logged in debug level as they are already printed.
func (c *console) handleErr(err error) string {
	if errors.BlameUser(err) {
		c.logger.Debug("command failed", zap.Error(err))
	} else {
		errors.Log(c.logger, err)
	}
	return fmt.Sprintf("error: %s", err.Error())
}

func (c *console) write(s string) {
	if _, err := io.WriteString(c.out, s); err != nil {
		c.logger.Debug("write output", zap.Error(err))
	}
}

// formatSummary renders the given matches as numbered list.
func formatSummary(matches []scoreboard.Match) string {
	if len(matches) == 0 {
		return "no matches in progress"
	}
	var b strings.Builder
	for i, m := range matches {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%d. %s", i+1, m))
	}
	return b.String()
}
