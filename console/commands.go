package console

import (
	"fmt"
	"github.com/kballard/go-shellquote"
	"github.com/lefinal/scoreboard/errors"
	"strconv"
	"strings"
)

// commandName is the first word of a console line.
type commandName string

const (
	commandStart   commandName = "start"
	commandUpdate  commandName = "update"
	commandFinish  commandName = "finish"
	commandSummary commandName = "summary"
	commandHelp    commandName = "help"
	commandQuit    commandName = "quit"
	commandExit    commandName = "exit"
)

// usage is printed for commandHelp.
const usage = `commands:
  start <home> <away>                      start a match with score 0-0
  update <home> <away> <home score> <away score>  set the score of a match
  finish <home> <away>                     finish a match
  summary                                  list matches in progress
  help                                     show this help
  quit                                     leave
team names containing spaces must be quoted, e.g. start "Costa Rica" Peru`

// command is a parsed console line.
type command struct {
	name      commandName
	homeTeam  string
	awayTeam  string
	homeScore int
	awayScore int
}

// parseCommand parses the given line. Empty lines result in an empty command
// name.
func parseCommand(line string) (command, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return command{}, errors.Error{
			Code:    errors.ErrBadRequest,
			Kind:    errors.KindValidation,
			Err:     err,
			Message: "split command line",
			Details: errors.Details{"line": line},
		}
	}
	if len(words) == 0 {
		return command{}, nil
	}
	cmd := command{name: commandName(strings.ToLower(words[0]))}
	args := words[1:]
	switch cmd.name {
	case commandStart, commandFinish:
		if err := assureArgCount(cmd.name, args, 2); err != nil {
			return command{}, err
		}
		cmd.homeTeam, cmd.awayTeam = args[0], args[1]
	case commandUpdate:
		if err := assureArgCount(cmd.name, args, 4); err != nil {
			return command{}, err
		}
		cmd.homeTeam, cmd.awayTeam = args[0], args[1]
		if cmd.homeScore, err = parseScore("home score", args[2]); err != nil {
			return command{}, err
		}
		if cmd.awayScore, err = parseScore("away score", args[3]); err != nil {
			return command{}, err
		}
	case commandSummary, commandHelp, commandQuit, commandExit:
		if err := assureArgCount(cmd.name, args, 0); err != nil {
			return command{}, err
		}
	default:
		return command{}, errors.Error{
			Code:    errors.ErrBadRequest,
			Kind:    errors.KindUnknownCommand,
			Message: fmt.Sprintf("unknown command %q, type help for a list of commands", words[0]),
			Details: errors.Details{"command": words[0]},
		}
	}
	return cmd, nil
}

func assureArgCount(name commandName, args []string, expected int) error {
	if len(args) == expected {
		return nil
	}
	return errors.NewValidationError(fmt.Sprintf("%s expects %d arguments but got %d", name, expected, len(args)),
		errors.Details{
			"command":  name,
			"expected": expected,
			"got":      len(args),
		})
}

// parseScore parses the given score. Negative values are left to the
// scoreboard validation.
func parseScore(field string, raw string) (int, error) {
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Error{
			Code:    errors.ErrBadRequest,
			Kind:    errors.KindValidation,
			Err:     err,
			Message: fmt.Sprintf("%s must be an integer", field),
			Details: errors.Details{field: raw},
		}
	}
	return score, nil
}
