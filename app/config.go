package app

import (
	"encoding/json"
	"github.com/gobuffalo/nulls"
	"github.com/lefinal/scoreboard/errors"
	"github.com/lefinal/scoreboard/logging"
	"os"
)

// Config is the configuration needed in order to boot an App.
type Config struct {
	// Log is the configuration for logging.
	Log logging.Config `json:"log"`
	// SystemDebugStatsInterval is the optional interval in minutes for logging
	// system debug stats.
	SystemDebugStatsInterval nulls.Int `json:"system_debug_stats_interval"`
	// UpdateBufferSize is the buffer size of the channel match updates are
	// published to.
	UpdateBufferSize int `json:"update_buffer_size"`
}

// defaultUpdateBufferSize is used when no UpdateBufferSize is set.
const defaultUpdateBufferSize = 64

// DefaultConfig is used when no config file is provided.
func DefaultConfig() Config {
	return Config{
		UpdateBufferSize: defaultUpdateBufferSize,
	}
}

// LoadConfig reads the JSON config file at the given path. Unset fields keep
// the values from DefaultConfig.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Error{
			Code:    errors.ErrFatal,
			Err:     err,
			Message: "read config file",
			Details: errors.Details{"path": path},
		}
	}
	config := DefaultConfig()
	err = json.Unmarshal(raw, &config)
	if err != nil {
		return Config{}, errors.Error{
			Code:    errors.ErrBadRequest,
			Kind:    errors.KindDecodeJSON,
			Err:     err,
			Message: "parse config file",
			Details: errors.Details{"path": path},
		}
	}
	return config, nil
}

// ValidateConfig assures that the given Config is valid.
func ValidateConfig(config Config) error {
	if config.Log.MaxSize < 0 {
		return invalidConfigError("log max size must not be negative", errors.Details{"max_size": config.Log.MaxSize})
	}
	if config.Log.KeepDays < 0 {
		return invalidConfigError("log keep days must not be negative", errors.Details{"keep_days": config.Log.KeepDays})
	}
	if config.SystemDebugStatsInterval.Valid && config.SystemDebugStatsInterval.Int <= 0 {
		return invalidConfigError("system debug stats interval must be positive",
			errors.Details{"system_debug_stats_interval": config.SystemDebugStatsInterval.Int})
	}
	if config.UpdateBufferSize < 0 {
		return invalidConfigError("update buffer size must not be negative",
			errors.Details{"update_buffer_size": config.UpdateBufferSize})
	}
	return nil
}

func invalidConfigError(message string, details errors.Details) error {
	return errors.Error{
		Code:    errors.ErrBadRequest,
		Kind:    errors.KindInvalidConfig,
		Message: message,
		Details: details,
	}
}
