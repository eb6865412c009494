// Package config reads runtime settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeongen/internal/generator"
)

// Environment variable names.
const (
	EnvSeed       = "DUNGEONGEN_SEED"
	EnvDifficulty = "DUNGEONGEN_DIFFICULTY"
	EnvRooms      = "DUNGEONGEN_ROOMS"
	EnvMainPath   = "DUNGEONGEN_MAIN_PATH"
	EnvBranching  = "DUNGEONGEN_BRANCHING"
	EnvThemes     = "DUNGEONGEN_THEMES"
	EnvTracing    = "DUNGEONGEN_TRACING"
	EnvLogLevel   = "LOG_LEVEL"
	EnvLogFormat  = "LOG_FORMAT"
)

// ErrInvalid is wrapped by errors for unparsable variables.
var ErrInvalid = errors.New("invalid setting")

// Config is the resolved runtime configuration.
type Config struct {
	Options   generator.Options
	Tracing   bool
	LogLevel  string
	LogFormat string
}

// Load reads .env (or the given files) into the process environment, then
// resolves the configuration. A missing file is not an error; variables
// already set in the environment win over the file.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading env file: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv resolves the configuration through lookup, starting from
// generator.DefaultOptions.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		Options:   generator.DefaultOptions(),
		LogLevel:  "info",
		LogFormat: "text",
	}
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvSeed); ok {
		cfg.Options.Seed = v
	}
	if v, ok := get(EnvDifficulty); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, invalid(EnvDifficulty, v)
		}
		cfg.Options.Difficulty = f
	}
	if v, ok := get(EnvRooms); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, invalid(EnvRooms, v)
		}
		cfg.Options.RoomCount = n
	}
	if v, ok := get(EnvMainPath); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, invalid(EnvMainPath, v)
		}
		cfg.Options.MainPathLength = n
	}
	if v, ok := get(EnvBranching); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, invalid(EnvBranching, v)
		}
		cfg.Options.BranchingFactor = f
	}
	if v, ok := get(EnvThemes); ok {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				cfg.Options.Themes = append(cfg.Options.Themes, t)
			}
		}
	}
	if v, ok := get(EnvTracing); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, invalid(EnvTracing, v)
		}
		cfg.Tracing = b
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := get(EnvLogFormat); ok {
		cfg.LogFormat = v
	}
	return cfg, nil
}

func invalid(key, value string) error {
	return fmt.Errorf("%w: %s=%q", ErrInvalid, key, value)
}
