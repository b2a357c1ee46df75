package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/adrg/xdg"
)

// ConfigPath is the config file looked up in the XDG config directories.
const ConfigPath = "foldr/config.json"

// Config holds the defaults read from the config file. Flags win over it.
type Config struct {
	LogLevel string `json:"log_level"`
	Pretty   bool   `json:"pretty"`
}

// State is the per-invocation state shared by all subcommands.
type State struct {
	Config Config
	Pretty bool
}

type key int

const stateKey key = 0

func withState(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, stateKey, s)
}

func stateFrom(ctx context.Context) *State {
	if s, ok := ctx.Value(stateKey).(*State); ok {
		return s
	}
	return &State{}
}

// LoadConfig reads the config file at path. A path of "" searches the XDG
// config directories for [ConfigPath] and yields the zero Config when there
// is none; an explicit path must exist.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		found, err := xdg.SearchConfigFile(ConfigPath)
		if err != nil {
			return cfg, nil
		}
		path = found
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}
