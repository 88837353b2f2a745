package config

import (
	"errors"
	"fmt"

	"network/experiments/metrics"
	"network/meta"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Searched for in the XDG config directories when no path is given
const cfgFile = "network/experiments.yaml"

// Config describes an experiment: the agents taking part and which of them
// play each other.
type Config struct {
	Name      string                `mapstructure:"name"`
	Games     int                   `mapstructure:"games"` // Per matchup
	MaxMoves  int                   `mapstructure:"max_moves"`
	OutputDir string                `mapstructure:"output_dir"`
	Agents    []metrics.AgentConfig `mapstructure:"agents"`
	Matchups  [][]int               `mapstructure:"matchups"` // Pairs of agent IDs
}

var DefaultAgents = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.MachineAgent, Depth: 1, Goroutines: 1},
	{ID: 2, Kind: metrics.MachineAgent, Depth: 2, Goroutines: 4},
	{ID: 3, Kind: metrics.RandomAgent, Seed: 1},
}

var DefaultMatchups = [][]int{{1, 3}, {2, 3}, {1, 2}}

// Load reads the config file at path, or the one found in the XDG config
// directories when path is empty. Missing settings take default values and
// can be overridden by NETWORK_* environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("name", "depth")
	v.SetDefault("games", meta.NumGames)
	v.SetDefault("max_moves", meta.MaxMoves)
	v.SetDefault("output_dir", meta.OutputDir)
	v.SetEnvPrefix("network")
	v.AutomaticEnv()

	if path == "" {
		found, err := xdg.SearchConfigFile(cfgFile)
		if err != nil {
			log.Debug().Msgf("no config file found, using defaults: %v", err)
		}
		path = found
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		log.Info().Msgf("loaded config from %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if len(cfg.Agents) == 0 {
		cfg.Agents = DefaultAgents
		if len(cfg.Matchups) == 0 {
			cfg.Matchups = DefaultMatchups
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Agent returns the agent with the given ID.
func (c *Config) Agent(id int) (metrics.AgentConfig, bool) {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent, true
		}
	}
	return metrics.AgentConfig{}, false
}

func (c *Config) Validate() error {
	var errs []error
	if c.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if c.Games <= 0 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.MaxMoves <= 0 {
		errs = append(errs, fmt.Errorf("max_moves must be positive, got %d", c.MaxMoves))
	}

	seen := map[int]bool{}
	for _, agent := range c.Agents {
		if seen[agent.ID] {
			errs = append(errs, fmt.Errorf("agent %d is defined twice", agent.ID))
		}
		seen[agent.ID] = true

		switch agent.Kind {
		case metrics.MachineAgent:
			if agent.Depth < 0 || agent.NodeBudget < 0 || agent.Goroutines < 0 {
				errs = append(errs, fmt.Errorf("agent %d: depth, node_budget and goroutines must not be negative", agent.ID))
			}
		case metrics.RandomAgent:
		default:
			errs = append(errs, fmt.Errorf("agent %d: unknown kind %q", agent.ID, agent.Kind))
		}
	}

	if len(c.Matchups) == 0 {
		errs = append(errs, errors.New("at least one matchup is required"))
	}
	for i, matchup := range c.Matchups {
		if len(matchup) != 2 {
			errs = append(errs, fmt.Errorf("matchup %d must pair exactly two agents", i+1))
			continue
		}
		for _, id := range matchup {
			if !seen[id] {
				errs = append(errs, fmt.Errorf("matchup %d refers to unknown agent %d", i+1, id))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
