package experiments

import (
	"fmt"

	"network/config"
	"network/engine"
	"network/experiments/metrics"
	"network/game"
	"network/player"
	"network/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Run plays every matchup of cfg and stores the agent configs, game records
// and move records as CSV files. It returns the directory they were written to.
func Run(cfg *config.Config) (string, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchup := range cfg.Matchups {
		config1, ok1 := cfg.Agent(matchup[0])
		config2, ok2 := cfg.Agent(matchup[1])
		if !ok1 || !ok2 {
			return "", fmt.Errorf("matchup %d refers to an unknown agent", mi+1)
		}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(cfg.Matchups), config1, config2)

		for i := 0; i < cfg.Games; i++ {
			// Alternate which agent moves first
			white, black := config1, config2
			if i%2 == 1 {
				white, black = config2, config1
			}

			id := uuid.NewString()
			winner, gameMetric, moveMetrics := runGame(white, black, cfg.MaxMoves, uint64(i))
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         id,
				Agent1:     white.ID,
				Agent2:     black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       id,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(cfg.Matchups), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(cfg.Matchups))
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame plays a single game between two agents and returns the winner's
// side name, "draw" when there is none.
func runGame(white, black metrics.AgentConfig, maxMoves int, round uint64) (string, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.NewLocalEngine(
		createPlayer(white, game.White, round),
		createPlayer(black, game.Black, round),
		maxMoves,
	)

	winner, ok, gameMetric, moveMetrics := e.Run()
	if !ok {
		return "draw", gameMetric, moveMetrics
	}
	return winner.String(), gameMetric, moveMetrics
}

func createPlayer(config metrics.AgentConfig, side game.Side, round uint64) engine.Player {
	if config.Kind == metrics.RandomAgent {
		return player.NewRandomPlayer(side, config.Seed+round)
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.NodeBudget > 0 {
		options = append(options, searcher.WithNodeBudget(config.NodeBudget))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	return player.NewMachinePlayer(side, config.Depth, options...)
}
