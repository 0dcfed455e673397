package main

import (
	"context"
	"flag"
	"fmt"
	"isolation/agent"
	"isolation/config"
	"isolation/engine"
	"isolation/game"
	"os"
	"os/signal"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// gameRecord is the outcome of one game of the series
type gameRecord struct {
	ID      int
	Swapped bool // agents[1] played Player1
	engine.GameMetric
	Moves []engine.MoveMetric
}

func main() {
	configPath := flag.String("config", "", "YAML series config, built-in defaults when empty")
	games := flag.Int("games", 0, "Override the number of games")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *games > 0 {
		cfg.Games = *games
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	records, err := runSeries(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("series aborted")
	}
	summarize(cfg, records)
}

// runSeries plays cfg.Games games, cfg.Concurrency at a time. Agents swap sides every game.
func runSeries(ctx context.Context, cfg config.Config) ([]gameRecord, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)

	var mu sync.Mutex
	records := make([]gameRecord, 0, cfg.Games)

	log.Info().Msgf("running %d games: %s vs %s", cfg.Games, cfg.Agents[0].Name, cfg.Agents[1].Name)
	for i := 0; i < cfg.Games; i++ {
		id := i
		g.Go(func() error {
			record, err := playGame(ctx, cfg, id)
			if err != nil {
				return err
			}
			mu.Lock()
			records = append(records, record)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func playGame(ctx context.Context, cfg config.Config, id int) (gameRecord, error) {
	swapped := id%2 == 1
	agentConfigs := []config.AgentConfig{cfg.Agents[0], cfg.Agents[1]}
	if swapped {
		agentConfigs[0], agentConfigs[1] = agentConfigs[1], agentConfigs[0]
	}

	names := make([]string, 2)
	agents := make([]agent.Agent, 2)
	for i, ac := range agentConfigs {
		a, err := agent.FromConfig(ac, cfg.Seed+uint64(2*id+i))
		if err != nil {
			return gameRecord{}, err
		}
		names[i], agents[i] = ac.Name, a
	}

	var options []engine.Option
	if cfg.RandomOpening {
		// Both orientations of a pair share an opening
		options = append(options, engine.WithRandomOpening(cfg.Seed+uint64(id/2)))
	}
	e := engine.NewLocalEngine(names, agents, game.NewBoard(cfg.Board.Rows, cfg.Board.Cols), cfg.TurnLimit, options...)
	metric, moves, err := e.Run(ctx)
	if err != nil {
		return gameRecord{}, fmt.Errorf("game %d: %w", id, err)
	}
	return gameRecord{ID: id, Swapped: swapped, GameMetric: metric, Moves: moves}, nil
}

func summarize(cfg config.Config, records []gameRecord) {
	wins := make([]int, 2)
	forfeits := make([]int, 2)
	depths := [][]float64{{}, {}}
	var lengths []float64

	for _, r := range records {
		// Index into cfg.Agents for each side of this game
		sides := map[game.Player]int{game.Player1: 0, game.Player2: 1}
		if r.Swapped {
			sides = map[game.Player]int{game.Player1: 1, game.Player2: 0}
		}

		wins[sides[r.Winner]]++
		if r.Reason != engine.NoLegalMove {
			forfeits[sides[r.Winner.Opponent()]]++
		}
		lengths = append(lengths, float64(r.TotalMoves))
		for _, m := range r.Moves {
			depths[sides[m.Player]] = append(depths[sides[m.Player]], float64(m.Depth))
		}
	}

	log.Info().Msgf("%d games, mean length %.1f moves", len(records), stat.Mean(lengths, nil))
	for i, ac := range cfg.Agents {
		log.Info().
			Str("agent", ac.Name).
			Int("wins", wins[i]).
			Int("forfeits", forfeits[i]).
			Float64("mean_depth", stat.Mean(depths[i], nil)).
			Msg("result")
	}
}
