package engine

import (
	"context"
	"isolation/agent"
	"isolation/game"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(e *LocalEngine)

// WithRandomOpening places both players on random blank cells before the agents take over.
func WithRandomOpening(seed uint64) Option {
	return func(e *LocalEngine) {
		e.opening = rand.New(rand.NewSource(seed))
	}
}

// LocalEngine alternates two in-process agents on one board. Agent i plays Player i+1.
type LocalEngine struct {
	board     *game.Board
	names     []string
	agents    []agent.Agent
	turnLimit time.Duration
	opening   *rand.Rand
}

func NewLocalEngine(names []string, agents []agent.Agent, board *game.Board, turnLimit time.Duration, options ...Option) *LocalEngine {
	if len(names) != len(agents) {
		panic("number of names does not match number of agents")
	}
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	if turnLimit <= 0 {
		panic("turn limit must be positive")
	}

	e := &LocalEngine{
		board:     board,
		names:     names,
		agents:    agents,
		turnLimit: turnLimit,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Board returns the current board, the final board once Run has returned.
func (e *LocalEngine) Board() *game.Board {
	return e.board
}

func (e *LocalEngine) name(player game.Player) string {
	return e.names[player-game.Player1]
}

// Run plays the game to its end. The returned error is only set when ctx is cancelled.
func (e *LocalEngine) Run(ctx context.Context) (GameMetric, []MoveMetric, error) {
	metric := GameMetric{StartTime: time.Now()}
	var moveMetrics []MoveMetric

	if e.opening != nil {
		e.placeRandomly()
	}
	log.Info().Msgf("%s (%s) vs %s (%s) on %dx%d", e.names[0], game.Player1, e.names[1], game.Player2, e.board.Rows(), e.board.Cols())

	for step := 1; ; step++ {
		if err := ctx.Err(); err != nil {
			return metric, moveMetrics, err
		}

		player := e.board.ActivePlayer()
		if e.board.IsTerminal() {
			metric.Winner, metric.Reason = player.Opponent(), NoLegalMove
			break
		}

		turnStart := time.Now()
		timeLeft := func() time.Duration {
			return e.turnLimit - time.Since(turnStart)
		}
		move, searchMetric := e.agents[player-game.Player1].FindMove(e.board, timeLeft)
		elapsed := time.Since(turnStart)

		moveMetrics = append(moveMetrics, MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})

		if elapsed > e.turnLimit {
			log.Warn().Msgf("%s forfeits: took %s of %s", e.name(player), elapsed, e.turnLimit)
			metric.Winner, metric.Reason = player.Opponent(), Timeout
			break
		}
		next, err := e.board.Apply(move)
		if err != nil {
			log.Warn().Err(err).Msgf("%s forfeits", e.name(player))
			metric.Winner, metric.Reason = player.Opponent(), IllegalMove
			break
		}

		log.Debug().
			Int("step", step).
			Str("player", e.name(player)).
			Stringer("move", move).
			Int("depth", searchMetric.Depth).
			Dur("elapsed", elapsed).
			Msg("move played")
		e.board = next
		metric.TotalMoves++
	}

	metric.EndTime = time.Now()
	metric.Duration = metric.EndTime.Sub(metric.StartTime)
	log.Info().Msgf("%s wins by %s after %d moves", e.name(metric.Winner), metric.Reason, metric.TotalMoves)
	return metric, moveMetrics, nil
}

func (e *LocalEngine) placeRandomly() {
	for i := 0; i < 2; i++ {
		_, placed := e.board.Location(e.board.ActivePlayer())
		if placed {
			return
		}
		moves := e.board.LegalMoves()
		if len(moves) == 0 {
			return
		}
		e.board = e.board.Play(moves[e.opening.Intn(len(moves))])
	}
}
