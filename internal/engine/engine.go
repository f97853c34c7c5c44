// Package engine ties the rules, dealer, solver and economy together behind
// the narrow API the presentation layers consume. The engine performs no
// I/O beyond the injected logger; frontends subscribe to its event bus.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vxco/vegas/internal/dealer"
	"github.com/vxco/vegas/internal/game"
	"github.com/vxco/vegas/internal/solver"
)

// Phase is the state of a single game
type Phase int

const (
	// PhaseDealing means no board exists yet
	PhaseDealing Phase = iota
	// PhasePlaying means moves are being accepted
	PhasePlaying
	// PhaseWon means all four foundations are complete
	PhaseWon
	// PhaseStockExhausted means the stock is empty and no legal move
	// remains. An empty stock alone does not end the game; remaining
	// tableau and waste plays may still be made.
	PhaseStockExhausted
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseDealing:
		return "dealing"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseStockExhausted:
		return "stock exhausted"
	default:
		return "unknown"
	}
}

// ErrNotPlaying is returned for actions taken outside the Playing phase
var ErrNotPlaying = errors.New("engine: no game in progress")

// Config parameterises a session
type Config struct {
	Economy EconomyConfig
}

// Result pairs a move's outcome with its effect on the bank
type Result struct {
	game.Outcome
	EconomyDelta int
}

// Game is one player's session: a board, its phase, and the running bank.
// The bank persists across deals. Game is not safe for concurrent use; run
// the solver on a Snapshot if it must go to a background goroutine.
type Game struct {
	logger  *log.Logger
	bus     EventBus
	economy *economy

	board *game.Board
	phase Phase

	difficulty dealer.Difficulty
	seed       int64
}

// New creates a session with a zero bank
func New(cfg Config, logger *log.Logger) *Game {
	if cfg.Economy == (EconomyConfig{}) {
		cfg.Economy = DefaultEconomy()
	}
	return &Game{
		logger:  logger.WithPrefix("engine"),
		bus:     NewEventBus(),
		economy: newEconomy(cfg.Economy),
		phase:   PhaseDealing,
	}
}

// Events returns the bus presentation layers subscribe to
func (g *Game) Events() EventBus { return g.bus }

// Phase returns the current phase
func (g *Game) Phase() Phase { return g.phase }

// Bank returns the running balance
func (g *Game) Bank() int { return g.economy.Bank() }

// Board returns the live board. Callers must not mutate it; use Apply.
func (g *Game) Board() *game.Board { return g.board }

// Snapshot returns a deep copy safe to hand to a background solver
func (g *Game) Snapshot() *game.Board { return g.board.Clone() }

// Difficulty returns the current deal's difficulty
func (g *Game) Difficulty() dealer.Difficulty { return g.difficulty }

// Seed returns the current deal's seed
func (g *Game) Seed() int64 { return g.seed }

// NewDeal charges the entry fee and deals a fresh board. The previous board,
// if any, is discarded. Failure leaves the session in the Dealing phase with
// the fee not charged.
func (g *Game) NewDeal(opts dealer.Options) error {
	board, err := dealer.Generate(opts)
	if err != nil {
		g.phase = PhaseDealing
		g.board = nil
		g.logger.Warn("deal failed", "difficulty", opts.Difficulty, "seed", opts.Seed, "err", err)
		return err
	}

	g.board = board
	g.phase = PhasePlaying
	g.difficulty = opts.Difficulty
	g.seed = opts.Seed
	g.economy.chargeEntry()

	g.logger.Info("new deal",
		"difficulty", opts.Difficulty,
		"seed", opts.Seed,
		"bank", g.economy.Bank())
	g.bus.Publish(GameStartEvent{
		Difficulty: opts.Difficulty.String(),
		Seed:       opts.Seed,
		Bank:       g.economy.Bank(),
		timestamp:  time.Now(),
	})
	return nil
}

// LegalMoves lists the legal moves in priority order
func (g *Game) LegalMoves() []game.Move {
	if g.phase != PhasePlaying {
		return nil
	}
	return g.board.LegalMoves()
}

// Apply validates and applies one move, settles the economy, publishes the
// resulting events and advances the phase. Rejected moves leave everything
// unchanged and return the board's *game.MoveError.
func (g *Game) Apply(m game.Move) (Result, error) {
	if g.phase != PhasePlaying {
		return Result{}, ErrNotPlaying
	}

	outcome, err := g.board.Apply(m)
	if err != nil {
		return Result{}, err
	}

	res := Result{Outcome: outcome}
	if outcome.ToFoundation != nil {
		res.EconomyDelta = g.economy.rewardCard()
	}

	g.bus.Publish(MoveAppliedEvent{
		Outcome:      outcome,
		EconomyDelta: res.EconomyDelta,
		Bank:         g.economy.Bank(),
		timestamp:    time.Now(),
	})
	if outcome.Revealed != nil {
		g.bus.Publish(CardRevealedEvent{
			Card:      *outcome.Revealed,
			Column:    m.FromPile,
			timestamp: time.Now(),
		})
	}
	if outcome.FoundationCompleted != nil {
		g.bus.Publish(FoundationCompletedEvent{
			Suit:      *outcome.FoundationCompleted,
			timestamp: time.Now(),
		})
	}

	g.advancePhase()
	return res, nil
}

// advancePhase moves the state machine after an accepted move. Winning
// takes precedence; the game is dead only once the stock is empty and no
// legal move remains.
func (g *Game) advancePhase() {
	if g.board.IsWon() {
		g.phase = PhaseWon
		bonus := g.economy.winBonus()
		g.logger.Info("game won", "bank", g.economy.Bank(), "bonus", bonus)
		g.bus.Publish(GameWonEvent{Bank: g.economy.Bank(), Bonus: bonus, timestamp: time.Now()})
		return
	}
	if g.board.IsStockExhausted() && len(g.board.LegalMoves()) == 0 {
		g.phase = PhaseStockExhausted
		g.logger.Info("stock exhausted", "bank", g.economy.Bank())
		g.bus.Publish(GameOverEvent{Bank: g.economy.Bank(), timestamp: time.Now()})
	}
}

// CheckSolvable runs the solvability oracle against a snapshot of the
// current board.
func (g *Game) CheckSolvable(ctx context.Context, mode solver.Mode, budget int) (solver.Result, error) {
	if g.board == nil {
		return solver.Result{}, ErrNotPlaying
	}
	return solver.Check(ctx, g.Snapshot(), mode, budget), nil
}
