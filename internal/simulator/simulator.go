// Package simulator plays batches of deals automatically to measure win
// rates and the economy's house edge per difficulty.
package simulator

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vxco/vegas/internal/dealer"
	"github.com/vxco/vegas/internal/engine"
	"github.com/vxco/vegas/internal/game"
)

// maxMovesPerGame bounds one automated game. The auto player never repeats
// a position, so hitting the bound means the deal is effectively stuck.
const maxMovesPerGame = 600

// Config holds configuration for running simulations
type Config struct {
	Games      int
	Difficulty dealer.Difficulty
	Strategy   dealer.Strategy
	Seed       int64
	Workers    int
	Economy    engine.EconomyConfig
	Logger     *log.Logger

	// Progress, when set, is called after every finished game
	Progress func()
}

// Results aggregates the outcomes of a batch
type Results struct {
	Played         int
	Wins           int
	StockExhausted int
	Stuck          int
	TotalMoves     int
	TotalBank      int
	CardsPlayed    int
}

// WinRate returns the fraction of games won
func (r *Results) WinRate() float64 {
	if r.Played == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Played)
}

// AverageBank returns the mean final bank per game
func (r *Results) AverageBank() float64 {
	if r.Played == 0 {
		return 0
	}
	return float64(r.TotalBank) / float64(r.Played)
}

// Simulator runs automated games
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers < 1 {
		config.Workers = 1
	}
	return &Simulator{config: config}
}

// Run executes the batch and returns aggregated results. Game i uses seed
// base+i, so a batch is reproducible independent of worker count.
func (s *Simulator) Run(ctx context.Context) (*Results, error) {
	results := &Results{}
	var mu sync.Mutex

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(s.config.Workers)

	for i := 0; i < s.config.Games; i++ {
		seed := s.config.Seed + int64(i)
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			outcome, err := s.playGame(seed)
			if err != nil {
				return fmt.Errorf("game with seed %d: %w", seed, err)
			}

			mu.Lock()
			results.Played++
			results.TotalMoves += outcome.moves
			results.TotalBank += outcome.bank
			results.CardsPlayed += outcome.cards
			switch {
			case outcome.won:
				results.Wins++
			case outcome.exhausted:
				results.StockExhausted++
			default:
				results.Stuck++
			}
			mu.Unlock()

			if s.config.Progress != nil {
				s.config.Progress()
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type gameOutcome struct {
	won       bool
	exhausted bool
	moves     int
	bank      int
	cards     int
}

// playGame deals one board and plays it with the priority policy until the
// game ends or no unseen position is reachable.
func (s *Simulator) playGame(seed int64) (gameOutcome, error) {
	g := engine.New(engine.Config{Economy: s.config.Economy}, s.config.Logger)
	err := g.NewDeal(dealer.Options{
		Difficulty: s.config.Difficulty,
		Seed:       seed,
		Strategy:   s.config.Strategy,
	})
	if err != nil {
		return gameOutcome{}, err
	}

	seen := map[string]struct{}{g.Board().Key(): {}}
	var out gameOutcome

	for out.moves < maxMovesPerGame && g.Phase() == engine.PhasePlaying {
		move, ok := pickMove(g.Board(), seen)
		if !ok {
			break
		}
		res, err := g.Apply(move)
		if err != nil {
			return gameOutcome{}, err
		}
		out.moves++
		if res.ToFoundation != nil {
			out.cards++
		}
		seen[g.Board().Key()] = struct{}{}
	}

	out.won = g.Phase() == engine.PhaseWon
	out.exhausted = g.Phase() == engine.PhaseStockExhausted
	out.bank = g.Bank()
	return out, nil
}

// pickMove returns the first legal move leading to a position not yet
// visited. Legal moves arrive foundation-first, so progress is preferred
// and tableau shuffling cannot cycle.
func pickMove(b *game.Board, seen map[string]struct{}) (game.Move, bool) {
	for _, m := range b.LegalMoves() {
		probe := b.Clone()
		if _, err := probe.Apply(m); err != nil {
			continue
		}
		if _, dup := seen[probe.Key()]; dup {
			continue
		}
		return m, true
	}
	return game.Move{}, false
}
