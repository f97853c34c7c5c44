// Package solver decides whether a board can still reach the won state. Two
// strategies are offered: a fast access-order heuristic that checks a
// necessary condition per suit, and an exhaustive depth-first search over
// board snapshots that is authoritative within its step budget. Both operate
// on a snapshot of the board and never touch the caller's copy.
package solver

import (
	"context"

	"github.com/vxco/vegas/internal/game"
)

// Verdict is the oracle's answer. Unknown means the budget ran out before
// the reachable space was exhausted; it must never be conflated with
// Unsolvable.
type Verdict int

const (
	Unknown Verdict = iota
	Solvable
	Unsolvable
)

// String returns the verdict name
func (v Verdict) String() string {
	switch v {
	case Solvable:
		return "solvable"
	case Unsolvable:
		return "unsolvable"
	default:
		return "unknown"
	}
}

// Mode selects the strategy
type Mode int

const (
	// Heuristic runs the access-order analysis. It is advisory: false
	// negatives and optimistic positives are possible because cross-suit
	// tableau dependencies are not modelled exhaustively.
	Heuristic Mode = iota
	// Exhaustive runs the bounded state-space search.
	Exhaustive
)

// DefaultBudget is the step budget used when the caller passes zero
const DefaultBudget = 200_000

// Result carries the verdict and how much work produced it
type Result struct {
	Verdict Verdict
	// Steps is the number of states expanded by the exhaustive search;
	// zero for the heuristic.
	Steps int
}

// Check runs the selected strategy against a snapshot of the board. The
// context cancels the exhaustive search early, yielding Unknown.
func Check(ctx context.Context, b *game.Board, mode Mode, budget int) Result {
	switch mode {
	case Exhaustive:
		return ExhaustiveSearch(ctx, b, budget)
	default:
		return Result{Verdict: AccessOrder(b)}
	}
}
