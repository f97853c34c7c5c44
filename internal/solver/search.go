package solver

import (
	"context"

	"github.com/vxco/vegas/internal/game"
)

// ExhaustiveSearch explores the reachable state space depth-first from a
// snapshot of the board. Visited positions are memoized by their packed
// encoding so transpositions are expanded once. The verdicts are kept
// honest: Solvable on the first won state, Unsolvable only when every
// reachable state within the budget was expanded and none won, Unknown when
// the budget ran out or the context was cancelled first.
func ExhaustiveSearch(ctx context.Context, b *game.Board, budget int) Result {
	if budget <= 0 {
		budget = DefaultBudget
	}
	s := &search{
		ctx:    ctx,
		budget: budget,
		seen:   make(map[string]struct{}),
	}
	verdict := s.explore(b.Clone())
	return Result{Verdict: verdict, Steps: s.steps}
}

type search struct {
	ctx    context.Context
	budget int
	steps  int
	seen   map[string]struct{}
}

func (s *search) explore(b *game.Board) Verdict {
	if b.IsWon() {
		return Solvable
	}
	if s.steps >= s.budget || s.ctx.Err() != nil {
		return Unknown
	}

	key := b.Key()
	if _, ok := s.seen[key]; ok {
		// Already expanded (or on the current path); nothing new here.
		return Unsolvable
	}
	s.seen[key] = struct{}{}
	s.steps++

	sawUnknown := false
	for _, m := range b.LegalMoves() {
		if pointlessRelocation(b, m) {
			continue
		}
		next := b.Clone()
		if _, err := next.Apply(m); err != nil {
			continue
		}
		switch s.explore(next) {
		case Solvable:
			return Solvable
		case Unknown:
			sawUnknown = true
		}
	}
	if sawUnknown {
		return Unknown
	}
	return Unsolvable
}

// pointlessRelocation prunes moving a column's entire face-up run, with no
// face-down cards beneath it, onto an empty column: legal, but the position
// it produces is the same position.
func pointlessRelocation(b *game.Board, m game.Move) bool {
	if m.From != game.ZoneTableau || m.To != game.ZoneTableau {
		return false
	}
	src := &b.Tableau[m.FromPile]
	return m.FromIndex == 0 && len(src.Down) == 0 && b.Tableau[m.ToPile].Len() == 0
}
