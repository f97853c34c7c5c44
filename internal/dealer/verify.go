package dealer

import (
	"github.com/vxco/vegas/internal/deck"
	"github.com/vxco/vegas/internal/game"
	"github.com/vxco/vegas/internal/randutil"
)

// simStepLimit bounds a single greedy simulation. A layout that loops cards
// between columns without progressing is treated as unverified.
const simStepLimit = 1000

// generateVerified deals random layouts until the greedy simulator clears
// one, up to the retry budget. The RNG is seeded once, so the accepted
// layout is a deterministic function of (seed, retry count).
func generateVerified(opts Options) (*game.Board, error) {
	rng := randutil.New(opts.Seed)
	retries := opts.MaxRetries
	if retries <= 0 {
		retries = DefaultMaxRetries
	}

	cards := deck.New()
	for attempt := 0; attempt < retries; attempt++ {
		randutil.Shuffle(rng, cards)
		tableau := append([]deck.Card(nil), cards[:28]...)
		stock := append([]deck.Card(nil), cards[28:]...)
		if simulateGreedy(layout(tableau, stock)) {
			return layout(tableau, stock), nil
		}
	}
	return nil, ErrExhaustedRetries
}

// simulateGreedy plays the board forward with a fixed greedy policy: apply
// the first available foundation move, else the first single-card tableau
// move, else draw. It reports whether the policy clears all 52 cards within
// the single stock pass. The policy is intentionally not exhaustive: it is
// a fast pre-filter, and both false negatives (winnable layouts it cannot
// navigate) and shallow positives are accepted behaviour.
func simulateGreedy(b *game.Board) bool {
	for steps := 0; steps < simStepLimit; steps++ {
		if b.IsWon() {
			return true
		}
		m, ok := greedyMove(b)
		if !ok {
			return false
		}
		if _, err := b.Apply(m); err != nil {
			return false
		}
	}
	return false
}

func greedyMove(b *game.Board) (game.Move, bool) {
	for _, m := range b.LegalMoves() {
		if m.To == game.ZoneFoundation {
			return m, true
		}
	}
	// Single top cards only: the simulator predates run transfers and its
	// blind spot is part of the verification contract.
	for i := range b.Tableau {
		up := b.Tableau[i].Up
		if len(up) == 0 {
			continue
		}
		m := game.Move{From: game.ZoneTableau, FromPile: i, FromIndex: len(up) - 1, To: game.ZoneTableau}
		for k := range b.Tableau {
			if k == i {
				continue
			}
			m.ToPile = k
			if _, err := b.Clone().Apply(m); err == nil {
				return m, true
			}
		}
	}
	if !b.IsStockExhausted() {
		return game.Draw(), true
	}
	return game.Move{}, false
}
