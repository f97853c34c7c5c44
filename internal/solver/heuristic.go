package solver

import (
	"github.com/vxco/vegas/internal/deck"
	"github.com/vxco/vegas/internal/game"
)

// cardPlace records where a card sits and, for tableau cards, which cards
// cover it.
type cardPlace struct {
	zone  game.Zone
	order int         // draw-sequence position for stock and waste cards
	above []deck.Card // covering cards, nearest first, for tableau cards
}

// AccessOrder runs the heuristic solvability analysis. Every stock and
// waste card gets a fixed position in the draw sequence; a tableau card is
// reachable by a given time only if everything covering it is. Each suit is
// then walked Ace to King against a needed-by threshold that grows linearly
// to the full draw-sequence length. The whole board passes only if every
// suit does.
//
// The analysis checks a necessary condition per suit in isolation. It can
// be wrong in both directions and is meant for quick advisory checks, not
// proofs.
func AccessOrder(b *game.Board) Verdict {
	places := make(map[deck.Card]cardPlace, 52)

	// Draw sequence: the stock tail is drawn first, then the remaining
	// waste cards surface top-first as each one is played away.
	order := 0
	for i := len(b.Stock) - 1; i >= 0; i-- {
		order++
		places[b.Stock[i]] = cardPlace{zone: game.ZoneStock, order: order}
	}
	for i := len(b.Waste) - 1; i >= 0; i-- {
		order++
		places[b.Waste[i]] = cardPlace{zone: game.ZoneWaste, order: order}
	}
	drawLen := order

	for _, f := range b.Foundations {
		for _, c := range f {
			places[c] = cardPlace{zone: game.ZoneFoundation}
		}
	}
	for i := range b.Tableau {
		col := &b.Tableau[i]
		pile := append(append([]deck.Card(nil), col.Down...), col.Up...)
		for j, c := range pile {
			var above []deck.Card
			for k := len(pile) - 1; k > j; k-- {
				above = append(above, pile[k])
			}
			places[c] = cardPlace{zone: game.ZoneTableau, above: above}
		}
	}

	for suit := deck.Hearts; suit <= deck.Spades; suit++ {
		if !suitBuildable(places, suit, drawLen) {
			return Unsolvable
		}
	}
	return Solvable
}

// suitBuildable walks one suit's ranks in foundation order, requiring each
// holding card to be accessible by the time its rank is needed.
func suitBuildable(places map[deck.Card]cardPlace, suit deck.Suit, drawLen int) bool {
	for rank := deck.Ace; rank <= deck.King; rank++ {
		needed := threshold(int(rank), drawLen)
		if !accessibleBy(places, deck.Card{Suit: suit, Rank: rank}, needed) {
			return false
		}
	}
	return true
}

// threshold is the needed-by counter for rank r: the draw budget scales
// linearly so the King may sit anywhere while the Ace must surface early.
func threshold(rank, drawLen int) int {
	return (rank*drawLen + deck.NumRanks - 1) / deck.NumRanks
}

// accessibleBy reports whether the card can plausibly be in hand after the
// first `limit` positions of the draw sequence. Tableau cards require every
// covering card to be accessible in the same window.
func accessibleBy(places map[deck.Card]cardPlace, c deck.Card, limit int) bool {
	place, ok := places[c]
	if !ok {
		return false
	}
	switch place.zone {
	case game.ZoneFoundation:
		return true
	case game.ZoneStock, game.ZoneWaste:
		return place.order <= limit
	default:
		for _, cover := range place.above {
			if !accessibleBy(places, cover, limit) {
				return false
			}
		}
		return true
	}
}
