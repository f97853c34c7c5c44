package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vxco/vegas/internal/deck"
	"github.com/vxco/vegas/internal/game"
)

// pileRef is a parsed pile argument like "w", "f" or "t3"
type pileRef struct {
	zone game.Zone
	pile int
	// anyPile is set for a bare "f": the foundation pile is chosen by suit
	anyPile bool
}

// parsePile parses the pile notation used by move commands: "w" is the
// waste, "f" or "f1".."f4" a foundation, "t1".."t7" a tableau column.
func parsePile(s string) (pileRef, error) {
	s = strings.ToLower(s)
	switch {
	case s == "w":
		return pileRef{zone: game.ZoneWaste}, nil
	case s == "f":
		return pileRef{zone: game.ZoneFoundation, anyPile: true}, nil
	case strings.HasPrefix(s, "f"):
		n, err := strconv.Atoi(s[1:])
		if err != nil || n < 1 || n > game.NumFoundations {
			return pileRef{}, fmt.Errorf("bad foundation %q (use f1..f%d)", s, game.NumFoundations)
		}
		return pileRef{zone: game.ZoneFoundation, pile: n - 1}, nil
	case strings.HasPrefix(s, "t"):
		n, err := strconv.Atoi(s[1:])
		if err != nil || n < 1 || n > game.NumColumns {
			return pileRef{}, fmt.Errorf("bad column %q (use t1..t%d)", s, game.NumColumns)
		}
		return pileRef{zone: game.ZoneTableau, pile: n - 1}, nil
	default:
		return pileRef{}, fmt.Errorf("unknown pile %q (use w, f, f1..f4 or t1..t7)", s)
	}
}

// buildMove assembles a move from parsed source and destination. count is
// the number of cards to take from a tableau source; zero means the whole
// face-up run.
func buildMove(b *game.Board, src, dst pileRef, count int) (game.Move, error) {
	m := game.Move{From: src.zone, FromPile: src.pile, To: dst.zone, ToPile: dst.pile}

	if src.zone == game.ZoneTableau {
		up := len(b.Tableau[src.pile].Up)
		if count == 0 {
			// Foundations take one card; tableau targets take the whole run.
			if dst.zone == game.ZoneFoundation {
				count = 1
			} else {
				count = up
			}
		}
		if count < 1 || count > up {
			return game.Move{}, fmt.Errorf("column t%d has %d face-up cards, not %d", src.pile+1, up, count)
		}
		m.FromIndex = up - count
	} else if count != 0 {
		return game.Move{}, fmt.Errorf("a card count only applies to tableau sources")
	}

	if dst.anyPile {
		cards, err := movingCards(b, m)
		if err != nil {
			return game.Move{}, err
		}
		pile, ok := b.FoundationFor(cards[0].Suit)
		if !ok {
			return game.Move{}, fmt.Errorf("no foundation pile available for %s", cards[0])
		}
		m.ToPile = pile
	}
	return m, nil
}

// movingCards peeks at the cards a move would carry, for foundation pile
// resolution. Only the zones buildMove produces are handled.
func movingCards(b *game.Board, m game.Move) ([]deck.Card, error) {
	switch m.From {
	case game.ZoneWaste:
		if len(b.Waste) == 0 {
			return nil, fmt.Errorf("the waste is empty")
		}
		return []deck.Card{b.Waste[len(b.Waste)-1]}, nil
	case game.ZoneTableau:
		up := b.Tableau[m.FromPile].Up
		if m.FromIndex >= len(up) {
			return nil, fmt.Errorf("column t%d has no card there", m.FromPile+1)
		}
		return up[m.FromIndex:], nil
	default:
		return nil, fmt.Errorf("moves start from the waste or a column")
	}
}
