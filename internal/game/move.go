package game

import (
	"fmt"

	"github.com/vxco/vegas/internal/deck"
)

// Zone identifies one of the board's pile groups
type Zone int

const (
	ZoneStock Zone = iota
	ZoneWaste
	ZoneFoundation
	ZoneTableau
)

// String returns the zone name
func (z Zone) String() string {
	switch z {
	case ZoneStock:
		return "stock"
	case ZoneWaste:
		return "waste"
	case ZoneFoundation:
		return "foundation"
	case ZoneTableau:
		return "tableau"
	default:
		return "unknown"
	}
}

// Move describes a single action against the board. FromIndex is only
// meaningful for tableau sources: it indexes into the column's face-up run,
// and the whole run from that index transfers together.
type Move struct {
	From      Zone
	FromPile  int
	FromIndex int
	To        Zone
	ToPile    int
}

// Draw is the stock-to-waste move
func Draw() Move {
	return Move{From: ZoneStock, To: ZoneWaste}
}

// IsDraw reports whether the move is a stock draw
func (m Move) IsDraw() bool {
	return m.From == ZoneStock
}

// String returns a short positional description of the move
func (m Move) String() string {
	if m.IsDraw() {
		return "draw from stock"
	}
	from := m.From.String()
	if m.From == ZoneTableau {
		from = fmt.Sprintf("%s %d", from, m.FromPile+1)
	}
	to := m.To.String()
	if m.To == ZoneTableau || m.To == ZoneFoundation {
		to = fmt.Sprintf("%s %d", to, m.ToPile+1)
	}
	return fmt.Sprintf("%s → %s", from, to)
}

// Describe renders the move with the cards it would transfer on this board
func (b *Board) Describe(m Move) string {
	if m.IsDraw() {
		return "draw from stock"
	}
	cards, err := b.movingCards(m)
	if err != nil || len(cards) == 0 {
		return m.String()
	}
	if len(cards) == 1 {
		return fmt.Sprintf("%v: %s", cards[0], m)
	}
	return fmt.Sprintf("%v (%d cards): %s", cards[0], len(cards), m)
}

// movingCards returns the card sequence the move would transfer, without
// validating the destination.
func (b *Board) movingCards(m Move) ([]deck.Card, error) {
	switch m.From {
	case ZoneWaste:
		if len(b.Waste) == 0 {
			return nil, rejectMove(m, EmptySource)
		}
		return b.Waste[len(b.Waste)-1:], nil
	case ZoneTableau:
		if m.FromPile < 0 || m.FromPile >= NumColumns {
			return nil, rejectMove(m, NoCardSelected)
		}
		col := &b.Tableau[m.FromPile]
		if col.Len() == 0 {
			return nil, rejectMove(m, EmptySource)
		}
		if len(col.Up) == 0 {
			return nil, rejectMove(m, SourceNotFaceUp)
		}
		if m.FromIndex < 0 || m.FromIndex >= len(col.Up) {
			return nil, rejectMove(m, NoCardSelected)
		}
		return col.Up[m.FromIndex:], nil
	default:
		return nil, rejectMove(m, NoCardSelected)
	}
}

// canPlayOnFoundation checks the foundation placement rule for a single card
func (b *Board) canPlayOnFoundation(c deck.Card, pile int) RuleReason {
	f := b.Foundations[pile]
	if len(f) == 0 {
		if c.Rank != deck.Ace {
			return ReasonNeedsAce
		}
		return ReasonNone
	}
	top := f[len(f)-1]
	if c.Suit != top.Suit {
		return ReasonSuitMismatch
	}
	if c.Rank != top.Rank+1 {
		return ReasonRankMismatch
	}
	return ReasonNone
}

// canPlayOnTableau checks the tableau placement rule for the leading card of
// a run
func (b *Board) canPlayOnTableau(c deck.Card, col int) RuleReason {
	dest := &b.Tableau[col]
	if dest.Len() == 0 {
		if c.Rank != deck.King {
			return ReasonNeedsKing
		}
		return ReasonNone
	}
	top, faceUp, _ := dest.Top()
	if !faceUp {
		return ReasonRankMismatch
	}
	if c.IsRed() == top.IsRed() {
		return ReasonColorMismatch
	}
	if c.Rank != top.Rank-1 {
		return ReasonRankMismatch
	}
	return ReasonNone
}

// LegalMoves enumerates every legal move in a deterministic order:
// foundation plays first (waste, then tableau columns left to right), then
// tableau plays, then the stock draw. The ordering doubles as the solver's
// exploration order.
func (b *Board) LegalMoves() []Move {
	var moves []Move

	// Waste to foundation
	if n := len(b.Waste); n > 0 {
		c := b.Waste[n-1]
		if pile, ok := b.FoundationFor(c.Suit); ok && b.canPlayOnFoundation(c, pile) == ReasonNone {
			moves = append(moves, Move{From: ZoneWaste, To: ZoneFoundation, ToPile: pile})
		}
	}

	// Tableau tops to foundation
	for i := range b.Tableau {
		up := b.Tableau[i].Up
		if len(up) == 0 {
			continue
		}
		c := up[len(up)-1]
		if pile, ok := b.FoundationFor(c.Suit); ok && b.canPlayOnFoundation(c, pile) == ReasonNone {
			moves = append(moves, Move{From: ZoneTableau, FromPile: i, FromIndex: len(up) - 1, To: ZoneFoundation, ToPile: pile})
		}
	}

	// Waste to tableau
	if n := len(b.Waste); n > 0 {
		c := b.Waste[n-1]
		for i := range b.Tableau {
			if b.canPlayOnTableau(c, i) == ReasonNone {
				moves = append(moves, Move{From: ZoneWaste, To: ZoneTableau, ToPile: i})
			}
		}
	}

	// Tableau runs to tableau
	for i := range b.Tableau {
		up := b.Tableau[i].Up
		for j := range up {
			for k := range b.Tableau {
				if k == i {
					continue
				}
				if b.canPlayOnTableau(up[j], k) == ReasonNone {
					moves = append(moves, Move{From: ZoneTableau, FromPile: i, FromIndex: j, To: ZoneTableau, ToPile: k})
				}
			}
		}
	}

	if len(b.Stock) > 0 {
		moves = append(moves, Draw())
	}
	return moves
}
