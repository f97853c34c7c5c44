package game

import (
	"fmt"

	"github.com/vxco/vegas/internal/deck"
)

const (
	// NumColumns is the number of tableau columns
	NumColumns = 7
	// NumFoundations is the number of foundation piles
	NumFoundations = 4
	// StockSize is the number of cards left for the stock after the deal
	StockSize = 24
)

// Column is one tableau pile. The face-down prefix and face-up suffix are
// kept as separate slices so orientation invariants hold structurally: a
// card is face up iff it lives in Up. Within each slice the last element is
// nearest the top of the pile.
type Column struct {
	Down []deck.Card
	Up   []deck.Card
}

// Len returns the total number of cards in the column
func (c *Column) Len() int {
	return len(c.Down) + len(c.Up)
}

// Top returns the top card of the column and whether it is face up.
// ok is false for an empty column.
func (c *Column) Top() (card deck.Card, faceUp, ok bool) {
	if n := len(c.Up); n > 0 {
		return c.Up[n-1], true, true
	}
	if n := len(c.Down); n > 0 {
		return c.Down[n-1], false, true
	}
	return deck.Card{}, false, false
}

// Board is the aggregate game state. Every card in Stock is face down and
// every card in Waste and Foundations is face up; tableau orientation is
// carried by the Column split. The last element of Stock is the next card
// to draw; the last element of Waste is the playable one.
type Board struct {
	Stock       []deck.Card
	Waste       []deck.Card
	Foundations [NumFoundations][]deck.Card
	Tableau     [NumColumns]Column
}

// Clone returns a deep copy of the board. Solver callers take a clone as
// their read-only snapshot; the live board is never shared with them.
func (b *Board) Clone() *Board {
	nb := &Board{
		Stock: append([]deck.Card(nil), b.Stock...),
		Waste: append([]deck.Card(nil), b.Waste...),
	}
	for i := range b.Foundations {
		nb.Foundations[i] = append([]deck.Card(nil), b.Foundations[i]...)
	}
	for i := range b.Tableau {
		nb.Tableau[i] = Column{
			Down: append([]deck.Card(nil), b.Tableau[i].Down...),
			Up:   append([]deck.Card(nil), b.Tableau[i].Up...),
		}
	}
	return nb
}

// Key separators. Card bytes occupy 0..51 so anything above is free.
const (
	keyPileSep = 0xff
	keyFlipSep = 0xfe
)

// Key returns a canonical packed encoding of the board, one byte per card
// plus separators. Two boards encode equally iff they are the same position,
// which makes the key usable as a memoization handle during search.
func (b *Board) Key() string {
	buf := make([]byte, 0, 80)
	for _, c := range b.Stock {
		buf = append(buf, byte(c.Index()))
	}
	buf = append(buf, keyPileSep)
	for _, c := range b.Waste {
		buf = append(buf, byte(c.Index()))
	}
	for _, f := range b.Foundations {
		buf = append(buf, keyPileSep)
		for _, c := range f {
			buf = append(buf, byte(c.Index()))
		}
	}
	for i := range b.Tableau {
		buf = append(buf, keyPileSep)
		for _, c := range b.Tableau[i].Down {
			buf = append(buf, byte(c.Index()))
		}
		buf = append(buf, keyFlipSep)
		for _, c := range b.Tableau[i].Up {
			buf = append(buf, byte(c.Index()))
		}
	}
	return string(buf)
}

// IsWon reports whether all four foundations are complete
func (b *Board) IsWon() bool {
	for i := range b.Foundations {
		if len(b.Foundations[i]) != deck.NumRanks {
			return false
		}
	}
	return true
}

// IsStockExhausted reports whether the stock is empty. Under the one-pass
// rule the stock is never refilled from the waste, so this is monotonic.
func (b *Board) IsStockExhausted() bool {
	return len(b.Stock) == 0
}

// FoundationFor returns the index of the foundation pile that currently
// accepts the given suit: the pile already building that suit, or the first
// empty pile. ok is false when the suit's pile is complete and no empty pile
// remains, which cannot happen on a conserving board.
func (b *Board) FoundationFor(suit deck.Suit) (int, bool) {
	empty := -1
	for i, f := range b.Foundations {
		if len(f) == 0 {
			if empty < 0 {
				empty = i
			}
			continue
		}
		if f[0].Suit == suit {
			return i, true
		}
	}
	if empty >= 0 {
		return empty, true
	}
	return 0, false
}

// Validate checks the structural invariants: 52 distinct cards across all
// zones, foundations contiguous ascending single-suit from the Ace, and
// every tableau face-up suffix a valid run. It returns the first violation
// found, or nil.
func (b *Board) Validate() error {
	seen := make(map[deck.Card]bool, 52)
	count := 0
	note := func(zone string, cards []deck.Card) error {
		for _, c := range cards {
			if seen[c] {
				return fmt.Errorf("duplicate card %v in %s", c, zone)
			}
			seen[c] = true
			count++
		}
		return nil
	}

	if err := note("stock", b.Stock); err != nil {
		return err
	}
	if err := note("waste", b.Waste); err != nil {
		return err
	}
	for i, f := range b.Foundations {
		if err := note(fmt.Sprintf("foundation %d", i), f); err != nil {
			return err
		}
		for j, c := range f {
			if c.Rank != deck.Rank(j+1) {
				return fmt.Errorf("foundation %d has %v at height %d", i, c, j)
			}
			if c.Suit != f[0].Suit {
				return fmt.Errorf("foundation %d mixes suits", i)
			}
		}
	}
	for i := range b.Tableau {
		col := &b.Tableau[i]
		zone := fmt.Sprintf("tableau %d", i)
		if err := note(zone, col.Down); err != nil {
			return err
		}
		if err := note(zone, col.Up); err != nil {
			return err
		}
		for j := 1; j < len(col.Up); j++ {
			prev, cur := col.Up[j-1], col.Up[j]
			if cur.IsRed() == prev.IsRed() {
				return fmt.Errorf("%s run breaks color alternation at %v on %v", zone, cur, prev)
			}
			if cur.Rank != prev.Rank-1 {
				return fmt.Errorf("%s run breaks descent at %v on %v", zone, cur, prev)
			}
		}
	}
	if count != 52 {
		return fmt.Errorf("board holds %d cards, want 52", count)
	}
	return nil
}
