package game

import (
	"testing"

	"github.com/vxco/vegas/internal/deck"
)

// dealOrdered lays out an unshuffled deck in the standard shape: column i
// holds i+1 cards with only the last face up, the remaining 24 cards form
// the stock.
func dealOrdered() *Board {
	cards := deck.New()
	b := &Board{}
	idx := 0
	for i := 0; i < NumColumns; i++ {
		for j := 0; j <= i; j++ {
			if j == i {
				b.Tableau[i].Up = append(b.Tableau[i].Up, cards[idx])
			} else {
				b.Tableau[i].Down = append(b.Tableau[i].Down, cards[idx])
			}
			idx++
		}
	}
	b.Stock = append(b.Stock, cards[idx:]...)
	return b
}

func TestDealShapeAndConservation(t *testing.T) {
	b := dealOrdered()
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if len(b.Stock) != StockSize {
		t.Errorf("stock holds %d cards, want %d", len(b.Stock), StockSize)
	}
	for i := range b.Tableau {
		if got := b.Tableau[i].Len(); got != i+1 {
			t.Errorf("column %d holds %d cards, want %d", i, got, i+1)
		}
		if len(b.Tableau[i].Up) != 1 {
			t.Errorf("column %d has %d face-up cards, want 1", i, len(b.Tableau[i].Up))
		}
	}
}

func TestValidateCatchesViolations(t *testing.T) {
	t.Run("duplicate card", func(t *testing.T) {
		b := dealOrdered()
		b.Stock[0] = b.Stock[1]
		if err := b.Validate(); err == nil {
			t.Error("Validate() accepted a duplicated card")
		}
	})

	t.Run("broken foundation sequence", func(t *testing.T) {
		b := dealOrdered()
		// Moving a Three directly onto an empty foundation skips the Ace.
		b.Foundations[0] = []deck.Card{{Suit: deck.Hearts, Rank: deck.Three}}
		b.Stock = b.Stock[:len(b.Stock)-1]
		if err := b.Validate(); err == nil {
			t.Error("Validate() accepted a foundation not starting at Ace")
		}
	})

	t.Run("broken tableau run", func(t *testing.T) {
		b := dealOrdered()
		b.Tableau[0].Up = []deck.Card{
			{Suit: deck.Spades, Rank: deck.Nine},
			{Suit: deck.Clubs, Rank: deck.Eight},
		}
		b.Stock = b.Stock[:len(b.Stock)-1]
		if err := b.Validate(); err == nil {
			t.Error("Validate() accepted a same-color run")
		}
	})
}

func TestCloneIsDeep(t *testing.T) {
	b := dealOrdered()
	snap := b.Clone()
	key := snap.Key()

	if _, err := b.Apply(Draw()); err != nil {
		t.Fatalf("Apply(draw) = %v", err)
	}
	if snap.Key() != key {
		t.Error("mutating the original changed the clone")
	}
	if b.Key() == key {
		t.Error("draw did not change the board key")
	}
}

func TestKeyDistinguishesOrientation(t *testing.T) {
	a := &Board{}
	a.Tableau[0].Down = []deck.Card{{Suit: deck.Hearts, Rank: deck.Ace}}

	b := &Board{}
	b.Tableau[0].Up = []deck.Card{{Suit: deck.Hearts, Rank: deck.Ace}}

	if a.Key() == b.Key() {
		t.Error("face-down and face-up placements encode identically")
	}
}

func TestFoundationFor(t *testing.T) {
	b := &Board{}
	b.Foundations[1] = []deck.Card{{Suit: deck.Spades, Rank: deck.Ace}}

	if pile, ok := b.FoundationFor(deck.Spades); !ok || pile != 1 {
		t.Errorf("FoundationFor(Spades) = %d, %v; want 1, true", pile, ok)
	}
	if pile, ok := b.FoundationFor(deck.Hearts); !ok || pile != 0 {
		t.Errorf("FoundationFor(Hearts) = %d, %v; want first empty pile 0", pile, ok)
	}
}

func TestIsWon(t *testing.T) {
	b := &Board{}
	if b.IsWon() {
		t.Error("empty board reported as won")
	}
	for s := deck.Hearts; s <= deck.Spades; s++ {
		for r := deck.Ace; r <= deck.King; r++ {
			b.Foundations[s] = append(b.Foundations[s], deck.Card{Suit: s, Rank: r})
		}
	}
	if !b.IsWon() {
		t.Error("full foundations not reported as won")
	}
	if err := b.Validate(); err != nil {
		t.Errorf("won board fails validation: %v", err)
	}
}
