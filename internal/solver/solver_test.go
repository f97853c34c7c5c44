package solver

import (
	"context"
	"testing"

	"github.com/vxco/vegas/internal/deck"
	"github.com/vxco/vegas/internal/game"
)

// wonBoard returns a board with all 52 cards on the foundations
func wonBoard() *game.Board {
	b := &game.Board{}
	for s := deck.Hearts; s <= deck.Spades; s++ {
		for r := deck.Ace; r <= deck.King; r++ {
			b.Foundations[s] = append(b.Foundations[s], deck.Card{Suit: s, Rank: r})
		}
	}
	return b
}

// nearlyWonBoard leaves the four kings on tableau columns
func nearlyWonBoard() *game.Board {
	b := &game.Board{}
	i := 0
	for s := deck.Hearts; s <= deck.Spades; s++ {
		for r := deck.Ace; r <= deck.Queen; r++ {
			b.Foundations[s] = append(b.Foundations[s], deck.Card{Suit: s, Rank: r})
		}
		b.Tableau[i].Up = []deck.Card{{Suit: s, Rank: deck.King}}
		i++
	}
	return b
}

// deadlockBoard buries an ace under its own suit's two with no stock and no
// legal moves: unwinnable under any policy.
func deadlockBoard() *game.Board {
	b := &game.Board{}
	b.Tableau[0].Down = []deck.Card{{Suit: deck.Hearts, Rank: deck.Ace}}
	b.Tableau[0].Up = []deck.Card{{Suit: deck.Hearts, Rank: deck.Two}}
	return b
}

func TestWonBoardSolvableWithZeroSteps(t *testing.T) {
	res := ExhaustiveSearch(context.Background(), wonBoard(), 100)
	if res.Verdict != Solvable {
		t.Errorf("verdict = %v, want solvable", res.Verdict)
	}
	if res.Steps != 0 {
		t.Errorf("steps = %d, want 0 for an already-won board", res.Steps)
	}
	if v := AccessOrder(wonBoard()); v != Solvable {
		t.Errorf("heuristic verdict = %v, want solvable", v)
	}
}

func TestExhaustiveSolvesNearlyWonBoard(t *testing.T) {
	res := ExhaustiveSearch(context.Background(), nearlyWonBoard(), 1000)
	if res.Verdict != Solvable {
		t.Errorf("verdict = %v, want solvable", res.Verdict)
	}
	if res.Steps == 0 {
		t.Error("expected at least one expanded state")
	}
}

func TestExhaustiveDetectsDeadlock(t *testing.T) {
	res := ExhaustiveSearch(context.Background(), deadlockBoard(), 100)
	if res.Verdict != Unsolvable {
		t.Errorf("verdict = %v, want unsolvable", res.Verdict)
	}
}

func TestBudgetExhaustionIsUnknownNotUnsolvable(t *testing.T) {
	b := deadlockBoard()
	b.Stock = []deck.Card{{Suit: deck.Spades, Rank: deck.Nine}, {Suit: deck.Clubs, Rank: deck.Four}}

	res := ExhaustiveSearch(context.Background(), b, 1)
	if res.Verdict != Unknown {
		t.Errorf("verdict = %v, want unknown when the budget runs out", res.Verdict)
	}
}

func TestCancelledContextIsUnknown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := ExhaustiveSearch(ctx, nearlyWonBoard(), 1000)
	if res.Verdict != Unknown {
		t.Errorf("verdict = %v, want unknown after cancellation", res.Verdict)
	}
}

func TestSearchDoesNotMutateCaller(t *testing.T) {
	b := nearlyWonBoard()
	key := b.Key()
	ExhaustiveSearch(context.Background(), b, 1000)
	if b.Key() != key {
		t.Error("search mutated the caller's board")
	}
}

func TestCheckDispatch(t *testing.T) {
	if res := Check(context.Background(), wonBoard(), Heuristic, 0); res.Verdict != Solvable {
		t.Errorf("heuristic check = %v, want solvable", res.Verdict)
	}
	if res := Check(context.Background(), deadlockBoard(), Exhaustive, 100); res.Verdict != Unsolvable {
		t.Errorf("exhaustive check = %v, want unsolvable", res.Verdict)
	}
}
