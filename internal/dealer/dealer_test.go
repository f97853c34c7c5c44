package dealer

import (
	"errors"
	"testing"

	"github.com/vxco/vegas/internal/deck"
	"github.com/vxco/vegas/internal/game"
)

func TestGenerateShapeAllDifficulties(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		t.Run(d.String(), func(t *testing.T) {
			b, err := Generate(Options{Difficulty: d, Seed: 42})
			if err != nil {
				t.Fatalf("Generate() = %v", err)
			}
			if err := b.Validate(); err != nil {
				t.Fatalf("generated board invalid: %v", err)
			}
			if len(b.Stock) != game.StockSize {
				t.Errorf("stock holds %d cards, want %d", len(b.Stock), game.StockSize)
			}
			if len(b.Waste) != 0 {
				t.Errorf("waste holds %d cards, want 0", len(b.Waste))
			}
			for i := range b.Foundations {
				if len(b.Foundations[i]) != 0 {
					t.Errorf("foundation %d not empty", i)
				}
			}
			for i := range b.Tableau {
				if got := b.Tableau[i].Len(); got != i+1 {
					t.Errorf("column %d holds %d cards, want %d", i, got, i+1)
				}
				if len(b.Tableau[i].Up) != 1 {
					t.Errorf("column %d has %d face-up cards, want 1", i, len(b.Tableau[i].Up))
				}
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		a, err := Generate(Options{Difficulty: d, Seed: 7})
		if err != nil {
			t.Fatalf("Generate() = %v", err)
		}
		b, err := Generate(Options{Difficulty: d, Seed: 7})
		if err != nil {
			t.Fatalf("Generate() = %v", err)
		}
		if a.Key() != b.Key() {
			t.Errorf("%v: identical seeds produced different boards", d)
		}
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a, _ := Generate(Options{Difficulty: Medium, Seed: 1})
	b, _ := Generate(Options{Difficulty: Medium, Seed: 2})
	if a.Key() == b.Key() {
		t.Error("different seeds produced identical boards")
	}
}

func TestEasyDealSurfacesAcesFirst(t *testing.T) {
	b, err := Generate(Options{Difficulty: Easy, Seed: 42})
	if err != nil {
		t.Fatalf("Generate() = %v", err)
	}
	// The stock tail is drawn first; on easy deals the first four draws are
	// the reserved aces.
	n := len(b.Stock)
	for i := 1; i <= 4; i++ {
		if b.Stock[n-i].Rank != deck.Ace {
			t.Errorf("draw %d is %v, want an ace", i, b.Stock[n-i])
		}
	}
}

func TestShuffleAndVerifyDeterministic(t *testing.T) {
	opts := Options{Difficulty: Medium, Seed: 99, Strategy: ShuffleAndVerify, MaxRetries: 25}

	a, errA := Generate(opts)
	b, errB := Generate(opts)

	if (errA == nil) != (errB == nil) {
		t.Fatalf("identical options disagreed: %v vs %v", errA, errB)
	}
	if errA != nil {
		if !errors.Is(errA, ErrExhaustedRetries) {
			t.Fatalf("Generate() = %v, want ErrExhaustedRetries", errA)
		}
		return
	}
	if a.Key() != b.Key() {
		t.Error("identical options produced different verified boards")
	}
	if err := a.Validate(); err != nil {
		t.Errorf("verified board invalid: %v", err)
	}
}

func TestGreedySimulatorClearsTrivialLayout(t *testing.T) {
	b := &game.Board{}
	kings := []deck.Card{}
	for s := deck.Hearts; s <= deck.Spades; s++ {
		for r := deck.Ace; r <= deck.Queen; r++ {
			b.Foundations[s] = append(b.Foundations[s], deck.Card{Suit: s, Rank: r})
		}
		kings = append(kings, deck.Card{Suit: s, Rank: deck.King})
	}
	for i, k := range kings {
		b.Tableau[i].Up = []deck.Card{k}
	}

	if !simulateGreedy(b.Clone()) {
		t.Error("greedy simulation failed a four-moves-from-won layout")
	}
}

func TestGreedySimulatorRejectsDeadLayout(t *testing.T) {
	// An ace buried under its own suit's two, with nothing else movable and
	// no stock, cannot be cleared by any policy.
	b := &game.Board{}
	b.Tableau[0].Down = []deck.Card{{Suit: deck.Hearts, Rank: deck.Ace}}
	b.Tableau[0].Up = []deck.Card{{Suit: deck.Hearts, Rank: deck.Two}}

	if simulateGreedy(b.Clone()) {
		t.Error("greedy simulation cleared an unwinnable layout")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input   string
		want    Difficulty
		wantErr bool
	}{
		{"easy", Easy, false},
		{"Medium", Medium, false},
		{"HARD", Hard, false},
		{"nightmare", Easy, true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
