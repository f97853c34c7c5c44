// Package dealer constructs fresh boards for the one-pass game. Layouts are
// deterministic for a given (difficulty, seed) pair so every deal can be
// reproduced, and two construction strategies are available: a constructive
// per-difficulty arrangement (the default) and shuffle-and-verify, which
// retries random deals until a greedy simulation clears the board.
package dealer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vxco/vegas/internal/deck"
	"github.com/vxco/vegas/internal/game"
)

// Difficulty selects how favourably the deal is arranged
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// String returns the difficulty name
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty converts a name into a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("unknown difficulty %q", s)
	}
}

// Strategy selects the construction algorithm
type Strategy int

const (
	// Constructive arranges the deck per difficulty so the layout tends to
	// be playable within one stock pass. The arrangement is a heuristic, not
	// a solvability proof.
	Constructive Strategy = iota
	// ShuffleAndVerify deals random layouts and keeps the first one whose
	// greedy one-pass simulation clears all 52 cards. The simulator is
	// deliberately greedy and single-card: it can reject layouts a smarter
	// line of play would win, and that approximation is part of the
	// contract.
	ShuffleAndVerify
)

// DefaultMaxRetries bounds ShuffleAndVerify attempts
const DefaultMaxRetries = 1000

// ErrExhaustedRetries is returned when ShuffleAndVerify finds no acceptable
// layout within its retry budget.
var ErrExhaustedRetries = errors.New("dealer: exhausted retries without a verified layout")

// Options parameterise a deal
type Options struct {
	Difficulty Difficulty
	Seed       int64
	Strategy   Strategy
	// MaxRetries bounds ShuffleAndVerify; zero means DefaultMaxRetries.
	MaxRetries int
}

// Generate builds a fresh board. The same options always produce the same
// board. ShuffleAndVerify can fail with ErrExhaustedRetries; Constructive
// never fails.
func Generate(opts Options) (*game.Board, error) {
	switch opts.Strategy {
	case ShuffleAndVerify:
		return generateVerified(opts)
	default:
		return generateConstructive(opts), nil
	}
}

// layout deals the fixed shape: column i receives i+1 cards from tableauCards
// with only the last face up, and stockCards become the stock unchanged.
func layout(tableauCards, stockCards []deck.Card) *game.Board {
	b := &game.Board{}
	idx := 0
	for i := 0; i < game.NumColumns; i++ {
		for j := 0; j <= i; j++ {
			if j == i {
				b.Tableau[i].Up = append(b.Tableau[i].Up, tableauCards[idx])
			} else {
				b.Tableau[i].Down = append(b.Tableau[i].Down, tableauCards[idx])
			}
			idx++
		}
	}
	b.Stock = append([]deck.Card(nil), stockCards...)
	return b
}
