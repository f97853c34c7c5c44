package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// NumSuits is the number of suits in a standard deck
const NumSuits = 4

// String returns the display glyph for the suit
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Name returns the long name of the suit
func (s Suit) Name() string {
	switch s {
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	case Spades:
		return "spades"
	default:
		return "unknown"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are low: foundations build A..K and
// tableau runs descend toward the Ace.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the number of ranks per suit
const NumRanks = 13

// String returns the display symbol for the rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		if r >= Two && r <= Ten {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Card is the immutable identity of a playing card. Orientation (face up or
// face down) is presentation state owned by whichever pile holds the card,
// never part of identity or comparison.
type Card struct {
	Suit Suit
	Rank Rank
}

// String returns the card's display form (e.g. "A♥", "10♠")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Index returns a stable 0..51 ordinal for the card, used by the packed
// board encoding
func (c Card) Index() int {
	return int(c.Suit)*NumRanks + int(c.Rank) - 1
}

// FromIndex is the inverse of Index
func FromIndex(i int) Card {
	return Card{Suit: Suit(i / NumRanks), Rank: Rank(i%NumRanks + 1)}
}

// New creates all 52 cards, grouped by suit in rank-ascending order
func New() []Card {
	cards := make([]Card, 0, NumSuits*NumRanks)
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return cards
}
