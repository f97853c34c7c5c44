package game

import "fmt"

// MoveErrorKind classifies why a move was rejected
type MoveErrorKind int

const (
	// NoCardSelected means the move named a card position that does not exist
	NoCardSelected MoveErrorKind = iota
	// EmptySource means the source pile has no cards
	EmptySource
	// SourceNotFaceUp means the selected card is face down
	SourceNotFaceUp
	// IllegalDestination means the destination's placement rule rejected the card
	IllegalDestination
)

// String returns the kind name
func (k MoveErrorKind) String() string {
	switch k {
	case NoCardSelected:
		return "no card selected"
	case EmptySource:
		return "empty source"
	case SourceNotFaceUp:
		return "source not face up"
	case IllegalDestination:
		return "illegal destination"
	default:
		return "unknown"
	}
}

// RuleReason pins down which placement rule failed for IllegalDestination
type RuleReason int

const (
	ReasonNone RuleReason = iota
	// ReasonNeedsAce rejects a non-Ace on an empty foundation
	ReasonNeedsAce
	// ReasonNeedsKing rejects a non-King on an empty tableau column
	ReasonNeedsKing
	// ReasonSuitMismatch rejects a foundation play of the wrong suit
	ReasonSuitMismatch
	// ReasonRankMismatch rejects a card that does not continue the sequence
	ReasonRankMismatch
	// ReasonColorMismatch rejects a tableau play of the same color
	ReasonColorMismatch
	// ReasonSourceCovered rejects a foundation play of a card with cards on top
	ReasonSourceCovered
)

// String returns the reason description
func (r RuleReason) String() string {
	switch r {
	case ReasonNeedsAce:
		return "empty foundation accepts only an Ace"
	case ReasonNeedsKing:
		return "empty column accepts only a King"
	case ReasonSuitMismatch:
		return "suit does not match foundation"
	case ReasonRankMismatch:
		return "rank does not continue the sequence"
	case ReasonColorMismatch:
		return "colors must alternate"
	case ReasonSourceCovered:
		return "card is covered by other cards"
	default:
		return ""
	}
}

// MoveError reports a rejected move. The board is left untouched; the caller
// may retry with a different move.
type MoveError struct {
	Kind   MoveErrorKind
	Reason RuleReason
	Move   Move
}

// Error implements the error interface
func (e *MoveError) Error() string {
	if e.Kind == IllegalDestination && e.Reason != ReasonNone {
		return fmt.Sprintf("illegal move: %s", e.Reason)
	}
	return fmt.Sprintf("illegal move: %s", e.Kind)
}

func rejectMove(m Move, kind MoveErrorKind) error {
	return &MoveError{Kind: kind, Move: m}
}

func rejectRule(m Move, reason RuleReason) error {
	return &MoveError{Kind: IllegalDestination, Reason: reason, Move: m}
}
