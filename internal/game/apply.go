package game

import "github.com/vxco/vegas/internal/deck"

// Outcome reports the side effects of an accepted move
type Outcome struct {
	Move Move
	// Drawn is the card turned over by a stock draw
	Drawn *deck.Card
	// Revealed is the tableau card flipped face up after the move emptied
	// the face-up run above it
	Revealed *deck.Card
	// ToFoundation holds the card placed on a foundation, if any
	ToFoundation *deck.Card
	// FoundationCompleted is set when the move finished a 13-card foundation
	FoundationCompleted *deck.Suit
}

// Apply validates the move and, if legal, mutates the board in place and
// returns the outcome. A rejected move returns a *MoveError and leaves the
// board untouched: all validation happens before the first mutation.
func (b *Board) Apply(m Move) (Outcome, error) {
	if m.IsDraw() {
		return b.applyDraw(m)
	}

	cards, err := b.movingCards(m)
	if err != nil {
		return Outcome{}, err
	}

	switch m.To {
	case ZoneFoundation:
		if m.ToPile < 0 || m.ToPile >= NumFoundations {
			return Outcome{}, rejectMove(m, NoCardSelected)
		}
		if len(cards) != 1 {
			return Outcome{}, rejectRule(m, ReasonSourceCovered)
		}
		if reason := b.canPlayOnFoundation(cards[0], m.ToPile); reason != ReasonNone {
			return Outcome{}, rejectRule(m, reason)
		}
		return b.applyToFoundation(m, cards[0]), nil

	case ZoneTableau:
		if m.ToPile < 0 || m.ToPile >= NumColumns {
			return Outcome{}, rejectMove(m, NoCardSelected)
		}
		if m.From == ZoneTableau && m.FromPile == m.ToPile {
			return Outcome{}, rejectRule(m, ReasonRankMismatch)
		}
		if reason := b.canPlayOnTableau(cards[0], m.ToPile); reason != ReasonNone {
			return Outcome{}, rejectRule(m, reason)
		}
		return b.applyToTableau(m, cards), nil

	default:
		return Outcome{}, rejectMove(m, NoCardSelected)
	}
}

func (b *Board) applyDraw(m Move) (Outcome, error) {
	if len(b.Stock) == 0 {
		return Outcome{}, rejectMove(m, EmptySource)
	}
	n := len(b.Stock) - 1
	card := b.Stock[n]
	b.Stock = b.Stock[:n]
	b.Waste = append(b.Waste, card)
	return Outcome{Move: m, Drawn: &card}, nil
}

func (b *Board) applyToFoundation(m Move, card deck.Card) Outcome {
	out := Outcome{Move: m, ToFoundation: &card}
	b.removeMoving(m, 1, &out)
	f := append(b.Foundations[m.ToPile], card)
	b.Foundations[m.ToPile] = f
	if len(f) == deck.NumRanks {
		suit := card.Suit
		out.FoundationCompleted = &suit
	}
	return out
}

func (b *Board) applyToTableau(m Move, cards []deck.Card) Outcome {
	out := Outcome{Move: m}
	moved := append([]deck.Card(nil), cards...)
	b.removeMoving(m, len(moved), &out)
	dest := &b.Tableau[m.ToPile]
	dest.Up = append(dest.Up, moved...)
	return out
}

// removeMoving pops the moved cards from the source pile and performs the
// automatic reveal of a newly exposed face-down card.
func (b *Board) removeMoving(m Move, count int, out *Outcome) {
	switch m.From {
	case ZoneWaste:
		b.Waste = b.Waste[:len(b.Waste)-1]
	case ZoneTableau:
		col := &b.Tableau[m.FromPile]
		col.Up = col.Up[:len(col.Up)-count]
		if len(col.Up) == 0 && len(col.Down) > 0 {
			n := len(col.Down) - 1
			card := col.Down[n]
			col.Down = col.Down[:n]
			col.Up = append(col.Up, card)
			out.Revealed = &card
		}
	}
}
