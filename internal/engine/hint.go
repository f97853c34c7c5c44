package engine

import (
	"time"

	"github.com/vxco/vegas/internal/deck"
	"github.com/vxco/vegas/internal/game"
)

// Hint charges the hint fee and returns the highest-priority legal move:
// foundation plays first, then moves that reveal a face-down card, then
// kings onto empty columns, then any other tableau play. When no pile move
// exists the advice is the stock draw.
func (g *Game) Hint() (game.Move, error) {
	if g.phase != PhasePlaying {
		return game.Move{}, ErrNotPlaying
	}

	g.economy.chargeHint()
	m := bestMove(g.board)
	g.logger.Debug("hint", "move", g.board.Describe(m), "bank", g.economy.Bank())
	g.bus.Publish(HintEvent{
		Move:      m,
		Fee:       g.economy.cfg.HintFee,
		Bank:      g.economy.Bank(),
		timestamp: time.Now(),
	})
	return m, nil
}

func bestMove(b *game.Board) game.Move {
	moves := b.LegalMoves()

	var reveals, kings, others []game.Move
	for _, m := range moves {
		switch {
		case m.IsDraw():
			// Considered last, below.
		case m.To == game.ZoneFoundation:
			return m
		case revealsCard(b, m):
			reveals = append(reveals, m)
		case kingToEmpty(b, m):
			kings = append(kings, m)
		default:
			others = append(others, m)
		}
	}
	for _, group := range [][]game.Move{reveals, kings, others} {
		if len(group) > 0 {
			return group[0]
		}
	}
	return game.Draw()
}

// revealsCard reports whether the move would flip a face-down card in the
// source column.
func revealsCard(b *game.Board, m game.Move) bool {
	if m.From != game.ZoneTableau {
		return false
	}
	return m.FromIndex == 0 && len(b.Tableau[m.FromPile].Down) > 0
}

// kingToEmpty reports whether the move starts a fresh column with a King
func kingToEmpty(b *game.Board, m game.Move) bool {
	if m.To != game.ZoneTableau || b.Tableau[m.ToPile].Len() != 0 {
		return false
	}
	switch m.From {
	case game.ZoneWaste:
		return b.Waste[len(b.Waste)-1].Rank == deck.King
	case game.ZoneTableau:
		return b.Tableau[m.FromPile].Up[m.FromIndex].Rank == deck.King
	default:
		return false
	}
}
