package tui

import (
	"fmt"
	"strings"

	"github.com/vxco/vegas/internal/deck"
	"github.com/vxco/vegas/internal/game"
)

const (
	faceDownGlyph = "[##]"
	emptyGlyph    = "[  ]"
	cardWidth     = 4
)

// formatCard renders one face-up card with suit coloring
func formatCard(c deck.Card) string {
	s := fmt.Sprintf("%4s", c.String())
	if c.IsRed() {
		return RedCardStyle.Render(s)
	}
	return BlackCardStyle.Render(s)
}

// renderTopRow renders the stock, waste and foundations line
func renderTopRow(b *game.Board) string {
	var sb strings.Builder

	if len(b.Stock) > 0 {
		sb.WriteString(FaceDownStyle.Render(faceDownGlyph))
		sb.WriteString(InfoStyle.Render(fmt.Sprintf("×%-2d", len(b.Stock))))
	} else {
		sb.WriteString(EmptyPileStyle.Render(emptyGlyph))
		sb.WriteString("   ")
	}
	sb.WriteString("  ")

	if len(b.Waste) > 0 {
		sb.WriteString(formatCard(b.Waste[len(b.Waste)-1]))
	} else {
		sb.WriteString(EmptyPileStyle.Render(emptyGlyph))
	}
	sb.WriteString("    ")

	for i, pile := range b.Foundations {
		if i > 0 {
			sb.WriteString(" ")
		}
		if len(pile) > 0 {
			sb.WriteString(formatCard(pile[len(pile)-1]))
		} else {
			sb.WriteString(EmptyPileStyle.Render(emptyGlyph))
		}
	}

	return sb.String()
}

// renderTableau renders the seven columns as rows. Face-down cards show as
// backs; the tallest column sets the height.
func renderTableau(b *game.Board) string {
	var sb strings.Builder

	sb.WriteString("  ")
	for i := range b.Tableau {
		sb.WriteString(InfoStyle.Render(fmt.Sprintf("  t%d ", i+1)))
	}
	sb.WriteString("\n")

	maxLen := 0
	for _, col := range b.Tableau {
		if col.Len() > maxLen {
			maxLen = col.Len()
		}
	}

	for row := 0; row < maxLen; row++ {
		sb.WriteString("  ")
		for _, col := range b.Tableau {
			switch {
			case row < len(col.Down):
				sb.WriteString(" " + FaceDownStyle.Render(faceDownGlyph))
			case row < col.Len():
				sb.WriteString(" " + formatCard(col.Up[row-len(col.Down)]))
			default:
				sb.WriteString(strings.Repeat(" ", cardWidth+1))
			}
		}
		sb.WriteString("\n")
	}

	if maxLen == 0 {
		sb.WriteString("  ")
		for range b.Tableau {
			sb.WriteString(" " + EmptyPileStyle.Render(emptyGlyph))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderBoard renders the whole board for the playfield pane
func RenderBoard(b *game.Board) string {
	if b == nil {
		return InfoStyle.Render("No game in progress. Type 'new easy' to deal.")
	}
	return renderTopRow(b) + "\n\n" + renderTableau(b)
}
