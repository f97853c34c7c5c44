package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vxco/vegas/internal/config"
	"github.com/vxco/vegas/internal/deck"
	"github.com/vxco/vegas/internal/engine"
	"github.com/vxco/vegas/internal/game"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	logger := log.New(io.Discard)
	g := engine.New(engine.Config{}, logger)
	return NewModel(g, config.Default(), logger)
}

func TestParsePile(t *testing.T) {
	tests := []struct {
		in      string
		zone    game.Zone
		pile    int
		anyPile bool
		wantErr bool
	}{
		{in: "w", zone: game.ZoneWaste},
		{in: "f", zone: game.ZoneFoundation, anyPile: true},
		{in: "f1", zone: game.ZoneFoundation, pile: 0},
		{in: "f4", zone: game.ZoneFoundation, pile: 3},
		{in: "t1", zone: game.ZoneTableau, pile: 0},
		{in: "T7", zone: game.ZoneTableau, pile: 6},
		{in: "t8", wantErr: true},
		{in: "f5", wantErr: true},
		{in: "x2", wantErr: true},
		{in: "t", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parsePile(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parsePile(%q) accepted", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsePile(%q) = %v", tt.in, err)
			continue
		}
		want := pileRef{zone: tt.zone, pile: tt.pile, anyPile: tt.anyPile}
		if got != want {
			t.Errorf("parsePile(%q) = %+v, want %+v", tt.in, got, want)
		}
	}
}

func TestBuildMoveResolvesFoundation(t *testing.T) {
	b := &game.Board{}
	b.Foundations[2] = []deck.Card{{Suit: deck.Spades, Rank: deck.Ace}}
	b.Waste = []deck.Card{{Suit: deck.Spades, Rank: deck.Two}}

	m, err := buildMove(b, pileRef{zone: game.ZoneWaste}, pileRef{zone: game.ZoneFoundation, anyPile: true}, 0)
	if err != nil {
		t.Fatalf("buildMove() = %v", err)
	}
	if m.ToPile != 2 {
		t.Errorf("resolved foundation pile = %d, want 2 (the spades pile)", m.ToPile)
	}
}

func TestBuildMoveRunCount(t *testing.T) {
	b := &game.Board{}
	b.Tableau[0].Up = []deck.Card{
		{Suit: deck.Spades, Rank: deck.Nine},
		{Suit: deck.Hearts, Rank: deck.Eight},
		{Suit: deck.Clubs, Rank: deck.Seven},
	}

	// Default moves the whole face-up run.
	m, err := buildMove(b, pileRef{zone: game.ZoneTableau, pile: 0}, pileRef{zone: game.ZoneTableau, pile: 1}, 0)
	if err != nil {
		t.Fatalf("buildMove() = %v", err)
	}
	if m.FromIndex != 0 {
		t.Errorf("full-run FromIndex = %d, want 0", m.FromIndex)
	}

	// An explicit count takes that many cards from the top.
	m, err = buildMove(b, pileRef{zone: game.ZoneTableau, pile: 0}, pileRef{zone: game.ZoneTableau, pile: 1}, 2)
	if err != nil {
		t.Fatalf("buildMove() = %v", err)
	}
	if m.FromIndex != 1 {
		t.Errorf("count-2 FromIndex = %d, want 1", m.FromIndex)
	}

	if _, err := buildMove(b, pileRef{zone: game.ZoneTableau, pile: 0}, pileRef{zone: game.ZoneTableau, pile: 1}, 4); err == nil {
		t.Error("count beyond the face-up run accepted")
	}

	// A foundation destination takes the top card, not the run.
	m, err = buildMove(b, pileRef{zone: game.ZoneTableau, pile: 0}, pileRef{zone: game.ZoneFoundation, anyPile: true}, 0)
	if err != nil {
		t.Fatalf("buildMove() = %v", err)
	}
	if m.FromIndex != 2 {
		t.Errorf("foundation FromIndex = %d, want 2 (the top card)", m.FromIndex)
	}
}

func TestProcessCommandNewAndDraw(t *testing.T) {
	m := testModel(t)

	m.processCommand("new easy 42")
	if m.game.Board() == nil {
		t.Fatal("no board after new command")
	}
	if m.game.Bank() != -52 {
		t.Errorf("bank = %d, want -52", m.game.Bank())
	}

	m.processCommand("draw")
	if got := len(m.game.Board().Waste); got != 1 {
		t.Errorf("waste = %d cards after draw, want 1", got)
	}
}

func TestProcessCommandErrorsGoToLog(t *testing.T) {
	m := testModel(t)

	m.processCommand("juggle")
	joined := strings.Join(m.gameLog, "\n")
	if !strings.Contains(joined, "juggle") {
		t.Errorf("log does not mention the unknown command: %q", joined)
	}

	before := len(m.gameLog)
	m.processCommand("move w f")
	if len(m.gameLog) <= before {
		t.Error("moving with no game in progress logged nothing")
	}
}

func TestProcessCommandMovesAndRules(t *testing.T) {
	m := testModel(t)

	m.processCommand("new easy 42")
	before := len(m.gameLog)
	m.processCommand("moves")
	if len(m.gameLog) <= before {
		t.Error("moves listed nothing on a fresh deal")
	}

	m.processCommand("rules")
	joined := strings.Join(m.gameLog, "\n")
	if !strings.Contains(joined, "$52") {
		t.Errorf("rules output does not mention the entry fee: %q", joined)
	}
}

func TestRenderBoardShowsPiles(t *testing.T) {
	b := &game.Board{}
	b.Stock = []deck.Card{{Suit: deck.Clubs, Rank: deck.Nine}}
	b.Waste = []deck.Card{{Suit: deck.Hearts, Rank: deck.Ace}}
	b.Tableau[0].Down = []deck.Card{{Suit: deck.Spades, Rank: deck.Ten}}
	b.Tableau[0].Up = []deck.Card{{Suit: deck.Diamonds, Rank: deck.Five}}

	out := RenderBoard(b)
	if !strings.Contains(out, "A♥") {
		t.Error("waste top card not rendered")
	}
	if !strings.Contains(out, "5♦") {
		t.Error("face-up tableau card not rendered")
	}
	if strings.Contains(out, "10♠") {
		t.Error("face-down card leaked into the rendering")
	}
}
