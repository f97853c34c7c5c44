package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vxco/vegas/internal/deck"
	"github.com/vxco/vegas/internal/engine"
	"github.com/vxco/vegas/internal/game"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server Messages

type NewGameData struct {
	Difficulty string `json:"difficulty"`
	Seed       *int64 `json:"seed,omitempty"`
	Strategy   string `json:"strategy,omitempty"`
}

type MoveData struct {
	From      string `json:"from"`
	FromPile  int    `json:"fromPile,omitempty"`
	FromIndex int    `json:"fromIndex,omitempty"`
	To        string `json:"to"`
	ToPile    int    `json:"toPile,omitempty"`
}

type SolveData struct {
	Mode   string `json:"mode"`
	Budget int    `json:"budget,omitempty"`
}

// Server → Client Messages

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CardState is a card on the wire
type CardState struct {
	Suit    string `json:"suit"`
	Rank    int    `json:"rank"`
	Display string `json:"display"`
}

// ColumnState is one tableau column. Face-down cards are counted, never
// shown.
type ColumnState struct {
	DownCount int         `json:"downCount"`
	Up        []CardState `json:"up"`
}

type GameStateData struct {
	Phase       string        `json:"phase"`
	Difficulty  string        `json:"difficulty"`
	Seed        int64         `json:"seed"`
	Bank        int           `json:"bank"`
	StockCount  int           `json:"stockCount"`
	Waste       []CardState   `json:"waste"`
	Foundations [][]CardState `json:"foundations"`
	Tableau     []ColumnState `json:"tableau"`
}

type MoveResultData struct {
	Move         string     `json:"move"`
	EconomyDelta int        `json:"economyDelta"`
	Bank         int        `json:"bank"`
	Revealed     *CardState `json:"revealed,omitempty"`
	Phase        string     `json:"phase"`
}

type HintResponseData struct {
	Move        MoveData `json:"move"`
	Description string   `json:"description"`
	Fee         int      `json:"fee"`
	Bank        int      `json:"bank"`
}

type SolveResponseData struct {
	Verdict string `json:"verdict"`
	Steps   int    `json:"steps"`
}

// Helper functions to convert between internal types and message types

func cardState(c deck.Card) CardState {
	return CardState{
		Suit:    c.Suit.Name(),
		Rank:    int(c.Rank),
		Display: c.String(),
	}
}

func cardStates(cards []deck.Card) []CardState {
	out := make([]CardState, len(cards))
	for i, c := range cards {
		out[i] = cardState(c)
	}
	return out
}

// GameStateFromEngine projects the session's game into the wire format. The
// stock and face-down tableau cards stay hidden from the client.
func GameStateFromEngine(g *engine.Game) GameStateData {
	b := g.Board()
	state := GameStateData{
		Phase:      g.Phase().String(),
		Difficulty: g.Difficulty().String(),
		Seed:       g.Seed(),
		Bank:       g.Bank(),
	}
	if b == nil {
		return state
	}

	state.StockCount = len(b.Stock)
	state.Waste = cardStates(b.Waste)
	state.Foundations = make([][]CardState, len(b.Foundations))
	for i, pile := range b.Foundations {
		state.Foundations[i] = cardStates(pile)
	}
	state.Tableau = make([]ColumnState, len(b.Tableau))
	for i, col := range b.Tableau {
		state.Tableau[i] = ColumnState{
			DownCount: len(col.Down),
			Up:        cardStates(col.Up),
		}
	}
	return state
}

var zoneNames = map[game.Zone]string{
	game.ZoneStock:      "stock",
	game.ZoneWaste:      "waste",
	game.ZoneFoundation: "foundation",
	game.ZoneTableau:    "tableau",
}

func parseZone(s string) (game.Zone, error) {
	for zone, name := range zoneNames {
		if name == s {
			return zone, nil
		}
	}
	return 0, fmt.Errorf("unknown zone %q", s)
}

// MoveFromData converts a wire move into a game move
func MoveFromData(data MoveData) (game.Move, error) {
	from, err := parseZone(data.From)
	if err != nil {
		return game.Move{}, err
	}
	to, err := parseZone(data.To)
	if err != nil {
		return game.Move{}, err
	}
	return game.Move{
		From:      from,
		FromPile:  data.FromPile,
		FromIndex: data.FromIndex,
		To:        to,
		ToPile:    data.ToPile,
	}, nil
}

// MoveToData converts a game move into its wire form
func MoveToData(m game.Move) MoveData {
	return MoveData{
		From:      zoneNames[m.From],
		FromPile:  m.FromPile,
		FromIndex: m.FromIndex,
		To:        zoneNames[m.To],
		ToPile:    m.ToPile,
	}
}
