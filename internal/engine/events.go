package engine

import (
	"time"

	"github.com/vxco/vegas/internal/deck"
	"github.com/vxco/vegas/internal/game"
)

// EventType identifies a game event
type EventType string

const (
	EventTypeGameStart           EventType = "game_start"
	EventTypeMoveApplied         EventType = "move_applied"
	EventTypeCardRevealed        EventType = "card_revealed"
	EventTypeFoundationCompleted EventType = "foundation_completed"
	EventTypeGameWon             EventType = "game_won"
	EventTypeGameOver            EventType = "game_over"
	EventTypeHint                EventType = "hint"
)

// String returns the event type name
func (et EventType) String() string { return string(et) }

// Event is implemented by every game event. Presentation layers (TUI,
// sounds, logging) subscribe to events instead of polling the board.
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// GameStartEvent is published when a new deal begins
type GameStartEvent struct {
	Difficulty string
	Seed       int64
	Bank       int
	timestamp  time.Time
}

func (e GameStartEvent) EventType() EventType { return EventTypeGameStart }
func (e GameStartEvent) Timestamp() time.Time { return e.timestamp }

// MoveAppliedEvent is published for every accepted move
type MoveAppliedEvent struct {
	Outcome      game.Outcome
	EconomyDelta int
	Bank         int
	timestamp    time.Time
}

func (e MoveAppliedEvent) EventType() EventType { return EventTypeMoveApplied }
func (e MoveAppliedEvent) Timestamp() time.Time { return e.timestamp }

// CardRevealedEvent is published when a move exposes a face-down card
type CardRevealedEvent struct {
	Card      deck.Card
	Column    int
	timestamp time.Time
}

func (e CardRevealedEvent) EventType() EventType { return EventTypeCardRevealed }
func (e CardRevealedEvent) Timestamp() time.Time { return e.timestamp }

// FoundationCompletedEvent is published when a foundation reaches its King
type FoundationCompletedEvent struct {
	Suit      deck.Suit
	timestamp time.Time
}

func (e FoundationCompletedEvent) EventType() EventType { return EventTypeFoundationCompleted }
func (e FoundationCompletedEvent) Timestamp() time.Time { return e.timestamp }

// GameWonEvent is published when all four foundations complete
type GameWonEvent struct {
	Bank      int
	Bonus     int
	timestamp time.Time
}

func (e GameWonEvent) EventType() EventType { return EventTypeGameWon }
func (e GameWonEvent) Timestamp() time.Time { return e.timestamp }

// GameOverEvent is published when the stock is exhausted with no moves left
type GameOverEvent struct {
	Bank      int
	timestamp time.Time
}

func (e GameOverEvent) EventType() EventType { return EventTypeGameOver }
func (e GameOverEvent) Timestamp() time.Time { return e.timestamp }

// HintEvent is published when a hint is purchased
type HintEvent struct {
	Move      game.Move
	Fee       int
	Bank      int
	timestamp time.Time
}

func (e HintEvent) EventType() EventType { return EventTypeHint }
func (e HintEvent) Timestamp() time.Time { return e.timestamp }

// Subscriber receives published events
type Subscriber interface {
	OnEvent(event Event)
}

// EventBus fans events out to subscribers
type EventBus interface {
	Subscribe(s Subscriber)
	Unsubscribe(s Subscriber)
	Publish(e Event)
}

// simpleBus is a synchronous in-memory event bus
type simpleBus struct {
	subscribers []Subscriber
}

// NewEventBus creates an empty event bus
func NewEventBus() EventBus {
	return &simpleBus{}
}

func (b *simpleBus) Subscribe(s Subscriber) {
	b.subscribers = append(b.subscribers, s)
}

func (b *simpleBus) Unsubscribe(s Subscriber) {
	for i, sub := range b.subscribers {
		if sub == s {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			break
		}
	}
}

func (b *simpleBus) Publish(e Event) {
	for _, sub := range b.subscribers {
		sub.OnEvent(e)
	}
}
