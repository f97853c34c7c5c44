package server

// MessageType represents a WebSocket message type with type safety
type MessageType string

// WebSocket message type constants used for the client-server protocol
const (
	// Client to server messages
	MessageTypeNewGame  MessageType = "new_game"
	MessageTypeMove     MessageType = "move"
	MessageTypeHint     MessageType = "hint"
	MessageTypeSolve    MessageType = "solve"
	MessageTypeGetState MessageType = "get_state"

	// Server to client messages
	MessageTypeError         MessageType = "error"
	MessageTypeGameState     MessageType = "game_state"
	MessageTypeMoveResult    MessageType = "move_result"
	MessageTypeHintResponse  MessageType = "hint_response"
	MessageTypeSolveResponse MessageType = "solve_response"
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}
