package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/vxco/vegas/internal/config"
	"github.com/vxco/vegas/internal/dealer"
	"github.com/vxco/vegas/internal/engine"
	"github.com/vxco/vegas/internal/game"
	"github.com/vxco/vegas/internal/solver"
)

// solveTimeout bounds one exhaustive solver run on behalf of a client
const solveTimeout = 10 * time.Second

// Session owns one client's game. Each connection gets its own session; the
// bank and board never outlive the connection. Sessions expire after the
// configured idle period without a message.
type Session struct {
	game   *engine.Game
	cfg    *config.Config
	logger *log.Logger
	clock  quartz.Clock

	send     func(*Message)
	onExpire func()

	mu        sync.Mutex
	idleTimer *quartz.Timer
	closed    bool
}

// NewSession creates a session with a fresh game. Messages produced by the
// session go through send; onExpire fires once if the idle timeout elapses.
func NewSession(cfg *config.Config, logger *log.Logger, clock quartz.Clock, send func(*Message), onExpire func()) *Session {
	s := &Session{
		game:     engine.New(engine.Config{Economy: cfg.EconomyConfig()}, logger),
		cfg:      cfg,
		logger:   logger.WithPrefix("session"),
		clock:    clock,
		send:     send,
		onExpire: onExpire,
	}
	s.idleTimer = clock.AfterFunc(s.idleTimeout(), s.expire)
	return s
}

func (s *Session) idleTimeout() time.Duration {
	return time.Duration(s.cfg.Server.IdleTimeout) * time.Second
}

func (s *Session) expire() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.logger.Info("session expired", "bank", s.game.Bank())
	if s.onExpire != nil {
		s.onExpire()
	}
}

// Close stops the idle timer. Safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.idleTimer.Stop()
}

// HandleMessage processes one client message and resets the idle timer
func (s *Session) HandleMessage(msg *Message) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.idleTimer.Reset(s.idleTimeout())
	s.mu.Unlock()

	s.logger.Debug("received message", "type", msg.Type)

	switch msg.Type {
	case MessageTypeNewGame:
		var data NewGameData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			s.sendError("invalid_message", "Failed to parse new game data")
			return
		}
		s.handleNewGame(data)

	case MessageTypeMove:
		var data MoveData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			s.sendError("invalid_message", "Failed to parse move data")
			return
		}
		s.handleMove(data)

	case MessageTypeHint:
		s.handleHint()

	case MessageTypeSolve:
		var data SolveData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			s.sendError("invalid_message", "Failed to parse solve data")
			return
		}
		s.handleSolve(data)

	case MessageTypeGetState:
		s.sendState()

	default:
		s.sendError("unknown_message_type", "Unknown message type: "+msg.Type.String())
	}
}

func (s *Session) handleNewGame(data NewGameData) {
	difficulty, err := dealer.ParseDifficulty(orDefault(data.Difficulty, s.cfg.Dealer.Difficulty))
	if err != nil {
		s.sendError("invalid_difficulty", err.Error())
		return
	}
	strategy, err := config.ParseStrategy(orDefault(data.Strategy, s.cfg.Dealer.Strategy))
	if err != nil {
		s.sendError("invalid_strategy", err.Error())
		return
	}

	seed := s.clock.Now().UnixNano()
	if data.Seed != nil {
		seed = *data.Seed
	}

	err = s.game.NewDeal(dealer.Options{
		Difficulty: difficulty,
		Seed:       seed,
		Strategy:   strategy,
		MaxRetries: s.cfg.Dealer.MaxRetries,
	})
	if err != nil {
		s.sendError("deal_failed", err.Error())
		return
	}
	s.sendState()
}

func (s *Session) handleMove(data MoveData) {
	m, err := MoveFromData(data)
	if err != nil {
		s.sendError("invalid_move", err.Error())
		return
	}

	res, err := s.game.Apply(m)
	if err != nil {
		var moveErr *game.MoveError
		if errors.As(err, &moveErr) {
			s.sendError("illegal_move", moveErr.Error())
		} else {
			s.sendError("move_failed", err.Error())
		}
		return
	}

	result := MoveResultData{
		Move:         s.game.Board().Describe(m),
		EconomyDelta: res.EconomyDelta,
		Bank:         s.game.Bank(),
		Phase:        s.game.Phase().String(),
	}
	if res.Revealed != nil {
		cs := cardState(*res.Revealed)
		result.Revealed = &cs
	}
	s.sendData(MessageTypeMoveResult, result)
	s.sendState()
}

func (s *Session) handleHint() {
	m, err := s.game.Hint()
	if err != nil {
		s.sendError("hint_failed", err.Error())
		return
	}
	s.sendData(MessageTypeHintResponse, HintResponseData{
		Move:        MoveToData(m),
		Description: s.game.Board().Describe(m),
		Fee:         s.cfg.Economy.HintFee,
		Bank:        s.game.Bank(),
	})
}

func (s *Session) handleSolve(data SolveData) {
	var mode solver.Mode
	switch data.Mode {
	case "heuristic", "":
		mode = solver.Heuristic
	case "exhaustive":
		mode = solver.Exhaustive
	default:
		s.sendError("invalid_mode", fmt.Sprintf("unknown solver mode %q", data.Mode))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
	defer cancel()

	res, err := s.game.CheckSolvable(ctx, mode, data.Budget)
	if err != nil {
		s.sendError("solve_failed", err.Error())
		return
	}
	s.sendData(MessageTypeSolveResponse, SolveResponseData{
		Verdict: res.Verdict.String(),
		Steps:   res.Steps,
	})
}

func (s *Session) sendState() {
	s.sendData(MessageTypeGameState, GameStateFromEngine(s.game))
}

func (s *Session) sendData(mt MessageType, data interface{}) {
	msg, err := NewMessage(mt, data)
	if err != nil {
		s.logger.Error("failed to create message", "type", mt, "error", err)
		return
	}
	s.send(msg)
}

// sendError sends an error message to the client
func (s *Session) sendError(code, message string) {
	s.sendData(MessageTypeError, ErrorData{Code: code, Message: message})
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
