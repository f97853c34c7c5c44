// Package tui is the interactive terminal frontend. Play is command-driven:
// the player types short commands (draw, move t3 t5, hint) into an input
// line under the rendered board.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vxco/vegas/internal/config"
	"github.com/vxco/vegas/internal/dealer"
	"github.com/vxco/vegas/internal/engine"
	"github.com/vxco/vegas/internal/game"
	"github.com/vxco/vegas/internal/solver"
)

// solveBudget bounds the exhaustive oracle when invoked interactively
const (
	solveBudget  = 500_000
	solveTimeout = 10 * time.Second
)

// Model represents the Bubble Tea model for the game
type Model struct {
	game   *engine.Game
	cfg    *config.Config
	logger *log.Logger

	// UI components
	logViewport viewport.Model
	actionInput textinput.Model

	// State
	gameLog  []string
	quitting bool
	solving  bool

	// Dimensions
	width  int
	height int
}

// solveResultMsg delivers a background solver verdict
type solveResultMsg struct {
	result solver.Result
	err    error
}

// NewModel creates the TUI model and subscribes it to the game's events
func NewModel(g *engine.Game, cfg *config.Config, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "new easy | draw | move t3 t5 | hint | solve | quit"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	m := &Model{
		game:        g,
		cfg:         cfg,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		actionInput: ti,
	}
	g.Events().Subscribe(m)
	return m
}

// OnEvent receives engine events and turns them into log lines
func (m *Model) OnEvent(e engine.Event) {
	switch ev := e.(type) {
	case engine.GameStartEvent:
		m.addLog(SuccessStyle.Render(fmt.Sprintf("New %s deal (seed %d). Bank: $%d", ev.Difficulty, ev.Seed, ev.Bank)))
	case engine.CardRevealedEvent:
		m.addLog(fmt.Sprintf("Revealed %s on t%d", ev.Card, ev.Column+1))
	case engine.FoundationCompletedEvent:
		m.addLog(SuccessStyle.Render(fmt.Sprintf("Foundation complete: %s", ev.Suit.Name())))
	case engine.GameWonEvent:
		m.addLog(SuccessStyle.Render(fmt.Sprintf("You won! Bonus $%d, bank $%d", ev.Bonus, ev.Bank)))
	case engine.GameOverEvent:
		m.addLog(ErrorStyle.Render(fmt.Sprintf("No moves left. Bank: $%d", ev.Bank)))
	case engine.HintEvent:
		m.addLog(BankStyle.Render(fmt.Sprintf("Hint ($%d): %s", ev.Fee, m.game.Board().Describe(ev.Move))))
	}
}

func (m *Model) addLog(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case solveResultMsg:
		m.solving = false
		if msg.err != nil {
			m.addLog(ErrorStyle.Render("Solve failed: " + msg.err.Error()))
		} else {
			m.addLog(BankStyle.Render(fmt.Sprintf("Oracle verdict: %s (%d positions)", msg.result.Verdict, msg.result.Steps)))
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "enter":
			input := strings.TrimSpace(m.actionInput.Value())
			m.actionInput.SetValue("")
			if cmd := m.processCommand(input); cmd != nil {
				cmds = append(cmds, cmd)
			}
			if m.quitting {
				return m, tea.Sequence(tea.ClearScreen, tea.Quit)
			}
		case "pgup":
			m.logViewport.HalfPageUp()
		case "pgdown":
			m.logViewport.HalfPageDown()
		}
	}

	var cmd tea.Cmd
	m.actionInput, cmd = m.actionInput.Update(msg)
	cmds = append(cmds, cmd)
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// processCommand executes one typed command and returns a follow-up tea.Cmd
// when the command runs in the background.
func (m *Model) processCommand(input string) tea.Cmd {
	parts := strings.Fields(strings.ToLower(input))
	if len(parts) == 0 {
		return nil
	}

	switch parts[0] {
	case "quit", "q", "exit":
		m.quitting = true

	case "new", "n":
		m.cmdNew(parts[1:])

	case "draw", "d":
		m.cmdMove(game.Draw())

	case "move", "m":
		m.cmdParseMove(parts[1:])

	case "hint", "h":
		if _, err := m.game.Hint(); err != nil {
			m.addLog(ErrorStyle.Render(err.Error()))
		}

	case "solve", "s":
		return m.cmdSolve(parts[1:])

	case "moves":
		m.cmdMoves()

	case "rules":
		eco := m.cfg.Economy
		m.addLog(InfoStyle.Render(fmt.Sprintf(
			"One pass through the stock. Entry $%d, $%d per foundation card, $%d win bonus, hints $%d.",
			eco.EntryFee, eco.CardReward, eco.WinBonus, eco.HintFee)))

	case "help", "?":
		m.addLog(InfoStyle.Render("Commands: new <easy|medium|hard> [seed], draw, move <w|t1..t7> <f|t1..t7> [count], hint, solve [exhaustive], moves, rules, quit"))

	default:
		m.addLog(ErrorStyle.Render(fmt.Sprintf("Unknown command %q; try 'help'", parts[0])))
	}
	return nil
}

func (m *Model) cmdNew(args []string) {
	difficultyName := m.cfg.Dealer.Difficulty
	if len(args) > 0 {
		difficultyName = args[0]
	}
	difficulty, err := dealer.ParseDifficulty(difficultyName)
	if err != nil {
		m.addLog(ErrorStyle.Render(err.Error()))
		return
	}

	seed := time.Now().UnixNano()
	if len(args) > 1 {
		seed, err = strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			m.addLog(ErrorStyle.Render(fmt.Sprintf("bad seed %q", args[1])))
			return
		}
	}
	strategy, err := config.ParseStrategy(m.cfg.Dealer.Strategy)
	if err != nil {
		m.addLog(ErrorStyle.Render(err.Error()))
		return
	}

	err = m.game.NewDeal(dealer.Options{
		Difficulty: difficulty,
		Seed:       seed,
		Strategy:   strategy,
		MaxRetries: m.cfg.Dealer.MaxRetries,
	})
	if err != nil {
		m.addLog(ErrorStyle.Render("Deal failed: " + err.Error()))
	}
}

func (m *Model) cmdParseMove(args []string) {
	if len(args) < 2 {
		m.addLog(ErrorStyle.Render("Usage: move <w|t1..t7> <f|f1..f4|t1..t7> [count]"))
		return
	}
	if m.game.Board() == nil {
		m.addLog(ErrorStyle.Render("No game in progress"))
		return
	}

	src, err := parsePile(args[0])
	if err != nil {
		m.addLog(ErrorStyle.Render(err.Error()))
		return
	}
	dst, err := parsePile(args[1])
	if err != nil {
		m.addLog(ErrorStyle.Render(err.Error()))
		return
	}

	count := 0
	if len(args) > 2 {
		count, err = strconv.Atoi(args[2])
		if err != nil {
			m.addLog(ErrorStyle.Render(fmt.Sprintf("bad card count %q", args[2])))
			return
		}
	}

	move, err := buildMove(m.game.Board(), src, dst, count)
	if err != nil {
		m.addLog(ErrorStyle.Render(err.Error()))
		return
	}
	m.cmdMove(move)
}

func (m *Model) cmdMove(move game.Move) {
	desc := ""
	if b := m.game.Board(); b != nil {
		desc = b.Describe(move)
	}
	res, err := m.game.Apply(move)
	if err != nil {
		m.addLog(ErrorStyle.Render(err.Error()))
		return
	}
	line := desc
	if res.EconomyDelta != 0 {
		line += BankStyle.Render(fmt.Sprintf("  +$%d", res.EconomyDelta))
	}
	m.addLog(line)
}

func (m *Model) cmdMoves() {
	moves := m.game.LegalMoves()
	if len(moves) == 0 {
		m.addLog(InfoStyle.Render("No legal moves"))
		return
	}
	b := m.game.Board()
	for _, mv := range moves {
		m.addLog(InfoStyle.Render("  " + b.Describe(mv)))
	}
}

func (m *Model) cmdSolve(args []string) tea.Cmd {
	if m.solving {
		m.addLog(InfoStyle.Render("Solver already running"))
		return nil
	}
	mode := solver.Heuristic
	if len(args) > 0 && args[0] == "exhaustive" {
		mode = solver.Exhaustive
	}
	if m.game.Board() == nil {
		m.addLog(ErrorStyle.Render("No game in progress"))
		return nil
	}

	m.solving = true
	m.addLog(InfoStyle.Render("Consulting the oracle..."))
	board := m.game.Snapshot()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
		defer cancel()
		return solveResultMsg{result: solver.Check(ctx, board, mode, solveBudget)}
	}
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := HeaderStyle.Render(fmt.Sprintf(" Vegas Solitaire  Bank: $%d  [%s] ", m.game.Bank(), m.game.Phase()))

	board := RenderBoard(m.game.Board())

	inputPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#04B575")).
		Width(max(m.width-2, 1)).
		Render(m.actionInput.View())

	logHeight := m.height - lipgloss.Height(header) - lipgloss.Height(board) - lipgloss.Height(inputPane) - 2
	if logHeight < 1 {
		logHeight = 1
	}
	m.logViewport.Width = max(m.width-2, 1)
	m.logViewport.Height = logHeight
	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(max(m.width-2, 1)).
		Render(m.logViewport.View())

	return lipgloss.JoinVertical(lipgloss.Top, header, board, logPane, inputPane)
}
