package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vxco/vegas/cmd/vegas/shared"
	"github.com/vxco/vegas/internal/config"
	"github.com/vxco/vegas/internal/dealer"
	"github.com/vxco/vegas/internal/engine"
	"github.com/vxco/vegas/internal/tui"
)

// PlayCmd starts the interactive terminal game
type PlayCmd struct {
	Config     string `kong:"default='vegas.hcl',help='Path to the configuration file'"`
	Difficulty string `kong:"default='',help='Deal difficulty (easy, medium, hard)'"`
	Seed       *int64 `kong:"help='Deterministic deal seed (optional)'"`
	Debug      bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Difficulty != "" {
		if _, err := dealer.ParseDifficulty(c.Difficulty); err != nil {
			return err
		}
		cfg.Dealer.Difficulty = c.Difficulty
	}

	g := engine.New(engine.Config{Economy: cfg.EconomyConfig()}, logger)
	model := tui.NewModel(g, cfg, logger)

	// Deal up front when a seed was given; otherwise the player types
	// 'new' once the UI is up.
	if c.Seed != nil {
		difficulty, _ := dealer.ParseDifficulty(cfg.Dealer.Difficulty)
		strategy, err := config.ParseStrategy(cfg.Dealer.Strategy)
		if err != nil {
			return err
		}
		err = g.NewDeal(dealer.Options{
			Difficulty: difficulty,
			Seed:       *c.Seed,
			Strategy:   strategy,
			MaxRetries: cfg.Dealer.MaxRetries,
		})
		if err != nil {
			return err
		}
	}

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
