package main

import (
	"context"
	"fmt"
	"time"

	"github.com/vxco/vegas/cmd/vegas/shared"
	"github.com/vxco/vegas/internal/config"
	"github.com/vxco/vegas/internal/dealer"
	"github.com/vxco/vegas/internal/solver"
)

// SolveCmd runs the solvability oracle against a generated deal
type SolveCmd struct {
	Difficulty string `kong:"default='medium',help='Deal difficulty (easy, medium, hard)'"`
	Seed       int64  `kong:"required,help='Deterministic deal seed'"`
	Strategy   string `kong:"default='constructive',help='Deal strategy (constructive, verify)'"`
	Mode       string `kong:"default='heuristic',help='Oracle mode (heuristic, exhaustive)'"`
	Budget     int    `kong:"default='0',help='Exhaustive search step budget (0 uses the default)'"`
	TimeoutSec int    `kong:"name='timeout',default='60',help='Exhaustive search timeout in seconds'"`
	Debug      bool   `kong:"help='Enable debug logging'"`
}

func (c *SolveCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	difficulty, err := dealer.ParseDifficulty(c.Difficulty)
	if err != nil {
		return err
	}
	strategy, err := config.ParseStrategy(c.Strategy)
	if err != nil {
		return err
	}

	var mode solver.Mode
	switch c.Mode {
	case "heuristic":
		mode = solver.Heuristic
	case "exhaustive":
		mode = solver.Exhaustive
	default:
		return fmt.Errorf("unknown oracle mode %q", c.Mode)
	}

	board, err := dealer.Generate(dealer.Options{
		Difficulty: difficulty,
		Seed:       c.Seed,
		Strategy:   strategy,
	})
	if err != nil {
		return err
	}

	if c.Debug {
		for _, m := range board.LegalMoves() {
			logger.Debug("legal move", "move", board.Describe(m))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(c.TimeoutSec)*time.Second)
	defer cancel()

	start := time.Now()
	res := solver.Check(ctx, board, mode, c.Budget)
	logger.Info("oracle finished",
		"difficulty", difficulty,
		"seed", c.Seed,
		"mode", c.Mode,
		"steps", res.Steps,
		"elapsed", time.Since(start))

	fmt.Printf("%s\n", res.Verdict)
	return nil
}
