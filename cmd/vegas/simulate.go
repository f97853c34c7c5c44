package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/pterm/pterm"

	"github.com/vxco/vegas/cmd/vegas/shared"
	"github.com/vxco/vegas/internal/config"
	"github.com/vxco/vegas/internal/dealer"
	"github.com/vxco/vegas/internal/engine"
	"github.com/vxco/vegas/internal/simulator"
)

// SimulateCmd plays many deals automatically and reports statistics
type SimulateCmd struct {
	Games      int    `kong:"default='100',help='Number of games to play'"`
	Difficulty string `kong:"default='medium',help='Deal difficulty (easy, medium, hard)'"`
	Strategy   string `kong:"default='constructive',help='Deal strategy (constructive, verify)'"`
	Seed       int64  `kong:"default='1',help='Base seed; game i uses seed+i'"`
	Workers    int    `kong:"default='0',help='Worker goroutines (0 uses all CPUs)'"`
	Debug      bool   `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	difficulty, err := dealer.ParseDifficulty(c.Difficulty)
	if err != nil {
		return err
	}
	strategy, err := config.ParseStrategy(c.Strategy)
	if err != nil {
		return err
	}
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	progress, err := pterm.DefaultProgressbar.
		WithTotal(c.Games).
		WithTitle(fmt.Sprintf("Simulating %s deals", difficulty)).
		Start()
	if err != nil {
		return err
	}

	sim := simulator.New(simulator.Config{
		Games:      c.Games,
		Difficulty: difficulty,
		Strategy:   strategy,
		Seed:       c.Seed,
		Workers:    workers,
		Economy:    engine.DefaultEconomy(),
		Logger:     logger,
		Progress:   func() { progress.Increment() },
	})

	ctx := shared.SetupSignalHandler()
	start := time.Now()
	results, err := sim.Run(ctx)
	_, _ = progress.Stop()
	if err != nil {
		return err
	}

	avgMoves := 0.0
	if results.Played > 0 {
		avgMoves = float64(results.TotalMoves) / float64(results.Played)
	}

	pterm.DefaultSection.Println("Results")
	err = pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Metric", "Value"},
		{"Games played", fmt.Sprintf("%d", results.Played)},
		{"Wins", fmt.Sprintf("%d (%.1f%%)", results.Wins, results.WinRate()*100)},
		{"Stock exhausted", fmt.Sprintf("%d", results.StockExhausted)},
		{"Stuck", fmt.Sprintf("%d", results.Stuck)},
		{"Cards to foundations", fmt.Sprintf("%d", results.CardsPlayed)},
		{"Average final bank", fmt.Sprintf("$%.2f", results.AverageBank())},
		{"Average moves per game", fmt.Sprintf("%.1f", avgMoves)},
		{"Elapsed", time.Since(start).Round(time.Millisecond).String()},
	}).Render()
	if err != nil {
		return err
	}

	// A negative average bank is the house edge the difficulty is tuned for.
	if results.AverageBank() < 0 {
		pterm.Info.Printfln("House edge: $%.2f per game", -results.AverageBank())
	} else {
		pterm.Success.Printfln("Player edge: $%.2f per game", results.AverageBank())
	}
	return nil
}
