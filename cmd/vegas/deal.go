package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/vxco/vegas/cmd/vegas/shared"
	"github.com/vxco/vegas/internal/config"
	"github.com/vxco/vegas/internal/dealer"
	"github.com/vxco/vegas/internal/deck"
	"github.com/vxco/vegas/internal/engine"
	"github.com/vxco/vegas/internal/game"
	"github.com/vxco/vegas/internal/solver"
)

// DealCmd generates a deal and prints it
type DealCmd struct {
	Difficulty string `kong:"default='medium',help='Deal difficulty (easy, medium, hard)'"`
	Seed       *int64 `kong:"help='Deterministic deal seed (optional)'"`
	Strategy   string `kong:"default='constructive',help='Deal strategy (constructive, verify)'"`
	Check      bool   `kong:"help='Run the heuristic oracle on the result'"`
	ShowStock  bool   `kong:"name='show-stock',help='Print the hidden stock order'"`
	Rules      bool   `kong:"help='Print the wagering rules and exit'"`
	Debug      bool   `kong:"help='Enable debug logging'"`
}

func (c *DealCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	if c.Rules {
		eco := engine.DefaultEconomy()
		fmt.Println("Vegas scoring, one pass through the stock:")
		fmt.Printf("  Entry fee           $%d\n", eco.EntryFee)
		fmt.Printf("  Per foundation card $%d\n", eco.CardReward)
		fmt.Printf("  Win bonus           $%d\n", eco.WinBonus)
		fmt.Printf("  Hint fee            $%d\n", eco.HintFee)
		return nil
	}

	difficulty, err := dealer.ParseDifficulty(c.Difficulty)
	if err != nil {
		return err
	}
	strategy, err := config.ParseStrategy(c.Strategy)
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	board, err := dealer.Generate(dealer.Options{
		Difficulty: difficulty,
		Seed:       seed,
		Strategy:   strategy,
	})
	if err != nil {
		return err
	}

	logger.Info("dealt", "difficulty", difficulty, "seed", seed)
	printBoard(board, c.ShowStock)

	if c.Check {
		res := solver.Check(context.Background(), board, solver.Heuristic, 0)
		fmt.Printf("\nOracle verdict: %s\n", res.Verdict)
	}
	return nil
}

var output = termenv.NewOutput(os.Stdout)

// colorCard renders a card with ANSI colors when the terminal supports them
func colorCard(c deck.Card) string {
	s := fmt.Sprintf("%4s", c.String())
	if c.IsRed() {
		return output.String(s).Foreground(output.Color("9")).String()
	}
	return output.String(s).Bold().String()
}

func printBoard(b *game.Board, showStock bool) {
	fmt.Printf("Stock: %d cards  Waste: empty\n\n", len(b.Stock))

	for i, col := range b.Tableau {
		fmt.Printf("t%d: ", i+1)
		fmt.Print(strings.Repeat(" [##]", len(col.Down)))
		for _, card := range col.Up {
			fmt.Print(" " + colorCard(card))
		}
		fmt.Println()
	}

	if showStock {
		fmt.Println("\nStock, in draw order:")
		for i := len(b.Stock) - 1; i >= 0; i-- {
			fmt.Print(" " + colorCard(b.Stock[i]))
		}
		fmt.Println()
	}
}
