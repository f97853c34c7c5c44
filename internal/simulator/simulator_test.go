package simulator

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vxco/vegas/internal/dealer"
	"github.com/vxco/vegas/internal/engine"
)

func testConfig(games int) Config {
	return Config{
		Games:      games,
		Difficulty: dealer.Easy,
		Strategy:   dealer.Constructive,
		Seed:       1000,
		Workers:    2,
		Economy:    engine.DefaultEconomy(),
		Logger:     log.New(io.Discard),
	}
}

func TestRunPlaysEveryGame(t *testing.T) {
	count := 0
	cfg := testConfig(6)
	cfg.Workers = 1
	cfg.Progress = func() { count++ }

	results, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}

	if results.Played != 6 {
		t.Errorf("played = %d, want 6", results.Played)
	}
	if count != 6 {
		t.Errorf("progress callbacks = %d, want 6", count)
	}
	if got := results.Wins + results.StockExhausted + results.Stuck; got != results.Played {
		t.Errorf("outcome counts sum to %d, want %d", got, results.Played)
	}
	if results.TotalMoves == 0 {
		t.Error("no moves played across the batch")
	}
}

func TestRunIsReproducible(t *testing.T) {
	a, err := New(testConfig(4)).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(testConfig(4)).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if *a != *b {
		t.Errorf("same seeds produced different results: %+v vs %+v", a, b)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(testConfig(50)).Run(ctx)
	if err == nil {
		t.Error("cancelled run returned no error")
	}
}

func TestRatesOnEmptyResults(t *testing.T) {
	var r Results
	if r.WinRate() != 0 || r.AverageBank() != 0 {
		t.Error("empty results should report zero rates")
	}
}
