package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vxco/vegas/internal/dealer"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vegas.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.ListenAddress())
	assert.Equal(t, 52, cfg.Economy.EntryFee)
	assert.Equal(t, 5, cfg.Economy.CardReward)
	assert.Equal(t, 100, cfg.Economy.WinBonus)
	assert.Equal(t, 5, cfg.Economy.HintFee)
	assert.Equal(t, "medium", cfg.Dealer.Difficulty)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server {
  port      = 9100
  log_level = "debug"
}

economy {
  hint_fee = 7
}

dealer {
  difficulty = "hard"
  strategy   = "verify"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	// Unset file values keep their defaults.
	assert.Equal(t, "localhost", cfg.Server.Address)
	assert.Equal(t, 52, cfg.Economy.EntryFee)
	assert.Equal(t, 7, cfg.Economy.HintFee)
	assert.Equal(t, "hard", cfg.Dealer.Difficulty)

	strategy, err := ParseStrategy(cfg.Dealer.Strategy)
	require.NoError(t, err)
	assert.Equal(t, dealer.ShuffleAndVerify, strategy)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server {
  port = 9100
}
`)
	t.Setenv("VEGAS_PORT", "9200")
	t.Setenv("VEGAS_DIFFICULTY", "easy")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9200, cfg.Server.Port)
	assert.Equal(t, "easy", cfg.Dealer.Difficulty)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad port", "server {\n  port = 99999\n}\n"},
		{"bad difficulty", "dealer {\n  difficulty = \"nightmare\"\n}\n"},
		{"bad strategy", "dealer {\n  strategy = \"psychic\"\n}\n"},
		{"negative fee", "economy {\n  entry_fee = -1\n}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	_, err := Load(writeConfig(t, "server {\n"))
	assert.Error(t, err)
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    dealer.Strategy
		wantErr bool
	}{
		{"constructive", dealer.Constructive, false},
		{"", dealer.Constructive, false},
		{"verify", dealer.ShuffleAndVerify, false},
		{"shuffle-and-verify", dealer.ShuffleAndVerify, false},
		{"psychic", dealer.Constructive, true},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
