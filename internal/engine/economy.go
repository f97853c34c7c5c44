package engine

// EconomyConfig holds the wagering amounts. All values are positive; the
// tracker applies the sign.
type EconomyConfig struct {
	EntryFee   int
	CardReward int
	WinBonus   int
	HintFee    int
}

// DefaultEconomy returns the house rules: $52 a game, $5 per foundation
// card, $100 for a win, $5 for a hint.
func DefaultEconomy() EconomyConfig {
	return EconomyConfig{
		EntryFee:   52,
		CardReward: 5,
		WinBonus:   100,
		HintFee:    5,
	}
}

// economy tracks the player's running balance across deals. The bank starts
// at zero and routinely goes negative: the entry fee is charged up front
// and won back card by card.
type economy struct {
	cfg  EconomyConfig
	bank int
}

func newEconomy(cfg EconomyConfig) *economy {
	return &economy{cfg: cfg}
}

// Bank returns the current balance
func (e *economy) Bank() int { return e.bank }

// chargeEntry debits the per-game fee and returns the delta
func (e *economy) chargeEntry() int {
	e.bank -= e.cfg.EntryFee
	return -e.cfg.EntryFee
}

// rewardCard credits one foundation placement and returns the delta
func (e *economy) rewardCard() int {
	e.bank += e.cfg.CardReward
	return e.cfg.CardReward
}

// winBonus credits the flat win bonus and returns the delta
func (e *economy) winBonus() int {
	e.bank += e.cfg.WinBonus
	return e.cfg.WinBonus
}

// chargeHint debits the hint fee and returns the delta
func (e *economy) chargeHint() int {
	e.bank -= e.cfg.HintFee
	return -e.cfg.HintFee
}
