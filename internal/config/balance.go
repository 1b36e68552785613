package config

// Balance holds gameplay balance configuration
type Balance struct {
	// Simulation
	TickSeconds    int     `json:"tick_seconds"`
	DifficultyMult float64 `json:"difficulty_mult"`

	// Prestige
	PermitDivisor float64 `json:"permit_divisor"`

	// Offline catch-up
	OfflineCapHours int `json:"offline_cap_hours"`

	// Daily bonus
	DailyBonusCoins float64 `json:"daily_bonus_coins"`

	// Persistence
	AutosaveSeconds int `json:"autosave_seconds"`

	// Reserve map
	BaseReserveSlots int `json:"base_reserve_slots"`
}

// Default returns the default balance configuration
func Default() Balance {
	return Balance{
		TickSeconds:      1,
		DifficultyMult:   1.0,
		PermitDivisor:    1000,
		OfflineCapHours:  4,
		DailyBonusCoins:  100,
		AutosaveSeconds:  30,
		BaseReserveSlots: 12,
	}
}

// Casual returns easier balance for casual play
func Casual() Balance {
	cfg := Default()
	cfg.DifficultyMult = 0.8
	cfg.OfflineCapHours = 8
	cfg.DailyBonusCoins = 250
	return cfg
}

// Hard returns harder balance for experienced players
func Hard() Balance {
	cfg := Default()
	cfg.DifficultyMult = 1.3
	cfg.OfflineCapHours = 2
	cfg.DailyBonusCoins = 50
	return cfg
}
