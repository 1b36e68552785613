package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration file.
type Config struct {
	Addr    string        `yaml:"addr" json:"addr"`
	DataDir string        `yaml:"data_dir" json:"data_dir"`
	Balance BalanceYAML   `yaml:"balance" json:"balance"`
	Limits  RequestLimits `yaml:"limits" json:"limits"`
}

// BalanceYAML mirrors Balance for the config file; zero values fall back to
// the compiled defaults.
type BalanceYAML struct {
	TickSeconds      int     `yaml:"tick_seconds" json:"tick_seconds"`
	DifficultyMult   float64 `yaml:"difficulty_mult" json:"difficulty_mult"`
	PermitDivisor    float64 `yaml:"permit_divisor" json:"permit_divisor"`
	OfflineCapHours  int     `yaml:"offline_cap_hours" json:"offline_cap_hours"`
	DailyBonusCoins  float64 `yaml:"daily_bonus_coins" json:"daily_bonus_coins"`
	AutosaveSeconds  int     `yaml:"autosave_seconds" json:"autosave_seconds"`
	BaseReserveSlots int     `yaml:"base_reserve_slots" json:"base_reserve_slots"`
}

// RequestLimits configures the API rate limiter.
type RequestLimits struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	Burst             int     `yaml:"burst" json:"burst"`
}

func (c *Config) ApplyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8797"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.Limits.RequestsPerSecond == 0 {
		c.Limits.RequestsPerSecond = 20
	}
	if c.Limits.Burst == 0 {
		c.Limits.Burst = 40
	}
}

// EffectiveBalance overlays the file's balance section on the env/compiled
// defaults.
func (c *Config) EffectiveBalance() Balance {
	b := FromEnv()
	y := c.Balance
	if y.TickSeconds > 0 {
		b.TickSeconds = y.TickSeconds
	}
	if y.DifficultyMult > 0 {
		b.DifficultyMult = y.DifficultyMult
	}
	if y.PermitDivisor > 0 {
		b.PermitDivisor = y.PermitDivisor
	}
	if y.OfflineCapHours > 0 {
		b.OfflineCapHours = y.OfflineCapHours
	}
	if y.DailyBonusCoins > 0 {
		b.DailyBonusCoins = y.DailyBonusCoins
	}
	if y.AutosaveSeconds > 0 {
		b.AutosaveSeconds = y.AutosaveSeconds
	}
	if y.BaseReserveSlots > 0 {
		b.BaseReserveSlots = y.BaseReserveSlots
	}
	return b
}

// Load reads a YAML config file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			c.ApplyDefaults()
			return &c, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	return &c, nil
}
