package config

import (
	"os"
	"strconv"
)

// FromEnv loads balance configuration from environment variables.
// Falls back to defaults if variables are not set.
func FromEnv() Balance {
	cfg := Default()

	if val := getEnvInt("TICK_SECONDS"); val > 0 {
		cfg.TickSeconds = val
	}
	if val := getEnvFloat("PERMIT_DIVISOR"); val > 0 {
		cfg.PermitDivisor = val
	}
	if val := getEnvInt("OFFLINE_CAP_HOURS"); val > 0 {
		cfg.OfflineCapHours = val
	}
	if val := getEnvFloat("DAILY_BONUS_COINS"); val > 0 {
		cfg.DailyBonusCoins = val
	}
	if val := getEnvInt("AUTOSAVE_SECONDS"); val > 0 {
		cfg.AutosaveSeconds = val
	}
	if val := getEnvFloat("DIFFICULTY_MULT"); val > 0 {
		cfg.DifficultyMult = val
	}
	if val := getEnvInt("BASE_RESERVE_SLOTS"); val > 0 {
		cfg.BaseReserveSlots = val
	}

	// Support preset modes
	if mode := os.Getenv("DIFFICULTY"); mode != "" {
		switch mode {
		case "casual":
			return Casual()
		case "hard":
			return Hard()
		}
	}

	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func getEnvFloat(key string) float64 {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return num
}
