package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, ":8797", cfg.Addr)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 20.0, cfg.Limits.RequestsPerSecond)
	assert.Equal(t, 40, cfg.Limits.Burst)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9000"
data_dir: "/tmp/saves"
balance:
  permit_divisor: 500
  offline_cap_hours: 8
limits:
  requests_per_second: 5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/tmp/saves", cfg.DataDir)
	assert.Equal(t, 5.0, cfg.Limits.RequestsPerSecond)
	assert.Equal(t, 40, cfg.Limits.Burst, "unset fields keep defaults")

	bal := cfg.EffectiveBalance()
	assert.Equal(t, 500.0, bal.PermitDivisor)
	assert.Equal(t, 8, bal.OfflineCapHours)
	assert.Equal(t, 1, bal.TickSeconds, "untouched balance fields stay at defaults")
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PERMIT_DIVISOR", "250")
	t.Setenv("OFFLINE_CAP_HOURS", "12")
	t.Setenv("TICK_SECONDS", "garbage")

	cfg := FromEnv()
	assert.Equal(t, 250.0, cfg.PermitDivisor)
	assert.Equal(t, 12, cfg.OfflineCapHours)
	assert.Equal(t, 1, cfg.TickSeconds, "unparseable values fall back")
}

func TestFromEnv_Presets(t *testing.T) {
	t.Setenv("DIFFICULTY", "casual")
	assert.Equal(t, Casual(), FromEnv())

	t.Setenv("DIFFICULTY", "hard")
	assert.Equal(t, Hard(), FromEnv())

	t.Setenv("DIFFICULTY", "unknown")
	assert.Equal(t, Default(), FromEnv())
}

func TestBalancePresets(t *testing.T) {
	assert.Less(t, Casual().DifficultyMult, Default().DifficultyMult)
	assert.Greater(t, Hard().DifficultyMult, Default().DifficultyMult)
	assert.Greater(t, Casual().OfflineCapHours, Hard().OfflineCapHours)
}
