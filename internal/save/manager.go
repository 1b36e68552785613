package save

import (
	"encoding/json"
	"log"
	"time"

	"github.com/fletchernt/extinction-escape/internal/catalog"
	"github.com/fletchernt/extinction-escape/internal/config"
	"github.com/fletchernt/extinction-escape/internal/game"
	"github.com/fletchernt/extinction-escape/internal/prestige"
)

// Exporter yields a consistent view of the live state for capture. The game
// engine satisfies it.
type Exporter interface {
	Export(fn func(*game.State))
}

// Manager is the sole authority for serialize/deserialize. Failures degrade:
// a corrupt save loads as a fresh start, a broken store leaves the session
// playing in memory.
type Manager struct {
	store  Store
	cfg    config.Balance
	clock  game.Clock
	logger *log.Logger
}

func NewManager(store Store, cfg config.Balance, clock game.Clock, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{store: store, cfg: cfg, clock: clock, logger: logger}
}

// LoadResult reports what happened during restore.
type LoadResult struct {
	Fresh          bool    `json:"fresh"`
	OfflineSeconds float64 `json:"offline_seconds"`
	OfflineCredit  float64 `json:"offline_credit"`
	DailyBonus     float64 `json:"daily_bonus"`
}

// Load restores the saved state, applies the clamped offline catch-up and
// the once-per-day bonus. Any failure falls back to a fresh state.
func (m *Manager) Load(cat *catalog.Catalog) (*game.State, LoadResult) {
	now := m.clock.Now()

	data, ok, err := m.store.Get()
	if err != nil {
		m.logger.Printf("save: load failed, starting fresh: %v", err)
		return game.NewState(), LoadResult{Fresh: true}
	}
	if !ok {
		return game.NewState(), LoadResult{Fresh: true}
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		m.logger.Printf("save: corrupt snapshot, starting fresh: %v", err)
		return game.NewState(), LoadResult{Fresh: true}
	}

	st := snap.Restore(cat, now)
	res := LoadResult{}

	// Offline catch-up: one lump of production at the restored state's
	// rate, clamped to the catch-up window. Everything the snapshot knew
	// about is already restored at this point.
	if snap.LastSave > 0 {
		elapsed := now.Sub(time.UnixMilli(snap.LastSave))
		window := time.Duration(m.cfg.OfflineCapHours) * time.Hour
		if elapsed > window {
			elapsed = window
		}
		if elapsed > 0 {
			rate := st.RescuePerSecond(cat, prestige.DefaultShop(), now)
			credit := rate * elapsed.Seconds()
			st.Economy.Coins += credit
			st.AnimalsSaved += credit
			st.LifetimeAnimalsSaved += credit
			st.SeasonSaved += credit
			if st.SeasonSaved > st.BestSeason {
				st.BestSeason = st.SeasonSaved
			}
			res.OfflineSeconds = elapsed.Seconds()
			res.OfflineCredit = credit
		}
	}

	// Daily bonus: once per local calendar day, independent of catch-up.
	if today := DateStamp(now); st.LastDailyBonus != today {
		st.LastDailyBonus = today
		st.Economy.Coins += m.cfg.DailyBonusCoins
		res.DailyBonus = m.cfg.DailyBonusCoins
	}

	return st, res
}

// Save captures and persists the full state graph. Storage errors are
// logged, not fatal; gameplay continues in memory.
func (m *Manager) Save(src Exporter) error {
	var snap Snapshot
	src.Export(func(st *game.State) {
		snap = Capture(st, m.clock.Now())
	})
	data, err := json.Marshal(snap)
	if err != nil {
		m.logger.Printf("save: marshal failed: %v", err)
		return err
	}
	if err := m.store.Put(data); err != nil {
		m.logger.Printf("save: store write failed: %v", err)
		return err
	}
	return nil
}

// DateStamp is the timezone-qualified calendar-day key used for the daily
// bonus comparison.
func DateStamp(t time.Time) string {
	return t.Format("2006-01-02 MST")
}
