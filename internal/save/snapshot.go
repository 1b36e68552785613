package save

import (
	"time"

	"github.com/fletchernt/extinction-escape/internal/bonus"
	"github.com/fletchernt/extinction-escape/internal/catalog"
	"github.com/fletchernt/extinction-escape/internal/game"
	"github.com/fletchernt/extinction-escape/internal/mission"
	"github.com/fletchernt/extinction-escape/internal/prestige"
	"github.com/fletchernt/extinction-escape/internal/worldevent"
)

// Snapshot is the full persisted state document: versionless JSON with
// safe defaults for anything missing, so older saves keep loading as the
// schema grows.
type Snapshot struct {
	PlayerID string `json:"playerId"`

	Coins        float64 `json:"coins"`
	AnimalsSaved float64 `json:"animalsSaved"`
	// Pointer so an older save without the field falls back to AnimalsSaved.
	LifetimeAnimalsSaved *float64 `json:"lifetimeAnimalsSaved,omitempty"`
	SeasonSaved          float64  `json:"seasonAnimalsSaved"`
	BestSeason           float64  `json:"bestSeasonTotal"`

	UnitCounts      []int        `json:"unitCounts"`
	UnitNextCost    []float64    `json:"unitNextCost"`
	UpgradeCounts   []int        `json:"upgradeCounts"`
	UpgradeNextCost []float64    `json:"upgradeNextCost"`
	GlobalBonus     bonus.Values `json:"globalBonus"`

	SpeciesSaved      map[string]bool    `json:"speciesSaved"`
	ReserveCounts     map[string]float64 `json:"reserveCounts"`
	MissionsCompleted map[string]int     `json:"tasksCompleted"`

	Run mission.Run `json:"missionRun"`

	PermitsTotal     float64                      `json:"permitsTotal"`
	PermitsAvailable float64                      `json:"permitsAvailable"`
	PermitUpgrades   map[prestige.UpgradeKind]int `json:"permitUpgrades"`
	Prestiges        int                          `json:"prestiges"`

	AchievementsClaimed map[string]bool `json:"achievementsCompleted"`
	QuestStep           int             `json:"questStep"`
	ProgressionBonus    bonus.Values    `json:"progressionBonus"`

	BiomesUnlocked map[string]bool `json:"biomesUnlocked"`

	ActiveEvent *worldevent.Active `json:"activeEvent"`

	LastSave       int64  `json:"lastSave"`
	LastDailyBonus string `json:"lastDailyBonusDate"`
}

// Capture serializes the state graph. LastSave is epoch milliseconds.
func Capture(st *game.State, now time.Time) Snapshot {
	lifetime := st.LifetimeAnimalsSaved
	return Snapshot{
		PlayerID:             st.PlayerID,
		Coins:                st.Economy.Coins,
		AnimalsSaved:         st.AnimalsSaved,
		LifetimeAnimalsSaved: &lifetime,
		SeasonSaved:          st.SeasonSaved,
		BestSeason:           st.BestSeason,
		UnitCounts:           append([]int(nil), st.Economy.UnitCounts...),
		UnitNextCost:         append([]float64(nil), st.Economy.UnitNextCost...),
		UpgradeCounts:        append([]int(nil), st.Economy.UpgradeCounts...),
		UpgradeNextCost:      append([]float64(nil), st.Economy.UpgradeNextCost...),
		GlobalBonus:          st.Economy.Global,
		SpeciesSaved:         copyBoolMap(st.SpeciesSaved),
		ReserveCounts:        copyFloatMap(st.ReserveCounts),
		MissionsCompleted:    copyIntMap(st.MissionsCompleted),
		Run:                  st.Run,
		PermitsTotal:         st.Prestige.PermitsTotal,
		PermitsAvailable:     st.Prestige.PermitsAvailable,
		PermitUpgrades:       copyKindMap(st.Prestige.Upgrades),
		Prestiges:            st.Prestiges,
		AchievementsClaimed:  copyBoolMap(st.AchievementsClaimed),
		QuestStep:            st.QuestStep,
		ProgressionBonus:     st.ProgressionBonus,
		BiomesUnlocked:       copyBoolMap(st.BiomesUnlocked),
		ActiveEvent:          st.Event,
		LastSave:             now.UnixMilli(),
		LastDailyBonus:       st.LastDailyBonus,
	}
}

// Restore rebuilds a state from the snapshot. Order is fixed: unlocked
// biomes are merged into the catalogs first, then ownership arrays are
// resized against the extended catalogs and next costs re-derived from the
// cost curve, then scalars and flags land, and finally an expired active
// event is dropped. The offline credit happens after all of this, in the
// manager, so the catch-up rate sees every restored bonus source.
func (s Snapshot) Restore(cat *catalog.Catalog, now time.Time) *game.State {
	st := game.NewState()
	if s.PlayerID != "" {
		st.PlayerID = s.PlayerID
	}

	for id, ok := range s.BiomesUnlocked {
		if !ok {
			continue
		}
		if b, found := cat.BiomeByID(id); found {
			cat.ApplyBiome(b)
		}
		st.BiomesUnlocked[id] = true
	}

	st.Economy.UnitCounts = append([]int(nil), s.UnitCounts...)
	st.Economy.UpgradeCounts = append([]int(nil), s.UpgradeCounts...)
	st.Economy.Coins = s.Coins
	st.Economy.Global = s.GlobalBonus
	st.Economy.Resize(cat)

	st.AnimalsSaved = s.AnimalsSaved
	if s.LifetimeAnimalsSaved != nil {
		st.LifetimeAnimalsSaved = *s.LifetimeAnimalsSaved
	} else {
		// Pre-lifetime schema: the run total is the best information we have.
		st.LifetimeAnimalsSaved = s.AnimalsSaved
	}
	st.SeasonSaved = s.SeasonSaved
	st.BestSeason = s.BestSeason

	for k, v := range s.SpeciesSaved {
		st.SpeciesSaved[k] = v
	}
	for k, v := range s.ReserveCounts {
		st.ReserveCounts[k] = v
	}
	for k, v := range s.MissionsCompleted {
		st.MissionsCompleted[k] = v
	}

	st.Run = s.Run
	if st.Run.AtRisk < 0 {
		st.Run.AtRisk = 0
	}
	if st.Run.AtRisk > st.Run.Total {
		st.Run.AtRisk = st.Run.Total
	}

	st.Prestige.PermitsTotal = s.PermitsTotal
	st.Prestige.PermitsAvailable = s.PermitsAvailable
	for k, v := range s.PermitUpgrades {
		st.Prestige.Upgrades[k] = v
	}
	st.Prestiges = s.Prestiges

	for k, v := range s.AchievementsClaimed {
		st.AchievementsClaimed[k] = v
	}
	st.QuestStep = s.QuestStep
	st.ProgressionBonus = s.ProgressionBonus

	st.Event = s.ActiveEvent
	if st.Event.Expired(now) {
		st.Event = nil
	}

	st.LastDailyBonus = s.LastDailyBonus
	return st
}

func copyBoolMap(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyFloatMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyIntMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyKindMap(m map[prestige.UpgradeKind]int) map[prestige.UpgradeKind]int {
	out := make(map[prestige.UpgradeKind]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
