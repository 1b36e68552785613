package game

import (
	"github.com/google/uuid"

	"github.com/fletchernt/extinction-escape/internal/bonus"
	"github.com/fletchernt/extinction-escape/internal/economy"
	"github.com/fletchernt/extinction-escape/internal/mission"
	"github.com/fletchernt/extinction-escape/internal/prestige"
	"github.com/fletchernt/extinction-escape/internal/worldevent"
)

// State is the single aggregate of all mutable simulation state. There are
// no ambient globals; mutation goes through Engine operations only and
// persistence captures this whole graph.
type State struct {
	PlayerID string

	// Current-season tallies. Lifetime and BestSeason survive prestige.
	AnimalsSaved         float64
	LifetimeAnimalsSaved float64
	SeasonSaved          float64
	BestSeason           float64

	Economy economy.State

	// Species flips true once, on first completion of a mission naming it.
	SpeciesSaved map[string]bool
	// Reserve population per species name, grown by mission rewards.
	ReserveCounts map[string]float64
	// Completion tally per mission name.
	MissionsCompleted map[string]int

	Run mission.Run

	Prestige  prestige.State
	Prestiges int

	AchievementsClaimed map[string]bool
	QuestStep           int
	// Rate/time/animal values earned from achievement and quest rewards.
	// Survives prestige along with the progress that earned it.
	ProgressionBonus bonus.Values

	BiomesUnlocked map[string]bool

	Event *worldevent.Active

	// Timezone-qualified date string of the last daily bonus grant.
	LastDailyBonus string
}

// NewState returns a fresh first-run state with a minted player id.
func NewState() *State {
	return &State{
		PlayerID:            uuid.NewString(),
		SpeciesSaved:        map[string]bool{},
		ReserveCounts:       map[string]float64{},
		MissionsCompleted:   map[string]int{},
		Prestige:            prestige.New(),
		AchievementsClaimed: map[string]bool{},
		BiomesUnlocked:      map[string]bool{},
	}
}

// EnsureMaps initializes any nil maps, e.g. after restoring an older save.
func (s *State) EnsureMaps() {
	if s.SpeciesSaved == nil {
		s.SpeciesSaved = map[string]bool{}
	}
	if s.ReserveCounts == nil {
		s.ReserveCounts = map[string]float64{}
	}
	if s.MissionsCompleted == nil {
		s.MissionsCompleted = map[string]int{}
	}
	if s.AchievementsClaimed == nil {
		s.AchievementsClaimed = map[string]bool{}
	}
	if s.BiomesUnlocked == nil {
		s.BiomesUnlocked = map[string]bool{}
	}
	if s.Prestige.Upgrades == nil {
		s.Prestige.Upgrades = map[prestige.UpgradeKind]int{}
	}
}
