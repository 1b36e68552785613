package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fletchernt/extinction-escape/internal/bonus"
	"github.com/fletchernt/extinction-escape/internal/catalog"
	"github.com/fletchernt/extinction-escape/internal/config"
	"github.com/fletchernt/extinction-escape/internal/prestige"
	"github.com/fletchernt/extinction-escape/internal/telemetry"
)

// testCatalog keeps the numbers round: one unit producing exactly 1/s, and
// no events so ticks stay deterministic.
func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Units: []catalog.UnitType{
			{Name: "Crew", BaseCost: 50, BaseRate: 60, CostMult: 1.15},
		},
		Upgrades: []catalog.UpgradeType{
			{Name: "Scopes", Effect: bonus.EffectRate, Value: 0.10, BaseCost: 100, CostMult: 1.5},
			{Name: "Tires", Effect: bonus.EffectTime, Value: 0.05, BaseCost: 100, CostMult: 1.5},
		},
		Species: []catalog.Species{
			{Name: "Sea Turtle", Effect: bonus.EffectRate, Value: 0.03},
			{Name: "Red Panda", Effect: bonus.EffectTime, Value: 0.02},
		},
		Missions: []catalog.MissionSpec{
			{Name: "Hatchling Watch", Duration: 60, BaseRisk: 10, Difficulty: 1.0, Species: "Sea Turtle"},
			{Name: "Forest Sweep", Duration: 90, BaseRisk: 20, Difficulty: 1.0, Species: "Red Panda"},
		},
		Biomes: []catalog.Biome{
			{
				ID: "reef", Name: "Reef", Cost: 2,
				Species:  []catalog.Species{{Name: "Manta", Effect: bonus.EffectAnimals, Value: 0.05}},
				Units:    []catalog.UnitType{{Name: "Dive Team", BaseCost: 500, BaseRate: 120, CostMult: 1.15}},
				Missions: []catalog.MissionSpec{{Name: "Lagoon Sweep", Duration: 120, BaseRisk: 30, Difficulty: 2.0, Species: "Manta"}},
			},
		},
	}
}

func testEngine(t *testing.T) (*Engine, *FakeClock) {
	t.Helper()
	clock := NewFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	rng := rand.New(rand.NewSource(1))
	e := NewEngine(config.Default(), testCatalog(), nil, clock, rng, telemetry.NewMemoryRepository())
	return e, clock
}

func TestNewEngine_StartsFirstMission(t *testing.T) {
	e, _ := testEngine(t)

	v := e.View()
	assert.Equal(t, "Hatchling Watch", v.Mission.Name)
	assert.True(t, v.Mission.Run.Active)
	assert.Equal(t, 10.0, v.Mission.Run.Total)
	assert.Equal(t, 60.0, v.Mission.Run.TimeLeft)
	assert.NotEmpty(t, v.PlayerID)
}

func TestTick_ProducesAndDepletes(t *testing.T) {
	e, _ := testEngine(t)
	e.Export(func(st *State) {
		st.Economy.Coins = 50
	})
	require.True(t, e.PurchaseUnit(0))

	res := e.Tick()
	assert.InDelta(t, 1.0, res.Produced, 1e-9)
	assert.False(t, res.MissionCompleted)

	v := e.View()
	assert.InDelta(t, 1.0, v.Coins, 1e-9)
	assert.InDelta(t, 1.0, v.AnimalsSaved, 1e-9)
	assert.InDelta(t, 1.0, v.LifetimeAnimalsSaved, 1e-9)
	assert.InDelta(t, 1.0, v.SeasonSaved, 1e-9)
	assert.InDelta(t, 9.0, v.Mission.Run.AtRisk, 1e-9)
	assert.InDelta(t, 59.0, v.Mission.Run.TimeLeft, 1e-9)
}

func TestTick_LongerPeriodConsumesMatchingClock(t *testing.T) {
	clock := NewFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	bal := config.Default()
	bal.TickSeconds = 2
	e := NewEngine(bal, testCatalog(), nil, clock, rand.New(rand.NewSource(1)), telemetry.NewMemoryRepository())

	e.Export(func(st *State) {
		st.Economy.Coins = 50
	})
	require.True(t, e.PurchaseUnit(0))

	res := e.Tick()
	assert.InDelta(t, 2.0, res.Produced, 1e-9, "two seconds of production per tick")

	v := e.View()
	assert.InDelta(t, 58.0, v.Mission.Run.TimeLeft, 1e-9, "two seconds off the mission clock")
	assert.InDelta(t, 8.0, v.Mission.Run.AtRisk, 1e-9)
}

func TestTick_CompletesMissionAndAdvances(t *testing.T) {
	e, _ := testEngine(t)
	e.Export(func(st *State) {
		st.Economy.Coins = 50
	})
	require.True(t, e.PurchaseUnit(0))

	var completed bool
	for i := 0; i < 10; i++ {
		if e.Tick().MissionCompleted {
			completed = true
			break
		}
	}
	require.True(t, completed)

	v := e.View()
	assert.Equal(t, "Forest Sweep", v.Mission.Name, "next mission starts back to back")
	assert.True(t, v.Mission.Run.Active)
	assert.True(t, v.SpeciesSaved[0].Saved, "sea turtle flagged on first completion")
	assert.InDelta(t, 10.0, v.ReserveCounts["Sea Turtle"], 1e-9)
}

func TestTick_MissionTimeoutPaysPartial(t *testing.T) {
	e, _ := testEngine(t)

	// No units, no production: the clock alone finishes the mission.
	var res TickResult
	for i := 0; i < 60; i++ {
		res = e.Tick()
	}
	assert.True(t, res.MissionCompleted)
	assert.Equal(t, 0.0, res.AnimalsSaved, "no risk reduced, nothing earned")

	v := e.View()
	assert.Equal(t, "Forest Sweep", v.Mission.Name)
}

func TestManualRescue_CanCompleteMission(t *testing.T) {
	e, _ := testEngine(t)

	var res TickResult
	for i := 0; i < 10; i++ {
		res = e.ManualRescue()
	}
	assert.True(t, res.MissionCompleted)
	assert.Equal(t, 10.0, res.AnimalsSaved)

	v := e.View()
	// 10 manual clicks plus the mission reward.
	assert.InDelta(t, 20.0, v.AnimalsSaved, 1e-9)
	assert.InDelta(t, 20.0, v.Coins, 1e-9)
	assert.True(t, v.SpeciesSaved[0].Saved)
}

func TestPurchaseUpgrade_FeedsBonusLedger(t *testing.T) {
	e, _ := testEngine(t)
	e.Export(func(st *State) {
		st.Economy.Coins = 200
	})

	require.True(t, e.PurchaseUpgrade(0))
	v := e.View()
	assert.InDelta(t, 0.10, v.Bonuses.Upgrades.Rate, 1e-9)
	assert.InDelta(t, 0.10, v.BonusTotals.Rate, 1e-9)
}

func TestPurchasePermitUpgrade(t *testing.T) {
	e, _ := testEngine(t)
	e.Export(func(st *State) {
		st.Prestige.Grant(3)
	})

	require.True(t, e.PurchasePermitUpgrade(prestige.KindRate))
	assert.False(t, e.PurchasePermitUpgrade(prestige.UpgradeKind("bogus")))

	v := e.View()
	assert.Equal(t, 1, v.PermitUpgrades[prestige.KindRate])
	assert.InDelta(t, 0.10, v.Bonuses.Permits.Rate, 1e-9)
}

func TestPrestige_KeepsAndResets(t *testing.T) {
	e, _ := testEngine(t)
	e.Export(func(st *State) {
		st.Economy.Coins = 5000
		st.AnimalsSaved = 1500
		st.SeasonSaved = 1500
		st.LifetimeAnimalsSaved = 2500
		st.SpeciesSaved["Sea Turtle"] = true
		st.ReserveCounts["Sea Turtle"] = 40
		st.MissionsCompleted["Hatchling Watch"] = 3
		st.ProgressionBonus.Rate = 0.05
	})
	require.True(t, e.PurchaseUnit(0))

	res := e.Prestige()
	assert.Equal(t, 2.0, res.NewPermits)
	assert.Equal(t, 2.0, res.PermitsTotal)
	assert.Equal(t, 1500.0, res.BestSeason)

	v := e.View()
	assert.Equal(t, 0.0, v.Coins)
	assert.Equal(t, 0.0, v.AnimalsSaved)
	assert.Equal(t, 0.0, v.SeasonSaved)
	assert.Equal(t, 2500.0, v.LifetimeAnimalsSaved, "lifetime survives")
	assert.Equal(t, 1500.0, v.BestSeason)
	assert.Equal(t, 0, v.Units[0].Owned)
	assert.Empty(t, v.ReserveCounts)
	assert.False(t, v.SpeciesSaved[0].Saved)
	assert.InDelta(t, 0.05, v.Bonuses.Progression.Rate, 1e-9, "earned progression bonuses survive")
	assert.True(t, v.Mission.Run.Active, "a fresh mission is already running")
	assert.Equal(t, "Hatchling Watch", v.Mission.Name)
}

func TestPrestige_SecondRunEarnsOnlyDelta(t *testing.T) {
	e, _ := testEngine(t)
	e.Export(func(st *State) {
		st.LifetimeAnimalsSaved = 2500
	})
	assert.Equal(t, 2.0, e.Prestige().NewPermits)

	e.Export(func(st *State) {
		st.LifetimeAnimalsSaved = 4100
	})
	res := e.Prestige()
	assert.Equal(t, 2.0, res.NewPermits)
	assert.Equal(t, 4.0, res.PermitsTotal)
}

func TestUnlockBiome(t *testing.T) {
	e, _ := testEngine(t)

	assert.False(t, e.UnlockBiome("reef"), "no permits yet")
	assert.False(t, e.UnlockBiome("atlantis"))

	e.Export(func(st *State) {
		st.Prestige.Grant(2)
	})
	require.True(t, e.UnlockBiome("reef"))

	v := e.View()
	assert.Equal(t, 0.0, v.PermitsAvailable)
	assert.Len(t, v.Units, 2, "biome unit joined the shop")
	assert.Equal(t, "Dive Team", v.Units[1].Name)
	assert.Equal(t, 500.0, v.Units[1].NextCost)

	// Unlocking again is free and changes nothing.
	require.True(t, e.UnlockBiome("reef"))
	assert.Equal(t, 0.0, e.View().PermitsAvailable)
	assert.Len(t, e.View().Units, 2)
}

func TestClaimAchievement(t *testing.T) {
	e, _ := testEngine(t)

	assert.False(t, e.ClaimAchievement("first_unit"), "predicate not met")
	assert.False(t, e.ClaimAchievement("unknown"))

	e.Export(func(st *State) {
		st.Economy.Coins = 50
	})
	require.True(t, e.PurchaseUnit(0))

	require.True(t, e.ClaimAchievement("first_unit"))
	assert.False(t, e.ClaimAchievement("first_unit"), "one-shot")

	v := e.View()
	assert.Equal(t, 25.0, v.Coins, "coin reward landed")
}

func TestClaimQuest_AdvancesLinearly(t *testing.T) {
	e, _ := testEngine(t)

	assert.False(t, e.ClaimQuest(), "step 0 needs 50 coins")

	e.Export(func(st *State) {
		st.Economy.Coins = 50
	})
	require.True(t, e.ClaimQuest())

	v := e.View()
	require.NotNil(t, v.Quest)
	assert.Equal(t, "q_first_unit", v.Quest.ID)
	assert.Equal(t, 75.0, v.Coins, "step reward added")

	// Next step needs a unit; buying one makes it claimable.
	require.True(t, e.PurchaseUnit(0))
	require.True(t, e.ClaimQuest())
	assert.InDelta(t, 0.05, e.View().Bonuses.Progression.Rate, 1e-9)
}

func TestQuestPermitReward_GrantsSideChannel(t *testing.T) {
	e, _ := testEngine(t)
	e.Export(func(st *State) {
		st.QuestStep = 4 // q_fifty_saved, rewards one permit
		st.AnimalsSaved = 60
	})

	require.True(t, e.ClaimQuest())
	v := e.View()
	assert.Equal(t, 1.0, v.PermitsAvailable)
	assert.Equal(t, 1.0, v.PermitsTotal)
}

func TestRestoredState_ResumesMission(t *testing.T) {
	clock := NewFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	rng := rand.New(rand.NewSource(1))
	st := NewState()
	st.Run.Index = 1
	st.Run.Active = true
	st.Run.TimeLeft = 30
	st.Run.Total = 20
	st.Run.AtRisk = 5

	e := NewEngine(config.Default(), testCatalog(), st, clock, rng, nil)
	v := e.View()
	assert.Equal(t, "Forest Sweep", v.Mission.Name)
	assert.Equal(t, 5.0, v.Mission.Run.AtRisk, "an in-flight run is not restarted")
}

func TestRestoredState_ReplaysBiomeUnlocks(t *testing.T) {
	clock := NewFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	st := NewState()
	st.BiomesUnlocked["reef"] = true

	e := NewEngine(config.Default(), testCatalog(), st, clock, rand.New(rand.NewSource(1)), nil)
	v := e.View()
	assert.Len(t, v.Units, 2)
	assert.Len(t, v.SpeciesSaved, 3)
}

func TestTick_RollsWorldEvent(t *testing.T) {
	cat := testCatalog()
	cat.Events = []catalog.EventSpec{
		{ID: "ev_drive", Name: "Donation Drive", RateBonus: 0.25, Duration: time.Hour},
	}
	clock := NewFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	e := NewEngine(config.Default(), cat, nil, clock, rand.New(rand.NewSource(1)), nil)

	res := e.Tick()
	assert.True(t, res.EventRolled)

	v := e.View()
	require.NotNil(t, v.Event)
	assert.Equal(t, "ev_drive", v.Event.ID)
	assert.InDelta(t, 0.25, v.Bonuses.Events.Rate, 1e-9)

	// Still running an hour minus a second later.
	clock.Advance(time.Hour - time.Second)
	assert.False(t, e.Tick().EventRolled)

	// Expired: the next tick rolls a replacement.
	clock.Advance(2 * time.Second)
	assert.True(t, e.Tick().EventRolled)
}

func TestView_TimeReducedUsesCap(t *testing.T) {
	e, _ := testEngine(t)
	e.Export(func(st *State) {
		st.ProgressionBonus.Time = 2.0
	})
	v := e.View()
	assert.InDelta(t, 0.9, v.TimeReduced, 1e-9)
}
