package game

import (
	"time"

	"github.com/fletchernt/extinction-escape/internal/bonus"
	"github.com/fletchernt/extinction-escape/internal/mission"
	"github.com/fletchernt/extinction-escape/internal/prestige"
	"github.com/fletchernt/extinction-escape/internal/progression"
)

// View is the read-only snapshot rendering clients consume. They invoke the
// engine's action operations and nothing else.
type View struct {
	PlayerID string `json:"player_id"`

	Coins                float64 `json:"coins"`
	AnimalsSaved         float64 `json:"animals_saved"`
	LifetimeAnimalsSaved float64 `json:"lifetime_animals_saved"`
	SeasonSaved          float64 `json:"season_saved"`
	BestSeason           float64 `json:"best_season"`
	RescuePerSecond      float64 `json:"rescue_per_second"`

	Units    []ShopItemView `json:"units"`
	Upgrades []ShopItemView `json:"upgrades"`

	Bonuses      bonus.Sources `json:"bonuses"`
	BonusTotals  bonus.Values  `json:"bonus_totals"`
	TimeReduced  float64       `json:"time_reduced"`
	Mission      MissionView   `json:"mission"`
	SpeciesSaved []SpeciesView `json:"species"`

	PermitsTotal     float64                      `json:"permits_total"`
	PermitsAvailable float64                      `json:"permits_available"`
	PermitShop       []PermitShopView             `json:"permit_shop"`
	ReserveSlots     int                          `json:"reserve_slots"`
	ReserveCounts    map[string]float64           `json:"reserve_counts"`
	Achievements     []AchievementView            `json:"achievements"`
	Quest            *QuestView                   `json:"quest,omitempty"`
	Biomes           []BiomeView                  `json:"biomes"`
	Event            *EventView                   `json:"event,omitempty"`
	PermitUpgrades   map[prestige.UpgradeKind]int `json:"permit_upgrades"`
}

type ShopItemView struct {
	Name     string  `json:"name"`
	Owned    int     `json:"owned"`
	NextCost float64 `json:"next_cost"`
}

type MissionView struct {
	Name        string      `json:"name"`
	Species     string      `json:"species"`
	Run         mission.Run `json:"run"`
	EffectiveOK bool        `json:"active"`
}

type SpeciesView struct {
	Name  string `json:"name"`
	Saved bool   `json:"saved"`
	Blurb string `json:"blurb"`
}

type PermitShopView struct {
	Kind     prestige.UpgradeKind `json:"kind"`
	Label    string               `json:"label"`
	Owned    int                  `json:"owned"`
	NextCost float64              `json:"next_cost"`
}

type AchievementView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Complete bool   `json:"complete"`
	Claimed  bool   `json:"claimed"`
}

type QuestView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Blurb    string `json:"blurb"`
	Step     int    `json:"step"`
	Complete bool   `json:"complete"`
}

type BiomeView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
	Unlocked bool    `json:"unlocked"`
}

type EventView struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	EndTime time.Time `json:"end_time"`
}

// View assembles the full read-only snapshot.
func (e *Engine) View() View {
	e.mu.Lock()
	defer e.mu.Unlock()

	src := e.bonuses()
	totals := src.Totals()
	st := e.st

	v := View{
		PlayerID:             st.PlayerID,
		Coins:                st.Economy.Coins,
		AnimalsSaved:         st.AnimalsSaved,
		LifetimeAnimalsSaved: st.LifetimeAnimalsSaved,
		SeasonSaved:          st.SeasonSaved,
		BestSeason:           st.BestSeason,
		RescuePerSecond:      st.Economy.RatePerSecond(e.cat, src.RateMultiplier()),
		Bonuses:              src,
		BonusTotals:          totals,
		TimeReduced:          1 - src.Duration(1),
		PermitsTotal:         st.Prestige.PermitsTotal,
		PermitsAvailable:     st.Prestige.PermitsAvailable,
		ReserveSlots:         st.Prestige.ReserveSlots(e.shop, e.cfg.BaseReserveSlots),
		ReserveCounts:        map[string]float64{},
		PermitUpgrades:       map[prestige.UpgradeKind]int{},
	}
	for name, n := range st.ReserveCounts {
		v.ReserveCounts[name] = n
	}
	for kind, n := range st.Prestige.Upgrades {
		v.PermitUpgrades[kind] = n
	}

	for i, u := range e.cat.Units {
		v.Units = append(v.Units, ShopItemView{Name: u.Name, Owned: st.Economy.UnitCounts[i], NextCost: st.Economy.UnitNextCost[i]})
	}
	for i, u := range e.cat.Upgrades {
		v.Upgrades = append(v.Upgrades, ShopItemView{Name: u.Name, Owned: st.Economy.UpgradeCounts[i], NextCost: st.Economy.UpgradeNextCost[i]})
	}

	if spec, ok := st.Run.Spec(e.cat); ok {
		v.Mission = MissionView{Name: spec.Name, Species: spec.Species, Run: st.Run, EffectiveOK: st.Run.Active}
	}

	for _, sp := range e.cat.Species {
		v.SpeciesSaved = append(v.SpeciesSaved, SpeciesView{Name: sp.Name, Saved: st.SpeciesSaved[sp.Name], Blurb: sp.Blurb})
	}

	for _, spec := range e.shop {
		v.PermitShop = append(v.PermitShop, PermitShopView{
			Kind:     spec.Kind,
			Label:    spec.Label,
			Owned:    st.Prestige.Upgrades[spec.Kind],
			NextCost: st.Prestige.NextCost(spec),
		})
	}

	stats := e.stats()
	for _, a := range progression.Achievements() {
		v.Achievements = append(v.Achievements, AchievementView{
			ID:       a.ID,
			Title:    a.Title,
			Complete: a.Check(stats),
			Claimed:  st.AchievementsClaimed[a.ID],
		})
	}

	if steps := progression.Questline(); st.QuestStep >= 0 && st.QuestStep < len(steps) {
		step := steps[st.QuestStep]
		v.Quest = &QuestView{
			ID:       step.ID,
			Title:    step.Title,
			Blurb:    step.Blurb,
			Step:     st.QuestStep,
			Complete: step.Check(stats),
		}
	}

	for _, b := range e.cat.Biomes {
		v.Biomes = append(v.Biomes, BiomeView{ID: b.ID, Name: b.Name, Cost: b.Cost, Unlocked: st.BiomesUnlocked[b.ID]})
	}

	if !st.Event.Expired(e.clock.Now()) {
		v.Event = &EventView{ID: st.Event.ID, Name: st.Event.Name, EndTime: st.Event.EndTime}
	}

	return v
}
