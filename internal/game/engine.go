package game

import (
	"math/rand"
	"sync"

	"github.com/fletchernt/extinction-escape/internal/bonus"
	"github.com/fletchernt/extinction-escape/internal/catalog"
	"github.com/fletchernt/extinction-escape/internal/config"
	"github.com/fletchernt/extinction-escape/internal/mission"
	"github.com/fletchernt/extinction-escape/internal/prestige"
	"github.com/fletchernt/extinction-escape/internal/progression"
	"github.com/fletchernt/extinction-escape/internal/telemetry"
	"github.com/fletchernt/extinction-escape/internal/worldevent"
)

// Engine owns the simulation state and is the only writer. All operations
// run atomically under one lock, so a user action never interleaves with a
// tick mid-mutation.
type Engine struct {
	mu sync.Mutex

	cfg    config.Balance
	cat    *catalog.Catalog
	shop   []prestige.UpgradeSpec
	st     *State
	clock  Clock
	rng    *rand.Rand
	events telemetry.Repository
}

func NewEngine(cfg config.Balance, cat *catalog.Catalog, st *State, clock Clock, rng *rand.Rand, events telemetry.Repository) *Engine {
	if st == nil {
		st = NewState()
	}
	st.EnsureMaps()
	e := &Engine{
		cfg:    cfg,
		cat:    cat,
		shop:   prestige.DefaultShop(),
		st:     st,
		clock:  clock,
		rng:    rng,
		events: events,
	}
	// Replay unlocked biomes so a restored save sees its extended catalogs.
	for id, ok := range st.BiomesUnlocked {
		if !ok {
			continue
		}
		if b, found := cat.BiomeByID(id); found {
			cat.ApplyBiome(b)
		}
	}
	st.Economy.Resize(cat)
	if !st.Run.Active {
		e.startMission()
	}
	return e
}

func (e *Engine) bonuses() bonus.Sources {
	return e.st.BonusSources(e.cat, e.shop, e.clock.Now())
}

// TickResult summarizes one simulation step.
type TickResult struct {
	Produced         float64 `json:"produced"`
	MissionCompleted bool    `json:"mission_completed"`
	AnimalsSaved     float64 `json:"animals_saved"`
	EventRolled      bool    `json:"event_rolled"`
}

// Tick advances the simulation by one period: produce, deplete mission
// risk, check completion, refresh the world event.
func (e *Engine) Tick() TickResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	var res TickResult
	res.EventRolled = e.refreshEvent()

	src := e.bonuses()
	dt := float64(e.cfg.TickSeconds)
	if dt <= 0 {
		dt = 1
	}
	produced := e.st.Economy.RatePerSecond(e.cat, src.RateMultiplier()) * dt
	e.credit(produced)
	res.Produced = produced

	if !e.st.Run.Active {
		e.startMission()
	}
	e.st.Run.Deplete(produced, dt)
	if e.st.Run.Done() {
		res.MissionCompleted = true
		res.AnimalsSaved = e.finishMission()
	}
	return res
}

// credit applies production (or an offline lump) to the coin balance and
// all three animal tallies together, matching how the offline catch-up
// credits a restored save.
func (e *Engine) credit(n float64) {
	if n <= 0 {
		return
	}
	e.st.Economy.Coins += n
	e.st.AnimalsSaved += n
	e.st.LifetimeAnimalsSaved += n
	e.st.SeasonSaved += n
	if e.st.SeasonSaved > e.st.BestSeason {
		e.st.BestSeason = e.st.SeasonSaved
	}
}

// refreshEvent expires the active world event and rolls a replacement when
// none is running. At most one event is ever active.
func (e *Engine) refreshEvent() bool {
	now := e.clock.Now()
	if !e.st.Event.Expired(now) {
		return false
	}
	e.st.Event = worldevent.Roll(e.cat, e.rng, now)
	if e.st.Event != nil {
		e.record(telemetry.EventWorldEventStarted, telemetry.EventMetadata{"id": e.st.Event.ID})
		return true
	}
	return false
}

func (e *Engine) startMission() {
	e.st.Run.Start(e.cat, e.bonuses(), e.cfg.DifficultyMult)
}

// finishMission converts the run's risk reduction into rewards and starts
// the next mission immediately. Returns animals saved.
func (e *Engine) finishMission() float64 {
	src := e.bonuses()
	saved := e.st.Run.Reward(src.AnimalMultiplier())
	spec, ok := e.st.Run.Spec(e.cat)

	e.st.Economy.Coins += saved
	e.st.AnimalsSaved += saved
	e.st.LifetimeAnimalsSaved += saved
	e.st.SeasonSaved += saved
	if e.st.SeasonSaved > e.st.BestSeason {
		e.st.BestSeason = e.st.SeasonSaved
	}

	if ok {
		if !e.st.SpeciesSaved[spec.Species] {
			if _, found := e.cat.SpeciesByName(spec.Species); found {
				e.st.SpeciesSaved[spec.Species] = true
			}
		}
		e.st.ReserveCounts[spec.Species] += saved
		e.st.MissionsCompleted[spec.Name]++
		e.record(telemetry.EventMissionCompleted, telemetry.EventMetadata{
			"mission": spec.Name,
			"species": spec.Species,
			"saved":   saved,
		})
	}

	e.st.Run.Advance(e.cat)
	// Species saved above may have changed the ledger; Start recomputes it.
	e.startMission()
	return saved
}

// ManualRescue is the out-of-band +1 action. It can complete the running
// mission by itself.
func (e *Engine) ManualRescue() TickResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.credit(1)
	e.st.Run.Rescue(1)
	e.record(telemetry.EventManualRescue, nil)

	var res TickResult
	res.Produced = 1
	if e.st.Run.Done() {
		res.MissionCompleted = true
		res.AnimalsSaved = e.finishMission()
	}
	return res
}

// PurchaseUnit buys one unit. False means unaffordable or bad index; no
// state changed.
func (e *Engine) PurchaseUnit(i int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.st.Economy.PurchaseUnit(e.cat, i) {
		return false
	}
	e.record(telemetry.EventUnitPurchased, telemetry.EventMetadata{"name": e.cat.Units[i].Name})
	return true
}

func (e *Engine) PurchaseUpgrade(i int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.st.Economy.PurchaseUpgrade(e.cat, i) {
		return false
	}
	e.record(telemetry.EventUpgradePurchased, telemetry.EventMetadata{"name": e.cat.Upgrades[i].Name})
	return true
}

// PurchasePermitUpgrade buys one level of the named permit-shop line.
func (e *Engine) PurchasePermitUpgrade(kind prestige.UpgradeKind) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, spec := range e.shop {
		if spec.Kind != kind {
			continue
		}
		if !e.st.Prestige.Purchase(spec) {
			return false
		}
		e.record(telemetry.EventPermitUpgrade, telemetry.EventMetadata{"kind": string(kind)})
		return true
	}
	return false
}

// PrestigeResult reports a permit filing.
type PrestigeResult struct {
	NewPermits       float64 `json:"new_permits"`
	PermitsTotal     float64 `json:"permits_total"`
	PermitsAvailable float64 `json:"permits_available"`
	BestSeason       float64 `json:"best_season"`
}

// Prestige converts lifetime progress to permits and resets the season.
// Permits, permit upgrades, lifetime total, best season, achievement/quest
// progress and biome unlocks all survive.
func (e *Engine) Prestige() PrestigeResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	newPermits := e.st.Prestige.Convert(e.st.LifetimeAnimalsSaved, e.cfg.PermitDivisor)

	if e.st.SeasonSaved > e.st.BestSeason {
		e.st.BestSeason = e.st.SeasonSaved
	}
	e.st.SeasonSaved = 0
	e.st.AnimalsSaved = 0

	e.st.Economy.Reset(e.cat)
	e.st.SpeciesSaved = map[string]bool{}
	e.st.ReserveCounts = map[string]float64{}
	e.st.MissionsCompleted = map[string]int{}
	e.st.Run = mission.Run{}
	e.st.Prestiges++

	e.startMission()
	e.record(telemetry.EventPrestige, telemetry.EventMetadata{"new_permits": newPermits})

	return PrestigeResult{
		NewPermits:       newPermits,
		PermitsTotal:     e.st.Prestige.PermitsTotal,
		PermitsAvailable: e.st.Prestige.PermitsAvailable,
		BestSeason:       e.st.BestSeason,
	}
}

// UnlockBiome spends permits to merge a biome's content into the live
// catalogs. Re-unlocking an owned biome re-applies the merge without
// charging again.
func (e *Engine) UnlockBiome(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.cat.BiomeByID(id)
	if !ok {
		return false
	}
	if !e.st.BiomesUnlocked[id] {
		if !e.st.Prestige.Spend(b.Cost) {
			return false
		}
		e.st.BiomesUnlocked[id] = true
		e.record(telemetry.EventBiomeUnlocked, telemetry.EventMetadata{"id": id})
	}
	e.cat.ApplyBiome(b)
	e.st.Economy.Resize(e.cat)
	return true
}

// ClaimAchievement is a predicate-gated one-shot.
func (e *Engine) ClaimAchievement(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.st.AchievementsClaimed[id] {
		return false
	}
	a, ok := progression.AchievementByID(id)
	if !ok || !a.Check(e.stats()) {
		return false
	}
	e.st.AchievementsClaimed[id] = true
	e.applyReward(a.Reward)
	e.record(telemetry.EventAchievementClaimed, telemetry.EventMetadata{"id": id})
	return true
}

// ClaimQuest claims the current questline step and advances the pointer.
func (e *Engine) ClaimQuest() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	steps := progression.Questline()
	if e.st.QuestStep < 0 || e.st.QuestStep >= len(steps) {
		return false
	}
	step := steps[e.st.QuestStep]
	if !step.Check(e.stats()) {
		return false
	}
	e.st.QuestStep++
	e.applyReward(step.Reward)
	e.record(telemetry.EventQuestClaimed, telemetry.EventMetadata{"id": step.ID})
	return true
}

func (e *Engine) applyReward(r progression.Reward) {
	switch r.Kind {
	case progression.RewardCoins:
		e.st.Economy.Coins += r.Amount
	case progression.RewardRate:
		e.st.ProgressionBonus.Rate += r.Amount
	case progression.RewardTime:
		e.st.ProgressionBonus.Time += r.Amount
	case progression.RewardAnimals:
		e.st.ProgressionBonus.Animals += r.Amount
	case progression.RewardPermit:
		e.st.Prestige.Grant(r.Amount)
	}
}

func (e *Engine) stats() progression.Stats {
	units, upgrades := 0, 0
	for _, n := range e.st.Economy.UnitCounts {
		units += n
	}
	for _, n := range e.st.Economy.UpgradeCounts {
		upgrades += n
	}
	missions := 0
	for _, n := range e.st.MissionsCompleted {
		missions += n
	}
	species := 0
	for _, ok := range e.st.SpeciesSaved {
		if ok {
			species++
		}
	}
	biomes := 0
	for _, ok := range e.st.BiomesUnlocked {
		if ok {
			biomes++
		}
	}
	return progression.Stats{
		Coins:                e.st.Economy.Coins,
		AnimalsSaved:         e.st.AnimalsSaved,
		LifetimeAnimalsSaved: e.st.LifetimeAnimalsSaved,
		SeasonSaved:          e.st.SeasonSaved,
		BestSeason:           e.st.BestSeason,
		UnitsOwned:           units,
		UpgradesOwned:        upgrades,
		MissionsCompleted:    missions,
		SpeciesSaved:         species,
		BiomesUnlocked:       biomes,
		PermitsTotal:         e.st.Prestige.PermitsTotal,
		Prestiges:            e.st.Prestiges,
	}
}

// Export runs fn with the state under the engine lock. Persistence uses it
// to capture or credit a consistent snapshot.
func (e *Engine) Export(fn func(*State)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.st)
}

func (e *Engine) record(t telemetry.EventType, meta telemetry.EventMetadata) {
	if e.events == nil {
		return
	}
	_ = e.events.RecordEvent(t, meta)
}
