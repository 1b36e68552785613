package mission

import (
	"math"

	"github.com/fletchernt/extinction-escape/internal/bonus"
	"github.com/fletchernt/extinction-escape/internal/catalog"
)

// Run is the state of the one active mission. In steady state a mission is
// always running: completion immediately starts the next one.
type Run struct {
	Index    int     `json:"index"`
	Active   bool    `json:"active"`
	TimeLeft float64 `json:"time_left"`
	AtRisk   float64 `json:"at_risk"`
	Total    float64 `json:"total"`
}

// Start begins the mission at Index using the current bonus ledger for the
// effective duration. Total animals at risk is round(baseRisk × difficulty),
// further scaled by the balance-wide difficulty multiplier.
func (r *Run) Start(cat *catalog.Catalog, src bonus.Sources, difficultyMult float64) {
	if len(cat.Missions) == 0 {
		r.Active = false
		return
	}
	if r.Index < 0 || r.Index >= len(cat.Missions) {
		r.Index = 0
	}
	if difficultyMult <= 0 {
		difficultyMult = 1
	}
	spec := cat.Missions[r.Index]
	r.Active = true
	r.TimeLeft = src.Duration(spec.Duration)
	r.Total = math.Round(spec.BaseRisk * spec.Difficulty * difficultyMult)
	r.AtRisk = r.Total
}

// Deplete advances the run by one tick: production shrinks the risk pool
// (floored at zero) and dt seconds come off the clock, so the mission timer
// tracks wall time whatever the tick period is.
func (r *Run) Deplete(produced, dt float64) {
	if !r.Active {
		return
	}
	if dt <= 0 {
		dt = 1
	}
	r.AtRisk -= produced
	if r.AtRisk < 0 {
		r.AtRisk = 0
	}
	r.TimeLeft -= dt
}

// Rescue removes n animals from the risk pool out of band (manual rescue).
func (r *Run) Rescue(n float64) {
	if !r.Active {
		return
	}
	r.AtRisk -= n
	if r.AtRisk < 0 {
		r.AtRisk = 0
	}
}

// Done reports whether the completion trigger has fired.
func (r *Run) Done() bool {
	return r.Active && (r.TimeLeft <= 0 || r.AtRisk <= 0)
}

// Reward converts risk reduction achieved during the run into animals saved.
// AtRisk clamps at zero, so over-production past the pool earns nothing
// extra here.
func (r *Run) Reward(animalMult float64) float64 {
	rescued := r.Total - r.AtRisk
	if rescued < 0 {
		rescued = 0
	}
	return math.Floor(rescued * animalMult)
}

// Spec returns the catalog entry for the running mission.
func (r *Run) Spec(cat *catalog.Catalog) (catalog.MissionSpec, bool) {
	if r.Index < 0 || r.Index >= len(cat.Missions) {
		return catalog.MissionSpec{}, false
	}
	return cat.Missions[r.Index], true
}

// Advance moves to the next mission in catalog order, wrapping.
func (r *Run) Advance(cat *catalog.Catalog) {
	if len(cat.Missions) == 0 {
		r.Active = false
		return
	}
	r.Index = (r.Index + 1) % len(cat.Missions)
}
