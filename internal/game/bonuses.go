package game

import (
	"time"

	"github.com/fletchernt/extinction-escape/internal/bonus"
	"github.com/fletchernt/extinction-escape/internal/catalog"
	"github.com/fletchernt/extinction-escape/internal/prestige"
)

// BonusSources assembles the five-source ledger from current accumulator
// state. The derived buckets (species, permits, events) are recomputed from
// their underlying flags/counts on every call, so the assembly is
// idempotent and order-independent. The live tick, the offline catch-up
// and the UI view all go through this one function.
func (s *State) BonusSources(cat *catalog.Catalog, shop []prestige.UpgradeSpec, now time.Time) bonus.Sources {
	var species bonus.Values
	for _, sp := range cat.Species {
		if s.SpeciesSaved[sp.Name] {
			species.Add(sp.Effect, sp.Value)
		}
	}
	return bonus.Sources{
		Upgrades:    s.Economy.Global,
		Species:     species,
		Permits:     s.Prestige.BonusValues(shop),
		Events:      s.Event.Values(now),
		Progression: s.ProgressionBonus,
	}
}

// RescuePerSecond is the effective production rate for this state.
func (s *State) RescuePerSecond(cat *catalog.Catalog, shop []prestige.UpgradeSpec, now time.Time) float64 {
	src := s.BonusSources(cat, shop, now)
	return s.Economy.RatePerSecond(cat, src.RateMultiplier())
}
