package economy

import (
	"github.com/fletchernt/extinction-escape/internal/bonus"
	"github.com/fletchernt/extinction-escape/internal/catalog"
)

// State tracks unit/upgrade ownership parallel to the catalogs, the coin
// balance, and the global (upgrade-earned) bonus accumulators.
type State struct {
	Coins           float64      `json:"coins"`
	UnitCounts      []int        `json:"unit_counts"`
	UnitNextCost    []float64    `json:"unit_next_cost"`
	UpgradeCounts   []int        `json:"upgrade_counts"`
	UpgradeNextCost []float64    `json:"upgrade_next_cost"`
	Global          bonus.Values `json:"global"`
}

// New returns a zero-ownership state sized to the catalog.
func New(cat *catalog.Catalog) State {
	s := State{}
	s.Resize(cat)
	return s
}

// Resize grows the ownership arrays to match the catalog after a biome
// unlock (zero-filled) and re-derives every next cost from the curve. It
// never shrinks or discards counts.
func (s *State) Resize(cat *catalog.Catalog) {
	for len(s.UnitCounts) < len(cat.Units) {
		s.UnitCounts = append(s.UnitCounts, 0)
	}
	for len(s.UpgradeCounts) < len(cat.Upgrades) {
		s.UpgradeCounts = append(s.UpgradeCounts, 0)
	}
	s.UnitNextCost = make([]float64, len(cat.Units))
	for i, u := range cat.Units {
		s.UnitNextCost[i] = catalog.NextCost(u.BaseCost, u.CostMult, s.UnitCounts[i])
	}
	s.UpgradeNextCost = make([]float64, len(cat.Upgrades))
	for i, u := range cat.Upgrades {
		s.UpgradeNextCost[i] = catalog.NextCost(u.BaseCost, u.CostMult, s.UpgradeCounts[i])
	}
}

// PurchaseUnit buys one unit at index i. Returns false (no state change)
// when the index is out of range or coins are short.
func (s *State) PurchaseUnit(cat *catalog.Catalog, i int) bool {
	if i < 0 || i >= len(cat.Units) || i >= len(s.UnitCounts) {
		return false
	}
	cost := s.UnitNextCost[i]
	if s.Coins < cost {
		return false
	}
	s.Coins -= cost
	s.UnitCounts[i]++
	u := cat.Units[i]
	s.UnitNextCost[i] = catalog.NextCost(u.BaseCost, u.CostMult, s.UnitCounts[i])
	return true
}

// PurchaseUpgrade buys one upgrade at index i and banks its effect value
// into the matching global accumulator. The time accumulator is not clamped
// here; the cap lives in bonus.Sources.Duration.
func (s *State) PurchaseUpgrade(cat *catalog.Catalog, i int) bool {
	if i < 0 || i >= len(cat.Upgrades) || i >= len(s.UpgradeCounts) {
		return false
	}
	cost := s.UpgradeNextCost[i]
	if s.Coins < cost {
		return false
	}
	s.Coins -= cost
	s.UpgradeCounts[i]++
	u := cat.Upgrades[i]
	s.UpgradeNextCost[i] = catalog.NextCost(u.BaseCost, u.CostMult, s.UpgradeCounts[i])
	s.Global.Add(u.Effect, u.Value)
	return true
}

// BaseRatePerSecond is raw production before bonuses: sum of owned units'
// per-minute rates, per second.
func (s *State) BaseRatePerSecond(cat *catalog.Catalog) float64 {
	total := 0.0
	for i, u := range cat.Units {
		if i >= len(s.UnitCounts) {
			break
		}
		total += float64(s.UnitCounts[i]) * u.BaseRate
	}
	return total / 60
}

// RatePerSecond is the effective rescue rate. Pure: the same function backs
// the live tick, the offline catch-up, and the UI view.
func (s *State) RatePerSecond(cat *catalog.Catalog, rateMult float64) float64 {
	return s.BaseRatePerSecond(cat) * rateMult
}

// Reset returns ownership, costs, coins and global accumulators to the base
// state for the (possibly biome-extended) catalog. Used by prestige.
func (s *State) Reset(cat *catalog.Catalog) {
	s.Coins = 0
	s.UnitCounts = make([]int, len(cat.Units))
	s.UpgradeCounts = make([]int, len(cat.Upgrades))
	s.Global = bonus.Values{}
	s.Resize(cat)
}
