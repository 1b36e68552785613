package prestige

import (
	"math"

	"github.com/fletchernt/extinction-escape/internal/bonus"
	"github.com/fletchernt/extinction-escape/internal/catalog"
)

// UpgradeKind names a permit-shop upgrade line.
type UpgradeKind string

const (
	KindRate    UpgradeKind = "rate"
	KindAnimals UpgradeKind = "animals"
	KindTime    UpgradeKind = "time"
	KindMap     UpgradeKind = "map"
)

// UpgradeSpec is a permit-shop entry. Cost is denominated in permits but the
// curve shape is shared with the coin shop. Value is the per-level bonus
// contribution; for KindMap it is reserve slots, not a percentage.
type UpgradeSpec struct {
	Kind     UpgradeKind  `json:"kind"`
	Label    string       `json:"label"`
	Effect   bonus.Effect `json:"effect,omitempty"`
	Value    float64      `json:"value"`
	BaseCost float64      `json:"base_cost"`
	CostMult float64      `json:"cost_mult"`
}

// DefaultShop is the permit upgrade catalog.
func DefaultShop() []UpgradeSpec {
	return []UpgradeSpec{
		{Kind: KindRate, Label: "Veteran Crews", Effect: bonus.EffectRate, Value: 0.10, BaseCost: 1, CostMult: 1.5},
		{Kind: KindAnimals, Label: "Habitat Grants", Effect: bonus.EffectAnimals, Value: 0.10, BaseCost: 1, CostMult: 1.5},
		{Kind: KindTime, Label: "Rapid Response", Effect: bonus.EffectTime, Value: 0.05, BaseCost: 2, CostMult: 1.5},
		{Kind: KindMap, Label: "Reserve Expansion", Value: 4, BaseCost: 2, CostMult: 2},
	}
}

// State survives prestige resets. PermitsTotal is lifetime-monotonic;
// PermitsAvailable is the spendable balance.
type State struct {
	PermitsTotal     float64             `json:"permits_total"`
	PermitsAvailable float64             `json:"permits_available"`
	Upgrades         map[UpgradeKind]int `json:"upgrades"`
}

func New() State {
	return State{Upgrades: map[UpgradeKind]int{}}
}

// PermitTarget is the lifetime-progress conversion: one permit per divisor
// animals ever saved.
func PermitTarget(lifetimeSaved, divisor float64) float64 {
	if divisor <= 0 {
		return 0
	}
	return math.Floor(lifetimeSaved / divisor)
}

// Convert reconciles PermitsTotal up to the lifetime target and credits the
// delta to the spendable balance. Never reduces either field.
func (s *State) Convert(lifetimeSaved, divisor float64) (newPermits float64) {
	target := PermitTarget(lifetimeSaved, divisor)
	newPermits = target - s.PermitsTotal
	if newPermits < 0 {
		// Side-channel grants can push the total past the target.
		newPermits = 0
	}
	if s.PermitsTotal < target {
		s.PermitsTotal = target
	}
	s.PermitsAvailable += newPermits
	return newPermits
}

// Grant credits permits directly, bypassing the lifetime conversion. Used by
// quest rewards.
func (s *State) Grant(n float64) {
	if n <= 0 {
		return
	}
	s.PermitsAvailable += n
	s.PermitsTotal += n
}

// Spend deducts from the available balance if it covers cost.
func (s *State) Spend(cost float64) bool {
	if s.PermitsAvailable < cost {
		return false
	}
	s.PermitsAvailable -= cost
	return true
}

// NextCost is the current price of one more level of spec.
func (s *State) NextCost(spec UpgradeSpec) float64 {
	return catalog.NextCost(spec.BaseCost, spec.CostMult, s.Upgrades[spec.Kind])
}

// Purchase buys one level of spec. Silent no-op when permits are short.
func (s *State) Purchase(spec UpgradeSpec) bool {
	if s.Upgrades == nil {
		s.Upgrades = map[UpgradeKind]int{}
	}
	if !s.Spend(s.NextCost(spec)) {
		return false
	}
	s.Upgrades[spec.Kind]++
	return true
}

// BonusValues is the permit bucket of the bonus ledger: count × value per
// upgrade line. Map upgrades carry no percentage bonus.
func (s *State) BonusValues(shop []UpgradeSpec) bonus.Values {
	var v bonus.Values
	for _, spec := range shop {
		if spec.Kind == KindMap {
			continue
		}
		v.Add(spec.Effect, float64(s.Upgrades[spec.Kind])*spec.Value)
	}
	return v
}

// ReserveSlots is the reserve map capacity granted by map upgrades.
func (s *State) ReserveSlots(shop []UpgradeSpec, base int) int {
	slots := base
	for _, spec := range shop {
		if spec.Kind == KindMap {
			slots += int(spec.Value) * s.Upgrades[spec.Kind]
		}
	}
	return slots
}
