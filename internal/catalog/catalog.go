package catalog

import (
	"math"
	"time"

	"github.com/fletchernt/extinction-escape/internal/bonus"
)

// UnitType is an immutable catalog entry for a purchasable rescue unit.
// BaseRate is animals rescued per minute per unit owned.
type UnitType struct {
	Name     string  `json:"name"`
	BaseCost float64 `json:"base_cost"`
	BaseRate float64 `json:"base_rate"`
	CostMult float64 `json:"cost_mult"`
}

// UpgradeType is a purchasable global bonus. Buying one adds Value to the
// global accumulator matching Effect.
type UpgradeType struct {
	Name     string       `json:"name"`
	Effect   bonus.Effect `json:"effect"`
	Value    float64      `json:"value"`
	BaseCost float64      `json:"base_cost"`
	CostMult float64      `json:"cost_mult"`
}

// Species contributes its Value to the species bonus bucket once rescued.
type Species struct {
	Name   string       `json:"name"`
	Blurb  string       `json:"blurb"`
	Effect bonus.Effect `json:"effect"`
	Value  float64      `json:"value"`
}

// MissionSpec describes one timed rescue mission. Duration is the base
// length in seconds before time-reduction bonuses apply.
type MissionSpec struct {
	Name       string  `json:"name"`
	Duration   float64 `json:"duration"`
	BaseRisk   float64 `json:"base_risk"`
	Difficulty float64 `json:"difficulty"`
	Species    string  `json:"species"`
}

// EventSpec is a rollable world event. Duration is how long the event runs
// once rolled; the active copy carries an absolute end time.
type EventSpec struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	RateBonus     float64       `json:"rate_bonus"`
	AnimalBonus   float64       `json:"animal_bonus"`
	TimeReduction float64       `json:"time_reduction"`
	Duration      time.Duration `json:"duration"`
}

// Biome is an unlockable content pack. Cost is in permits.
type Biome struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Cost     float64       `json:"cost"`
	Species  []Species     `json:"species"`
	Units    []UnitType    `json:"units"`
	Missions []MissionSpec `json:"missions"`
}

// Catalog holds the live, append-only content catalogs. Entries are keyed
// by name; merge operations are idempotent so replaying a biome unlock on
// load never duplicates content.
type Catalog struct {
	Units    []UnitType
	Upgrades []UpgradeType
	Species  []Species
	Missions []MissionSpec
	Events   []EventSpec
	Biomes   []Biome
}

// NextCost is the shared exponential cost curve used by units, upgrades and
// permit upgrades alike.
func NextCost(base, mult float64, count int) float64 {
	return math.Floor(base * math.Pow(mult, float64(count)))
}

func (c *Catalog) BiomeByID(id string) (Biome, bool) {
	for _, b := range c.Biomes {
		if b.ID == id {
			return b, true
		}
	}
	return Biome{}, false
}

func (c *Catalog) SpeciesByName(name string) (Species, bool) {
	for _, s := range c.Species {
		if s.Name == name {
			return s, true
		}
	}
	return Species{}, false
}

// ApplyBiome merges a biome's content into the live catalogs. Safe to call
// repeatedly with the same biome.
func (c *Catalog) ApplyBiome(b Biome) {
	for _, s := range b.Species {
		c.addSpecies(s)
	}
	for _, u := range b.Units {
		c.addUnit(u)
	}
	for _, m := range b.Missions {
		c.addMission(m)
	}
}

func (c *Catalog) addSpecies(s Species) {
	for _, have := range c.Species {
		if have.Name == s.Name {
			return
		}
	}
	c.Species = append(c.Species, s)
}

func (c *Catalog) addUnit(u UnitType) {
	for _, have := range c.Units {
		if have.Name == u.Name {
			return
		}
	}
	c.Units = append(c.Units, u)
}

func (c *Catalog) addMission(m MissionSpec) {
	for _, have := range c.Missions {
		if have.Name == m.Name {
			return
		}
	}
	c.Missions = append(c.Missions, m)
}
