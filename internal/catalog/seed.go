package catalog

import (
	"time"

	"github.com/fletchernt/extinction-escape/internal/bonus"
)

// Seed returns the base game content. Biome bundles stay dormant until
// unlocked; ApplyBiome folds them into the live catalogs.
func Seed() *Catalog {
	return &Catalog{
		Units: []UnitType{
			{Name: "Volunteer Spotter", BaseCost: 50, BaseRate: 6, CostMult: 1.15},
			{Name: "Rescue Drone", BaseCost: 250, BaseRate: 30, CostMult: 1.15},
			{Name: "Ranger Patrol", BaseCost: 1200, BaseRate: 140, CostMult: 1.15},
			{Name: "Field Clinic", BaseCost: 6000, BaseRate: 650, CostMult: 1.15},
			{Name: "Rescue Chopper", BaseCost: 30000, BaseRate: 3200, CostMult: 1.15},
			{Name: "Sanctuary Ship", BaseCost: 150000, BaseRate: 16000, CostMult: 1.15},
		},
		Upgrades: []UpgradeType{
			{Name: "Thermal Scopes", Effect: bonus.EffectRate, Value: 0.10, BaseCost: 400, CostMult: 1.5},
			{Name: "All-Terrain Tires", Effect: bonus.EffectTime, Value: 0.05, BaseCost: 600, CostMult: 1.5},
			{Name: "Triage Training", Effect: bonus.EffectAnimals, Value: 0.10, BaseCost: 800, CostMult: 1.5},
			{Name: "Satellite Uplink", Effect: bonus.EffectRate, Value: 0.20, BaseCost: 3000, CostMult: 1.6},
			{Name: "Night Operations", Effect: bonus.EffectTime, Value: 0.10, BaseCost: 5000, CostMult: 1.6},
			{Name: "Donor Network", Effect: bonus.EffectAnimals, Value: 0.20, BaseCost: 8000, CostMult: 1.6},
		},
		Species: []Species{
			{Name: "Sea Turtle", Blurb: "Steadier crews", Effect: bonus.EffectRate, Value: 0.03},
			{Name: "Red Panda", Blurb: "Faster deployments", Effect: bonus.EffectTime, Value: 0.02},
			{Name: "Snow Leopard", Blurb: "Bigger rescues", Effect: bonus.EffectAnimals, Value: 0.03},
			{Name: "Black Rhino", Blurb: "Steadier crews", Effect: bonus.EffectRate, Value: 0.04},
			{Name: "Kakapo", Blurb: "Faster deployments", Effect: bonus.EffectTime, Value: 0.03},
			{Name: "Vaquita", Blurb: "Bigger rescues", Effect: bonus.EffectAnimals, Value: 0.05},
		},
		Missions: []MissionSpec{
			{Name: "Beach Hatchling Watch", Duration: 60, BaseRisk: 20, Difficulty: 1.0, Species: "Sea Turtle"},
			{Name: "Bamboo Forest Sweep", Duration: 90, BaseRisk: 35, Difficulty: 1.1, Species: "Red Panda"},
			{Name: "Ridge Line Census", Duration: 120, BaseRisk: 50, Difficulty: 1.25, Species: "Snow Leopard"},
			{Name: "Anti-Poaching Escort", Duration: 180, BaseRisk: 80, Difficulty: 1.4, Species: "Black Rhino"},
			{Name: "Island Nest Guard", Duration: 240, BaseRisk: 110, Difficulty: 1.6, Species: "Kakapo"},
			{Name: "Gulf Net Retrieval", Duration: 300, BaseRisk: 150, Difficulty: 1.8, Species: "Vaquita"},
		},
		Events: []EventSpec{
			{ID: "ev_donation_drive", Name: "Donation Drive", RateBonus: 0.25, Duration: time.Hour},
			{ID: "ev_media_spotlight", Name: "Media Spotlight", AnimalBonus: 0.25, Duration: time.Hour},
			{ID: "ev_clear_skies", Name: "Clear Skies", TimeReduction: 0.15, Duration: time.Hour},
			{ID: "ev_volunteer_surge", Name: "Volunteer Surge", RateBonus: 0.15, AnimalBonus: 0.10, Duration: time.Hour},
		},
		Biomes: []Biome{
			{
				ID: "coral_reef", Name: "Coral Reef", Cost: 3,
				Species: []Species{
					{Name: "Staghorn Coral", Blurb: "Steadier crews", Effect: bonus.EffectRate, Value: 0.05},
					{Name: "Reef Manta", Blurb: "Bigger rescues", Effect: bonus.EffectAnimals, Value: 0.05},
				},
				Units: []UnitType{
					{Name: "Dive Team", BaseCost: 500000, BaseRate: 60000, CostMult: 1.15},
				},
				Missions: []MissionSpec{
					{Name: "Bleaching Front Relay", Duration: 360, BaseRisk: 220, Difficulty: 2.0, Species: "Staghorn Coral"},
					{Name: "Lagoon Untangling", Duration: 420, BaseRisk: 300, Difficulty: 2.2, Species: "Reef Manta"},
				},
			},
			{
				ID: "high_arctic", Name: "High Arctic", Cost: 6,
				Species: []Species{
					{Name: "Polar Bear", Blurb: "Faster deployments", Effect: bonus.EffectTime, Value: 0.04},
					{Name: "Narwhal", Blurb: "Steadier crews", Effect: bonus.EffectRate, Value: 0.06},
				},
				Units: []UnitType{
					{Name: "Icebreaker Crew", BaseCost: 2500000, BaseRate: 280000, CostMult: 1.15},
				},
				Missions: []MissionSpec{
					{Name: "Floe Edge Patrol", Duration: 480, BaseRisk: 400, Difficulty: 2.5, Species: "Polar Bear"},
					{Name: "Sonar Quiet Zone", Duration: 540, BaseRisk: 520, Difficulty: 2.8, Species: "Narwhal"},
				},
			},
		},
	}
}
