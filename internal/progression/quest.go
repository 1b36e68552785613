package progression

// Step is one rung of the linear questline. Only the current step's
// predicate is ever evaluated; claiming advances the pointer by one.
type Step struct {
	ID     string           `json:"id"`
	Title  string           `json:"title"`
	Blurb  string           `json:"blurb"`
	Check  func(Stats) bool `json:"-"`
	Reward Reward           `json:"reward"`
}

// Questline is the ordered story sequence.
func Questline() []Step {
	return []Step{
		{
			ID: "q_first_coin", Title: "Seed Funding",
			Blurb:  "Hold 50 coins.",
			Check:  func(s Stats) bool { return s.Coins >= 50 },
			Reward: Reward{Kind: RewardCoins, Amount: 25},
		},
		{
			ID: "q_first_unit", Title: "Hire a Crew",
			Blurb:  "Own a rescue unit.",
			Check:  func(s Stats) bool { return s.UnitsOwned >= 1 },
			Reward: Reward{Kind: RewardRate, Amount: 0.05},
		},
		{
			ID: "q_first_mission", Title: "Answer the Call",
			Blurb:  "Complete a mission.",
			Check:  func(s Stats) bool { return s.MissionsCompleted >= 1 },
			Reward: Reward{Kind: RewardAnimals, Amount: 0.05},
		},
		{
			ID: "q_upgrade", Title: "Better Gear",
			Blurb:  "Buy an upgrade.",
			Check:  func(s Stats) bool { return s.UpgradesOwned >= 1 },
			Reward: Reward{Kind: RewardTime, Amount: 0.05},
		},
		{
			ID: "q_fifty_saved", Title: "Making Headlines",
			Blurb:  "Save 50 animals this season.",
			Check:  func(s Stats) bool { return s.AnimalsSaved >= 50 },
			Reward: Reward{Kind: RewardPermit, Amount: 1},
		},
		{
			ID: "q_three_species", Title: "Biodiversity",
			Blurb:  "Rescue three different species.",
			Check:  func(s Stats) bool { return s.SpeciesSaved >= 3 },
			Reward: Reward{Kind: RewardRate, Amount: 0.10},
		},
		{
			ID: "q_permit", Title: "Paperwork Pays",
			Blurb:  "Earn a permit.",
			Check:  func(s Stats) bool { return s.PermitsTotal >= 1 },
			Reward: Reward{Kind: RewardCoins, Amount: 250},
		},
		{
			ID: "q_biome", Title: "New Frontiers",
			Blurb:  "Unlock a biome.",
			Check:  func(s Stats) bool { return s.BiomesUnlocked >= 1 },
			Reward: Reward{Kind: RewardPermit, Amount: 2},
		},
	}
}
