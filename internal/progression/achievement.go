package progression

// Achievement pairs a pure predicate with a one-shot reward.
type Achievement struct {
	ID     string           `json:"id"`
	Title  string           `json:"title"`
	Blurb  string           `json:"blurb"`
	Check  func(Stats) bool `json:"-"`
	Reward Reward           `json:"reward"`
}

// Achievements is the fixed achievement catalog.
func Achievements() []Achievement {
	return []Achievement{
		{
			ID: "first_unit", Title: "Boots on the Ground",
			Blurb:  "Own your first rescue unit.",
			Check:  func(s Stats) bool { return s.UnitsOwned >= 1 },
			Reward: Reward{Kind: RewardCoins, Amount: 25},
		},
		{
			ID: "ten_units", Title: "Full Roster",
			Blurb:  "Own ten rescue units.",
			Check:  func(s Stats) bool { return s.UnitsOwned >= 10 },
			Reward: Reward{Kind: RewardRate, Amount: 0.05},
		},
		{
			ID: "hundred_saved", Title: "First Hundred",
			Blurb:  "Save 100 animals in one season.",
			Check:  func(s Stats) bool { return s.AnimalsSaved >= 100 },
			Reward: Reward{Kind: RewardAnimals, Amount: 0.05},
		},
		{
			ID: "five_missions", Title: "Seasoned Responder",
			Blurb:  "Complete five missions.",
			Check:  func(s Stats) bool { return s.MissionsCompleted >= 5 },
			Reward: Reward{Kind: RewardTime, Amount: 0.05},
		},
		{
			ID: "all_starters", Title: "Field Guide",
			Blurb:  "Rescue four different species.",
			Check:  func(s Stats) bool { return s.SpeciesSaved >= 4 },
			Reward: Reward{Kind: RewardRate, Amount: 0.10},
		},
		{
			ID: "thousand_lifetime", Title: "Career Ranger",
			Blurb:  "Save 1,000 animals across all seasons.",
			Check:  func(s Stats) bool { return s.LifetimeAnimalsSaved >= 1000 },
			Reward: Reward{Kind: RewardCoins, Amount: 500},
		},
		{
			ID: "first_prestige", Title: "New Season",
			Blurb:  "File for permits once.",
			Check:  func(s Stats) bool { return s.Prestiges >= 1 },
			Reward: Reward{Kind: RewardAnimals, Amount: 0.10},
		},
		{
			ID: "first_biome", Title: "Branching Out",
			Blurb:  "Unlock a new biome.",
			Check:  func(s Stats) bool { return s.BiomesUnlocked >= 1 },
			Reward: Reward{Kind: RewardRate, Amount: 0.10},
		},
	}
}

// AchievementByID looks up one catalog entry.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range Achievements() {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
