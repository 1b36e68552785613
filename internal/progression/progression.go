package progression

// Stats is the read-only view of simulation state that achievement and
// quest predicates evaluate against. The engine fills one per check; the
// predicates stay pure.
type Stats struct {
	Coins                float64
	AnimalsSaved         float64
	LifetimeAnimalsSaved float64
	SeasonSaved          float64
	BestSeason           float64
	UnitsOwned           int
	UpgradesOwned        int
	MissionsCompleted    int
	SpeciesSaved         int
	BiomesUnlocked       int
	PermitsTotal         float64
	Prestiges            int
}

// RewardKind selects how a claim pays out.
type RewardKind string

const (
	RewardCoins   RewardKind = "coins"
	RewardRate    RewardKind = "rate"
	RewardTime    RewardKind = "time"
	RewardAnimals RewardKind = "animals"
	// RewardPermit credits permits directly, bypassing the lifetime-saved
	// conversion. Quest-only.
	RewardPermit RewardKind = "permit"
)

// Reward is granted exactly once per achievement or quest step.
type Reward struct {
	Kind   RewardKind `json:"kind"`
	Amount float64    `json:"amount"`
}
