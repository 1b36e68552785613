package bonus

// Effect names which multiplier a bonus feeds.
type Effect string

const (
	EffectRate    Effect = "rate"
	EffectTime    Effect = "time"
	EffectAnimals Effect = "animals"
)

// MaxTimeReduction caps the summed time-reduction accumulators so an
// effective duration never drops below 10% of base. The cap is applied here,
// at point of use, and nowhere else; individual accumulators keep their full
// earned value.
const MaxTimeReduction = 0.9

// Values is one source's additive percentage contributions.
type Values struct {
	Rate    float64 `json:"rate"`
	Time    float64 `json:"time"`
	Animals float64 `json:"animals"`
}

// Add accumulates v into the bucket matching effect.
func (v *Values) Add(effect Effect, amount float64) {
	switch effect {
	case EffectRate:
		v.Rate += amount
	case EffectTime:
		v.Time += amount
	case EffectAnimals:
		v.Animals += amount
	}
}

// Sources holds the five peer bonus buckets. They are summed, never
// multiplied together, so aggregation is order-independent.
type Sources struct {
	Upgrades    Values `json:"upgrades"`
	Species     Values `json:"species"`
	Permits     Values `json:"permits"`
	Events      Values `json:"events"`
	Progression Values `json:"progression"`
}

// Totals sums all buckets. Time is reported uncapped; consumers that apply
// it to a duration go through Duration.
func (s Sources) Totals() Values {
	return Values{
		Rate:    s.Upgrades.Rate + s.Species.Rate + s.Permits.Rate + s.Events.Rate + s.Progression.Rate,
		Time:    s.Upgrades.Time + s.Species.Time + s.Permits.Time + s.Events.Time + s.Progression.Time,
		Animals: s.Upgrades.Animals + s.Species.Animals + s.Permits.Animals + s.Events.Animals + s.Progression.Animals,
	}
}

// RateMultiplier scales production.
func (s Sources) RateMultiplier() float64 {
	return 1 + s.Totals().Rate
}

// AnimalMultiplier scales mission rewards.
func (s Sources) AnimalMultiplier() float64 {
	return 1 + s.Totals().Animals
}

// Duration applies the capped time reduction to a base duration. For any
// base > 0 the result stays > 0.
func (s Sources) Duration(base float64) float64 {
	reduction := s.Totals().Time
	if reduction > MaxTimeReduction {
		reduction = MaxTimeReduction
	}
	if reduction < 0 {
		reduction = 0
	}
	return base * (1 - reduction)
}
