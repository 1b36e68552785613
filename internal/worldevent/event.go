package worldevent

import (
	"math/rand"
	"time"

	"github.com/fletchernt/extinction-escape/internal/bonus"
	"github.com/fletchernt/extinction-escape/internal/catalog"
)

// Active is the one currently running world event. EndTime is absolute.
type Active struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	RateBonus     float64   `json:"rate_bonus"`
	AnimalBonus   float64   `json:"animal_bonus"`
	TimeReduction float64   `json:"time_reduction"`
	EndTime       time.Time `json:"end_time"`
}

// Expired reports whether the event has run out at now.
func (a *Active) Expired(now time.Time) bool {
	return a == nil || !now.Before(a.EndTime)
}

// Values is the event's bonus-ledger bucket: its three fields while running,
// zero otherwise.
func (a *Active) Values(now time.Time) bonus.Values {
	if a.Expired(now) {
		return bonus.Values{}
	}
	return bonus.Values{Rate: a.RateBonus, Time: a.TimeReduction, Animals: a.AnimalBonus}
}

// Roll picks a replacement uniformly at random from the event catalog.
// Returns nil when the catalog is empty.
func Roll(cat *catalog.Catalog, rng *rand.Rand, now time.Time) *Active {
	if len(cat.Events) == 0 {
		return nil
	}
	spec := cat.Events[rng.Intn(len(cat.Events))]
	return &Active{
		ID:            spec.ID,
		Name:          spec.Name,
		RateBonus:     spec.RateBonus,
		AnimalBonus:   spec.AnimalBonus,
		TimeReduction: spec.TimeReduction,
		EndTime:       now.Add(spec.Duration),
	}
}
