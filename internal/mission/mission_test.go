package mission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fletchernt/extinction-escape/internal/bonus"
	"github.com/fletchernt/extinction-escape/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Missions: []catalog.MissionSpec{
			{Name: "Beach Hatchling Watch", Duration: 60, BaseRisk: 20, Difficulty: 1.0, Species: "Sea Turtle"},
			{Name: "Bamboo Forest Sweep", Duration: 90, BaseRisk: 35, Difficulty: 1.1, Species: "Red Panda"},
		},
	}
}

func TestStart_BaseValues(t *testing.T) {
	cat := testCatalog()
	var r Run
	r.Start(cat, bonus.Sources{}, 1.0)

	assert.True(t, r.Active)
	assert.Equal(t, 60.0, r.TimeLeft)
	assert.Equal(t, 20.0, r.Total)
	assert.Equal(t, 20.0, r.AtRisk)
}

func TestStart_DifficultyAndTimeBonus(t *testing.T) {
	cat := testCatalog()
	src := bonus.Sources{Upgrades: bonus.Values{Time: 0.25}}
	r := Run{Index: 1}
	r.Start(cat, src, 1.5)

	assert.InDelta(t, 67.5, r.TimeLeft, 1e-9)
	// round(35 × 1.1 × 1.5) = round(57.75)
	assert.Equal(t, 58.0, r.Total)
	assert.Equal(t, r.Total, r.AtRisk)
}

func TestStart_ZeroDifficultyDefaultsToOne(t *testing.T) {
	cat := testCatalog()
	var r Run
	r.Start(cat, bonus.Sources{}, 0)
	assert.Equal(t, 20.0, r.Total)
}

func TestStart_EmptyCatalogDeactivates(t *testing.T) {
	var r Run
	r.Start(&catalog.Catalog{}, bonus.Sources{}, 1)
	assert.False(t, r.Active)
}

func TestDeplete_FlooredAtZero(t *testing.T) {
	cat := testCatalog()
	var r Run
	r.Start(cat, bonus.Sources{}, 1)

	r.Deplete(7, 1)
	assert.Equal(t, 13.0, r.AtRisk)
	assert.Equal(t, 59.0, r.TimeLeft)

	r.Deplete(100, 1)
	assert.Equal(t, 0.0, r.AtRisk)
	assert.Equal(t, 58.0, r.TimeLeft)
}

func TestDeplete_ClockFollowsTickPeriod(t *testing.T) {
	cat := testCatalog()
	var r Run
	r.Start(cat, bonus.Sources{}, 1)

	r.Deplete(2, 2)
	assert.Equal(t, 58.0, r.TimeLeft)

	// A non-positive period still consumes one second.
	r.Deplete(1, 0)
	assert.Equal(t, 57.0, r.TimeLeft)
}

func TestDone_Triggers(t *testing.T) {
	cat := testCatalog()
	var r Run
	r.Start(cat, bonus.Sources{}, 1)
	assert.False(t, r.Done())

	byRisk := r
	byRisk.AtRisk = 0
	assert.True(t, byRisk.Done())

	byClock := r
	byClock.TimeLeft = 0
	assert.True(t, byClock.Done())

	inactive := Run{}
	assert.False(t, inactive.Done())
}

func TestRescue_CanFinishEarly(t *testing.T) {
	cat := testCatalog()
	var r Run
	r.Start(cat, bonus.Sources{}, 1)

	r.Rescue(20)
	assert.Equal(t, 0.0, r.AtRisk)
	assert.True(t, r.Done())
	assert.Equal(t, 60.0, r.TimeLeft, "manual rescues do not consume the clock")
}

func TestReward_FloorsAndScales(t *testing.T) {
	r := Run{Active: true, Total: 20, AtRisk: 5}

	assert.Equal(t, 15.0, r.Reward(1.0))
	// 15 × 1.28 = 19.2
	assert.Equal(t, 19.0, r.Reward(1.28))
}

func TestReward_TimeoutPaysPartial(t *testing.T) {
	r := Run{Active: true, Total: 20, AtRisk: 12, TimeLeft: 0}
	require.True(t, r.Done())
	assert.Equal(t, 8.0, r.Reward(1.0))
}

func TestAdvance_Wraps(t *testing.T) {
	cat := testCatalog()
	r := Run{Index: 0}
	r.Advance(cat)
	assert.Equal(t, 1, r.Index)
	r.Advance(cat)
	assert.Equal(t, 0, r.Index)
}

func TestSpec(t *testing.T) {
	cat := testCatalog()
	r := Run{Index: 1}
	spec, ok := r.Spec(cat)
	require.True(t, ok)
	assert.Equal(t, "Bamboo Forest Sweep", spec.Name)

	r.Index = 99
	_, ok = r.Spec(cat)
	assert.False(t, ok)
}
