package prestige

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fletchernt/extinction-escape/internal/bonus"
)

func TestPermitTarget(t *testing.T) {
	assert.Equal(t, 0.0, PermitTarget(999, 1000))
	assert.Equal(t, 1.0, PermitTarget(1000, 1000))
	assert.Equal(t, 2.0, PermitTarget(2500, 1000))
	assert.Equal(t, 0.0, PermitTarget(2500, 0))
}

func TestConvert_CreditsDelta(t *testing.T) {
	s := New()

	got := s.Convert(2500, 1000)
	assert.Equal(t, 2.0, got)
	assert.Equal(t, 2.0, s.PermitsTotal)
	assert.Equal(t, 2.0, s.PermitsAvailable)

	// No new lifetime progress, no new permits.
	got = s.Convert(2500, 1000)
	assert.Equal(t, 0.0, got)
	assert.Equal(t, 2.0, s.PermitsTotal)
	assert.Equal(t, 2.0, s.PermitsAvailable)

	got = s.Convert(4100, 1000)
	assert.Equal(t, 2.0, got)
	assert.Equal(t, 4.0, s.PermitsTotal)
	assert.Equal(t, 4.0, s.PermitsAvailable)
}

func TestConvert_GrantPushesTotalPastTarget(t *testing.T) {
	s := New()
	s.Grant(3)

	got := s.Convert(1000, 1000)
	assert.Equal(t, 0.0, got, "granted permits are not re-earned")
	assert.Equal(t, 3.0, s.PermitsTotal, "total never decreases")
	assert.Equal(t, 3.0, s.PermitsAvailable)

	got = s.Convert(5000, 1000)
	assert.Equal(t, 2.0, got)
	assert.Equal(t, 5.0, s.PermitsTotal)
	assert.Equal(t, 5.0, s.PermitsAvailable)
}

func TestGrant_IgnoresNonPositive(t *testing.T) {
	s := New()
	s.Grant(0)
	s.Grant(-2)
	assert.Equal(t, 0.0, s.PermitsTotal)
}

func TestSpend(t *testing.T) {
	s := New()
	s.Grant(3)

	assert.False(t, s.Spend(4))
	assert.Equal(t, 3.0, s.PermitsAvailable)

	assert.True(t, s.Spend(3))
	assert.Equal(t, 0.0, s.PermitsAvailable)
	assert.Equal(t, 3.0, s.PermitsTotal, "spending leaves the lifetime total alone")
}

func TestPurchase_CostCurve(t *testing.T) {
	s := New()
	s.Grant(10)
	shop := DefaultShop()
	rate := shop[0]
	require.Equal(t, KindRate, rate.Kind)

	assert.Equal(t, 1.0, s.NextCost(rate))
	require.True(t, s.Purchase(rate))
	assert.Equal(t, 1, s.Upgrades[KindRate])
	assert.Equal(t, 1.0, s.NextCost(rate)) // floor(1 × 1.5)

	require.True(t, s.Purchase(rate))
	assert.Equal(t, 2.0, s.NextCost(rate)) // floor(1 × 1.5²)
	assert.Equal(t, 8.0, s.PermitsAvailable)
}

func TestPurchase_ShortPermitsIsNoOp(t *testing.T) {
	s := New()
	shop := DefaultShop()

	assert.False(t, s.Purchase(shop[0]))
	assert.Equal(t, 0, s.Upgrades[KindRate])
}

func TestBonusValues_ExcludesMap(t *testing.T) {
	s := New()
	s.Upgrades[KindRate] = 2
	s.Upgrades[KindTime] = 1
	s.Upgrades[KindMap] = 3

	v := s.BonusValues(DefaultShop())
	assert.InDelta(t, 0.20, v.Rate, 1e-9)
	assert.InDelta(t, 0.05, v.Time, 1e-9)
	assert.Equal(t, 0.0, v.Animals)
	assert.Equal(t, bonus.Values{Rate: 0.20, Time: 0.05}, v)
}

func TestReserveSlots(t *testing.T) {
	s := New()
	assert.Equal(t, 12, s.ReserveSlots(DefaultShop(), 12))

	s.Upgrades[KindMap] = 2
	assert.Equal(t, 20, s.ReserveSlots(DefaultShop(), 12))
}
