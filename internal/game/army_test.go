package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArmyAmountAndAdd(t *testing.T) {
	a := Army{}
	assert.Equal(t, 0, a.Amount(Cruiser))

	a.Add(Cruiser, 3)
	assert.Equal(t, 3, a.Amount(Cruiser))

	// Dropping to zero removes the entry entirely
	a.Remove(Cruiser, 3)
	_, present := a[Cruiser]
	assert.False(t, present)

	// Negative results are treated as absent too
	a.Add(Probe, -5)
	assert.Equal(t, 0, a.Amount(Probe))
	assert.Equal(t, 0, a.Total())
}

func TestArmyMerge(t *testing.T) {
	a := Army{Cruiser: 2, LaserTurret: 1}
	b := Army{Cruiser: 3, Probe: 4}
	a.Merge(b)

	assert.Equal(t, 5, a.Amount(Cruiser))
	assert.Equal(t, 1, a.Amount(LaserTurret))
	assert.Equal(t, 4, a.Amount(Probe))
	assert.Equal(t, 10, a.Total())

	// Merge must not mutate the source
	assert.Equal(t, 3, b.Amount(Cruiser))
}

func TestArmyFilterByCategory(t *testing.T) {
	a := Army{
		OreExtractor:          2,
		Cruiser:               3,
		LaserTurret:           4,
		AntiballisticMissile:  5,
		InterplanetaryMissile: 1,
	}

	buildings := a.Filter(UnitKind.IsBuilding)
	assert.Equal(t, Army{OreExtractor: 2}, buildings)

	missiles := a.Filter(UnitKind.IsMissile)
	assert.Equal(t, 6, missiles.Total())

	defenses := a.Filter(UnitKind.IsDefense)
	assert.Equal(t, 10, defenses.Total()) // turrets + both missile kinds
}

func TestArmyKindsCanonicalOrder(t *testing.T) {
	a := Army{PlasmaTurret: 1, OreExtractor: 1, Cruiser: 1, Probe: 1}
	kinds := a.Kinds()
	require.Len(t, kinds, 4)
	for i := 1; i < len(kinds); i++ {
		assert.Less(t, int(kinds[i-1]), int(kinds[i]))
	}
}

func TestArmyFromCounts(t *testing.T) {
	a, err := ArmyFromCounts(map[string]int{"cruiser": 2, "laser_turret": 1, "probe": 0})
	require.NoError(t, err)
	assert.Equal(t, Army{Cruiser: 2, LaserTurret: 1}, a)

	_, err = ArmyFromCounts(map[string]int{"battlecruiser": 1})
	assert.Error(t, err)
}
