package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The catalog must be exhaustive: every enumerated kind has a complete
// sheet and a unique stable key. A hole here is a defect, not a runtime
// condition, which is why Stats has no error return.
func TestCatalogExhaustive(t *testing.T) {
	assert.Len(t, AllKinds, 32) // 14 buildings + 10 ships + 8 defenses

	seenKeys := map[string]bool{}
	for _, k := range AllKinds {
		st := Stats(k)
		require.NotEmpty(t, st.Key, "kind %d has no catalog entry", int(k))
		require.NotEmpty(t, st.Name, "%s has no display name", st.Key)
		require.NotZero(t, st.Family, "%s has no family", st.Key)
		require.False(t, seenKeys[st.Key], "duplicate key %s", st.Key)
		seenKeys[st.Key] = true

		if st.Family != FamilyBuilding {
			assert.Positive(t, st.Hull, "%s must have hull", st.Key)
		}
	}
}

func TestCatalogFamilies(t *testing.T) {
	counts := map[Family]int{}
	for _, k := range AllKinds {
		counts[k.Family()]++
	}
	assert.Equal(t, 14, counts[FamilyBuilding])
	assert.Equal(t, 10, counts[FamilyShip])
	assert.Equal(t, 8, counts[FamilyDefense])
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, Cruiser.IsShip())
	assert.True(t, Cruiser.IsCombatShip())
	assert.False(t, ColonyShip.IsCombatShip())
	assert.False(t, Probe.IsCombatShip())
	assert.True(t, LaserTurret.IsDefense())
	assert.True(t, LaserTurret.IsTurret())
	assert.False(t, Crawler.IsTurret())
	assert.True(t, AntiballisticMissile.IsMissile())
	assert.True(t, InterplanetaryMissile.IsMissile())
	assert.False(t, SpaceDock.IsMissile())
	assert.True(t, ShieldGenerator.IsBuilding())
}

func TestRapidFireTablesReferenceValidKinds(t *testing.T) {
	for _, k := range AllKinds {
		for opponent, pct := range Stats(k).RapidFire {
			assert.NotEmpty(t, Stats(opponent).Key, "%s rapid-fire references unknown kind", k)
			assert.Greater(t, pct, 0)
			assert.LessOrEqual(t, pct, 100)
		}
	}
}

func TestFiringOrder(t *testing.T) {
	// Missiles open the round, crawlers close it; unranked kinds
	// (buildings, colony ships) sort after everything ranked.
	assert.Less(t, InterplanetaryMissile.FiringRank(), WarSun.FiringRank())
	assert.Less(t, WarSun.FiringRank(), LaserTurret.FiringRank())
	assert.Less(t, LaserTurret.FiringRank(), Crawler.FiringRank())
	assert.Greater(t, ColonyShip.FiringRank(), Crawler.FiringRank())
	assert.Greater(t, OreExtractor.FiringRank(), Crawler.FiringRank())
}

func TestParseUnitKindRoundTrip(t *testing.T) {
	for _, k := range AllKinds {
		parsed, err := ParseUnitKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	_, err := ParseUnitKind("death_star")
	assert.Error(t, err)
}

func TestObjectiveAndRaidRoundTrip(t *testing.T) {
	for _, o := range []Objective{Attack, Deploy, Colonize, Spy, Destroy, MissileStrike} {
		parsed, err := ParseObjective(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, parsed)
	}
	for _, r := range []RaidTarget{RaidNone, RaidEconomic, RaidIndustrial} {
		parsed, err := ParseRaidTarget(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
	// Empty raid means no raid (the common case on the wire)
	parsed, err := ParseRaidTarget("")
	require.NoError(t, err)
	assert.Equal(t, RaidNone, parsed)
}
