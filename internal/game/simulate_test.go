package game

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runBattle(seed int64, m Mission, p PlanetState) MissionReport {
	sim := NewSimulator(DefaultBalance(), rand.New(rand.NewSource(seed)))
	return sim.Resolve(1, m, p)
}

func TestDeployShortCircuit(t *testing.T) {
	fleet := Army{Cruiser: 3, CargoHauler: 5}
	forces := Army{LaserTurret: 10, OreExtractor: 4}

	rep := runBattle(7, Mission{
		Owner: "alice", Objective: Deploy, Fleet: fleet, OriginHeld: true,
	}, PlanetState{Key: "vega_iii", Owner: "alice", Controller: "alice", Forces: forces})

	assert.Nil(t, rep.Combat)
	assert.Equal(t, fleet, rep.SurvivingAttacker)
	assert.Equal(t, forces, rep.SurvivingDefender)
	assert.False(t, rep.Colonized)
	assert.False(t, rep.Destroyed)
	assert.False(t, rep.Hidden)
}

func TestDeployFromLostOriginIsHidden(t *testing.T) {
	rep := runBattle(7, Mission{
		Owner: "alice", Objective: Deploy, Fleet: Army{Probe: 1}, OriginHeld: false,
	}, PlanetState{Controller: "alice"})

	assert.True(t, rep.Hidden)
}

func TestColonizeEmptyPlanet(t *testing.T) {
	rep := runBattle(3, Mission{
		Owner: "alice", Objective: Colonize, Fleet: Army{ColonyShip: 1}, OriginHeld: true,
	}, PlanetState{Key: "frontier", Forces: Army{}})

	assert.Nil(t, rep.Combat)
	assert.True(t, rep.Colonized)
	// The settling colony ship is consumed claiming the planet
	assert.Equal(t, 0, rep.SurvivingAttacker.Total())
	assert.Equal(t, 0, rep.SurvivingDefender.Total())
	assert.False(t, rep.Hidden)
}

func TestColonizeDefendedPlanet(t *testing.T) {
	rep := runBattle(11, Mission{
		Owner: "alice", Objective: Colonize, Fleet: Army{ColonyShip: 1, Cruiser: 1}, OriginHeld: true,
	}, PlanetState{Key: "contested", Controller: "bob", Forces: Army{LaserTurret: 1}})

	// One cruiser shot is enough for a laser turret
	require.NotNil(t, rep.Combat)
	assert.True(t, rep.Colonized)
	assert.Equal(t, 1, rep.SurvivingAttacker.Amount(Cruiser))
	assert.Equal(t, 0, rep.SurvivingAttacker.Amount(ColonyShip))
	assert.Equal(t, 0, rep.SurvivingDefender.Total())
}

func TestReplayDeterminism(t *testing.T) {
	m := Mission{
		Owner: "alice", Objective: Attack, Raid: RaidEconomic, OriginHeld: true,
		Fleet: Army{LightFighter: 40, Cruiser: 12, Bomber: 4, Battleship: 3, Probe: 2},
	}
	p := PlanetState{
		Key: "fortress", Owner: "bob", Controller: "bob",
		Forces: Army{
			LaserTurret: 30, IonTurret: 8, RailgunTurret: 2, Crawler: 3,
			SpaceDock: 1, ShieldGenerator: 2, OreExtractor: 12, Shipyard: 4,
			LightFighter: 20, AntiballisticMissile: 3,
		},
	}

	a, err := json.Marshal(runBattle(1234, m, p))
	require.NoError(t, err)
	b, err := json.Marshal(runBattle(1234, m, p))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed and inputs must replay bit for bit")
}

func TestConservationAndShieldBeforeHull(t *testing.T) {
	rep := runBattle(99, Mission{
		Owner: "alice", Objective: Attack, Fleet: Army{Cruiser: 5}, OriginHeld: true,
	}, PlanetState{Controller: "bob", Forces: Army{LightFighter: 20}})

	require.NotNil(t, rep.Combat)
	require.NotEmpty(t, rep.Combat.Rounds)

	attackerKills, defenderKills := 0, 0
	for _, round := range rep.Combat.Rounds {
		for _, u := range round.Attacker {
			for _, s := range u.Shots {
				if s.Killed {
					attackerKills++
				}
				checkShot(t, u.Kind, s)
			}
		}
		for _, u := range round.Defender {
			for _, s := range u.Shots {
				if s.Killed {
					defenderKills++
				}
				checkShot(t, u.Kind, s)
			}
		}
	}

	// Every unit present at round 1 ends as a survivor or a recorded kill
	assert.Equal(t, 5, rep.SurvivingAttacker.Total()+defenderKills)
	assert.Equal(t, 20, rep.SurvivingDefender.Total()+attackerKills)
}

func checkShot(t *testing.T, firer UnitKind, s Shot) {
	t.Helper()
	damage := Stats(firer).Damage
	assert.LessOrEqual(t, s.ShieldDamage+s.HullDamage, damage)
	if s.Target != 0 {
		assert.LessOrEqual(t, s.ShieldDamage, Stats(s.Target).Shield)
	}
	if s.Missed {
		assert.Zero(t, s.ShieldDamage+s.HullDamage)
	}
}

func TestProbeWithdrawalAfterRoundOne(t *testing.T) {
	rep := runBattle(5, Mission{
		Owner: "alice", Objective: Attack, Fleet: Army{Probe: 5}, CombatProbes: false, OriginHeld: true,
	}, PlanetState{Controller: "bob", Forces: Army{LaserTurret: 3}})

	require.NotNil(t, rep.Combat)
	assert.Len(t, rep.Combat.Rounds, 1)

	killed := 0
	for _, u := range rep.Combat.Rounds[0].Defender {
		for _, s := range u.Shots {
			if s.Killed {
				killed++
			}
		}
	}
	assert.Equal(t, 5, rep.ReturningProbes+killed, "probes are either shot down or disengage")
	assert.Equal(t, rep.ReturningProbes, rep.SurvivingAttacker.Amount(Probe))

	// Scouts alone do not carry a win
	assert.Equal(t, "bob", rep.Winner())
}

func TestSpyAlwaysRecallsProbes(t *testing.T) {
	rep := runBattle(5, Mission{
		Owner: "alice", Objective: Spy, Fleet: Army{Probe: 3}, CombatProbes: true, OriginHeld: true,
	}, PlanetState{Controller: "bob", Forces: Army{LaserTurret: 1}})

	assert.Positive(t, rep.ReturningProbes, "spy missions recall scouts even when probes are combat-flagged")
	assert.Equal(t, "", rep.Winner())
}

func TestMissileStrikeAsymmetry(t *testing.T) {
	rep := runBattle(21, Mission{
		Owner: "alice", Objective: MissileStrike, Fleet: Army{InterplanetaryMissile: 3}, OriginHeld: true,
	}, PlanetState{Controller: "bob", Forces: Army{
		AntiballisticMissile: 2, LaserTurret: 4, LightFighter: 2, OreExtractor: 1,
	}})

	require.NotNil(t, rep.Combat)
	require.Len(t, rep.Combat.Rounds, 1, "missiles are single-use, a strike resolves in one round")

	round := rep.Combat.Rounds[0]
	assert.Equal(t, 2, round.InterceptorsUsed)
	for _, u := range round.Defender {
		if u.Kind != AntiballisticMissile {
			assert.Empty(t, u.Shots, "defenses never return fire against a missile strike")
		}
	}

	// Expended interceptors are gone; the rest of the stock and the
	// untouched fighters remain.
	assert.Equal(t, 0, rep.SurvivingDefender.Amount(AntiballisticMissile))
	assert.Equal(t, 2, rep.SurvivingDefender.Amount(LightFighter))
	assert.Equal(t, 1, rep.SurvivingDefender.Amount(OreExtractor))
	assert.Equal(t, 0, rep.SurvivingAttacker.Total())
	assert.Equal(t, "bob", rep.Winner())
}

func TestMissileStrikeKeepsDefenderMissileStock(t *testing.T) {
	// The defender's own interplanetary missiles never launch in defense
	// of a strike; whatever the silo held before must still be there.
	rep := runBattle(9, Mission{
		Owner: "alice", Objective: MissileStrike, Fleet: Army{InterplanetaryMissile: 1}, OriginHeld: true,
	}, PlanetState{Controller: "bob", Forces: Army{
		InterplanetaryMissile: 2, LaserTurret: 3,
	}})

	require.NotNil(t, rep.Combat)
	assert.Equal(t, 2, rep.SurvivingDefender.Amount(InterplanetaryMissile))
	// With no interceptors standing, the lone missile takes out exactly
	// one turret before it is expended.
	assert.Equal(t, 2, rep.SurvivingDefender.Amount(LaserTurret))
	assert.Equal(t, 0, rep.SurvivingAttacker.Total())
}

func TestMissileStockReattachedOutsideStrikes(t *testing.T) {
	// The lone fighter dies; the defender's missiles never fought and
	// come back wholesale.
	rep := runBattle(2, Mission{
		Owner: "alice", Objective: Attack, Fleet: Army{LightFighter: 1}, OriginHeld: true,
	}, PlanetState{Controller: "bob", Forces: Army{
		PlasmaTurret: 2, AntiballisticMissile: 4, InterplanetaryMissile: 2, ColonyShip: 1,
	}})

	assert.Equal(t, 0, rep.SurvivingAttacker.Total())
	assert.Equal(t, 4, rep.SurvivingDefender.Amount(AntiballisticMissile))
	assert.Equal(t, 2, rep.SurvivingDefender.Amount(InterplanetaryMissile))
	assert.Equal(t, 1, rep.SurvivingDefender.Amount(ColonyShip))
	assert.Equal(t, 2, rep.SurvivingDefender.Amount(PlasmaTurret))
}

func TestDestroyChanceRecordedOnRoundOne(t *testing.T) {
	rep := runBattle(8, Mission{
		Owner: "alice", Objective: Destroy, Fleet: Army{WarSun: 1}, OriginHeld: true,
	}, PlanetState{Controller: "bob", Forces: Army{OreExtractor: 2}, DestroyChance: 0.25})

	// A destroy mission always carries a combat report, even without shots
	require.NotNil(t, rep.Combat)
	require.NotEmpty(t, rep.Combat.Rounds)
	assert.InDelta(t, 0.25, rep.Combat.Rounds[0].DestroyChance, 1e-9,
		"one War Sun on round 1 attempts at the undecayed base probability")
}

func TestDestroyWipesDefender(t *testing.T) {
	rep := runBattle(8, Mission{
		Owner: "alice", Objective: Destroy, Fleet: Army{WarSun: 2}, OriginHeld: true,
	}, PlanetState{Controller: "bob", Forces: Army{LaserTurret: 1, OreExtractor: 3}, DestroyChance: 1.0})

	assert.True(t, rep.Destroyed)
	assert.Equal(t, 0, rep.SurvivingDefender.Total(), "a destroyed planet keeps nothing, buildings included")
	assert.Equal(t, 2, rep.SurvivingAttacker.Amount(WarSun))
	assert.Equal(t, "alice", rep.Winner())
}

func TestBombingRaidBehindShield(t *testing.T) {
	rep := runBattle(17, Mission{
		Owner: "alice", Objective: Attack, Fleet: Army{Bomber: 2}, Raid: RaidEconomic, OriginHeld: true,
	}, PlanetState{Controller: "bob", Forces: Army{
		ShieldGenerator: 1, LaserTurret: 1, OreExtractor: 5,
	}})

	require.NotNil(t, rep.Combat)
	round1 := rep.Combat.Rounds[0]

	// Two bombers drain the 2000-point shield in the opening exchange,
	// then immediately begin the raid.
	shieldDamage, bombAttempts, bombKills := 0, 0, 0
	for _, round := range rep.Combat.Rounds {
		for _, u := range round.Attacker {
			for _, s := range u.Shots {
				shieldDamage += s.PlanetShieldDamage
				if s.Target == OreExtractor {
					bombAttempts++
					if s.Killed {
						bombKills++
					}
				}
			}
		}
	}
	assert.Equal(t, 2000, shieldDamage)
	assert.Equal(t, 0, round1.PlanetShield)
	assert.Positive(t, bombAttempts)
	assert.Equal(t, 5-bombKills, rep.SurvivingDefender.Amount(OreExtractor))
	assert.Equal(t, 1, rep.SurvivingDefender.Amount(ShieldGenerator), "generators are not an economic target")
}

func TestCrawlerRepairsDamagedTurret(t *testing.T) {
	b := &battle{cfg: DefaultBalance(), rng: rand.New(rand.NewSource(1)), usedInterceptors: map[int]bool{}}
	turret := &CombatUnit{ID: 1, Kind: PlasmaTurret, Hull: 9990}
	crawler := &CombatUnit{ID: 2, Kind: Crawler, Hull: 1000}
	dead := &CombatUnit{ID: 3, Kind: LaserTurret, Hull: 0}
	b.defender = []*CombatUnit{turret, crawler, dead}

	b.repairPhase()

	// Heal is capped at the missing hull; destroyed turrets are beyond saving
	assert.Equal(t, 10000, turret.Hull)
	assert.Equal(t, []int{10}, turret.Repairs)
	assert.Equal(t, 0, dead.Hull)
	assert.Empty(t, dead.Repairs)
}

func TestStalemateTerminates(t *testing.T) {
	// Neither a combat-flagged probe nor a crawler can deal damage;
	// the round cap ends the standoff with both sides intact.
	rep := runBattle(4, Mission{
		Owner: "alice", Objective: Attack, Fleet: Army{Probe: 1}, CombatProbes: true, OriginHeld: true,
	}, PlanetState{Controller: "bob", Forces: Army{Crawler: 1}})

	assert.Nil(t, rep.Combat, "no shots were recorded")
	assert.Equal(t, 1, rep.SurvivingAttacker.Amount(Probe))
	assert.Equal(t, 1, rep.SurvivingDefender.Amount(Crawler))
}

func TestRapidFireComparisonPolarity(t *testing.T) {
	// The catalog value is compared such that a HIGHER percentage stops
	// the chain sooner: at 85 a cruiser averages ~1/0.85 shots per
	// round against light fighters. If someone "fixes" the polarity the
	// mean jumps to ~6.7 and this test fails.
	totalShots, trials := 0, 300
	for seed := int64(0); seed < int64(trials); seed++ {
		rep := runBattle(seed, Mission{
			Owner: "alice", Objective: Attack, Fleet: Army{Cruiser: 1}, OriginHeld: true,
		}, PlanetState{Controller: "bob", Forces: Army{LightFighter: 30}})
		require.NotNil(t, rep.Combat)
		for _, u := range rep.Combat.Rounds[0].Attacker {
			totalShots += len(u.Shots)
		}
	}
	mean := float64(totalShots) / float64(trials)
	assert.Greater(t, mean, 1.0)
	assert.Less(t, mean, 1.6)
}

func TestShieldsRegenerateEachRound(t *testing.T) {
	// Ion turrets carry a 500-point shield; fighters chip at it without
	// ever breaking through in one round, so every round's snapshot
	// must show shield damage being soaked again.
	rep := runBattle(13, Mission{
		Owner: "alice", Objective: Attack, Fleet: Army{LightFighter: 3}, OriginHeld: true,
	}, PlanetState{Controller: "bob", Forces: Army{IonTurret: 1}})

	require.NotNil(t, rep.Combat)
	require.Greater(t, len(rep.Combat.Rounds), 1)
	for _, round := range rep.Combat.Rounds {
		for _, u := range round.Attacker {
			for _, s := range u.Shots {
				if s.Target == IonTurret && !s.Missed {
					assert.Zero(t, s.HullDamage, "a 50-damage shot never out-damages a regenerated 500-point shield")
				}
			}
		}
	}
}

func TestBothSidesEmptyProducesNoRounds(t *testing.T) {
	rep := runBattle(1, Mission{
		Owner: "alice", Objective: Attack, Fleet: Army{}, OriginHeld: true,
	}, PlanetState{Controller: "bob", Forces: Army{OreExtractor: 3}})

	assert.Nil(t, rep.Combat)
	assert.Equal(t, 3, rep.SurvivingDefender.Amount(OreExtractor))
}
