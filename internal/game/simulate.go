/*
Package game
File: simulate.go
Description:
    The combat resolution engine. One call to Resolve consumes a mission
    and a destination snapshot and returns a MissionReport; it performs
    no I/O, never mutates its inputs, and draws all randomness from the
    injected source, so two runs with the same seed produce identical
    reports.

    Round structure:
    1. Attacker fires, then defender fires (never on missile strikes).
       Shields of the side being fired on regenerate at the start of
       each exchange; the planetary shield pool does not.
    2. Crawlers repair damaged turrets.
    3. Bombers degrade buildings once the planetary shield is down.
    4. Snapshot, then casualty removal, round-1 probe withdrawal and
       War Sun destruction attempts.
*/

package game

import (
	"math"
	"math/rand"
	"sort"
)

// rapidFireNever is the sentinel used when the firer has no rapid-fire
// entry against the target kind. As a fraction it always exceeds a
// uniform draw from [0,1), so the firing loop stops after one shot.
const rapidFireNever = 101

// Simulator resolves mission arrivals. It is cheap to construct; build
// one per resolution with a dedicated random source when reproducible
// replays are needed.
type Simulator struct {
	cfg Balance
	rng *rand.Rand
}

// NewSimulator returns a simulator using the given tuning values and
// random source. Zeroed Balance fields fall back to defaults.
func NewSimulator(cfg Balance, rng *rand.Rand) *Simulator {
	return &Simulator{cfg: cfg.normalize(), rng: rng}
}

// Resolve simulates the arrival of one mission at its destination.
func (s *Simulator) Resolve(turn int, m Mission, planet PlanetState) MissionReport {
	// Fast path: deploying, or colonizing a planet already held by the
	// owner, never triggers combat. The report mirrors the inputs and
	// is hidden when the origin is no longer in the owner's hands
	// (suppresses duplicate reports for returning fleets/probes).
	if m.Objective == Deploy || (m.Objective == Colonize && planet.Controller == m.Owner) {
		return MissionReport{
			Turn:              turn,
			Mission:           m,
			Planet:            planet,
			SurvivingAttacker: m.Fleet.Clone(),
			SurvivingDefender: planet.Forces.Clone(),
			Colonized:         m.Objective == Colonize,
			Hidden:            !m.OriginHeld,
		}
	}

	b := s.newBattle(m, planet)
	b.run()
	return b.report(turn)
}

// battle holds the transient state of one simulation run.
type battle struct {
	cfg    Balance
	rng    *rand.Rand
	m      Mission
	planet PlanetState

	attacker []*CombatUnit
	defender []*CombatUnit

	buildings    Army // Kept aside, not combat participants
	planetShield int  // Pooled defense, depletes across the battle

	interceptorsUsed int          // Antiballistic missiles expended so far
	usedInterceptors map[int]bool // Instance IDs that already intercepted

	shotsRecorded   int
	returningProbes int
	destroyed       bool
	rounds          []RoundReport
}

func (s *Simulator) newBattle(m Mission, planet PlanetState) *battle {
	b := &battle{
		cfg:              s.cfg,
		rng:              s.rng,
		m:                m,
		planet:           planet,
		usedInterceptors: map[int]bool{},
	}

	b.buildings = planet.Forces.Filter(func(k UnitKind) bool { return k.IsBuilding() })
	b.planetShield = b.buildings.Amount(ShieldGenerator) * s.cfg.ShieldPointsPerLevel

	nextID := 1

	// Colony ships never fight; buildings cannot be part of a fleet but
	// are filtered for safety.
	b.attacker = explode(m.Fleet, func(k UnitKind) bool {
		return k != ColonyShip && !k.IsBuilding()
	}, &nextID)

	// Defenders exclude buildings, colony ships and missiles, except
	// that a missile strike lets antiballistic missiles stand, since
	// they must be able to intercept.
	b.defender = explode(planet.Forces, func(k UnitKind) bool {
		if k.IsBuilding() || k == ColonyShip {
			return false
		}
		if k.IsMissile() {
			return m.Objective == MissileStrike && k == AntiballisticMissile
		}
		return true
	}, &nextID)

	sortByFiringOrder(b.attacker)
	sortByFiringOrder(b.defender)
	return b
}

// sortByFiringOrder applies the fixed global ranking. The sort is
// stable so equal-ranked instances keep their explode order.
func sortByFiringOrder(units []*CombatUnit) {
	sort.SliceStable(units, func(i, j int) bool {
		return units[i].Kind.FiringRank() < units[j].Kind.FiringRank()
	})
}

// run executes the round loop. At least one round runs even if one side
// starts empty (so a one-sided battle still yields a round 1 snapshot);
// nothing runs if both sides start empty. MaxRounds caps stalemates
// where neither side can deal damage.
func (b *battle) run() {
	if len(b.attacker) == 0 && len(b.defender) == 0 {
		return
	}
	for round := 1; round <= b.cfg.MaxRounds; round++ {
		b.playRound(round)
		if b.destroyed || len(b.attacker) == 0 || len(b.defender) == 0 {
			return
		}
	}
}

func (b *battle) playRound(round int) {
	// Attacker exchange
	resetRoundLogs(b.attacker)
	regenerateShields(b.defender)
	b.fireSide(b.attacker, b.defender, SideAttacker)

	// Defender exchange; defenses cannot return fire against an
	// incoming missile strike.
	if b.m.Objective != MissileStrike {
		resetRoundLogs(b.defender)
		regenerateShields(b.attacker)
		b.fireSide(b.defender, b.attacker, SideDefender)
	}

	b.repairPhase()
	b.bombingPhase()
	b.snapshot(round)
	b.attacker = removeCasualties(b.attacker)
	b.defender = removeCasualties(b.defender)
	if round == 1 {
		b.withdrawProbes()
	}
	b.attemptDestruction(round)
}

func resetRoundLogs(units []*CombatUnit) {
	for _, u := range units {
		u.resetRound()
	}
}

// regenerateShields resets a side's shields to their per-kind maximum.
// Shields recover before being targeted in every exchange; only the
// planetary shield pool carries damage across rounds.
func regenerateShields(units []*CombatUnit) {
	for _, u := range units {
		u.Shield = Stats(u.Kind).Shield
	}
}

// fireSide lets every unit of the acting side take its turn in firing
// order. Units downed earlier in the round still act: removal happens
// only at the end of the round, which emulates simultaneous fire.
func (b *battle) fireSide(acting, enemy []*CombatUnit, side Side) {
	for _, u := range acting {
		if u.Kind == InterplanetaryMissile {
			if b.intercepted(u, enemy) {
				continue
			}
		}
		if Stats(u.Kind).Damage > 0 {
			b.fireUnit(u, enemy, side)
		}
		if u.Kind == InterplanetaryMissile {
			u.Hull = 0 // single-use: expended on launch
		}
	}
}

// intercepted runs the missile interception side-channel: the first
// antiballistic missile that has not yet fired this battle is expended
// against the incoming missile and downs it half the time. A failed
// attempt is recorded as a miss and the missile proceeds normally.
func (b *battle) intercepted(missile *CombatUnit, enemy []*CombatUnit) bool {
	for _, e := range enemy {
		if e.Kind != AntiballisticMissile || !e.alive() || b.usedInterceptors[e.ID] {
			continue
		}
		b.usedInterceptors[e.ID] = true
		b.interceptorsUsed++
		if b.rng.Float64() < b.cfg.InterceptionChance {
			b.record(e, Shot{Target: missile.Kind, HullDamage: missile.Hull, Killed: true})
			missile.Hull = 0
			return true
		}
		b.record(e, Shot{Target: missile.Kind, Missed: true})
		return false
	}
	return false
}

// fireUnit runs one unit's firing loop, which may chain several shots
// in the same round through rapid fire.
func (b *battle) fireUnit(u *CombatUnit, enemy []*CombatUnit, side Side) {
	rapid := false
	for {
		target, hitsPlanetShield, ok := b.pickTarget(u, enemy, side)
		if !ok {
			return
		}

		shot := Shot{RapidFire: rapid}
		damage := Stats(u.Kind).Damage

		switch {
		case hitsPlanetShield:
			if damage > b.planetShield {
				damage = b.planetShield
			}
			b.planetShield -= damage
			shot.PlanetShieldDamage = damage
		case !target.alive():
			// Destroyed earlier this same round by a prior shot.
			shot.Target = target.Kind
			shot.Missed = true
		default:
			shot.Target = target.Kind
			absorbed := damage
			if absorbed > target.Shield {
				absorbed = target.Shield
			}
			target.Shield -= absorbed
			hullDamage := damage - absorbed
			if hullDamage > target.Hull {
				hullDamage = target.Hull
			}
			target.Hull -= hullDamage
			shot.ShieldDamage = absorbed
			shot.HullDamage = hullDamage
			shot.Killed = target.Hull <= 0
		}
		b.record(u, shot)

		// Rapid-fire continuation. NOTE: the percentage is compared so
		// that a higher value makes stopping MORE likely; this matches
		// the long-standing engine behavior even though the catalog
		// reads like a continuation probability. Do not "fix" the
		// polarity without a balance pass (see DESIGN.md).
		pct := rapidFireNever
		if target != nil {
			if v, ok := Stats(u.Kind).RapidFire[target.Kind]; ok {
				pct = v
			}
		}
		if float64(pct)/100.0 > b.rng.Float64() {
			return
		}
		rapid = true
	}
}

// pickTarget implements the priority targeting rules. It returns either
// a concrete unit target or hitsPlanetShield=true for a pooled-shield
// hit; ok=false means no eligible target exists and the unit stops.
func (b *battle) pickTarget(u *CombatUnit, enemy []*CombatUnit, side Side) (target *CombatUnit, hitsPlanetShield bool, ok bool) {
	// (a) Interplanetary missiles only ever strike ground defenses,
	// sparing the space dock and other missiles.
	if u.Kind == InterplanetaryMissile {
		candidates := filterUnits(enemy, func(e *CombatUnit) bool {
			return e.Kind.IsDefense() && !e.Kind.IsMissile() && e.Kind != SpaceDock
		})
		if len(candidates) == 0 {
			return nil, false, false
		}
		return candidates[b.rng.Intn(len(candidates))], false, true
	}

	// (b) Raiding bombers hammer the planetary shield until it drops.
	if u.Kind == Bomber && side == SideAttacker && b.m.Raid != RaidNone && b.planetShield > 0 {
		return nil, true, true
	}

	// (c) Everyone else picks uniformly among non-missile enemies; a
	// ground defense behind a standing planetary shield soaks the hit
	// into the shield instead (the space dock orbits above it).
	candidates := filterUnits(enemy, func(e *CombatUnit) bool {
		return !e.Kind.IsMissile()
	})
	if len(candidates) == 0 {
		return nil, false, false
	}
	picked := candidates[b.rng.Intn(len(candidates))]
	if picked.Kind.IsDefense() && picked.Kind != SpaceDock && b.planetShield > 0 {
		return nil, true, true
	}
	return picked, false, true
}

func filterUnits(units []*CombatUnit, keep func(*CombatUnit) bool) []*CombatUnit {
	var out []*CombatUnit
	for _, u := range units {
		if keep(u) {
			out = append(out, u)
		}
	}
	return out
}

func (b *battle) record(u *CombatUnit, shot Shot) {
	u.Shots = append(u.Shots, shot)
	b.shotsRecorded++
}

// repairPhase lets each surviving crawler heal one randomly chosen
// damaged turret by the configured amount, capped at its missing hull.
// Turrets already at zero are beyond saving.
func (b *battle) repairPhase() {
	for _, c := range b.defender {
		if c.Kind != Crawler || !c.alive() {
			continue
		}
		damaged := filterUnits(b.defender, func(d *CombatUnit) bool {
			return d.Kind.IsTurret() && d.Hull > 0 && d.Hull < Stats(d.Kind).Hull
		})
		if len(damaged) == 0 {
			continue
		}
		t := damaged[b.rng.Intn(len(damaged))]
		heal := b.cfg.CrawlerHealPerRound
		if missing := Stats(t.Kind).Hull - t.Hull; heal > missing {
			heal = missing
		}
		t.Hull += heal
		t.Repairs = append(t.Repairs, heal)
	}
}

// bombingPhase runs once the planetary shield is fully depleted: each
// surviving attacking bomber tries to strip one level off a random
// building of the raid's category.
func (b *battle) bombingPhase() {
	if b.m.Raid == RaidNone || b.planetShield > 0 {
		return
	}
	class := b.m.Raid.class()
	for _, u := range b.attacker {
		if u.Kind != Bomber || !u.alive() {
			continue
		}
		candidates := b.buildings.Filter(func(k UnitKind) bool {
			return Stats(k).Raid == class
		}).Kinds()
		if len(candidates) == 0 {
			return
		}
		k := candidates[b.rng.Intn(len(candidates))]
		if b.rng.Float64() < b.cfg.BombingChance {
			b.buildings.Remove(k, 1)
			b.record(u, Shot{Target: k, Killed: true})
		} else {
			b.record(u, Shot{Target: k, Missed: true})
		}
	}
}

// snapshot records the round before dead units are swept away, so the
// replay shows every unit's final moments.
func (b *battle) snapshot(round int) {
	rr := RoundReport{
		Round:            round,
		Attacker:         snapshotUnits(b.attacker),
		Defender:         snapshotUnits(b.defender),
		PlanetShield:     b.planetShield,
		InterceptorsUsed: b.interceptorsUsed,
		Buildings:        b.buildings.Clone(),
	}
	b.rounds = append(b.rounds, rr)
}

func snapshotUnits(units []*CombatUnit) []CombatUnit {
	out := make([]CombatUnit, 0, len(units))
	for _, u := range units {
		out = append(out, u.snapshot())
	}
	return out
}

func removeCasualties(units []*CombatUnit) []*CombatUnit {
	out := units[:0]
	for _, u := range units {
		if u.alive() {
			out = append(out, u)
		}
	}
	return out
}

// withdrawProbes pulls surviving attacking probes out after round 1.
// Spy missions always recall their scouts; otherwise probes disengage
// unless the mission keeps them in combat, and only while the defender
// still has forces worth running from.
func (b *battle) withdrawProbes() {
	if b.m.Objective != Spy && (b.m.CombatProbes || len(b.defender) == 0) {
		return
	}
	kept := b.attacker[:0]
	for _, u := range b.attacker {
		if u.Kind == Probe {
			b.returningProbes++
		} else {
			kept = append(kept, u)
		}
	}
	b.attacker = kept
}

// attemptDestruction gives each surviving War Sun an independent shot
// at cracking the planet, once the defender has no ships or space dock
// left to contest orbit. The base probability decays one point per
// elapsed round, floored at zero; the recorded value is the combined
// chance of at least one success, whatever the dice actually did.
func (b *battle) attemptDestruction(round int) {
	if b.m.Objective != Destroy {
		return
	}
	for _, d := range b.defender {
		if d.Kind.IsShip() || d.Kind == SpaceDock {
			return
		}
	}
	suns := 0
	for _, u := range b.attacker {
		if u.Kind == WarSun {
			suns++
		}
	}
	p := b.planet.DestroyChance - float64(round-1)*b.cfg.DestroyDecayPerRound
	if p < 0 {
		p = 0
	}
	b.rounds[len(b.rounds)-1].DestroyChance = 1 - math.Pow(1-p, float64(suns))
	for i := 0; i < suns; i++ {
		if b.rng.Float64() < p {
			b.destroyed = true
			b.defender = nil
			break
		}
	}
}

// report performs the post-battle bookkeeping and assembles the output.
func (b *battle) report(turn int) MissionReport {
	survivingAttacker := tally(b.attacker)
	survivingDefender := tally(b.defender)

	// The continuing side gets its non-combatants back. Colony ships
	// never fight and are not lost to attrition; the defender's missile
	// stock only ever participates during a missile strike, so outside
	// of one it is reattached wholesale (minus expended interceptors).
	attackerContinues := len(b.attacker) > 0 || len(b.defender) == 0
	if attackerContinues {
		survivingAttacker.Add(ColonyShip, b.m.Fleet.Amount(ColonyShip))
	} else {
		forces := b.planet.Forces
		survivingDefender.Add(ColonyShip, forces.Amount(ColonyShip))
		if b.m.Objective == MissileStrike {
			// Interceptors survive as combat units here; drop the
			// ones that were fired. The defender's own interplanetary
			// missiles sit out the strike entirely and come back whole.
			survivingDefender.Remove(AntiballisticMissile, b.interceptorsUsed)
			survivingDefender.Add(InterplanetaryMissile, forces.Amount(InterplanetaryMissile))
		} else {
			survivingDefender.Add(AntiballisticMissile, forces.Amount(AntiballisticMissile)-b.interceptorsUsed)
			survivingDefender.Add(InterplanetaryMissile, forces.Amount(InterplanetaryMissile))
		}
	}

	survivingAttacker.Add(Probe, b.returningProbes)

	if !b.destroyed {
		survivingDefender.Merge(b.buildings)
	}

	colonized := b.m.Objective == Colonize && survivingDefender.Total() == 0
	if colonized {
		// The settling colony ship is consumed claiming the planet.
		survivingAttacker.Remove(ColonyShip, 1)
	}

	var combat *CombatReport
	if b.shotsRecorded > 0 || b.m.Objective == Destroy {
		// A destroy mission always carries a report so the destruction
		// chance is visible even when no shots were fired.
		combat = &CombatReport{Rounds: b.rounds}
	}

	return MissionReport{
		Turn:              turn,
		Mission:           b.m,
		Planet:            b.planet,
		ReturningProbes:   b.returningProbes,
		SurvivingAttacker: survivingAttacker,
		SurvivingDefender: survivingDefender,
		Colonized:         colonized,
		Destroyed:         b.destroyed,
		Combat:            combat,
	}
}
