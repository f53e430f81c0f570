/*
Package game
File: battle.go
Description:
    Per-instance battle state. At setup every Army entry is exploded into
    'count' CombatUnits with stable sequential IDs; the IDs are what lets
    the engine track "this antiballistic missile already intercepted" and
    "this turret was already healed" across a battle, and they stay
    deterministic under a fixed seed.
*/

package game

// Shot is the immutable record of one fired shot. Target is zero when
// no specific enemy instance was aimed at (planetary-shield hits).
type Shot struct {
	Target             UnitKind `json:"target,omitempty"`               // Kind fired at, for display
	ShieldDamage       int      `json:"shield_damage,omitempty"`        // Absorbed by the target's shield
	HullDamage         int      `json:"hull_damage,omitempty"`          // Applied to the target's hull
	PlanetShieldDamage int      `json:"planet_shield_damage,omitempty"` // Drained from the planetary shield pool
	Missed             bool     `json:"missed,omitempty"`               // Fired at an already-dead target
	Killed             bool     `json:"killed,omitempty"`               // This shot destroyed the target
	RapidFire          bool     `json:"rapid_fire,omitempty"`           // Continuation shot, not the unit's first this round
}

// CombatUnit is one individually tracked instance of a unit during a
// battle. Created at battle start, mutated every round, removed the
// round its hull reaches zero; never resurrected.
type CombatUnit struct {
	ID      int      `json:"id"`                // Stable for the whole battle
	Kind    UnitKind `json:"kind"`              // Catalog reference
	Hull    int      `json:"hull"`              // Current hull points
	Shield  int      `json:"shield"`            // Current shield points
	Shots   []Shot   `json:"shots,omitempty"`   // Shots fired this round
	Repairs []int    `json:"repairs,omitempty"` // Heal amounts received this round
}

// alive reports whether the unit still counts as a combatant.
func (u *CombatUnit) alive() bool { return u.Hull > 0 }

// resetRound clears the unit's per-round event logs.
func (u *CombatUnit) resetRound() {
	u.Shots = nil
	u.Repairs = nil
}

// snapshot returns a deep copy safe to store in a RoundReport.
func (u *CombatUnit) snapshot() CombatUnit {
	c := *u
	if len(u.Shots) > 0 {
		c.Shots = make([]Shot, len(u.Shots))
		copy(c.Shots, u.Shots)
	}
	if len(u.Repairs) > 0 {
		c.Repairs = make([]int, len(u.Repairs))
		copy(c.Repairs, u.Repairs)
	}
	return c
}

// explode appends 'count' fresh instances of each kind in the army that
// passes the filter, assigning IDs from *nextID. Kinds are walked in
// canonical order so instance IDs are reproducible.
func explode(a Army, keep func(UnitKind) bool, nextID *int) []*CombatUnit {
	var units []*CombatUnit
	for _, k := range a.Kinds() {
		if !keep(k) {
			continue
		}
		st := Stats(k)
		for i := 0; i < a[k]; i++ {
			units = append(units, &CombatUnit{
				ID:     *nextID,
				Kind:   k,
				Hull:   st.Hull,
				Shield: st.Shield,
			})
			*nextID++
		}
	}
	return units
}

// tally folds surviving combat units back into an Army.
func tally(units []*CombatUnit) Army {
	out := Army{}
	for _, u := range units {
		if u.alive() {
			out.Add(u.Kind, 1)
		}
	}
	return out
}
