/*
Package game
File: report.go
Description:
    The report model: passive data produced by the simulator plus the
    derived queries presentation needs (who won, which side a given
    viewer may see). No simulation logic lives here.
*/

package game

// Side identifies one of the two parties of a battle.
type Side int

const (
	SideAttacker Side = iota + 1
	SideDefender
)

// RoundReport is the immutable snapshot of one combat round, taken
// after firing and repairs but before dead units are removed.
type RoundReport struct {
	Round            int          `json:"round"`
	Attacker         []CombatUnit `json:"attacker"`           // With this round's shots/repairs
	Defender         []CombatUnit `json:"defender"`           // With this round's shots/repairs
	PlanetShield     int          `json:"planet_shield"`      // Remaining pool after this round
	InterceptorsUsed int          `json:"interceptors_used"`  // Cumulative antiballistic missiles expended
	Buildings        Army         `json:"buildings"`          // Defender's building stock this round
	DestroyChance    float64      `json:"destroy_chance"`     // Combined War Sun success chance; only meaningful on destruction-attempt rounds
}

// Units returns the requested side's unit snapshots for this round.
func (r *RoundReport) Units(s Side) []CombatUnit {
	if s == SideAttacker {
		return r.Attacker
	}
	return r.Defender
}

// CombatReport is the ordered sequence of round snapshots of one battle.
type CombatReport struct {
	Rounds []RoundReport `json:"rounds"`
}

// MissionReport is the final output of one mission resolution. The
// NewController field is filled in by the caller once it has applied
// the survivors back to world state.
type MissionReport struct {
	ID   string `json:"id"`   // Assigned by the caller (the simulator stays seed-pure)
	Turn int    `json:"turn"` // Turn the mission arrived on

	Mission Mission     `json:"mission"` // Copy of the order, for display
	Planet  PlanetState `json:"planet"`  // Pre-battle destination snapshot

	ReturningProbes   int  `json:"returning_probes"`   // Probes that disengaged after round 1
	SurvivingAttacker Army `json:"surviving_attacker"` // To be applied back by the caller
	SurvivingDefender Army `json:"surviving_defender"` // To be applied back by the caller

	Colonized     bool   `json:"colonized"`      // Planet was claimed by the mission owner
	Destroyed     bool   `json:"destroyed"`      // Planet was destroyed by a War Sun
	NewController string `json:"new_controller"` // Post-resolution ownership, caller-filled

	Combat *CombatReport `json:"combat,omitempty"` // Absent when no combat took place

	// Hidden suppresses the report in the attacker's own report list
	// (returning reconnaissance/fleet missions where it is redundant).
	Hidden bool `json:"hidden"`
}

// Winner returns the player who came out on top, or "" when there is
// none. A spy mission whose scouts got away is intentionally ambiguous.
// The attacker must keep something beyond the withdrawn probes to claim
// the win; otherwise it goes to the planet's prior controller.
func (r *MissionReport) Winner() string {
	if r.Mission.Objective == Spy && r.ReturningProbes > 0 {
		return ""
	}
	if r.SurvivingAttacker.Total() > r.ReturningProbes {
		return r.Mission.Owner
	}
	return r.Planet.Controller
}

// CanSee encodes the asymmetric fog-of-war over a finished report:
// the attacker's side is visible to the mission owner, the planet's
// prior owner, the declared winner, and to everyone on spy missions
// (a spy "win" is deliberately ambiguous). The defender's side is
// visible to the planet's controller or the winner.
func (r *MissionReport) CanSee(side Side, viewer string) bool {
	winner := r.Winner()
	switch side {
	case SideAttacker:
		return viewer == r.Mission.Owner ||
			viewer == r.Planet.Owner ||
			(winner != "" && viewer == winner) ||
			r.Mission.Objective == Spy
	case SideDefender:
		return viewer == r.Planet.Controller ||
			(winner != "" && viewer == winner)
	}
	return false
}
