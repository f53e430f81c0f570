/*
Package game
File: mission.go
Description:
    The shapes crossing the simulator boundary: the mission order sent by
    a player and the read-only snapshot of the destination planet. The
    simulator never mutates either; survivors are returned in the report
    and applied back to world state by the caller.
*/

package game

import "fmt"

// Objective is the purpose of a mission.
type Objective int

const (
	Attack Objective = iota + 1
	Deploy
	Colonize
	Spy
	Destroy
	MissileStrike
)

var objectiveKeys = map[Objective]string{
	Attack:        "attack",
	Deploy:        "deploy",
	Colonize:      "colonize",
	Spy:           "spy",
	Destroy:       "destroy",
	MissileStrike: "missile_strike",
}

func (o Objective) String() string { return objectiveKeys[o] }

func (o Objective) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Objective) UnmarshalText(text []byte) error {
	v, err := ParseObjective(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// ParseObjective resolves an objective key (e.g. "missile_strike").
func ParseObjective(key string) (Objective, error) {
	for o, k := range objectiveKeys {
		if k == key {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown objective %q", key)
}

// RaidTarget selects which building category a bombing raid degrades.
type RaidTarget int

const (
	RaidNone RaidTarget = iota
	RaidEconomic
	RaidIndustrial
)

var raidKeys = map[RaidTarget]string{
	RaidNone:       "none",
	RaidEconomic:   "economic",
	RaidIndustrial: "industrial",
}

func (r RaidTarget) String() string { return raidKeys[r] }

func (r RaidTarget) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *RaidTarget) UnmarshalText(text []byte) error {
	v, err := ParseRaidTarget(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// ParseRaidTarget resolves a raid key; the empty string means no raid.
func ParseRaidTarget(key string) (RaidTarget, error) {
	if key == "" {
		return RaidNone, nil
	}
	for r, k := range raidKeys {
		if k == key {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown raid target %q", key)
}

// class maps the raid setting onto the building catalog classes.
func (r RaidTarget) class() RaidClass {
	switch r {
	case RaidEconomic:
		return RaidClassEconomic
	case RaidIndustrial:
		return RaidClassIndustrial
	}
	return RaidClassNone
}

// Mission is an order dispatching an army from an origin to a
// destination with an objective.
type Mission struct {
	Owner        string     `json:"owner"`         // Player who sent the mission
	Objective    Objective  `json:"objective"`     // What the fleet is there to do
	Fleet        Army       `json:"fleet"`         // Dispatched force
	Raid         RaidTarget `json:"raid"`          // Bombing-raid setting (bombers only)
	CombatProbes bool       `json:"combat_probes"` // Keep probes in combat past round 1
	OriginHeld   bool       `json:"origin_held"`   // Origin still controlled by the owner
}

// PlanetState is the pre-battle snapshot of the destination, supplied
// by the map/planet collaborator.
type PlanetState struct {
	Key           string  `json:"key"`            // Planet identifier (display only)
	Owner         string  `json:"owner"`          // Prior owner (fog-of-war reference)
	Controller    string  `json:"controller"`     // Player currently holding the planet
	Forces        Army    `json:"forces"`         // Standing army including buildings
	DestroyChance float64 `json:"destroy_chance"` // Base per-War-Sun destruction probability (0..1)
}
