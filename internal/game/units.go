/*
Package game
File: units.go
Description:
    Defines the closed set of unit kinds that exist in the Warfront universe.
    Kinds are split into three families (Building, Ship, Defense) and carry
    no data of their own; all static attributes live in the Catalog
    (see catalog.go).

    No combat logic is performed here; this file is strictly the "schema"
    of what can exist on a planet or in a fleet.
*/

package game

import "fmt"

// Family groups unit kinds into the three closed enumerations of the game.
type Family int

const (
	FamilyBuilding Family = iota + 1
	FamilyShip
	FamilyDefense
)

// UnitKind identifies one concrete building, ship or defense variant.
// The zero value is invalid; it is used for "no target" in shot records.
type UnitKind int

const (
	// Buildings (14). Buildings never fight; they are split out of the
	// defender's army before a battle and merged back afterwards.
	OreExtractor UnitKind = iota + 1
	CrystalRefinery
	FuelSynthesizer
	SolarPlant
	FusionReactor
	StorageDepot
	RoboticsFactory
	Shipyard
	ResearchLab
	NaniteFactory
	MissileSilo
	ShieldGenerator
	TerraformStation
	CommandCenter

	// Ships (10).
	LightFighter
	HeavyFighter
	Cruiser
	Battleship
	Bomber
	Destroyer
	WarSun
	ColonyShip
	Probe
	CargoHauler

	// Defenses (8). The two missile kinds are defenses with the missile
	// flag set; they follow special combat rules (see simulate.go).
	LaserTurret
	IonTurret
	RailgunTurret
	PlasmaTurret
	Crawler
	SpaceDock
	AntiballisticMissile
	InterplanetaryMissile
)

// AllKinds lists every unit kind in canonical order. The Catalog test
// checks this list against the capability table for exhaustiveness.
var AllKinds = []UnitKind{
	OreExtractor, CrystalRefinery, FuelSynthesizer, SolarPlant, FusionReactor,
	StorageDepot, RoboticsFactory, Shipyard, ResearchLab, NaniteFactory,
	MissileSilo, ShieldGenerator, TerraformStation, CommandCenter,
	LightFighter, HeavyFighter, Cruiser, Battleship, Bomber, Destroyer,
	WarSun, ColonyShip, Probe, CargoHauler,
	LaserTurret, IonTurret, RailgunTurret, PlasmaTurret, Crawler, SpaceDock,
	AntiballisticMissile, InterplanetaryMissile,
}

// Category predicates. These delegate to the Catalog so the family
// assignment lives in exactly one place.

func (k UnitKind) Family() Family { return Stats(k).Family }

func (k UnitKind) IsBuilding() bool { return k.Family() == FamilyBuilding }
func (k UnitKind) IsShip() bool     { return k.Family() == FamilyShip }
func (k UnitKind) IsDefense() bool  { return k.Family() == FamilyDefense }

// IsMissile reports whether the kind is one of the two missile defenses.
func (k UnitKind) IsMissile() bool {
	return k == AntiballisticMissile || k == InterplanetaryMissile
}

// IsCombatShip reports whether the kind is a ship that takes part in
// battle. Colony ships and probes are carried along on missions but are
// not fighting hulls (probes can be kept in combat as targets only).
func (k UnitKind) IsCombatShip() bool {
	return k.IsShip() && k != ColonyShip && k != Probe
}

// IsTurret reports whether the kind is a stationary gun emplacement,
// i.e. a valid target for crawler repairs.
func (k UnitKind) IsTurret() bool {
	switch k {
	case LaserTurret, IonTurret, RailgunTurret, PlasmaTurret:
		return true
	}
	return false
}

// firingRank defines the fixed global firing order inside a round.
// Lower rank acts first. Kinds missing from this table sort last;
// the ranking is a deterministic tie-break, never randomized.
var firingRank = map[UnitKind]int{
	InterplanetaryMissile: 0,
	WarSun:                1,
	Battleship:            2,
	Destroyer:             3,
	Cruiser:               4,
	Bomber:                5,
	HeavyFighter:          6,
	LightFighter:          7,
	CargoHauler:           8,
	Probe:                 9,
	PlasmaTurret:          10,
	RailgunTurret:         11,
	IonTurret:             12,
	LaserTurret:           13,
	SpaceDock:             14,
	AntiballisticMissile:  15,
	Crawler:               16,
}

// FiringRank returns the kind's position in the global firing order.
func (k UnitKind) FiringRank() int {
	if r, ok := firingRank[k]; ok {
		return r
	}
	return len(firingRank) // unranked kinds sort last
}

// String returns the stable key of the kind (e.g. "light_fighter"),
// matching the keys used in YAML scenarios and JSON payloads.
func (k UnitKind) String() string {
	if s, ok := catalog[k]; ok {
		return s.Key
	}
	return fmt.Sprintf("unit_%d", int(k))
}

// MarshalText lets Armies serialize as {"light_fighter": 3, ...} maps.
func (k UnitKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a unit key back into its kind.
func (k *UnitKind) UnmarshalText(text []byte) error {
	kind, err := ParseUnitKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseUnitKind resolves a stable key (e.g. "cruiser") to its UnitKind.
func ParseUnitKind(key string) (UnitKind, error) {
	if k, ok := kindByKey[key]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown unit kind %q", key)
}

var kindByKey = func() map[string]UnitKind {
	m := make(map[string]UnitKind, len(catalog))
	for k, s := range catalog {
		m[s.Key] = k
	}
	return m
}()
