/*
Package game
File: catalog.go
Description:
    The Unit Catalog: static combat attributes for every unit kind in the
    universe. This is pure data plus a total lookup function; every kind
    declared in units.go has an entry here (enforced by catalog_test.go).

    Rapid-fire tables are expressed as percentage values per opponent
    kind. Absence of an entry means the firer never continues against
    that opponent.
*/

package game

// RaidClass tags buildings by the bombing-raid category they belong to.
type RaidClass int

const (
	RaidClassNone RaidClass = iota
	RaidClassEconomic
	RaidClassIndustrial
)

// UnitStats holds the static capability sheet of one unit kind.
type UnitStats struct {
	Key    string `json:"key"`    // Stable identifier used in YAML/JSON
	Name   string `json:"name"`   // Display name
	Family Family `json:"family"` // Building / Ship / Defense

	Hull   int `json:"hull"`   // Max damage absorbed before destruction
	Shield int `json:"shield"` // Max shield, regenerates every exchange
	Damage int `json:"damage"` // Damage per shot (0 = utility unit)

	Speed       int `json:"speed"`         // Distance per turn (0 for non-movers)
	FuelPerDist int `json:"fuel_per_dist"` // Fuel cost per distance unit
	Tier        int `json:"tier"`          // Production/tech tier gate

	Raid RaidClass `json:"-"` // Bombing-raid category (buildings only)

	// RapidFire maps opponent kind -> percentage. See simulate.go for the
	// exact continuation rule applied to these values.
	RapidFire map[UnitKind]int `json:"rapid_fire,omitempty"`
}

// Stats returns the capability sheet for a kind. Every enumerated kind
// has complete data; a missing entry is a defect in the Catalog, not a
// recoverable condition, so the zero sheet is returned rather than an error.
func Stats(k UnitKind) UnitStats {
	return catalog[k]
}

var catalog = map[UnitKind]UnitStats{
	// --- Buildings ---------------------------------------------------------
	OreExtractor:     {Key: "ore_extractor", Name: "Ore Extractor", Family: FamilyBuilding, Tier: 1, Raid: RaidClassEconomic},
	CrystalRefinery:  {Key: "crystal_refinery", Name: "Crystal Refinery", Family: FamilyBuilding, Tier: 1, Raid: RaidClassEconomic},
	FuelSynthesizer:  {Key: "fuel_synthesizer", Name: "Fuel Synthesizer", Family: FamilyBuilding, Tier: 2, Raid: RaidClassEconomic},
	SolarPlant:       {Key: "solar_plant", Name: "Solar Plant", Family: FamilyBuilding, Tier: 1, Raid: RaidClassEconomic},
	FusionReactor:    {Key: "fusion_reactor", Name: "Fusion Reactor", Family: FamilyBuilding, Tier: 3, Raid: RaidClassEconomic},
	StorageDepot:     {Key: "storage_depot", Name: "Storage Depot", Family: FamilyBuilding, Tier: 1, Raid: RaidClassEconomic},
	RoboticsFactory:  {Key: "robotics_factory", Name: "Robotics Factory", Family: FamilyBuilding, Tier: 2, Raid: RaidClassIndustrial},
	Shipyard:         {Key: "shipyard", Name: "Shipyard", Family: FamilyBuilding, Tier: 2, Raid: RaidClassIndustrial},
	ResearchLab:      {Key: "research_lab", Name: "Research Lab", Family: FamilyBuilding, Tier: 2, Raid: RaidClassIndustrial},
	NaniteFactory:    {Key: "nanite_factory", Name: "Nanite Factory", Family: FamilyBuilding, Tier: 5, Raid: RaidClassIndustrial},
	MissileSilo:      {Key: "missile_silo", Name: "Missile Silo", Family: FamilyBuilding, Tier: 3, Raid: RaidClassIndustrial},
	ShieldGenerator:  {Key: "shield_generator", Name: "Shield Generator", Family: FamilyBuilding, Tier: 4},
	TerraformStation: {Key: "terraform_station", Name: "Terraform Station", Family: FamilyBuilding, Tier: 5},
	CommandCenter:    {Key: "command_center", Name: "Command Center", Family: FamilyBuilding, Tier: 1},

	// --- Ships -------------------------------------------------------------
	LightFighter: {
		Key: "light_fighter", Name: "Light Fighter", Family: FamilyShip,
		Hull: 400, Shield: 10, Damage: 50, Speed: 12500, FuelPerDist: 20, Tier: 1,
		RapidFire: map[UnitKind]int{Probe: 98},
	},
	HeavyFighter: {
		Key: "heavy_fighter", Name: "Heavy Fighter", Family: FamilyShip,
		Hull: 1000, Shield: 25, Damage: 150, Speed: 10000, FuelPerDist: 75, Tier: 2,
		RapidFire: map[UnitKind]int{Probe: 98, CargoHauler: 75},
	},
	Cruiser: {
		Key: "cruiser", Name: "Cruiser", Family: FamilyShip,
		Hull: 2700, Shield: 50, Damage: 400, Speed: 15000, FuelPerDist: 300, Tier: 3,
		RapidFire: map[UnitKind]int{Probe: 98, LightFighter: 85, LaserTurret: 90},
	},
	Battleship: {
		Key: "battleship", Name: "Battleship", Family: FamilyShip,
		Hull: 6000, Shield: 200, Damage: 1000, Speed: 10000, FuelPerDist: 500, Tier: 4,
		RapidFire: map[UnitKind]int{Probe: 98},
	},
	Bomber: {
		Key: "bomber", Name: "Bomber", Family: FamilyShip,
		Hull: 7500, Shield: 500, Damage: 1000, Speed: 4000, FuelPerDist: 700, Tier: 4,
		RapidFire: map[UnitKind]int{Probe: 98, LaserTurret: 92, IonTurret: 90, RailgunTurret: 85},
	},
	Destroyer: {
		Key: "destroyer", Name: "Destroyer", Family: FamilyShip,
		Hull: 11000, Shield: 500, Damage: 2000, Speed: 5000, FuelPerDist: 1000, Tier: 5,
		RapidFire: map[UnitKind]int{Probe: 98, LaserTurret: 90, LightFighter: 80},
	},
	WarSun: {
		Key: "war_sun", Name: "War Sun", Family: FamilyShip,
		Hull: 900000, Shield: 50000, Damage: 200000, Speed: 100, FuelPerDist: 1, Tier: 6,
		RapidFire: map[UnitKind]int{
			Probe: 99, LightFighter: 95, HeavyFighter: 95, Cruiser: 88,
			Battleship: 85, Bomber: 88, Destroyer: 80, CargoHauler: 96,
			ColonyShip: 96, LaserTurret: 95, IonTurret: 95, RailgunTurret: 90,
		},
	},
	ColonyShip: {
		Key: "colony_ship", Name: "Colony Ship", Family: FamilyShip,
		Hull: 3000, Shield: 100, Damage: 50, Speed: 2500, FuelPerDist: 1000, Tier: 3,
	},
	Probe: {
		Key: "probe", Name: "Reconnaissance Probe", Family: FamilyShip,
		Hull: 100, Shield: 0, Damage: 0, Speed: 100000, FuelPerDist: 1, Tier: 1,
	},
	CargoHauler: {
		Key: "cargo_hauler", Name: "Cargo Hauler", Family: FamilyShip,
		Hull: 1200, Shield: 25, Damage: 5, Speed: 7500, FuelPerDist: 50, Tier: 1,
	},

	// --- Defenses ----------------------------------------------------------
	LaserTurret: {
		Key: "laser_turret", Name: "Laser Turret", Family: FamilyDefense,
		Hull: 200, Shield: 25, Damage: 100, Tier: 1,
	},
	IonTurret: {
		Key: "ion_turret", Name: "Ion Turret", Family: FamilyDefense,
		Hull: 800, Shield: 500, Damage: 150, Tier: 2,
	},
	RailgunTurret: {
		Key: "railgun_turret", Name: "Railgun Turret", Family: FamilyDefense,
		Hull: 3500, Shield: 200, Damage: 1100, Tier: 3,
	},
	PlasmaTurret: {
		Key: "plasma_turret", Name: "Plasma Turret", Family: FamilyDefense,
		Hull: 10000, Shield: 300, Damage: 3000, Tier: 4,
	},
	Crawler: {
		Key: "crawler", Name: "Repair Crawler", Family: FamilyDefense,
		Hull: 1000, Shield: 50, Damage: 0, Tier: 2,
	},
	SpaceDock: {
		Key: "space_dock", Name: "Space Dock", Family: FamilyDefense,
		Hull: 5000, Shield: 1000, Damage: 250, Tier: 3,
	},
	AntiballisticMissile: {
		Key: "antiballistic_missile", Name: "Antiballistic Missile", Family: FamilyDefense,
		Hull: 800, Shield: 0, Damage: 0, Tier: 2,
	},
	InterplanetaryMissile: {
		Key: "interplanetary_missile", Name: "Interplanetary Missile", Family: FamilyDefense,
		Hull: 1500, Shield: 0, Damage: 12000, Tier: 4,
	},
}
