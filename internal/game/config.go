/*
Package game
File: config.go
Description:
    Tuning constants the combat engine depends on. These are owned by
    configuration (combat.yaml), not by the simulator itself; the struct
    maps directly to the YAML file, with defaults applied for missing
    values.
*/

package game

// Balance stores the combat tuning variables loaded from 'combat.yaml'.
type Balance struct {
	ShieldPointsPerLevel int     `yaml:"shield_points_per_level" json:"shield_points_per_level"` // Planetary shield pool per generator level
	CrawlerHealPerRound  int     `yaml:"crawler_heal_per_round" json:"crawler_heal_per_round"`   // Hull restored by one crawler per round
	InterceptionChance   float64 `yaml:"interception_chance" json:"interception_chance"`         // Chance an antiballistic missile downs an incoming missile
	BombingChance        float64 `yaml:"bombing_chance" json:"bombing_chance"`                   // Chance a bomber strips one building level
	DestroyDecayPerRound float64 `yaml:"destroy_decay_per_round" json:"destroy_decay_per_round"` // Destroy-probability decay per elapsed round
	MaxRounds            int     `yaml:"max_rounds" json:"max_rounds"`                           // Stalemate cap on the round loop
}

// DefaultBalance returns the shipped tuning values. Loading combat.yaml
// overrides individual fields; anything the file omits keeps these.
func DefaultBalance() Balance {
	return Balance{
		ShieldPointsPerLevel: 2000,
		CrawlerHealPerRound:  25,
		InterceptionChance:   0.5,
		BombingChance:        0.1,
		DestroyDecayPerRound: 0.01,
		MaxRounds:            6,
	}
}

// normalize fills zeroed fields with defaults so a partially specified
// YAML file cannot produce a degenerate battle (e.g. a zero-round cap).
func (b Balance) normalize() Balance {
	def := DefaultBalance()
	if b.ShieldPointsPerLevel <= 0 {
		b.ShieldPointsPerLevel = def.ShieldPointsPerLevel
	}
	if b.CrawlerHealPerRound <= 0 {
		b.CrawlerHealPerRound = def.CrawlerHealPerRound
	}
	if b.InterceptionChance <= 0 {
		b.InterceptionChance = def.InterceptionChance
	}
	if b.BombingChance <= 0 {
		b.BombingChance = def.BombingChance
	}
	if b.DestroyDecayPerRound <= 0 {
		b.DestroyDecayPerRound = def.DestroyDecayPerRound
	}
	if b.MaxRounds <= 0 {
		b.MaxRounds = def.MaxRounds
	}
	return b
}
