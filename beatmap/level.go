package beatmap

import (
	"fmt"

	"beatmapper/debug"
)

// LevelName identifies one difficulty tier
type LevelName string

const (
	Level1 LevelName = "level1"
	Level2 LevelName = "level2"
	Level3 LevelName = "level3"
)

// LevelNames returns the tiers from easiest to hardest
func LevelNames() []LevelName {
	return []LevelName{Level1, Level2, Level3}
}

// Title returns a display name like "Level 1"
func (n LevelName) Title() string {
	switch n {
	case Level1:
		return "Level 1"
	case Level2:
		return "Level 2"
	case Level3:
		return "Level 3"
	}
	return string(n)
}

// ParseLevelName validates a tier name
func ParseLevelName(s string) (LevelName, error) {
	for _, n := range LevelNames() {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Tier configures the density and augmentation of one level
type Tier struct {
	Name     LevelName
	Density  float64
	Fraction float64
}

// DefaultTiers are the shipped tier settings. Exported maps depend on
// these values, do not tune them.
var DefaultTiers = []Tier{
	{Name: Level1, Density: 0.007, Fraction: 0.15},
	{Name: Level2, Density: 0.01, Fraction: 0.35},
	{Name: Level3, Density: 0.015, Fraction: 0.5},
}

// LevelSet holds the three generated tiers
type LevelSet struct {
	Level1 []HitEvent `json:"level1"`
	Level2 []HitEvent `json:"level2"`
	Level3 []HitEvent `json:"level3"`
}

// Get returns the marks of a tier
func (ls *LevelSet) Get(name LevelName) ([]HitEvent, bool) {
	switch name {
	case Level1:
		return ls.Level1, true
	case Level2:
		return ls.Level2, true
	case Level3:
		return ls.Level3, true
	}
	return nil, false
}

func (ls *LevelSet) set(name LevelName, marks []HitEvent) {
	switch name {
	case Level1:
		ls.Level1 = marks
	case Level2:
		ls.Level2 = marks
	case Level3:
		ls.Level3 = marks
	}
}

// Clone returns a deep copy
func (ls *LevelSet) Clone() LevelSet {
	return LevelSet{
		Level1: append([]HitEvent(nil), ls.Level1...),
		Level2: append([]HitEvent(nil), ls.Level2...),
		Level3: append([]HitEvent(nil), ls.Level3...),
	}
}

// BuildLevel samples the base marks of a tier and appends the supplemental
// marks augmented over that same base.
func BuildLevel(rng Source, duration float64, tier Tier) []HitEvent {
	base := Sample(rng, duration, tier.Density)
	extra := Augment(rng, base, tier.Fraction)
	debug.Log("generate", "%s: %d base + %d extra marks", tier.Name, len(base), len(extra))
	return append(base, extra...)
}

// Assemble builds all three tiers with DefaultTiers
func Assemble(rng Source, duration float64) LevelSet {
	return AssembleTiers(rng, duration, DefaultTiers)
}

// AssembleTiers builds a LevelSet from custom tier settings. Tiers with an
// unknown name are ignored.
func AssembleTiers(rng Source, duration float64, tiers []Tier) LevelSet {
	rng = sourceOrDefault(rng)
	var ls LevelSet
	for _, tier := range tiers {
		ls.set(tier.Name, BuildLevel(rng, duration, tier))
	}
	return ls
}
