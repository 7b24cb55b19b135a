package model

// Attribute — базовая форма атрибута (prefix/material/suffix).
// Конкретные варианты задаются отдельными типами, чтобы switch по ним
// проверялся компилятором, а не тегами в рантайме.
type Attribute struct {
	AttrID           string     `json:"id"`
	Name             string     `json:"name"`
	CostContribution int        `json:"cost_contribution"`
	Levels           LevelRange `json:"level_range"`
	Element          Element    `json:"element,omitempty"`
	Tags             []string   `json:"tags,omitempty"`
}

// ID returns the attribute identifier.
func (a *Attribute) ID() string { return a.AttrID }

// EligibleAt reports whether the attribute may roll at the given item level.
func (a *Attribute) EligibleAt(level int) bool { return a.Levels.Contains(level) }

// LevelRange is an inclusive [Min, Max] item-level gate.
type LevelRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Contains reports whether level falls inside the range (inclusive both ends).
func (r LevelRange) Contains(level int) bool {
	return level >= r.Min && level <= r.Max
}

// PrefixAttribute is a leveled prefix ("Enchanted", "Rusty").
type PrefixAttribute struct {
	Attribute
}

// MaterialAttribute is a leveled material ("Mithril", "Dragonscale").
type MaterialAttribute struct {
	Attribute
}

// SuffixAttribute is a leveled suffix ("of Storms") carrying a typed effect.
type SuffixAttribute struct {
	Attribute
	EffectType  EffectType `json:"effect_type"`
	EffectValue float64    `json:"effect_value"` // non-negative
}

// GearTypeAttribute — базовый тип снаряжения. Не гейтится по уровню:
// любой gear type доступен с первого уровня.
type GearTypeAttribute struct {
	AttrID   string   `json:"id"`
	Name     string   `json:"name"`
	Slot     GearSlot `json:"slot"`
	BaseCost int      `json:"base_cost"`
}

// ID returns the gear type identifier.
func (g *GearTypeAttribute) ID() string { return g.AttrID }

// EligibleAt always reports true: gear types are ungated.
func (g *GearTypeAttribute) EligibleAt(int) bool { return true }
