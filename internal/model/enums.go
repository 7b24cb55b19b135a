package model

import "fmt"

// GearSlot определяет слот снаряжения.
type GearSlot int32

const (
	GearSlotWeapon GearSlot = iota
	GearSlotArmor
	GearSlotAccessory
	GearSlotConsumable
)

// String returns human-readable slot name.
func (s GearSlot) String() string {
	switch s {
	case GearSlotWeapon:
		return "weapon"
	case GearSlotArmor:
		return "armor"
	case GearSlotAccessory:
		return "accessory"
	case GearSlotConsumable:
		return "consumable"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(s))
	}
}

// MarshalText implements encoding.TextMarshaler for snapshots.
func (s GearSlot) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *GearSlot) UnmarshalText(text []byte) error {
	switch string(text) {
	case "weapon":
		*s = GearSlotWeapon
	case "armor":
		*s = GearSlotArmor
	case "accessory":
		*s = GearSlotAccessory
	case "consumable":
		*s = GearSlotConsumable
	default:
		return fmt.Errorf("unknown gear slot %q", text)
	}
	return nil
}

// EffectType определяет категорию эффекта суффикса.
type EffectType int32

const (
	EffectDamage EffectType = iota
	EffectDefense
	EffectElemental
	EffectSpecial
)

// String returns human-readable effect type name.
func (e EffectType) String() string {
	switch e {
	case EffectDamage:
		return "damage"
	case EffectDefense:
		return "defense"
	case EffectElemental:
		return "elemental"
	case EffectSpecial:
		return "special"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(e))
	}
}

// MarshalText implements encoding.TextMarshaler for snapshots.
func (e EffectType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *EffectType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "damage":
		*e = EffectDamage
	case "defense":
		*e = EffectDefense
	case "elemental":
		*e = EffectElemental
	case "special":
		*e = EffectSpecial
	default:
		return fmt.Errorf("unknown effect type %q", text)
	}
	return nil
}

// Element is an elemental affinity tag. Empty value means no affinity.
type Element string

const (
	ElementNone      Element = ""
	ElementFire      Element = "fire"
	ElementWater     Element = "water"
	ElementEarth     Element = "earth"
	ElementAir       Element = "air"
	ElementLightning Element = "lightning"
	ElementIce       Element = "ice"
	ElementLight     Element = "light"
	ElementShadow    Element = "shadow"
)
