package model

import "fmt"

// ContractModifier is a probabilistic trait attached to a customer contract.
type ContractModifier int32

const (
	ModifierUrgent ContractModifier = iota
	ModifierBonus
	ModifierPerfectionist
	ModifierBulkOrder
	ModifierExperimental
)

// AllContractModifiers lists every modifier type in canonical roll order.
// Порядок фиксирован ради воспроизводимости при заданном seed.
var AllContractModifiers = []ContractModifier{
	ModifierUrgent,
	ModifierBonus,
	ModifierPerfectionist,
	ModifierBulkOrder,
	ModifierExperimental,
}

// String returns human-readable modifier name.
func (m ContractModifier) String() string {
	switch m {
	case ModifierUrgent:
		return "urgent"
	case ModifierBonus:
		return "bonus"
	case ModifierPerfectionist:
		return "perfectionist"
	case ModifierBulkOrder:
		return "bulk_order"
	case ModifierExperimental:
		return "experimental"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m ContractModifier) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ContractModifier) UnmarshalText(text []byte) error {
	switch string(text) {
	case "urgent":
		*m = ModifierUrgent
	case "bonus":
		*m = ModifierBonus
	case "perfectionist":
		*m = ModifierPerfectionist
	case "bulk_order":
		*m = ModifierBulkOrder
	case "experimental":
		*m = ModifierExperimental
	default:
		return fmt.Errorf("unknown contract modifier %q", text)
	}
	return nil
}

// RewardTier classifies how generous a contract's reward should be.
type RewardTier int32

const (
	RewardStandard RewardTier = iota
	RewardEnhanced
	RewardRare
	RewardUnique
)

// String returns human-readable tier name.
func (t RewardTier) String() string {
	switch t {
	case RewardStandard:
		return "standard"
	case RewardEnhanced:
		return "enhanced"
	case RewardRare:
		return "rare"
	case RewardUnique:
		return "unique"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(t))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t RewardTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *RewardTier) UnmarshalText(text []byte) error {
	switch string(text) {
	case "standard":
		*t = RewardStandard
	case "enhanced":
		*t = RewardEnhanced
	case "rare":
		*t = RewardRare
	case "unique":
		*t = RewardUnique
	default:
		return fmt.Errorf("unknown reward tier %q", text)
	}
	return nil
}

// SpecialRewardType enumerates the four special-reward outcomes.
type SpecialRewardType int32

const (
	SpecialRewardIngredient SpecialRewardType = iota
	SpecialRewardEquipment
	SpecialRewardMana
	SpecialRewardGold
)

// String returns human-readable reward type name.
func (t SpecialRewardType) String() string {
	switch t {
	case SpecialRewardIngredient:
		return "ingredient"
	case SpecialRewardEquipment:
		return "equipment"
	case SpecialRewardMana:
		return "mana"
	case SpecialRewardGold:
		return "gold"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(t))
	}
}

// SpecialReward is an optional extra attached to a contract. Equipment
// rewards are placeholders: the reward resolver fills in a concrete item.
type SpecialReward struct {
	Type    SpecialRewardType
	Element Element // set for ingredient rewards only
	Amount  float64 // set for mana and gold rewards
}

// CustomerTemplate — шаблон покупателя: база оплаты/терпения, тир и
// таблица вероятностей модификаторов контракта.
type CustomerTemplate struct {
	ID              string
	Name            string
	BasePayment     int
	PaymentVariance float64 // fraction of BasePayment, e.g. 0.2 = ±20%
	BasePatience    int     // seconds
	Tier            int
	ModifierChances map[ContractModifier]float64
	// SpecialRewardChance of 0 disables special rewards for the template.
	SpecialRewardChance float64
	IsSpecial           bool
}

// HasSpecialRewardChance reports whether the template may ever roll a
// special reward.
func (t *CustomerTemplate) HasSpecialRewardChance() bool {
	return t.SpecialRewardChance > 0
}
