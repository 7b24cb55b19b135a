package model

import "fmt"

// Rarity — грейд предмета, производный от суммарной стоимости атрибутов.
type Rarity int32

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

// Rarity thresholds: half-open ascending buckets over total cost.
// totalCost=5 is uncommon, not common; 35 is already legendary.
const (
	rarityUncommonMin  = 5
	rarityRareMin      = 10
	rarityEpicMin      = 20
	rarityLegendaryMin = 35
)

// ClassifyRarity maps a total attribute cost to its rarity bucket.
func ClassifyRarity(totalCost int) Rarity {
	switch {
	case totalCost < rarityUncommonMin:
		return RarityCommon
	case totalCost < rarityRareMin:
		return RarityUncommon
	case totalCost < rarityEpicMin:
		return RarityRare
	case totalCost < rarityLegendaryMin:
		return RarityEpic
	default:
		return RarityLegendary
	}
}

// String returns human-readable rarity name.
func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "common"
	case RarityUncommon:
		return "uncommon"
	case RarityRare:
		return "rare"
	case RarityEpic:
		return "epic"
	case RarityLegendary:
		return "legendary"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(r))
	}
}

// MarshalText implements encoding.TextMarshaler for snapshots.
func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rarity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "common":
		*r = RarityCommon
	case "uncommon":
		*r = RarityUncommon
	case "rare":
		*r = RarityRare
	case "epic":
		*r = RarityEpic
	case "legendary":
		*r = RarityLegendary
	default:
		return fmt.Errorf("unknown rarity %q", text)
	}
	return nil
}
