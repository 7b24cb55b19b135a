package model

import (
	"strings"

	"github.com/google/uuid"
)

// GeneratedEquipment — сгенерированный предмет. Полный value-снапшот:
// атрибуты встроены целиком, а не ссылками на пулы, поэтому сериализация
// и десериализация не требуют повторных запросов к каталогам.
//
// Invariant: TotalCost = GearType.BaseCost + cost contributions of the
// present prefix/material/suffix; Rarity = ClassifyRarity(TotalCost).
// Immutable after generation except ownership transfer (out of scope).
type GeneratedEquipment struct {
	InstanceID uuid.UUID          `json:"instance_id"`
	GearType   GearTypeAttribute  `json:"gear_type"`
	Prefix     *PrefixAttribute   `json:"prefix,omitempty"`
	Material   *MaterialAttribute `json:"material,omitempty"`
	Suffix     *SuffixAttribute   `json:"suffix,omitempty"`
	TotalCost  int                `json:"total_cost"`
	Rarity     Rarity             `json:"rarity"`
	ItemLevel  int                `json:"item_level"`
}

// ComputeTotalCost sums base cost and the cost contributions of every
// present attribute. Absent attributes contribute nothing.
func (e *GeneratedEquipment) ComputeTotalCost() int {
	total := e.GearType.BaseCost
	if e.Prefix != nil {
		total += e.Prefix.CostContribution
	}
	if e.Material != nil {
		total += e.Material.CostContribution
	}
	if e.Suffix != nil {
		total += e.Suffix.CostContribution
	}
	return total
}

// DisplayName composes the shop-facing name, e.g.
// "Enchanted Mithril Sword of Storms".
func (e *GeneratedEquipment) DisplayName() string {
	parts := make([]string, 0, 4)
	if e.Prefix != nil {
		parts = append(parts, e.Prefix.Name)
	}
	if e.Material != nil {
		parts = append(parts, e.Material.Name)
	}
	parts = append(parts, e.GearType.Name)
	if e.Suffix != nil {
		parts = append(parts, e.Suffix.Name)
	}
	return strings.Join(parts, " ")
}
