package data

import "github.com/udisondev/portalforge/internal/model"

// elementTiers — таблица тиров стихий. Тир 1 — базовые стихии, доступные
// любому покупателю; выше — только контрактам высоких тиров.
var elementTiers = map[model.Element]int{
	model.ElementFire:      1,
	model.ElementWater:     1,
	model.ElementEarth:     1,
	model.ElementAir:       1,
	model.ElementLightning: 2,
	model.ElementIce:       2,
	model.ElementLight:     3,
	model.ElementShadow:    3,
}

// elementOrder fixes iteration order for deterministic picks.
var elementOrder = []model.Element{
	model.ElementFire,
	model.ElementWater,
	model.ElementEarth,
	model.ElementAir,
	model.ElementLightning,
	model.ElementIce,
	model.ElementLight,
	model.ElementShadow,
}

// ElementTier returns the tier of an element, or 0 for an unknown element.
func ElementTier(el model.Element) int {
	return elementTiers[el]
}

// ElementsUpToTier returns every element whose tier does not exceed maxTier,
// in canonical order. Tiers below 1 are treated as 1.
func ElementsUpToTier(maxTier int) []model.Element {
	if maxTier < 1 {
		maxTier = 1
	}
	var out []model.Element
	for _, el := range elementOrder {
		if elementTiers[el] <= maxTier {
			out = append(out, el)
		}
	}
	return out
}
