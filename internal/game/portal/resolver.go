// Package portal folds generated equipment into portal effect modifiers.
//
// Resolve is a pure function: no RNG, no I/O, deterministic for a given
// input. All randomness lives upstream in generation.
package portal

import (
	"math"

	"github.com/udisondev/portalforge/internal/model"
)

// Resolve aggregates the attribute effects of every equipment item into a
// single modifier record, starting from the neutral baseline.
//
// Четыре прохода по каждому предмету (prefix, material, suffix,
// total-cost/rarity) независимы: каждый только добавляет или умножает в
// общий аккумулятор и не читает результат другого. Числовые поля поэтому
// не зависят от порядка предметов; от порядка зависит только список
// special-effect меток.
//
// An empty input returns the untouched baseline. Resolve never fails.
func Resolve(equipment []*model.GeneratedEquipment) model.PortalEffectModifiers {
	m := model.NeutralPortalEffects()

	for _, item := range equipment {
		if item == nil {
			continue
		}
		applyPrefixEffects(&m, item.Prefix)
		applyMaterialEffects(&m, item.Material)
		applySuffixEffects(&m, item.Suffix)
		applyCostEffects(&m, item.TotalCost, item.Rarity)
	}

	// Multipliers are floored at 0: stacked negative-cost prefixes must
	// never invert a reward category.
	m.GoldMultiplier = math.Max(m.GoldMultiplier, 0)
	m.ManaMultiplier = math.Max(m.ManaMultiplier, 0)
	return m
}

// applyPrefixEffects applies cost-band bonuses and named prefix overrides.
func applyPrefixEffects(m *model.PortalEffectModifiers, p *model.PrefixAttribute) {
	if p == nil {
		return
	}

	switch cost := p.CostContribution; {
	case cost >= 10:
		m.GoldMultiplier += 0.5
		m.RarityBonus += 2
		m.IntensityBonus += 0.3
		m.RecipeDiscoveryBonus += 0.1
		m.AddSpecialEffect(p.Name + " Quality")
	case cost >= 5:
		m.GoldMultiplier += 0.3
		m.RarityBonus += 1
		m.IntensityBonus += 0.2
		m.RecipeDiscoveryBonus += 0.05
	case cost >= 2:
		m.GoldMultiplier += 0.15
		m.IntensityBonus += 0.1
	case cost < 0:
		m.GoldMultiplier -= 0.1
		m.RecipeDiscoveryBonus += 0.05
	}

	// Named overrides layer on top of the cost band.
	switch p.AttrID {
	case "enchanted":
		m.AddSpecialEffect("Magical Resonance")
		m.ManaMultiplier += 0.5
	case "legendary":
		m.AddSpecialEffect("Legendary Aura")
		m.EquipmentChance += 0.2
	case "ancient":
		m.AddSpecialEffect("Ancient Power")
		m.RarityBonus += 1
	case "gleaming":
		m.ColorShift += 30
		m.IntensityBonus += 0.1
	}
}

// applyMaterialEffects applies affinity, cost-band and named material
// overrides.
func applyMaterialEffects(m *model.PortalEffectModifiers, mat *model.MaterialAttribute) {
	if mat == nil {
		return
	}

	m.AddElementBonus(mat.Element, 5)

	switch cost := mat.CostContribution; {
	case cost >= 8:
		m.GoldMultiplier += 0.4
		m.EquipmentChance += 0.15
	case cost >= 4:
		m.GoldMultiplier += 0.25
		m.IngredientChance += 0.1
	case cost >= 2:
		m.GoldMultiplier += 0.1
	}

	switch mat.AttrID {
	case "dragonscale":
		m.AddSpecialEffect("Dragon Essence")
		m.RarityBonus += 1
	case "mithril":
		m.AddSpecialEffect("Mithril Glow")
		m.IntensityBonus += 0.15
	case "obsidian":
		m.AddSpecialEffect("Void Touch")
		m.ColorShift -= 45
	case "crystal":
		m.AddSpecialEffect("Crystal Clarity")
		m.RecipeDiscoveryBonus += 0.15
	case "adamantine":
		m.AddSpecialEffect("Unbreakable")
		m.GoldMultiplier += 0.2
	}
}

// applySuffixEffects applies cost bands, affinity by effect value, typed
// effect scaling and named suffix overrides.
func applySuffixEffects(m *model.PortalEffectModifiers, s *model.SuffixAttribute) {
	if s == nil {
		return
	}

	switch cost := s.CostContribution; {
	case cost >= 10:
		m.GoldMultiplier += 0.6
		m.RarityBonus += 2
		m.EquipmentChance += 0.25
	case cost >= 5:
		m.GoldMultiplier += 0.3
		m.RarityBonus += 1
		m.IngredientChance += 0.15
	case cost >= 3:
		m.GoldMultiplier += 0.15
	}

	m.AddElementBonus(s.Element, s.EffectValue)

	switch s.EffectType {
	case model.EffectDamage:
		m.GoldMultiplier += s.EffectValue * 0.05
	case model.EffectDefense:
		m.ManaMultiplier += s.EffectValue * 0.05
	case model.EffectElemental:
		m.IngredientChance += s.EffectValue * 0.02
		m.IntensityBonus += s.EffectValue * 0.02
	case model.EffectSpecial:
		m.EquipmentChance += s.EffectValue * 0.02
		m.RecipeDiscoveryBonus += s.EffectValue * 0.01
	}

	switch s.AttrID {
	case "flames":
		m.AddSpecialEffect("Burning")
		m.ColorShift += 15
	case "frost":
		m.AddSpecialEffect("Frozen")
		m.ColorShift -= 60
	case "storms":
		m.AddSpecialEffect("Electrified")
		m.IntensityBonus += 0.25
	case "annihilation":
		m.AddSpecialEffect("Destructive Force")
		m.EquipmentChance += 0.3
	case "void":
		m.AddSpecialEffect("Void Touched")
		m.RarityBonus += 2
	case "eternity":
		m.AddSpecialEffect("Timeless")
		m.ManaMultiplier += 0.5
	}
}

// applyCostEffects applies the total-cost scaling and per-rarity bonuses.
func applyCostEffects(m *model.PortalEffectModifiers, totalCost int, rarity model.Rarity) {
	m.GoldMultiplier += math.Floor(float64(totalCost)/10) * 0.05

	switch rarity {
	case model.RarityLegendary:
		m.RarityBonus += 3
		m.EquipmentChance += 0.2
		m.RecipeDiscoveryBonus += 0.15
	case model.RarityEpic:
		m.RarityBonus += 2
		m.EquipmentChance += 0.1
		m.RecipeDiscoveryBonus += 0.1
	case model.RarityRare:
		m.RarityBonus += 1
		m.IngredientChance += 0.05
		m.RecipeDiscoveryBonus += 0.05
	}
}
