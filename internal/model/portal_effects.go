package model

// PortalEffectModifiers — агрегированный набор модификаторов наград,
// свёрнутый из атрибутов снаряжения, скормленного порталу.
// Multiplicative fields are neutral at 1.0, additive fields at 0.
type PortalEffectModifiers struct {
	GoldMultiplier       float64
	ManaMultiplier       float64
	IngredientChance     float64
	EquipmentChance      float64
	RarityBonus          float64
	IntensityBonus       float64
	ColorShift           float64
	RecipeDiscoveryBonus float64

	// ElementBonuses maps an element to its accumulated affinity bonus.
	ElementBonuses map[Element]float64

	// SpecialEffects keeps label order by equipment input order.
	// Duplicates are allowed and kept.
	SpecialEffects []string
}

// NeutralPortalEffects returns the baseline an empty portal resolves to.
func NeutralPortalEffects() PortalEffectModifiers {
	return PortalEffectModifiers{
		GoldMultiplier: 1.0,
		ManaMultiplier: 1.0,
		ElementBonuses: make(map[Element]float64),
		SpecialEffects: []string{},
	}
}

// AddElementBonus accumulates an affinity bonus, ignoring the empty element.
func (m *PortalEffectModifiers) AddElementBonus(el Element, bonus float64) {
	if el == ElementNone {
		return
	}
	m.ElementBonuses[el] += bonus
}

// AddSpecialEffect appends a label preserving input order.
func (m *PortalEffectModifiers) AddSpecialEffect(label string) {
	m.SpecialEffects = append(m.SpecialEffects, label)
}
