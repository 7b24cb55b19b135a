// Package contract derives contract modifiers, special rewards and reward
// tiers from customer templates, plus the payment math applied on top.
package contract

import (
	"math"

	"github.com/udisondev/portalforge/internal/config"
	"github.com/udisondev/portalforge/internal/data"
	"github.com/udisondev/portalforge/internal/model"
)

// Difficulty scaling of modifier chances: base*(1 + difficulty*0.1),
// capped at base*1.5.
const (
	difficultyChanceScale = 0.1
	chanceScaleCap        = 1.5
)

// Special reward cumulative bands over a single uniform draw.
const (
	ingredientBand = 0.4
	equipmentBand  = 0.7
	manaBand       = 0.9
)

// Contract bundles the derived outputs stored on the customer record.
type Contract struct {
	Modifiers     []model.ContractModifier
	SpecialReward *model.SpecialReward
	RewardTier    model.RewardTier

	// Payment is the patience-free baseline rolled from the template;
	// AdjustedPayment includes modifier multipliers.
	Payment         int
	AdjustedPayment int

	Patience int // seconds
}

// GenerateContract derives the full contract for one spawned customer.
func GenerateContract(rng model.Rand, tpl *model.CustomerTemplate, difficulty float64, rates config.Rates) Contract {
	mods := GenerateModifiers(rng, tpl, difficulty)
	reward := RollSpecialReward(rng, tpl, difficulty)
	tier := DetermineRewardTier(tpl, len(mods))
	payment := RollPayment(rng, tpl)

	return Contract{
		Modifiers:       mods,
		SpecialReward:   reward,
		RewardTier:      tier,
		Payment:         payment,
		AdjustedPayment: AdjustedPayment(payment, mods, rates),
		Patience:        RollPatience(rng, tpl),
	}
}

// GenerateModifiers rolls each of the five modifier types independently
// against the template's chance table scaled by difficulty. The result is
// duplicate-free; roll order is fixed for per-seed reproducibility.
func GenerateModifiers(rng model.Rand, tpl *model.CustomerTemplate, difficulty float64) []model.ContractModifier {
	var out []model.ContractModifier
	for _, mod := range model.AllContractModifiers {
		base := tpl.ModifierChances[mod]
		if base <= 0 {
			continue
		}
		chance := base * (1 + difficulty*difficultyChanceScale)
		if maxChance := base * chanceScaleCap; chance > maxChance {
			chance = maxChance
		}
		if rng.Float64() < chance {
			out = append(out, mod)
		}
	}
	return out
}

// RollSpecialReward returns nil unless the template defines a nonzero
// special-reward chance and the roll passes. On success exactly one of four
// weighted outcomes is picked via cumulative bands over one uniform draw.
//
// Equipment rewards are placeholders filled in by the reward resolver.
// Ingredient rewards carry an element picked uniformly among elements whose
// tier does not exceed the customer tier.
func RollSpecialReward(rng model.Rand, tpl *model.CustomerTemplate, difficulty float64) *model.SpecialReward {
	if !tpl.HasSpecialRewardChance() {
		return nil
	}
	if rng.Float64() >= tpl.SpecialRewardChance {
		return nil
	}

	switch roll := rng.Float64(); {
	case roll < ingredientBand:
		els := data.ElementsUpToTier(tpl.Tier)
		return &model.SpecialReward{
			Type:    model.SpecialRewardIngredient,
			Element: els[rng.IntN(len(els))],
		}
	case roll < equipmentBand:
		return &model.SpecialReward{Type: model.SpecialRewardEquipment}
	case roll < manaBand:
		return &model.SpecialReward{
			Type:   model.SpecialRewardMana,
			Amount: 50 + float64(tpl.Tier)*30 + difficulty*20,
		}
	default:
		return &model.SpecialReward{
			Type:   model.SpecialRewardGold,
			Amount: float64(tpl.BasePayment) * (0.5 + difficulty*0.2),
		}
	}
}

// DetermineRewardTier classifies the contract's generosity. The table is
// evaluated top-down, first match wins.
func DetermineRewardTier(tpl *model.CustomerTemplate, modifierCount int) model.RewardTier {
	switch {
	case tpl.Tier >= 5 && tpl.IsSpecial && tpl.HasSpecialRewardChance():
		return model.RewardUnique
	case tpl.Tier >= 4 || (tpl.Tier >= 3 && modifierCount >= 2):
		return model.RewardRare
	case tpl.Tier >= 2 && (modifierCount >= 1 || tpl.HasSpecialRewardChance()):
		return model.RewardEnhanced
	default:
		return model.RewardStandard
	}
}

// AdjustedPayment applies the per-modifier payment multipliers to a base
// payment, multiplicative stacking, rounded to the nearest integer.
func AdjustedPayment(basePayment int, modifiers []model.ContractModifier, rates config.Rates) int {
	payment := float64(basePayment)
	for _, mod := range modifiers {
		payment *= rates.PaymentMultiplier(mod)
	}
	return int(math.Round(payment))
}

// RollPayment applies the template's payment variance uniformly:
// base ± base*variance.
func RollPayment(rng model.Rand, tpl *model.CustomerTemplate) int {
	base := float64(tpl.BasePayment)
	spread := base * tpl.PaymentVariance
	payment := base + (rng.Float64()*2-1)*spread
	if payment < 1 {
		payment = 1
	}
	return int(math.Round(payment))
}

// RollPatience applies the same uniform variance to the patience baseline
// handed to the customer system.
func RollPatience(rng model.Rand, tpl *model.CustomerTemplate) int {
	base := float64(tpl.BasePatience)
	spread := base * tpl.PaymentVariance
	patience := base + (rng.Float64()*2-1)*spread
	if patience < 1 {
		patience = 1
	}
	return int(math.Round(patience))
}
