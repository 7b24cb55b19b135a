package data

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/portalforge/internal/model"
)

var customerDefs = []*model.CustomerTemplate{
	{
		ID: "peasant", Name: "Peasant", Tier: 1,
		BasePayment: 20, PaymentVariance: 0.3, BasePatience: 60,
		ModifierChances: map[model.ContractModifier]float64{
			model.ModifierUrgent:    0.1,
			model.ModifierBulkOrder: 0.05,
		},
	},
	{
		ID: "apprentice", Name: "Apprentice", Tier: 1,
		BasePayment: 30, PaymentVariance: 0.25, BasePatience: 75,
		ModifierChances: map[model.ContractModifier]float64{
			model.ModifierUrgent: 0.15,
			model.ModifierBonus:  0.1,
		},
	},
	{
		ID: "merchant", Name: "Merchant", Tier: 2,
		BasePayment: 50, PaymentVariance: 0.2, BasePatience: 90,
		ModifierChances: map[model.ContractModifier]float64{
			model.ModifierUrgent:    0.2,
			model.ModifierBonus:     0.15,
			model.ModifierBulkOrder: 0.2,
		},
	},
	{
		ID: "adventurer", Name: "Adventurer", Tier: 3,
		BasePayment: 80, PaymentVariance: 0.25, BasePatience: 80,
		ModifierChances: map[model.ContractModifier]float64{
			model.ModifierUrgent:        0.25,
			model.ModifierBonus:         0.2,
			model.ModifierPerfectionist: 0.1,
			model.ModifierExperimental:  0.15,
		},
		SpecialRewardChance: 0.1,
	},
	{
		ID: "noble", Name: "Noble", Tier: 4,
		BasePayment: 150, PaymentVariance: 0.15, BasePatience: 120,
		ModifierChances: map[model.ContractModifier]float64{
			model.ModifierBonus:         0.3,
			model.ModifierPerfectionist: 0.25,
			model.ModifierBulkOrder:     0.1,
		},
		SpecialRewardChance: 0.25,
	},
	{
		ID: "collector", Name: "Collector", Tier: 4,
		BasePayment: 120, PaymentVariance: 0.2, BasePatience: 150,
		ModifierChances: map[model.ContractModifier]float64{
			model.ModifierPerfectionist: 0.35,
			model.ModifierExperimental:  0.2,
		},
		SpecialRewardChance: 0.3,
	},
	{
		ID: "archmage", Name: "Archmage", Tier: 5,
		BasePayment: 250, PaymentVariance: 0.2, BasePatience: 100,
		ModifierChances: map[model.ContractModifier]float64{
			model.ModifierBonus:         0.3,
			model.ModifierPerfectionist: 0.3,
			model.ModifierExperimental:  0.4,
		},
		SpecialRewardChance: 0.5,
		IsSpecial:           true,
	},
	{
		ID: "mysterious_stranger", Name: "Mysterious Stranger", Tier: 5,
		BasePayment: 300, PaymentVariance: 0.4, BasePatience: 45,
		ModifierChances: map[model.ContractModifier]float64{
			model.ModifierUrgent:       0.3,
			model.ModifierExperimental: 0.5,
		},
		SpecialRewardChance: 0.8,
		IsSpecial:           true,
	},
}

// CustomerTable — глобальный реестр шаблонов покупателей.
var CustomerTable map[string]*model.CustomerTemplate

// customerOrder keeps catalog order for deterministic uniform picks.
var customerOrder []*model.CustomerTemplate

// LoadCustomerTemplates builds CustomerTable from the literal defs.
func LoadCustomerTemplates() error {
	CustomerTable = make(map[string]*model.CustomerTemplate, len(customerDefs))
	customerOrder = customerOrder[:0]

	for _, def := range customerDefs {
		if def.ID == "" {
			return fmt.Errorf("customer template with empty id")
		}
		if _, dup := CustomerTable[def.ID]; dup {
			return fmt.Errorf("duplicate customer template id %q", def.ID)
		}
		if def.Tier < 1 {
			return fmt.Errorf("customer template %q: tier %d < 1", def.ID, def.Tier)
		}
		for mod, chance := range def.ModifierChances {
			if chance < 0 || chance > 1 {
				return fmt.Errorf("customer template %q: %s chance %v out of [0, 1]", def.ID, mod, chance)
			}
		}
		if def.SpecialRewardChance < 0 || def.SpecialRewardChance > 1 {
			return fmt.Errorf("customer template %q: special reward chance %v out of [0, 1]", def.ID, def.SpecialRewardChance)
		}
		CustomerTable[def.ID] = def
		customerOrder = append(customerOrder, def)
	}

	slog.Info("loaded customer templates", "count", len(CustomerTable))
	return nil
}

// GetCustomerTemplate returns a template by id, or nil if not found.
func GetCustomerTemplate(id string) *model.CustomerTemplate {
	if CustomerTable == nil {
		return nil
	}
	return CustomerTable[id]
}

// AllCustomerTemplates returns every template in catalog order.
func AllCustomerTemplates() []*model.CustomerTemplate {
	return customerOrder
}

// PickCustomerTemplate returns a uniformly random template, or nil when the
// table is not loaded.
func PickCustomerTemplate(rng model.Rand) *model.CustomerTemplate {
	if len(customerOrder) == 0 {
		return nil
	}
	return customerOrder[rng.IntN(len(customerOrder))]
}
