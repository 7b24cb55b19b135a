package data

import (
	"math/rand/v2"
	"testing"
)

func TestCustomerTable(t *testing.T) {
	if len(CustomerTable) == 0 {
		t.Fatal("customer table is empty")
	}

	tpl := GetCustomerTemplate("mysterious_stranger")
	if tpl == nil {
		t.Fatal("mysterious_stranger missing")
	}
	if tpl.Tier != 5 || !tpl.IsSpecial || !tpl.HasSpecialRewardChance() {
		t.Errorf("mysterious_stranger = %+v, want tier 5 special with reward chance", tpl)
	}

	if GetCustomerTemplate("no_such") != nil {
		t.Error("unknown id must return nil")
	}
}

func TestCustomerTemplates_Sane(t *testing.T) {
	for _, tpl := range AllCustomerTemplates() {
		if tpl.BasePayment <= 0 {
			t.Errorf("%s: base payment %d", tpl.ID, tpl.BasePayment)
		}
		if tpl.BasePatience <= 0 {
			t.Errorf("%s: base patience %d", tpl.ID, tpl.BasePatience)
		}
		if tpl.PaymentVariance < 0 || tpl.PaymentVariance > 1 {
			t.Errorf("%s: payment variance %v", tpl.ID, tpl.PaymentVariance)
		}
		for mod, chance := range tpl.ModifierChances {
			if chance < 0 || chance > 1 {
				t.Errorf("%s: %s chance %v", tpl.ID, mod, chance)
			}
		}
	}
}

func TestPickCustomerTemplate(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 0))
	seen := make(map[string]int)
	for i := 0; i < 1000; i++ {
		tpl := PickCustomerTemplate(rng)
		if tpl == nil {
			t.Fatal("pick returned nil with loaded table")
		}
		seen[tpl.ID]++
	}
	if len(seen) != len(AllCustomerTemplates()) {
		t.Errorf("uniform pick missed templates: saw %d of %d", len(seen), len(AllCustomerTemplates()))
	}
}
