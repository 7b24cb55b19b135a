package contract

import (
	"fmt"
	"math/rand/v2"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/udisondev/portalforge/internal/config"
	"github.com/udisondev/portalforge/internal/data"
	"github.com/udisondev/portalforge/internal/model"
)

func TestMain(m *testing.M) {
	if err := data.LoadAttributes(); err != nil {
		fmt.Fprintf(os.Stderr, "load attributes: %v\n", err)
		os.Exit(1)
	}
	if err := data.LoadCustomerTemplates(); err != nil {
		fmt.Fprintf(os.Stderr, "load customer templates: %v\n", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// scriptedRand feeds predetermined rolls to make band logic exact.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRand) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0] % n
	s.ints = s.ints[1:]
	return v
}

func tierTemplate(tier int, special bool, rewardChance float64) *model.CustomerTemplate {
	return &model.CustomerTemplate{
		ID: "test", Name: "Test", Tier: tier,
		BasePayment: 100, PaymentVariance: 0.2, BasePatience: 60,
		ModifierChances:     map[model.ContractModifier]float64{},
		SpecialRewardChance: rewardChance,
		IsSpecial:           special,
	}
}

func TestGenerateModifiers_ZeroChances(t *testing.T) {
	tpl := tierTemplate(3, false, 0)
	for _, mod := range model.AllContractModifiers {
		tpl.ModifierChances[mod] = 0
	}

	rng := rand.New(rand.NewPCG(1, 0))
	for _, difficulty := range []float64{0, 1, 5, 100} {
		require.Empty(t, GenerateModifiers(rng, tpl, difficulty))
	}
}

func TestGenerateModifiers_CertainChances(t *testing.T) {
	tpl := tierTemplate(3, false, 0)
	for _, mod := range model.AllContractModifiers {
		tpl.ModifierChances[mod] = 1
	}

	got := GenerateModifiers(rand.New(rand.NewPCG(1, 0)), tpl, 0)
	require.Equal(t, model.AllContractModifiers, got)
}

// chance = min(base*(1+difficulty*0.1), base*1.5): the cap binds once
// difficulty exceeds 5.
func TestGenerateModifiers_DifficultyCap(t *testing.T) {
	tpl := tierTemplate(3, false, 0)
	tpl.ModifierChances[model.ModifierUrgent] = 0.4

	// Scaled: 0.4*(1+2*0.1) = 0.48; roll 0.47 passes, 0.49 misses.
	got := GenerateModifiers(&scriptedRand{floats: []float64{0.47}}, tpl, 2)
	require.Equal(t, []model.ContractModifier{model.ModifierUrgent}, got)
	got = GenerateModifiers(&scriptedRand{floats: []float64{0.49}}, tpl, 2)
	require.Empty(t, got)

	// Capped at 0.4*1.5 = 0.6 for any higher difficulty.
	got = GenerateModifiers(&scriptedRand{floats: []float64{0.59}}, tpl, 1000)
	require.Equal(t, []model.ContractModifier{model.ModifierUrgent}, got)
	got = GenerateModifiers(&scriptedRand{floats: []float64{0.61}}, tpl, 1000)
	require.Empty(t, got)
}

func TestRollSpecialReward_Disabled(t *testing.T) {
	tpl := tierTemplate(5, true, 0)
	rng := rand.New(rand.NewPCG(1, 0))
	for i := 0; i < 100; i++ {
		require.Nil(t, RollSpecialReward(rng, tpl, 1))
	}
}

func TestRollSpecialReward_GateRoll(t *testing.T) {
	tpl := tierTemplate(3, false, 0.5)

	// Gate roll at/above the chance produces nothing.
	require.Nil(t, RollSpecialReward(&scriptedRand{floats: []float64{0.5}}, tpl, 1))
	require.Nil(t, RollSpecialReward(&scriptedRand{floats: []float64{0.9}}, tpl, 1))
}

func TestRollSpecialReward_Bands(t *testing.T) {
	tpl := tierTemplate(3, false, 0.5)

	tests := []struct {
		name string
		band float64
		want model.SpecialRewardType
	}{
		{"ingredient low", 0.0, model.SpecialRewardIngredient},
		{"ingredient high", 0.39, model.SpecialRewardIngredient},
		{"equipment", 0.4, model.SpecialRewardEquipment},
		{"equipment high", 0.69, model.SpecialRewardEquipment},
		{"mana", 0.7, model.SpecialRewardMana},
		{"mana high", 0.89, model.SpecialRewardMana},
		{"gold", 0.9, model.SpecialRewardGold},
		{"gold high", 0.99, model.SpecialRewardGold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &scriptedRand{floats: []float64{0.1, tt.band}, ints: []int{2}}
			got := RollSpecialReward(rng, tpl, 1)
			require.NotNil(t, got)
			require.Equal(t, tt.want, got.Type)
		})
	}
}

func TestRollSpecialReward_Amounts(t *testing.T) {
	tpl := tierTemplate(4, false, 1)

	// Mana: 50 + tier*30 + difficulty*20.
	got := RollSpecialReward(&scriptedRand{floats: []float64{0, 0.8}}, tpl, 2)
	require.NotNil(t, got)
	require.Equal(t, model.SpecialRewardMana, got.Type)
	require.InDelta(t, 50+4*30+2*20, got.Amount, 1e-9)

	// Gold: basePayment*(0.5 + difficulty*0.2).
	got = RollSpecialReward(&scriptedRand{floats: []float64{0, 0.95}}, tpl, 2)
	require.NotNil(t, got)
	require.Equal(t, model.SpecialRewardGold, got.Type)
	require.InDelta(t, 100*(0.5+2*0.2), got.Amount, 1e-9)
}

// Ingredient element comes from the tier table: a tier-1 customer only
// ever receives base elements.
func TestRollSpecialReward_IngredientElementTier(t *testing.T) {
	tpl := tierTemplate(1, false, 1)
	rng := rand.New(rand.NewPCG(17, 0))

	for i := 0; i < 500; i++ {
		got := RollSpecialReward(rng, tpl, 1)
		if got == nil || got.Type != model.SpecialRewardIngredient {
			continue
		}
		require.NotEqual(t, model.ElementNone, got.Element)
		require.Equal(t, 1, data.ElementTier(got.Element), "element %s above tier 1", got.Element)
	}
}

func TestDetermineRewardTier(t *testing.T) {
	tests := []struct {
		name          string
		tpl           *model.CustomerTemplate
		modifierCount int
		want          model.RewardTier
	}{
		{"tier5 special with reward chance", tierTemplate(5, true, 0.8), 0, model.RewardUnique},
		{"tier5 special without reward chance", tierTemplate(5, true, 0), 0, model.RewardRare},
		{"tier5 not special", tierTemplate(5, false, 0.8), 0, model.RewardRare},
		{"tier4", tierTemplate(4, false, 0), 0, model.RewardRare},
		{"tier3 two modifiers", tierTemplate(3, false, 0), 2, model.RewardRare},
		{"tier3 one modifier", tierTemplate(3, false, 0), 1, model.RewardEnhanced},
		{"tier2 one modifier", tierTemplate(2, false, 0), 1, model.RewardEnhanced},
		{"tier2 reward chance only", tierTemplate(2, false, 0.1), 0, model.RewardEnhanced},
		{"tier2 nothing", tierTemplate(2, false, 0), 0, model.RewardStandard},
		{"tier1", tierTemplate(1, false, 0), 3, model.RewardStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DetermineRewardTier(tt.tpl, tt.modifierCount))
		})
	}
}

func TestAdjustedPayment(t *testing.T) {
	rates := config.DefaultRates()

	require.Equal(t, 100, AdjustedPayment(100, nil, rates))
	require.Equal(t, 150, AdjustedPayment(100, []model.ContractModifier{model.ModifierUrgent}, rates))
	// Multiplicative stacking: 100 * 1.5 * 2.0.
	require.Equal(t, 300, AdjustedPayment(100, []model.ContractModifier{model.ModifierUrgent, model.ModifierBulkOrder}, rates))
}

func TestRollPayment_Bounds(t *testing.T) {
	tpl := tierTemplate(2, false, 0)
	rng := rand.New(rand.NewPCG(21, 0))

	for i := 0; i < 1000; i++ {
		p := RollPayment(rng, tpl)
		require.GreaterOrEqual(t, p, 80)
		require.LessOrEqual(t, p, 120)
	}
}

func TestGenerateContract_Reproducible(t *testing.T) {
	tpl := data.GetCustomerTemplate("archmage")
	require.NotNil(t, tpl)
	rates := config.DefaultRates()

	run := func() []Contract {
		rng := rand.New(rand.NewPCG(5, 0))
		var out []Contract
		for i := 0; i < 50; i++ {
			out = append(out, GenerateContract(rng, tpl, 1.5, rates))
		}
		return out
	}

	require.Equal(t, run(), run())
}

func TestGenerateContract_StoresAllOutputs(t *testing.T) {
	tpl := data.GetCustomerTemplate("merchant")
	require.NotNil(t, tpl)
	rng := rand.New(rand.NewPCG(8, 0))

	ct := GenerateContract(rng, tpl, 1, config.DefaultRates())
	require.NotZero(t, ct.Payment)
	require.NotZero(t, ct.Patience)
	require.GreaterOrEqual(t, ct.AdjustedPayment, ct.Payment)
	require.Nil(t, ct.SpecialReward) // merchant has no special reward chance
	require.Contains(t, []model.RewardTier{model.RewardStandard, model.RewardEnhanced}, ct.RewardTier)
}
