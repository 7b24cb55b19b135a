package data

import (
	"testing"

	"github.com/udisondev/portalforge/internal/model"
)

// Каталог с дефектом обязан отклоняться на загрузке, а не ломать
// генерацию в рантайме.

func TestValidatePrefixes_Rejects(t *testing.T) {
	tests := []struct {
		name string
		defs []*model.PrefixAttribute
	}{
		{
			"duplicate id",
			[]*model.PrefixAttribute{
				{Attribute: model.Attribute{AttrID: "dull", Name: "Dull", Levels: model.LevelRange{Min: 1, Max: 5}}},
				{Attribute: model.Attribute{AttrID: "dull", Name: "Dull", Levels: model.LevelRange{Min: 2, Max: 6}}},
			},
		},
		{
			"inverted level range",
			[]*model.PrefixAttribute{
				{Attribute: model.Attribute{AttrID: "dull", Name: "Dull", Levels: model.LevelRange{Min: 5, Max: 2}}},
			},
		},
		{
			"min below 1",
			[]*model.PrefixAttribute{
				{Attribute: model.Attribute{AttrID: "dull", Name: "Dull", Levels: model.LevelRange{Min: 0, Max: 4}}},
			},
		},
		{
			"empty id",
			[]*model.PrefixAttribute{
				{Attribute: model.Attribute{Name: "Nameless", Levels: model.LevelRange{Min: 1, Max: 4}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validatePrefixes(tt.defs); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestValidateMaterials_Rejects(t *testing.T) {
	defs := []*model.MaterialAttribute{
		{Attribute: model.Attribute{AttrID: "tin", Name: "Tin", Levels: model.LevelRange{Min: 1, Max: 3}}},
		{Attribute: model.Attribute{AttrID: "tin", Name: "Tin", Levels: model.LevelRange{Min: 1, Max: 3}}},
	}
	if err := validateMaterials(defs); err == nil {
		t.Error("duplicate material id must be rejected")
	}
}

func TestValidateSuffixes_Rejects(t *testing.T) {
	tests := []struct {
		name string
		defs []*model.SuffixAttribute
	}{
		{
			"negative effect value",
			[]*model.SuffixAttribute{
				{
					Attribute:  model.Attribute{AttrID: "decay", Name: "of Decay", Levels: model.LevelRange{Min: 1, Max: 5}},
					EffectType: model.EffectDamage, EffectValue: -1,
				},
			},
		},
		{
			"inverted level range",
			[]*model.SuffixAttribute{
				{
					Attribute:  model.Attribute{AttrID: "decay", Name: "of Decay", Levels: model.LevelRange{Min: 8, Max: 3}},
					EffectType: model.EffectDamage, EffectValue: 1,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateSuffixes(tt.defs); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestValidateGearTypes_Rejects(t *testing.T) {
	if err := validateGearTypes(nil); err == nil {
		t.Error("empty gear type pool must be rejected")
	}
	if err := validateGearTypes([]*model.GearTypeAttribute{}); err == nil {
		t.Error("empty gear type slice must be rejected")
	}

	dup := []*model.GearTypeAttribute{
		{AttrID: "club", Name: "Club", Slot: model.GearSlotWeapon, BaseCost: 2},
		{AttrID: "club", Name: "Club", Slot: model.GearSlotWeapon, BaseCost: 3},
	}
	if err := validateGearTypes(dup); err == nil {
		t.Error("duplicate gear type id must be rejected")
	}

	noID := []*model.GearTypeAttribute{{Name: "Nameless", Slot: model.GearSlotWeapon}}
	if err := validateGearTypes(noID); err == nil {
		t.Error("empty gear type id must be rejected")
	}
}
