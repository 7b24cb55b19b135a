package data

import "github.com/udisondev/portalforge/internal/model"

// Статические каталоги атрибутов. Литералы, а не внешние файлы: балансные
// пороги и стоимости — часть кода и меняются только через ревью.

var prefixDefs = []*model.PrefixAttribute{
	{Attribute: model.Attribute{AttrID: "rusty", Name: "Rusty", CostContribution: -2, Levels: model.LevelRange{Min: 1, Max: 4}}},
	{Attribute: model.Attribute{AttrID: "cracked", Name: "Cracked", CostContribution: -1, Levels: model.LevelRange{Min: 1, Max: 3}}},
	{Attribute: model.Attribute{AttrID: "simple", Name: "Simple", CostContribution: 1, Levels: model.LevelRange{Min: 1, Max: 5}}},
	{Attribute: model.Attribute{AttrID: "sturdy", Name: "Sturdy", CostContribution: 2, Levels: model.LevelRange{Min: 1, Max: 8}}},
	{Attribute: model.Attribute{AttrID: "polished", Name: "Polished", CostContribution: 3, Levels: model.LevelRange{Min: 2, Max: 10}}},
	{Attribute: model.Attribute{AttrID: "fine", Name: "Fine", CostContribution: 4, Levels: model.LevelRange{Min: 3, Max: 12}}},
	{Attribute: model.Attribute{AttrID: "gleaming", Name: "Gleaming", CostContribution: 5, Levels: model.LevelRange{Min: 4, Max: 14}, Element: model.ElementLight}},
	{Attribute: model.Attribute{AttrID: "blessed", Name: "Blessed", CostContribution: 6, Levels: model.LevelRange{Min: 5, Max: 16}, Element: model.ElementLight}},
	{Attribute: model.Attribute{AttrID: "masterwork", Name: "Masterwork", CostContribution: 8, Levels: model.LevelRange{Min: 6, Max: 20}}},
	{Attribute: model.Attribute{AttrID: "enchanted", Name: "Enchanted", CostContribution: 10, Levels: model.LevelRange{Min: 5, Max: 20}}},
	{Attribute: model.Attribute{AttrID: "ancient", Name: "Ancient", CostContribution: 12, Levels: model.LevelRange{Min: 10, Max: 30}}},
	{Attribute: model.Attribute{AttrID: "legendary", Name: "Legendary", CostContribution: 15, Levels: model.LevelRange{Min: 14, Max: 40}}},
}

var materialDefs = []*model.MaterialAttribute{
	{Attribute: model.Attribute{AttrID: "oak", Name: "Oak", CostContribution: 1, Levels: model.LevelRange{Min: 1, Max: 4}}},
	{Attribute: model.Attribute{AttrID: "iron", Name: "Iron", CostContribution: 2, Levels: model.LevelRange{Min: 1, Max: 6}}},
	{Attribute: model.Attribute{AttrID: "steel", Name: "Steel", CostContribution: 3, Levels: model.LevelRange{Min: 2, Max: 8}}},
	{Attribute: model.Attribute{AttrID: "silver", Name: "Silver", CostContribution: 4, Levels: model.LevelRange{Min: 3, Max: 10}, Element: model.ElementLight}},
	{Attribute: model.Attribute{AttrID: "frostiron", Name: "Frostiron", CostContribution: 5, Levels: model.LevelRange{Min: 4, Max: 12}, Element: model.ElementIce}},
	{Attribute: model.Attribute{AttrID: "mithril", Name: "Mithril", CostContribution: 6, Levels: model.LevelRange{Min: 4, Max: 12}, Element: model.ElementAir}},
	{Attribute: model.Attribute{AttrID: "crystal", Name: "Crystal", CostContribution: 7, Levels: model.LevelRange{Min: 5, Max: 14}}},
	{Attribute: model.Attribute{AttrID: "obsidian", Name: "Obsidian", CostContribution: 8, Levels: model.LevelRange{Min: 7, Max: 16}, Element: model.ElementShadow}},
	{Attribute: model.Attribute{AttrID: "dragonscale", Name: "Dragonscale", CostContribution: 9, Levels: model.LevelRange{Min: 8, Max: 20}, Element: model.ElementFire}},
	{Attribute: model.Attribute{AttrID: "adamantine", Name: "Adamantine", CostContribution: 10, Levels: model.LevelRange{Min: 10, Max: 30}}},
}

var suffixDefs = []*model.SuffixAttribute{
	{Attribute: model.Attribute{AttrID: "power", Name: "of Power", CostContribution: 3, Levels: model.LevelRange{Min: 1, Max: 8}}, EffectType: model.EffectDamage, EffectValue: 4},
	{Attribute: model.Attribute{AttrID: "guardian", Name: "of the Guardian", CostContribution: 3, Levels: model.LevelRange{Min: 1, Max: 8}}, EffectType: model.EffectDefense, EffectValue: 4},
	{Attribute: model.Attribute{AttrID: "tides", Name: "of the Tides", CostContribution: 4, Levels: model.LevelRange{Min: 2, Max: 10}, Element: model.ElementWater}, EffectType: model.EffectElemental, EffectValue: 4},
	{Attribute: model.Attribute{AttrID: "fortune", Name: "of Fortune", CostContribution: 4, Levels: model.LevelRange{Min: 3, Max: 12}}, EffectType: model.EffectSpecial, EffectValue: 5},
	{Attribute: model.Attribute{AttrID: "flames", Name: "of Flames", CostContribution: 5, Levels: model.LevelRange{Min: 3, Max: 12}, Element: model.ElementFire}, EffectType: model.EffectElemental, EffectValue: 5},
	{Attribute: model.Attribute{AttrID: "frost", Name: "of Frost", CostContribution: 5, Levels: model.LevelRange{Min: 3, Max: 12}, Element: model.ElementIce}, EffectType: model.EffectElemental, EffectValue: 5},
	{Attribute: model.Attribute{AttrID: "storms", Name: "of Storms", CostContribution: 6, Levels: model.LevelRange{Min: 4, Max: 14}, Element: model.ElementLightning}, EffectType: model.EffectElemental, EffectValue: 6},
	{Attribute: model.Attribute{AttrID: "shadows", Name: "of Shadows", CostContribution: 7, Levels: model.LevelRange{Min: 6, Max: 16}, Element: model.ElementShadow}, EffectType: model.EffectElemental, EffectValue: 6},
	{Attribute: model.Attribute{AttrID: "void", Name: "of the Void", CostContribution: 11, Levels: model.LevelRange{Min: 10, Max: 28}, Element: model.ElementShadow}, EffectType: model.EffectSpecial, EffectValue: 8},
	{Attribute: model.Attribute{AttrID: "annihilation", Name: "of Annihilation", CostContribution: 12, Levels: model.LevelRange{Min: 12, Max: 30}}, EffectType: model.EffectDamage, EffectValue: 10},
	{Attribute: model.Attribute{AttrID: "eternity", Name: "of Eternity", CostContribution: 12, Levels: model.LevelRange{Min: 14, Max: 40}}, EffectType: model.EffectSpecial, EffectValue: 9},
}

var gearTypeDefs = []*model.GearTypeAttribute{
	{AttrID: "dagger", Name: "Dagger", Slot: model.GearSlotWeapon, BaseCost: 3},
	{AttrID: "staff", Name: "Staff", Slot: model.GearSlotWeapon, BaseCost: 4},
	{AttrID: "sword", Name: "Sword", Slot: model.GearSlotWeapon, BaseCost: 5},
	{AttrID: "bow", Name: "Bow", Slot: model.GearSlotWeapon, BaseCost: 5},
	{AttrID: "axe", Name: "Axe", Slot: model.GearSlotWeapon, BaseCost: 6},
	{AttrID: "boots", Name: "Boots", Slot: model.GearSlotArmor, BaseCost: 2},
	{AttrID: "helmet", Name: "Helmet", Slot: model.GearSlotArmor, BaseCost: 3},
	{AttrID: "shield", Name: "Shield", Slot: model.GearSlotArmor, BaseCost: 4},
	{AttrID: "breastplate", Name: "Breastplate", Slot: model.GearSlotArmor, BaseCost: 6},
	{AttrID: "ring", Name: "Ring", Slot: model.GearSlotAccessory, BaseCost: 4},
	{AttrID: "amulet", Name: "Amulet", Slot: model.GearSlotAccessory, BaseCost: 5},
	{AttrID: "potion", Name: "Potion", Slot: model.GearSlotConsumable, BaseCost: 2},
	{AttrID: "elixir", Name: "Elixir", Slot: model.GearSlotConsumable, BaseCost: 4},
}
