// Package forge implements procedural equipment generation over the
// static attribute catalogs.
package forge

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/udisondev/portalforge/internal/model"
)

// ErrEmptyGearPool means the mandatory gear-type pool has no entries.
// Data loading rejects such catalogs, so hitting this at generation time
// is a configuration bug, not a runtime condition.
var ErrEmptyGearPool = errors.New("gear type pool is empty")

// Generator assembles one gear type plus zero-or-one prefix/material/suffix
// into a scored equipment instance. Pools are injected and never mutated.
type Generator struct {
	prefixes  *model.Pool[*model.PrefixAttribute]
	materials *model.Pool[*model.MaterialAttribute]
	suffixes  *model.Pool[*model.SuffixAttribute]
	gearTypes *model.Pool[*model.GearTypeAttribute]
}

// NewGenerator creates a generator over the given attribute pools.
func NewGenerator(
	prefixes *model.Pool[*model.PrefixAttribute],
	materials *model.Pool[*model.MaterialAttribute],
	suffixes *model.Pool[*model.SuffixAttribute],
	gearTypes *model.Pool[*model.GearTypeAttribute],
) *Generator {
	return &Generator{
		prefixes:  prefixes,
		materials: materials,
		suffixes:  suffixes,
		gearTypes: gearTypes,
	}
}

// Generate produces one equipment instance for the given item level.
//
// Правила сборки:
//  1. Gear type — равномерно из всего пула (не гейтится по уровню).
//  2. Prefix/material/suffix — независимые выборки по уровню; каждый слот
//     может легитимно остаться пустым, если на уровне нет кандидатов.
//  3. TotalCost = baseCost + вклады присутствующих атрибутов,
//     Rarity = ClassifyRarity(TotalCost), ItemLevel запоминается для
//     последующих проверок (требования рецептов и слотов крафта).
//
// level < 1 is a caller contract violation.
func (g *Generator) Generate(rng model.Rand, level int) (*model.GeneratedEquipment, error) {
	if level < 1 {
		return nil, fmt.Errorf("item level must be >= 1, got %d", level)
	}

	gear, ok := g.gearTypes.PickRandom(rng, level)
	if !ok {
		return nil, ErrEmptyGearPool
	}

	eq := &model.GeneratedEquipment{
		InstanceID: uuid.New(),
		GearType:   *gear,
		ItemLevel:  level,
	}

	// Attributes are copied into the instance: the snapshot must stay
	// self-contained even if catalogs are rebuilt.
	if p, ok := g.prefixes.PickRandom(rng, level); ok {
		cp := *p
		eq.Prefix = &cp
	}
	if m, ok := g.materials.PickRandom(rng, level); ok {
		cp := *m
		eq.Material = &cp
	}
	if s, ok := g.suffixes.PickRandom(rng, level); ok {
		cp := *s
		eq.Suffix = &cp
	}

	eq.TotalCost = eq.ComputeTotalCost()
	eq.Rarity = model.ClassifyRarity(eq.TotalCost)
	return eq, nil
}
