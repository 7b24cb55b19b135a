package data

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/portalforge/internal/model"
)

// Глобальные пулы атрибутов. Строятся один раз в LoadAttributes и дальше
// только читаются.
var (
	prefixPool   *model.Pool[*model.PrefixAttribute]
	materialPool *model.Pool[*model.MaterialAttribute]
	suffixPool   *model.Pool[*model.SuffixAttribute]
	gearTypePool *model.Pool[*model.GearTypeAttribute]
)

// LoadAttributes builds the attribute pools from the literal catalogs and
// validates them. An empty gear-type pool or a malformed entry is a fatal
// configuration error: generation must never start over broken catalogs.
func LoadAttributes() error {
	if err := validatePrefixes(prefixDefs); err != nil {
		return fmt.Errorf("prefix catalog: %w", err)
	}
	if err := validateMaterials(materialDefs); err != nil {
		return fmt.Errorf("material catalog: %w", err)
	}
	if err := validateSuffixes(suffixDefs); err != nil {
		return fmt.Errorf("suffix catalog: %w", err)
	}
	if err := validateGearTypes(gearTypeDefs); err != nil {
		return fmt.Errorf("gear type catalog: %w", err)
	}

	prefixPool = model.NewPool(prefixDefs)
	materialPool = model.NewPool(materialDefs)
	suffixPool = model.NewPool(suffixDefs)
	gearTypePool = model.NewPool(gearTypeDefs)

	slog.Info("loaded attribute catalogs",
		"prefixes", prefixPool.Len(),
		"materials", materialPool.Len(),
		"suffixes", suffixPool.Len(),
		"gear_types", gearTypePool.Len())
	return nil
}

// Prefixes returns the prefix pool. LoadAttributes must have been called.
func Prefixes() *model.Pool[*model.PrefixAttribute] { return prefixPool }

// Materials returns the material pool.
func Materials() *model.Pool[*model.MaterialAttribute] { return materialPool }

// Suffixes returns the suffix pool.
func Suffixes() *model.Pool[*model.SuffixAttribute] { return suffixPool }

// GearTypes returns the ungated gear type pool.
func GearTypes() *model.Pool[*model.GearTypeAttribute] { return gearTypePool }

func validatePrefixes(defs []*model.PrefixAttribute) error {
	seen := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		if err := validateBase(&d.Attribute, seen); err != nil {
			return err
		}
	}
	return nil
}

func validateMaterials(defs []*model.MaterialAttribute) error {
	seen := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		if err := validateBase(&d.Attribute, seen); err != nil {
			return err
		}
	}
	return nil
}

func validateSuffixes(defs []*model.SuffixAttribute) error {
	seen := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		if err := validateBase(&d.Attribute, seen); err != nil {
			return err
		}
		if d.EffectValue < 0 {
			return fmt.Errorf("suffix %q: negative effect value %v", d.AttrID, d.EffectValue)
		}
	}
	return nil
}

func validateGearTypes(defs []*model.GearTypeAttribute) error {
	if len(defs) == 0 {
		return fmt.Errorf("empty gear type pool")
	}
	seen := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		if d.AttrID == "" {
			return fmt.Errorf("gear type with empty id")
		}
		if _, dup := seen[d.AttrID]; dup {
			return fmt.Errorf("duplicate gear type id %q", d.AttrID)
		}
		seen[d.AttrID] = struct{}{}
	}
	return nil
}

func validateBase(a *model.Attribute, seen map[string]struct{}) error {
	if a.AttrID == "" {
		return fmt.Errorf("attribute with empty id")
	}
	if _, dup := seen[a.AttrID]; dup {
		return fmt.Errorf("duplicate attribute id %q", a.AttrID)
	}
	seen[a.AttrID] = struct{}{}
	if a.Levels.Min < 1 {
		return fmt.Errorf("attribute %q: level range min %d < 1", a.AttrID, a.Levels.Min)
	}
	if a.Levels.Max < a.Levels.Min {
		return fmt.Errorf("attribute %q: inverted level range [%d, %d]", a.AttrID, a.Levels.Min, a.Levels.Max)
	}
	return nil
}
