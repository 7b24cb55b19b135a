// Balance simulation for the portalforge economy: generates customers,
// contracts and portal crafts over seeded shards and prints aggregate
// statistics.
//
// Usage:
//
//	go run ./cmd/forgesim                       # defaults
//	go run ./cmd/forgesim -config sim.yaml      # tuned run
//	FORGE_CONFIG=sim.yaml go run ./cmd/forgesim
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/portalforge/internal/config"
	"github.com/udisondev/portalforge/internal/data"
	"github.com/udisondev/portalforge/internal/game/contract"
	"github.com/udisondev/portalforge/internal/game/forge"
	"github.com/udisondev/portalforge/internal/game/portal"
	"github.com/udisondev/portalforge/internal/model"
)

const defaultConfigPath = "config/forgesim.yaml"

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", defaultConfigPath, "path to simulation config")
	flag.Parse()

	path := *cfgPath
	if p := os.Getenv("FORGE_CONFIG"); p != "" {
		path = p
	}
	cfg, err := config.LoadSim(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))
	slog.Info("forgesim starting",
		"seed", cfg.Seed, "shards", cfg.Shards,
		"customers", cfg.Customers, "item_level", cfg.ItemLevel)

	if err := data.LoadAttributes(); err != nil {
		return fmt.Errorf("loading attributes: %w", err)
	}
	if err := data.LoadCustomerTemplates(); err != nil {
		return fmt.Errorf("loading customer templates: %w", err)
	}

	gen := forge.NewGenerator(data.Prefixes(), data.Materials(), data.Suffixes(), data.GearTypes())

	var (
		mu    sync.Mutex
		total stats
	)

	// Shards are fully independent: each owns its RNG (seed+i) and local
	// accumulator, merged under the mutex at the end.
	var g errgroup.Group
	for i := 0; i < cfg.Shards; i++ {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(cfg.Seed+uint64(i), 0))
			s, err := runShard(rng, gen, cfg)
			if err != nil {
				return fmt.Errorf("shard %d: %w", i, err)
			}
			mu.Lock()
			total.merge(s)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total.report()
	return nil
}

// runShard simulates cfg.Customers spawned customers: one contract each,
// plus one portal craft of cfg.ItemsPerPortal items.
func runShard(rng model.Rand, gen *forge.Generator, cfg config.Sim) (stats, error) {
	var s stats
	s.rarities = make(map[model.Rarity]int)
	s.tiers = make(map[model.RewardTier]int)

	for c := 0; c < cfg.Customers; c++ {
		tpl := data.PickCustomerTemplate(rng)
		ct := contract.GenerateContract(rng, tpl, cfg.Difficulty, cfg.Rates)

		s.contracts++
		s.modifiers += len(ct.Modifiers)
		s.tiers[ct.RewardTier]++
		s.paymentSum += ct.AdjustedPayment
		if ct.SpecialReward != nil {
			s.specialRewards++
		}

		items := make([]*model.GeneratedEquipment, 0, cfg.ItemsPerPortal)
		for n := 0; n < cfg.ItemsPerPortal; n++ {
			eq, err := gen.Generate(rng, cfg.ItemLevel)
			if err != nil {
				return s, err
			}
			s.rarities[eq.Rarity]++
			items = append(items, eq)
		}
		effects := portal.Resolve(items)
		s.crafts++
		s.goldMultSum += effects.GoldMultiplier
		s.manaMultSum += effects.ManaMultiplier
	}
	return s, nil
}

type stats struct {
	contracts      int
	crafts         int
	modifiers      int
	specialRewards int
	paymentSum     int
	goldMultSum    float64
	manaMultSum    float64
	rarities       map[model.Rarity]int
	tiers          map[model.RewardTier]int
}

func (s *stats) merge(o stats) {
	s.contracts += o.contracts
	s.crafts += o.crafts
	s.modifiers += o.modifiers
	s.specialRewards += o.specialRewards
	s.paymentSum += o.paymentSum
	s.goldMultSum += o.goldMultSum
	s.manaMultSum += o.manaMultSum
	if s.rarities == nil {
		s.rarities = make(map[model.Rarity]int)
	}
	if s.tiers == nil {
		s.tiers = make(map[model.RewardTier]int)
	}
	for r, n := range o.rarities {
		s.rarities[r] += n
	}
	for t, n := range o.tiers {
		s.tiers[t] += n
	}
}

func (s *stats) report() {
	slog.Info("contracts",
		"total", s.contracts,
		"avg_modifiers", ratio(s.modifiers, s.contracts),
		"special_rewards", s.specialRewards,
		"avg_payment", ratio(s.paymentSum, s.contracts))
	for _, t := range []model.RewardTier{model.RewardStandard, model.RewardEnhanced, model.RewardRare, model.RewardUnique} {
		slog.Info("reward tier", "tier", t.String(), "count", s.tiers[t])
	}
	slog.Info("crafts",
		"total", s.crafts,
		"avg_gold_multiplier", ratio64(s.goldMultSum, s.crafts),
		"avg_mana_multiplier", ratio64(s.manaMultSum, s.crafts))
	for _, r := range []model.Rarity{model.RarityCommon, model.RarityUncommon, model.RarityRare, model.RarityEpic, model.RarityLegendary} {
		slog.Info("item rarity", "rarity", r.String(), "count", s.rarities[r])
	}
}

func ratio(sum, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func ratio64(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
