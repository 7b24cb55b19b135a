package config

import (
	"fmt"
	"os"

	"github.com/udisondev/portalforge/internal/model"
	"gopkg.in/yaml.v3"
)

// Rates holds economy rate multipliers applied outside the fixed balance
// tables: per-modifier payment multipliers for the adjusted contract price.
type Rates struct {
	UrgentPaymentMultiplier        float64 `yaml:"urgent_payment_multiplier"`
	BonusPaymentMultiplier         float64 `yaml:"bonus_payment_multiplier"`
	PerfectionistPaymentMultiplier float64 `yaml:"perfectionist_payment_multiplier"`
	BulkOrderPaymentMultiplier     float64 `yaml:"bulk_order_payment_multiplier"`
	ExperimentalPaymentMultiplier  float64 `yaml:"experimental_payment_multiplier"`
}

// DefaultRates returns the shipped payment multipliers.
func DefaultRates() Rates {
	return Rates{
		UrgentPaymentMultiplier:        1.5,
		BonusPaymentMultiplier:         1.3,
		PerfectionistPaymentMultiplier: 1.4,
		BulkOrderPaymentMultiplier:     2.0,
		ExperimentalPaymentMultiplier:  1.6,
	}
}

// PaymentMultiplier returns the rate for a contract modifier, 1.0 for an
// unknown one.
func (r Rates) PaymentMultiplier(m model.ContractModifier) float64 {
	switch m {
	case model.ModifierUrgent:
		return r.UrgentPaymentMultiplier
	case model.ModifierBonus:
		return r.BonusPaymentMultiplier
	case model.ModifierPerfectionist:
		return r.PerfectionistPaymentMultiplier
	case model.ModifierBulkOrder:
		return r.BulkOrderPaymentMultiplier
	case model.ModifierExperimental:
		return r.ExperimentalPaymentMultiplier
	default:
		return 1.0
	}
}

// Sim holds configuration for the forgesim CLI.
type Sim struct {
	// Seed of shard 0; shard i runs with Seed+i.
	Seed   uint64 `yaml:"seed"`
	Shards int    `yaml:"shards"`

	// Per-shard volume
	Customers      int     `yaml:"customers"`
	ItemLevel      int     `yaml:"item_level"`
	ItemsPerPortal int     `yaml:"items_per_portal"`
	Difficulty     float64 `yaml:"difficulty"`

	LogLevel string `yaml:"log_level"` // debug | info | warn | error

	Rates Rates `yaml:"rates"`
}

// DefaultSim returns Sim config with a fixed seed and shipped rates.
func DefaultSim() Sim {
	return Sim{
		Seed:           1,
		Shards:         4,
		Customers:      250,
		ItemLevel:      10,
		ItemsPerPortal: 3,
		Difficulty:     1.0,
		LogLevel:       "info",
		Rates:          DefaultRates(),
	}
}

// LoadSim loads simulation config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSim(path string) (Sim, error) {
	cfg := DefaultSim()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Sim) validate() error {
	if c.Shards < 1 {
		return fmt.Errorf("shards must be >= 1, got %d", c.Shards)
	}
	if c.Customers < 0 {
		return fmt.Errorf("customers must be >= 0, got %d", c.Customers)
	}
	if c.ItemLevel < 1 {
		return fmt.Errorf("item_level must be >= 1, got %d", c.ItemLevel)
	}
	if c.ItemsPerPortal < 0 {
		return fmt.Errorf("items_per_portal must be >= 0, got %d", c.ItemsPerPortal)
	}
	if c.Difficulty < 0 {
		return fmt.Errorf("difficulty must be >= 0, got %v", c.Difficulty)
	}
	return nil
}
