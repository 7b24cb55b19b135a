package model

import (
	"math/rand/v2"
	"testing"
)

func testPrefixPool() *Pool[*PrefixAttribute] {
	return NewPool([]*PrefixAttribute{
		{Attribute: Attribute{AttrID: "rusty", Name: "Rusty", CostContribution: -2, Levels: LevelRange{Min: 1, Max: 4}}},
		{Attribute: Attribute{AttrID: "sturdy", Name: "Sturdy", CostContribution: 2, Levels: LevelRange{Min: 1, Max: 8}}},
		{Attribute: Attribute{AttrID: "enchanted", Name: "Enchanted", CostContribution: 10, Levels: LevelRange{Min: 5, Max: 20}}},
	})
}

func TestPool_Eligible(t *testing.T) {
	pool := testPrefixPool()

	tests := []struct {
		level int
		want  []string
	}{
		{0, nil},
		{1, []string{"rusty", "sturdy"}},
		{4, []string{"rusty", "sturdy"}},
		{5, []string{"sturdy", "enchanted"}},
		{9, []string{"enchanted"}},
		{20, []string{"enchanted"}},
		{21, nil},
	}

	for _, tt := range tests {
		got := pool.Eligible(tt.level)
		if len(got) != len(tt.want) {
			t.Errorf("Eligible(%d) returned %d entries, want %d", tt.level, len(got), len(tt.want))
			continue
		}
		for i, e := range got {
			if e.ID() != tt.want[i] {
				t.Errorf("Eligible(%d)[%d] = %q, want %q", tt.level, i, e.ID(), tt.want[i])
			}
		}
	}
}

func TestPool_PickRandom(t *testing.T) {
	pool := testPrefixPool()
	rng := rand.New(rand.NewPCG(7, 0))

	// Absence is an expected outcome, not an error.
	if _, ok := pool.PickRandom(rng, 0); ok {
		t.Fatal("PickRandom at level 0 must report absence")
	}
	if _, ok := pool.PickRandom(rng, 100); ok {
		t.Fatal("PickRandom above all ranges must report absence")
	}

	// Every pick is eligible at the requested level.
	for i := 0; i < 200; i++ {
		got, ok := pool.PickRandom(rng, 4)
		if !ok {
			t.Fatal("PickRandom at level 4 must find a candidate")
		}
		if !got.EligibleAt(4) {
			t.Fatalf("picked %q not eligible at level 4", got.ID())
		}
	}

	// Uniform over eligible: both level-4 candidates show up.
	seen := make(map[string]int)
	for i := 0; i < 500; i++ {
		got, _ := pool.PickRandom(rng, 4)
		seen[got.ID()]++
	}
	if seen["rusty"] == 0 || seen["sturdy"] == 0 {
		t.Fatalf("pick distribution degenerate: %v", seen)
	}
}

func TestPool_FindByID(t *testing.T) {
	pool := testPrefixPool()

	got, ok := pool.FindByID("enchanted")
	if !ok {
		t.Fatal("FindByID(enchanted) not found")
	}
	if got.CostContribution != 10 {
		t.Errorf("enchanted cost = %d, want 10", got.CostContribution)
	}

	if _, ok := pool.FindByID("no_such"); ok {
		t.Error("FindByID(no_such) must report absence")
	}
}

func TestPool_AllIsCopy(t *testing.T) {
	pool := testPrefixPool()

	all := pool.All()
	if len(all) != pool.Len() {
		t.Fatalf("All() returned %d entries, want %d", len(all), pool.Len())
	}

	// Rearranging the returned slice must not disturb the pool.
	all[0], all[1] = all[1], all[0]
	all = all[:1]

	again := pool.All()
	if len(again) != pool.Len() {
		t.Fatalf("pool shrank after caller truncated the copy: %d", len(again))
	}
	if again[0].ID() != "rusty" || again[1].ID() != "sturdy" {
		t.Errorf("catalog order disturbed: %q, %q", again[0].ID(), again[1].ID())
	}
}

func TestLevelRange_Contains(t *testing.T) {
	r := LevelRange{Min: 3, Max: 7}
	for level, want := range map[int]bool{2: false, 3: true, 5: true, 7: true, 8: false} {
		if got := r.Contains(level); got != want {
			t.Errorf("Contains(%d) = %v, want %v", level, got, want)
		}
	}
}
