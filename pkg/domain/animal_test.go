package domain

import (
	"strconv"
	"strings"
	"sync"
	"testing"
)

func TestPopulationCountsEveryVariant(t *testing.T) {
	before := Population()

	NewAnimal("", "")
	NewMammal("Dolph", "Blue", "Big", "Dolphin")
	NewReptile("Sabath", "Black and White", "Tiny", "Garden Snake")
	NewBird("Tweety", "Yellow", "Small", "Canary", 0.2, 0.4)
	NewFlyingBird("Hawk", "Grey", "Medium", "Hawk", 1.1, 2)
	NewEndangeredFlyingBird("Rick", "Brown and White", "Huge", "Eagle", "Endangered", 4.5, 18)

	if got := Population() - before; got != 6 {
		t.Fatalf("expected 6 new animals, got %d", got)
	}
	want := "Total animal population: " + strconv.FormatInt(Population(), 10)
	if got := PopAmount(); got != want {
		t.Fatalf("unexpected pop amount %q, want %q", got, want)
	}
}

func TestPopulationConcurrentConstruction(t *testing.T) {
	const workers = 200
	before := Population()

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			NewMammal("Dolph", "Blue", "Big", "Dolphin")
		}()
	}
	wg.Wait()

	if got := Population() - before; got != workers {
		t.Fatalf("expected %d new animals, got %d", workers, got)
	}
}

func TestPopAmountIsReadOnly(t *testing.T) {
	first := PopAmount()
	second := PopAmount()
	if first != second {
		t.Fatalf("pop amount changed between reads: %q vs %q", first, second)
	}
}

func TestIsWild(t *testing.T) {
	cases := map[string]bool{
		"dolphin": true,
		"eagle":   true,
		"snake":   true,
		"horse":   false,
		"Dolphin": false,
		"EAGLE":   false,
		" snake":  false,
		"":        false,
	}
	for species, want := range cases {
		if got := IsWild(species); got != want {
			t.Errorf("IsWild(%q) = %v, want %v", species, got, want)
		}
	}
}

func TestAnimalBehaviorsAreIdempotent(t *testing.T) {
	a := NewAnimal("Rex", "Dog")
	before := Population()
	for i := 0; i < 3; i++ {
		if got := a.Eating(); got != "Rex is eating!" {
			t.Fatalf("unexpected eating text %q", got)
		}
		if got := a.Sleeping(); got != "Rex is sleeping!" {
			t.Fatalf("unexpected sleeping text %q", got)
		}
	}
	if Population() != before {
		t.Fatalf("behaviors must not change the population")
	}
	if a.Name() != "Rex" || a.Species() != "Dog" {
		t.Fatalf("identity mutated: %+v", a)
	}
}

func TestAnimalInfo(t *testing.T) {
	a := NewAnimal("Dolph", "Dolphin")
	if got := a.Info(); got != "Animal Name: Dolph | Species: Dolphin" {
		t.Fatalf("unexpected info %q", got)
	}
	empty := NewAnimal("", "")
	if !strings.HasPrefix(empty.Info(), "Animal Name:  |") {
		t.Fatalf("empty identity should still format, got %q", empty.Info())
	}
}
