// Package domain defines the sanctuary's animal taxonomy: identity, behaviors,
// the composable conservation trait and the shared population counter.
package domain

import (
	"fmt"
	"sync/atomic"
)

// Category identifies which branch of the taxonomy a specimen belongs to.
type Category string

// Supported taxonomy categories.
const (
	CategoryMammal  Category = "mammal"
	CategoryBird    Category = "bird"
	CategoryReptile Category = "reptile"
)

// population counts every Animal constructed in this process. It starts at
// zero and only register mutates it.
var population atomic.Int64

func register() {
	population.Add(1)
}

// Population returns the number of animals constructed so far.
func Population() int64 {
	return population.Load()
}

// PopAmount reports the population as display text.
func PopAmount() string {
	return fmt.Sprintf("Total animal population: %d", Population())
}

var wildSpecies = map[string]struct{}{
	"dolphin": {},
	"eagle":   {},
	"snake":   {},
}

// IsWild reports whether species is one of the wild species. The match is
// exact and case-sensitive; callers lowercase the species themselves.
func IsWild(species string) bool {
	_, ok := wildSpecies[species]
	return ok
}

// Named is implemented by anything that exposes an animal name.
type Named interface {
	Name() string
}

// Describable is implemented by variants that know their appearance.
type Describable interface {
	Describe() string
}

// Specimen is the full capability set of a concrete taxonomy variant.
type Specimen interface {
	Named
	Describable
	Species() string
	Category() Category
}

// Animal carries the identity shared by every variant. It deliberately has no
// Describe method: appearance belongs to the variants.
type Animal struct {
	name    string
	species string
}

// NewAnimal constructs an Animal and counts it in the population. Any string
// is accepted, including empty ones.
func NewAnimal(name, species string) Animal {
	register()
	return Animal{name: name, species: species}
}

// Name returns the animal's name.
func (a Animal) Name() string { return a.name }

// Species returns the species label given at construction.
func (a Animal) Species() string { return a.species }

// Info returns a one-line identity summary.
func (a Animal) Info() string {
	return fmt.Sprintf("Animal Name: %s | Species: %s", a.name, a.species)
}

// Eating describes the animal eating.
func (a Animal) Eating() string {
	return a.name + " is eating!"
}

// Sleeping describes the animal sleeping.
func (a Animal) Sleeping() string {
	return a.name + " is sleeping!"
}
