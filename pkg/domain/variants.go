package domain

import (
	"fmt"
	"strconv"
)

// appearance holds the fields every concrete variant describes itself with.
type appearance struct {
	color string
	size  string
}

// Color returns the color given at construction.
func (ap appearance) Color() string { return ap.color }

// Size returns the size given at construction.
func (ap appearance) Size() string { return ap.size }

func describeAppearance(name string, ap appearance) string {
	return fmt.Sprintf("%s's color is %s and it is %s.", name, ap.color, ap.size)
}

// Mammal is an Animal that swims.
type Mammal struct {
	Animal
	appearance
}

// NewMammal constructs a Mammal.
func NewMammal(name, color, size, species string) *Mammal {
	return &Mammal{
		Animal:     NewAnimal(name, species),
		appearance: appearance{color: color, size: size},
	}
}

// Category implements Specimen.
func (m *Mammal) Category() Category { return CategoryMammal }

// Describe implements Describable.
func (m *Mammal) Describe() string { return describeAppearance(m.name, m.appearance) }

func (m *Mammal) hasAppearance() bool { return m != nil }

// Swimming describes the mammal swimming.
func (m *Mammal) Swimming() string { return m.name + " is swimming!" }

// Reptile is an Animal that slithers.
type Reptile struct {
	Animal
	appearance
}

// NewReptile constructs a Reptile.
func NewReptile(name, color, size, species string) *Reptile {
	return &Reptile{
		Animal:     NewAnimal(name, species),
		appearance: appearance{color: color, size: size},
	}
}

// Category implements Specimen.
func (r *Reptile) Category() Category { return CategoryReptile }

// Describe implements Describable.
func (r *Reptile) Describe() string { return describeAppearance(r.name, r.appearance) }

func (r *Reptile) hasAppearance() bool { return r != nil }

// Slithering describes the reptile slithering.
func (r *Reptile) Slithering() string { return r.name + " is slithering!" }

// Bird is an Animal with a wingspan (meters) and a body length (feet).
type Bird struct {
	Animal
	appearance
	wingSpan float64
	length   float64
}

// NewBird constructs a Bird.
func NewBird(name, color, size, species string, wingSpan, length float64) *Bird {
	return &Bird{
		Animal:     NewAnimal(name, species),
		appearance: appearance{color: color, size: size},
		wingSpan:   wingSpan,
		length:     length,
	}
}

// WingSpan returns the wingspan in meters.
func (b *Bird) WingSpan() float64 { return b.wingSpan }

// Length returns the body length in feet.
func (b *Bird) Length() float64 { return b.length }

// Category implements Specimen.
func (b *Bird) Category() Category { return CategoryBird }

// Describe implements Describable, adding wingspan and length.
func (b *Bird) Describe() string {
	return fmt.Sprintf("%s's color is %s, size: %s, wingspan: %s meters, length: %s feet.",
		b.name, b.color, b.size, formatMeasure(b.wingSpan), formatMeasure(b.length))
}

func (b *Bird) hasAppearance() bool { return b != nil }

// Running describes the bird running.
func (b *Bird) Running() string { return b.name + " is running!" }

// formatMeasure prints the shortest representation, so 18 renders as "18".
func formatMeasure(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FlyingBird is a Bird capable of aerial maneuvers.
type FlyingBird struct {
	*Bird
}

// NewFlyingBird constructs a FlyingBird.
func NewFlyingBird(name, color, size, species string, wingSpan, length float64) *FlyingBird {
	return &FlyingBird{Bird: NewBird(name, color, size, species, wingSpan, length)}
}

func (f *FlyingBird) hasAppearance() bool { return f != nil && f.Bird.hasAppearance() }

// IsSoaring describes the bird soaring.
func (f *FlyingBird) IsSoaring() string { return f.name + " is soaring!" }

// IsDiving describes the bird diving.
func (f *FlyingBird) IsDiving() string { return f.name + " is diving!" }

// Flying describes the bird flying.
func (f *FlyingBird) Flying() string { return f.name + " is flying!" }

var (
	_ Specimen = (*Mammal)(nil)
	_ Specimen = (*Reptile)(nil)
	_ Specimen = (*Bird)(nil)
	_ Specimen = (*FlyingBird)(nil)
)
