// Package cast decodes YAML animal definitions and builds domain specimens
// from them. The demo cast is embedded in the binary.
package cast

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"sanctuary/pkg/domain"
)

//go:embed cast.yaml
var defaultCast []byte

// Kind names a constructible taxonomy variant.
type Kind string

// Supported kinds.
const (
	KindMammal               Kind = "mammal"
	KindReptile              Kind = "reptile"
	KindBird                 Kind = "bird"
	KindFlyingBird           Kind = "flying_bird"
	KindEndangeredFlyingBird Kind = "endangered_flying_bird"
)

// Entry is one animal definition.
type Entry struct {
	Kind           Kind    `yaml:"kind"`
	Name           string  `yaml:"name"`
	Color          string  `yaml:"color"`
	Size           string  `yaml:"size"`
	Species        string  `yaml:"species"`
	EndangerStatus string  `yaml:"endanger_status,omitempty"`
	WingSpan       float64 `yaml:"wing_span,omitempty"`
	Length         float64 `yaml:"length,omitempty"`
}

// Cast is an ordered list of animal definitions.
type Cast struct {
	Animals []Entry `yaml:"animals"`
}

// ErrUnknownKind is returned when an entry names a kind Build cannot construct.
var ErrUnknownKind = errors.New("unknown animal kind")

// Default returns the embedded demo cast.
func Default() (Cast, error) {
	return Decode(bytes.NewReader(defaultCast))
}

// Decode reads a cast document, rejecting unknown fields and kinds.
func Decode(r io.Reader) (Cast, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Cast
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Cast{}, fmt.Errorf("decode cast: %w", err)
	}
	for i, e := range c.Animals {
		if !e.Kind.valid() {
			return Cast{}, fmt.Errorf("animal %d (%s): %w %q", i, e.Name, ErrUnknownKind, e.Kind)
		}
	}
	return c, nil
}

func (k Kind) valid() bool {
	switch k {
	case KindMammal, KindReptile, KindBird, KindFlyingBird, KindEndangeredFlyingBird:
		return true
	}
	return false
}

// Build constructs the specimen described by e. Each call constructs a new
// animal and so grows the population.
func (e Entry) Build() (domain.Specimen, error) {
	switch e.Kind {
	case KindMammal:
		return domain.NewMammal(e.Name, e.Color, e.Size, e.Species), nil
	case KindReptile:
		return domain.NewReptile(e.Name, e.Color, e.Size, e.Species), nil
	case KindBird:
		return domain.NewBird(e.Name, e.Color, e.Size, e.Species, e.WingSpan, e.Length), nil
	case KindFlyingBird:
		return domain.NewFlyingBird(e.Name, e.Color, e.Size, e.Species, e.WingSpan, e.Length), nil
	case KindEndangeredFlyingBird:
		return domain.NewEndangeredFlyingBird(e.Name, e.Color, e.Size, e.Species, e.EndangerStatus, e.WingSpan, e.Length), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, e.Kind)
	}
}

// BuildAll constructs every entry in order.
func (c Cast) BuildAll() ([]domain.Specimen, error) {
	out := make([]domain.Specimen, 0, len(c.Animals))
	for _, e := range c.Animals {
		s, err := e.Build()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
