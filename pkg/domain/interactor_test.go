package domain

import (
	"errors"
	"testing"
)

func TestInteractReturnsDescription(t *testing.T) {
	var env Interactor
	subjects := []Specimen{
		NewMammal("Dolph", "Blue", "Big", "Dolphin"),
		NewReptile("Sabath", "Black and White", "Tiny", "Garden Snake"),
		NewEndangeredFlyingBird("Rick", "Brown and White", "Huge", "Eagle", "Endangered", 4.5, 18),
	}
	for _, s := range subjects {
		got, err := env.Interact(s)
		if err != nil {
			t.Fatalf("interact %s: %v", s.Name(), err)
		}
		if got != s.Describe() {
			t.Fatalf("interact %s = %q, want %q", s.Name(), got, s.Describe())
		}
		if env.Describe(s) != got {
			t.Fatalf("typed describe differs for %s", s.Name())
		}
	}
}

func TestInteractBareAnimalIsUnbound(t *testing.T) {
	var env Interactor
	a := NewAnimal("Ghost", "Unknown")
	for _, subject := range []any{a, &a} {
		_, err := env.Interact(subject)
		var unbound *UnboundFieldError
		if !errors.As(err, &unbound) {
			t.Fatalf("expected UnboundFieldError for %T, got %v", subject, err)
		}
		if unbound.Field != "color" {
			t.Fatalf("unexpected field %q", unbound.Field)
		}
	}
}

func TestInteractWithoutDescribeIsCapabilityMismatch(t *testing.T) {
	var env Interactor
	for _, subject := range []any{"dolphin", 42, nil, NewConservation("Endangered")} {
		_, err := env.Interact(subject)
		var mismatch *CapabilityMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("expected CapabilityMismatchError for %T, got %v", subject, err)
		}
		if mismatch.Capability != "Describe" {
			t.Fatalf("unexpected capability %q", mismatch.Capability)
		}
	}
}

func TestInteractNilVariantIsUnbound(t *testing.T) {
	var env Interactor
	subjects := []any{
		(*Mammal)(nil),
		(*Reptile)(nil),
		(*Bird)(nil),
		(*FlyingBird)(nil),
		&FlyingBird{},
		(*EndangeredFlyingBird)(nil),
		&EndangeredFlyingBird{Conservation: NewConservation("Endangered")},
		EndangeredFlyingBird{},
	}
	for _, subject := range subjects {
		_, err := env.Interact(subject)
		var unbound *UnboundFieldError
		if !errors.As(err, &unbound) {
			t.Fatalf("expected UnboundFieldError for %T, got %v", subject, err)
		}
	}
}

type plainDescriber struct{ text string }

func (p *plainDescriber) Describe() string { return p.text }

func TestInteractNilForeignDescribableIsUnbound(t *testing.T) {
	var env Interactor
	_, err := env.Interact((*plainDescriber)(nil))
	var unbound *UnboundFieldError
	if !errors.As(err, &unbound) {
		t.Fatalf("expected UnboundFieldError, got %v", err)
	}

	got, err := env.Interact(plainDescriber{text: "stone"})
	if err != nil || got != "stone" {
		t.Fatalf("unexpected result %q, %v", got, err)
	}
}

func TestInteractVariantValue(t *testing.T) {
	var env Interactor
	m := *NewMammal("Dolph", "Blue", "Big", "Dolphin")
	got, err := env.Interact(m)
	if err != nil {
		t.Fatalf("interact value: %v", err)
	}
	if got != "Dolph's color is Blue and it is Big." {
		t.Fatalf("unexpected description %q", got)
	}

	b := *NewBird("Rick", "Brown and White", "Huge", "Eagle", 4.5, 18)
	got, err = env.Interact(b)
	if err != nil || got != b.Describe() {
		t.Fatalf("unexpected bird result %q, %v", got, err)
	}
}
