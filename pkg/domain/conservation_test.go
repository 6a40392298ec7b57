package domain

import "testing"

func TestEndangeredFlyingBirdStatus(t *testing.T) {
	before := Population()
	e := NewEndangeredFlyingBird("Rick", "Brown and White", "Huge", "Eagle", "Endangered", 4.5, 18)
	if got := Population() - before; got != 1 {
		t.Fatalf("construction should count once, counted %d", got)
	}

	want := "Rick is classified as Endangered."
	if got := e.Status(); got != want {
		t.Fatalf("unexpected status %q", got)
	}
	e.Flying()
	e.IsDiving()
	e.Running()
	if got := e.Status(); got != want {
		t.Fatalf("status changed after maneuvers: %q", got)
	}
	if got := e.Describe(); got != "Rick's color is Brown and White, size: Huge, wingspan: 4.5 meters, length: 18 feet." {
		t.Fatalf("unexpected description %q", got)
	}
	if e.Eating() != "Rick is eating!" || e.Sleeping() != "Rick is sleeping!" {
		t.Fatalf("unexpected eat/sleep text")
	}
}

type namedTag struct{ name, status string }

func (n namedTag) Name() string           { return n.name }
func (n namedTag) EndangerStatus() string { return n.status }

func TestStatusReportBorrowsName(t *testing.T) {
	got := StatusReport(namedTag{name: "Blue", status: "Vulnerable"})
	if got != "Blue is classified as Vulnerable." {
		t.Fatalf("unexpected report %q", got)
	}
	c := NewConservation("")
	if c.EndangerStatus() != "" {
		t.Fatalf("status must be stored verbatim")
	}
}
