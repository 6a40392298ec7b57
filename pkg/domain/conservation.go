package domain

import "fmt"

// Conservation is the endangerment classification attached to an animal by
// composition. The status is stored verbatim.
type Conservation struct {
	endangerStatus string
}

// NewConservation constructs a Conservation with the given status.
func NewConservation(status string) Conservation {
	return Conservation{endangerStatus: status}
}

// EndangerStatus returns the classification text.
func (c Conservation) EndangerStatus() string { return c.endangerStatus }

// Classified is a named entity carrying a conservation classification.
type Classified interface {
	Named
	EndangerStatus() string
}

// StatusReport formats the conservation status of c, borrowing its name.
func StatusReport(c Classified) string {
	return fmt.Sprintf("%s is classified as %s.", c.Name(), c.EndangerStatus())
}

// EndangeredFlyingBird is a FlyingBird carrying a conservation classification.
type EndangeredFlyingBird struct {
	*FlyingBird
	Conservation
}

// NewEndangeredFlyingBird builds the flying bird first, then attaches the
// conservation status.
func NewEndangeredFlyingBird(name, color, size, species, status string, wingSpan, length float64) *EndangeredFlyingBird {
	fb := NewFlyingBird(name, color, size, species, wingSpan, length)
	return &EndangeredFlyingBird{
		FlyingBird:   fb,
		Conservation: NewConservation(status),
	}
}

// Status reports the bird's conservation status.
func (e *EndangeredFlyingBird) Status() string {
	return StatusReport(e)
}

func (e *EndangeredFlyingBird) hasAppearance() bool {
	return e != nil && e.FlyingBird.hasAppearance()
}

var (
	_ Specimen   = (*EndangeredFlyingBird)(nil)
	_ Classified = (*EndangeredFlyingBird)(nil)
)
