package domain

import (
	"fmt"
	"reflect"
)

// Interactor asks animals to describe themselves. It holds no state.
type Interactor struct{}

// Describe returns d's description.
func (Interactor) Describe(d Describable) string {
	return d.Describe()
}

// appearanceBound is implemented by the taxonomy variants; it reports false
// when the receiver or one of its embedded parents is nil.
type appearanceBound interface {
	hasAppearance() bool
}

// Interact describes subject when it is Describable. A bare Animal, or a nil
// variant, fails with *UnboundFieldError because it has no appearance. Variant
// values passed without a pointer are described through a copy. Any other
// value fails with *CapabilityMismatchError.
func (Interactor) Interact(subject any) (string, error) {
	switch s := subject.(type) {
	case Animal, *Animal:
		return "", &UnboundFieldError{Type: typeName(subject), Field: "color"}
	case Describable:
		if !bound(s) {
			return "", &UnboundFieldError{Type: typeName(subject), Field: "color"}
		}
		return s.Describe(), nil
	}
	if d, ok := describableCopy(subject); ok {
		if !bound(d) {
			return "", &UnboundFieldError{Type: typeName(subject), Field: "color"}
		}
		return d.Describe(), nil
	}
	return "", &CapabilityMismatchError{Type: typeName(subject), Capability: "Describe"}
}

func bound(d Describable) bool {
	if b, ok := d.(appearanceBound); ok {
		return b.hasAppearance()
	}
	rv := reflect.ValueOf(d)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// describableCopy returns a pointer to a copy of a struct value whose pointer
// type is Describable.
func describableCopy(v any) (Describable, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	ptr := reflect.New(rv.Type())
	ptr.Elem().Set(rv)
	d, ok := ptr.Interface().(Describable)
	return d, ok
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", v)
}
