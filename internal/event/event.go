// Package event defines the immutable input notifications produced by a
// capture backend and handed to the dispatcher. Each value is constructed
// once at the moment of the raw hardware signal, delivered once, and
// discarded; nothing here mutates after construction.
package event

// Action describes what happened to a button or key.
// The values follow the GLFW convention.
const (
	ActionRelease = 0
	ActionPress   = 1
	ActionRepeat  = 2 // keys only
)

// Modifier bit-field values. Combinable; one bit per modifier.
const (
	ModShift   = 1 << 0
	ModControl = 1 << 1
	ModAlt     = 1 << 2
	ModSuper   = 1 << 3
)

// Mouse button codes.
const (
	ButtonLeft   = 0
	ButtonRight  = 1
	ButtonMiddle = 2
)

// Sentinel is the placeholder value used by the Sentinel* constructors for
// integer and float fields. It is out of range for every real code and must
// never be treated as real input.
const Sentinel = -1

// Event is implemented by the four notification variants and by nothing
// else. Cancelable reports whether a listener may suppress default handling
// of the underlying signal; it is a fixed per-variant property.
type Event interface {
	Cancelable() bool

	// sealed prevents implementations outside this package, keeping the
	// variant set closed.
	sealed()
}
