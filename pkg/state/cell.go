package state

import (
	"errors"
	"fmt"
)

// Mode selects who owns a piece of component state.
type Mode int

const (
	// Uncontrolled components hold their own value, seeded from a default
	// and mutated by interaction.
	Uncontrolled Mode = iota
	// Controlled components read their value from the caller and forward
	// every change to the caller's callback without mutating locally.
	Controlled
)

func (m Mode) String() string {
	switch m {
	case Controlled:
		return "controlled"
	case Uncontrolled:
		return "uncontrolled"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ErrModeSwitch is returned when a caller tries to push an external value
// into a cell that owns its state locally. Ownership is fixed for the
// lifetime of a cell.
var ErrModeSwitch = errors.New("state: ownership mode cannot change after construction")

// Cell holds a single value under an explicit ownership mode.
type Cell[T comparable] struct {
	mode     Mode
	external T
	internal T
	onChange func(T)
}

// NewControlled returns a cell whose value is owned by the caller.
func NewControlled[T comparable](value T, onChange func(T)) *Cell[T] {
	return &Cell[T]{mode: Controlled, external: value, onChange: onChange}
}

// NewUncontrolled returns a cell that owns its value, starting at def.
func NewUncontrolled[T comparable](def T, onChange func(T)) *Cell[T] {
	return &Cell[T]{mode: Uncontrolled, internal: def, onChange: onChange}
}

// Resolve picks the ownership mode from prop presence: a non-nil value
// means the caller passed it explicitly and the cell is controlled.
func Resolve[T comparable](value *T, def T, onChange func(T)) *Cell[T] {
	if value != nil {
		return NewControlled(*value, onChange)
	}
	return NewUncontrolled(def, onChange)
}

// Mode reports the cell's ownership mode.
func (c *Cell[T]) Mode() Mode {
	if c == nil {
		return Uncontrolled
	}
	return c.mode
}

// Controlled reports whether the caller owns the value.
func (c *Cell[T]) Controlled() bool {
	return c.Mode() == Controlled
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	var zero T
	if c == nil {
		return zero
	}
	if c.mode == Controlled {
		return c.external
	}
	return c.internal
}

// Set applies a user interaction. Uncontrolled cells store the value;
// controlled cells leave their value untouched. The callback runs in both
// modes. Set reports whether the visible value changed.
func (c *Cell[T]) Set(value T) bool {
	if c == nil {
		return false
	}
	changed := false
	if c.mode == Uncontrolled {
		changed = c.internal != value
		c.internal = value
	}
	if c.onChange != nil {
		c.onChange(value)
	}
	return changed
}

// Sync pushes a new caller-owned value, the equivalent of a prop update.
func (c *Cell[T]) Sync(value T) error {
	if c == nil {
		return errors.New("state: cell is nil")
	}
	if c.mode != Controlled {
		return ErrModeSwitch
	}
	c.external = value
	return nil
}

// OnChange replaces the change callback.
func (c *Cell[T]) OnChange(fn func(T)) {
	if c == nil {
		return
	}
	c.onChange = fn
}
