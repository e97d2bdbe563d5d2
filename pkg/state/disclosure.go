package state

// Disclosure is the open/closed machine shared by dialogs, popovers and
// tooltips. Transitions: Trigger (closed->open), Dismiss (open->closed) and
// Sync (external prop change, controlled only).
type Disclosure struct {
	cell *Cell[bool]
}

// DisclosureOptions configures a Disclosure. Open set to a non-nil pointer
// makes the disclosure controlled by the caller.
type DisclosureOptions struct {
	Open         *bool
	DefaultOpen  bool
	OnOpenChange func(bool)
}

// NewDisclosure builds a disclosure from the supplied options.
func NewDisclosure(opts DisclosureOptions) *Disclosure {
	return &Disclosure{cell: Resolve(opts.Open, opts.DefaultOpen, opts.OnOpenChange)}
}

// IsOpen reports the current state.
func (d *Disclosure) IsOpen() bool {
	if d == nil {
		return false
	}
	return d.cell.Get()
}

// Mode reports whether the open state is caller-owned.
func (d *Disclosure) Mode() Mode {
	if d == nil {
		return Uncontrolled
	}
	return d.cell.Mode()
}

// Trigger handles trigger activation. It is a no-op when already open.
func (d *Disclosure) Trigger() bool {
	if d == nil || d.IsOpen() {
		return false
	}
	return d.cell.Set(true)
}

// Dismiss handles cancel, close and confirm completions. It is a no-op
// when already closed.
func (d *Disclosure) Dismiss() bool {
	if d == nil || !d.IsOpen() {
		return false
	}
	return d.cell.Set(false)
}

// SetOpen requests an explicit state, mirroring an onOpenChange event.
func (d *Disclosure) SetOpen(open bool) bool {
	if open {
		return d.Trigger()
	}
	return d.Dismiss()
}

// Sync applies a caller-side change to the open prop.
func (d *Disclosure) Sync(open bool) error {
	if d == nil {
		return ErrModeSwitch
	}
	return d.cell.Sync(open)
}

// StateName renders the state as used in data-state attributes.
func (d *Disclosure) StateName() string {
	if d.IsOpen() {
		return "open"
	}
	return "closed"
}
