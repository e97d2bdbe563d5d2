// Package field renders form fields: a label bound to a control with the
// field's error messages underneath. Value-bearing fields own their value
// through a state.Cell, so a field is controlled when the caller supplies
// the value pointer and uncontrolled otherwise.
//
// Fields expose the interactions a browser would perform (Toggle, Select,
// SetValue, SelectDate) so server handlers and terminal prompts can drive
// them, and every field renders a form-submittable representation of its
// current state.
package field
