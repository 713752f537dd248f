package checkbox

// CheckedState is the tri-state value of a checkbox.
type CheckedState uint8

const (
	Unchecked CheckedState = iota
	Checked
	Indeterminate
)

// String returns the data-state attribute token.
func (s CheckedState) String() string {
	switch s {
	case Checked:
		return "checked"
	case Indeterminate:
		return "indeterminate"
	default:
		return "unchecked"
	}
}

// AriaChecked returns the aria-checked attribute token. Indeterminate maps
// to "mixed".
func (s CheckedState) AriaChecked() string {
	switch s {
	case Checked:
		return "true"
	case Indeterminate:
		return "mixed"
	default:
		return "false"
	}
}

// IsChecked reports whether the state is strictly Checked. Indeterminate is
// not checked for form-submission purposes.
func (s CheckedState) IsChecked() bool {
	return s == Checked
}

// Toggled returns the state after one user activation. Indeterminate and
// Unchecked both activate to Checked; Checked activates to Unchecked.
// Indeterminate is never entered by activation, only by assignment.
func (s CheckedState) Toggled() CheckedState {
	if s == Checked {
		return Unchecked
	}
	return Checked
}
