package checkbox

import "testing"

func TestCheckedStateTokens(t *testing.T) {
	cases := []struct {
		state CheckedState
		data  string
		aria  string
	}{
		{Unchecked, "unchecked", "false"},
		{Checked, "checked", "true"},
		{Indeterminate, "indeterminate", "mixed"},
	}
	for _, tc := range cases {
		if got := tc.state.String(); got != tc.data {
			t.Errorf("%v.String() = %q, want %q", tc.state, got, tc.data)
		}
		if got := tc.state.AriaChecked(); got != tc.aria {
			t.Errorf("%v.AriaChecked() = %q, want %q", tc.state, got, tc.aria)
		}
	}
}

func TestToggledCycle(t *testing.T) {
	if Unchecked.Toggled() != Checked {
		t.Error("unchecked should activate to checked")
	}
	if Checked.Toggled() != Unchecked {
		t.Error("checked should activate to unchecked")
	}
	if Indeterminate.Toggled() != Checked {
		t.Error("indeterminate should activate to checked")
	}
}

func TestIsChecked(t *testing.T) {
	if Unchecked.IsChecked() || Indeterminate.IsChecked() {
		t.Error("only Checked is checked")
	}
	if !Checked.IsChecked() {
		t.Error("Checked should be checked")
	}
}
