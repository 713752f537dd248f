package main

import (
	"github.com/aster-ui/aster/pkg/checkbox"
	"github.com/aster-ui/aster/pkg/reactive"
	"github.com/aster-ui/aster/pkg/vdom"
)

// settingsPage is the demo root: a terms checkbox that participates in the
// form, plus a tri-state "enable all" group where the parent goes
// indeterminate when only some children are on.
type settingsPage struct {
	scope *reactive.Scope

	terms     *checkbox.Root
	all       *checkbox.Root
	wifi      *checkbox.Root
	bluetooth *checkbox.Root

	// syncing guards against feedback while one control updates the others.
	syncing bool
}

func newSettingsPage() vdom.Component {
	p := &settingsPage{scope: reactive.NewScope(nil)}

	p.terms = checkbox.NewRoot(p.scope, checkbox.RootOpts{
		Name:     "terms",
		Required: true,
	}, checkbox.NewIndicator(p.scope, checkbox.IndicatorOpts{}, "✓"))

	p.all = checkbox.NewRoot(p.scope, checkbox.RootOpts{
		OnCheckedChange: p.onAllChange,
	}, checkbox.NewIndicator(p.scope, checkbox.IndicatorOpts{}, "✓"))

	p.wifi = checkbox.NewRoot(p.scope, checkbox.RootOpts{
		DefaultChecked:  checkbox.Checked,
		OnCheckedChange: p.onItemChange,
	}, checkbox.NewIndicator(p.scope, checkbox.IndicatorOpts{}, "✓"))

	p.bluetooth = checkbox.NewRoot(p.scope, checkbox.RootOpts{
		OnCheckedChange: p.onItemChange,
	}, checkbox.NewIndicator(p.scope, checkbox.IndicatorOpts{}, "✓"))

	p.all.SetState(p.groupState())
	return p
}

func (p *settingsPage) onAllChange(s checkbox.CheckedState) {
	// Indeterminate only arrives from the programmatic recompute below, never
	// from a user toggle.
	if p.syncing || s == checkbox.Indeterminate {
		return
	}
	p.syncing = true
	state := checkbox.Unchecked
	if s == checkbox.Checked {
		state = checkbox.Checked
	}
	p.wifi.SetState(state)
	p.bluetooth.SetState(state)
	p.syncing = false
}

func (p *settingsPage) onItemChange(checkbox.CheckedState) {
	if p.syncing {
		return
	}
	p.syncing = true
	p.all.SetState(p.groupState())
	p.syncing = false
}

func (p *settingsPage) groupState() checkbox.CheckedState {
	wifi := p.wifi.State() == checkbox.Checked
	bluetooth := p.bluetooth.State() == checkbox.Checked
	switch {
	case wifi && bluetooth:
		return checkbox.Checked
	case wifi || bluetooth:
		return checkbox.Indeterminate
	default:
		return checkbox.Unchecked
	}
}

func (p *settingsPage) Render() *vdom.VNode {
	return vdom.Div(
		vdom.H1("Settings"),
		vdom.Form(
			vdom.Fieldset(
				vdom.Legend("Radios"),
				vdom.Label(p.all, " Enable all"),
				vdom.Label(p.wifi, " Wi-Fi"),
				vdom.Label(p.bluetooth, " Bluetooth"),
			),
			vdom.Label(p.terms, " Accept the terms"),
			vdom.Button(vdom.Type("submit"), "Save"),
		),
	)
}
