package checkbox

import (
	"github.com/aster-ui/aster/pkg/primitive"
	"github.com/aster-ui/aster/pkg/reactive"
	"github.com/aster-ui/aster/pkg/vdom"
)

// IndicatorOpts configures an indicator.
type IndicatorOpts struct {
	// ForceMount keeps the indicator in the tree while not visibly on, for
	// consumer-driven exit animations.
	ForceMount bool

	AsChild bool
}

// Indicator renders its children only while the checkbox is Checked or
// Indeterminate. It must live inside a Root's subtree.
type Indicator struct {
	scope    *reactive.Scope
	opts     IndicatorOpts
	children []any
}

// NewIndicator creates an indicator under scope.
func NewIndicator(scope *reactive.Scope, opts IndicatorOpts, children ...any) *Indicator {
	return &Indicator{scope: scope, opts: opts, children: children}
}

// Render implements vdom.Component. Panics with a missing-provider error
// when no Root encloses the scope.
func (i *Indicator) Render() *vdom.VNode {
	v := checkboxContext.Use(i.scope, "CheckboxIndicator")

	args := []any{
		vdom.Data("state", v.State.String()),
		vdom.DataFlag("disabled", v.Disabled),
	}
	args = append(args, i.children...)

	node := primitive.Render("span", i.opts.AsChild, args...)
	visible := v.State == Checked || v.State == Indeterminate
	return primitive.Presence(visible, i.opts.ForceMount, node)
}
