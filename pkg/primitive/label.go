package primitive

import (
	"github.com/aster-ui/aster/pkg/reactive"
	"github.com/aster-ui/aster/pkg/vdom"
)

// LabelValue associates a control with its label element.
type LabelValue struct {
	// ID is the label element's id, used for aria-labelledby.
	ID string
}

var labelContext = reactive.CreateContextWithDefault("Label", LabelValue{})

// LabelProvider publishes a label association to the subtree.
func LabelProvider(scope *reactive.Scope, value LabelValue, children ...any) *vdom.VNode {
	return labelContext.Provider(scope, value, children...)
}

// UseLabelContext returns the nearest label association. Outside any provider
// the zero value is returned; label association is always optional.
func UseLabelContext(scope *reactive.Scope, consumerName string) LabelValue {
	return labelContext.Use(scope, consumerName)
}
