package primitive

import "github.com/aster-ui/aster/pkg/vdom"

// Presence gates a subtree on a visibility condition. The node renders when
// present, or when forceMount keeps it in the tree so the consumer can drive
// its own exit animation. Returns nil otherwise, which vdom drops.
func Presence(present, forceMount bool, node *vdom.VNode) *vdom.VNode {
	if present || forceMount {
		return node
	}
	return nil
}
