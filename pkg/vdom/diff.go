package vdom

import (
	"fmt"
	"reflect"
	"strconv"
)

// Diff compares two VNode trees and returns the patches needed to transform
// prev into next. Attribute writes whose value is unchanged are suppressed;
// that suppression is a feature for render traffic and the reason native
// input properties are driven through pkg/host instead.
func Diff(prev, next *VNode) []Patch {
	var patches []Patch
	diff(prev, next, "", &patches)
	return patches
}

// diff recursively compares nodes and appends patches. parentRef is the
// reference of the enclosing element, used for text patches that have no
// reference of their own.
func diff(prev, next *VNode, parentRef string, patches *[]Patch) {
	if prev == nil && next == nil {
		return
	}

	// Node added (handled by parent via InsertNode)
	if prev == nil {
		return
	}

	// Node removed
	if next == nil {
		*patches = append(*patches, Patch{
			Op:  PatchRemoveNode,
			Ref: prev.Ref,
		})
		return
	}

	// Different kinds: replace
	if prev.Kind != next.Kind {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			Ref:  prev.Ref,
			Node: next,
		})
		return
	}

	switch prev.Kind {
	case KindText:
		diffText(prev, next, parentRef, patches)
	case KindElement:
		diffElement(prev, next, patches)
	case KindFragment:
		next.Ref = prev.Ref
		diffChildren(prev, next, parentRef, patches)
	case KindComponent:
		next.Ref = prev.Ref
		if prev.Comp != nil && next.Comp != nil {
			diff(prev.Comp.Render(), next.Comp.Render(), parentRef, patches)
		}
	}
}

func diffText(prev, next *VNode, parentRef string, patches *[]Patch) {
	next.Ref = prev.Ref

	if prev.Text != next.Text {
		// Text nodes rarely carry their own reference; fall back to the
		// parent element and let the client update its textContent.
		target := prev.Ref
		if target == "" {
			target = parentRef
		}
		if target != "" {
			*patches = append(*patches, Patch{
				Op:    PatchSetText,
				Ref:   target,
				Value: next.Text,
			})
		}
	}
}

func diffElement(prev, next *VNode, patches *[]Patch) {
	if prev.Tag != next.Tag {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			Ref:  prev.Ref,
			Node: next,
		})
		return
	}

	next.Ref = prev.Ref

	diffProps(prev, next, patches)
	diffChildren(prev, next, prev.Ref, patches)
}

// diffProps compares and patches attributes. Event handlers are skipped;
// those are rebound by the session, not shipped as attributes.
func diffProps(prev, next *VNode, patches *[]Patch) {
	for key, prevVal := range prev.Props {
		if isEventHandler(key) || key == "key" {
			continue
		}

		nextVal, exists := next.Props[key]
		if !exists {
			*patches = append(*patches, Patch{
				Op:  PatchRemoveAttr,
				Ref: prev.Ref,
				Key: key,
			})
		} else if !propsEqual(prevVal, nextVal) {
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				Ref:   prev.Ref,
				Key:   key,
				Value: PropToString(nextVal),
			})
		}
	}

	for key, nextVal := range next.Props {
		if isEventHandler(key) || key == "key" {
			continue
		}

		if _, exists := prev.Props[key]; !exists {
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				Ref:   prev.Ref,
				Key:   key,
				Value: PropToString(nextVal),
			})
		}
	}
}

func diffChildren(prev, next *VNode, parentRef string, patches *[]Patch) {
	if hasKeys(prev.Children) || hasKeys(next.Children) {
		diffKeyedChildren(prev, prev.Children, next.Children, parentRef, patches)
	} else {
		diffUnkeyedChildren(prev, prev.Children, next.Children, parentRef, patches)
	}
}

func diffUnkeyedChildren(parent *VNode, prev, next []*VNode, parentRef string, patches *[]Patch) {
	maxLen := len(prev)
	if len(next) > maxLen {
		maxLen = len(next)
	}

	for i := 0; i < maxLen; i++ {
		var prevChild, nextChild *VNode

		if i < len(prev) {
			prevChild = prev[i]
		}
		if i < len(next) {
			nextChild = next[i]
		}

		switch {
		case prevChild == nil && nextChild != nil:
			*patches = append(*patches, Patch{
				Op:       PatchInsertNode,
				ParentID: parent.Ref,
				Index:    i,
				Node:     nextChild,
			})
		case prevChild != nil && nextChild == nil:
			*patches = append(*patches, Patch{
				Op:  PatchRemoveNode,
				Ref: prevChild.Ref,
			})
		default:
			diff(prevChild, nextChild, parentRef, patches)
		}
	}
}

func diffKeyedChildren(parent *VNode, prev, next []*VNode, parentRef string, patches *[]Patch) {
	prevKeyMap := make(map[string]int)
	for i, child := range prev {
		if key := getKey(child); key != "" {
			prevKeyMap[key] = i
		}
	}

	matched := make(map[int]bool)

	for nextIdx, nextChild := range next {
		key := getKey(nextChild)

		if key == "" {
			// Unkeyed node in a keyed list: treat as insert
			*patches = append(*patches, Patch{
				Op:       PatchInsertNode,
				ParentID: parent.Ref,
				Index:    nextIdx,
				Node:     nextChild,
			})
			continue
		}

		if prevIdx, exists := prevKeyMap[key]; exists {
			matched[prevIdx] = true
			prevChild := prev[prevIdx]

			if prevIdx != nextIdx {
				*patches = append(*patches, Patch{
					Op:       PatchMoveNode,
					Ref:      prevChild.Ref,
					ParentID: parent.Ref,
					Index:    nextIdx,
				})
			}

			diff(prevChild, nextChild, parentRef, patches)
		} else {
			*patches = append(*patches, Patch{
				Op:       PatchInsertNode,
				ParentID: parent.Ref,
				Index:    nextIdx,
				Node:     nextChild,
			})
		}
	}

	for i, prevChild := range prev {
		if !matched[i] {
			*patches = append(*patches, Patch{
				Op:  PatchRemoveNode,
				Ref: prevChild.Ref,
			})
		}
	}
}

func getKey(node *VNode) string {
	if node == nil {
		return ""
	}
	if node.Key != "" {
		return node.Key
	}
	if node.Props == nil {
		return ""
	}
	if key, ok := node.Props["key"].(string); ok {
		return key
	}
	return ""
}

func hasKeys(children []*VNode) bool {
	for _, child := range children {
		if getKey(child) != "" {
			return true
		}
	}
	return false
}

func propsEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case nil:
		return b == nil
	}
	return reflect.DeepEqual(a, b)
}

// PropToString converts a prop value to its attribute string form.
func PropToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
