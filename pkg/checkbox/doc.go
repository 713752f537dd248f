// Package checkbox implements a headless tri-state checkbox: a visible
// button-based control, an indicator that renders only while visibly on, and
// a hidden native input kept in lockstep so ancestor form machinery keeps
// working. All styling is left to the consumer; the package only manages
// state, accessibility attributes and the native form bridge.
package checkbox
