// Package card implements a draggable panel that snaps between three
// vertical layouts and hosts a scrollable child.
//
// Core pieces:
//   - Layout/state machine: Metrics.RectFor maps a State to its rectangle,
//     Panel.Navigate moves between states (immediately or with a spring).
//   - Drag bridge: Panel implements DragDelegate. The child's scroll surface
//     calls it on drag begin/move/end, so the panel needs no gesture
//     recognizer of its own. Decide picks the state at release.
//   - Snapshot cache: Panel.UpdateSnapshot captures an inert copy of the
//     content region for a composer that does not want the live panel.
//
// All methods are expected to run on the Bubble Tea update loop; nothing in
// this package is safe for concurrent use.
package card
