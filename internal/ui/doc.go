// Package ui composes the card panel into a full-screen Bubble Tea program.
//
// Pieces:
//   - AppModel: root model; routes keys, mouse and animation frames to the
//     panel and owns the screen layout
//   - Canvas: places rendered blocks at cell positions with clipping
//   - Shelf: a card.SnapshotHost that shows a parked, inert copy of the card
//   - KeyMap: bindings and the help bar
package ui
