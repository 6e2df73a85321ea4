package ui

// SnapshotExportedMsg reports the result of writing a snapshot image.
type SnapshotExportedMsg struct {
	Path string
	Err  error
}
