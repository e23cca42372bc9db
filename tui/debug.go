package tui

import "github.com/alecthomas/repr"

// debugDump renders the UI state for the log when the debug view is
// toggled on.
func (ui *UI) debugDump() string {
	return repr.String(struct {
		Input, Include, Exclude string
		Active                  int
		Cursor                  int
		Skip, SkipTarget        int
		UndoLen, UndoPos        int
	}{
		Input:      string(ui.fields[fieldInput]),
		Include:    string(ui.fields[fieldInclude]),
		Exclude:    string(ui.fields[fieldExclude]),
		Active:     int(ui.active),
		Cursor:     ui.cursor,
		Skip:       ui.skip,
		SkipTarget: ui.skipTarget,
		UndoLen:    ui.hist.Len(),
		UndoPos:    ui.hist.Position(),
	})
}
