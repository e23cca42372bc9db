package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/doublescale/anagrind/dict"
	"github.com/doublescale/anagrind/history"
	"github.com/doublescale/anagrind/search"
)

type fieldID int

const (
	fieldInput fieldID = iota
	fieldInclude
	fieldExclude
	fieldCount
)

var fieldLabels = [fieldCount]string{"Input:", "Include:", "Exclude:"}

const (
	// advanceBudget bounds the search steps spent per frame.
	advanceBudget = 100000
	// resultBuffer is how far the result store is kept ahead of the
	// visible window.
	resultBuffer = 100
)

// UI is the interactive shell state. It owns the edit fields, drives one
// search context at a time, and is mutated only from the frame loop
// goroutine.
type UI struct {
	idx *dict.Index
	log logrus.FieldLogger

	fields [fieldCount][]byte
	active fieldID
	cursor int

	skip       int
	skipTarget int

	showHelp      bool
	helpExpansion int
	showDebug     bool

	hist *history.History
	ctx  *search.Context

	mouse         mouseState
	width, height int

	inputsChanged bool
	dirty         bool
	quit          bool
	frameCount    int
}

type mouseState struct {
	x, y         int
	buttons      tcell.ButtonMask
	leftClicked  bool
	leftDown     bool
	rightClicked bool
	wheel        int
}

func New(idx *dict.Index, log logrus.FieldLogger) *UI {
	ui := &UI{
		idx:  idx,
		log:  log,
		hist: history.New(),
		// Kick off the initial (empty) query so the result header renders.
		inputsChanged: true,
		dirty:         true,
	}
	ui.record()
	return ui
}

func (ui *UI) activeField() []byte {
	return ui.fields[ui.active]
}

func (ui *UI) snapshot() history.Snapshot {
	var s history.Snapshot
	for i := range ui.fields {
		s.Fields[i] = string(ui.fields[i])
	}
	s.Active = int(ui.active)
	s.Cursor = ui.cursor
	s.Scroll = ui.skip
	return s
}

func (ui *UI) record() bool {
	return ui.hist.Record(ui.snapshot())
}

func (ui *UI) apply(s history.Snapshot) {
	for i := range ui.fields {
		ui.fields[i] = []byte(s.Fields[i])
	}
	ui.active = fieldID(s.Active)
	ui.cursor = s.Cursor
	ui.skip = s.Scroll
}

func (ui *UI) undo() bool {
	s, ok := ui.hist.Undo(ui.snapshot())
	if ok {
		ui.apply(s)
	}
	return ok
}

func (ui *UI) redo() bool {
	s, ok := ui.hist.Redo()
	if ok {
		ui.apply(s)
	}
	return ok
}

func (ui *UI) scrollResults(amount int) {
	target := ui.skipTarget + amount
	if target < 0 {
		target = 0
	}
	ui.skipTarget = target
}

func (ui *UI) visibleResults() int {
	visible := ui.height - resultRow0
	if visible < 0 {
		visible = 0
	}
	return visible
}

// deleteFromField removes [start, end) of field f and keeps the cursor on
// the same character when the active field shrinks.
func (ui *UI) deleteFromField(f fieldID, start, end int) {
	if start >= end {
		return
	}
	var changed bool
	ui.fields[f], changed = deleteRange(ui.fields[f], start, end-start)
	if !changed {
		return
	}
	ui.dirty = true
	if ui.active == f {
		if ui.cursor > end {
			ui.cursor -= end - start
		} else if ui.cursor > start {
			ui.cursor = start
		}
	}
}

// appendWordToField space-joins word onto field f, as the mouse actions on
// result rows do.
func (ui *UI) appendWordToField(f fieldID, word []byte) {
	field := ui.fields[f]
	if len(field)+len(word)+1 > maxFieldSize {
		return
	}
	atEnd := ui.active == f && ui.cursor == len(field)
	if len(field) > 0 && field[len(field)-1] != ' ' {
		field = append(field, ' ')
	}
	field = append(field, word...)
	ui.fields[f] = field
	if atEnd {
		ui.cursor = len(field)
	}
	ui.inputsChanged = true
}

func (ui *UI) handleKey(ev *tcell.EventKey) {
	key := ev.Key()
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0
	alt := ev.Modifiers()&tcell.ModAlt != 0
	active := ui.activeField()

	switch {
	case key == tcell.KeyEscape || key == tcell.KeyCtrlC || key == tcell.KeyCtrlQ:
		ui.quit = true

	case key == tcell.KeyLeft && ctrl:
		ui.record()
		ui.cursor = prevWordBoundary(active, ui.cursor)

	case key == tcell.KeyRight && ctrl:
		ui.record()
		ui.cursor = nextWordBoundary(active, ui.cursor)

	case key == tcell.KeyLeft:
		if ui.cursor > 0 {
			ui.record()
			ui.cursor--
		}

	case key == tcell.KeyRight:
		if ui.cursor < len(active) {
			ui.record()
			ui.cursor++
		}

	case key == tcell.KeyDown:
		ui.record()
		ui.scrollResults(1)

	case key == tcell.KeyUp:
		ui.record()
		ui.scrollResults(-1)

	case key == tcell.KeyPgDn:
		ui.record()
		ui.scrollResults(max(1, ui.visibleResults()-2))

	case key == tcell.KeyPgUp:
		ui.record()
		ui.scrollResults(-max(1, ui.visibleResults()-2))

	case key == tcell.KeyHome && ctrl:
		ui.record()
		ui.skipTarget = 0

	case key == tcell.KeyEnd && ctrl:
		ui.record()
		visible := ui.visibleResults()
		ui.skipTarget = max(0, ui.results().Count()-visible)
		if ui.results().NotDone() {
			// Overshoot while searching; more rows are on their way.
			ui.skipTarget += visible / 2
		}

	case key == tcell.KeyHome || key == tcell.KeyCtrlA:
		ui.record()
		ui.cursor = 0

	case key == tcell.KeyEnd || key == tcell.KeyCtrlE:
		ui.record()
		ui.cursor = len(active)

	case key == tcell.KeyTab || key == tcell.KeyEnter || key == tcell.KeyBacktab:
		ui.record()
		if key == tcell.KeyBacktab {
			ui.active = (ui.active + fieldCount - 1) % fieldCount
		} else {
			ui.active = (ui.active + 1) % fieldCount
		}
		ui.cursor = len(ui.activeField())
		ui.dirty = true

	case key == tcell.KeyCtrlK:
		ui.record()
		var changed bool
		ui.fields[ui.active], changed = deleteRange(active, ui.cursor, len(active)-ui.cursor)
		ui.dirty = ui.dirty || changed

	case key == tcell.KeyCtrlU:
		ui.record()
		var changed bool
		ui.fields[ui.active], changed = deleteRange(active, 0, ui.cursor)
		ui.cursor = 0
		ui.dirty = ui.dirty || changed

	case key == tcell.KeyCtrlW || key == tcell.KeyBackspace:
		// Terminals deliver Ctrl+Backspace as ^H.
		ui.record()
		orig := ui.cursor
		ui.cursor = prevWordBoundary(active, ui.cursor)
		var changed bool
		ui.fields[ui.active], changed = deleteRange(active, ui.cursor, orig-ui.cursor)
		ui.dirty = ui.dirty || changed

	case (key == tcell.KeyRune && alt && ev.Rune() == 'd') ||
		(key == tcell.KeyDelete && ctrl):
		ui.record()
		count := nextWordBoundary(active, ui.cursor) - ui.cursor
		var changed bool
		ui.fields[ui.active], changed = deleteRange(active, ui.cursor, count)
		ui.dirty = ui.dirty || changed

	case key == tcell.KeyBackspace2:
		if ui.cursor > 0 {
			ui.cursor--
			var changed bool
			ui.fields[ui.active], changed = deleteRange(active, ui.cursor, 1)
			ui.dirty = ui.dirty || changed
		}

	case key == tcell.KeyDelete:
		if ui.cursor < len(active) {
			var changed bool
			ui.fields[ui.active], changed = deleteRange(active, ui.cursor, 1)
			ui.dirty = ui.dirty || changed
		}

	case key == tcell.KeyCtrlZ || key == tcell.KeyCtrlO:
		ui.dirty = ui.undo() || ui.dirty

	case key == tcell.KeyCtrlY:
		ui.dirty = ui.redo() || ui.dirty

	case key == tcell.KeyF1 || key == tcell.KeyCtrlUnderscore:
		ui.showHelp = !ui.showHelp
		if ui.showHelp && ui.helpExpansion == 0 {
			ui.helpExpansion = 1
		}
		ui.dirty = true

	case key == tcell.KeyF12:
		ui.showDebug = !ui.showDebug
		if ui.showDebug {
			ui.log.Debug(ui.debugDump())
		}
		ui.dirty = true

	case key == tcell.KeyRune && !alt:
		c := ev.Rune()
		if c >= ' ' && c < 0x7f {
			// A space after a word closes an undo unit, so typing one
			// word stays a single checkpoint.
			if c == ' ' && ui.cursor >= 1 && ui.cursor <= len(active) &&
				active[ui.cursor-1] != ' ' {
				ui.record()
			}
			var changed bool
			ui.fields[ui.active], changed = insertByte(active, ui.cursor, byte(c))
			if changed {
				ui.cursor++
				ui.dirty = true
			}
		}
	}
}

func (ui *UI) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	ui.mouse.x = x
	ui.mouse.y = y
	if buttons&tcell.WheelUp != 0 {
		ui.mouse.wheel++
	}
	if buttons&tcell.WheelDown != 0 {
		ui.mouse.wheel--
	}

	pressed := buttons &^ ui.mouse.buttons
	ui.mouse.leftClicked = ui.mouse.leftClicked || pressed&tcell.Button1 != 0
	ui.mouse.rightClicked = ui.mouse.rightClicked || pressed&tcell.Button2 != 0
	ui.mouse.leftDown = buttons&tcell.Button1 != 0
	ui.mouse.buttons = buttons &^ (tcell.WheelUp | tcell.WheelDown)
}

func (ui *UI) results() *search.Results {
	if ui.ctx == nil {
		return &search.Results{}
	}
	return ui.ctx.Results()
}
