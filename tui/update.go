package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/doublescale/anagrind/dict"
	"github.com/doublescale/anagrind/search"
)

// Screen layout, top-down. The query fields sit above the result list,
// which fills the rest of the window.
const (
	startX       = 2
	headerRow    = 10
	resultRow0   = 11
	resultIndent = startX + 2
	debugRow     = 0
)

func fieldRow(f fieldID) int {
	return 2 + 3*int(f)
}

// fieldMaxWidth is how many field characters fit beside the margins.
func (ui *UI) fieldMaxWidth() int {
	return ui.width - 2 - startX
}

// fieldDrawOffset returns the horizontal scroll of field f, keeping the
// cursor of the active field near the middle.
func (ui *UI) fieldDrawOffset(f fieldID) int {
	maxWidth := ui.fieldMaxWidth()
	drawn := min(maxWidth-1, len(ui.fields[f]))
	offset := len(ui.fields[f]) - drawn
	if f == ui.active {
		offset = max(0, min(ui.cursor-maxWidth/2, offset))
	}
	return offset
}

// update runs one frame: dispatch the queued events, ease the scroll
// position, restart the search when the query changed, and give the driver
// its step budget.
func (ui *UI) update(events []tcell.Event) {
	prevInputBag := dict.WordBag(ui.fields[fieldInput])
	prevIncludeBag := dict.WordBag(ui.fields[fieldInclude])
	prevExclude := string(ui.fields[fieldExclude])
	prevCursor := ui.cursor
	prevSkip := ui.skip
	prevHistPos := ui.hist.Position()

	for _, ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			ui.handleKey(ev)
		case *tcell.EventMouse:
			ui.handleMouse(ev)
		case *tcell.EventResize:
			ui.width, ui.height = ev.Size()
			ui.dirty = true
		}
	}

	ui.scrollResults(-2 * ui.mouse.wheel)
	ui.mouse.wheel = 0

	if !ui.results().NotDone() {
		ui.skipTarget = max(0, min(ui.results().Count()-1, ui.skipTarget))
	}
	if ui.skipTarget < ui.skip {
		ui.skip -= (ui.skip - ui.skipTarget + 3) / 4
	} else if ui.skipTarget > ui.skip {
		ui.skip += (ui.skipTarget - ui.skip + 3) / 4
	}

	clicked := ui.mouse.leftClicked || ui.mouse.leftDown || ui.mouse.rightClicked
	if clicked {
		ui.record()
	}
	ui.hitTestFields()
	ui.hitTestResults()
	ui.mouse.leftClicked = false
	ui.mouse.rightClicked = false

	inputBag := dict.WordBag(ui.fields[fieldInput])
	includeBag := dict.WordBag(ui.fields[fieldInclude])
	ui.inputsChanged = ui.inputsChanged ||
		prevInputBag != inputBag ||
		prevIncludeBag != includeBag ||
		prevExclude != string(ui.fields[fieldExclude])

	ui.dirty = ui.dirty || clicked ||
		ui.cursor != prevCursor ||
		ui.skip != prevSkip ||
		(ui.showDebug && ui.hist.Position() != prevHistPos) ||
		ui.inputsChanged ||
		ui.results().NotDone()

	if ui.inputsChanged {
		ui.skip = 0
		ui.skipTarget = 0
		if ui.ctx != nil {
			ui.ctx.Close()
		}
		ui.ctx = search.Begin(ui.idx, search.Query{
			Input:   string(ui.fields[fieldInput]),
			Include: string(ui.fields[fieldInclude]),
			Exclude: string(ui.fields[fieldExclude]),
		}, search.NoLimit)
		ui.inputsChanged = false
		ui.dirty = true
	}

	if ui.ctx != nil && !ui.ctx.Done() &&
		ui.results().Count() < ui.skip+ui.visibleResults()+resultBuffer {
		ui.ctx.Advance(advanceBudget)
	}
}

// hitTestFields applies pending clicks to the field rows: left positions
// the cursor, right deletes the word under the pointer.
func (ui *UI) hitTestFields() {
	if !ui.mouse.leftClicked && !ui.mouse.leftDown && !ui.mouse.rightClicked {
		return
	}
	// TODO: Ignore clicks that land on the help overlay.
	for f := fieldID(0); f < fieldCount; f++ {
		row := fieldRow(f)
		if ui.mouse.y < row-1 || ui.mouse.y > row+1 {
			continue
		}
		field := ui.fields[f]
		offset := ui.fieldDrawOffset(f)
		at := max(0, min(len(field), ui.mouse.x+offset-startX))

		if ui.mouse.leftClicked || ui.mouse.leftDown {
			ui.active = f
			ui.cursor = at
		}
		if ui.mouse.rightClicked {
			at = min(len(field)-1, at)
			if at >= 0 && field[at] != ' ' {
				start, end := wordBoundsAround(field, at)
				ui.deleteFromField(f, start, end)
			}
		}
	}
}

// hitTestResults applies pending clicks to the result rows: left adds the
// word under the pointer to the include field, right to the exclude field,
// and a click on the rendered include prefix deletes that include word.
func (ui *UI) hitTestResults() {
	if !ui.mouse.leftClicked && !ui.mouse.rightClicked {
		return
	}
	if ui.ctx != nil && ui.ctx.Shortfall() != nil {
		return
	}
	row := ui.mouse.y - resultRow0 + ui.skip
	if ui.mouse.y < resultRow0 || ui.mouse.y >= ui.height ||
		row < 0 || row >= ui.results().Count() {
		return
	}

	include := ui.fields[fieldInclude]
	x := resultIndent
	if len(include) > 0 {
		at := ui.mouse.x - x
		if at >= 0 && at < len(include) && include[at] != ' ' {
			start, end := wordBoundsAround(include, at)
			ui.deleteFromField(fieldInclude, start, end)
			return
		}
		x += len(include) + 1
	}

	for i, word := range ui.results().At(row).Words {
		if i > 0 {
			x++
		}
		if ui.mouse.x >= x && ui.mouse.x <= x+len(word) {
			if ui.mouse.leftClicked {
				ui.appendWordToField(fieldInclude, word)
			} else {
				ui.appendWordToField(fieldExclude, word)
			}
			return
		}
		x += len(word)
	}
}
