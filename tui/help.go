package tui

import "github.com/gdamore/tcell/v2"

var helpLines = []string{
	"                    ---  KEYS  ---                    ",
	"",
	"F1, Ctrl+/                  Toggle this help",
	"Tab, Shift+Tab, Enter       Cycle through input fields",
	"Scroll, Up/Down, PgUp/PgDn  Scroll through results",
	"Ctrl+Home, Ctrl+End         Jump to results start, end",
	"Left click on result        Add word to inclusions",
	"Right click on result       Add word to exclusions",
	"Right click on input        Delete word",
	"Ctrl+U, Ctrl+K              Delete to start, end",
	"Ctrl+W, Alt+D               Delete word to left, right",
	"Ctrl+Z, Ctrl+Y              Undo, redo",
	"Esc, Ctrl+Q                 Quit",
}

const helpWidth = 58

// renderHelp draws the centered help overlay, unrolling it one row per
// frame while it opens or closes.
func (ui *UI) renderHelp(s tcell.Screen) {
	if ui.helpExpansion <= 0 {
		return
	}

	helpHeight := len(helpLines) + 2
	if ui.showHelp {
		if ui.helpExpansion < helpHeight {
			ui.helpExpansion++
			ui.dirty = true
		}
	} else {
		ui.helpExpansion--
		ui.dirty = true
	}

	left := (ui.width - helpWidth) / 2
	top := (ui.height - helpHeight) / 2
	bottom := top + ui.helpExpansion - 1

	bg := style(white, darkGray)
	for y := top; y <= bottom; y++ {
		for x := left; x < left+helpWidth; x++ {
			ui.drawChar(s, bg, x, y, ' ')
		}
	}
	for i, line := range helpLines {
		y := top + 1 + i
		if y > bottom {
			break
		}
		ui.drawStr(s, bg, left+2, y, line)
	}
}
