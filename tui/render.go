package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/doublescale/anagrind/dict"
	"github.com/doublescale/anagrind/search"
)

var (
	black      = tcell.NewRGBColor(0, 0, 0)
	darkGray   = tcell.NewRGBColor(80, 80, 80)
	brightGray = tcell.NewRGBColor(140, 140, 140)
	white      = tcell.NewRGBColor(255, 255, 255)
	darkRed    = tcell.NewRGBColor(160, 0, 0)
	brightRed  = tcell.NewRGBColor(255, 0, 0)
	green      = tcell.NewRGBColor(0, 255, 0)
)

func style(fg, bg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}

func (ui *UI) drawChar(s tcell.Screen, st tcell.Style, x, y int, c byte) {
	if x >= 0 && y >= 0 && x < ui.width && y < ui.height {
		s.SetContent(x, y, rune(c), nil, st)
	}
}

// drawStr draws text at (x, y), clipping to the screen, and returns the
// text length so callers can advance their pen.
func (ui *UI) drawStr(s tcell.Screen, st tcell.Style, x, y int, text string) int {
	if y >= 0 && y < ui.height {
		for i := 0; i < len(text); i++ {
			if x+i >= ui.width {
				break
			}
			ui.drawChar(s, st, x+i, y, text[i])
		}
	}
	return len(text)
}

func (ui *UI) render(s tcell.Screen) {
	s.Clear()

	if ui.showDebug {
		ui.renderDebug(s)
	}
	ui.renderFields(s)
	if ui.ctx != nil && ui.ctx.Shortfall() != nil {
		ui.renderShortfall(s, ui.ctx.Shortfall())
	} else {
		ui.renderResults(s)
	}
	ui.renderHelp(s)

	ui.frameCount++
	s.Show()
}

// renderFields draws the three labeled fields. Letters of the input that
// the include already claims render dim; include letters the input cannot
// supply render red. The active field renders as an inverted bar with the
// cursor as the gap.
func (ui *UI) renderFields(s tcell.Screen) {
	maxWidth := ui.fieldMaxWidth()
	inputRemaining := dict.WordBag(ui.fields[fieldInput])
	includeRemaining := dict.WordBag(ui.fields[fieldInclude])

	for f := fieldID(0); f < fieldCount; f++ {
		row := fieldRow(f)
		ui.drawStr(s, style(white, black), startX, row-1, fieldLabels[f])

		field := ui.fields[f]
		offset := ui.fieldDrawOffset(f)
		active := f == ui.active
		for i := 0; i < maxWidth; i++ {
			c := byte(' ')
			if offset+i < len(field) {
				c = field[offset+i]
			}

			dim := false
			warning := false
			if isLetter(c) {
				k := letterIndex(c)
				switch f {
				case fieldInput:
					dim = includeRemaining[k] > 0
					includeRemaining[k]--
				case fieldInclude:
					warning = inputRemaining[k] <= 0
					inputRemaining[k]--
				}
			}

			fg, bg := white, black
			if warning {
				fg = brightRed
			} else if dim {
				fg = brightGray
			}
			if active && offset+i != ui.cursor {
				bg = white
				switch {
				case warning:
					fg = darkRed
				case dim:
					fg = darkGray
				default:
					fg = black
				}
			}
			ui.drawChar(s, style(fg, bg), startX+i, row, c)
		}
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func letterIndex(c byte) int {
	if c >= 'a' {
		return int(c - 'a')
	}
	return int(c - 'A')
}

func (ui *UI) renderResults(s tcell.Screen) {
	results := ui.results()
	visible := ui.visibleResults()

	header := "No results."
	if results.Count() > 0 {
		more := ""
		if results.NotDone() {
			more = " (maybe more)"
		}
		last := min(results.Count(), ui.skip+max(1, visible))
		header = fmt.Sprintf("Results %d to %d of %d%s:",
			ui.skip+1, max(ui.skip+1, last), results.Count(), more)
	}
	ui.drawStr(s, style(white, black), startX, headerRow, header)

	include := string(ui.fields[fieldInclude])
	row := resultRow0
	for r := ui.skip; r < results.Count() && row < ui.height; r++ {
		x := resultIndent
		if include != "" {
			x += 1 + ui.drawStr(s, style(brightGray, black), x, row, include)
		}
		for i, word := range results.At(r).Words {
			if i > 0 {
				x++
			}
			x += ui.drawStr(s, style(white, black), x, row, string(word))
		}
		row++
	}

	if results.NotDone() {
		ui.renderSearching(s, max(resultRow0, row))
	}
}

// renderSearching bounces a highlight across the searching marker while
// the driver still has work.
func (ui *UI) renderSearching(s tcell.Screen, row int) {
	marker := []byte("... searching ...")
	phase := (ui.frameCount / 5) % (2*len(marker) - 2)
	if phase >= len(marker) {
		phase = 2*len(marker) - phase - 2
	}
	switch c := marker[phase]; {
	case c == '.' || c == ' ':
		marker[phase] = '?'
	case c >= 'a' && c <= 'z':
		marker[phase] = c - 'a' + 'A'
	}
	ui.drawStr(s, style(brightGray, black), resultIndent, row, string(marker))
}

// renderShortfall reports an unsatisfiable include inline, in place of the
// result list.
func (ui *UI) renderShortfall(s tcell.Screen, short *search.Shortfall) {
	ui.drawStr(s, style(brightRed, black),
		startX, headerRow, fmt.Sprintf("Missing %d letters:", short.MissingCount()))

	row := resultRow0
	for i, count := range short.Missing {
		if count != 0 {
			ui.drawStr(s, style(white, black),
				startX, row, fmt.Sprintf("%dx '%c'", count, 'a'+i))
			row++
		}
	}

	if short.Suggestions.Count() > 0 {
		row++
		ui.drawStr(s, style(white, black), startX, row, "Possible additions:")
		row++
		for _, r := range short.Suggestions.All() {
			x := resultIndent
			for i, word := range r.Words {
				if i > 0 {
					x++
				}
				x += ui.drawStr(s, style(brightGray, black), x, row, string(word))
			}
			row++
		}
	}
}

func (ui *UI) renderDebug(s tcell.Screen) {
	var steps uint64
	results := 0
	if ui.ctx != nil {
		steps = ui.ctx.Steps()
		results = ui.ctx.Results().Count()
	}
	line := fmt.Sprintf("Steps: %d; Results: %d; Undo history: %d/%d",
		steps, results, ui.hist.Position(), ui.hist.Len())
	ui.drawStr(s, style(green, black), 0, debugRow, line)
}
