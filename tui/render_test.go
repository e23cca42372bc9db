package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderToSim(t *testing.T, ui *UI) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(ui.width, ui.height)
	ui.render(sim)
	return sim
}

func screenRow(sim tcell.SimulationScreen, y int) string {
	cells, width, _ := sim.GetContents()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		cell := cells[y*width+x]
		if len(cell.Runes) > 0 {
			sb.WriteRune(cell.Runes[0])
		} else {
			sb.WriteByte(' ')
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestRenderEmptyQuery(t *testing.T) {
	ui := newTestUI(t, "cat")
	ui.update(nil)

	sim := renderToSim(t, ui)
	assert.Equal(t, "  Input:", screenRow(sim, fieldRow(fieldInput)-1))
	assert.Equal(t, "  Include:", screenRow(sim, fieldRow(fieldInclude)-1))
	assert.Equal(t, "  Exclude:", screenRow(sim, fieldRow(fieldExclude)-1))
	assert.Equal(t, "  No results.", screenRow(sim, headerRow))
}

func TestRenderResultRows(t *testing.T) {
	ui := newTestUI(t, "cat\nact")
	typeKeys(ui, "cat")

	sim := renderToSim(t, ui)
	assert.Equal(t, "  Results 1 to 2 of 2:", screenRow(sim, headerRow))
	assert.Equal(t, "    act", screenRow(sim, resultRow0))
	assert.Equal(t, "    cat", screenRow(sim, resultRow0+1))
}

func TestRenderIncludePrefix(t *testing.T) {
	ui := newTestUI(t, "cat\nact\ns")
	typeKeys(ui, "cats")
	key(ui, tcell.KeyTab)
	typeKeys(ui, "cat")

	sim := renderToSim(t, ui)
	assert.Equal(t, "    cat s", screenRow(sim, resultRow0))
}

func TestRenderShortfall(t *testing.T) {
	ui := newTestUI(t, "cat\nact")
	key(ui, tcell.KeyTab)
	typeKeys(ui, "cat")

	sim := renderToSim(t, ui)
	assert.Equal(t, "  Missing 3 letters:", screenRow(sim, headerRow))
	assert.Equal(t, "  1x 'a'", screenRow(sim, resultRow0))
	assert.Equal(t, "  1x 'c'", screenRow(sim, resultRow0+1))
	assert.Equal(t, "  1x 't'", screenRow(sim, resultRow0+2))
	assert.Equal(t, "  Possible additions:", screenRow(sim, resultRow0+4))
	assert.Equal(t, "    act", screenRow(sim, resultRow0+5))
	assert.Equal(t, "    cat", screenRow(sim, resultRow0+6))
}

func TestRenderHelpOverlay(t *testing.T) {
	ui := newTestUI(t, "cat")
	key(ui, tcell.KeyF1)

	// The overlay unrolls one row per rendered frame.
	sim := renderToSim(t, ui)
	require.True(t, ui.dirty)
	for i := 0; i < len(helpLines)+2; i++ {
		ui.render(sim)
	}
	top := (ui.height - (len(helpLines) + 2)) / 2
	assert.Contains(t, screenRow(sim, top+3), "Toggle this help")
}
