// Package tui is the interactive shell around the incremental anagram
// search: three editable query fields, a streaming result list, undo
// history, a help overlay and debug counters.
//
// The search itself runs cooperatively inside the frame loop; the only
// other goroutine reads terminal events into a bounded queue that the
// loop drains once per frame.
package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"

	"github.com/doublescale/anagrind/dict"
)

// frameDelay paces the frame loop.
const frameDelay = 20 * time.Millisecond

// Run owns the terminal until the user quits. The screen is restored on
// the way out, also on error.
func Run(idx *dict.Index, log logrus.FieldLogger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.SetStyle(style(white, black))
	screen.EnableMouse()
	screen.HideCursor()

	id, _ := uuid.NewV4()
	log = log.WithField("session", id)
	log.Info("live session started")
	defer log.Info("live session ended")

	ui := New(idx, log)
	ui.width, ui.height = screen.Size()

	events := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			default:
				// Queue full; drop rather than stall the reader.
			}
		}
	}()

	ticker := time.NewTicker(frameDelay)
	defer ticker.Stop()

	var queue []tcell.Event
	for !ui.quit {
		queue = queue[:0]
	drain:
		for {
			select {
			case ev := <-events:
				queue = append(queue, ev)
			default:
				break drain
			}
		}

		ui.update(queue)
		if ui.quit {
			break
		}
		if ui.dirty {
			ui.dirty = false
			ui.render(screen)
		}
		<-ticker.C
	}

	return nil
}
