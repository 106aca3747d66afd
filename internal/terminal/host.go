package terminal

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/tube-walk-go/internal/sim"
)

// Host runs the update/redraw cycle against a terminal surface
type Host struct {
	surface *Surface
	world   *sim.World
	update  time.Duration
	redraw  time.Duration
}

// NewHost creates a host ticking the world tps times and redrawing fps times
// per second
func NewHost(surface *Surface, world *sim.World, tps, fps int) *Host {
	return &Host{
		surface: surface,
		world:   world,
		update:  time.Second / time.Duration(tps),
		redraw:  time.Second / time.Duration(fps),
	}
}

// Run blocks until the user quits or the surface fails
func (h *Host) Run() error {
	updateTicker := time.NewTicker(h.update)
	defer updateTicker.Stop()
	redrawTicker := time.NewTicker(h.redraw)
	defer redrawTicker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := h.surface.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			quit, err := h.handle(ev)
			if err != nil {
				log.Printf("terminal: %v", err)
				return err
			}
			if quit {
				return nil
			}

		case <-updateTicker.C:
			h.world.Step()

		case <-redrawTicker.C:
			if err := h.world.Frame(h.surface); err != nil {
				log.Printf("terminal: %v", err)
				return err
			}
		}
	}
}

// handle reacts to a single terminal event
func (h *Host) handle(ev tcell.Event) (quit bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true, nil
			case ' ':
				h.world.TogglePause()
			case 'c':
				h.world.Clear()
			}
		}

	case *tcell.EventResize:
		h.surface.screen.Sync()
		cols, rows := ev.Size()
		if err := h.surface.Resize(cols, rows); err != nil {
			return true, err
		}
	}
	return false, nil
}
