// Package input decodes SDL2 events into the discrete events the
// camera rig and game loop consume.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a decoded input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventLook      // relative mouse motion
	EventZoom      // scroll wheel
	EventFreeCam   // F
	EventTopDown   // T
	EventFocusBody // number keys
)

// Event is a decoded input event.
type Event struct {
	Type          EventType
	Width, Height int     // EventResize
	DX, DY        float32 // EventLook (pixels) / EventZoom (DY = wheel)
	Body          int     // EventFocusBody: requested catalog index
}

// Input polls SDL and keeps per-frame events plus held-key state for
// continuous movement.
type Input struct {
	events []Event
	held   map[sdl.Scancode]bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events and converts them to decoded events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				i.held[e.Keysym.Scancode] = true
				if ev, ok := decodeKey(e.Keysym.Scancode); ok {
					i.events = append(i.events, ev)
					if ev.Type == EventQuit {
						quit = true
					}
				}
			} else if e.Type == sdl.KEYUP {
				delete(i.held, e.Keysym.Scancode)
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type: EventLook,
				DX:   float32(e.XRel),
				DY:   float32(-e.YRel), // screen Y grows downward
			})

		case *sdl.MouseWheelEvent:
			i.events = append(i.events, Event{
				Type: EventZoom,
				DY:   float32(e.Y),
			})
		}
	}

	return quit
}

// decodeKey maps a pressed key to a discrete event.
func decodeKey(code sdl.Scancode) (Event, bool) {
	switch code {
	case sdl.SCANCODE_ESCAPE:
		return Event{Type: EventQuit}, true
	case sdl.SCANCODE_F:
		return Event{Type: EventFreeCam}, true
	case sdl.SCANCODE_T:
		return Event{Type: EventTopDown}, true
	}

	// 1..9 then 0 focus bodies 0..9 in catalog order.
	if code >= sdl.SCANCODE_1 && code <= sdl.SCANCODE_0 {
		return Event{Type: EventFocusBody, Body: int(code - sdl.SCANCODE_1)}, true
	}

	return Event{}, false
}

// Events returns the events decoded by the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Held reports whether a key is currently held down.
func (i *Input) Held(code sdl.Scancode) bool {
	return i.held[code]
}
