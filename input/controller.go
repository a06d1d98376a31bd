package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Controller accumulates tcell events into a polled State. Terminal
// input has no key-release events, so directional keys behave as taps:
// a flag set by a key press survives until the next Poll consumes it.
// Mouse movement accumulates into deltas between polls.
type Controller struct {
	mu      sync.Mutex
	pending State

	haveMouse        bool
	lastMouseX       int
	lastMouseY       int
	mouseSensitivity float64
}

// NewController creates a controller. sensitivity scales terminal-cell
// mouse movement into the MouseDelta fields.
func NewController(sensitivity float64) *Controller {
	if sensitivity <= 0 {
		sensitivity = 1
	}
	return &Controller{mouseSensitivity: sensitivity}
}

// HandleEvent folds one tcell event into the pending state. Returns
// false when the event requests quitting the application.
func (c *Controller) HandleEvent(ev tcell.Event) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			c.pending.Up = true
		case tcell.KeyDown:
			c.pending.Down = true
		case tcell.KeyLeft:
			c.pending.Left = true
		case tcell.KeyRight:
			c.pending.Right = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'w', 'W':
				c.pending.Up = true
			case 's', 'S':
				c.pending.Down = true
			case 'a', 'A':
				c.pending.Left = true
			case 'd', 'D':
				c.pending.Right = true
			case ' ':
				c.pending.Shoot = true
			case 'q', 'Q':
				return false
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		if c.haveMouse {
			c.pending.MouseDeltaX += float64(x-c.lastMouseX) * c.mouseSensitivity
			c.pending.MouseDeltaY += float64(y-c.lastMouseY) * c.mouseSensitivity
		}
		c.haveMouse = true
		c.lastMouseX = x
		c.lastMouseY = y
	}
	return true
}

// Poll returns the accumulated state and clears it for the next tick.
func (c *Controller) Poll() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.pending
	c.pending = State{}
	return out
}
