package input

// State is the polled input snapshot the systems read each tick.
// Directional flags and mouse deltas describe this tick's intent.
// Shoot is edge-detected by the supplier: it is set once per trigger
// press, and the shooting system clears it the moment it fires, so a
// held trigger produces at most one shot per press.
type State struct {
	Up, Down, Left, Right bool

	MouseDeltaX float64
	MouseDeltaY float64

	Shoot bool
}

// Reset clears all flags and deltas.
func (s *State) Reset() {
	*s = State{}
}
