package game

// Director plays a session on its own, one click at a time.
type Director interface {
	// Init prepares the director to play the given session
	Init(*Session)

	// Act returns the next click to make, or false if the director has
	// nothing left to do
	Act() (Action, bool)
}

// Step asks the director for one click and applies it. It reports whether a
// click was made.
func (session *Session) Step(director Director) bool {
	if director == nil || session.Over() {
		return false
	}
	action, ok := director.Act()
	if !ok {
		return false
	}
	session.Apply(action)
	return true
}
