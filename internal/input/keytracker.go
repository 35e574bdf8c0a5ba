package input

// KeyStateTracker turns a level triggered key into an edge: it reports a press
// only on the first update the key is down.
type KeyStateTracker struct {
	prevPressed bool
}

// Update records the key state for this tick and returns true if the key was
// not pressed last tick but is pressed now.
func (k *KeyStateTracker) Update(pressed bool) bool {
	justPressed := pressed && !k.prevPressed
	k.prevPressed = pressed
	return justPressed
}
