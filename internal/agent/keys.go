package agent

// KeyState reports whether a virtual key is currently held down.
type KeyState interface {
	Down(vk int) bool
}

// KeyWatcher turns polled key state into release edges.
type KeyWatcher struct {
	keys KeyState
	down map[int]bool
}

// NewKeyWatcher creates a KeyWatcher polling keys.
//
// Precondition: keys must be non-nil.
func NewKeyWatcher(keys KeyState) *KeyWatcher {
	return &KeyWatcher{keys: keys, down: make(map[int]bool)}
}

// Released reports whether vk was down at the previous poll of vk and is up now.
//
// Postcondition: Returns true at most once per press.
func (w *KeyWatcher) Released(vk int) bool {
	now := w.keys.Down(vk)
	was := w.down[vk]
	w.down[vk] = now
	return was && !now
}
