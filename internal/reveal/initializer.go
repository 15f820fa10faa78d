package reveal

import "github.com/cory-johannsen/d2reveal/internal/game/world"

// IsInitialized reports whether s has a populated room list.
func IsInitialized(g world.Graph, s world.SubArea) bool {
	return g.SubAreaFirstRoom(s) != 0
}

// EnsureInitialized brings s's room list into existence on first visit.
// Repeated calls are no-ops.
//
// Precondition: s must be non-null.
// Postcondition: Returns true iff this call invoked the host initializer.
func EnsureInitialized(g world.Graph, r world.Routines, s world.SubArea) bool {
	if IsInitialized(g, s) {
		return false
	}
	r.InitSubArea(s)
	return true
}
