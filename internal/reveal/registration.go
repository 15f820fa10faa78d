package reveal

import (
	"github.com/cory-johannsen/d2reveal/internal/game/area"
	"github.com/cory-johannsen/d2reveal/internal/game/world"
)

// Registrar registers and unregisters room records against an area's room
// lookup table.
//
// Callers must pass the same Area and AreaId to Register and the matching
// Unregister. The AreaId is derived from the room's own subarea at call time:
// a room reached across an area boundary is registered against the area it is
// being revealed in, not the one the walk started from.
type Registrar struct {
	graph    world.Graph
	routines world.Routines
}

// NewRegistrar creates a Registrar over the given host binding.
//
// Precondition: g and r must be non-nil.
func NewRegistrar(g world.Graph, r world.Routines) *Registrar {
	return &Registrar{graph: g, routines: r}
}

// IsRegistered reports whether room's geometry back-reference is set.
func (r *Registrar) IsRegistered(room world.Room) bool {
	return r.graph.RoomGeometry(room) != 0
}

// Register adds room to a's lookup table if it is not already registered.
//
// Postcondition: Returns true iff this call performed the registration; the
// caller then owns the matching Unregister.
func (r *Registrar) Register(room world.Room, a world.Area, id area.ID) bool {
	if r.IsRegistered(room) {
		return false
	}
	b := r.graph.RoomBounds(room)
	r.routines.RegisterRoom(a, id, b.X, b.Y, r.graph.RoomGeometry(room))
	return true
}

// Unregister removes room from a's lookup table. No-op if not registered.
func (r *Registrar) Unregister(room world.Room, a world.Area, id area.ID) {
	if !r.IsRegistered(room) {
		return
	}
	b := r.graph.RoomBounds(room)
	r.routines.UnregisterRoom(a, id, b.X, b.Y, r.graph.RoomGeometry(room))
}
