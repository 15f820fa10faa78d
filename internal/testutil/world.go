// Package testutil provides test helpers for building in-memory world graphs.
package testutil

import (
	"github.com/cory-johannsen/d2reveal/internal/game/area"
	"github.com/cory-johannsen/d2reveal/internal/game/world"
)

// SingleAct builds one act holding an initialized subarea per id, each with a
// single unregistered room keyed by the area name.
//
// Postcondition: Returns the manager and each subarea's room by AreaId.
func SingleAct(ids ...area.ID) (*world.Manager, map[area.ID]world.Room) {
	m := world.NewManager()
	a := m.AddArea(0)
	rooms := make(map[area.ID]world.Room, len(ids))
	for _, id := range ids {
		s := m.AddSubArea(a, id, world.Rect{}, true)
		rooms[id] = m.AddRoom(s, id.String(), world.Rect{Width: 8, Height: 8}, false)
	}
	return m, rooms
}
