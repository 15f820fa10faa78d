// Package world provides non-owning handles onto the host's live world graph
// (areas, subareas, room records, room geometry, units) and the binding
// interfaces through which that graph is read and its routines invoked.
package world

import (
	"fmt"

	"github.com/cory-johannsen/d2reveal/internal/game/area"
)

// Handles are opaque references into memory owned by the host. The zero value
// of every handle is the null reference.
type (
	// Area is a top-level act container.
	Area uintptr
	// AreaMisc is the act side-table holding the subarea list.
	AreaMisc uintptr
	// SubArea is one named map segment with its own room list.
	SubArea uintptr
	// Room is an extended room record carrying adjacency and registration state.
	Room uintptr
	// Geometry is the bare renderable room.
	Geometry uintptr
	// Unit is a host unit; only player units are of interest.
	Unit uintptr
)

// Rect is a position and size in host map coordinates.
type Rect struct {
	X      uint32
	Y      uint32
	Width  uint32
	Height uint32
}

// String returns the rectangle as "(x,y wxh)".
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Graph exposes typed, by-reference reads of the host world graph.
// Every accessor returns the zero value when the link it follows is absent;
// callers must treat a zero handle as a missing link.
type Graph interface {
	AreaMisc(a Area) AreaMisc
	MiscArea(m AreaMisc) Area
	MiscFirstSubArea(m AreaMisc) SubArea

	SubAreaID(s SubArea) area.ID
	SubAreaNext(s SubArea) SubArea
	SubAreaMisc(s SubArea) AreaMisc
	// SubAreaFirstRoom is null until the subarea has been initialized.
	SubAreaFirstRoom(s SubArea) Room
	SubAreaBounds(s SubArea) Rect

	RoomNext(r Room) Room
	// RoomNeighbors may contain null entries.
	RoomNeighbors(r Room) []Room
	RoomSubArea(r Room) SubArea
	// RoomGeometry is non-null iff the room is registered with its area.
	RoomGeometry(r Room) Geometry
	RoomBounds(r Room) Rect

	// LocalPlayer returns the local player unit, or null when out of game.
	LocalPlayer() Unit
	UnitIsValid(u Unit) bool
	// UnitSubArea follows unit → path → geometry → room record → subarea.
	UnitSubArea(u Unit) SubArea
}

// Routines are the host capabilities the reveal engine invokes.
type Routines interface {
	// InitSubArea populates the subarea's room list.
	InitSubArea(s SubArea)
	// RegisterRoom adds the room at (x, y) of subarea id to the area's room lookup table.
	RegisterRoom(a Area, id area.ID, x, y uint32, g Geometry)
	// UnregisterRoom removes the room at (x, y) of subarea id from the area's room lookup table.
	UnregisterRoom(a Area, id area.ID, x, y uint32, g Geometry)
	// RevealRoom makes the geometry visible on the automap. The effect is permanent.
	RevealRoom(g Geometry)
}

// Host is a full binding onto a running simulation.
type Host interface {
	Graph
	Routines
}

// AreaOf resolves the SubArea → AreaMisc → Area chain.
//
// Postcondition: Returns the owning Area, or 0 if any link is absent.
func AreaOf(g Graph, s SubArea) Area {
	if s == 0 {
		return 0
	}
	misc := g.SubAreaMisc(s)
	if misc == 0 {
		return 0
	}
	return g.MiscArea(misc)
}

// SubAreas returns the subareas of a in list order.
//
// Postcondition: Returns nil if the area or its side-table is absent.
func SubAreas(g Graph, a Area) []SubArea {
	if a == 0 {
		return nil
	}
	misc := g.AreaMisc(a)
	if misc == 0 {
		return nil
	}
	var out []SubArea
	for s := g.MiscFirstSubArea(misc); s != 0; s = g.SubAreaNext(s) {
		out = append(out, s)
	}
	return out
}

// Rooms returns the room records of s in list order.
//
// Postcondition: Returns nil if s is absent or not initialized.
func Rooms(g Graph, s SubArea) []Room {
	if s == 0 {
		return nil
	}
	var out []Room
	for r := g.SubAreaFirstRoom(s); r != 0; r = g.RoomNext(r) {
		out = append(out, r)
	}
	return out
}
