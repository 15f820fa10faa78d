package host

import (
	"github.com/cory-johannsen/d2reveal/internal/game/area"
	"github.com/cory-johannsen/d2reveal/internal/game/world"
)

const (
	ptrSize = 8

	// MaxNeighbors bounds a neighbor list read. A larger count means the
	// record is mid-mutation and the list is ignored.
	MaxNeighbors = 256

	unitTypePlayer = 0
	invalidUnitID  = 0xFFFFFFFF
)

// Memory reads fields of the foreign address space. A read of address 0 returns 0.
type Memory interface {
	ReadPointer(addr uintptr) uintptr
	ReadUint32(addr uintptr) uint32
}

// Caller invokes a foreign routine at an absolute address.
type Caller interface {
	Call(fn uintptr, args ...uintptr) uintptr
}

// routine is the absolute address of one host routine.
type routine uintptr

// Binding implements world.Host over a foreign address space.
type Binding struct {
	mem    Memory
	caller Caller
	base   uintptr
	layout Layout

	playerIndex    uintptr
	getPlayer      routine
	initSubArea    routine
	registerRoom   routine
	unregisterRoom routine
	revealRoom     routine
}

var _ world.Host = (*Binding)(nil)

// NewBinding creates a Binding, resolving every routine offset against base once.
//
// Precondition: mem and caller must be non-nil; base must be the host module's load address.
func NewBinding(mem Memory, caller Caller, base uintptr, layout Layout, offsets Offsets) *Binding {
	return &Binding{
		mem:            mem,
		caller:         caller,
		base:           base,
		layout:         layout,
		playerIndex:    base + offsets.PlayerIndex,
		getPlayer:      routine(base + offsets.GetPlayer),
		initSubArea:    routine(base + offsets.InitSubArea),
		registerRoom:   routine(base + offsets.RegisterRoom),
		unregisterRoom: routine(base + offsets.UnregisterRoom),
		revealRoom:     routine(base + offsets.RevealRoom),
	}
}

func (b *Binding) call(fn routine, args ...uintptr) uintptr {
	return b.caller.Call(uintptr(fn), args...)
}

func (b *Binding) ptr(obj, off uintptr) uintptr {
	if obj == 0 {
		return 0
	}
	return b.mem.ReadPointer(obj + off)
}

func (b *Binding) u32(obj, off uintptr) uint32 {
	if obj == 0 {
		return 0
	}
	return b.mem.ReadUint32(obj + off)
}

func (b *Binding) rect(obj, off uintptr) world.Rect {
	if obj == 0 {
		return world.Rect{}
	}
	return world.Rect{
		X:      b.mem.ReadUint32(obj + off),
		Y:      b.mem.ReadUint32(obj + off + 4),
		Width:  b.mem.ReadUint32(obj + off + 8),
		Height: b.mem.ReadUint32(obj + off + 12),
	}
}

// AreaMisc implements world.Graph.
func (b *Binding) AreaMisc(a world.Area) world.AreaMisc {
	return world.AreaMisc(b.ptr(uintptr(a), b.layout.AreaMisc))
}

// MiscArea implements world.Graph.
func (b *Binding) MiscArea(m world.AreaMisc) world.Area {
	return world.Area(b.ptr(uintptr(m), b.layout.MiscArea))
}

// MiscFirstSubArea implements world.Graph.
func (b *Binding) MiscFirstSubArea(m world.AreaMisc) world.SubArea {
	return world.SubArea(b.ptr(uintptr(m), b.layout.MiscFirstSubArea))
}

// SubAreaID implements world.Graph.
func (b *Binding) SubAreaID(s world.SubArea) area.ID {
	return area.ID(b.u32(uintptr(s), b.layout.SubAreaID))
}

// SubAreaNext implements world.Graph.
func (b *Binding) SubAreaNext(s world.SubArea) world.SubArea {
	return world.SubArea(b.ptr(uintptr(s), b.layout.SubAreaNext))
}

// SubAreaMisc implements world.Graph.
func (b *Binding) SubAreaMisc(s world.SubArea) world.AreaMisc {
	return world.AreaMisc(b.ptr(uintptr(s), b.layout.SubAreaMisc))
}

// SubAreaFirstRoom implements world.Graph.
func (b *Binding) SubAreaFirstRoom(s world.SubArea) world.Room {
	return world.Room(b.ptr(uintptr(s), b.layout.SubAreaFirstRoom))
}

// SubAreaBounds implements world.Graph.
func (b *Binding) SubAreaBounds(s world.SubArea) world.Rect {
	return b.rect(uintptr(s), b.layout.SubAreaBounds)
}

// RoomNext implements world.Graph.
func (b *Binding) RoomNext(r world.Room) world.Room {
	return world.Room(b.ptr(uintptr(r), b.layout.RoomNext))
}

// RoomNeighbors reads the room's neighbor pointer array.
//
// Postcondition: Returns nil if the array is absent or its count exceeds MaxNeighbors.
func (b *Binding) RoomNeighbors(r world.Room) []world.Room {
	arr := b.ptr(uintptr(r), b.layout.RoomNeighbors)
	n := b.u32(uintptr(r), b.layout.RoomNeighborCount)
	if arr == 0 || n == 0 || n > MaxNeighbors {
		return nil
	}
	out := make([]world.Room, n)
	for i := range out {
		out[i] = world.Room(b.mem.ReadPointer(arr + uintptr(i)*ptrSize))
	}
	return out
}

// RoomSubArea implements world.Graph.
func (b *Binding) RoomSubArea(r world.Room) world.SubArea {
	return world.SubArea(b.ptr(uintptr(r), b.layout.RoomSubArea))
}

// RoomGeometry implements world.Graph. It is zero while the room is unregistered.
func (b *Binding) RoomGeometry(r world.Room) world.Geometry {
	return world.Geometry(b.ptr(uintptr(r), b.layout.RoomGeometry))
}

// RoomBounds implements world.Graph.
func (b *Binding) RoomBounds(r world.Room) world.Rect {
	return b.rect(uintptr(r), b.layout.RoomBounds)
}

// LocalPlayer reads the local player index and resolves it through the host's
// player lookup routine.
func (b *Binding) LocalPlayer() world.Unit {
	if b.base == 0 {
		return 0
	}
	idx := b.mem.ReadUint32(b.playerIndex)
	return world.Unit(b.call(b.getPlayer, uintptr(idx)))
}

// UnitIsValid reports whether u is a live player unit rather than a placeholder.
func (b *Binding) UnitIsValid(u world.Unit) bool {
	if u == 0 {
		return false
	}
	return b.u32(uintptr(u), b.layout.UnitID) != invalidUnitID &&
		b.u32(uintptr(u), b.layout.UnitType) == unitTypePlayer
}

// UnitSubArea follows the unit path to its room and returns that room's subarea.
func (b *Binding) UnitSubArea(u world.Unit) world.SubArea {
	path := b.ptr(uintptr(u), b.layout.UnitPath)
	geom := b.ptr(path, b.layout.PathGeometry)
	room := b.ptr(geom, b.layout.GeometryRoom)
	return world.SubArea(b.ptr(room, b.layout.RoomSubArea))
}

// InitSubArea implements world.Routines.
func (b *Binding) InitSubArea(s world.SubArea) {
	b.call(b.initSubArea, uintptr(s))
}

// RegisterRoom implements world.Routines.
func (b *Binding) RegisterRoom(a world.Area, id area.ID, x, y uint32, g world.Geometry) {
	b.call(b.registerRoom, uintptr(a), uintptr(id), uintptr(x), uintptr(y), uintptr(g))
}

// UnregisterRoom implements world.Routines.
func (b *Binding) UnregisterRoom(a world.Area, id area.ID, x, y uint32, g world.Geometry) {
	b.call(b.unregisterRoom, uintptr(a), uintptr(id), uintptr(x), uintptr(y), uintptr(g))
}

// RevealRoom implements world.Routines.
func (b *Binding) RevealRoom(g world.Geometry) {
	b.call(b.revealRoom, uintptr(g))
}
