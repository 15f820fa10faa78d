package world

import (
	"fmt"
	"sync"

	"github.com/cory-johannsen/d2reveal/internal/game/area"
)

// Op names a host routine invocation recorded by Manager.
type Op string

// Recorded routine names.
const (
	OpInitSubArea    Op = "init_subarea"
	OpRegisterRoom   Op = "register_room"
	OpUnregisterRoom Op = "unregister_room"
	OpRevealRoom     Op = "reveal_room"
)

// Call is one recorded routine invocation.
type Call struct {
	Op      Op
	Area    Area
	AreaID  area.ID
	SubArea SubArea
	Room    Room
}

type areaNode struct {
	act  int
	misc AreaMisc
}

type miscNode struct {
	area  Area
	first SubArea
	last  SubArea
}

type subAreaNode struct {
	id          area.ID
	bounds      Rect
	next        SubArea
	misc        AreaMisc
	initialized bool
	rooms       []Room
}

type roomNode struct {
	key        string
	subarea    SubArea
	bounds     Rect
	next       Room
	neighbors  []Room
	geometry   Geometry
	registered bool
}

type geometryNode struct {
	room     Room
	revealed bool
}

type unitNode struct {
	valid bool
	room  Room
}

// Manager is an in-memory host world graph. It implements Host with the same
// observable behavior as the live client: room lists appear on subarea
// initialization, room geometry is reachable only while registered, and
// reveals are permanent.
//
// All methods are safe for concurrent use.
type Manager struct {
	mu         sync.RWMutex
	next       uintptr
	areas      []Area
	areaNodes  map[Area]*areaNode
	miscNodes  map[AreaMisc]*miscNode
	subNodes   map[SubArea]*subAreaNode
	roomNodes  map[Room]*roomNode
	geomNodes  map[Geometry]*geometryNode
	unitNodes  map[Unit]*unitNode
	roomsByKey map[string]Room
	player     Unit
	calls      []Call
}

// NewManager creates an empty in-memory world.
func NewManager() *Manager {
	return &Manager{
		next:       0x1000,
		areaNodes:  make(map[Area]*areaNode),
		miscNodes:  make(map[AreaMisc]*miscNode),
		subNodes:   make(map[SubArea]*subAreaNode),
		roomNodes:  make(map[Room]*roomNode),
		geomNodes:  make(map[Geometry]*geometryNode),
		unitNodes:  make(map[Unit]*unitNode),
		roomsByKey: make(map[string]Room),
	}
}

func (m *Manager) alloc() uintptr {
	m.next += 0x10
	return m.next
}

// AddArea creates an act container with an empty side-table.
//
// Postcondition: Returns a non-null Area whose AreaMisc links back to it.
func (m *Manager) AddArea(act int) Area {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := Area(m.alloc())
	misc := AreaMisc(m.alloc())
	m.areaNodes[a] = &areaNode{act: act, misc: misc}
	m.miscNodes[misc] = &miscNode{area: a}
	m.areas = append(m.areas, a)
	return a
}

// AddSubArea appends a subarea to a's subarea list.
//
// Precondition: a must have been returned by AddArea.
func (m *Manager) AddSubArea(a Area, id area.ID, bounds Rect, initialized bool) SubArea {
	m.mu.Lock()
	defer m.mu.Unlock()
	an := m.areaNodes[a]
	if an == nil {
		panic(fmt.Sprintf("world.Manager.AddSubArea: unknown area %#x", uintptr(a)))
	}
	mn := m.miscNodes[an.misc]
	s := SubArea(m.alloc())
	m.subNodes[s] = &subAreaNode{id: id, bounds: bounds, misc: an.misc, initialized: initialized}
	if mn.last == 0 {
		mn.first = s
	} else {
		m.subNodes[mn.last].next = s
	}
	mn.last = s
	return s
}

// AddRoom appends a room record to s. The room joins the visible room list
// immediately if s is initialized, otherwise when InitSubArea runs.
//
// Precondition: s must have been returned by AddSubArea; key must be unique or empty.
func (m *Manager) AddRoom(s SubArea, key string, bounds Rect, registered bool) Room {
	m.mu.Lock()
	defer m.mu.Unlock()
	sn := m.subNodes[s]
	if sn == nil {
		panic(fmt.Sprintf("world.Manager.AddRoom: unknown subarea %#x", uintptr(s)))
	}
	r := Room(m.alloc())
	g := Geometry(m.alloc())
	m.roomNodes[r] = &roomNode{key: key, subarea: s, bounds: bounds, geometry: g, registered: registered}
	m.geomNodes[g] = &geometryNode{room: r}
	if n := len(sn.rooms); n > 0 {
		m.roomNodes[sn.rooms[n-1]].next = r
	}
	sn.rooms = append(sn.rooms, r)
	if key != "" {
		m.roomsByKey[key] = r
	}
	return r
}

// AddNeighbor appends n to r's neighbor list. n may be 0 to model a null entry.
func (m *Manager) AddNeighbor(r, n Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rn := m.roomNodes[r]; rn != nil {
		rn.neighbors = append(rn.neighbors, n)
	}
}

// Link makes a and b neighbors of each other.
func (m *Manager) Link(a, b Room) {
	m.AddNeighbor(a, b)
	m.AddNeighbor(b, a)
}

// SetPlayer places a player unit in room r, replacing any existing player.
func (m *Manager) SetPlayer(r Room, valid bool) Unit {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := Unit(m.alloc())
	m.unitNodes[u] = &unitNode{valid: valid, room: r}
	m.player = u
	return u
}

// MovePlayer moves the current player to room r.
func (m *Manager) MovePlayer(r Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if un := m.unitNodes[m.player]; un != nil {
		un.room = r
	}
}

// ClearPlayer removes the local player, as when leaving a game.
func (m *Manager) ClearPlayer() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.player = 0
}

// SeverRoomSubArea nulls r's subarea back-reference.
func (m *Manager) SeverRoomSubArea(r Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rn := m.roomNodes[r]; rn != nil {
		rn.subarea = 0
	}
}

// SeverSubAreaMisc nulls s's side-table back-reference.
func (m *Manager) SeverSubAreaMisc(s SubArea) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sn := m.subNodes[s]; sn != nil {
		sn.misc = 0
	}
}

// SeverMiscArea nulls the area back-reference of a's side-table.
func (m *Manager) SeverMiscArea(a Area) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if an := m.areaNodes[a]; an != nil {
		if mn := m.miscNodes[an.misc]; mn != nil {
			mn.area = 0
		}
	}
}

// Areas returns all areas in creation order.
func (m *Manager) Areas() []Area {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Area(nil), m.areas...)
}

// Act returns the act index of a, or -1 if unknown.
func (m *Manager) Act(a Area) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if an := m.areaNodes[a]; an != nil {
		return an.act
	}
	return -1
}

// AllRooms returns every room record of s regardless of initialization.
func (m *Manager) AllRooms(s SubArea) []Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if sn := m.subNodes[s]; sn != nil {
		return append([]Room(nil), sn.rooms...)
	}
	return nil
}

// RoomByKey returns the room registered under key.
//
// Postcondition: Returns (room, true) if found, or (0, false) otherwise.
func (m *Manager) RoomByKey(key string) (Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.roomsByKey[key]
	return r, ok
}

// RoomKey returns the key r was created with.
func (m *Manager) RoomKey(r Room) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rn := m.roomNodes[r]; rn != nil {
		return rn.key
	}
	return ""
}

// Initialized reports whether s has had its room list populated.
func (m *Manager) Initialized(s SubArea) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sn := m.subNodes[s]
	return sn != nil && sn.initialized
}

// Registered reports whether r is registered with its area.
func (m *Manager) Registered(r Room) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rn := m.roomNodes[r]
	return rn != nil && rn.registered
}

// Revealed reports whether r's geometry has been revealed.
func (m *Manager) Revealed(r Room) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rn := m.roomNodes[r]
	if rn == nil {
		return false
	}
	gn := m.geomNodes[rn.geometry]
	return gn != nil && gn.revealed
}

// Calls returns a copy of the recorded routine invocations.
func (m *Manager) Calls() []Call {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Call(nil), m.calls...)
}

// CountCalls returns the number of recorded invocations of op.
func (m *Manager) CountCalls(op Op) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, c := range m.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// ResetCalls discards the recorded routine invocations.
func (m *Manager) ResetCalls() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

// AreaMisc implements Graph.
func (m *Manager) AreaMisc(a Area) AreaMisc {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if an := m.areaNodes[a]; an != nil {
		return an.misc
	}
	return 0
}

// MiscArea implements Graph.
func (m *Manager) MiscArea(misc AreaMisc) Area {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if mn := m.miscNodes[misc]; mn != nil {
		return mn.area
	}
	return 0
}

// MiscFirstSubArea implements Graph.
func (m *Manager) MiscFirstSubArea(misc AreaMisc) SubArea {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if mn := m.miscNodes[misc]; mn != nil {
		return mn.first
	}
	return 0
}

// SubAreaID implements Graph.
func (m *Manager) SubAreaID(s SubArea) area.ID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if sn := m.subNodes[s]; sn != nil {
		return sn.id
	}
	return area.None
}

// SubAreaNext implements Graph.
func (m *Manager) SubAreaNext(s SubArea) SubArea {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if sn := m.subNodes[s]; sn != nil {
		return sn.next
	}
	return 0
}

// SubAreaMisc implements Graph.
func (m *Manager) SubAreaMisc(s SubArea) AreaMisc {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if sn := m.subNodes[s]; sn != nil {
		return sn.misc
	}
	return 0
}

// SubAreaFirstRoom implements Graph.
func (m *Manager) SubAreaFirstRoom(s SubArea) Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sn := m.subNodes[s]
	if sn == nil || !sn.initialized || len(sn.rooms) == 0 {
		return 0
	}
	return sn.rooms[0]
}

// SubAreaBounds implements Graph.
func (m *Manager) SubAreaBounds(s SubArea) Rect {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if sn := m.subNodes[s]; sn != nil {
		return sn.bounds
	}
	return Rect{}
}

// RoomNext implements Graph.
func (m *Manager) RoomNext(r Room) Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rn := m.roomNodes[r]; rn != nil {
		return rn.next
	}
	return 0
}

// RoomNeighbors implements Graph.
func (m *Manager) RoomNeighbors(r Room) []Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rn := m.roomNodes[r]; rn != nil {
		return append([]Room(nil), rn.neighbors...)
	}
	return nil
}

// RoomSubArea implements Graph.
func (m *Manager) RoomSubArea(r Room) SubArea {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rn := m.roomNodes[r]; rn != nil {
		return rn.subarea
	}
	return 0
}

// RoomGeometry implements Graph.
func (m *Manager) RoomGeometry(r Room) Geometry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rn := m.roomNodes[r]; rn != nil && rn.registered {
		return rn.geometry
	}
	return 0
}

// RoomBounds implements Graph.
func (m *Manager) RoomBounds(r Room) Rect {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rn := m.roomNodes[r]; rn != nil {
		return rn.bounds
	}
	return Rect{}
}

// LocalPlayer implements Graph.
func (m *Manager) LocalPlayer() Unit {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.player
}

// UnitIsValid implements Graph.
func (m *Manager) UnitIsValid(u Unit) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	un := m.unitNodes[u]
	return un != nil && un.valid
}

// UnitSubArea implements Graph.
func (m *Manager) UnitSubArea(u Unit) SubArea {
	m.mu.RLock()
	defer m.mu.RUnlock()
	un := m.unitNodes[u]
	if un == nil {
		return 0
	}
	if rn := m.roomNodes[un.room]; rn != nil {
		return rn.subarea
	}
	return 0
}

// InitSubArea implements Routines.
func (m *Manager) InitSubArea(s SubArea) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Op: OpInitSubArea, SubArea: s})
	if sn := m.subNodes[s]; sn != nil {
		sn.initialized = true
	}
}

// RegisterRoom implements Routines.
func (m *Manager) RegisterRoom(a Area, id area.ID, x, y uint32, _ Geometry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.lookupLocked(a, id, x, y)
	m.calls = append(m.calls, Call{Op: OpRegisterRoom, Area: a, AreaID: id, Room: r})
	if rn := m.roomNodes[r]; rn != nil {
		rn.registered = true
	}
}

// UnregisterRoom implements Routines.
func (m *Manager) UnregisterRoom(a Area, id area.ID, x, y uint32, _ Geometry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.lookupLocked(a, id, x, y)
	m.calls = append(m.calls, Call{Op: OpUnregisterRoom, Area: a, AreaID: id, Room: r})
	if rn := m.roomNodes[r]; rn != nil {
		rn.registered = false
	}
}

// RevealRoom implements Routines.
func (m *Manager) RevealRoom(g Geometry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	gn := m.geomNodes[g]
	var r Room
	if gn != nil {
		gn.revealed = true
		r = gn.room
	}
	m.calls = append(m.calls, Call{Op: OpRevealRoom, Room: r})
}

// lookupLocked finds the room at (x, y) of subarea id within area a, the way
// the host resolves a room data request against its act.
func (m *Manager) lookupLocked(a Area, id area.ID, x, y uint32) Room {
	an := m.areaNodes[a]
	if an == nil {
		return 0
	}
	mn := m.miscNodes[an.misc]
	if mn == nil {
		return 0
	}
	for s := mn.first; s != 0; s = m.subNodes[s].next {
		sn := m.subNodes[s]
		if sn.id != id {
			continue
		}
		for _, r := range sn.rooms {
			b := m.roomNodes[r].bounds
			if b.X == x && b.Y == y {
				return r
			}
		}
	}
	return 0
}
