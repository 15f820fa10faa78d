package reveal

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/d2reveal/internal/game/world"
)

// Stats summarizes what a traversal did. It is diagnostic only.
type Stats struct {
	// SubAreas is the number of subareas walked.
	SubAreas int `json:"subareas"`
	// Initialized is the number of subareas this traversal initialized.
	Initialized int `json:"initialized"`
	// Rooms is the number of room records visited, neighbors included.
	Rooms int `json:"rooms"`
	// Revealed is the number of reveal routine invocations.
	Revealed int `json:"revealed"`
	// Registered is the number of transient registrations performed and undone.
	Registered int `json:"registered"`
	// Neighbors is the number of cross-boundary neighbors visited.
	Neighbors int `json:"neighbors"`
	// Skipped is the number of branches abandoned on a missing link.
	Skipped int `json:"skipped"`
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.SubAreas += o.SubAreas
	s.Initialized += o.Initialized
	s.Rooms += o.Rooms
	s.Revealed += o.Revealed
	s.Registered += o.Registered
	s.Neighbors += o.Neighbors
	s.Skipped += o.Skipped
}

// Engine reveals rooms, subareas and areas of a host world graph.
//
// Engine keeps no memory of earlier calls; deduplication across ticks is the
// Tracker's job.
type Engine struct {
	graph    world.Graph
	routines world.Routines
	reg      *Registrar
	logger   *zap.Logger
}

// NewEngine creates an Engine over the given host binding.
//
// Precondition: host and logger must be non-nil.
func NewEngine(host world.Host, logger *zap.Logger) *Engine {
	return &Engine{
		graph:    host,
		routines: host,
		reg:      NewRegistrar(host, host),
		logger:   logger,
	}
}

// RevealRoom reveals a single room in the context of area a, registering it
// transiently if needed.
//
// Postcondition: room's registration state equals its state before the call.
func (e *Engine) RevealRoom(room world.Room, a world.Area) Stats {
	var st Stats
	e.revealRoom(room, a, &st)
	return st
}

func (e *Engine) revealRoom(room world.Room, a world.Area, st *Stats) {
	sub := e.graph.RoomSubArea(room)
	if sub == 0 {
		st.Skipped++
		return
	}
	id := e.graph.SubAreaID(sub)
	st.Rooms++

	owned := e.reg.Register(room, a, id)
	if owned {
		st.Registered++
	}
	if g := e.graph.RoomGeometry(room); g != 0 && e.reg.IsRegistered(room) {
		e.routines.RevealRoom(g)
		st.Revealed++
	}
	if owned {
		e.reg.Unregister(room, a, id)
	}
}

// RevealSubArea reveals every room of s and, one hop out, every neighbor room
// that lies in a different, already initialized subarea.
//
// The walk is performed in the context of a; when a is null the subarea's own
// area is used. Nothing is revealed if s's area chain is broken.
func (e *Engine) RevealSubArea(s world.SubArea, a world.Area) Stats {
	var st Stats
	e.revealSubArea(s, a, &st)
	return st
}

func (e *Engine) revealSubArea(s world.SubArea, a world.Area, st *Stats) {
	if s == 0 {
		return
	}
	st.SubAreas++
	if EnsureInitialized(e.graph, e.routines, s) {
		st.Initialized++
	}

	own := world.AreaOf(e.graph, s)
	if own == 0 {
		st.Skipped++
		e.logger.Debug("subarea has no area, skipping",
			zap.Stringer("area_id", e.graph.SubAreaID(s)),
		)
		return
	}
	if a == 0 {
		a = own
	}

	id := e.graph.SubAreaID(s)
	for _, room := range world.Rooms(e.graph, s) {
		e.revealRoom(room, a, st)
		for _, near := range e.graph.RoomNeighbors(room) {
			if near == 0 {
				continue
			}
			nearSub := e.graph.RoomSubArea(near)
			if nearSub == 0 {
				st.Skipped++
				continue
			}
			if e.graph.SubAreaID(nearSub) == id || !IsInitialized(e.graph, nearSub) {
				continue
			}
			nearArea := world.AreaOf(e.graph, nearSub)
			if nearArea == 0 {
				st.Skipped++
				continue
			}
			st.Neighbors++
			e.revealRoom(near, nearArea, st)
		}
	}
}

// RevealArea reveals every subarea of a in list order.
func (e *Engine) RevealArea(a world.Area) Stats {
	var st Stats
	misc := e.graph.AreaMisc(a)
	if misc == 0 {
		st.Skipped++
		return st
	}
	for s := e.graph.MiscFirstSubArea(misc); s != 0; s = e.graph.SubAreaNext(s) {
		e.revealSubArea(s, a, &st)
	}
	e.logger.Debug("revealed area",
		zap.Int("subareas", st.SubAreas),
		zap.Int("rooms", st.Rooms),
		zap.Int("revealed", st.Revealed),
	)
	return st
}
