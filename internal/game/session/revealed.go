// Package session tracks which areas have been revealed during the current
// game session.
//
// A Revealed set is created when the agent attaches to the host, reset each
// time the local player disappears (the player left the game), and dropped
// when the agent detaches. Nothing is persisted across attaches.
package session

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"github.com/cory-johannsen/d2reveal/internal/game/area"
)

// Revealed is the set of AreaIds already revealed in the current session.
// All methods are safe for concurrent use.
type Revealed struct {
	mu      sync.RWMutex
	id      uuid.UUID
	started time.Time
	areas   mapset.Set[area.ID]
}

// New creates an empty session.
//
// Postcondition: Returns a Revealed with a fresh session id and no members.
func New() *Revealed {
	return &Revealed{
		id:      uuid.New(),
		started: time.Now(),
		areas:   mapset.New[area.ID](),
	}
}

// ID returns the identifier of the current session. It changes on every Reset.
func (r *Revealed) ID() uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.id
}

// Started returns when the current session began.
func (r *Revealed) Started() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.started
}

// Contains reports whether id has been revealed this session.
func (r *Revealed) Contains(id area.ID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.areas.Has(id)
}

// Add records id as revealed.
//
// Postcondition: Returns true if id was not already a member.
func (r *Revealed) Add(id area.ID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.areas.Has(id) {
		return false
	}
	r.areas.Put(id)
	return true
}

// Len returns the number of revealed areas.
func (r *Revealed) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.areas.Size()
}

// Empty reports whether no area has been revealed this session.
func (r *Revealed) Empty() bool {
	return r.Len() == 0
}

// Reset ends the current session and starts a new, empty one.
//
// Postcondition: The set is empty and ID returns a new value.
func (r *Revealed) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.areas = mapset.New[area.ID]()
	r.id = uuid.New()
	r.started = time.Now()
}

// IDs returns the revealed areas in ascending order.
func (r *Revealed) IDs() []area.ID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]area.ID, 0, r.areas.Size())
	r.areas.Each(func(id area.ID) {
		out = append(out, id)
	})
	slices.Sort(out)
	return out
}
