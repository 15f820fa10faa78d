package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/d2reveal/internal/game/area"
	"github.com/cory-johannsen/d2reveal/internal/game/world"
)

func newEngine(t *testing.T, m *world.Manager) *Engine {
	t.Helper()
	return NewEngine(m, zaptest.NewLogger(t))
}

func roomAt(x uint32) world.Rect {
	return world.Rect{X: x, Width: 8, Height: 8}
}

func TestEnsureInitialized_Idempotent(t *testing.T) {
	m := world.NewManager()
	a := m.AddArea(0)
	s := m.AddSubArea(a, area.DenOfEvil, world.Rect{}, false)
	m.AddRoom(s, "r1", roomAt(0), false)

	assert.True(t, EnsureInitialized(m, m, s))
	head := m.SubAreaFirstRoom(s)
	require.NotZero(t, head)

	assert.False(t, EnsureInitialized(m, m, s))
	assert.Equal(t, head, m.SubAreaFirstRoom(s))
	assert.Equal(t, 1, m.CountCalls(world.OpInitSubArea))
}

func TestRegistrar_RegisterUnregister(t *testing.T) {
	m := world.NewManager()
	a := m.AddArea(0)
	s := m.AddSubArea(a, area.BloodMoor, world.Rect{}, true)
	r := m.AddRoom(s, "r", roomAt(24), false)
	reg := NewRegistrar(m, m)

	assert.False(t, reg.IsRegistered(r))
	assert.True(t, reg.Register(r, a, area.BloodMoor))
	assert.True(t, reg.IsRegistered(r))
	assert.False(t, reg.Register(r, a, area.BloodMoor), "already registered")
	assert.Equal(t, 1, m.CountCalls(world.OpRegisterRoom))

	reg.Unregister(r, a, area.BloodMoor)
	assert.False(t, reg.IsRegistered(r))
	reg.Unregister(r, a, area.BloodMoor)
	assert.Equal(t, 1, m.CountCalls(world.OpUnregisterRoom), "unregister is idempotent")
}

func TestRevealRoom_TransientRegistration(t *testing.T) {
	m := world.NewManager()
	a := m.AddArea(0)
	s := m.AddSubArea(a, area.BloodMoor, world.Rect{}, true)
	r := m.AddRoom(s, "r", roomAt(0), false)
	e := newEngine(t, m)

	st := e.RevealRoom(r, a)
	assert.True(t, m.Revealed(r))
	assert.False(t, m.Registered(r), "engine must undo its own registration")
	assert.Equal(t, Stats{Rooms: 1, Revealed: 1, Registered: 1}, st)

	calls := m.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, world.OpRegisterRoom, calls[0].Op)
	assert.Equal(t, world.OpRevealRoom, calls[1].Op)
	assert.Equal(t, world.OpUnregisterRoom, calls[2].Op)
	assert.Equal(t, calls[0].Area, calls[2].Area)
	assert.Equal(t, calls[0].AreaID, calls[2].AreaID)
}

func TestRevealRoom_AlreadyRegisteredStaysRegistered(t *testing.T) {
	m := world.NewManager()
	a := m.AddArea(0)
	s := m.AddSubArea(a, area.BloodMoor, world.Rect{}, true)
	r := m.AddRoom(s, "r", roomAt(0), true)
	e := newEngine(t, m)

	e.RevealRoom(r, a)
	assert.True(t, m.Revealed(r))
	assert.True(t, m.Registered(r))
	assert.Equal(t, 0, m.CountCalls(world.OpRegisterRoom))
	assert.Equal(t, 0, m.CountCalls(world.OpUnregisterRoom))
}

func TestRevealRoom_MissingSubAreaAborts(t *testing.T) {
	m := world.NewManager()
	a := m.AddArea(0)
	s := m.AddSubArea(a, area.BloodMoor, world.Rect{}, true)
	r := m.AddRoom(s, "r", roomAt(0), false)
	m.SeverRoomSubArea(r)
	e := newEngine(t, m)

	st := e.RevealRoom(r, a)
	assert.Equal(t, 1, st.Skipped)
	assert.Empty(t, m.Calls())
	assert.False(t, m.Revealed(r))
}

func TestRevealRoom_RegistrationRejected(t *testing.T) {
	m := world.NewManager()
	a := m.AddArea(0)
	other := m.AddArea(1)
	s := m.AddSubArea(a, area.BloodMoor, world.Rect{}, true)
	r := m.AddRoom(s, "r", roomAt(0), false)
	e := newEngine(t, m)

	// The host cannot find the room in the wrong act, so nothing becomes revealable.
	st := e.RevealRoom(r, other)
	assert.False(t, m.Revealed(r))
	assert.False(t, m.Registered(r))
	assert.Equal(t, 0, st.Revealed)
	assert.Equal(t, 0, m.CountCalls(world.OpUnregisterRoom))
}

func TestRevealSubArea_InitializesAndReveals(t *testing.T) {
	m := world.NewManager()
	a := m.AddArea(0)
	s := m.AddSubArea(a, area.CaveLevel1, world.Rect{}, false)
	r1 := m.AddRoom(s, "r1", roomAt(0), false)
	r2 := m.AddRoom(s, "r2", roomAt(8), false)
	e := newEngine(t, m)

	st := e.RevealSubArea(s, a)
	assert.True(t, m.Initialized(s))
	assert.True(t, m.Revealed(r1))
	assert.True(t, m.Revealed(r2))
	assert.False(t, m.Registered(r1))
	assert.False(t, m.Registered(r2))
	assert.Equal(t, 1, st.Initialized)
	assert.Equal(t, 2, st.Revealed)
}

func TestRevealSubArea_NullAreaUsesOwnArea(t *testing.T) {
	m := world.NewManager()
	a := m.AddArea(0)
	s := m.AddSubArea(a, area.CaveLevel1, world.Rect{}, true)
	r := m.AddRoom(s, "r", roomAt(0), false)
	e := newEngine(t, m)

	e.RevealSubArea(s, 0)
	assert.True(t, m.Revealed(r))
	calls := m.Calls()
	require.NotEmpty(t, calls)
	assert.Equal(t, a, calls[0].Area)
}

func TestRevealSubArea_BrokenAreaChainAborts(t *testing.T) {
	m := world.NewManager()
	a := m.AddArea(0)
	s := m.AddSubArea(a, area.CaveLevel1, world.Rect{}, false)
	r := m.AddRoom(s, "r", roomAt(0), false)
	m.SeverSubAreaMisc(s)
	e := newEngine(t, m)

	st := e.RevealSubArea(s, a)
	assert.False(t, m.Revealed(r))
	assert.Equal(t, 1, st.Skipped)
	assert.Equal(t, 1, m.CountCalls(world.OpInitSubArea), "initialization precedes the area check")
	assert.Equal(t, 0, m.CountCalls(world.OpRegisterRoom))
}

func TestRevealSubArea_SkipsRoomWithoutSubAreaButContinues(t *testing.T) {
	m := world.NewManager()
	a := m.AddArea(0)
	s := m.AddSubArea(a, area.CaveLevel1, world.Rect{}, true)
	broken := m.AddRoom(s, "broken", roomAt(0), false)
	ok := m.AddRoom(s, "ok", roomAt(8), false)
	m.SeverRoomSubArea(broken)
	e := newEngine(t, m)

	st := e.RevealSubArea(s, a)
	assert.False(t, m.Revealed(broken))
	assert.True(t, m.Revealed(ok), "siblings continue after a missing link")
	assert.Equal(t, 1, st.Skipped)
}

func TestRevealSubArea_CrossBoundaryNeighbor(t *testing.T) {
	m := world.NewManager()
	act1 := m.AddArea(0)
	act2 := m.AddArea(1)
	s := m.AddSubArea(act1, area.MooMooFarm, world.Rect{}, true)
	n := m.AddSubArea(act2, area.LutGholein, world.Rect{}, true)
	r := m.AddRoom(s, "r", roomAt(0), false)
	near := m.AddRoom(n, "near", roomAt(0), false)
	m.Link(r, near)
	e := newEngine(t, m)

	st := e.RevealSubArea(s, act1)
	assert.True(t, m.Revealed(near))
	assert.False(t, m.Registered(near))
	assert.Equal(t, 1, st.Neighbors)

	var regs []world.Call
	for _, c := range m.Calls() {
		if c.Op == world.OpRegisterRoom && c.Room == near {
			regs = append(regs, c)
		}
	}
	require.Len(t, regs, 1)
	assert.Equal(t, act2, regs[0].Area, "neighbor registers against its own area")
	assert.Equal(t, area.LutGholein, regs[0].AreaID)
}

func TestRevealSubArea_NeighborSkipRules(t *testing.T) {
	m := world.NewManager()
	a := m.AddArea(0)
	s := m.AddSubArea(a, area.ColdPlains, world.Rect{}, true)
	uninit := m.AddSubArea(a, area.CaveLevel1, world.Rect{}, false)
	orphanSub := m.AddSubArea(a, area.BurialGrounds, world.Rect{}, true)
	severed := m.AddSubArea(a, area.StonyField, world.Rect{}, true)

	r := m.AddRoom(s, "r", roomAt(0), false)
	inUninit := m.AddRoom(uninit, "cave", roomAt(0), false)
	orphan := m.AddRoom(orphanSub, "orphan", roomAt(0), false)
	inSevered := m.AddRoom(severed, "field", roomAt(0), false)
	m.SeverRoomSubArea(orphan)
	m.SeverSubAreaMisc(severed)

	m.AddNeighbor(r, 0)
	m.AddNeighbor(r, inUninit)
	m.AddNeighbor(r, orphan)
	m.AddNeighbor(r, inSevered)
	e := newEngine(t, m)

	st := e.RevealSubArea(s, a)
	assert.True(t, m.Revealed(r))
	assert.False(t, m.Initialized(uninit), "neighbors are never force-initialized")
	assert.False(t, m.Revealed(inUninit))
	assert.False(t, m.Revealed(orphan))
	assert.False(t, m.Revealed(inSevered))
	assert.Equal(t, 0, st.Neighbors)
	assert.Equal(t, 2, st.Skipped)
	assert.Equal(t, 0, m.CountCalls(world.OpInitSubArea))
}

func TestRevealSubArea_SameAreaNeighborNotRevisited(t *testing.T) {
	m := world.NewManager()
	a := m.AddArea(0)
	s := m.AddSubArea(a, area.BlackMarsh, world.Rect{}, true)
	r1 := m.AddRoom(s, "r1", roomAt(0), false)
	r2 := m.AddRoom(s, "r2", roomAt(8), false)
	m.Link(r1, r2)
	e := newEngine(t, m)

	e.RevealSubArea(s, a)
	assert.Equal(t, 2, m.CountCalls(world.OpRevealRoom))
	assert.Equal(t, 2, m.CountCalls(world.OpRegisterRoom))
	for _, c := range m.Calls() {
		if c.Op == world.OpRevealRoom {
			assert.Contains(t, []world.Room{r1, r2}, c.Room)
		}
	}
}

func TestRevealSubArea_DepthBound(t *testing.T) {
	m := world.NewManager()
	a := m.AddArea(0)
	sS := m.AddSubArea(a, area.DarkWood, world.Rect{}, true)
	sN := m.AddSubArea(a, area.BlackMarsh, world.Rect{}, true)
	sM := m.AddSubArea(a, area.ForgottenTower, world.Rect{}, false)
	rS := m.AddRoom(sS, "s", roomAt(0), false)
	rN := m.AddRoom(sN, "n", roomAt(0), false)
	rN2 := m.AddRoom(sN, "n2", roomAt(8), false)
	rM := m.AddRoom(sM, "m", roomAt(0), false)
	m.Link(rS, rN)
	m.Link(rN, rM)
	e := newEngine(t, m)

	e.RevealSubArea(sS, a)
	assert.True(t, m.Revealed(rS))
	assert.True(t, m.Revealed(rN), "one hop across the boundary")
	assert.False(t, m.Revealed(rN2), "only adjacent rooms of N are revealed")
	assert.False(t, m.Initialized(sM))
	assert.False(t, m.Revealed(rM))
}

func TestRevealSubArea_DepthBoundWithInitializedSecondHop(t *testing.T) {
	m := world.NewManager()
	a := m.AddArea(0)
	sS := m.AddSubArea(a, area.DarkWood, world.Rect{}, true)
	sN := m.AddSubArea(a, area.BlackMarsh, world.Rect{}, true)
	sM := m.AddSubArea(a, area.TamoeHighland, world.Rect{}, true)
	rS := m.AddRoom(sS, "s", roomAt(0), false)
	rN := m.AddRoom(sN, "n", roomAt(0), false)
	rM := m.AddRoom(sM, "m", roomAt(0), false)
	m.Link(rS, rN)
	m.Link(rN, rM)
	e := newEngine(t, m)

	e.RevealSubArea(sS, a)
	assert.True(t, m.Revealed(rN))
	assert.False(t, m.Revealed(rM), "neighbors of neighbors are never visited")
}

func TestRevealSubArea_TownDoesNotTouchUnrelatedSubArea(t *testing.T) {
	m := world.NewManager()
	a := m.AddArea(0)
	s1 := m.AddSubArea(a, area.RogueEncampment, world.Rect{}, true)
	s2 := m.AddSubArea(a, area.BloodMoor, world.Rect{}, false)
	t1 := m.AddRoom(s1, "t1", roomAt(0), false)
	t2 := m.AddRoom(s1, "t2", roomAt(8), false)
	m.Link(t1, t2)
	far := m.AddRoom(s2, "far", roomAt(0), false)
	e := newEngine(t, m)

	e.RevealSubArea(s1, a)
	assert.True(t, m.Revealed(t1))
	assert.True(t, m.Revealed(t2))
	assert.False(t, m.Initialized(s2))
	assert.False(t, m.Revealed(far))
	for _, c := range m.Calls() {
		assert.NotEqual(t, s2, c.SubArea)
		assert.NotEqual(t, far, c.Room)
	}
}

func TestRevealArea_WalksAllSubAreas(t *testing.T) {
	m := world.NewManager()
	a := m.AddArea(3)
	s1 := m.AddSubArea(a, area.ThePandemoniumFortress, world.Rect{}, true)
	s2 := m.AddSubArea(a, area.OuterSteppes, world.Rect{}, false)
	s3 := m.AddSubArea(a, area.PlainsOfDespair, world.Rect{}, false)
	r1 := m.AddRoom(s1, "r1", roomAt(0), false)
	r2 := m.AddRoom(s2, "r2", roomAt(0), false)
	r3 := m.AddRoom(s3, "r3", roomAt(0), false)
	e := newEngine(t, m)

	st := e.RevealArea(a)
	assert.Equal(t, 3, st.SubAreas)
	assert.Equal(t, 2, st.Initialized)
	for _, r := range []world.Room{r1, r2, r3} {
		assert.True(t, m.Revealed(r))
		assert.False(t, m.Registered(r))
	}

	var inits []world.SubArea
	for _, c := range m.Calls() {
		if c.Op == world.OpInitSubArea {
			inits = append(inits, c.SubArea)
		}
	}
	assert.Equal(t, []world.SubArea{s2, s3}, inits, "subareas are walked in list order")
}

func TestRevealArea_BrokenSideTable(t *testing.T) {
	m := world.NewManager()
	e := newEngine(t, m)
	st := e.RevealArea(0)
	assert.Equal(t, 1, st.Skipped)
	assert.Empty(t, m.Calls())
}

func TestStatsAdd(t *testing.T) {
	s := Stats{Rooms: 1, Revealed: 2}
	s.Add(Stats{Rooms: 3, Skipped: 1, SubAreas: 1})
	assert.Equal(t, Stats{Rooms: 4, Revealed: 2, Skipped: 1, SubAreas: 1}, s)
}
