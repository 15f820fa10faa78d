package main

import (
	"bytes"
	"testing"

	goccy "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/d2reveal/internal/game/area"
	"github.com/cory-johannsen/d2reveal/internal/game/world"
	"github.com/cory-johannsen/d2reveal/internal/reveal"
)

func loadAct1(t *testing.T) *world.Manager {
	t.Helper()
	snap, err := world.LoadSnapshotFromFile("testdata/act1.yaml")
	require.NoError(t, err)
	return snap.Build()
}

func room(t *testing.T, m *world.Manager, key string) world.Room {
	t.Helper()
	r, ok := m.RoomByKey(key)
	require.True(t, ok, "room %q", key)
	return r
}

func revealedKeys(m *world.Manager) []string {
	var out []string
	for _, a := range m.Areas() {
		for _, s := range world.SubAreas(m, a) {
			for _, r := range m.AllRooms(s) {
				if m.Revealed(r) {
					out = append(out, m.RoomKey(r))
				}
			}
		}
	}
	return out
}

func TestSimulate_SingleTick(t *testing.T) {
	m := loadAct1(t)
	res, err := simulate(m, simOptions{Ticks: 1, Act: -1}, zaptest.NewLogger(t))
	require.NoError(t, err)

	require.Len(t, res.Ticks, 1)
	assert.Equal(t, reveal.OutcomeRevealed, res.Ticks[0].Outcome)
	assert.Equal(t, 4, res.Total.Revealed)
	assert.Equal(t, 2, res.Total.Neighbors)
	assert.Equal(t, 2, res.Total.Registered)

	want := []string{"camp", "moor-1", "moor-2", "plains-1"}
	if diff := cmp.Diff(want, revealedKeys(m)); diff != "" {
		t.Errorf("revealed rooms mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, m.Initialized(m.RoomSubArea(room(t, m, "den-1"))), "uninitialized neighbor subarea left alone")
	assert.True(t, m.Registered(room(t, m, "camp")))
	assert.False(t, m.Registered(room(t, m, "moor-1")))
}

func TestSimulate_Path(t *testing.T) {
	m := loadAct1(t)
	res, err := simulate(m, simOptions{
		Path: []string{"moor-1", "moor-1", "den-1", leaveGame, "moor-1"},
		Act:  -1,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)

	var outcomes []reveal.Outcome
	for _, tr := range res.Ticks {
		outcomes = append(outcomes, tr.Outcome)
	}
	want := []reveal.Outcome{
		reveal.OutcomeRevealed,
		reveal.OutcomeAlreadyRevealed,
		reveal.OutcomeRevealed,
		reveal.OutcomeReset,
		reveal.OutcomeRevealed,
	}
	assert.Equal(t, want, outcomes)
	assert.Equal(t, []area.ID{area.BloodMoor}, res.Session.IDs())
	assert.True(t, m.Revealed(room(t, m, "den-1")))
	assert.Equal(t, 1, res.Ticks[2].Stats.Initialized)
}

func TestSimulate_SkipTowns(t *testing.T) {
	m := loadAct1(t)
	res, err := simulate(m, simOptions{Path: []string{"camp"}, Act: -1, SkipTowns: true}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, reveal.OutcomeSkippedTown, res.Ticks[0].Outcome)
	assert.Empty(t, revealedKeys(m))
}

func TestSimulate_Area(t *testing.T) {
	m := loadAct1(t)
	res, err := simulate(m, simOptions{Area: "blood moor", Act: -1}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Empty(t, res.Ticks)
	assert.Equal(t, 1, res.Total.SubAreas)
	assert.Equal(t, 4, res.Total.Revealed)
	assert.True(t, res.Session.Empty())
}

func TestSimulate_Act(t *testing.T) {
	m := loadAct1(t)
	res, err := simulate(m, simOptions{Act: 0}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Total.SubAreas)
	assert.Equal(t, 1, res.Total.Initialized)
	want := []string{"camp", "moor-1", "moor-2", "plains-1", "den-1"}
	if diff := cmp.Diff(want, revealedKeys(m)); diff != "" {
		t.Errorf("revealed rooms mismatch (-want +got):\n%s", diff)
	}
	for _, key := range []string{"moor-1", "plains-1", "den-1"} {
		assert.False(t, m.Registered(room(t, m, key)), "%s registration restored", key)
	}
}

func TestSimulate_Errors(t *testing.T) {
	logger := zaptest.NewLogger(t)
	for name, opts := range map[string]simOptions{
		"unknown area": {Area: "Nowhere", Act: -1},
		"absent area":  {Area: "Tristram", Act: -1},
		"absent act":   {Act: 3},
		"unknown room": {Path: []string{"moor-9"}, Act: -1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := simulate(loadAct1(t), opts, logger)
			assert.Error(t, err)
		})
	}
}

func TestPrintReport(t *testing.T) {
	m := loadAct1(t)
	res, err := simulate(m, simOptions{Ticks: 2, Act: -1}, zaptest.NewLogger(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	printReport(&buf, m, res)
	out := buf.String()
	assert.Contains(t, out, "Outcome")
	assert.Contains(t, out, "already_revealed")
	assert.Contains(t, out, "Blood Moor")
	assert.Contains(t, out, "den-1")
	assert.Contains(t, out, "Extent")
	assert.Contains(t, out, "(48,0 64x64)", "Blood Moor subarea extent")
	assert.Contains(t, out, "session "+res.Session.ID().String()+": [Blood Moor]")
	assert.Contains(t, out, "4 rooms revealed")
	assert.Contains(t, out, "1 subarea,")
}

func TestWriteJSON(t *testing.T) {
	m := loadAct1(t)
	res, err := simulate(m, simOptions{Ticks: 1, Act: -1}, zaptest.NewLogger(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, m, res))

	var rep jsonReport
	require.NoError(t, goccy.Unmarshal(buf.Bytes(), &rep))
	assert.Equal(t, res.Session.ID().String(), rep.Session)
	assert.Equal(t, []string{"Blood Moor"}, rep.Areas)
	require.Len(t, rep.Ticks, 1)
	assert.Equal(t, "revealed", rep.Ticks[0].Outcome)
	assert.Len(t, rep.Rooms, 5)
	assert.Equal(t, 4, rep.Total.Revealed)
	for _, r := range rep.Rooms {
		assert.Equal(t, r.Key != "den-1", r.Revealed, r.Key)
		if r.Area == "Blood Moor" {
			assert.Equal(t, "(48,0 64x64)", r.Extent, r.Key)
		}
	}
	assert.Contains(t, buf.String(), `"subareas":`)
	assert.NotContains(t, buf.String(), `"SubAreas"`, "stats keys are snake_case")
}
