package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gertd/go-pluralize"
	goccy "github.com/goccy/go-json"
	"github.com/rodaine/table"
	"go.uber.org/zap"

	"github.com/cory-johannsen/d2reveal/internal/game/area"
	"github.com/cory-johannsen/d2reveal/internal/game/session"
	"github.com/cory-johannsen/d2reveal/internal/game/world"
	"github.com/cory-johannsen/d2reveal/internal/reveal"
)

// leaveGame in a player path clears the local player.
const leaveGame = "-"

type simOptions struct {
	Ticks     int
	Path      []string
	Area      string
	Act       int
	SkipTowns bool
}

type tickResult struct {
	Tick    int
	Room    string
	Outcome reveal.Outcome
	Stats   reveal.Stats
}

type simResult struct {
	Ticks   []tickResult
	Total   reveal.Stats
	Session *session.Revealed
}

// simulate runs either an area-wide reveal or a sequence of tracker ticks.
//
// Postcondition: Returns the per-tick outcomes and accumulated stats, or an
// error if a named area, act or room does not exist.
func simulate(m *world.Manager, opts simOptions, logger *zap.Logger) (simResult, error) {
	engine := reveal.NewEngine(m, logger)
	res := simResult{Session: session.New()}

	switch {
	case opts.Area != "":
		id, err := area.Parse(opts.Area)
		if err != nil {
			return simResult{}, err
		}
		found := false
		for _, a := range m.Areas() {
			for _, s := range world.SubAreas(m, a) {
				if m.SubAreaID(s) == id {
					found = true
					res.Total.Add(engine.RevealSubArea(s, a))
				}
			}
		}
		if !found {
			return simResult{}, fmt.Errorf("no subarea for area %s", id)
		}
		return res, nil

	case opts.Act >= 0:
		found := false
		for _, a := range m.Areas() {
			if m.Act(a) == opts.Act {
				found = true
				res.Total.Add(engine.RevealArea(a))
			}
		}
		if !found {
			return simResult{}, fmt.Errorf("no area for act %d", opts.Act)
		}
		return res, nil
	}

	tracker := reveal.NewTracker(m, engine, res.Session, reveal.TrackerOptions{SkipTowns: opts.SkipTowns}, logger)
	n := max(opts.Ticks, len(opts.Path))
	for i := 0; i < n; i++ {
		room := ""
		if i < len(opts.Path) {
			room = opts.Path[i]
			if room == leaveGame {
				m.ClearPlayer()
			} else {
				r, ok := m.RoomByKey(room)
				if !ok {
					return simResult{}, fmt.Errorf("path step %d: unknown room %q", i, room)
				}
				m.SetPlayer(r, true)
			}
		}
		out, st := tracker.Tick()
		res.Ticks = append(res.Ticks, tickResult{Tick: i, Room: room, Outcome: out, Stats: st})
		res.Total.Add(st)
	}
	return res, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// printReport writes the tick log, the per-room state and the session set.
func printReport(w io.Writer, m *world.Manager, res simResult) {
	if len(res.Ticks) > 0 {
		t := table.New("Tick", "Room", "Outcome", "Revealed", "Neighbors", "Registered", "Skipped").WithWriter(w)
		for _, tr := range res.Ticks {
			t.AddRow(tr.Tick, tr.Room, tr.Outcome, tr.Stats.Revealed, tr.Stats.Neighbors, tr.Stats.Registered, tr.Stats.Skipped)
		}
		t.Print()
		fmt.Fprintln(w)
	}

	t := table.New("Act", "Area", "Initialized", "Extent", "Room", "Bounds", "Registered", "Revealed").WithWriter(w)
	for _, a := range m.Areas() {
		for _, s := range world.SubAreas(m, a) {
			rooms := m.AllRooms(s)
			extent := m.SubAreaBounds(s)
			if len(rooms) == 0 {
				t.AddRow(m.Act(a), m.SubAreaID(s), yesNo(m.Initialized(s)), extent, "", "", "", "")
				continue
			}
			for _, r := range rooms {
				t.AddRow(m.Act(a), m.SubAreaID(s), yesNo(m.Initialized(s)), extent, m.RoomKey(r), m.RoomBounds(r), yesNo(m.Registered(r)), yesNo(m.Revealed(r)))
			}
		}
	}
	t.Print()
	fmt.Fprintln(w)

	names := make([]string, 0, res.Session.Len())
	for _, id := range res.Session.IDs() {
		names = append(names, id.String())
	}
	fmt.Fprintf(w, "session %s: [%s]\n", res.Session.ID(), strings.Join(names, ", "))

	p := pluralize.NewClient()
	fmt.Fprintf(w, "total: %s, %s revealed, %s, %s, %d skipped\n",
		p.Pluralize("subarea", res.Total.SubAreas, true),
		p.Pluralize("room", res.Total.Revealed, true),
		p.Pluralize("neighbor", res.Total.Neighbors, true),
		p.Pluralize("registration", res.Total.Registered, true),
		res.Total.Skipped)
}

type jsonTick struct {
	Tick    int          `json:"tick"`
	Room    string       `json:"room,omitempty"`
	Outcome string       `json:"outcome"`
	Stats   reveal.Stats `json:"stats"`
}

type jsonRoom struct {
	Act         int    `json:"act"`
	Area        string `json:"area"`
	AreaID      uint32 `json:"area_id"`
	Initialized bool   `json:"initialized"`
	Extent      string `json:"extent"`
	Key         string `json:"key"`
	Bounds      string `json:"bounds"`
	Registered  bool   `json:"registered"`
	Revealed    bool   `json:"revealed"`
}

type jsonReport struct {
	Session string       `json:"session"`
	Areas   []string     `json:"areas"`
	Ticks   []jsonTick   `json:"ticks,omitempty"`
	Rooms   []jsonRoom   `json:"rooms"`
	Total   reveal.Stats `json:"total"`
}

// writeJSON writes the same content as printReport as one JSON document.
func writeJSON(w io.Writer, m *world.Manager, res simResult) error {
	rep := jsonReport{
		Session: res.Session.ID().String(),
		Areas:   []string{},
		Total:   res.Total,
	}
	for _, id := range res.Session.IDs() {
		rep.Areas = append(rep.Areas, id.String())
	}
	for _, tr := range res.Ticks {
		rep.Ticks = append(rep.Ticks, jsonTick{Tick: tr.Tick, Room: tr.Room, Outcome: tr.Outcome.String(), Stats: tr.Stats})
	}
	for _, a := range m.Areas() {
		for _, s := range world.SubAreas(m, a) {
			id := m.SubAreaID(s)
			for _, r := range m.AllRooms(s) {
				rep.Rooms = append(rep.Rooms, jsonRoom{
					Act:         m.Act(a),
					Area:        id.String(),
					AreaID:      uint32(id),
					Initialized: m.Initialized(s),
					Extent:      m.SubAreaBounds(s).String(),
					Key:         m.RoomKey(r),
					Bounds:      m.RoomBounds(r).String(),
					Registered:  m.Registered(r),
					Revealed:    m.Revealed(r),
				})
			}
		}
	}
	b, err := goccy.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
