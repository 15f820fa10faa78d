package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/d2reveal/internal/game/area"
)

// yamlSnapshotFile is the top-level YAML structure for world snapshot files.
type yamlSnapshotFile struct {
	Acts   []yamlAct   `yaml:"acts"`
	Player *yamlPlayer `yaml:"player"`
}

// yamlAct is the YAML representation of an act container.
type yamlAct struct {
	Act      int           `yaml:"act"`
	SubAreas []yamlSubArea `yaml:"subareas"`
}

// yamlSubArea is the YAML representation of a subarea.
type yamlSubArea struct {
	Area        string     `yaml:"area"`
	Initialized bool       `yaml:"initialized"`
	X           uint32     `yaml:"x"`
	Y           uint32     `yaml:"y"`
	Width       uint32     `yaml:"width"`
	Height      uint32     `yaml:"height"`
	Rooms       []yamlRoom `yaml:"rooms"`
}

// yamlRoom is the YAML representation of a room record.
type yamlRoom struct {
	Key        string   `yaml:"key"`
	X          uint32   `yaml:"x"`
	Y          uint32   `yaml:"y"`
	Width      uint32   `yaml:"width"`
	Height     uint32   `yaml:"height"`
	Registered bool     `yaml:"registered"`
	Neighbors  []string `yaml:"neighbors"`
}

// yamlPlayer is the YAML representation of the local player.
type yamlPlayer struct {
	Room  string `yaml:"room"`
	Valid *bool  `yaml:"valid"`
}

// Snapshot is a validated, host-independent description of a world graph.
type Snapshot struct {
	Acts   []SnapshotAct
	Player *SnapshotPlayer
}

// SnapshotAct describes one act container.
type SnapshotAct struct {
	Act      int
	SubAreas []SnapshotSubArea
}

// SnapshotSubArea describes one subarea.
type SnapshotSubArea struct {
	ID          area.ID
	Initialized bool
	Bounds      Rect
	Rooms       []SnapshotRoom
}

// SnapshotRoom describes one room record. Neighbors are room keys; an empty
// key models a null neighbor entry.
type SnapshotRoom struct {
	Key        string
	Bounds     Rect
	Registered bool
	Neighbors  []string
}

// SnapshotPlayer places the local player.
type SnapshotPlayer struct {
	Room  string
	Valid bool
}

// LoadSnapshotFromFile reads and validates a world snapshot YAML file.
//
// Precondition: path must point to a valid YAML snapshot file.
// Postcondition: Returns a validated Snapshot or a non-nil error.
func LoadSnapshotFromFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot file %s: %w", path, err)
	}
	return LoadSnapshotFromBytes(data)
}

// LoadSnapshotFromBytes parses and validates a world snapshot from YAML bytes.
//
// Precondition: data must be valid YAML conforming to the snapshot schema.
// Postcondition: Returns a validated Snapshot or a non-nil error.
func LoadSnapshotFromBytes(data []byte) (*Snapshot, error) {
	var file yamlSnapshotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing snapshot YAML: %w", err)
	}

	snap, err := convertYAMLSnapshot(file)
	if err != nil {
		return nil, err
	}
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("validating snapshot: %w", err)
	}
	return snap, nil
}

// convertYAMLSnapshot converts the parsed YAML structures into snapshot types.
func convertYAMLSnapshot(yf yamlSnapshotFile) (*Snapshot, error) {
	snap := &Snapshot{}
	for _, ya := range yf.Acts {
		act := SnapshotAct{Act: ya.Act}
		for _, ys := range ya.SubAreas {
			id, err := area.Parse(ys.Area)
			if err != nil {
				return nil, fmt.Errorf("act %d: %w", ya.Act, err)
			}
			sub := SnapshotSubArea{
				ID:          id,
				Initialized: ys.Initialized,
				Bounds:      Rect{X: ys.X, Y: ys.Y, Width: ys.Width, Height: ys.Height},
			}
			for _, yr := range ys.Rooms {
				sub.Rooms = append(sub.Rooms, SnapshotRoom{
					Key:        yr.Key,
					Bounds:     Rect{X: yr.X, Y: yr.Y, Width: yr.Width, Height: yr.Height},
					Registered: yr.Registered,
					Neighbors:  yr.Neighbors,
				})
			}
			act.SubAreas = append(act.SubAreas, sub)
		}
		snap.Acts = append(snap.Acts, act)
	}
	if yf.Player != nil {
		valid := true
		if yf.Player.Valid != nil {
			valid = *yf.Player.Valid
		}
		snap.Player = &SnapshotPlayer{Room: yf.Player.Room, Valid: valid}
	}
	return snap, nil
}

// Validate checks snapshot invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (s *Snapshot) Validate() error {
	if len(s.Acts) == 0 {
		return fmt.Errorf("snapshot must contain at least one act")
	}
	keys := make(map[string]bool)
	for _, act := range s.Acts {
		if act.Act < 0 || act.Act > 4 {
			return fmt.Errorf("act %d: must be in [0, 4]", act.Act)
		}
		for _, sub := range act.SubAreas {
			if sub.ID.Act() != act.Act {
				return fmt.Errorf("act %d: %s belongs to act %d", act.Act, sub.ID, sub.ID.Act())
			}
			positions := make(map[[2]uint32]string)
			for _, room := range sub.Rooms {
				if room.Key == "" {
					return fmt.Errorf("act %d: %s: room key must not be empty", act.Act, sub.ID)
				}
				if keys[room.Key] {
					return fmt.Errorf("duplicate room key %q", room.Key)
				}
				keys[room.Key] = true
				pos := [2]uint32{room.Bounds.X, room.Bounds.Y}
				if other, ok := positions[pos]; ok {
					return fmt.Errorf("%s: rooms %q and %q share position (%d,%d)", sub.ID, other, room.Key, pos[0], pos[1])
				}
				positions[pos] = room.Key
			}
		}
	}
	for _, act := range s.Acts {
		for _, sub := range act.SubAreas {
			for _, room := range sub.Rooms {
				for _, n := range room.Neighbors {
					if n != "" && !keys[n] {
						return fmt.Errorf("room %q: neighbor %q not found", room.Key, n)
					}
				}
			}
		}
	}
	if s.Player != nil && !keys[s.Player.Room] {
		return fmt.Errorf("player room %q not found", s.Player.Room)
	}
	return nil
}

// Build materializes the snapshot into a fresh Manager.
//
// Precondition: s must have passed Validate.
// Postcondition: Returns a Manager whose rooms are addressable by key.
func (s *Snapshot) Build() *Manager {
	m := NewManager()
	for _, act := range s.Acts {
		a := m.AddArea(act.Act)
		for _, sub := range act.SubAreas {
			sa := m.AddSubArea(a, sub.ID, sub.Bounds, sub.Initialized)
			for _, room := range sub.Rooms {
				m.AddRoom(sa, room.Key, room.Bounds, room.Registered)
			}
		}
	}
	for _, act := range s.Acts {
		for _, sub := range act.SubAreas {
			for _, room := range sub.Rooms {
				r, _ := m.RoomByKey(room.Key)
				for _, key := range room.Neighbors {
					n, _ := m.RoomByKey(key)
					m.AddNeighbor(r, n)
				}
			}
		}
	}
	if s.Player != nil {
		r, _ := m.RoomByKey(s.Player.Room)
		m.SetPlayer(r, s.Player.Valid)
	}
	return m
}
