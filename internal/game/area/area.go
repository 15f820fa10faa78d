// Package area provides the enumeration of named game locations (AreaIds).
package area

import (
	"fmt"
	"strconv"
	"strings"
)

// ID identifies one named location: a town, a field, or a dungeon level.
type ID uint32

// Valid reports whether id is a known location.
func (id ID) Valid() bool {
	return id <= MaxID
}

// String returns the display name, or "Area(<n>)" for unknown values.
func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("Area(%d)", uint32(id))
	}
	return names[id]
}

// IsTown reports whether id is one of the act towns.
// None is classified as a town so an unresolved location is never treated as hostile ground.
func (id ID) IsTown() bool {
	switch id {
	case None, RogueEncampment, LutGholein, KurastDocktown, ThePandemoniumFortress, Harrogath:
		return true
	default:
		return false
	}
}

// Act returns the zero-based act a location belongs to.
//
// Postcondition: Returns a value in [0, 4].
func (id ID) Act() int {
	switch {
	case id < LutGholein:
		return 0
	case id < KurastDocktown:
		return 1
	case id < ThePandemoniumFortress:
		return 2
	case id < Harrogath:
		return 3
	default:
		return 4
	}
}

// Parse resolves s as either a numeric id or a display name (case- and space-insensitive).
//
// Postcondition: Returns a valid ID or a non-nil error.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		id := ID(n)
		if !id.Valid() {
			return None, fmt.Errorf("area id %d out of range [0, %d]", n, uint32(MaxID))
		}
		return id, nil
	}
	key := normalize(s)
	for i, name := range names {
		if normalize(name) == key {
			return ID(i), nil
		}
	}
	return None, fmt.Errorf("unknown area %q", s)
}

func normalize(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", ""))
}
