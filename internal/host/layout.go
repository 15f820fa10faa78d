// Package host binds the world graph interfaces onto a foreign address space.
//
// Binding is the only place that performs address arithmetic. It reads fields
// through a Memory at offsets taken from a Layout and invokes host routines
// through a Caller at addresses computed from the module base and an Offsets
// table. Both tables are version specific and supplied by configuration.
package host

import (
	"fmt"

	"github.com/cory-johannsen/d2reveal/internal/config"
)

// Layout holds struct field offsets of the host's world graph.
type Layout struct {
	AreaMisc uintptr

	MiscArea         uintptr
	MiscFirstSubArea uintptr

	SubAreaFirstRoom uintptr
	// SubAreaBounds is the offset of four consecutive uint32: x, y, width, height.
	SubAreaBounds uintptr
	SubAreaNext   uintptr
	SubAreaMisc   uintptr
	SubAreaID     uintptr

	RoomNeighbors     uintptr
	RoomNeighborCount uintptr
	RoomNext          uintptr
	RoomGeometry      uintptr
	// RoomBounds is the offset of four consecutive uint32: x, y, width, height.
	RoomBounds  uintptr
	RoomSubArea uintptr

	GeometryRoom uintptr

	UnitType     uintptr
	UnitID       uintptr
	UnitPath     uintptr
	PathGeometry uintptr
}

// LayoutFromConfig converts configured field offsets.
func LayoutFromConfig(c config.LayoutConfig) Layout {
	return Layout{
		AreaMisc:          uintptr(c.AreaMisc),
		MiscArea:          uintptr(c.MiscArea),
		MiscFirstSubArea:  uintptr(c.MiscFirstSubArea),
		SubAreaFirstRoom:  uintptr(c.SubAreaFirstRoom),
		SubAreaBounds:     uintptr(c.SubAreaBounds),
		SubAreaNext:       uintptr(c.SubAreaNext),
		SubAreaMisc:       uintptr(c.SubAreaMisc),
		SubAreaID:         uintptr(c.SubAreaID),
		RoomNeighbors:     uintptr(c.RoomNeighbors),
		RoomNeighborCount: uintptr(c.RoomNeighborCount),
		RoomNext:          uintptr(c.RoomNext),
		RoomGeometry:      uintptr(c.RoomGeometry),
		RoomBounds:        uintptr(c.RoomBounds),
		RoomSubArea:       uintptr(c.RoomSubArea),
		GeometryRoom:      uintptr(c.GeometryRoom),
		UnitType:          uintptr(c.UnitType),
		UnitID:            uintptr(c.UnitID),
		UnitPath:          uintptr(c.UnitPath),
		PathGeometry:      uintptr(c.PathGeometry),
	}
}

// Offsets holds routine and data offsets relative to the host module base.
type Offsets struct {
	InitSubArea    uintptr
	RegisterRoom   uintptr
	UnregisterRoom uintptr
	RevealRoom     uintptr
	PlayerIndex    uintptr
	GetPlayer      uintptr
}

// OffsetsFromConfig converts and checks configured routine offsets.
//
// Postcondition: Returns Offsets with every entry non-zero, or a non-nil error.
func OffsetsFromConfig(c config.OffsetsConfig) (Offsets, error) {
	if err := c.Validate(); err != nil {
		return Offsets{}, fmt.Errorf("host offsets: %w", err)
	}
	return Offsets{
		InitSubArea:    uintptr(c.InitSubArea),
		RegisterRoom:   uintptr(c.RegisterRoom),
		UnregisterRoom: uintptr(c.UnregisterRoom),
		RevealRoom:     uintptr(c.RevealRoom),
		PlayerIndex:    uintptr(c.PlayerIndex),
		GetPlayer:      uintptr(c.GetPlayer),
	}, nil
}
