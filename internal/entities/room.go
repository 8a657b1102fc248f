// Package entities provides core data structures for the apartment level.
package entities

import (
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/go-gl/mathgl/mgl32"
)

// RoomType classifies a room. The set is closed.
type RoomType int

// Room types
const (
	RoomTypeUnspecified RoomType = iota
	RoomTypeLivingRoom
	RoomTypeKitchen
	RoomTypeBedroom
	RoomTypeBathroom
	RoomTypeHallway
)

// String returns the snake_case tag for the room type
func (t RoomType) String() string {
	switch t {
	case RoomTypeLivingRoom:
		return "living_room"
	case RoomTypeKitchen:
		return "kitchen"
	case RoomTypeBedroom:
		return "bedroom"
	case RoomTypeBathroom:
		return "bathroom"
	case RoomTypeHallway:
		return "hallway"
	default:
		return "unspecified"
	}
}

// EntityTypeRoom is the rpg-toolkit entity type reported by rooms
const EntityTypeRoom = "room"

// Room represents a rectangular floor area of the layout
type Room struct {
	ID       string
	Type     RoomType
	Position mgl32.Vec3 // min corner
	Size     mgl32.Vec3 // extents along x, y (ceiling height) and z

	// CoverPoints is filled once during generation and read-only afterwards
	CoverPoints []mgl32.Vec3
}

var _ core.Entity = (*Room)(nil)

// GetID returns the room's ID
func (r *Room) GetID() string {
	return r.ID
}

// GetType returns the entity type for rpg-toolkit
func (r *Room) GetType() string {
	return EntityTypeRoom
}

// Max returns the corner opposite Position
func (r *Room) Max() mgl32.Vec3 {
	return r.Position.Add(r.Size)
}

// Overlaps reports whether the two room footprints share area on the floor plane.
// Rooms that only touch along an edge do not overlap.
func (r *Room) Overlaps(other *Room) bool {
	rMax, oMax := r.Max(), other.Max()
	return r.Position.X() < oMax.X() && other.Position.X() < rMax.X() &&
		r.Position.Z() < oMax.Z() && other.Position.Z() < rMax.Z()
}

// Clone returns a copy that shares no memory with r
func (r *Room) Clone() Room {
	out := *r
	out.CoverPoints = slices.Clone(r.CoverPoints)
	return out
}
