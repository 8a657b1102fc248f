// Package layout generates the rooms and walls of an apartment from fixed
// architectural constants.
package layout

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/KirkDiggler/fps-level/internal/entities"
	"github.com/KirkDiggler/fps-level/internal/errors"
)

// Side names one wall of the exterior footprint
type Side int

// Footprint sides
const (
	SideNorth Side = iota
	SideEast
	SideSouth
	SideWest
)

// String returns the side name used in wall IDs
func (s Side) String() string {
	switch s {
	case SideNorth:
		return "north"
	case SideEast:
		return "east"
	case SideSouth:
		return "south"
	case SideWest:
		return "west"
	default:
		return "unknown"
	}
}

// Architectural constants of the default apartment
const (
	DefaultWallHeight     float32 = 2.8
	DefaultFootprintWidth float32 = 15.0
	DefaultFootprintDepth float32 = 15.0
	DefaultDoorWidth      float32 = 0.9 // standard interior door
)

// RoomSpec places one room. Rooms take their ceiling height from the blueprint.
type RoomSpec struct {
	Type     entities.RoomType
	Position mgl32.Vec3 // min corner
	Width    float32    // along x
	Depth    float32    // along z
}

// WallSpec places one interior partition
type WallSpec struct {
	ID      string
	Start   mgl32.Vec3
	End     mgl32.Vec3
	HasDoor bool
}

// Blueprint holds every constant generation depends on
type Blueprint struct {
	WallHeight     float32
	FootprintWidth float32 // exterior extent along x, centered on the origin
	FootprintDepth float32 // exterior extent along z, centered on the origin
	EntranceSide   Side
	DoorWidth      float32

	Rooms         []RoomSpec
	InteriorWalls []WallSpec
}

// DefaultApartment returns the one-bedroom archetype
func DefaultApartment() *Blueprint {
	return &Blueprint{
		WallHeight:     DefaultWallHeight,
		FootprintWidth: DefaultFootprintWidth,
		FootprintDepth: DefaultFootprintDepth,
		EntranceSide:   SideSouth,
		DoorWidth:      DefaultDoorWidth,
		Rooms: []RoomSpec{
			// Living room is the largest room
			{Type: entities.RoomTypeLivingRoom, Position: mgl32.Vec3{0, 0, 0}, Width: 6, Depth: 8},
			{Type: entities.RoomTypeKitchen, Position: mgl32.Vec3{-3, 0, -8}, Width: 4, Depth: 4},
			{Type: entities.RoomTypeBedroom, Position: mgl32.Vec3{6, 0, 0}, Width: 4, Depth: 6},
			{Type: entities.RoomTypeBathroom, Position: mgl32.Vec3{6, 0, -4}, Width: 3, Depth: 3},
			{Type: entities.RoomTypeHallway, Position: mgl32.Vec3{3, 0, -4}, Width: 3, Depth: 2},
		},
		InteriorWalls: []WallSpec{
			{ID: "wall-living-bedroom", Start: mgl32.Vec3{3, 0, 4}, End: mgl32.Vec3{3, 0, -2}, HasDoor: true},
			{ID: "wall-hallway-kitchen", Start: mgl32.Vec3{1.5, 0, -4}, End: mgl32.Vec3{-1, 0, -4}, HasDoor: true},
		},
	}
}

// Validate checks the blueprint-level constraints. Per-primitive geometry such as
// zero-length walls is reported later by the geometry builder.
func (b *Blueprint) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidatePositive("WallHeight", b.WallHeight, vb)
	errors.ValidatePositive("FootprintWidth", b.FootprintWidth, vb)
	errors.ValidatePositive("FootprintDepth", b.FootprintDepth, vb)
	errors.ValidatePositive("DoorWidth", b.DoorWidth, vb)

	if b.EntranceSide < SideNorth || b.EntranceSide > SideWest {
		vb.InvalidField("EntranceSide", "unknown side")
	}

	rooms := generateRooms(b)
	for i := range rooms {
		if rooms[i].Type == entities.RoomTypeUnspecified {
			vb.Fieldf("Rooms", "room %d has no type", i)
		}
		for j := i + 1; j < len(rooms); j++ {
			if rooms[i].Overlaps(&rooms[j]) {
				vb.Fieldf("Rooms", "%s overlaps %s", rooms[i].ID, rooms[j].ID)
			}
		}
	}

	seen := make(map[string]bool, len(b.InteriorWalls))
	for i, w := range b.InteriorWalls {
		if w.ID == "" {
			vb.Fieldf("InteriorWalls", "wall %d has no ID", i)
			continue
		}
		if seen[w.ID] {
			vb.Fieldf("InteriorWalls", "duplicate wall ID %s", w.ID)
		}
		seen[w.ID] = true
	}

	return vb.Build()
}
