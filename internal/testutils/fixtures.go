package testutils

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/KirkDiggler/fps-level/internal/engine/layout"
	"github.com/KirkDiggler/fps-level/internal/entities"
)

// Fixture IDs
const (
	// BrokenWallID is the zero-length partition in CreateBrokenBlueprint
	BrokenWallID = "wall-broken"

	// NarrowWallID is the partition too short for its door in CreateBrokenBlueprint
	NarrowWallID = "wall-narrow"
)

// FixedTime is the timestamp handed out by test clocks
var FixedTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// CreateTestBlueprint creates a two-room blueprint with one door
func CreateTestBlueprint() *layout.Blueprint {
	return &layout.Blueprint{
		WallHeight:     2.5,
		FootprintWidth: 10,
		FootprintDepth: 6,
		EntranceSide:   layout.SideWest,
		DoorWidth:      1,
		Rooms: []layout.RoomSpec{
			{Type: entities.RoomTypeLivingRoom, Position: mgl32.Vec3{-5, 0, -3}, Width: 5, Depth: 6},
			{Type: entities.RoomTypeBathroom, Position: mgl32.Vec3{0, 0, -3}, Width: 5, Depth: 6},
		},
		InteriorWalls: []layout.WallSpec{
			{ID: "wall-living-bathroom", Start: mgl32.Vec3{0, 0, 3}, End: mgl32.Vec3{0, 0, -3}, HasDoor: true},
		},
	}
}

// CreateBrokenBlueprint creates the default apartment plus two partitions the
// geometry builder rejects. Everything else still builds.
func CreateBrokenBlueprint() *layout.Blueprint {
	bp := layout.DefaultApartment()
	bp.InteriorWalls = append(bp.InteriorWalls,
		layout.WallSpec{ID: BrokenWallID, Start: mgl32.Vec3{1, 0, 1}, End: mgl32.Vec3{1, 0, 1}},
		layout.WallSpec{ID: NarrowWallID, Start: mgl32.Vec3{2, 0, 2}, End: mgl32.Vec3{2.5, 0, 2}, HasDoor: true},
	)
	return bp
}
