// Package cover derives tactical cover points for rooms
package cover

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/KirkDiggler/fps-level/internal/entities"
)

// offsets from the room's min corner, per room type
var offsets = map[entities.RoomType][]mgl32.Vec3{
	entities.RoomTypeLivingRoom: {
		{2, 0, 3}, // behind sofa
		{4, 0, 1}, // behind TV stand
	},
	entities.RoomTypeKitchen: {
		{1, 0, 2}, // behind counter
		{2, 0, 1}, // behind island
	},
	entities.RoomTypeBedroom: {
		{2, 0, 3},     // behind bed
		{3.5, 0, 0.5}, // behind wardrobe
	},
}

// Derive returns the cover points for the room. Room types without offsets get none.
func Derive(room *entities.Room) []mgl32.Vec3 {
	typeOffsets := offsets[room.Type]
	if len(typeOffsets) == 0 {
		return nil
	}

	points := make([]mgl32.Vec3, 0, len(typeOffsets))
	for _, offset := range typeOffsets {
		points = append(points, room.Position.Add(offset))
	}
	return points
}

// Populate appends the derived cover points to each room in order
func Populate(rooms []entities.Room) {
	for i := range rooms {
		rooms[i].CoverPoints = append(rooms[i].CoverPoints, Derive(&rooms[i])...)
	}
}
