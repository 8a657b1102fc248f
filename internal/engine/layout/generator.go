package layout

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/KirkDiggler/fps-level/internal/entities"
)

// Generate enumerates the rooms and walls described by the blueprint.
// The result depends on nothing but the blueprint, and every call returns fresh
// slices; cover points are left empty for the cover planner.
func Generate(b *Blueprint) ([]entities.Room, []entities.Wall) {
	rooms := generateRooms(b)

	walls := make([]entities.Wall, 0, 4+len(b.InteriorWalls))
	walls = append(walls, exteriorWalls(b)...)
	for _, spec := range b.InteriorWalls {
		walls = append(walls, newWall(spec.ID, entities.WallKindInterior, spec.Start, spec.End,
			b.WallHeight, spec.HasDoor, b.DoorWidth))
	}

	return rooms, walls
}

func generateRooms(b *Blueprint) []entities.Room {
	rooms := make([]entities.Room, 0, len(b.Rooms))
	counts := make(map[entities.RoomType]int, len(b.Rooms))

	for _, spec := range b.Rooms {
		counts[spec.Type]++
		id := spec.Type.String()
		if n := counts[spec.Type]; n > 1 {
			id = fmt.Sprintf("%s-%d", id, n)
		}

		rooms = append(rooms, entities.Room{
			ID:       id,
			Type:     spec.Type,
			Position: spec.Position,
			Size:     mgl32.Vec3{spec.Width, b.WallHeight, spec.Depth},
		})
	}

	return rooms
}

// exteriorWalls returns the closed perimeter in north, east, south, west order;
// each wall starts where the previous one ends
func exteriorWalls(b *Blueprint) []entities.Wall {
	hw, hd := b.FootprintWidth/2, b.FootprintDepth/2

	nw := mgl32.Vec3{-hw, 0, hd}
	ne := mgl32.Vec3{hw, 0, hd}
	se := mgl32.Vec3{hw, 0, -hd}
	sw := mgl32.Vec3{-hw, 0, -hd}

	corners := map[Side][2]mgl32.Vec3{
		SideNorth: {nw, ne},
		SideEast:  {ne, se},
		SideSouth: {se, sw},
		SideWest:  {sw, nw},
	}

	walls := make([]entities.Wall, 0, 4)
	for _, side := range []Side{SideNorth, SideEast, SideSouth, SideWest} {
		c := corners[side]
		walls = append(walls, newWall("wall-"+side.String(), entities.WallKindExterior, c[0], c[1],
			b.WallHeight, side == b.EntranceSide, b.DoorWidth))
	}
	return walls
}

func newWall(id string, kind entities.WallKind, start, end mgl32.Vec3, height float32, hasDoor bool, doorWidth float32) entities.Wall {
	wall := entities.Wall{
		ID:     id,
		Kind:   kind,
		Start:  start,
		End:    end,
		Height: height,
	}

	if hasDoor {
		wall.Door = &entities.Door{
			Position: start.Add(end).Mul(0.5),
			Width:    doorWidth,
		}
	}

	return wall
}
