// Package geometry turns rooms and walls into triangle meshes.
//
// Quads are emitted as four vertices and two triangles (0,1,2 and 0,2,3 relative to
// the quad's first vertex). Wall and door-frame quads are wound counter-clockwise
// seen from the side their normal points toward.
//
// Floors are the exception. Their corners run min corner, +x, +x+z, +z with normal
// +y, which makes the triangles clockwise seen from above. A sink that culls back
// faces by winding must not cull floors.
package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/KirkDiggler/fps-level/internal/entities"
	"github.com/KirkDiggler/fps-level/internal/errors"
)

// Door frame constants
const (
	DoorHeight     float32 = 2.1
	FrameThickness float32 = 0.1

	frameTolerance float32 = 1e-4
)

var (
	up = mgl32.Vec3{0, 1, 0}

	// unit square corners in quad vertex order
	quadUVs = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
)

// BuildRoomMesh returns the floor quad spanning the room's footprint
func BuildRoomMesh(room *entities.Room) (*entities.Mesh, error) {
	if !(room.Size.X() > 0 && room.Size.Y() > 0 && room.Size.Z() > 0) {
		return nil, invalid(entities.MeshKindFloor, room.ID,
			errors.InvalidGeometryf("room %s has non-positive size %v", room.ID, room.Size))
	}

	p := room.Position
	sx, sz := room.Size.X(), room.Size.Z()

	mesh := &entities.Mesh{
		SourceID: room.ID,
		Kind:     entities.MeshKindFloor,
	}
	appendQuad(mesh, up, [4]mgl32.Vec3{
		p,
		p.Add(mgl32.Vec3{sx, 0, 0}),
		p.Add(mgl32.Vec3{sx, 0, sz}),
		p.Add(mgl32.Vec3{0, 0, sz}),
	})

	return mesh, nil
}

// BuildWallMesh returns a single quad for a solid wall, or the door frame for a wall
// with an opening. The opening itself carries no geometry.
func BuildWallMesh(wall *entities.Wall) (*entities.Mesh, error) {
	if err := validateWall(wall); err != nil {
		kind := entities.MeshKindWall
		if wall.HasDoor() {
			kind = entities.MeshKindDoorFrame
		}
		return nil, invalid(kind, wall.ID, err)
	}

	if wall.HasDoor() {
		return buildDoorFrame(wall), nil
	}

	lift := mgl32.Vec3{0, wall.Height, 0}
	mesh := &entities.Mesh{
		SourceID: wall.ID,
		Kind:     entities.MeshKindWall,
	}
	appendQuad(mesh, wall.Normal(), [4]mgl32.Vec3{
		wall.Start,
		wall.End,
		wall.End.Add(lift),
		wall.Start.Add(lift),
	})

	return mesh, nil
}

// buildDoorFrame emits the left jamb, right jamb and header around the opening
func buildDoorFrame(wall *entities.Wall) *entities.Mesh {
	dir := wall.Direction()
	normal := wall.Normal()
	center := wall.Door.Position
	half := wall.Door.Width / 2

	doorTop := mgl32.Vec3{0, DoorHeight, 0}
	frameTop := mgl32.Vec3{0, DoorHeight + FrameThickness, 0}

	alongWall := func(offset float32) mgl32.Vec3 {
		return center.Add(dir.Mul(offset))
	}

	mesh := &entities.Mesh{
		SourceID: wall.ID,
		Kind:     entities.MeshKindDoorFrame,
	}

	// Left jamb
	outer, inner := alongWall(-half-FrameThickness), alongWall(-half)
	appendQuad(mesh, normal, [4]mgl32.Vec3{outer, inner, inner.Add(doorTop), outer.Add(doorTop)})

	// Right jamb
	inner, outer = alongWall(half), alongWall(half+FrameThickness)
	appendQuad(mesh, normal, [4]mgl32.Vec3{inner, outer, outer.Add(doorTop), inner.Add(doorTop)})

	// Header
	left, right := alongWall(-half), alongWall(half)
	appendQuad(mesh, normal, [4]mgl32.Vec3{
		left.Add(doorTop),
		right.Add(doorTop),
		right.Add(frameTop),
		left.Add(frameTop),
	})

	return mesh
}

func validateWall(wall *entities.Wall) *errors.Error {
	length := wall.Length()
	if length == 0 {
		return errors.InvalidGeometryf("wall %s has zero length", wall.ID)
	}
	if !(wall.Height > 0) {
		return errors.InvalidGeometryf("wall %s has non-positive height %g", wall.ID, wall.Height)
	}
	if wall.HasDoor() {
		if !(wall.Door.Width > 0) {
			return errors.InvalidGeometryf("wall %s door has non-positive width %g", wall.ID, wall.Door.Width)
		}
		if wall.Door.Width >= length {
			return errors.InvalidGeometryf("wall %s door width %g must be less than wall length %g",
				wall.ID, wall.Door.Width, length)
		}
		if wall.Height < DoorHeight+FrameThickness {
			return errors.InvalidGeometryf("wall %s height %g is below the door frame top %g",
				wall.ID, wall.Height, DoorHeight+FrameThickness)
		}

		// the frame, jambs included, must lie within the wall
		center := wall.Door.Position.Sub(wall.Start).Dot(wall.Direction())
		reach := wall.Door.Width/2 + FrameThickness
		if center-reach < -frameTolerance || center+reach > length+frameTolerance {
			return errors.InvalidGeometryf("wall %s door frame spans %g to %g outside wall length %g",
				wall.ID, center-reach, center+reach, length)
		}
	}
	return nil
}

// appendQuad appends four corners and the two triangles over them. Indices are
// relative to the current vertex count so they always reference appended vertices.
func appendQuad(mesh *entities.Mesh, normal mgl32.Vec3, corners [4]mgl32.Vec3) {
	base := uint32(len(mesh.Vertices))
	for i, c := range corners {
		mesh.Vertices = append(mesh.Vertices, entities.Vertex{
			Position:  c,
			Normal:    normal,
			TexCoords: quadUVs[i],
		})
	}
	mesh.Indices = append(mesh.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

func invalid(kind entities.MeshKind, id string, err *errors.Error) *errors.Error {
	return err.
		WithMeta("primitive_kind", kind.String()).
		WithMeta("primitive_id", id)
}
