package entities_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/fps-level/internal/entities"
	"github.com/KirkDiggler/fps-level/internal/errors"
)

type EntitiesTestSuite struct {
	suite.Suite
}

func TestEntitiesSuite(t *testing.T) {
	suite.Run(t, new(EntitiesTestSuite))
}

func (s *EntitiesTestSuite) TestRoomsAndWallsAreEntities() {
	var room core.Entity = &entities.Room{ID: "kitchen", Type: entities.RoomTypeKitchen}
	var wall core.Entity = &entities.Wall{ID: "wall-north"}

	s.Equal("kitchen", room.GetID())
	s.Equal(entities.EntityTypeRoom, room.GetType())
	s.Equal("wall-north", wall.GetID())
	s.Equal(entities.EntityTypeWall, wall.GetType())
}

func (s *EntitiesTestSuite) TestRoomOverlaps() {
	base := &entities.Room{Position: mgl32.Vec3{0, 0, 0}, Size: mgl32.Vec3{4, 2.8, 4}}

	testCases := []struct {
		name     string
		other    *entities.Room
		expected bool
	}{
		{"shared area", &entities.Room{Position: mgl32.Vec3{2, 0, 2}, Size: mgl32.Vec3{4, 2.8, 4}}, true},
		{"contained", &entities.Room{Position: mgl32.Vec3{1, 0, 1}, Size: mgl32.Vec3{1, 2.8, 1}}, true},
		{"touching edge", &entities.Room{Position: mgl32.Vec3{4, 0, 0}, Size: mgl32.Vec3{2, 2.8, 4}}, false},
		{"apart", &entities.Room{Position: mgl32.Vec3{10, 0, 10}, Size: mgl32.Vec3{1, 2.8, 1}}, false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, base.Overlaps(tc.other))
			s.Equal(tc.expected, tc.other.Overlaps(base))
		})
	}
}

func (s *EntitiesTestSuite) TestWallGeometry() {
	wall := &entities.Wall{Start: mgl32.Vec3{0, 0, 0}, End: mgl32.Vec3{3, 0, 4}, Height: 2.8}

	s.InDelta(5.0, float64(wall.Length()), 1e-6)
	s.True(wall.Direction().ApproxEqualThreshold(mgl32.Vec3{0.6, 0, 0.8}, 1e-6))
	s.True(wall.Normal().ApproxEqualThreshold(mgl32.Vec3{-0.8, 0, 0.6}, 1e-6))
	s.InDelta(0.0, float64(wall.Normal().Dot(wall.Direction())), 1e-6)
	s.False(wall.HasDoor())

	degenerate := &entities.Wall{Start: mgl32.Vec3{1, 0, 1}, End: mgl32.Vec3{1, 0, 1}}
	s.Zero(degenerate.Length())
	s.Equal(mgl32.Vec3{}, degenerate.Direction())
}

func (s *EntitiesTestSuite) TestMeshValidate() {
	vertices := make([]entities.Vertex, 4)

	testCases := []struct {
		name    string
		indices []uint32
		valid   bool
	}{
		{"two triangles", []uint32{0, 1, 2, 0, 2, 3}, true},
		{"empty", nil, true},
		{"partial triangle", []uint32{0, 1}, false},
		{"index out of range", []uint32{0, 1, 4}, false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			mesh := &entities.Mesh{SourceID: "m", Vertices: vertices, Indices: tc.indices}
			err := mesh.Validate()
			if tc.valid {
				s.NoError(err)
				return
			}
			s.True(errors.IsInvalidGeometry(err))
		})
	}
}

func (s *EntitiesTestSuite) TestMeshCounts() {
	mesh := &entities.Mesh{
		Vertices: []entities.Vertex{
			{Position: mgl32.Vec3{0, 0, 0}},
			{Position: mgl32.Vec3{1, 0, 0}},
			{Position: mgl32.Vec3{1, 0, 1}},
		},
		Indices: []uint32{0, 1, 2},
	}

	s.Equal(3, mesh.VertexCount())
	s.Equal(1, mesh.TriangleCount())
	s.Zero((&entities.Mesh{}).TriangleCount())
}

func (s *EntitiesTestSuite) TestClonesShareNoMemory() {
	room := &entities.Room{ID: "living_room", CoverPoints: []mgl32.Vec3{{2, 0, 3}}}
	roomCopy := room.Clone()
	roomCopy.CoverPoints[0] = mgl32.Vec3{100, 0, 100}
	s.Equal(mgl32.Vec3{2, 0, 3}, room.CoverPoints[0])

	wall := &entities.Wall{ID: "w", Door: &entities.Door{Width: 0.9}}
	wallCopy := wall.Clone()
	wallCopy.Door.Width = 42
	s.Equal(float32(0.9), wall.Door.Width)
	s.Nil((&entities.Wall{}).Clone().Door)

	mesh := &entities.Mesh{
		Vertices: []entities.Vertex{{Position: mgl32.Vec3{1, 0, 0}}},
		Indices:  []uint32{0, 0, 0},
	}
	meshCopy := mesh.Clone()
	meshCopy.Vertices[0].Position = mgl32.Vec3{9, 9, 9}
	meshCopy.Indices[0] = 7
	s.Equal(mgl32.Vec3{1, 0, 0}, mesh.Vertices[0].Position)
	s.Equal(uint32(0), mesh.Indices[0])
}

func (s *EntitiesTestSuite) TestEnumNames() {
	s.Equal("living_room", entities.RoomTypeLivingRoom.String())
	s.Equal("hallway", entities.RoomTypeHallway.String())
	s.Equal("interior", entities.WallKindInterior.String())
	s.Equal("door_frame", entities.MeshKindDoorFrame.String())
	s.Equal("unspecified", entities.MeshKindUnspecified.String())
}
