package layout_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/fps-level/internal/engine/layout"
	"github.com/KirkDiggler/fps-level/internal/entities"
	"github.com/KirkDiggler/fps-level/internal/errors"
)

type GeneratorTestSuite struct {
	suite.Suite
	blueprint *layout.Blueprint
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) SetupTest() {
	s.blueprint = layout.DefaultApartment()
}

func (s *GeneratorTestSuite) TestDefaultApartmentIsValid() {
	s.Require().NoError(s.blueprint.Validate())
}

func (s *GeneratorTestSuite) TestRooms() {
	rooms, _ := layout.Generate(s.blueprint)

	s.Require().Len(rooms, 5)

	expectedTypes := []entities.RoomType{
		entities.RoomTypeLivingRoom,
		entities.RoomTypeKitchen,
		entities.RoomTypeBedroom,
		entities.RoomTypeBathroom,
		entities.RoomTypeHallway,
	}
	for i, room := range rooms {
		s.Equal(expectedTypes[i], room.Type)
		s.Equal(room.Type.String(), room.ID)
		s.Greater(room.Size.X(), float32(0))
		s.Greater(room.Size.Y(), float32(0))
		s.Greater(room.Size.Z(), float32(0))
		s.Empty(room.CoverPoints, "cover is derived after generation")
	}

	living := rooms[0]
	s.Equal(mgl32.Vec3{0, 0, 0}, living.Position)
	s.Equal(mgl32.Vec3{6, 2.8, 8}, living.Size)
}

func (s *GeneratorTestSuite) TestRoomsDoNotOverlap() {
	rooms, _ := layout.Generate(s.blueprint)

	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			s.False(rooms[i].Overlaps(&rooms[j]), "%s overlaps %s", rooms[i].ID, rooms[j].ID)
		}
	}
}

func (s *GeneratorTestSuite) TestExteriorPerimeterIsClosed() {
	_, walls := layout.Generate(s.blueprint)

	s.Require().Len(walls, 6)

	exterior := walls[:4]
	for i, wall := range exterior {
		s.Equal(entities.WallKindExterior, wall.Kind)
		next := exterior[(i+1)%len(exterior)]
		s.Equal(wall.End, next.Start, "%s should end where %s starts", wall.ID, next.ID)
	}

	s.Equal("wall-north", exterior[0].ID)
	s.Equal(mgl32.Vec3{-7.5, 0, 7.5}, exterior[0].Start)
	s.Equal(mgl32.Vec3{7.5, 0, 7.5}, exterior[0].End)
}

func (s *GeneratorTestSuite) TestEntranceOnSouthWall() {
	_, walls := layout.Generate(s.blueprint)

	for _, wall := range walls[:4] {
		if wall.ID == "wall-south" {
			s.Require().True(wall.HasDoor())
			s.Equal(mgl32.Vec3{0, 0, -7.5}, wall.Door.Position)
			s.Equal(layout.DefaultDoorWidth, wall.Door.Width)
			continue
		}
		s.False(wall.HasDoor(), "%s should be solid", wall.ID)
	}
}

func (s *GeneratorTestSuite) TestInteriorWallsCarryDoors() {
	_, walls := layout.Generate(s.blueprint)

	interior := walls[4:]
	s.Require().Len(interior, 2)

	s.Equal("wall-living-bedroom", interior[0].ID)
	s.Equal(mgl32.Vec3{3, 0, 1}, interior[0].Door.Position)
	s.Equal("wall-hallway-kitchen", interior[1].ID)
	s.Equal(mgl32.Vec3{0.25, 0, -4}, interior[1].Door.Position)

	for _, wall := range interior {
		s.Equal(entities.WallKindInterior, wall.Kind)
		s.Equal(layout.DefaultWallHeight, wall.Height)
	}
}

func (s *GeneratorTestSuite) TestWallInvariants() {
	_, walls := layout.Generate(s.blueprint)

	for _, wall := range walls {
		s.Greater(wall.Length(), float32(0), wall.ID)
		s.Zero(wall.Start.Y(), wall.ID)
		s.Zero(wall.End.Y(), wall.ID)
		if wall.HasDoor() {
			s.Less(wall.Door.Width, wall.Length(), wall.ID)
		}
	}
}

func (s *GeneratorTestSuite) TestDeterministic() {
	rooms1, walls1 := layout.Generate(s.blueprint)
	rooms2, walls2 := layout.Generate(layout.DefaultApartment())

	s.Equal(rooms1, rooms2)
	s.Equal(walls1, walls2)

	// Fresh slices on every call
	rooms1[0].CoverPoints = append(rooms1[0].CoverPoints, mgl32.Vec3{1, 0, 1})
	walls1[4].Door.Width = 0.5
	rooms3, walls3 := layout.Generate(s.blueprint)
	s.Empty(rooms3[0].CoverPoints)
	s.Equal(layout.DefaultDoorWidth, walls3[4].Door.Width)
}

func (s *GeneratorTestSuite) TestDuplicateRoomTypesGetDistinctIDs() {
	s.blueprint.Rooms = append(s.blueprint.Rooms, layout.RoomSpec{
		Type:     entities.RoomTypeBedroom,
		Position: mgl32.Vec3{-7, 0, 0},
		Width:    3,
		Depth:    3,
	})

	rooms, _ := layout.Generate(s.blueprint)
	s.Equal("bedroom", rooms[2].ID)
	s.Equal("bedroom-2", rooms[5].ID)
	s.NoError(s.blueprint.Validate())
}

func (s *GeneratorTestSuite) TestValidate() {
	testCases := []struct {
		name   string
		mutate func(b *layout.Blueprint)
	}{
		{
			name:   "non-positive wall height",
			mutate: func(b *layout.Blueprint) { b.WallHeight = 0 },
		},
		{
			name:   "non-positive door width",
			mutate: func(b *layout.Blueprint) { b.DoorWidth = -1 },
		},
		{
			name: "overlapping rooms",
			mutate: func(b *layout.Blueprint) {
				b.Rooms = append(b.Rooms, layout.RoomSpec{
					Type:     entities.RoomTypeKitchen,
					Position: mgl32.Vec3{1, 0, 1},
					Width:    2,
					Depth:    2,
				})
			},
		},
		{
			name: "duplicate wall id",
			mutate: func(b *layout.Blueprint) {
				b.InteriorWalls = append(b.InteriorWalls, b.InteriorWalls[0])
			},
		},
		{
			name:   "unknown entrance side",
			mutate: func(b *layout.Blueprint) { b.EntranceSide = layout.Side(9) },
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			b := layout.DefaultApartment()
			tc.mutate(b)
			err := b.Validate()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}
