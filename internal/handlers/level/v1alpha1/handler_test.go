package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/fps-level/internal/engine/geometry"
	"github.com/KirkDiggler/fps-level/internal/entities"
	"github.com/KirkDiggler/fps-level/internal/errors"
	"github.com/KirkDiggler/fps-level/internal/handlers/level/v1alpha1"
	"github.com/KirkDiggler/fps-level/internal/orchestrators/level"
	levelmock "github.com/KirkDiggler/fps-level/internal/orchestrators/level/mock"
	"github.com/KirkDiggler/fps-level/internal/render"
	"github.com/KirkDiggler/fps-level/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockLevel *levelmock.MockService
	handler   *v1alpha1.Handler
	ctx       context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLevel = levelmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		LevelService: s.mockLevel,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]interface{}) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Nil(handler)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestCheckCollision() {
	s.mockLevel.EXPECT().
		CheckCollision(s.ctx, &level.CheckCollisionInput{
			Point:  mgl32.Vec3{1, 2, 3},
			Radius: 0.5,
		}).
		Return(&level.CheckCollisionOutput{
			Colliding:      true,
			BlockingWallID: "wall-north",
		}, nil)

	resp, err := s.handler.CheckCollision(s.ctx, s.request(map[string]interface{}{
		v1alpha1.FieldPoint:  []interface{}{1, 2, 3},
		v1alpha1.FieldRadius: 0.5,
	}))
	s.Require().NoError(err)
	s.True(resp.GetFields()["colliding"].GetBoolValue())
	s.Equal("wall-north", resp.GetFields()["blocking_wall_id"].GetStringValue())
}

func (s *HandlerTestSuite) TestQueryRequestValidation() {
	testCases := []struct {
		name   string
		fields map[string]interface{}
	}{
		{
			name:   "missing point",
			fields: map[string]interface{}{v1alpha1.FieldRadius: 1},
		},
		{
			name:   "short point",
			fields: map[string]interface{}{v1alpha1.FieldPoint: []interface{}{1, 2}, v1alpha1.FieldRadius: 1},
		},
		{
			name:   "point with text",
			fields: map[string]interface{}{v1alpha1.FieldPoint: []interface{}{1, "y", 3}, v1alpha1.FieldRadius: 1},
		},
		{
			name:   "missing radius",
			fields: map[string]interface{}{v1alpha1.FieldPoint: []interface{}{1, 2, 3}},
		},
		{
			name:   "negative radius",
			fields: map[string]interface{}{v1alpha1.FieldPoint: []interface{}{1, 2, 3}, v1alpha1.FieldRadius: -1},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.handler.CheckCollision(s.ctx, s.request(tc.fields))
			s.Equal(codes.InvalidArgument, status.Code(err))

			_, err = s.handler.GetNearestCoverPositions(s.ctx, s.request(tc.fields))
			s.Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestCheckCoverPosition() {
	s.mockLevel.EXPECT().
		CheckCoverPosition(s.ctx, &level.CheckCoverPositionInput{Point: mgl32.Vec3{2, 0, 3}}).
		Return(&level.CheckCoverPositionOutput{InCover: true}, nil)

	resp, err := s.handler.CheckCoverPosition(s.ctx, s.request(map[string]interface{}{
		v1alpha1.FieldPoint: []interface{}{2, 0, 3},
	}))
	s.Require().NoError(err)
	s.True(resp.GetFields()["in_cover"].GetBoolValue())
}

func (s *HandlerTestSuite) TestGetNearestCoverPositions() {
	s.mockLevel.EXPECT().
		GetNearestCoverPositions(s.ctx, &level.GetNearestCoverPositionsInput{
			Point:  mgl32.Vec3{3, 0, 2},
			Radius: 2,
		}).
		Return(&level.GetNearestCoverPositionsOutput{
			Positions: []mgl32.Vec3{{2, 0, 3}, {4, 0, 1}},
		}, nil)

	resp, err := s.handler.GetNearestCoverPositions(s.ctx, s.request(map[string]interface{}{
		v1alpha1.FieldPoint:  []interface{}{3, 0, 2},
		v1alpha1.FieldRadius: 2,
	}))
	s.Require().NoError(err)
	s.Equal([]interface{}{
		[]interface{}{2.0, 0.0, 3.0},
		[]interface{}{4.0, 0.0, 1.0},
	}, resp.AsMap()["positions"])
}

func (s *HandlerTestSuite) TestRegenerate() {
	s.mockLevel.EXPECT().
		Regenerate(s.ctx, &level.RegenerateInput{}).
		Return(&level.RegenerateOutput{
			GenerationID:  "gen_1",
			GeneratedAt:   testutils.FixedTime,
			RoomCount:     5,
			WallCount:     8,
			MeshCount:     11,
			TriangleCount: 34,
			Failures: []entities.BuildFailure{
				{
					Kind:     entities.MeshKindWall,
					SourceID: testutils.BrokenWallID,
					Err:      errors.InvalidGeometry("wall has zero length"),
				},
			},
		}, nil)

	resp, err := s.handler.Regenerate(s.ctx, &structpb.Struct{})
	s.Require().NoError(err)

	out := resp.AsMap()
	s.Equal("gen_1", out["generation_id"])
	s.Equal("2024-03-01T12:00:00Z", out["generated_at"])
	s.Equal(11.0, out["mesh_count"])
	s.Equal(34.0, out["triangle_count"])
	s.Equal([]interface{}{
		map[string]interface{}{
			"kind":      "wall",
			"source_id": testutils.BrokenWallID,
			"error":     "wall has zero length",
		},
	}, out["failures"])
}

func (s *HandlerTestSuite) TestGetLayout() {
	s.mockLevel.EXPECT().
		GetLayout(s.ctx, &level.GetLayoutInput{}).
		Return(&level.GetLayoutOutput{
			GenerationID: "gen_1",
			Rooms: []entities.Room{
				{
					ID: "living_room", Type: entities.RoomTypeLivingRoom,
					Size:        mgl32.Vec3{6, 2.8, 8},
					CoverPoints: []mgl32.Vec3{{2, 0, 3}},
				},
			},
			Walls: []entities.Wall{
				{
					ID: "wall-south", Kind: entities.WallKindExterior,
					Start: mgl32.Vec3{7.5, 0, -7.5}, End: mgl32.Vec3{-7.5, 0, -7.5}, Height: 2.8,
					Door: &entities.Door{Position: mgl32.Vec3{0, 0, -7.5}, Width: 0.9},
				},
				{
					ID: "wall-north", Kind: entities.WallKindExterior,
					Start: mgl32.Vec3{-7.5, 0, 7.5}, End: mgl32.Vec3{7.5, 0, 7.5}, Height: 2.8,
				},
			},
		}, nil)

	resp, err := s.handler.GetLayout(s.ctx, &structpb.Struct{})
	s.Require().NoError(err)

	rooms := resp.GetFields()["rooms"].GetListValue().GetValues()
	s.Require().Len(rooms, 1)
	room := rooms[0].GetStructValue().AsMap()
	s.Equal("living_room", room["id"])
	s.Equal("living_room", room["type"])
	s.Equal([]interface{}{[]interface{}{2.0, 0.0, 3.0}}, room["cover_points"])

	walls := resp.GetFields()["walls"].GetListValue().GetValues()
	s.Require().Len(walls, 2)
	south := walls[0].GetStructValue().AsMap()
	s.Equal("exterior", south["kind"])
	s.Contains(south, "door")
	s.NotContains(walls[1].GetStructValue().AsMap(), "door")
}

func (s *HandlerTestSuite) TestGetMeshesWithGeometry() {
	floor, err := geometry.BuildRoomMesh(&entities.Room{
		ID: "kitchen", Type: entities.RoomTypeKitchen,
		Position: mgl32.Vec3{-3, 0, -8}, Size: mgl32.Vec3{4, 2.8, 4},
	})
	s.Require().NoError(err)

	s.mockLevel.EXPECT().
		GetMeshes(s.ctx, &level.GetMeshesInput{SourceID: "kitchen"}).
		Return(&level.GetMeshesOutput{
			GenerationID: "gen_1",
			Meshes:       []entities.Mesh{*floor},
		}, nil)

	resp, err := s.handler.GetMeshes(s.ctx, s.request(map[string]interface{}{
		v1alpha1.FieldSourceID:        "kitchen",
		v1alpha1.FieldIncludeGeometry: true,
	}))
	s.Require().NoError(err)

	meshes := resp.GetFields()["meshes"].GetListValue().GetValues()
	s.Require().Len(meshes, 1)
	mesh := meshes[0].GetStructValue().GetFields()
	s.Equal("floor", mesh["kind"].GetStringValue())
	s.Equal(2.0, mesh["triangle_count"].GetNumberValue())
	s.Equal(float64(render.VertexStride), mesh["vertex_stride"].GetNumberValue())
	s.Len(mesh["vertices"].GetListValue().GetValues(), 4*render.VertexStride)
	s.Len(mesh["indices"].GetListValue().GetValues(), 6)
}

func (s *HandlerTestSuite) TestGetMeshesSummaryOnly() {
	s.mockLevel.EXPECT().
		GetMeshes(s.ctx, &level.GetMeshesInput{}).
		Return(&level.GetMeshesOutput{
			Meshes: []entities.Mesh{{SourceID: "kitchen", Kind: entities.MeshKindFloor}},
		}, nil)

	resp, err := s.handler.GetMeshes(s.ctx, &structpb.Struct{})
	s.Require().NoError(err)

	mesh := resp.GetFields()["meshes"].GetListValue().GetValues()[0].GetStructValue().GetFields()
	s.NotContains(mesh, "vertices")
	s.NotContains(mesh, "indices")
}

func (s *HandlerTestSuite) TestErrorMapping() {
	testCases := []struct {
		name     string
		err      error
		expected codes.Code
	}{
		{"not found", errors.NotFound("no mesh for kitchen"), codes.NotFound},
		{"invalid argument", errors.InvalidArgument("radius must not be negative"), codes.InvalidArgument},
		{"invalid geometry", errors.InvalidGeometry("zero length").WithMeta("primitive_id", "w"), codes.InvalidArgument},
		{"failed precondition", errors.FailedPrecondition("draw before upload"), codes.FailedPrecondition},
		{"plain error", context.DeadlineExceeded, codes.Internal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockLevel.EXPECT().
				GetMeshes(s.ctx, gomock.Any()).
				Return(nil, tc.err)

			_, err := s.handler.GetMeshes(s.ctx, &structpb.Struct{})
			s.Equal(tc.expected, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestInvalidGeometrySurvivesTheWire() {
	s.mockLevel.EXPECT().
		Regenerate(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidGeometry("zero length").WithMeta("primitive_id", "w"))

	_, err := s.handler.Regenerate(s.ctx, &structpb.Struct{})
	s.Require().Error(err)

	restored := errors.FromGRPCError(err)
	s.True(errors.IsInvalidGeometry(restored))
	s.Equal("w", errors.GetMeta(restored)["primitive_id"])
}
