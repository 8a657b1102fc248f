// Package v1alpha1 handles the level grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/fps-level/internal/errors"
	"github.com/KirkDiggler/fps-level/internal/orchestrators/level"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	LevelService level.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.LevelService == nil {
		return errors.InvalidArgument("level service is required")
	}
	return nil
}

// Handler implements LevelServiceServer
type Handler struct {
	levelService level.Service
}

var _ LevelServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		levelService: cfg.LevelService,
	}, nil
}

// Regenerate rebuilds the level from the configured blueprint
func (h *Handler) Regenerate(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.levelService.Regenerate(ctx, &level.RegenerateInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"generation_id":  structpb.NewStringValue(output.GenerationID),
		"generated_at":   timeValue(output.GeneratedAt),
		"room_count":     structpb.NewNumberValue(float64(output.RoomCount)),
		"wall_count":     structpb.NewNumberValue(float64(output.WallCount)),
		"mesh_count":     structpb.NewNumberValue(float64(output.MeshCount)),
		"triangle_count": structpb.NewNumberValue(float64(output.TriangleCount)),
		"failures":       convertFailuresToValue(output.Failures),
	}}, nil
}

// GetLayout returns the rooms and walls of the current level
func (h *Handler) GetLayout(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.levelService.GetLayout(ctx, &level.GetLayoutInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	rooms := make([]*structpb.Value, 0, len(output.Rooms))
	for i := range output.Rooms {
		rooms = append(rooms, convertRoomToValue(&output.Rooms[i]))
	}
	walls := make([]*structpb.Value, 0, len(output.Walls))
	for i := range output.Walls {
		walls = append(walls, convertWallToValue(&output.Walls[i]))
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"generation_id": structpb.NewStringValue(output.GenerationID),
		"generated_at":  timeValue(output.GeneratedAt),
		"rooms":         structpb.NewListValue(&structpb.ListValue{Values: rooms}),
		"walls":         structpb.NewListValue(&structpb.ListValue{Values: walls}),
		"failures":      convertFailuresToValue(output.Failures),
	}}, nil
}

// GetMeshes returns mesh summaries, with geometry when include_geometry is set
func (h *Handler) GetMeshes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()

	output, err := h.levelService.GetMeshes(ctx, &level.GetMeshesInput{
		SourceID: fields[FieldSourceID].GetStringValue(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	withGeometry := fields[FieldIncludeGeometry].GetBoolValue()
	meshes := make([]*structpb.Value, 0, len(output.Meshes))
	for i := range output.Meshes {
		meshes = append(meshes, convertMeshToValue(&output.Meshes[i], withGeometry))
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"generation_id": structpb.NewStringValue(output.GenerationID),
		"meshes":        structpb.NewListValue(&structpb.ListValue{Values: meshes}),
	}}, nil
}

// CheckCollision reports whether a point is within a radius of any wall
func (h *Handler) CheckCollision(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	point, err := vec3FromField(req, FieldPoint)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	radius, err := radiusFromField(req, FieldRadius)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.levelService.CheckCollision(ctx, &level.CheckCollisionInput{
		Point:  point,
		Radius: radius,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"colliding":        structpb.NewBoolValue(output.Colliding),
		"blocking_wall_id": structpb.NewStringValue(output.BlockingWallID),
	}}, nil
}

// CheckCoverPosition reports whether a point is at a cover point
func (h *Handler) CheckCoverPosition(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	point, err := vec3FromField(req, FieldPoint)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.levelService.CheckCoverPosition(ctx, &level.CheckCoverPositionInput{
		Point: point,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"in_cover": structpb.NewBoolValue(output.InCover),
	}}, nil
}

// GetNearestCoverPositions returns the cover points within a radius of a point
func (h *Handler) GetNearestCoverPositions(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	point, err := vec3FromField(req, FieldPoint)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	radius, err := radiusFromField(req, FieldRadius)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.levelService.GetNearestCoverPositions(ctx, &level.GetNearestCoverPositionsInput{
		Point:  point,
		Radius: radius,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"positions": vec3ListValue(output.Positions),
	}}, nil
}
