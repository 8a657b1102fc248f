package v1alpha1

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/fps-level/internal/entities"
	"github.com/KirkDiggler/fps-level/internal/errors"
	"github.com/KirkDiggler/fps-level/internal/render"
)

// Request and response field names
const (
	FieldPoint           = "point"
	FieldRadius          = "radius"
	FieldSourceID        = "source_id"
	FieldIncludeGeometry = "include_geometry"
)

// vec3FromField reads a required [x, y, z] list
func vec3FromField(req *structpb.Struct, field string) (mgl32.Vec3, error) {
	v, ok := req.GetFields()[field]
	if !ok {
		return mgl32.Vec3{}, errors.InvalidArgumentf("%s is required", field)
	}

	list := v.GetListValue()
	if list == nil || len(list.GetValues()) != 3 {
		return mgl32.Vec3{}, errors.InvalidArgumentf("%s must be a list of three numbers", field)
	}

	var out mgl32.Vec3
	for i, item := range list.GetValues() {
		n, ok := item.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return mgl32.Vec3{}, errors.InvalidArgumentf("%s[%d] must be a number", field, i)
		}
		out[i] = float32(n.NumberValue)
	}
	return out, nil
}

// radiusFromField reads a required non-negative number
func radiusFromField(req *structpb.Struct, field string) (float32, error) {
	v, ok := req.GetFields()[field]
	if !ok {
		return 0, errors.InvalidArgumentf("%s is required", field)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, errors.InvalidArgumentf("%s must be a number", field)
	}
	if n.NumberValue < 0 {
		return 0, errors.InvalidArgumentf("%s must not be negative", field)
	}
	return float32(n.NumberValue), nil
}

func numberValue(f float32) *structpb.Value {
	return structpb.NewNumberValue(float64(f))
}

func vec3Value(v mgl32.Vec3) *structpb.Value {
	return structpb.NewListValue(&structpb.ListValue{
		Values: []*structpb.Value{numberValue(v.X()), numberValue(v.Y()), numberValue(v.Z())},
	})
}

func vec3ListValue(vs []mgl32.Vec3) *structpb.Value {
	values := make([]*structpb.Value, 0, len(vs))
	for _, v := range vs {
		values = append(values, vec3Value(v))
	}
	return structpb.NewListValue(&structpb.ListValue{Values: values})
}

func structValue(fields map[string]*structpb.Value) *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{Fields: fields})
}

func convertRoomToValue(room *entities.Room) *structpb.Value {
	return structValue(map[string]*structpb.Value{
		"id":           structpb.NewStringValue(room.ID),
		"type":         structpb.NewStringValue(room.Type.String()),
		"position":     vec3Value(room.Position),
		"size":         vec3Value(room.Size),
		"cover_points": vec3ListValue(room.CoverPoints),
	})
}

func convertWallToValue(wall *entities.Wall) *structpb.Value {
	fields := map[string]*structpb.Value{
		"id":     structpb.NewStringValue(wall.ID),
		"kind":   structpb.NewStringValue(wall.Kind.String()),
		"start":  vec3Value(wall.Start),
		"end":    vec3Value(wall.End),
		"height": numberValue(wall.Height),
	}
	if wall.HasDoor() {
		fields["door"] = structValue(map[string]*structpb.Value{
			"position": vec3Value(wall.Door.Position),
			"width":    numberValue(wall.Door.Width),
		})
	}
	return structValue(fields)
}

func convertFailuresToValue(failures []entities.BuildFailure) *structpb.Value {
	values := make([]*structpb.Value, 0, len(failures))
	for _, f := range failures {
		values = append(values, structValue(map[string]*structpb.Value{
			"kind":      structpb.NewStringValue(f.Kind.String()),
			"source_id": structpb.NewStringValue(f.SourceID),
			"error":     structpb.NewStringValue(errors.GetMessage(f.Err)),
		}))
	}
	return structpb.NewListValue(&structpb.ListValue{Values: values})
}

// convertMeshToValue summarizes a mesh. With geometry the interleaved vertex
// stream (render.VertexStride floats per vertex) and the index list are included.
func convertMeshToValue(mesh *entities.Mesh, withGeometry bool) *structpb.Value {
	fields := map[string]*structpb.Value{
		"source_id":      structpb.NewStringValue(mesh.SourceID),
		"kind":           structpb.NewStringValue(mesh.Kind.String()),
		"vertex_count":   structpb.NewNumberValue(float64(mesh.VertexCount())),
		"triangle_count": structpb.NewNumberValue(float64(mesh.TriangleCount())),
	}

	if withGeometry {
		packed := render.Interleave(mesh.Vertices)
		vertices := make([]*structpb.Value, 0, len(packed))
		for _, f := range packed {
			vertices = append(vertices, numberValue(f))
		}
		indices := make([]*structpb.Value, 0, len(mesh.Indices))
		for _, idx := range mesh.Indices {
			indices = append(indices, structpb.NewNumberValue(float64(idx)))
		}
		fields["vertex_stride"] = structpb.NewNumberValue(render.VertexStride)
		fields["vertices"] = structpb.NewListValue(&structpb.ListValue{Values: vertices})
		fields["indices"] = structpb.NewListValue(&structpb.ListValue{Values: indices})
	}

	return structValue(fields)
}

func timeValue(t time.Time) *structpb.Value {
	if t.IsZero() {
		return structpb.NewStringValue("")
	}
	return structpb.NewStringValue(t.UTC().Format(time.RFC3339))
}
