// Package engine runs the level pipeline: layout, cover, geometry and collision
package engine

import (
	"context"

	"github.com/KirkDiggler/fps-level/internal/engine/collision"
	"github.com/KirkDiggler/fps-level/internal/engine/cover"
	"github.com/KirkDiggler/fps-level/internal/engine/geometry"
	"github.com/KirkDiggler/fps-level/internal/engine/layout"
	"github.com/KirkDiggler/fps-level/internal/entities"
	"github.com/KirkDiggler/fps-level/internal/errors"
)

// Engine turns a blueprint into a finished level
type Engine interface {
	Build(ctx context.Context, input *BuildInput) (*BuildOutput, error)
}

// BuildInput defines the blueprint to build
type BuildInput struct {
	Blueprint *layout.Blueprint
}

// BuildOutput is one complete level. Primitives that failed to build are listed
// in Failures and contribute no mesh.
type BuildOutput struct {
	Rooms     []entities.Room
	Walls     []entities.Wall
	Meshes    []entities.Mesh
	Failures  []entities.BuildFailure
	Collision *collision.Service
}

// Config holds the engine settings
type Config struct {
	CollisionMode collision.Mode
}

// Validate checks the settings
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.CollisionMode != collision.ModeEndpoint && cfg.CollisionMode != collision.ModeSegment {
		vb.InvalidField("CollisionMode", "unknown mode")
	}

	return vb.Build()
}

type engine struct {
	mode collision.Mode
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{mode: cfg.CollisionMode}, nil
}

// Build generates the layout, derives cover, builds meshes in room then wall
// order and prepares the query service over the result
func (e *engine) Build(ctx context.Context, input *BuildInput) (*BuildOutput, error) {
	if input == nil || input.Blueprint == nil {
		return nil, errors.InvalidArgument("blueprint is required")
	}
	if err := input.Blueprint.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid blueprint")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "build canceled")
	}

	out := &BuildOutput{}
	out.Rooms, out.Walls = layout.Generate(input.Blueprint)
	cover.Populate(out.Rooms)

	out.Meshes = make([]entities.Mesh, 0, len(out.Rooms)+len(out.Walls))

	for i := range out.Rooms {
		mesh, err := geometry.BuildRoomMesh(&out.Rooms[i])
		if err != nil {
			out.fail(entities.MeshKindFloor, out.Rooms[i].ID, err)
			continue
		}
		out.Meshes = append(out.Meshes, *mesh)
	}

	for i := range out.Walls {
		mesh, err := geometry.BuildWallMesh(&out.Walls[i])
		if err != nil {
			kind := entities.MeshKindWall
			if out.Walls[i].HasDoor() {
				kind = entities.MeshKindDoorFrame
			}
			out.fail(kind, out.Walls[i].ID, err)
			continue
		}
		out.Meshes = append(out.Meshes, *mesh)
	}

	out.Collision = collision.New(out.Rooms, out.Walls, e.mode)

	return out, nil
}

func (o *BuildOutput) fail(kind entities.MeshKind, id string, err error) {
	o.Failures = append(o.Failures, entities.BuildFailure{
		Kind:     kind,
		SourceID: id,
		Err:      err,
	})
}

// TriangleCount returns the number of triangles over all meshes
func (o *BuildOutput) TriangleCount() int {
	n := 0
	for i := range o.Meshes {
		n += o.Meshes[i].TriangleCount()
	}
	return n
}
