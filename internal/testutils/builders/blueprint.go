// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/KirkDiggler/fps-level/internal/engine/layout"
	"github.com/KirkDiggler/fps-level/internal/entities"
)

// BlueprintBuilder provides a fluent interface for building test Blueprint instances
type BlueprintBuilder struct {
	bp *layout.Blueprint
}

// NewBlueprintBuilder creates a new builder with an empty footprint of default size
func NewBlueprintBuilder() *BlueprintBuilder {
	return &BlueprintBuilder{
		bp: &layout.Blueprint{
			WallHeight:     layout.DefaultWallHeight,
			FootprintWidth: layout.DefaultFootprintWidth,
			FootprintDepth: layout.DefaultFootprintDepth,
			EntranceSide:   layout.SideSouth,
			DoorWidth:      layout.DefaultDoorWidth,
		},
	}
}

// WithWallHeight sets the ceiling height
func (b *BlueprintBuilder) WithWallHeight(h float32) *BlueprintBuilder {
	b.bp.WallHeight = h
	return b
}

// WithFootprint sets the exterior extent
func (b *BlueprintBuilder) WithFootprint(width, depth float32) *BlueprintBuilder {
	b.bp.FootprintWidth = width
	b.bp.FootprintDepth = depth
	return b
}

// WithEntrance sets the side carrying the entrance door
func (b *BlueprintBuilder) WithEntrance(side layout.Side) *BlueprintBuilder {
	b.bp.EntranceSide = side
	return b
}

// WithDoorWidth sets the width of every door
func (b *BlueprintBuilder) WithDoorWidth(w float32) *BlueprintBuilder {
	b.bp.DoorWidth = w
	return b
}

// WithRoom adds a room
func (b *BlueprintBuilder) WithRoom(t entities.RoomType, x, z, width, depth float32) *BlueprintBuilder {
	b.bp.Rooms = append(b.bp.Rooms, layout.RoomSpec{
		Type:     t,
		Position: mgl32.Vec3{x, 0, z},
		Width:    width,
		Depth:    depth,
	})
	return b
}

// WithWall adds an interior partition
func (b *BlueprintBuilder) WithWall(id string, start, end mgl32.Vec3, hasDoor bool) *BlueprintBuilder {
	b.bp.InteriorWalls = append(b.bp.InteriorWalls, layout.WallSpec{
		ID:      id,
		Start:   start,
		End:     end,
		HasDoor: hasDoor,
	})
	return b
}

// Build returns the constructed blueprint
func (b *BlueprintBuilder) Build() *layout.Blueprint {
	return b.bp
}
