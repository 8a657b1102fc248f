package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/go-gl/mathgl/mgl32"
)

// WallKind tells perimeter walls from partitions
type WallKind int

// Wall kinds
const (
	WallKindUnspecified WallKind = iota
	WallKindExterior
	WallKindInterior
)

// String returns the tag for the wall kind
func (k WallKind) String() string {
	switch k {
	case WallKindExterior:
		return "exterior"
	case WallKindInterior:
		return "interior"
	default:
		return "unspecified"
	}
}

// EntityTypeWall is the rpg-toolkit entity type reported by walls
const EntityTypeWall = "wall"

// Door is an opening in a wall
type Door struct {
	Position mgl32.Vec3 // point on the wall, normally the segment midpoint
	Width    float32
}

// Wall is a vertical surface between two floor-level points
type Wall struct {
	ID     string
	Kind   WallKind
	Start  mgl32.Vec3
	End    mgl32.Vec3
	Height float32

	// Door is nil when the full length of the wall is solid
	Door *Door
}

var _ core.Entity = (*Wall)(nil)

// GetID returns the wall's ID
func (w *Wall) GetID() string {
	return w.ID
}

// GetType returns the entity type for rpg-toolkit
func (w *Wall) GetType() string {
	return EntityTypeWall
}

// HasDoor reports whether the wall has an opening
func (w *Wall) HasDoor() bool {
	return w.Door != nil
}

// Length returns the distance between Start and End
func (w *Wall) Length() float32 {
	return w.End.Sub(w.Start).Len()
}

// Direction returns the unit vector from Start to End, or the zero vector for a
// zero-length wall
func (w *Wall) Direction() mgl32.Vec3 {
	d := w.End.Sub(w.Start)
	if d.Len() == 0 {
		return mgl32.Vec3{}
	}
	return d.Normalize()
}

// Normal returns the horizontal face normal: the direction rotated 90 degrees about +y
func (w *Wall) Normal() mgl32.Vec3 {
	d := w.Direction()
	return mgl32.Vec3{-d.Z(), 0, d.X()}
}

// Clone returns a copy that shares no memory with w
func (w *Wall) Clone() Wall {
	out := *w
	if w.Door != nil {
		door := *w.Door
		out.Door = &door
	}
	return out
}
