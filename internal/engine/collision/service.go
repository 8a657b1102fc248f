// Package collision answers proximity queries over a finalized layout.
//
// A Service reads the rooms and walls it was given and keeps no data of its own, so
// it must be built over slices that are no longer modified.
package collision

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/KirkDiggler/fps-level/internal/engine/geometry"
	"github.com/KirkDiggler/fps-level/internal/entities"
	"github.com/KirkDiggler/fps-level/internal/errors"
)

// CoverThreshold is the distance under which a point counts as being at a cover point
const CoverThreshold float32 = 0.5

// Mode selects how wall proximity is measured
type Mode int

// Collision modes
const (
	// ModeEndpoint measures distance to each wall's start point only. It misses
	// contacts along the length of a wall.
	ModeEndpoint Mode = iota
	// ModeSegment measures horizontal distance to the solid spans of each wall,
	// leaving door openings passable below the door height.
	ModeSegment
)

// String returns the flag value for the mode
func (m Mode) String() string {
	switch m {
	case ModeEndpoint:
		return "endpoint"
	case ModeSegment:
		return "segment"
	default:
		return "unknown"
	}
}

// ParseMode parses a flag value into a Mode
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "endpoint":
		return ModeEndpoint, nil
	case "segment":
		return ModeSegment, nil
	default:
		return ModeEndpoint, errors.InvalidArgumentf("unknown collision mode %q", s)
	}
}

// Service runs wall and cover queries
type Service struct {
	rooms []entities.Room
	walls []entities.Wall
	mode  Mode
}

// New creates a query service over the given layout
func New(rooms []entities.Room, walls []entities.Wall, mode Mode) *Service {
	return &Service{
		rooms: rooms,
		walls: walls,
		mode:  mode,
	}
}

// Mode returns the wall proximity mode
func (s *Service) Mode() Mode {
	return s.mode
}

// CheckCollision reports whether point lies within radius of any wall
func (s *Service) CheckCollision(point mgl32.Vec3, radius float32) bool {
	return s.BlockingWall(point, radius) != nil
}

// BlockingWall returns the first wall within radius of point, or nil
func (s *Service) BlockingWall(point mgl32.Vec3, radius float32) *entities.Wall {
	for i := range s.walls {
		wall := &s.walls[i]
		if s.wallDistance(point, wall) < radius {
			return wall
		}
	}
	return nil
}

// CheckCoverPosition reports whether point is within CoverThreshold of a cover point
func (s *Service) CheckCoverPosition(point mgl32.Vec3) bool {
	for i := range s.rooms {
		for _, c := range s.rooms[i].CoverPoints {
			if point.Sub(c).Len() < CoverThreshold {
				return true
			}
		}
	}
	return false
}

// GetNearestCoverPositions returns every cover point within radius of point in
// room then cover point order. The result is not sorted by distance.
func (s *Service) GetNearestCoverPositions(point mgl32.Vec3, radius float32) []mgl32.Vec3 {
	var near []mgl32.Vec3
	for i := range s.rooms {
		for _, c := range s.rooms[i].CoverPoints {
			if point.Sub(c).Len() < radius {
				near = append(near, c)
			}
		}
	}
	return near
}

func (s *Service) wallDistance(point mgl32.Vec3, wall *entities.Wall) float32 {
	if s.mode == ModeSegment {
		return segmentDistance(point, wall)
	}
	return point.Sub(wall.Start).Len()
}

// segmentDistance is the horizontal distance from point to the nearest solid part
// of the wall
func segmentDistance(point mgl32.Vec3, wall *entities.Wall) float32 {
	flat := func(v mgl32.Vec3) mgl32.Vec2 { return mgl32.Vec2{v.X(), v.Z()} }

	start, end := flat(wall.Start), flat(wall.End)
	p := flat(point)

	length := end.Sub(start).Len()
	if length == 0 {
		return p.Sub(start).Len()
	}
	dir := end.Sub(start).Mul(1 / length)

	// position of the point's projection along the wall, clamped to the wall
	along := mgl32.Clamp(p.Sub(start).Dot(dir), 0, length)

	if wall.HasDoor() && point.Y() < geometry.DoorHeight {
		center := flat(wall.Door.Position).Sub(start).Dot(dir)
		half := wall.Door.Width / 2
		if along > center-half && along < center+half {
			// nearest solid point is one of the jamb edges
			if along-(center-half) < (center+half)-along {
				along = center - half
			} else {
				along = center + half
			}
		}
	}

	return p.Sub(start.Add(dir.Mul(along))).Len()
}
