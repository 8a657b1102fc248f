package main

import (
	"fmt"

	"github.com/KirkDiggler/fps-level/internal/engine/collision"
	"github.com/KirkDiggler/fps-level/internal/engine/layout"
	"github.com/KirkDiggler/fps-level/internal/orchestrators/level"
	"github.com/KirkDiggler/fps-level/internal/pkg/clock"
	"github.com/KirkDiggler/fps-level/internal/pkg/idgen"
	"github.com/KirkDiggler/fps-level/internal/render"
)

// newLevelService wires the orchestrator over the default apartment
func newLevelService(collisionMode string, sink render.Sink) (level.Service, error) {
	mode, err := collision.ParseMode(collisionMode)
	if err != nil {
		return nil, fmt.Errorf("invalid --collision-mode: %w", err)
	}

	svc, err := level.NewOrchestrator(&level.Config{
		Blueprint:     layout.DefaultApartment(),
		IDGenerator:   idgen.NewUUID("gen"),
		Clock:         clock.New(),
		MeshSink:      sink,
		CollisionMode: mode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create level service: %w", err)
	}

	return svc, nil
}
