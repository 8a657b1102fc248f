package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/fps-level/internal/orchestrators/level"
	"github.com/KirkDiggler/fps-level/internal/render"
)

// Probe path of the simulated player
const (
	frameStep     = float32(1.0 / 60.0)
	playerRadius  = float32(0.4)
	playerHeight  = float32(1.0)
	walkSpeed     = float32(0.8) // radians per second around the path
	pathRadius    = float32(3.5)
	coverSearchAt = float32(2.0)
)

var (
	simulateFrames        int
	simulateRegenerate    int
	simulateCollisionMode string
	simulateRandomStart   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless frame loop over the level",
	Long: `Walk a probe player around the apartment for a number of frames, querying
collision and cover each frame and drawing through the in-memory mesh sink.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simulateFrames, "frames", 600, "Number of frames to run")
	simulateCmd.Flags().IntVar(&simulateRegenerate, "regenerate-every", 0, "Regenerate the level every N frames (0 disables)")
	simulateCmd.Flags().StringVar(&simulateCollisionMode, "collision-mode", "segment", "Wall collision mode (endpoint, segment)")
	simulateCmd.Flags().BoolVar(&simulateRandomStart, "random-start", false, "Start the probe at a rolled angle on its path")
}

// frameState is everything the loop carries from one frame to the next
type frameState struct {
	frame        int
	generationID string
	center       mgl32.Vec3
	angle        float32
	player       mgl32.Vec3

	collisions    int
	coverFrames   int
	regenerations int
	lastBlocker   string
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if simulateFrames < 0 {
		return fmt.Errorf("--frames must not be negative")
	}
	if simulateRegenerate < 0 {
		return fmt.Errorf("--regenerate-every must not be negative")
	}

	ctx := context.Background()

	sink := render.NewBufferSink()
	defer sink.Release()

	svc, err := newLevelService(simulateCollisionMode, sink)
	if err != nil {
		return err
	}

	gen, err := svc.Regenerate(ctx, &level.RegenerateInput{})
	if err != nil {
		return fmt.Errorf("failed to generate level: %w", err)
	}

	state := &frameState{
		generationID: gen.GenerationID,
		center:       mgl32.Vec3{3, playerHeight, 4},
	}
	if simulateRandomStart {
		state.angle, err = rollStartAngle(dice.DefaultRoller)
		if err != nil {
			return err
		}
	}

	for state.frame = 0; state.frame < simulateFrames; state.frame++ {
		if err := stepFrame(ctx, svc, sink, state); err != nil {
			return fmt.Errorf("frame %d: %w", state.frame, err)
		}
	}

	out := cmd.OutOrStdout()
	stats := sink.LastFrame()

	fmt.Fprintf(out, "Simulated %d frames (%s collision)\n", simulateFrames, simulateCollisionMode)
	fmt.Fprintf(out, "  generation:      %s\n", state.generationID)
	fmt.Fprintf(out, "  regenerations:   %d\n", state.regenerations)
	fmt.Fprintf(out, "  colliding:       %d frames\n", state.collisions)
	fmt.Fprintf(out, "  in cover:        %d frames\n", state.coverFrames)
	fmt.Fprintf(out, "  draw calls:      %d per frame, %d triangles\n", stats.DrawCalls, stats.Triangles)
	fmt.Fprintf(out, "  frames drawn:    %d\n", sink.Frames())
	if state.lastBlocker != "" {
		fmt.Fprintf(out, "  last blocker:    %s\n", state.lastBlocker)
	}

	return nil
}

// rollStartAngle picks a whole-degree angle in [0, 360) as radians
func rollStartAngle(roller dice.Roller) (float32, error) {
	deg, err := roller.Roll(360)
	if err != nil {
		return 0, fmt.Errorf("failed to roll start angle: %w", err)
	}
	return mgl32.DegToRad(float32(deg - 1)), nil
}

// stepFrame advances the probe, runs the queries and draws one frame
func stepFrame(ctx context.Context, svc level.Service, sink render.Sink, state *frameState) error {
	if simulateRegenerate > 0 && state.frame > 0 && state.frame%simulateRegenerate == 0 {
		gen, err := svc.Regenerate(ctx, &level.RegenerateInput{})
		if err != nil {
			return fmt.Errorf("failed to regenerate: %w", err)
		}
		state.generationID = gen.GenerationID
		state.regenerations++
	}

	state.angle += walkSpeed * frameStep
	sin, cos := math.Sincos(float64(state.angle))
	state.player = state.center.Add(mgl32.Vec3{
		float32(cos) * pathRadius,
		0,
		float32(sin) * pathRadius,
	})

	collide, err := svc.CheckCollision(ctx, &level.CheckCollisionInput{
		Point:  state.player,
		Radius: playerRadius,
	})
	if err != nil {
		return err
	}
	if collide.Colliding {
		state.collisions++
		if collide.BlockingWallID != state.lastBlocker {
			slog.Debug("Probe touching wall",
				"frame", state.frame,
				"wall_id", collide.BlockingWallID,
				"position", state.player,
			)
		}
		state.lastBlocker = collide.BlockingWallID
	}

	// cover is tested on the floor plane where the cover points live
	feet := mgl32.Vec3{state.player.X(), 0, state.player.Z()}
	inCover, err := svc.CheckCoverPosition(ctx, &level.CheckCoverPositionInput{Point: feet})
	if err != nil {
		return err
	}
	if inCover.InCover {
		state.coverFrames++
		near, err := svc.GetNearestCoverPositions(ctx, &level.GetNearestCoverPositionsInput{
			Point:  feet,
			Radius: coverSearchAt,
		})
		if err != nil {
			return err
		}
		slog.Debug("Probe in cover", "frame", state.frame, "nearby", len(near.Positions))
	}

	return sink.Draw(ctx, mgl32.Ident4())
}
