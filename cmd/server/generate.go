package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/fps-level/internal/orchestrators/level"
	"github.com/KirkDiggler/fps-level/internal/render"
)

var generateCollisionMode string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the level and print a summary",
	Long:  `Run one generation headless and print the rooms, walls, meshes and cover points it produced.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateCollisionMode, "collision-mode", "endpoint", "Wall collision mode (endpoint, segment)")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	sink := render.NewBufferSink()
	defer sink.Release()

	svc, err := newLevelService(generateCollisionMode, sink)
	if err != nil {
		return err
	}

	gen, err := svc.Regenerate(ctx, &level.RegenerateInput{})
	if err != nil {
		return fmt.Errorf("failed to generate level: %w", err)
	}

	layoutOut, err := svc.GetLayout(ctx, &level.GetLayoutInput{})
	if err != nil {
		return fmt.Errorf("failed to get layout: %w", err)
	}

	meshOut, err := svc.GetMeshes(ctx, &level.GetMeshesInput{})
	if err != nil {
		return fmt.Errorf("failed to get meshes: %w", err)
	}

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Generation %s\n", gen.GenerationID)
	fmt.Fprintf(out, "==========\n")

	fmt.Fprintf(out, "\nRooms (%d):\n", len(layoutOut.Rooms))
	for _, room := range layoutOut.Rooms {
		fmt.Fprintf(out, "  %-12s at %v size %v, %d cover points\n",
			room.ID, room.Position, room.Size, len(room.CoverPoints))
		for _, c := range room.CoverPoints {
			fmt.Fprintf(out, "    cover %v\n", c)
		}
	}

	fmt.Fprintf(out, "\nWalls (%d):\n", len(layoutOut.Walls))
	for _, wall := range layoutOut.Walls {
		door := ""
		if wall.HasDoor() {
			door = fmt.Sprintf(", door at %v width %g", wall.Door.Position, wall.Door.Width)
		}
		fmt.Fprintf(out, "  %-22s %s %v -> %v length %g%s\n",
			wall.ID, wall.Kind, wall.Start, wall.End, wall.Length(), door)
	}

	fmt.Fprintf(out, "\nMeshes (%d, %d triangles, %d buffers uploaded):\n",
		gen.MeshCount, gen.TriangleCount, len(sink.Buffers()))
	for _, mesh := range meshOut.Meshes {
		fmt.Fprintf(out, "  %-22s %-10s %3d vertices %3d triangles\n",
			mesh.SourceID, mesh.Kind, mesh.VertexCount(), mesh.TriangleCount())
	}

	if len(gen.Failures) > 0 {
		fmt.Fprintf(out, "\nBuild failures (%d):\n", len(gen.Failures))
		for _, f := range gen.Failures {
			fmt.Fprintf(out, "  %s %s: %v\n", f.Kind, f.SourceID, f.Err)
		}
	}

	return nil
}
