package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/fps-level/internal/handlers/level/v1alpha1"
)

var (
	meshSourceID    string
	includeGeometry bool
)

var regenerateCmd = &cobra.Command{
	Use:   "regenerate",
	Short: "Rebuild the level on the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, cleanup, err := createLevelClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.Regenerate(ctx, &structpb.Struct{})
		if err != nil {
			return fmt.Errorf("failed to regenerate: %w", err)
		}
		return printResponse(cmd, resp)
	},
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the rooms and walls of the current level",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, cleanup, err := createLevelClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.GetLayout(ctx, &structpb.Struct{})
		if err != nil {
			return fmt.Errorf("failed to get layout: %w", err)
		}
		return printResponse(cmd, resp)
	},
}

var meshesCmd = &cobra.Command{
	Use:   "meshes",
	Short: "Print mesh summaries of the current level",
	Long: `Print mesh summaries. Examples:

  meshes
  meshes --source kitchen --geometry`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, cleanup, err := createLevelClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		req, err := structpb.NewStruct(map[string]interface{}{
			v1alpha1.FieldSourceID:        meshSourceID,
			v1alpha1.FieldIncludeGeometry: includeGeometry,
		})
		if err != nil {
			return err
		}

		resp, err := client.GetMeshes(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to get meshes: %w", err)
		}
		return printResponse(cmd, resp)
	},
}

func init() {
	meshesCmd.Flags().StringVar(&meshSourceID, "source", "", "Only the mesh built from this room or wall ID")
	meshesCmd.Flags().BoolVar(&includeGeometry, "geometry", false, "Include interleaved vertices and indices")
}
