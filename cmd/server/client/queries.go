package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/fps-level/internal/handlers/level/v1alpha1"
)

var collideCmd = &cobra.Command{
	Use:   "collide [x] [y] [z] [radius]",
	Short: "Check whether a point is within a radius of any wall",
	Long: `Check wall collision. Examples:

  collide -- -7.5 0 7.4 0.4
  collide 0 1 7.3 0.4`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}

		req, err := structpb.NewStruct(map[string]interface{}{
			v1alpha1.FieldPoint:  nums[:3],
			v1alpha1.FieldRadius: nums[3],
		})
		if err != nil {
			return err
		}

		client, cleanup, err := createLevelClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.CheckCollision(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to check collision: %w", err)
		}
		return printResponse(cmd, resp)
	},
}

var coverCmd = &cobra.Command{
	Use:   "cover [x] [y] [z]",
	Short: "Check whether a point is at a cover point",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}

		req, err := structpb.NewStruct(map[string]interface{}{
			v1alpha1.FieldPoint: nums,
		})
		if err != nil {
			return err
		}

		client, cleanup, err := createLevelClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.CheckCoverPosition(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to check cover: %w", err)
		}
		return printResponse(cmd, resp)
	},
}

var nearestCoverCmd = &cobra.Command{
	Use:   "nearest-cover [x] [y] [z] [radius]",
	Short: "List the cover points within a radius of a point",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}

		req, err := structpb.NewStruct(map[string]interface{}{
			v1alpha1.FieldPoint:  nums[:3],
			v1alpha1.FieldRadius: nums[3],
		})
		if err != nil {
			return err
		}

		client, cleanup, err := createLevelClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.GetNearestCoverPositions(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to find cover: %w", err)
		}
		return printResponse(cmd, resp)
	},
}
