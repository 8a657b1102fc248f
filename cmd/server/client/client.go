// Package client provides test commands for the level gRPC service
package client

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/KirkDiggler/fps-level/internal/handlers/level/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the level service",
	Long:  `Client commands exercise a running level server by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(regenerateCmd)
	ClientCmd.AddCommand(layoutCmd)
	ClientCmd.AddCommand(meshesCmd)
	ClientCmd.AddCommand(collideCmd)
	ClientCmd.AddCommand(coverCmd)
	ClientCmd.AddCommand(nearestCoverCmd)
}

// createLevelClient creates a level service client
func createLevelClient() (*v1alpha1.LevelServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewLevelServiceClient(conn), cleanup, nil
}

// parseFloats parses every argument as a number
func parseFloats(args []string) ([]interface{}, error) {
	out := make([]interface{}, 0, len(args))
	for _, arg := range args {
		f, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", arg, err)
		}
		out = append(out, f)
	}
	return out, nil
}

func printResponse(cmd *cobra.Command, msg proto.Message) error {
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
