package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/fps-level/internal/handlers/level/v1alpha1"
	"github.com/KirkDiggler/fps-level/internal/orchestrators/level"
	"github.com/KirkDiggler/fps-level/internal/render"
)

var (
	grpcPort            int
	serverCollisionMode string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Generate the level and serve layout, mesh, collision and cover queries over gRPC.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&serverCollisionMode, "collision-mode", "endpoint", "Wall collision mode (endpoint, segment)")
}

func runServer(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping")
		cancel()
	}()

	sink := render.NewBufferSink()
	defer sink.Release()

	levelService, err := newLevelService(serverCollisionMode, sink)
	if err != nil {
		return err
	}

	if _, err := levelService.Regenerate(ctx, &level.RegenerateInput{}); err != nil {
		return fmt.Errorf("failed to generate level: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	levelHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		LevelService: levelService,
	})
	if err != nil {
		return fmt.Errorf("failed to create level handler: %w", err)
	}

	v1alpha1.RegisterLevelServiceServer(srv, levelHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", grpcPort, "collision_mode", serverCollisionMode)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
