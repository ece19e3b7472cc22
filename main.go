package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/freekieb7/grit/filesystem"
	"github.com/freekieb7/grit/http"
	"github.com/freekieb7/grit/listener"
	"github.com/freekieb7/grit/telemetry"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
)

const (
	name    = "github.com/freekieb7/grit"
	addr    = "0.0.0.0:4221"
	workers = http.DefaultWorkerPoolSize

	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("grit", flag.ContinueOnError)
	directory := flags.String("directory", "", "directory /files/ requests read from and write to")
	withTelemetry := flags.Bool("telemetry", false, "export traces, metrics and logs over OTLP/gRPC")
	debug := flags.Bool("debug", false, "log at debug level")
	if err := flags.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	fs := filesystem.NewLocalFileSystem()
	if *directory != "" {
		if err := filesystem.RequireDirectory(fs, *directory); err != nil {
			return err
		}
	}

	router := http.FileRouter(fs)
	router.Use(http.RecoverMiddleware(), http.LoggingMiddleware())

	if *withTelemetry {
		if os.Getenv("OTEL_SERVICE_NAME") == "" {
			os.Setenv("OTEL_SERVICE_NAME", "grit")
		}

		shutdownTelemetry, err := telemetry.Setup(ctx, "grit")
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := shutdownTelemetry(ctx); err != nil {
				logger.Error("telemetry shutdown failed", "error", err)
			}
		}()
		if err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}

		logger = otelslog.NewLogger(name)

		middleware, err := http.TelemetryMiddleware(otel.Tracer(name), otel.Meter(name))
		if err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
		router.Use(middleware)
	}

	server, err := http.NewServer(http.Config{
		Name:    "grit",
		Root:    *directory,
		Workers: workers,
		Router:  router,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	ln, err := listener.Listen(ctx, addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	serverErrCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", ln.Addr().String(), "workers", workers, "directory", *directory)
		serverErrCh <- server.Serve(ln)
	}()

	select {
	case err := <-serverErrCh:
		return err
	case <-ctx.Done():
		stop()
	}

	logger.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-serverErrCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
