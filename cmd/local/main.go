package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"synthetic-data-generator/cmd"
	"synthetic-data-generator/internal/api"
	"synthetic-data-generator/internal/config"
	"synthetic-data-generator/internal/core"
	"synthetic-data-generator/internal/database"
	"synthetic-data-generator/internal/messaging"
	"synthetic-data-generator/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/gorm"
)

// requeueRuns puts runs that were queued before the last shutdown back on the
// in-memory queue. Runs left RUNNING by a crash are marked failed.
func requeueRuns(db *gorm.DB, queue *messaging.InMemoryQueue) {
	ctx := context.Background()

	interrupted, err := database.ListRuns(ctx, db, database.RunFilter{Status: database.JobRunning})
	if err != nil {
		log.Fatalf("Failed to fetch runs from database: %v", err)
	}
	for _, run := range interrupted {
		if err := database.FailRun(ctx, db, run.Id, "interrupted by shutdown"); err != nil {
			log.Fatalf("Failed to update run: %v", err)
		}
	}

	queued, err := database.ListRuns(ctx, db, database.RunFilter{Status: database.JobQueued})
	if err != nil {
		log.Fatalf("Failed to fetch runs from database: %v", err)
	}
	for i := len(queued) - 1; i >= 0; i-- {
		if err := queue.PublishGenerateTask(ctx, messaging.GenerateTaskPayload{RunId: queued[i].Id}); err != nil {
			log.Fatalf("Failed to publish generate task: %v", err)
		}
	}
}

func createServer(db *gorm.DB, queue messaging.Publisher, cfg config.Config) *http.Server {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	apiHandler := api.NewBackendService(db, queue, cfg)

	r.Route("/api/v1", func(r chi.Router) {
		apiHandler.AddRoutes(r)
	})

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.APIPort),
		Handler: r,
	}
}

func main() {
	cmd.LoadEnvFile()

	cfg, closer := cmd.LoadConfig()
	defer closer.Close()

	if err := os.MkdirAll(cfg.OutputDir, os.ModePerm); err != nil {
		log.Fatalf("error creating output directory: %v", err)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = filepath.Join(cfg.OutputDir, "db", "runs.db")
	}
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	var provider storage.Provider = storage.NewLocalProvider(filepath.Join(cfg.OutputDir, "storage"))
	if s3 := cmd.CreateStorage(context.Background(), cfg); s3 != nil {
		provider = s3
	}

	slog.Info("starting local generator", "output_dir", cfg.OutputDir, "port", cfg.APIPort)

	queue := messaging.NewInMemoryQueue()

	go func() {
		for event := range queue.Events() {
			slog.Info("run finished", "run_id", event.RunId, "status", event.Status, "records", event.WrittenRecords, "failed_files", event.FailedFiles)
		}
	}()

	worker := core.NewTaskProcessor(db, provider, queue, queue, slog.Default())
	server := createServer(db, queue, cfg)

	slog.Info("starting worker", "concurrency", cfg.RunConcurrency)
	for i := 0; i < cfg.RunConcurrency; i++ {
		go worker.Start()
	}

	requeueRuns(db, queue)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		slog.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}

		slog.Info("shutting down worker")
		worker.Stop()
	}()

	slog.Info("server started", "port", cfg.APIPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %d: %v\n", cfg.APIPort, err)
	}

	slog.Info("server stopped")
}
