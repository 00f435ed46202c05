package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"synthetic-data-generator/cmd"
	"synthetic-data-generator/internal/core"
	"synthetic-data-generator/internal/database"
	"synthetic-data-generator/internal/messaging"
)

func main() {
	log.Println("Starting Worker Process...")

	cmd.LoadEnvFile()

	cfg, closer := cmd.LoadConfig()
	defer closer.Close()

	if cfg.DatabaseURL == "" || cfg.RabbitMQURL == "" {
		log.Fatalf("DATABASE_URL and RABBITMQ_URL must be set")
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	provider := cmd.CreateStorage(context.Background(), cfg)

	publisher, err := messaging.NewRabbitMQPublisher(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}

	receiver, err := messaging.NewRabbitMQReceiver(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}

	worker := core.NewTaskProcessor(db, provider, publisher, receiver, slog.Default())

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		slog.Info("shutdown signal received")
		worker.Stop()
		os.Exit(0)
	}()

	slog.Info("worker started, waiting for tasks")
	worker.Start()
}
