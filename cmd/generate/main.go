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

	"synthetic-data-generator/cmd"
	"synthetic-data-generator/internal/config"
	"synthetic-data-generator/internal/core/generate"
	"synthetic-data-generator/internal/database"
	"synthetic-data-generator/internal/messaging"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"gorm.io/gorm"
)

const (
	exitFailedFiles = 1
	exitUsage       = 2
)

var (
	outFlag       = flag.String("out", "", "output directory (OUTPUT_DIR)")
	countFlag     = flag.Int64("count", -1, "total number of records to generate")
	filesFlag     = flag.Int("files", 1, "number of output files")
	workersFlag   = flag.Int("workers", 0, "number of concurrent writers, 0 for one per file (WORKERS)")
	formatFlag    = flag.String("format", "", "output format, avro or json (OUTPUT_FORMAT)")
	kindFlag      = flag.String("kind", "", "record kind, employee (E) or teacher (T) (RECORD_KIND)")
	remainderFlag = flag.String("remainder", "", "what to do with records that do not divide evenly, distribute or drop (REMAINDER_POLICY)")
	codecFlag     = flag.String("codec", "", "avro block codec, null, deflate, snappy or zstd (AVRO_CODEC)")
	progressFlag  = flag.Int64("progress", 0, "records between progress log lines, negative to disable (PROGRESS_EVERY)")
)

func usageError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	flag.Usage()
	os.Exit(exitUsage)
}

// applyFlags overrides environment values with the flags given on the command line.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.OutputDir = *outFlag
		case "workers":
			cfg.Workers = *workersFlag
		case "format":
			cfg.OutputFormat = *formatFlag
		case "kind":
			cfg.RecordKind = *kindFlag
		case "remainder":
			cfg.RemainderPolicy = *remainderFlag
		case "codec":
			cfg.AvroCodec = *codecFlag
		case "progress":
			cfg.ProgressEvery = *progressFlag
		}
	})
}

func main() {
	cmd.LoadEnvFile()

	if flag.NArg() > 0 {
		usageError("unexpected arguments: %v", flag.Args())
	}
	if *countFlag < 0 {
		usageError("-count is required and must not be negative")
	}

	cfg, err := config.Load()
	if err != nil {
		usageError("%v", err)
	}
	applyFlags(&cfg)

	logger, closer, err := cfg.NewLogger()
	if err != nil {
		usageError("%v", err)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	req, err := cfg.Request(*countFlag, *filesFlag)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		var cerr *generate.ConfigurationError
		if errors.As(err, &cerr) {
			usageError("%v", err)
		}
		log.Fatalf("error building request: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if provider := cmd.CreateStorage(ctx, cfg); provider != nil && cfg.UploadBucket != "" {
		if err := provider.CreateBucket(ctx, cfg.UploadBucket); err != nil {
			log.Fatalf("error creating upload bucket: %v", err)
		}
		req.Upload = &generate.UploadTarget{Provider: provider, Bucket: cfg.UploadBucket, Prefix: cfg.UploadPrefix}
	}

	var db *gorm.DB
	runId := uuid.Nil
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		run := database.NewRun(req, cfg.UploadBucket, cfg.UploadPrefix)
		if err := database.CreateRun(ctx, db, &run); err != nil {
			log.Fatalf("failed to record run: %v", err)
		}
		if err := database.UpdateRunStatus(ctx, db, run.Id, database.JobRunning); err != nil {
			log.Fatalf("failed to update run: %v", err)
		}
		runId = run.Id
		logger = logger.With("run_id", runId)
	}

	var publisher messaging.Publisher
	if cfg.RabbitMQURL != "" {
		publisher, err = messaging.NewRabbitMQPublisher(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	}

	bar := progressbar.NewOptions(req.FileCount,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("writing files"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	dispatcher := generate.Dispatcher{
		Logger: logger,
		OnResult: func(generate.FileTaskResult) {
			_ = bar.Add(1)
		},
	}

	summary, err := dispatcher.Dispatch(ctx, req)
	_ = bar.Finish()
	if err != nil {
		if db != nil {
			_ = database.FailRun(ctx, db, runId, err.Error())
		}
		log.Fatalf("generation failed: %v", err)
	}

	status := database.JobCompleted
	if !summary.Success() {
		status = database.JobFailed
	}

	if db != nil {
		if err := database.SaveRunResults(ctx, db, runId, summary); err != nil {
			slog.Error("error saving run results", "run_id", runId, "error", err)
			status = database.JobFailed
			_ = database.FailRun(ctx, db, runId, fmt.Sprintf("error saving run results: %v", err))
		}
	}

	if publisher != nil {
		if err := publisher.PublishRunCompleted(ctx, messaging.RunCompletedPayload{
			RunId:          runId,
			Status:         status,
			WrittenRecords: summary.Written,
			FailedFiles:    len(summary.Failed()),
			OutputDir:      req.OutputDir,
		}); err != nil {
			slog.Error("error publishing run completed event", "error", err)
		}
	}

	printSummary(summary)

	if !summary.Success() {
		closer.Close()
		os.Exit(exitFailedFiles)
	}
}

func printSummary(summary generate.Summary) {
	var bytes uint64
	for _, r := range summary.Results {
		bytes += uint64(r.Bytes)
	}

	fmt.Printf("wrote %s %s records to %d %s files (%s) in %s\n",
		humanize.Comma(summary.Written), summary.Kind,
		len(summary.Results)-len(summary.Failed()), summary.Format,
		humanize.Bytes(bytes), summary.Elapsed.Round(time.Millisecond))
	if summary.Dropped > 0 {
		fmt.Printf("dropped %s records that did not divide evenly across files\n", humanize.Comma(summary.Dropped))
	}
	for _, r := range summary.Failed() {
		fmt.Printf("failed: %s: %v\n", r.Path, r.Err)
	}
}
