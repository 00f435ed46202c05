package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"synthetic-data-generator/internal/core/generate"
	"synthetic-data-generator/internal/core/utils"
	"synthetic-data-generator/internal/database"
	"synthetic-data-generator/internal/messaging"
	"synthetic-data-generator/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxConcurrentOutputDirs = 1024

// TaskProcessor executes queued runs recorded in the manifest database. Start
// may be called from several goroutines; runs sharing an output directory are
// still executed one at a time.
type TaskProcessor struct {
	db        *gorm.DB
	storage   storage.Provider
	publisher messaging.Publisher
	reciever  messaging.Reciever
	logger    *slog.Logger

	outputLocks *utils.MutexMap
}

// NewTaskProcessor builds a processor. The storage provider may be nil when no
// run requests an upload.
func NewTaskProcessor(db *gorm.DB, storage storage.Provider, publisher messaging.Publisher, reciever messaging.Reciever, logger *slog.Logger) *TaskProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskProcessor{
		db:        db,
		storage:   storage,
		publisher: publisher,
		reciever:  reciever,
		logger:    logger,

		outputLocks: utils.NewMutexMap(maxConcurrentOutputDirs),
	}
}

func (proc *TaskProcessor) Start() {
	proc.logger.Info("starting task processor")

	for task := range proc.reciever.Tasks() {
		proc.ProcessTask(task)
	}
}

func (proc *TaskProcessor) Stop() {
	proc.logger.Info("stopping task processor")

	proc.publisher.Close()
	proc.reciever.Close()
}

func (proc *TaskProcessor) ProcessTask(task messaging.Task) {
	ctx := context.Background()

	var err error
	switch task.Type() {
	case messaging.GenerateQueue:
		var payload messaging.GenerateTaskPayload
		if err = json.Unmarshal(task.Payload(), &payload); err != nil {
			proc.logger.Error("error unmarshalling generate task", "error", err)
			if err := task.Reject(); err != nil {
				proc.logger.Error("error rejecting message from queue", "error", err)
			}
			return
		}
		err = proc.processGenerateTask(ctx, payload)

	default:
		proc.logger.Error("received unknown task type", "queue", task.Type())
		if err := task.Reject(); err != nil {
			proc.logger.Error("error rejecting message from queue", "error", err)
		}
		return
	}

	if err != nil {
		proc.logger.Error("error processing task", "queue", task.Type(), "error", err)
		if err := task.Nack(); err != nil {
			proc.logger.Error("error reporting processing failure on message from queue", "error", err)
		}
	} else {
		proc.logger.Info("successfully processed task", "queue", task.Type())
		if err := task.Ack(); err != nil {
			proc.logger.Error("error acknowledging message from queue", "error", err)
		}
	}
}

var errRunNotQueued = errors.New("run is not queued")

func (proc *TaskProcessor) processGenerateTask(ctx context.Context, payload messaging.GenerateTaskPayload) error {
	logger := proc.logger.With("run_id", payload.RunId)

	run, err := database.GetRun(ctx, proc.db, payload.RunId)
	if err != nil {
		return err
	}
	if run.Status != database.JobQueued {
		logger.Warn("skipping run that is not queued", "status", run.Status)
		return fmt.Errorf("%w: run %s has status %s", errRunNotQueued, run.Id, run.Status)
	}

	if err := proc.outputLocks.Lock(run.OutputDir); err != nil {
		return fmt.Errorf("error locking output directory %s: %w", run.OutputDir, err)
	}
	defer proc.outputLocks.Unlock(run.OutputDir) //nolint:errcheck

	if err := database.UpdateRunStatus(ctx, proc.db, run.Id, database.JobRunning); err != nil {
		return fmt.Errorf("error marking run as running: %w", err)
	}

	req := run.GenerateRequest()
	if opts := run.Options.Data(); opts.UploadBucket != "" {
		if proc.storage == nil {
			return proc.failRun(ctx, run.Id, "run requests an upload but no object store is configured")
		}
		req.Upload = &generate.UploadTarget{Provider: proc.storage, Bucket: opts.UploadBucket, Prefix: opts.UploadPrefix}
		if err := proc.storage.CreateBucket(ctx, opts.UploadBucket); err != nil {
			return proc.failRun(ctx, run.Id, fmt.Sprintf("error creating upload bucket: %v", err))
		}
	}

	dispatcher := generate.Dispatcher{Logger: logger}
	summary, err := dispatcher.Dispatch(ctx, req)
	if err != nil {
		return proc.failRun(ctx, run.Id, err.Error())
	}

	if err := database.SaveRunResults(ctx, proc.db, run.Id, summary); err != nil {
		return proc.failRun(ctx, run.Id, fmt.Sprintf("error saving run results: %v", err))
	}

	status := database.JobCompleted
	if !summary.Success() {
		status = database.JobFailed
	}
	proc.publishCompleted(ctx, messaging.RunCompletedPayload{
		RunId:          run.Id,
		Status:         status,
		WrittenRecords: summary.Written,
		FailedFiles:    len(summary.Failed()),
		OutputDir:      run.OutputDir,
	})

	if !summary.Success() {
		return fmt.Errorf("%d of %d files failed", len(summary.Failed()), len(summary.Results))
	}
	return nil
}

func (proc *TaskProcessor) failRun(ctx context.Context, runId uuid.UUID, message string) error {
	if err := database.FailRun(ctx, proc.db, runId, message); err != nil {
		return fmt.Errorf("error marking run as failed: %w", err)
	}
	proc.publishCompleted(ctx, messaging.RunCompletedPayload{RunId: runId, Status: database.JobFailed})
	return errors.New(message)
}

func (proc *TaskProcessor) publishCompleted(ctx context.Context, payload messaging.RunCompletedPayload) {
	if err := proc.publisher.PublishRunCompleted(ctx, payload); err != nil {
		proc.logger.Error("error publishing run completed event", "run_id", payload.RunId, "error", err)
	}
}
