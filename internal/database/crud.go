package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"synthetic-data-generator/internal/core/generate"
	"synthetic-data-generator/internal/core/serialize"
	"synthetic-data-generator/internal/core/types"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrRunNotFound = errors.New("run not found")

// NewRun builds a queued run row for req.
func NewRun(req generate.Request, uploadBucket, uploadPrefix string) Run {
	return Run{
		Id:           uuid.New(),
		Kind:         string(req.Kind),
		Format:       string(req.Format),
		TotalRecords: req.TotalRecords,
		FileCount:    req.FileCount,
		WorkerCount:  req.WorkerCount,
		OutputDir:    req.OutputDir,
		Options: datatypes.NewJSONType(RunOptions{
			Remainder:     string(req.Remainder),
			AvroCodec:     req.AvroCodec,
			ProgressEvery: req.ProgressEvery,
			UploadBucket:  uploadBucket,
			UploadPrefix:  uploadPrefix,
		}),
		Status:       JobQueued,
		CreationTime: time.Now().UTC(),
	}
}

// GenerateRequest rebuilds the request a run was created from. The upload
// provider is left unset for the caller to attach.
func (r *Run) GenerateRequest() generate.Request {
	opts := r.Options.Data()
	return generate.Request{
		TotalRecords:  r.TotalRecords,
		FileCount:     r.FileCount,
		WorkerCount:   r.WorkerCount,
		OutputDir:     r.OutputDir,
		Format:        serialize.Format(r.Format),
		Kind:          types.Kind(r.Kind),
		Remainder:     generate.RemainderPolicy(opts.Remainder),
		AvroCodec:     opts.AvroCodec,
		ProgressEvery: opts.ProgressEvery,
	}
}

func CreateRun(ctx context.Context, db *gorm.DB, run *Run) error {
	if err := db.WithContext(ctx).Create(run).Error; err != nil {
		slog.Error("error creating run", "run_id", run.Id, "error", err)
		return fmt.Errorf("error creating run: %w", err)
	}
	return nil
}

func GetRun(ctx context.Context, db *gorm.DB, runId uuid.UUID) (Run, error) {
	var run Run
	err := db.WithContext(ctx).
		Preload("Files", func(db *gorm.DB) *gorm.DB { return db.Order("file_index") }).
		First(&run, "id = ?", runId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Run{}, ErrRunNotFound
		}
		return Run{}, fmt.Errorf("error getting run %s: %w", runId, err)
	}
	return run, nil
}

type RunFilter struct {
	Status string
	Kind   string
	Limit  int
}

// ListRuns returns runs newest first, without their files.
func ListRuns(ctx context.Context, db *gorm.DB, filter RunFilter) ([]Run, error) {
	query := db.WithContext(ctx).Order("creation_time DESC")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var runs []Run
	if err := query.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("error listing runs: %w", err)
	}
	return runs, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// SaveRunResults stores the per-file outcome of a run and marks it completed
// or failed.
func SaveRunResults(ctx context.Context, db *gorm.DB, runId uuid.UUID, summary generate.Summary) error {
	files := make([]RunFile, 0, len(summary.Results))
	for _, result := range summary.Results {
		file := RunFile{
			RunId:     runId,
			FileIndex: result.Index,
			Path:      result.Path,
			Records:   result.Records,
			Bytes:     result.Bytes,
			ObjectKey: nullString(result.ObjectKey),
			Success:   result.Success,
		}
		if result.Err != nil {
			file.Error = nullString(result.Err.Error())
		}
		files = append(files, file)
	}

	failed := len(summary.Failed())
	status := JobCompleted
	if failed > 0 {
		status = JobFailed
	}

	return db.WithContext(ctx).Transaction(func(txn *gorm.DB) error {
		if len(files) > 0 {
			if err := txn.Create(&files).Error; err != nil {
				return fmt.Errorf("error saving run files: %w", err)
			}
		}

		updates := map[string]any{
			"status":               status,
			"written_records":      summary.Written,
			"dropped_records":      summary.Dropped,
			"succeeded_file_count": len(files) - failed,
			"failed_file_count":    failed,
			"elapsed_ms":           summary.Elapsed.Milliseconds(),
			"completion_time":      time.Now().UTC(),
		}
		if failed > 0 {
			updates["error"] = fmt.Sprintf("%d of %d files failed", failed, len(files))
		}
		if err := txn.Model(&Run{Id: runId}).Updates(updates).Error; err != nil {
			return fmt.Errorf("error updating run: %w", err)
		}
		return nil
	})
}
