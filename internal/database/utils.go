package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func UpdateRunStatus(ctx context.Context, txn *gorm.DB, runId uuid.UUID, status string) error {
	updates := map[string]any{"status": status}
	switch status {
	case JobRunning:
		updates["start_time"] = time.Now().UTC()
	case JobCompleted, JobFailed:
		updates["completion_time"] = time.Now().UTC()
	}

	if err := txn.WithContext(ctx).Model(&Run{Id: runId}).Updates(updates).Error; err != nil {
		slog.Error("error updating run status", "run_id", runId, "status", status, "error", err)
		return err
	}
	return nil
}

// FailRun marks a run failed with a message, used when it could not be
// dispatched at all.
func FailRun(ctx context.Context, txn *gorm.DB, runId uuid.UUID, message string) error {
	updates := map[string]any{
		"status":          JobFailed,
		"error":           message,
		"completion_time": time.Now().UTC(),
	}
	if err := txn.WithContext(ctx).Model(&Run{Id: runId}).Updates(updates).Error; err != nil {
		slog.Error("error marking run failed", "run_id", runId, "error", err)
		return err
	}
	return nil
}
