package api

import (
	"database/sql"
	"time"

	"synthetic-data-generator/internal/database"
	"synthetic-data-generator/pkg/api"
)

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

func convertRunFile(f database.RunFile) api.RunFile {
	return api.RunFile{
		Index:     f.FileIndex,
		Path:      f.Path,
		Records:   f.Records,
		Bytes:     f.Bytes,
		ObjectKey: f.ObjectKey.String,
		Success:   f.Success,
		Error:     f.Error.String,
	}
}

func convertRun(r database.Run) api.Run {
	opts := r.Options.Data()
	run := api.Run{
		Id:                 r.Id,
		Kind:               r.Kind,
		Format:             r.Format,
		TotalRecords:       r.TotalRecords,
		FileCount:          r.FileCount,
		WorkerCount:        r.WorkerCount,
		OutputDir:          r.OutputDir,
		UploadBucket:       opts.UploadBucket,
		UploadPrefix:       opts.UploadPrefix,
		Status:             r.Status,
		CreationTime:       r.CreationTime,
		StartTime:          nullTime(r.StartTime),
		CompletionTime:     nullTime(r.CompletionTime),
		ElapsedMs:          r.ElapsedMs,
		WrittenRecords:     r.WrittenRecords,
		DroppedRecords:     r.DroppedRecords,
		SucceededFileCount: r.SucceededFileCount,
		FailedFileCount:    r.FailedFileCount,
		Error:              r.Error.String,
	}
	for _, f := range r.Files {
		run.Files = append(run.Files, convertRunFile(f))
	}
	return run
}

func convertRuns(rs []database.Run) []api.Run {
	runs := make([]api.Run, 0, len(rs))
	for _, r := range rs {
		runs = append(runs, convertRun(r))
	}
	return runs
}
