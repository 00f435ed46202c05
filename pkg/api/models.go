package api

import (
	"time"

	"github.com/google/uuid"
)

// CreateRunRequest queues a generation run. Zero values fall back to the
// server's configured defaults. OutputName selects a subdirectory of the
// server's output directory and defaults to the run id.
type CreateRunRequest struct {
	Kind          string
	Format        string
	TotalRecords  int64
	FileCount     int
	WorkerCount   int
	OutputName    string
	Remainder     string
	AvroCodec     string
	ProgressEvery int64

	UploadBucket string
	UploadPrefix string
}

type CreateRunResponse struct {
	RunId uuid.UUID
}

type ListRunsParams struct {
	Status string `schema:"status"`
	Kind   string `schema:"kind"`
	Limit  int    `schema:"limit"`
}

type RunFile struct {
	Index     int
	Path      string
	Records   int64
	Bytes     int64
	ObjectKey string `json:"ObjectKey,omitempty"`
	Success   bool
	Error     string `json:"Error,omitempty"`
}

type Run struct {
	Id           uuid.UUID
	Kind         string
	Format       string
	TotalRecords int64
	FileCount    int
	WorkerCount  int
	OutputDir    string
	UploadBucket string `json:"UploadBucket,omitempty"`
	UploadPrefix string `json:"UploadPrefix,omitempty"`

	Status         string
	CreationTime   time.Time
	StartTime      *time.Time `json:"StartTime,omitempty"`
	CompletionTime *time.Time `json:"CompletionTime,omitempty"`
	ElapsedMs      int64

	WrittenRecords     int64
	DroppedRecords     int64
	SucceededFileCount int
	FailedFileCount    int
	Error              string `json:"Error,omitempty"`

	Files []RunFile `json:"Files,omitempty"`
}
