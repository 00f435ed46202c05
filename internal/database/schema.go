package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	JobQueued    string = "QUEUED"
	JobRunning   string = "RUNNING"
	JobCompleted string = "COMPLETED"
	JobFailed    string = "FAILED"
)

// RunOptions holds the generation settings that have no column of their own.
type RunOptions struct {
	Remainder     string `json:"remainder,omitempty"`
	AvroCodec     string `json:"avro_codec,omitempty"`
	ProgressEvery int64  `json:"progress_every,omitempty"`
	UploadBucket  string `json:"upload_bucket,omitempty"`
	UploadPrefix  string `json:"upload_prefix,omitempty"`
}

// Run is one generation job and its aggregated outcome.
type Run struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	Kind         string `gorm:"size:20;not null"`
	Format       string `gorm:"size:20;not null"`
	TotalRecords int64  `gorm:"not null"`
	FileCount    int    `gorm:"not null"`
	WorkerCount  int    `gorm:"default:0"`
	OutputDir    string `gorm:"not null"`
	Options      datatypes.JSONType[RunOptions]

	Status         string `gorm:"size:20;not null"`
	CreationTime   time.Time
	StartTime      sql.NullTime
	CompletionTime sql.NullTime
	ElapsedMs      int64 `gorm:"default:0"`

	WrittenRecords     int64 `gorm:"default:0"`
	DroppedRecords     int64 `gorm:"default:0"`
	SucceededFileCount int   `gorm:"default:0"`
	FailedFileCount    int   `gorm:"default:0"`
	Error              sql.NullString

	Files []RunFile `gorm:"foreignKey:RunId;constraint:OnDelete:CASCADE"`
}

type RunFile struct {
	RunId     uuid.UUID `gorm:"type:uuid;primaryKey"`
	FileIndex int       `gorm:"primaryKey"`

	Path      string `gorm:"not null"`
	Records   int64  `gorm:"default:0"`
	Bytes     int64  `gorm:"default:0"`
	ObjectKey sql.NullString
	Success   bool
	Error     sql.NullString
}
