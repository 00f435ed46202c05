package migration_0

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Schema as of the first release. These types are frozen and must not follow
// later changes to the live models.

type Run struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	Kind         string `gorm:"size:20;not null"`
	Format       string `gorm:"size:20;not null"`
	TotalRecords int64  `gorm:"not null"`
	FileCount    int    `gorm:"not null"`
	WorkerCount  int    `gorm:"default:0"`
	OutputDir    string `gorm:"not null"`
	Options      datatypes.JSON

	Status         string `gorm:"size:20;not null"`
	CreationTime   time.Time
	StartTime      sql.NullTime
	CompletionTime sql.NullTime
	ElapsedMs      int64 `gorm:"default:0"`

	WrittenRecords     int64 `gorm:"default:0"`
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

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&Run{}, &RunFile{})
}
