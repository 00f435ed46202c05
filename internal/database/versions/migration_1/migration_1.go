package migration_1

import (
	"fmt"

	"gorm.io/gorm"
)

type Run struct {
	DroppedRecords int64 `gorm:"default:0"`
}

func Migration(db *gorm.DB) error {
	if err := db.Migrator().AddColumn(&Run{}, "DroppedRecords"); err != nil {
		return fmt.Errorf("error adding DroppedRecords column: %w", err)
	}

	if err := db.Model(&Run{}).
		Where("dropped_records IS NULL").
		Update("dropped_records", 0).Error; err != nil {
		return fmt.Errorf("error setting default value for DroppedRecords: %w", err)
	}

	return nil
}

func Rollback(db *gorm.DB) error {
	if err := db.Migrator().DropColumn(&Run{}, "DroppedRecords"); err != nil {
		return fmt.Errorf("error dropping DroppedRecords column: %w", err)
	}

	return nil
}
