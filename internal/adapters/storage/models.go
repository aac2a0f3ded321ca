package storage

import "time"

// ProcessHandleModel is the GORM model for the process_handles table.
// One row per service: a newer launch replaces the older record.
type ProcessHandleModel struct {
	BinaryPath string `gorm:"not null;default:''"`
	CreatedAt  time.Time
	ID         string    `gorm:"not null;uniqueIndex:idx_handle_id"`
	LogPath    string    `gorm:"not null;default:''"`
	PGID       int       `gorm:"column:pgid;not null;default:0"`
	PID        int       `gorm:"column:pid;not null;check:pid > 0"`
	RunID      string    `gorm:"not null;default:'';index:idx_run_id"`
	Service    string    `gorm:"primaryKey"`
	StartedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (ProcessHandleModel) TableName() string { return "process_handles" }
