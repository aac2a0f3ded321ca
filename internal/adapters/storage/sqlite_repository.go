package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/gocart/cukesvc/internal/config"
	"github.com/gocart/cukesvc/internal/domain"
	"github.com/gocart/cukesvc/internal/logging"
	"github.com/gocart/cukesvc/internal/ports"
)

// SQLiteRegistry implements ports.HandleRegistry using GORM
type SQLiteRegistry struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.HandleRegistry = (*SQLiteRegistry)(nil)

// gormLogger wraps the cukesvc logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv(logging.EnvDebug) == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRegistry opens (creating if needed) the handle registry at dbPath
func NewSQLiteRegistry(dbPath string) (*SQLiteRegistry, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Several test processes may tear down against the same registry
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&ProcessHandleModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate process handle schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Opened handle registry", "path", dbPath)
	return &SQLiteRegistry{db: db}, nil
}

// NewSQLiteRegistryForPath opens the registry inside a CUKESVC_HOME directory
func NewSQLiteRegistryForPath(homePath string) (*SQLiteRegistry, error) {
	return NewSQLiteRegistry(filepath.Join(homePath, "state.db"))
}

// Close closes the database connection
func (r *SQLiteRegistry) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements HandleReader.Get
func (r *SQLiteRegistry) Get(ctx context.Context, service string) (*domain.ProcessHandle, error) {
	var model ProcessHandleModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("service = ?", service).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s: %w", service, domain.ErrHandleNotFound)
		}
		return nil, fmt.Errorf("failed to load handle for %s: %w", service, err)
	}

	handle := handleModelToDomain(model)
	return &handle, nil
}

// List implements HandleReader.List, ordered by start time
func (r *SQLiteRegistry) List(ctx context.Context) ([]domain.ProcessHandle, error) {
	var models []ProcessHandleModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("started_at ASC, service ASC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list handles: %w", err)
	}

	handles := make([]domain.ProcessHandle, 0, len(models))
	for _, m := range models {
		handles = append(handles, handleModelToDomain(m))
	}
	return handles, nil
}

// Save implements HandleWriter.Save. An existing record for the same service
// is replaced.
func (r *SQLiteRegistry) Save(ctx context.Context, handle domain.ProcessHandle) error {
	if handle.Service == "" {
		return fmt.Errorf("handle has no service name")
	}
	if handle.PID <= 0 {
		return fmt.Errorf("handle for %s has invalid pid %d", handle.Service, handle.PID)
	}

	model := domainToHandleModel(handle)
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "service"}},
			UpdateAll: true,
		}).Create(&model).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to save handle for %s: %w", handle.Service, err)
	}

	logging.Logger.Debug("Saved process handle", "service", handle.Service, "pid", handle.PID, "run_id", handle.RunID)
	return nil
}

// Delete implements HandleWriter.Delete. Deleting an unknown service is a no-op.
func (r *SQLiteRegistry) Delete(ctx context.Context, service string) error {
	var affected int64
	err := withRetry(func() error {
		result := r.db.WithContext(ctx).Where("service = ?", service).Delete(&ProcessHandleModel{})
		affected = result.RowsAffected
		return result.Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to delete handle for %s: %w", service, err)
	}

	logging.Logger.Debug("Deleted process handle", "service", service, "rows", affected)
	return nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
