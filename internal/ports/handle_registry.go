package ports

import (
	"context"

	"github.com/gocart/cukesvc/internal/domain"
)

// HandleReader reads launched process handles
type HandleReader interface {
	// Get returns domain.ErrHandleNotFound when the service has no handle
	Get(ctx context.Context, service string) (*domain.ProcessHandle, error)
	List(ctx context.Context) ([]domain.ProcessHandle, error)
}

// HandleWriter records and forgets launched process handles
type HandleWriter interface {
	Delete(ctx context.Context, service string) error
	Save(ctx context.Context, handle domain.ProcessHandle) error
}

// HandleRegistry is the composite interface
type HandleRegistry interface {
	HandleReader
	HandleWriter
	Close() error
}
