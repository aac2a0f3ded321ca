package ports

import (
	"context"

	"github.com/gocart/cukesvc/internal/domain"
)

// ServiceBuilder compiles a service binary from its checkout
type ServiceBuilder interface {
	Build(ctx context.Context, svc domain.Service) error
}
