package ports

import (
	"context"

	"github.com/gocart/cukesvc/internal/domain"
)

// SchemaCompiler generates language bindings from schema definitions
type SchemaCompiler interface {
	Compile(ctx context.Context, req domain.CompileRequest) error
}
