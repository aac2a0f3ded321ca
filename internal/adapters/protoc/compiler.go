package protoc

import (
	"context"
	"fmt"
	"time"

	"github.com/gocart/cukesvc/internal/adapters/cmdrun"
	"github.com/gocart/cukesvc/internal/domain"
	"github.com/gocart/cukesvc/internal/logging"
	"github.com/gocart/cukesvc/internal/ports"
)

// Compiler implements ports.SchemaCompiler by invoking protoc
type Compiler struct {
	binary  string
	timeout time.Duration
}

// Verify interface compliance at compile time
var _ ports.SchemaCompiler = (*Compiler)(nil)

// NewCompiler creates a Compiler running the given protoc executable
func NewCompiler(binary string, timeout time.Duration) *Compiler {
	if binary == "" {
		binary = "protoc"
	}
	return &Compiler{binary: binary, timeout: timeout}
}

// Args builds the protoc argument list for req
func Args(req domain.CompileRequest) []string {
	outDir := req.OutDir
	if outDir == "" {
		outDir = "."
	}
	args := []string{fmt.Sprintf("%s=%s", req.Language.OutFlag(), outDir)}
	return append(args, req.Inputs...)
}

// Compile implements SchemaCompiler.Compile
func (c *Compiler) Compile(ctx context.Context, req domain.CompileRequest) error {
	if len(req.Inputs) == 0 {
		return fmt.Errorf("no schema files to compile in %s: %w", req.WorkDir, domain.ErrCompileFailure)
	}

	logging.Logger.Info("Compiling schema", "language", req.Language, "dir", req.WorkDir, "inputs", req.Inputs)

	output, err := cmdrun.Run(ctx, cmdrun.Command{
		Name:    c.binary,
		Args:    Args(req),
		Dir:     req.WorkDir,
		Timeout: c.timeout,
	})
	if err != nil {
		logging.Logger.Error("protoc failed", "error", err, "output", string(output))
		return fmt.Errorf("%w: %w\nOutput: %s", domain.ErrCompileFailure, err, string(output))
	}

	logging.Logger.Info("Schema compiled", "language", req.Language, "dir", req.WorkDir)
	return nil
}
