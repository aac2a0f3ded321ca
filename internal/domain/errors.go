package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAbortRun         = errors.New("service directory not found, aborting run")
	ErrAmbiguousProcess = errors.New("more than one process matches service name")
	ErrBranchMismatch   = errors.New("service checkout is not on its primary branch")
	ErrBuildFailure     = errors.New("service build failed")
	ErrCompileFailure   = errors.New("schema compilation failed")
	ErrHandleNotFound   = errors.New("process handle not found")
	ErrProcessNotFound  = errors.New("no running process matches service name")
	ErrSchemaFetch      = errors.New("schema submodule fetch failed")
	ErrTimeout          = errors.New("external command timed out")
)

// Stage names a step of the service lifecycle
type Stage string

const (
	StageBranch       Stage = "branch"
	StageBuild        Stage = "build"
	StageProvision    Stage = "provision"
	StageRemoveBinary Stage = "remove-binary"
	StageRemoveEnv    Stage = "remove-env"
	StageSchema       Stage = "schema"
	StageStart        Stage = "start"
	StageTerminate    Stage = "terminate"
)

// StageError ties a failure to the service and lifecycle stage it happened in
type StageError struct {
	Err     error
	Service string
	Stage   Stage
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Service, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError wraps err, returning nil when err is nil
func NewStageError(service string, stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Err: err, Service: service, Stage: stage}
}
