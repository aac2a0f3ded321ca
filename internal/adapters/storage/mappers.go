package storage

import (
	"github.com/gocart/cukesvc/internal/domain"
)

// handleModelToDomain converts a ProcessHandleModel (GORM) to domain.ProcessHandle
func handleModelToDomain(m ProcessHandleModel) domain.ProcessHandle {
	return domain.ProcessHandle{
		BinaryPath: m.BinaryPath,
		ID:         m.ID,
		LogPath:    m.LogPath,
		PGID:       m.PGID,
		PID:        m.PID,
		RunID:      m.RunID,
		Service:    m.Service,
		StartedAt:  m.StartedAt.UTC(),
	}
}

// domainToHandleModel converts a domain.ProcessHandle to ProcessHandleModel (GORM)
func domainToHandleModel(h domain.ProcessHandle) ProcessHandleModel {
	return ProcessHandleModel{
		BinaryPath: h.BinaryPath,
		ID:         h.ID,
		LogPath:    h.LogPath,
		PGID:       h.PGID,
		PID:        h.PID,
		RunID:      h.RunID,
		Service:    h.Service,
		StartedAt:  h.StartedAt.UTC(),
	}
}
