package ports

import "context"

// BranchReader queries the checked out branch of a repository
type BranchReader interface {
	CurrentBranch(ctx context.Context, repoDir string) (string, error)
}

// SubmoduleFetcher populates submodule content of a repository
type SubmoduleFetcher interface {
	UpdateSubmodules(ctx context.Context, repoDir string) error
}

// GitRepository is the composite interface
type GitRepository interface {
	BranchReader
	SubmoduleFetcher
}
