package domain

import "fmt"

// AbortPolicy decides what happens to already-started services when a
// later service aborts the run during set-up
type AbortPolicy string

const (
	AbortPolicyKeep     AbortPolicy = "keep"     // Leave started services running
	AbortPolicyTeardown AbortPolicy = "teardown" // Tear down started services
)

// BranchPolicy decides how a checkout on a non-primary branch is treated
type BranchPolicy string

const (
	BranchPolicyFail BranchPolicy = "fail"
	BranchPolicyWarn BranchPolicy = "warn"
)

// ParseAbortPolicy validates an abort policy value
func ParseAbortPolicy(s string) (AbortPolicy, error) {
	switch p := AbortPolicy(s); p {
	case AbortPolicyKeep, AbortPolicyTeardown:
		return p, nil
	default:
		return "", fmt.Errorf("invalid abort policy %q (expected keep or teardown)", s)
	}
}

// ParseBranchPolicy validates a branch policy value
func ParseBranchPolicy(s string) (BranchPolicy, error) {
	switch p := BranchPolicy(s); p {
	case BranchPolicyWarn, BranchPolicyFail:
		return p, nil
	default:
		return "", fmt.Errorf("invalid branch policy %q (expected warn or fail)", s)
	}
}
