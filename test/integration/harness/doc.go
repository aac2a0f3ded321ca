// Package harness provides utilities for integration testing the cukesvc CLI.
// It handles binary compilation, environment isolation, fake service
// checkouts and command execution.
//
// Environment variables managed:
//   - CUKESVC_HOME: Isolated per test (temp directory)
//   - CUKESVC_DEBUG: Disabled to reduce noise
//   - Every other CUKESVC_* variable is removed
package harness
