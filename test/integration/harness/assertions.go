package harness

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// StatusEntry is one element of `cukesvc status --format json`
type StatusEntry struct {
	Alive     bool      `json:"alive"`
	LogPath   string    `json:"log_path"`
	PGID      int       `json:"pgid"`
	PID       int       `json:"pid"`
	RunID     string    `json:"run_id"`
	Service   string    `json:"service"`
	StartedAt time.Time `json:"started_at"`
}

// ansi matches lipgloss styling, which is dropped when stdout is not a tty
// but tolerated here in case a terminal profile is forced
var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Zero(tb, result.ExitCode, "expected success: %s", result)
}

func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotZero(tb, result.ExitCode, "expected failure: %s", result)
}

func AssertStdoutContains(tb testing.TB, result CommandResult, want string) {
	tb.Helper()
	assert.Contains(tb, plain(result.Stdout), want, "%s", result)
}

func AssertStdoutNotContains(tb testing.TB, result CommandResult, unwanted string) {
	tb.Helper()
	assert.NotContains(tb, plain(result.Stdout), unwanted, "%s", result)
}

func AssertStdoutEmpty(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(result.Stdout), "%s", result)
}

// AssertError checks the command failed and printed an "Error:" line
// containing want
func AssertError(tb testing.TB, result CommandResult, want string) {
	tb.Helper()
	AssertFailure(tb, result)
	for _, line := range strings.Split(result.Stderr, "\n") {
		if strings.HasPrefix(line, "Error: ") && strings.Contains(line, want) {
			return
		}
	}
	assert.Fail(tb, "missing error line", "want %q in an Error: line: %s", want, result)
}

// ReportLine returns the run report line of service, failing the test if
// the report does not list it
func ReportLine(tb testing.TB, result CommandResult, service string) string {
	tb.Helper()
	for _, line := range strings.Split(plain(result.Stdout), "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == service {
			return strings.TrimSpace(line)
		}
	}
	require.Failf(tb, "service missing from report", "no line for %s: %s", service, result)
	return ""
}

// AssertReportLine checks the report line of service contains each of want
func AssertReportLine(tb testing.TB, result CommandResult, service string, want ...string) {
	tb.Helper()
	line := ReportLine(tb, result, service)
	for _, w := range want {
		assert.Contains(tb, line, w, "report line of %s", service)
	}
}

// ParsePID reads the output of `cukesvc pid`
func ParsePID(tb testing.TB, result CommandResult) int {
	tb.Helper()
	AssertSuccess(tb, result)
	pid, err := strconv.Atoi(strings.TrimSpace(result.Stdout))
	require.NoError(tb, err, "pid output is not a number: %s", result)
	require.Positive(tb, pid)
	return pid
}

// ParseStatus decodes the output of `cukesvc status --format json`, keyed
// by service
func ParseStatus(tb testing.TB, result CommandResult) map[string]StatusEntry {
	tb.Helper()
	AssertSuccess(tb, result)

	var entries []StatusEntry
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), &entries), "status is not JSON: %s", result)

	byService := make(map[string]StatusEntry, len(entries))
	for _, entry := range entries {
		require.NotContains(tb, byService, entry.Service, "duplicate status entry")
		byService[entry.Service] = entry
	}
	return byService
}

// DecodeJSON unmarshals stdout into target
func DecodeJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target), "stdout is not JSON: %s", result)
}

func plain(s string) string {
	return ansi.ReplaceAllString(s, "")
}
