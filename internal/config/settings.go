package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Settings represents the structure of $CUKESVC_HOME/settings.json.
// Unset fields fall back to defaults; CLI flags and env vars win over them.
type Settings struct {
	AbortPolicy           string      `json:"abort_policy,omitempty"`
	BranchPolicy          string      `json:"branch_policy,omitempty"`
	BuildCommand          []string    `json:"build_command,omitempty"`
	CommandTimeoutSeconds *int        `json:"command_timeout_seconds,omitempty"`
	Debug                 *bool       `json:"debug,omitempty"`
	HarnessDir            string      `json:"harness_dir,omitempty"`
	HarnessName           string      `json:"harness_name,omitempty"`
	MaxLogFiles           *int        `json:"max_log_files,omitempty"`
	PrimaryBranch         string      `json:"primary_branch,omitempty"`
	Protoc                string      `json:"protoc,omitempty"`
	SchemaDir             string      `json:"schema_dir,omitempty"`
	Services              StringArray `json:"services,omitempty"`
	SourceRoot            string      `json:"source_root,omitempty"`
	StopTimeoutSeconds    *int        `json:"stop_timeout_seconds,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $CUKESVC_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	settings.HarnessDir = ExpandPath(settings.HarnessDir)
	settings.SourceRoot = ExpandPath(settings.SourceRoot)

	return &settings, nil
}

// SaveSettings saves settings to $CUKESVC_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(GetHome(), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
