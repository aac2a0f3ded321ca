package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "command_timeout_seconds":
				return int(DefaultCommandTimeout.Seconds())
			case "max_log_files":
				return 1000
			case "stop_timeout_seconds":
				return int(DefaultStopTimeout.Seconds())
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "abort_policy":
			return "keep"
		case "branch_policy":
			return "warn"
		case "harness_dir":
			return "~/go/src/github.com/" + DefaultHarnessName
		case "harness_name":
			return DefaultHarnessName
		case "primary_branch":
			return DefaultPrimaryBranch
		case "protoc":
			return DefaultProtoc
		case "schema_dir":
			return "myWireFormat"
		case "source_root":
			return "~/go/src/github.com"
		default:
			return "example"
		}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String {
			switch fieldName {
			case "build_command":
				return DefaultBuildCommand
			case "services":
				return []string{"cart-service", "payment-service"}
			default:
				return []string{"example1", "example2"}
			}
		}
	}

	return nil
}
