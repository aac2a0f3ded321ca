package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Language is a target language for generated schema bindings
type Language string

const (
	LanguageGo   Language = "go"
	LanguageRuby Language = "ruby"
)

// Default schema layout
const (
	DefaultSchemaDirName = "myWireFormat"
	DefaultSchemaBase    = "my_wire_format"
	SchemaExtension      = ".proto"
)

// ParseLanguage converts a manifest or flag value into a Language
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LanguageGo:
		return LanguageGo, nil
	case LanguageRuby:
		return LanguageRuby, nil
	default:
		return "", fmt.Errorf("unsupported binding language %q", s)
	}
}

// BindingExtension returns the suffix protoc uses for generated files
func (l Language) BindingExtension() string {
	switch l {
	case LanguageGo:
		return ".pb.go"
	case LanguageRuby:
		return ".rb"
	default:
		return "." + string(l)
	}
}

// OutFlag returns the protoc output flag for the language (e.g. --go_out)
func (l Language) OutFlag() string {
	return fmt.Sprintf("--%s_out", l)
}

// SchemaArtifactPair is a schema definition and one generated binding of it.
// The binding is current only when it exists and is strictly newer than
// the definition.
type SchemaArtifactPair struct {
	Definition string
	Dir        string
	Generated  string
	Language   Language
}

// NewSchemaArtifactPair builds the pair for base inside dir
func NewSchemaArtifactPair(dir, base string, lang Language) SchemaArtifactPair {
	return SchemaArtifactPair{
		Definition: filepath.Join(dir, base+SchemaExtension),
		Dir:        dir,
		Generated:  filepath.Join(dir, base+lang.BindingExtension()),
		Language:   lang,
	}
}

// CompileRequest describes a single protoc invocation
type CompileRequest struct {
	Inputs   []string // Relative to WorkDir
	Language Language
	OutDir   string // Relative to WorkDir
	WorkDir  string
}
