package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gocart/cukesvc/internal/domain"
)

func TestEnsureSchemaSource_PopulatedDirSkipsFetch(t *testing.T) {
	f := newFixture(t)
	svc := addService(t, f.layout, "alpha")

	err := f.schemaService().EnsureSchemaSource(context.Background(), svc.Dir(), f.layout.SchemaDir(svc))
	assert.NoError(t, err)
}

func TestEnsureSchemaSource_FetchesWhenMissingOrEmpty(t *testing.T) {
	tests := []struct {
		name   string
		create bool
	}{
		{name: "missing", create: false},
		{name: "empty", create: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			serviceDir := t.TempDir()
			schemaDir := filepath.Join(serviceDir, domain.DefaultSchemaDirName)
			if tt.create {
				require.NoError(t, os.Mkdir(schemaDir, 0755))
			}

			f.git.EXPECT().UpdateSubmodules(mock.Anything, serviceDir).
				RunAndReturn(func(ctx context.Context, dir string) error {
					writeFile(t, filepath.Join(schemaDir, "my_wire_format.proto"), "syntax = \"proto3\";\n", 0644)
					return nil
				}).Once()

			err := f.schemaService().EnsureSchemaSource(context.Background(), serviceDir, schemaDir)
			assert.NoError(t, err)
		})
	}
}

func TestEnsureSchemaSource_FetchFailure(t *testing.T) {
	f := newFixture(t)
	serviceDir := t.TempDir()

	f.git.EXPECT().UpdateSubmodules(mock.Anything, serviceDir).Return(errors.New("no network")).Once()

	err := f.schemaService().EnsureSchemaSource(context.Background(), serviceDir, filepath.Join(serviceDir, "myWireFormat"))
	assert.ErrorIs(t, err, domain.ErrSchemaFetch)
}

func TestEnsureSchemaSource_StillEmptyAfterFetch(t *testing.T) {
	f := newFixture(t)
	serviceDir := t.TempDir()

	f.git.EXPECT().UpdateSubmodules(mock.Anything, serviceDir).Return(nil).Once()

	err := f.schemaService().EnsureSchemaSource(context.Background(), serviceDir, filepath.Join(serviceDir, "myWireFormat"))
	assert.ErrorIs(t, err, domain.ErrSchemaFetch)
}

// compileWritesGenerated makes the compiler mock produce pair.Generated
func compileWritesGenerated(t *testing.T, path string) func(context.Context, domain.CompileRequest) error {
	return func(ctx context.Context, req domain.CompileRequest) error {
		writeFile(t, path, "// generated\n", 0644)
		return nil
	}
}

func TestEnsureTargetBinding_CompilesOnceAcrossTwoCalls(t *testing.T) {
	f := newFixture(t)
	svc := addService(t, f.layout, "alpha")
	pair := domain.NewSchemaArtifactPair(f.layout.SchemaDir(svc), f.layout.SchemaBase, domain.LanguageGo)
	require.NoError(t, os.Remove(pair.Generated))

	f.compiler.EXPECT().Compile(mock.Anything, domain.CompileRequest{
		Inputs:   []string{"./myWireFormat/my_wire_format.proto"},
		Language: domain.LanguageGo,
		WorkDir:  svc.Dir(),
	}).RunAndReturn(compileWritesGenerated(t, pair.Generated)).Once()

	schema := f.schemaService()
	require.NoError(t, schema.EnsureTargetBinding(context.Background(), svc.Dir(), pair))
	require.NoError(t, schema.EnsureTargetBinding(context.Background(), svc.Dir(), pair))
}

func TestEnsureTargetBinding_RecompilesAfterSchemaTouched(t *testing.T) {
	f := newFixture(t)
	svc := addService(t, f.layout, "alpha")
	pair := domain.NewSchemaArtifactPair(f.layout.SchemaDir(svc), f.layout.SchemaBase, domain.LanguageGo)
	schema := f.schemaService()

	// Current binding: nothing to do
	require.NoError(t, schema.EnsureTargetBinding(context.Background(), svc.Dir(), pair))

	setMtime(t, pair.Definition, time.Now())

	f.compiler.EXPECT().Compile(mock.Anything, mock.Anything).
		RunAndReturn(compileWritesGenerated(t, pair.Generated)).Once()

	require.NoError(t, schema.EnsureTargetBinding(context.Background(), svc.Dir(), pair))
}

func TestEnsureTargetBinding_EqualMtimeIsStale(t *testing.T) {
	f := newFixture(t)
	svc := addService(t, f.layout, "alpha")
	pair := domain.NewSchemaArtifactPair(f.layout.SchemaDir(svc), f.layout.SchemaBase, domain.LanguageGo)

	same := time.Now().Add(-time.Minute)
	setMtime(t, pair.Definition, same)
	setMtime(t, pair.Generated, same)

	f.compiler.EXPECT().Compile(mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, f.schemaService().EnsureTargetBinding(context.Background(), svc.Dir(), pair))
}

func TestEnsureTargetBinding_CompilesEverySchemaFile(t *testing.T) {
	f := newFixture(t)
	svc := addService(t, f.layout, "alpha")
	pair := domain.NewSchemaArtifactPair(f.layout.SchemaDir(svc), f.layout.SchemaBase, domain.LanguageGo)
	writeFile(t, filepath.Join(pair.Dir, "events.proto"), "syntax = \"proto3\";\n", 0644)
	require.NoError(t, os.Remove(pair.Generated))

	f.compiler.EXPECT().Compile(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, req domain.CompileRequest) {
			assert.Equal(t, []string{"./myWireFormat/events.proto", "./myWireFormat/my_wire_format.proto"}, req.Inputs)
		}).Return(nil).Once()

	require.NoError(t, f.schemaService().EnsureTargetBinding(context.Background(), svc.Dir(), pair))
}

func TestEnsureTargetBinding_MissingDefinition(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	pair := domain.NewSchemaArtifactPair(filepath.Join(dir, "myWireFormat"), "my_wire_format", domain.LanguageGo)

	err := f.schemaService().EnsureTargetBinding(context.Background(), dir, pair)
	assert.ErrorIs(t, err, domain.ErrCompileFailure)
}

func TestEnsureTargetBinding_CompilerFailure(t *testing.T) {
	f := newFixture(t)
	svc := addService(t, f.layout, "alpha")
	pair := domain.NewSchemaArtifactPair(f.layout.SchemaDir(svc), f.layout.SchemaBase, domain.LanguageGo)
	require.NoError(t, os.Remove(pair.Generated))

	f.compiler.EXPECT().Compile(mock.Anything, mock.Anything).
		Return(errors.Join(domain.ErrCompileFailure, errors.New("syntax error"))).Once()

	err := f.schemaService().EnsureTargetBinding(context.Background(), svc.Dir(), pair)
	assert.ErrorIs(t, err, domain.ErrCompileFailure)
}

func TestBindingDir(t *testing.T) {
	f := newFixture(t)
	schema := f.schemaService()

	assert.Equal(t, filepath.Join(f.layout.HarnessDir, "myWireFormat"), schema.BindingDir(f.layout.HarnessName))

	shared := filepath.Join(filepath.Dir(filepath.Dir(f.layout.HarnessDir)), "myWireFormat")
	assert.Equal(t, shared, schema.BindingDir("alpha"))
}

func TestCompileBinding_ReplacesStaleBinding(t *testing.T) {
	f := newFixture(t)
	schema := f.schemaService()
	schemaDir := schema.BindingDir("alpha")
	generated := filepath.Join(schemaDir, "my_wire_format.rb")

	writeFile(t, filepath.Join(schemaDir, "my_wire_format.proto"), "syntax = \"proto3\";\n", 0644)
	writeFile(t, generated, "# stale\n", 0644)

	f.compiler.EXPECT().Compile(mock.Anything, domain.CompileRequest{
		Inputs:   []string{"./my_wire_format.proto"},
		Language: domain.LanguageRuby,
		WorkDir:  schemaDir,
	}).RunAndReturn(func(ctx context.Context, req domain.CompileRequest) error {
		_, err := os.Stat(generated)
		assert.True(t, os.IsNotExist(err), "stale binding should be removed before compiling")
		writeFile(t, generated, "# fresh\n", 0644)
		return nil
	}).Once()

	wd, err := os.Getwd()
	require.NoError(t, err)

	path, err := schema.CompileBinding(context.Background(), "alpha", domain.LanguageRuby)
	require.NoError(t, err)
	assert.Equal(t, generated, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# fresh\n", string(data))

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, after, "working directory must not change")
}

func TestCompileBinding_MissingOutput(t *testing.T) {
	f := newFixture(t)
	schema := f.schemaService()
	schemaDir := schema.BindingDir(f.layout.HarnessName)
	writeFile(t, filepath.Join(schemaDir, "my_wire_format.proto"), "syntax = \"proto3\";\n", 0644)

	f.compiler.EXPECT().Compile(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := schema.CompileBinding(context.Background(), f.layout.HarnessName, domain.LanguageRuby)
	assert.ErrorIs(t, err, domain.ErrCompileFailure)
}
