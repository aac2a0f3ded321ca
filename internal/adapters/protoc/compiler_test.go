package protoc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocart/cukesvc/internal/domain"
)

func TestArgs(t *testing.T) {
	args := Args(domain.CompileRequest{
		Language: domain.LanguageGo,
		Inputs:   []string{"./myWireFormat/a.proto", "./myWireFormat/b.proto"},
	})
	assert.Equal(t, []string{"--go_out=.", "./myWireFormat/a.proto", "./myWireFormat/b.proto"}, args)

	args = Args(domain.CompileRequest{
		Language: domain.LanguageRuby,
		Inputs:   []string{"./my_wire_format.proto"},
		OutDir:   "gen",
	})
	assert.Equal(t, []string{"--ruby_out=gen", "./my_wire_format.proto"}, args)
}

// fakeProtoc writes a script that records its arguments and exits with code
func fakeProtoc(t *testing.T, code int) (string, string) {
	t.Helper()
	dir := t.TempDir()
	record := filepath.Join(dir, "args.txt")
	script := filepath.Join(dir, "protoc")
	body := "#!/bin/sh\necho \"$@\" > " + record + "\nexit " + strconv.Itoa(code) + "\n"
	require.NoError(t, os.WriteFile(script, []byte(body), 0755))
	return script, record
}

func TestCompile_InvokesBinaryInWorkDir(t *testing.T) {
	binary, record := fakeProtoc(t, 0)
	workDir := t.TempDir()

	err := NewCompiler(binary, 10*time.Second).Compile(context.Background(), domain.CompileRequest{
		Language: domain.LanguageGo,
		Inputs:   []string{"./myWireFormat/my_wire_format.proto"},
		WorkDir:  workDir,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(record)
	require.NoError(t, err)
	assert.Equal(t, "--go_out=. ./myWireFormat/my_wire_format.proto\n", string(data))
}

func TestCompile_FailureIsCompileFailure(t *testing.T) {
	binary, _ := fakeProtoc(t, 1)

	err := NewCompiler(binary, 10*time.Second).Compile(context.Background(), domain.CompileRequest{
		Language: domain.LanguageRuby,
		Inputs:   []string{"./my_wire_format.proto"},
		WorkDir:  t.TempDir(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCompileFailure))
}

func TestCompile_NoInputs(t *testing.T) {
	err := NewCompiler("protoc", time.Second).Compile(context.Background(), domain.CompileRequest{
		Language: domain.LanguageGo,
		WorkDir:  t.TempDir(),
	})
	assert.ErrorIs(t, err, domain.ErrCompileFailure)
}
