package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snwfog/singly.go/pkg/singly"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	strict, parallel = false, 4

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.ll")
	require.NoError(t, os.WriteFile(path, []byte("push_back 1\npush_back 2\ninsert 1 9\nback\n"), 0o644))

	out, err := execute(t, "", "run", path)
	require.NoError(t, err)

	expected := "== " + path + "\n" +
		"push_back 1 -> [1]\n" +
		"push_back 2 -> [1 2]\n" +
		"insert 1 9 -> [1 9 2]\n" +
		"back -> 2\n" +
		"final [1 9 2]\n"
	assert.Equal(t, expected, out)
}

func TestRunStdin(t *testing.T) {
	out, err := execute(t, "pop_front\npush_front x\n", "run", "-")
	require.NoError(t, err)

	assert.Contains(t, out, "== stdin\n")
	assert.Contains(t, out, "pop_front -> error: pop front: empty list\n")
	assert.Contains(t, out, "final [x]\n")
}

func TestRunStrict(t *testing.T) {
	_, err := execute(t, "erase 0\npush_front x\n", "run", "--strict", "-")
	require.Error(t, err)
	assert.True(t, errors.Is(err, singly.ErrIndexOutOfRange))
}

func TestRunParseError(t *testing.T) {
	_, err := execute(t, "rotate 3\n", "run", "-")
	assert.EqualError(t, err, "stdin:1: rotate: unknown operation")
}

func TestRunMissingFile(t *testing.T) {
	_, err := execute(t, "", "run", filepath.Join(t.TempDir(), "missing.ll"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}
