package main

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
)

// useMemFs swaps the application filesystem for an in-memory one and
// points the default config location into it.
func useMemFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	orig := appFs
	appFs = fs

	t.Cleanup(func() { appFs = orig })
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	return fs
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}
