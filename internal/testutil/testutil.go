// SPDX-FileCopyrightText: 2025 GSI Helmholtzzentrum für Schwerionenforschung GmbH
//
// SPDX-License-Identifier: MPL-2.0

// Package testutil holds helpers shared by the sizefmt test suites.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// ErrorWriter is an io.Writer whose writes always fail with err.
type ErrorWriter struct {
	err error
}

// NewErrorWriter creates an ErrorWriter that fails with the given error.
func NewErrorWriter(err error) *ErrorWriter {
	return &ErrorWriter{err: err}
}

// Write implements io.Writer.
func (e *ErrorWriter) Write(p []byte) (int, error) {
	return 0, e.err
}

// WriteTree creates zero-filled files of the given sizes, keyed by path,
// creating parent directories as needed.
func WriteTree(t *testing.T, fs afero.Fs, files map[string]int) {
	t.Helper()

	for path, n := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(fs, path, make([]byte, n), 0o644))
	}
}
