package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCmd(t *testing.T) {
	t.Run("creates version command", func(t *testing.T) {
		cmd := newVersionCmd()

		require.NotNil(t, cmd)
		assert.Equal(t, "version", cmd.Use)
		assert.NotEmpty(t, cmd.Short)
		assert.NotNil(t, cmd.RunE)
	})

	t.Run("rejects arguments", func(t *testing.T) {
		cmd := newVersionCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"extra"})

		assert.Error(t, cmd.Execute())
	})

	t.Run("executes version command", func(t *testing.T) {
		cmd := newVersionCmd()

		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetErr(&buf)
		cmd.SetArgs([]string{})

		err := cmd.Execute()
		require.NoError(t, err)

		// Version output should contain something (even if it's "(devel)")
		assert.Contains(t, buf.String(), "sizefmt ")
	})
}
