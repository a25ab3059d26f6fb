package size_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dennisklein/sizefmt/internal/size"
)

func TestParseSize(t *testing.T) {
	//nolint:govet // fieldalignment: test readability over optimization
	tests := []struct {
		in   string
		want size.Size
	}{
		{"0 B", 0},
		{"42 B", 42},
		{"10 MB", 10_000_000},
		{"10 MiB", 10 << 20},
		{"1 kib", 1024},
		{"1 kb", 1000},
		{"1.5 GiB", 3 << 29},
		{"2TB", 2_000_000_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := size.ParseSize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSizeInvalid(t *testing.T) {
	t.Run("unknown unit", func(t *testing.T) {
		_, err := size.ParseSize("5 XX")
		require.ErrorIs(t, err, size.ErrParse)
		assert.Contains(t, err.Error(), "unknown unit")
	})

	t.Run("missing unit", func(t *testing.T) {
		_, err := size.ParseSize("1024")
		assert.ErrorIs(t, err, size.ErrParse)
	})

	t.Run("overflow reports range not unit", func(t *testing.T) {
		_, err := size.ParseSize("1 YB")
		require.ErrorIs(t, err, size.ErrParse)
		assert.Contains(t, err.Error(), "64-bit")

		_, err = size.ParseSize("20 EiB")
		require.ErrorIs(t, err, size.ErrParse)
		assert.Contains(t, err.Error(), "64-bit")
	})
}

func TestSizeString(t *testing.T) {
	assert.Equal(t, "0 B", size.Size(0).String())
	assert.Equal(t, "1.50 KiB", size.Size(1536).String())
	assert.Equal(t, uint64(1536), size.Size(1536).Bytes())
}

func TestSizeFlag(t *testing.T) {
	t.Run("implements pflag.Value", func(t *testing.T) {
		var limit size.Size

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.Var(&limit, "max", "maximum size")

		require.NoError(t, flags.Parse([]string{"--max", "1.5 GiB"}))
		assert.Equal(t, size.Size(3<<29), limit)
		assert.Equal(t, "size", flags.Lookup("max").Value.Type())
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		var limit size.Size

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.SetOutput(&discard{})
		flags.Var(&limit, "max", "maximum size")

		require.Error(t, flags.Parse([]string{"--max", "lots"}))
		assert.Zero(t, limit)
	})
}

func TestSizeText(t *testing.T) {
	text, err := size.Size(1536).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1536 B", string(text))

	var s size.Size
	require.NoError(t, s.UnmarshalText(text))
	assert.Equal(t, size.Size(1536), s)

	assert.Error(t, s.UnmarshalText([]byte("many bytes")))
}

func TestSizeYAML(t *testing.T) {
	type doc struct {
		Limit size.Size `yaml:"limit"`
	}

	t.Run("decodes human-readable scalar", func(t *testing.T) {
		var d doc
		require.NoError(t, yaml.Unmarshal([]byte("limit: 2 GB\n"), &d))
		assert.Equal(t, size.Size(2_000_000_000), d.Limit)
	})

	t.Run("decodes quoted scalar", func(t *testing.T) {
		var d doc
		require.NoError(t, yaml.Unmarshal([]byte(`limit: "512 KiB"`+"\n"), &d))
		assert.Equal(t, size.Size(512<<10), d.Limit)
	})

	t.Run("rejects bare numbers", func(t *testing.T) {
		var d doc
		assert.Error(t, yaml.Unmarshal([]byte("limit: 1024\n"), &d))
	})

	t.Run("rejects sequences", func(t *testing.T) {
		var d doc
		err := yaml.Unmarshal([]byte("limit: [1, 2]\n"), &d)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be a string")
	})
}

type discard struct{}

func (discard) Write(p []byte) (int, error) {
	return len(p), nil
}
