package measure_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dennisklein/sizefmt/internal/measure"
	"github.com/dennisklein/sizefmt/internal/size"
)

func TestProgressReader(t *testing.T) {
	t.Run("reports sizes with the given converter", func(t *testing.T) {
		data := make([]byte, 3000)

		var out bytes.Buffer

		pr := measure.NewProgressReader(bytes.NewReader(data), int64(len(data)), &out, size.Decimal())

		n, err := io.Copy(io.Discard, pr)
		require.NoError(t, err)
		assert.Equal(t, int64(3000), n)
		assert.Equal(t, int64(3000), pr.Current())

		pr.Finish()
		assert.Contains(t, out.String(), "3.00 KB / 3.00 KB")
		assert.Contains(t, out.String(), "100%")
	})

	t.Run("defaults to binary units", func(t *testing.T) {
		var out bytes.Buffer

		pr := measure.NewProgressReader(bytes.NewReader(make([]byte, 1024)), 1024, &out, nil)

		_, err := io.Copy(io.Discard, pr)
		require.NoError(t, err)

		pr.Finish()
		assert.Contains(t, out.String(), "1.00 KiB")
	})

	t.Run("nil writer stays silent", func(t *testing.T) {
		pr := measure.NewProgressReader(bytes.NewReader(make([]byte, 10)), 10, nil, nil)

		_, err := io.Copy(io.Discard, pr)
		require.NoError(t, err)

		pr.Finish()
		assert.Equal(t, int64(10), pr.Current())
	})
}
