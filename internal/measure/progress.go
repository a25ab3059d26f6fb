package measure

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/dennisklein/sizefmt/internal/size"
)

// ProgressReader wraps an io.Reader and reports progress.
//
//nolint:govet // fieldalignment: readability preferred over minor memory optimization
type ProgressReader struct {
	reader   io.Reader
	total    int64
	current  int64
	progress progress.Model
	writer   io.Writer
	conv     *size.Converter
	lastPct  int
}

// NewProgressReader creates a new progress reader. Sizes are labelled with
// conv, or with binary units when conv is nil.
func NewProgressReader(reader io.Reader, total int64, writer io.Writer, conv *size.Converter) *ProgressReader {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	if conv == nil {
		conv = size.Binary()
	}

	return &ProgressReader{
		reader:   reader,
		total:    total,
		progress: prog,
		writer:   writer,
		conv:     conv,
		lastPct:  -1,
	}
}

// Read implements io.Reader and updates progress.
func (pr *ProgressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)
	pr.current += int64(n)

	if pr.writer != nil && pr.total > 0 {
		percent := float64(pr.current) / float64(pr.total)
		currentPct := int(percent * 100)

		// Only update every 5% to avoid too many updates
		if currentPct != pr.lastPct && (currentPct%5 == 0 || currentPct == 100 || pr.lastPct == -1) {
			pr.lastPct = currentPct
			pr.render(percent)
		}
	}

	return n, err
}

// Current returns the number of bytes read so far.
func (pr *ProgressReader) Current() int64 {
	return pr.current
}

func (pr *ProgressReader) render(percent float64) {
	if pr.writer == nil {
		return
	}

	// Clear line and move cursor to start
	_, _ = fmt.Fprint(pr.writer, "\r\033[K") //nolint:errcheck // best effort progress display

	bar := pr.progress.ViewAs(percent)

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("green"))

	info := style.Render(fmt.Sprintf(" %3.0f%% (%s / %s)", percent*100, pr.label(pr.current), pr.label(pr.total)))

	_, _ = fmt.Fprint(pr.writer, bar+info) //nolint:errcheck // best effort progress display
}

func (pr *ProgressReader) label(n int64) string {
	s, err := pr.conv.FormatInt64(n)
	if err != nil {
		return strconv.FormatInt(n, 10)
	}

	return s
}

// Finish completes the progress display.
func (pr *ProgressReader) Finish() {
	if pr.writer != nil {
		pr.render(1.0)
		_, _ = fmt.Fprintln(pr.writer) //nolint:errcheck // best effort progress display
	}
}
