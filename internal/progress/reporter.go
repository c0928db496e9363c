package progress

import (
	"fmt"
	"io"

	"github.com/ytget/yt-batch/internal/messages"
	"github.com/ytget/yt-batch/internal/model"
)

// Progress styles
const (
	StyleLine = "line"
	StyleBar  = "bar"
)

// Reporter consumes progress events of one download call at a time
type Reporter interface {
	// Report is invoked once per progress tick, in transfer order
	Report(event model.ProgressEvent)

	// Finish is invoked when the download call returns
	Finish()
}

type flusher interface {
	Flush() error
}

// LineReporter renders each usable tick over the same terminal line
type LineReporter struct {
	out io.Writer
	loc *messages.Localization
}

// NewLineReporter creates a reporter writing to out
func NewLineReporter(out io.Writer, loc *messages.Localization) *LineReporter {
	return &LineReporter{out: out, loc: loc}
}

// Usable reports whether a tick carries everything needed for display
func Usable(event model.ProgressEvent) bool {
	return event.Status == model.ProgressStatusDownloading &&
		event.Total() > 0 &&
		event.DownloadedBytes > 0 &&
		event.Speed > 0
}

// QualityLabel returns the event's format note or the localized placeholder
func QualityLabel(event model.ProgressEvent, loc *messages.Localization) string {
	if event.FormatNote != "" {
		return event.FormatNote
	}
	return loc.GetText(messages.KeyUnknownQuality)
}

// Report prints the tick, or drops it when fields are missing
func (r *LineReporter) Report(event model.ProgressEvent) {
	if !Usable(event) {
		return
	}

	line := r.loc.Textf(messages.KeyProgressLine,
		event.Percent(),
		FormatSize(float64(event.DownloadedBytes)),
		FormatSize(float64(event.Total())),
		FormatSize(event.Speed),
		QualityLabel(event, r.loc),
	)
	fmt.Fprint(r.out, "\r"+line)
	r.flush()
}

// Finish is a no-op; the next message starts with its own newline
func (r *LineReporter) Finish() {}

// flush pushes buffered writers; os.Stdout is unbuffered and needs nothing
func (r *LineReporter) flush() {
	if w, ok := r.out.(flusher); ok {
		_ = w.Flush()
	}
}
