package progress

import (
	"io"
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/ytget/yt-batch/internal/messages"
	"github.com/ytget/yt-batch/internal/model"
)

// BarWidth is the width of the rendered bar
const BarWidth = 40

// BarReporter renders each download call as an mpb progress bar
type BarReporter struct {
	out io.Writer
	loc *messages.Localization

	mu      sync.Mutex
	pbp     *mpb.Progress
	bar     *mpb.Bar
	total   int64
	current int64

	// decorators run on the bar goroutine, so they only take lastMu
	lastMu sync.Mutex
	last   model.ProgressEvent
}

// NewBarReporter creates a bar reporter writing to out
func NewBarReporter(out io.Writer, loc *messages.Localization) *BarReporter {
	return &BarReporter{out: out, loc: loc}
}

// Report advances the bar. Unusable ticks are dropped like in line mode.
func (r *BarReporter) Report(event model.ProgressEvent) {
	if !Usable(event) {
		return
	}

	r.lastMu.Lock()
	r.last = event
	r.lastMu.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	total := event.Total()
	if r.bar == nil {
		r.pbp = mpb.New(mpb.WithOutput(r.out), mpb.WithWidth(BarWidth), mpb.WithAutoRefresh())
		// a zero total leaves completion to Finish, so SetTotal keeps working
		r.bar = r.pbp.AddBar(0,
			mpb.PrependDecorators(
				decor.Any(r.qualityDecor, decor.WC{W: 10, C: decor.DindentRight}),
				decor.Counters(decor.SizeB1024(0), "% .2f / % .2f"),
			),
			mpb.AppendDecorators(
				decor.Percentage(decor.WCSyncSpace),
				decor.Any(r.speedDecor, decor.WCSyncSpace),
			),
		)
	}
	if total != r.total {
		// separate video and audio streams arrive as consecutive transfers
		r.bar.SetTotal(total, false)
		r.total = total
	}
	r.bar.SetCurrent(event.DownloadedBytes)
	r.current = event.DownloadedBytes
}

// Finish ends the current bar and waits for the final render. A transfer
// that stopped short of its total is aborted in place instead of completed.
func (r *BarReporter) Finish() {
	r.mu.Lock()
	bar, pbp := r.bar, r.pbp
	done := r.total > 0 && r.current >= r.total
	r.bar, r.pbp, r.total, r.current = nil, nil, 0, 0
	r.mu.Unlock()

	if bar == nil {
		return
	}
	if done {
		bar.SetTotal(-1, true)
	} else {
		bar.Abort(false)
	}
	pbp.Wait()
}

func (r *BarReporter) qualityDecor(decor.Statistics) string {
	r.lastMu.Lock()
	defer r.lastMu.Unlock()
	return QualityLabel(r.last, r.loc)
}

func (r *BarReporter) speedDecor(decor.Statistics) string {
	r.lastMu.Lock()
	defer r.lastMu.Unlock()
	return FormatSize(r.last.Speed) + "/s"
}

// NewReporter returns the reporter for style, falling back to line mode
func NewReporter(style string, out io.Writer, loc *messages.Localization) Reporter {
	if style == StyleBar {
		return NewBarReporter(out, loc)
	}
	return NewLineReporter(out, loc)
}
