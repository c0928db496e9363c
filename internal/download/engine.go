package download

import (
	"context"
	"fmt"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-batch/internal/model"
)

// DefaultProgressInterval is how often yt-dlp progress is forwarded
const DefaultProgressInterval = 500 * time.Millisecond

// Engine operations, used in error values
const (
	OpInfo     = "info"
	OpDownload = "download"
)

// YTDLPEngine runs yt-dlp through go-ytdlp
type YTDLPEngine struct {
	interval time.Duration
	now      func() time.Time
}

// NewYTDLPEngine creates a new yt-dlp engine
func NewYTDLPEngine() *YTDLPEngine {
	return &YTDLPEngine{
		interval: DefaultProgressInterval,
		now:      time.Now,
	}
}

// FetchInfo extracts metadata without downloading
func (e *YTDLPEngine) FetchInfo(ctx context.Context, url string, opts Options) (*model.VideoInfo, error) {
	dl := ytdlp.New().
		SkipDownload().
		PrintJSON().
		NoWarnings()
	if opts.FFmpegLocation != "" {
		dl.FFmpegLocation(opts.FFmpegLocation)
	}

	res, err := dl.Run(ctx, url)
	if err != nil {
		return nil, classifyRunError(OpInfo, url, res, err)
	}

	extracted, err := res.GetExtractedInfo()
	if err != nil {
		return nil, &Error{Kind: KindTransient, Op: OpInfo, URL: url, Err: fmt.Errorf("failed to parse metadata: %w", err)}
	}

	info := &model.VideoInfo{URL: url}
	if len(extracted) > 0 && extracted[0].Title != nil {
		info.Title = *extracted[0].Title
	}
	return info, nil
}

// Download runs the transfer with the configured format, template and post-processing
func (e *YTDLPEngine) Download(ctx context.Context, url string, opts Options) error {
	dl := e.command(opts)

	if opts.Progress != nil {
		dl.ProgressFunc(e.interval, func(update ytdlp.ProgressUpdate) {
			opts.Progress(eventFromUpdate(update, e.now()))
		})
	}

	res, err := dl.Run(ctx, url)
	if err != nil {
		return classifyRunError(OpDownload, url, res, err)
	}
	return nil
}

// command builds the yt-dlp invocation for opts
func (e *YTDLPEngine) command(opts Options) *ytdlp.Command {
	dl := ytdlp.New().
		Format(opts.FormatSelector()).
		Output(opts.OutputTemplate)

	if opts.OutputDir != "" {
		dl.Paths(opts.OutputDir)
	}
	if opts.MergeOutputFormat != "" {
		dl.MergeOutputFormat(opts.MergeOutputFormat)
	}
	if opts.ConvertFormat != "" {
		dl.RecodeVideo(opts.ConvertFormat)
	}
	if opts.Quiet {
		dl.Quiet()
	}
	if opts.NoWarnings {
		dl.NoWarnings()
	}
	if opts.FFmpegLocation != "" {
		dl.FFmpegLocation(opts.FFmpegLocation)
	}
	return dl
}

// eventFromUpdate converts a yt-dlp progress update, deriving speed from the
// elapsed transfer time
func eventFromUpdate(update ytdlp.ProgressUpdate, now time.Time) model.ProgressEvent {
	event := model.ProgressEvent{
		Status:          string(update.Status),
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
	}
	if update.Status == ytdlp.ProgressStatusDownloading {
		event.Status = model.ProgressStatusDownloading
	}

	if !update.Started.IsZero() {
		elapsed := now.Sub(update.Started).Seconds()
		if elapsed > 0 {
			event.Speed = float64(update.DownloadedBytes) / elapsed
		}
	}

	// FormatNote is promoted from an embedded pointer that may be nil
	if update.Info != nil && update.Info.ExtractedFormat != nil && update.Info.FormatNote != nil {
		event.FormatNote = *update.Info.FormatNote
	}
	return event
}

// classifyRunError wraps a failed run, classifying it from the error and stderr
func classifyRunError(op, url string, res *ytdlp.Result, err error) error {
	text := err.Error()
	if res != nil && res.Stderr != "" {
		text += "\n" + res.Stderr
	}
	return &Error{Kind: Classify(text), Op: op, URL: url, Err: err}
}
