package download

import (
	"context"

	"github.com/ytget/yt-batch/internal/model"
)

// Engine is the boundary to the external download library. Failures are
// returned as *Error so callers switch on ErrorKind instead of message text.
type Engine interface {
	// FetchInfo requests metadata only, without downloading
	FetchInfo(ctx context.Context, url string, opts Options) (*model.VideoInfo, error)

	// Download performs the transfer, invoking opts.Progress per tick
	Download(ctx context.Context, url string, opts Options) error
}

// ToolLocator reports the invocable media tool path
type ToolLocator interface {
	Locate(ctx context.Context) (path string, ok bool)
}

// Downloader drives one URL through the retry policy
type Downloader interface {
	Download(ctx context.Context, url, outputDir string, maxRetries int) *model.Job
}
