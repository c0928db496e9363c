package batch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ytget/yt-batch/internal/download"
	"github.com/ytget/yt-batch/internal/messages"
	"github.com/ytget/yt-batch/internal/model"
	"github.com/ytget/yt-batch/internal/platform"
)

// Expander resolves a playlist URL into its videos
type Expander interface {
	Expand(ctx context.Context, url string) (*model.Playlist, error)
}

// Driver processes the URL list sequentially
type Driver struct {
	downloader download.Downloader
	printer    *messages.Printer
	expander   Expander
	listPath   string
	outputDir  string
	maxRetries int
}

// NewDriver creates a batch driver
func NewDriver(downloader download.Downloader, printer *messages.Printer, listPath, outputDir string, maxRetries int) *Driver {
	return &Driver{
		downloader: downloader,
		printer:    printer,
		listPath:   listPath,
		outputDir:  outputDir,
		maxRetries: maxRetries,
	}
}

// SetExpander enables playlist expansion; nil disables it
func (d *Driver) SetExpander(expander Expander) {
	d.expander = expander
}

// Run reads the list and downloads every URL in order. A failing URL never
// stops the batch; only a missing or empty list (or cancellation) does.
func (d *Driver) Run(ctx context.Context) error {
	urls, err := ReadURLList(d.listPath)
	if err != nil {
		if errors.Is(err, ErrListNotFound) {
			d.printer.Error(messages.KeyListMissing, d.listPath)
		} else {
			d.printer.Error(messages.KeyListUnreadable, d.listPath, err)
		}
		return err
	}

	if len(urls) == 0 {
		d.printer.Warn(messages.KeyListEmpty, d.listPath)
		return fmt.Errorf("%w: %s", ErrListEmpty, d.listPath)
	}

	if d.expander != nil {
		urls = d.expand(ctx, urls)
	}

	if err := platform.CreateDirectoryIfNotExists(d.outputDir); err != nil {
		return fmt.Errorf("failed to ensure output dir: %w", err)
	}

	for i, url := range urls {
		if ctx.Err() != nil {
			d.printer.Break()
			d.printer.Warn(messages.KeyInterrupted)
			return ctx.Err()
		}

		job := d.downloader.Download(ctx, url, d.outputDir, d.maxRetries)
		if job.State.IsFailure() {
			log.Printf("url %d/%d %s: %s after %d attempts: %s", i+1, len(urls), job.GetDisplayTitle(), job.State, job.Attempts, job.LastError)
			continue
		}
		log.Printf("url %d/%d %s: %s in %s", i+1, len(urls), job.GetDisplayTitle(), job.State, job.Duration().Round(time.Millisecond))
	}
	return nil
}

// expand replaces playlist URLs with their video URLs, keeping list order
func (d *Driver) expand(ctx context.Context, urls []string) []string {
	expanded := make([]string, 0, len(urls))
	for _, url := range urls {
		if !platform.IsPlaylistURL(url) {
			expanded = append(expanded, url)
			continue
		}

		playlist, err := d.expander.Expand(ctx, url)
		if err != nil {
			d.printer.Warn(messages.KeyPlaylistFailed, url, err)
			expanded = append(expanded, url)
			continue
		}

		d.printer.Info(messages.KeyPlaylistExpanded, playlist.ID, len(playlist.Videos))
		expanded = append(expanded, playlist.URLs()...)
	}
	return expanded
}
