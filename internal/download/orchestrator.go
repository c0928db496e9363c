package download

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-batch/internal/messages"
	"github.com/ytget/yt-batch/internal/model"
	"github.com/ytget/yt-batch/internal/progress"
)

// Retry policy defaults
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 2 * time.Second
)

// Job constants
const (
	JobIDPrefix  = "job-"
	UnknownTitle = "unknown"
)

// Sleeper blocks for d or until ctx is done
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext waits for d, returning early with ctx's error
func SleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Orchestrator drives a single URL through tool check, metadata, download
// and the retry policy
type Orchestrator struct {
	engine     Engine
	tools      ToolLocator
	base       Options
	reporter   progress.Reporter
	printer    *messages.Printer
	retryDelay time.Duration
	sleep      Sleeper
}

// NewOrchestrator creates an orchestrator. base is copied and never modified.
func NewOrchestrator(engine Engine, tools ToolLocator, base Options, reporter progress.Reporter, printer *messages.Printer) *Orchestrator {
	return &Orchestrator{
		engine:     engine,
		tools:      tools,
		base:       base,
		reporter:   reporter,
		printer:    printer,
		retryDelay: DefaultRetryDelay,
		sleep:      SleepContext,
	}
}

// SetRetryDelay sets the fixed backoff between attempts
func (o *Orchestrator) SetRetryDelay(d time.Duration) {
	o.retryDelay = d
}

// SetSleeper replaces the backoff sleeper
func (o *Orchestrator) SetSleeper(sleep Sleeper) {
	o.sleep = sleep
}

// Download processes url, making at most maxRetries attempts. It never
// panics or returns an error; the outcome is recorded on the returned job.
func (o *Orchestrator) Download(ctx context.Context, url, outputDir string, maxRetries int) *model.Job {
	job := &model.Job{
		ID:        generateJobID(),
		URL:       url,
		OutputDir: outputDir,
		State:     model.JobStateCheckingTool,
		StartedAt: time.Now(),
	}
	defer func() {
		job.FinishedAt = time.Now()
		log.Printf("%s finished: state=%s attempts=%d", job.ID, job.State, job.Attempts)
	}()

	toolPath, ok := o.tools.Locate(ctx)
	if !ok {
		o.printer.Break()
		o.printer.Error(messages.KeyToolMissing)
		o.printer.Info(messages.KeyInstallGuide)
		o.fail(job, model.JobStateFailedPermanent, fmt.Errorf("ffmpeg unavailable"))
		return job
	}

	opts := o.base.With(Overrides{
		OutputDir:      outputDir,
		FFmpegLocation: ffmpegLocation(toolPath),
		Progress:       o.reporter.Report,
	})

	for attempt := 1; attempt <= maxRetries; attempt++ {
		job.Attempts = attempt

		err := o.attempt(ctx, job, opts)
		if err == nil {
			o.printer.Break()
			o.printer.Success(messages.KeyDownloadCompleted, job.Title)
			job.State = model.JobStateSucceeded
			return job
		}

		if ctx.Err() != nil {
			o.fail(job, model.JobStateCanceled, err)
			return job
		}

		if kind := KindOf(err); kind.Permanent() {
			o.reportPermanent(kind, url)
			o.fail(job, model.JobStateFailedPermanent, err)
			return job
		}

		job.LastError = err.Error()
		log.Printf("Download attempt %d failed for %s: %v", attempt, job.ID, err)
		o.printer.Break()
		o.printer.Warn(messages.KeyAttemptFailed, url, attempt, maxRetries, err)
		if attempt == maxRetries {
			o.printer.Error(messages.KeyRetriesExhausted, url)
		}

		// the backoff also follows the final attempt
		if err := o.sleep(ctx, o.retryDelay); err != nil {
			o.fail(job, model.JobStateCanceled, err)
			return job
		}
	}

	job.State = model.JobStateFailedExhausted
	return job
}

// attempt runs one metadata fetch plus transfer
func (o *Orchestrator) attempt(ctx context.Context, job *model.Job, opts Options) error {
	job.State = model.JobStateFetchingInfo
	o.printer.Info(messages.KeyFetchingInfo, job.URL)

	info, err := o.engine.FetchInfo(ctx, job.URL, opts)
	if err != nil {
		return err
	}

	job.Title = UnknownTitle
	if info != nil && info.Title != "" {
		job.Title = info.Title
	}
	o.printer.Info(messages.KeyPreparing, job.Title)

	job.State = model.JobStateDownloading
	defer o.reporter.Finish()
	return o.engine.Download(ctx, job.URL, opts)
}

// reportPermanent prints the message for an error that is not retried
func (o *Orchestrator) reportPermanent(kind ErrorKind, url string) {
	o.printer.Break()
	switch kind {
	case KindUnavailable:
		o.printer.Error(messages.KeyVideoUnavailable, url)
	case KindInvalidURL:
		o.printer.Error(messages.KeyInvalidURL, url)
	case KindToolError:
		o.printer.Error(messages.KeyToolError)
	}
}

func (o *Orchestrator) fail(job *model.Job, state model.JobState, err error) {
	job.State = state
	if err != nil {
		job.LastError = err.Error()
	}
}

// ffmpegLocation returns path when it names a file rather than a bare command
func ffmpegLocation(path string) string {
	if path == "" || filepath.Base(path) == path {
		return ""
	}
	return path
}

// generateJobID generates a unique job ID using UUID v7 so IDs sort by start time
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}
