package model

import (
	"strings"
	"time"
)

// ProgressStatusDownloading is the status tag of a progress event for an in-flight transfer
const ProgressStatusDownloading = "downloading"

// ProgressEvent describes one moment of an in-flight download
type ProgressEvent struct {
	Status             string  // downloading, finished, error, ...
	DownloadedBytes    int64   // bytes received so far
	TotalBytes         int64   // exact size, 0 if unknown
	TotalBytesEstimate int64   // estimated size, 0 if unknown
	Speed              float64 // bytes per second, 0 if unknown
	FormatNote         string  // quality label such as "1080p", may be empty
}

// Total returns the exact total when known, the estimate otherwise
func (e ProgressEvent) Total() int64 {
	if e.TotalBytes > 0 {
		return e.TotalBytes
	}
	return e.TotalBytesEstimate
}

// Percent returns downloaded/total*100, or 0 if the total is unknown
func (e ProgressEvent) Percent() float64 {
	total := e.Total()
	if total <= 0 {
		return 0
	}
	return float64(e.DownloadedBytes) / float64(total) * 100
}

// VideoInfo is the metadata subset the downloader needs before a transfer
type VideoInfo struct {
	Title string
	URL   string
}

// Job represents the processing record of a single URL
type Job struct {
	ID         string
	URL        string
	OutputDir  string
	Title      string
	State      JobState
	Attempts   int       // download attempts made
	LastError  string    // last error message if any
	StartedAt  time.Time // when processing started
	FinishedAt time.Time // when processing finished
}

// Succeeded reports whether the job finished successfully
func (j *Job) Succeeded() bool {
	return j.State == JobStateSucceeded
}

// GetDisplayTitle returns the title, or the URL when the title is unknown
func (j *Job) GetDisplayTitle() string {
	if j.Title != "" && !strings.HasPrefix(j.Title, "http") {
		return j.Title
	}
	return j.URL
}

// Duration returns how long the job ran, or 0 if it has not finished
func (j *Job) Duration() time.Duration {
	if j.StartedAt.IsZero() || j.FinishedAt.IsZero() {
		return 0
	}
	return j.FinishedAt.Sub(j.StartedAt)
}
