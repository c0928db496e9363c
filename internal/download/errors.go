package download

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a failed engine call
type ErrorKind int

const (
	// KindTransient is any failure not known to be permanent; it is retried
	KindTransient ErrorKind = iota
	// KindUnavailable means the video is unavailable or was removed
	KindUnavailable
	// KindInvalidURL means the URL was rejected
	KindInvalidURL
	// KindToolError means ffmpeg failed during post-processing
	KindToolError
)

// String returns the string representation of ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindInvalidURL:
		return "invalid_url"
	case KindToolError:
		return "tool_error"
	default:
		return "transient"
	}
}

// Permanent reports whether a retry cannot help
func (k ErrorKind) Permanent() bool {
	return k != KindTransient
}

// Error is a classified engine failure
type Error struct {
	Kind ErrorKind
	Op   string // "info" or "download"
	URL  string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err; unclassified errors are transient
func KindOf(err error) ErrorKind {
	var dlErr *Error
	if errors.As(err, &dlErr) {
		return dlErr.Kind
	}
	return KindTransient
}

// Message fragments reported by yt-dlp
var (
	unavailableMarkers = []string{"unavailable", "removed"}
	invalidURLMarkers  = []string{"invalid url", "unsupported url"}
	toolMarkers        = []string{"ffmpeg"}
)

// Classify maps yt-dlp output text onto an ErrorKind
func Classify(text string) ErrorKind {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, unavailableMarkers):
		return KindUnavailable
	case containsAny(lower, invalidURLMarkers):
		return KindInvalidURL
	case containsAny(lower, toolMarkers):
		return KindToolError
	default:
		return KindTransient
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
