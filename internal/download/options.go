package download

import (
	"fmt"

	"github.com/ytget/yt-batch/internal/model"
)

// Defaults for the base download options
const (
	DefaultMaxHeight         = 1080
	DefaultOutputTemplate    = "%(title)s.%(ext)s"
	DefaultMergeOutputFormat = "mp4"
	DefaultConvertFormat     = "mp4"
)

// formatSelectorTemplate caps both the merged and the single-file variants
const formatSelectorTemplate = "bestvideo[height<=%d]+bestaudio/best[height<=%d]"

// ProgressFunc receives progress ticks of one download call
type ProgressFunc func(model.ProgressEvent)

// Options configures one engine call. Values are copied, never shared.
type Options struct {
	MaxHeight         int    // resolution cap
	OutputTemplate    string // yt-dlp output template
	Quiet             bool   // suppress yt-dlp's own output
	NoWarnings        bool   // suppress yt-dlp warnings
	MergeOutputFormat string // container used when merging streams
	ConvertFormat     string // post-processing conversion target

	OutputDir      string       // per call
	FFmpegLocation string       // per call, empty when ffmpeg is on PATH
	Progress       ProgressFunc // per call
}

// Overrides holds the per-call fields patched onto the base options
type Overrides struct {
	OutputDir      string
	FFmpegLocation string
	Progress       ProgressFunc
}

// DefaultOptions returns the base options
func DefaultOptions() Options {
	return Options{
		MaxHeight:         DefaultMaxHeight,
		OutputTemplate:    DefaultOutputTemplate,
		Quiet:             true,
		NoWarnings:        true,
		MergeOutputFormat: DefaultMergeOutputFormat,
		ConvertFormat:     DefaultConvertFormat,
	}
}

// With returns a copy of o with the overrides applied
func (o Options) With(ov Overrides) Options {
	o.OutputDir = ov.OutputDir
	o.FFmpegLocation = ov.FFmpegLocation
	o.Progress = ov.Progress
	return o
}

// FormatSelector returns the yt-dlp format expression for the resolution cap
func (o Options) FormatSelector() string {
	if o.MaxHeight <= 0 {
		return "bestvideo+bestaudio/best"
	}
	return fmt.Sprintf(formatSelectorTemplate, o.MaxHeight, o.MaxHeight)
}
