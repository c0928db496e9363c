package download

import (
	"errors"
	"testing"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-batch/internal/model"
)

func TestNewYTDLPEngine(t *testing.T) {
	e := NewYTDLPEngine()
	if e.interval != DefaultProgressInterval {
		t.Errorf("Expected interval %v, got %v", DefaultProgressInterval, e.interval)
	}
}

func TestEventFromUpdate(t *testing.T) {
	now := time.Now()
	update := ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatusDownloading,
		DownloadedBytes: 4096,
		TotalBytes:      8192,
		Started:         now.Add(-2 * time.Second),
	}

	event := eventFromUpdate(update, now)

	if event.Status != model.ProgressStatusDownloading {
		t.Errorf("Expected status %q, got %q", model.ProgressStatusDownloading, event.Status)
	}
	if event.DownloadedBytes != 4096 || event.TotalBytes != 8192 {
		t.Errorf("Unexpected byte counts: %+v", event)
	}
	if event.Speed != 2048 {
		t.Errorf("Expected speed 2048 B/s, got %v", event.Speed)
	}
	if event.FormatNote != "" {
		t.Errorf("Expected empty format note without info, got %q", event.FormatNote)
	}
}

func TestEventFromUpdate_NotStarted(t *testing.T) {
	event := eventFromUpdate(ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatusDownloading,
		DownloadedBytes: 10,
		TotalBytes:      100,
	}, time.Now())

	if event.Speed != 0 {
		t.Errorf("Expected zero speed without start time, got %v", event.Speed)
	}
}

func TestClassifyRunError(t *testing.T) {
	err := classifyRunError(OpDownload, "http://a", nil, errors.New("ERROR: Video unavailable"))
	if KindOf(err) != KindUnavailable {
		t.Errorf("Expected unavailable, got %s", KindOf(err))
	}

	var dlErr *Error
	if !errors.As(err, &dlErr) {
		t.Fatal("Expected *Error")
	}
	if dlErr.Op != OpDownload || dlErr.URL != "http://a" {
		t.Errorf("Unexpected error fields: %+v", dlErr)
	}

	err = classifyRunError(OpInfo, "http://b", &ytdlp.Result{Stderr: "ERROR: Postprocessing: ffmpeg not found"}, errors.New("exit status 1"))
	if KindOf(err) != KindToolError {
		t.Errorf("Expected tool error from stderr, got %s", KindOf(err))
	}
}

func TestEventFromUpdate_FormatNote(t *testing.T) {
	note := "1080p"
	tests := []struct {
		name     string
		info     *ytdlp.ExtractedInfo
		expected string
	}{
		{"no info", nil, ""},
		{"info without format fields", &ytdlp.ExtractedInfo{}, ""},
		{"format note", &ytdlp.ExtractedInfo{ExtractedFormat: &ytdlp.ExtractedFormat{FormatNote: &note}}, "1080p"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := eventFromUpdate(ytdlp.ProgressUpdate{
				Status:          ytdlp.ProgressStatusDownloading,
				DownloadedBytes: 1,
				TotalBytes:      2,
				Info:            tt.info,
			}, time.Now())
			if event.FormatNote != tt.expected {
				t.Errorf("Expected format note %q, got %q", tt.expected, event.FormatNote)
			}
		})
	}
}

// commandFlags maps every flag of cmd to its arguments
func commandFlags(cmd *ytdlp.Command) map[string][]string {
	flags := make(map[string][]string)
	for _, f := range cmd.GetFlagConfig().ToFlags() {
		raw := f.Raw()
		flags[raw[0]] = raw[1:]
	}
	return flags
}

func TestCommand_MapsOptionsToFlags(t *testing.T) {
	e := NewYTDLPEngine()
	opts := DefaultOptions().With(Overrides{
		OutputDir:      "/videos",
		FFmpegLocation: ffmpegLocation("/opt/ffmpeg/bin/ffmpeg"),
	})

	flags := commandFlags(e.command(opts))

	expected := map[string]string{
		"--format":              "bestvideo[height<=1080]+bestaudio/best[height<=1080]",
		"--output":              "%(title)s.%(ext)s",
		"--paths":               "/videos",
		"--merge-output-format": "mp4",
		"--recode-video":        "mp4",
		"--ffmpeg-location":     "/opt/ffmpeg/bin/ffmpeg",
	}
	for flag, arg := range expected {
		args, ok := flags[flag]
		if !ok {
			t.Errorf("Expected %s to be set", flag)
			continue
		}
		if len(args) != 1 || args[0] != arg {
			t.Errorf("Expected %s %q, got %v", flag, arg, args)
		}
	}
	for _, flag := range []string{"--quiet", "--no-warnings"} {
		if _, ok := flags[flag]; !ok {
			t.Errorf("Expected %s to be set", flag)
		}
	}
}

func TestCommand_OmitsUnsetFlags(t *testing.T) {
	e := NewYTDLPEngine()
	opts := DefaultOptions()
	opts.Quiet = false
	opts.NoWarnings = false
	opts.MergeOutputFormat = ""
	opts.ConvertFormat = ""
	// a bare command name is left to PATH lookup
	opts = opts.With(Overrides{FFmpegLocation: ffmpegLocation("ffmpeg")})

	flags := commandFlags(e.command(opts))

	for _, flag := range []string{"--paths", "--ffmpeg-location", "--merge-output-format", "--recode-video", "--quiet", "--no-warnings"} {
		if _, ok := flags[flag]; ok {
			t.Errorf("Expected %s to be omitted, got %v", flag, flags[flag])
		}
	}
	if _, ok := flags["--format"]; !ok {
		t.Error("Expected --format to always be set")
	}
}
