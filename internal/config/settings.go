package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/ytget/yt-batch/internal/batch"
	"github.com/ytget/yt-batch/internal/download"
	"github.com/ytget/yt-batch/internal/messages"
	"github.com/ytget/yt-batch/internal/progress"
)

// DefaultConfigFile is read from the working directory when present
const DefaultConfigFile = "yt-batch.yml"

// Default values
const (
	DefaultOutputDir     = "."
	DefaultLanguage      = messages.LanguageEnglish
	DefaultProgressStyle = progress.StyleLine
	MinRetries           = 1
	MaxRetries           = 10
)

// Settings holds application configuration
type Settings struct {
	ListFile        string        `yaml:"list_file"`
	OutputDir       string        `yaml:"output_dir"`
	MaxRetries      int           `yaml:"max_retries"`
	RetryDelay      time.Duration `yaml:"retry_delay"`
	MaxHeight       int           `yaml:"max_height"`
	FilenameTmpl    string        `yaml:"filename_template"`
	MergeFormat     string        `yaml:"merge_output_format"`
	ConvertFormat   string        `yaml:"convert_format"`
	Quiet           bool          `yaml:"quiet"`
	NoWarnings      bool          `yaml:"no_warnings"`
	Language        string        `yaml:"language"`
	ProgressStyle   string        `yaml:"progress_style"`
	ExpandPlaylists bool          `yaml:"expand_playlists"`
	LogFile         string        `yaml:"log_file"`
}

// NewSettings returns settings populated with defaults
func NewSettings() *Settings {
	return &Settings{
		ListFile:      batch.DefaultListFile,
		OutputDir:     DefaultOutputDir,
		MaxRetries:    download.DefaultMaxRetries,
		RetryDelay:    download.DefaultRetryDelay,
		MaxHeight:     download.DefaultMaxHeight,
		FilenameTmpl:  download.DefaultOutputTemplate,
		MergeFormat:   download.DefaultMergeOutputFormat,
		ConvertFormat: download.DefaultConvertFormat,
		Quiet:         true,
		NoWarnings:    true,
		Language:      DefaultLanguage,
		ProgressStyle: DefaultProgressStyle,
	}
}

// Load reads settings from path on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (*Settings, error) {
	s := NewSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	s.applyDefaults()
	return s, nil
}

// applyDefaults restores defaults for fields left empty by the file
func (s *Settings) applyDefaults() {
	d := NewSettings()
	if s.ListFile == "" {
		s.ListFile = d.ListFile
	}
	if s.OutputDir == "" {
		s.OutputDir = d.OutputDir
	}
	if s.RetryDelay < 0 {
		s.RetryDelay = d.RetryDelay
	}
	if s.FilenameTmpl == "" {
		s.FilenameTmpl = d.FilenameTmpl
	}
	if s.Language == "" {
		s.Language = d.Language
	}
	if s.ProgressStyle == "" {
		s.ProgressStyle = d.ProgressStyle
	}
}

// Validate clamps numeric values and rejects unknown enum values
func (s *Settings) Validate() error {
	if s.MaxRetries < MinRetries {
		s.MaxRetries = MinRetries
	}
	if s.MaxRetries > MaxRetries {
		s.MaxRetries = MaxRetries
	}
	if s.MaxHeight < 0 {
		s.MaxHeight = 0
	}

	if !slices.Contains(s.GetProgressStyleOptions(), s.ProgressStyle) {
		return fmt.Errorf("unknown progress style %q", s.ProgressStyle)
	}
	if _, ok := s.GetLanguageOptions()[s.Language]; !ok {
		return fmt.Errorf("unsupported language %q", s.Language)
	}
	return nil
}

// DownloadOptions returns the immutable base options for the orchestrator
func (s *Settings) DownloadOptions() download.Options {
	opts := download.DefaultOptions()
	opts.MaxHeight = s.MaxHeight
	opts.OutputTemplate = s.FilenameTmpl
	opts.MergeOutputFormat = s.MergeFormat
	opts.ConvertFormat = s.ConvertFormat
	opts.Quiet = s.Quiet
	opts.NoWarnings = s.NoWarnings
	return opts
}

// GetProgressStyleOptions returns the available progress styles
func (s *Settings) GetProgressStyleOptions() []string {
	return []string{progress.StyleLine, progress.StyleBar}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	options := messages.NewLocalization().GetAvailableLanguages()
	options[messages.LanguageSystem] = "System Default"
	return options
}
