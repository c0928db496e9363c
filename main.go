package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ytget/yt-batch/internal/batch"
	"github.com/ytget/yt-batch/internal/config"
	"github.com/ytget/yt-batch/internal/download"
	"github.com/ytget/yt-batch/internal/messages"
	"github.com/ytget/yt-batch/internal/platform"
	"github.com/ytget/yt-batch/internal/progress"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppName = "yt-batch"

func main() {
	configPath := flag.String("config", config.DefaultConfigFile, "path to the YAML settings file")
	listFile := flag.String("list", "", "newline-delimited URL list (overrides list_file)")
	outputDir := flag.String("out", "", "output directory (overrides output_dir)")
	retries := flag.Int("retries", 0, "maximum attempts per URL (overrides max_retries)")
	lang := flag.String("lang", "", "message language: system, en, zh-TW (overrides language)")
	style := flag.String("progress", "", "progress style: line or bar (overrides progress_style)")
	expand := flag.Bool("expand-playlists", false, "download every video of playlist URLs")
	logFile := flag.String("log", "", "write diagnostics to this file instead of stderr")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s v%s\n", AppName, version)
		return
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}
	applyFlags(settings, *listFile, *outputDir, *retries, *lang, *style, *expand, *logFile)
	if err := settings.Validate(); err != nil {
		log.Fatalf("invalid settings: %v", err)
	}

	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	log.Printf("%s v%s starting", AppName, version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc := messages.NewLocalization()
	loc.SetLanguage(settings.Language)
	log.Printf("message language: %s", loc.GetCurrentLanguage())
	printer := messages.NewPrinter(os.Stdout, loc)

	// Initialize services
	checker := platform.NewFFmpegChecker(printer)
	reporter := progress.NewReporter(settings.ProgressStyle, os.Stdout, loc)
	orchestrator := download.NewOrchestrator(download.NewYTDLPEngine(), checker, settings.DownloadOptions(), reporter, printer)
	orchestrator.SetRetryDelay(settings.RetryDelay)

	driver := batch.NewDriver(orchestrator, printer, settings.ListFile, settings.OutputDir, settings.MaxRetries)
	if settings.ExpandPlaylists {
		driver.SetExpander(platform.NewPlaylistExpander())
	}

	if err := driver.Run(ctx); err != nil {
		log.Printf("batch stopped: %v", err)
		stop()
		os.Exit(1)
	}
}

// applyFlags lets non-empty command line values win over the settings file
func applyFlags(s *config.Settings, listFile, outputDir string, retries int, lang, style string, expand bool, logFile string) {
	if listFile != "" {
		s.ListFile = listFile
	}
	if outputDir != "" {
		s.OutputDir = outputDir
	}
	if retries > 0 {
		s.MaxRetries = retries
	}
	if lang != "" {
		s.Language = lang
	}
	if style != "" {
		s.ProgressStyle = style
	}
	if expand {
		s.ExpandPlaylists = true
	}
	if logFile != "" {
		s.LogFile = logFile
	}
}
