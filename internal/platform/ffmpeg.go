package platform

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/ytget/yt-batch/internal/messages"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Executable and version check constants
const (
	FFmpegCommand       = "ffmpeg"
	FFmpegVersionFlag   = "-version"
	FFmpegWindowsBinary = "ffmpeg.exe"
)

// Environment variables holding Windows install roots
var WindowsInstallRootVars = []string{"ProgramFiles", "ProgramFiles(x86)", "USERPROFILE"}

// Well-known install locations outside Windows
var (
	DarwinFFmpegPaths = []string{"/opt/homebrew/bin/ffmpeg", "/usr/local/bin/ffmpeg"}
	UnixFFmpegPaths   = []string{"/usr/local/bin/ffmpeg", "/usr/bin/ffmpeg", "/snap/bin/ffmpeg"}
)

// CommandRunner runs an executable and reports whether it exited successfully
type CommandRunner func(ctx context.Context, name string, args ...string) error

// RunCommand runs name with args, discarding its output
func RunCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	return nil
}

// DefaultFFmpegCandidates returns the ordered install locations checked when
// ffmpeg is not on the search path. Windows locations derive from the
// program-files style environment variables; unset variables are skipped.
func DefaultFFmpegCandidates(goos string, getenv func(string) string) []string {
	switch goos {
	case OSWindows:
		paths := make([]string, 0, len(WindowsInstallRootVars))
		for _, key := range WindowsInstallRootVars {
			root := getenv(key)
			if root == "" {
				continue
			}
			paths = append(paths, filepath.Join(root, FFmpegCommand, "bin", FFmpegWindowsBinary))
		}
		return paths
	case OSDarwin:
		return append([]string(nil), DarwinFFmpegPaths...)
	default:
		return append([]string(nil), UnixFFmpegPaths...)
	}
}

// FFmpegChecker verifies that the ffmpeg executable can be invoked
type FFmpegChecker struct {
	command    string
	candidates []string
	run        CommandRunner
	isFile     func(string) bool
	printer    *messages.Printer
}

// NewFFmpegChecker creates a checker for the current platform
func NewFFmpegChecker(printer *messages.Printer) *FFmpegChecker {
	return &FFmpegChecker{
		command:    FFmpegCommand,
		candidates: DefaultFFmpegCandidates(runtime.GOOS, os.Getenv),
		run:        RunCommand,
		isFile:     IsRegularFile,
		printer:    printer,
	}
}

// SetCandidates replaces the install locations checked after the search path
func (c *FFmpegChecker) SetCandidates(paths []string) {
	c.candidates = paths
}

// SetRunner replaces the command runner
func (c *FFmpegChecker) SetRunner(run CommandRunner) {
	c.run = run
}

// Available returns true iff ffmpeg answers a version query
func (c *FFmpegChecker) Available(ctx context.Context) bool {
	_, ok := c.Locate(ctx)
	return ok
}

// Locate returns the invocable ffmpeg path. The bare command name is tried
// first; then the first existing candidate file decides the outcome.
func (c *FFmpegChecker) Locate(ctx context.Context) (path string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ffmpeg check panicked: %v", r)
			c.printer.Break()
			c.printer.Error(messages.KeyToolCheckError, r)
			path, ok = "", false
		}
	}()

	err := c.run(ctx, c.command, FFmpegVersionFlag)
	if err == nil {
		return c.command, true
	}
	log.Printf("ffmpeg not invocable from search path: %v", err)

	for _, candidate := range c.candidates {
		if !c.isFile(candidate) {
			continue
		}

		c.printer.Break()
		c.printer.Info(messages.KeyToolFoundAt, candidate)
		c.printer.Info(messages.KeyToolAddToPath)

		if err := c.run(ctx, candidate, FFmpegVersionFlag); err != nil {
			log.Printf("ffmpeg at %s not invocable: %v", candidate, err)
			return "", false
		}
		return candidate, true
	}

	c.printer.Break()
	c.printer.Warn(messages.KeyToolNotFound)
	return "", false
}
