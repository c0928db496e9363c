// Package download implements the per-URL download pipeline built on top of
// yt-dlp (via github.com/lrstanley/go-ytdlp): download options, structured
// download errors, the engine boundary, and the retrying orchestrator.
package download
