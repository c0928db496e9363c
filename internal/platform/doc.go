// Package platform contains OS/platform integration and external tooling glue:
// locating the ffmpeg executable, filesystem helpers, and playlist expansion
// via the ytdlp library.
package platform
