package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	ytlib "github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-batch/internal/model"
)

// Timeout constants
const (
	DefaultPlaylistParseTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// PlaylistLister lists the videos of a playlist by ID
type PlaylistLister interface {
	ListPlaylist(ctx context.Context, playlistID string) ([]*model.PlaylistVideo, error)
}

// libraryLister lists playlists through the ytdlp library
type libraryLister struct{}

// ListPlaylist fetches every item of the playlist
func (libraryLister) ListPlaylist(ctx context.Context, playlistID string) ([]*model.PlaylistVideo, error) {
	d := ytlib.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	videos := make([]*model.PlaylistVideo, 0, len(items))
	for _, it := range items {
		videos = append(videos, &model.PlaylistVideo{
			ID:    it.VideoID,
			Title: it.Title,
			URL:   fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		})
	}
	return videos, nil
}

// PlaylistExpander resolves playlist URLs into their video URLs
type PlaylistExpander struct {
	timeout time.Duration
	lister  PlaylistLister
}

// NewPlaylistExpander creates an expander backed by the ytdlp library
func NewPlaylistExpander() *PlaylistExpander {
	return &PlaylistExpander{
		timeout: DefaultPlaylistParseTimeout,
		lister:  libraryLister{},
	}
}

// SetLister replaces the playlist source
func (p *PlaylistExpander) SetLister(lister PlaylistLister) {
	p.lister = lister
}

// IsPlaylistURL checks if the URL carries a playlist parameter
func IsPlaylistURL(url string) bool {
	return strings.Contains(url, PlaylistParam)
}

// ExtractPlaylistID extracts the playlist ID from various URL formats:
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&start_radio=1
//   - https://www.youtube.com/playlist?list=PLAYLIST_ID
func ExtractPlaylistID(url string) (string, error) {
	if !IsPlaylistURL(url) {
		return "", fmt.Errorf("URL does not contain playlist parameter")
	}

	parts := strings.SplitN(url, PlaylistParam, 2)
	playlistID := parts[1]
	if strings.Contains(playlistID, ParamSeparator) {
		playlistID = strings.Split(playlistID, ParamSeparator)[0]
	}

	if playlistID == "" {
		return "", fmt.Errorf("empty playlist ID")
	}
	return playlistID, nil
}

// Expand returns the playlist behind url with its videos in playlist order
func (p *PlaylistExpander) Expand(ctx context.Context, url string) (*model.Playlist, error) {
	playlistID, err := ExtractPlaylistID(url)
	if err != nil {
		return nil, fmt.Errorf("invalid playlist URL %s: %w", url, err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	videos, err := p.lister.ListPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	playlist := model.NewPlaylist(playlistID, url)
	for _, video := range videos {
		playlist.AddVideo(video)
	}
	return playlist, nil
}
