package platform

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ytget/yt-batch/internal/model"
)

type fakeLister struct {
	gotID       string
	gotDeadline time.Time
	videos      []*model.PlaylistVideo
	err         error
}

func (f *fakeLister) ListPlaylist(ctx context.Context, playlistID string) ([]*model.PlaylistVideo, error) {
	f.gotID = playlistID
	f.gotDeadline, _ = ctx.Deadline()
	return f.videos, f.err
}

func TestIsPlaylistURL(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"https://www.youtube.com/playlist?list=PL123", true},
		{"https://www.youtube.com/watch?v=abc&list=PL123", true},
		{"https://www.youtube.com/watch?v=abc", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsPlaylistURL(tt.url); got != tt.expected {
			t.Errorf("IsPlaylistURL(%q) = %v, expected %v", tt.url, got, tt.expected)
		}
	}
}

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		expectedID  string
		expectError bool
	}{
		{
			name:       "playlist page",
			url:        "https://www.youtube.com/playlist?list=PL123",
			expectedID: "PL123",
		},
		{
			name:       "watch url with extra params",
			url:        "https://www.youtube.com/watch?v=abc&list=PL123&start_radio=1",
			expectedID: "PL123",
		},
		{
			name:        "no playlist param",
			url:         "https://www.youtube.com/watch?v=abc",
			expectError: true,
		},
		{
			name:        "empty id",
			url:         "https://www.youtube.com/playlist?list=&x=1",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ExtractPlaylistID(tt.url)
			if tt.expectError {
				if err == nil {
					t.Errorf("expected error, got id %q", id)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.expectedID {
				t.Errorf("expected %q, got %q", tt.expectedID, id)
			}
		})
	}
}

func TestPlaylistExpander_Expand(t *testing.T) {
	lister := &fakeLister{videos: []*model.PlaylistVideo{
		{ID: "a", URL: "https://www.youtube.com/watch?v=a"},
		{ID: "b", URL: "https://www.youtube.com/watch?v=b"},
	}}
	p := NewPlaylistExpander()
	p.SetLister(lister)

	playlist, err := p.Expand(context.Background(), "https://www.youtube.com/playlist?list=PL9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lister.gotID != "PL9" {
		t.Errorf("expected lister to receive PL9, got %q", lister.gotID)
	}
	urls := playlist.URLs()
	if len(urls) != 2 || urls[0] != "https://www.youtube.com/watch?v=a" {
		t.Errorf("unexpected urls: %v", urls)
	}
}

func TestPlaylistExpander_ListerError(t *testing.T) {
	p := NewPlaylistExpander()
	p.SetLister(&fakeLister{err: errors.New("network down")})

	if _, err := p.Expand(context.Background(), "https://www.youtube.com/playlist?list=PL9"); err == nil {
		t.Error("expected error from lister")
	}
}

func TestNewPlaylistExpander(t *testing.T) {
	p := NewPlaylistExpander()
	if p.timeout != DefaultPlaylistParseTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultPlaylistParseTimeout, p.timeout)
	}
	if p.lister == nil {
		t.Error("expected default lister")
	}
}

func TestPlaylistExpander_AppliesTimeout(t *testing.T) {
	lister := &fakeLister{}
	p := NewPlaylistExpander()
	p.SetLister(lister)

	start := time.Now()
	if _, err := p.Expand(context.Background(), "https://www.youtube.com/playlist?list=PL9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lister.gotDeadline.IsZero() {
		t.Fatal("expected the lister context to carry a deadline")
	}
	if lister.gotDeadline.Before(start.Add(DefaultPlaylistParseTimeout - time.Second)) {
		t.Errorf("deadline %v earlier than the default timeout", lister.gotDeadline)
	}
}
