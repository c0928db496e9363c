package batch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultListFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write list: %v", err)
	}
	return path
}

func TestReadURLList(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "skips blank lines and trims",
			content:  "\n \nhttp://a\n  http://b  \n",
			expected: []string{"http://a", "http://b"},
		},
		{
			name:     "keeps duplicates and order",
			content:  "http://b\nhttp://a\nhttp://b",
			expected: []string{"http://b", "http://a", "http://b"},
		},
		{
			name:     "windows line endings",
			content:  "http://a\r\nhttp://b\r\n",
			expected: []string{"http://a", "http://b"},
		},
		{
			name:     "only whitespace",
			content:  "\n\t\n   \n",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			urls, err := ReadURLList(writeList(t, tt.content))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(urls) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, urls)
			}
			for i := range tt.expected {
				if urls[i] != tt.expected[i] {
					t.Errorf("line %d: expected %q, got %q", i, tt.expected[i], urls[i])
				}
			}
		})
	}
}

func TestReadURLList_Missing(t *testing.T) {
	_, err := ReadURLList(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrListNotFound) {
		t.Errorf("Expected ErrListNotFound, got %v", err)
	}
}
