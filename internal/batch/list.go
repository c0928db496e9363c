package batch

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// DefaultListFile is the URL list read from the working directory
const DefaultListFile = "list.txt"

// maxLineLength bounds a single list line
const maxLineLength = 1024 * 1024

// Batch-level errors, returned before any download starts
var (
	ErrListNotFound = errors.New("url list not found")
	ErrListEmpty    = errors.New("url list contains no urls")
)

// ReadURLList returns the non-blank, trimmed lines of path in file order.
// Duplicates are kept.
func ReadURLList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrListNotFound, path)
		}
		return nil, fmt.Errorf("failed to open url list: %w", err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read url list: %w", err)
	}
	return urls, nil
}
