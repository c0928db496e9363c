package messages

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestPrinter_WritesLocalizedLines(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	loc := NewLocalization()
	loc.SetLanguage(LanguageTraditional)
	p := NewPrinter(&buf, loc)

	p.Info(KeyFetchingInfo, "http://a")
	p.Error(KeyInvalidURL, "http://b")
	p.Warn(KeyListEmpty, "list.txt")
	p.Success(KeyDownloadCompleted, "title")
	p.Break()

	lines := strings.Split(buf.String(), "\n")
	expected := []string{
		"正在獲取影片信息: http://a",
		"錯誤: 無效的影片 URL - http://b",
		"警告: list.txt 中沒有有效的URL",
		"下載完成: title",
		"",
		"",
	}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d: %q", len(expected), len(lines), buf.String())
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d: expected %q, got %q", i, expected[i], lines[i])
		}
	}
}
