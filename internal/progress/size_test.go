package progress

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes    float64
		expected string
	}{
		{0, "0.00 B"},
		{512, "512.00 B"},
		{1023, "1023.00 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{5.5 * 1024 * 1024 * 1024, "5.50 GB"},
		{math.Pow(1024, 4), "1.00 TB"},
	}

	for _, test := range tests {
		result := FormatSize(test.bytes)
		if result != test.expected {
			t.Errorf("FormatSize(%v) = %s, expected %s", test.bytes, result, test.expected)
		}
	}
}

func TestFormatSize_StopsAtTB(t *testing.T) {
	result := FormatSize(math.Pow(1024, 5))
	if !strings.HasSuffix(result, " TB") {
		t.Fatalf("Expected TB unit, got %s", result)
	}

	value, err := strconv.ParseFloat(strings.TrimSuffix(result, " TB"), 64)
	if err != nil {
		t.Fatalf("Failed to parse value from %s: %v", result, err)
	}
	if value < 1024 {
		t.Errorf("Expected magnitude >= 1024, got %v", value)
	}
}
