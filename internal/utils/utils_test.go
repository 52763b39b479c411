package utils

import (
	"fmt"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		wantErr  bool
	}{
		// Valid cases
		{"500", 500, false},
		{"500B", 500, false},
		{"10k", 10 * 1024, false},
		{"10K", 10 * 1024, false},
		{"10kb", 10 * 1024, false},
		{"10KB", 10 * 1024, false},
		{"4m", 4 * 1024 * 1024, false},
		{"4MB", 4 * 1024 * 1024, false},
		{"1g", 1 * 1024 * 1024 * 1024, false},
		{"1GB", 1 * 1024 * 1024 * 1024, false},
		{"204800", 204800, false},
		{" 2000000 ", 2000000, false},
		{"0", 0, false},
		{"0KB", 0, false},

		// Invalid cases
		{"", 0, true},
		{"-100", 0, true},
		{"10P", 0, true},
		{"KB", 0, true},
		{"10.5K", 0, true},
		{"abc", 0, true},
		{"10 M B", 0, true},
		{"1 0 K B", 0, true},
		{"99999999999999999999", 0, true},
		{"9999999999999G", 0, true},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("Input_%s", tc.input), func(t *testing.T) {
			got, err := ParseSize(tc.input)

			if (err != nil) != tc.wantErr {
				t.Errorf("ParseSize(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
				return
			}
			if !tc.wantErr && got != tc.expected {
				t.Errorf("ParseSize(%q) = %d, want %d", tc.input, got, tc.expected)
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{2 * 1024 * 1024, "2.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}
	for _, tc := range tests {
		if got := FormatSize(tc.in); got != tc.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeSegment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme Corp", "Acme_Corp"},
		{"Smith, Jones and Co", "Smith,_Jones_and_Co"},
		{"a/b\\c", "abc"},
		{"..", "unnamed"},
		{"   ", "unnamed"},
		{"report.pdf", "report.pdf"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := SanitizeSegment(tc.in); got != tc.want {
				t.Errorf("SanitizeSegment(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
