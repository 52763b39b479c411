package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseSize parses strings like "500", "10K", "4MB", "1G" into a number of bytes.
// Negative sizes are rejected.
func ParseSize(sizeStr string) (int64, error) {
	if sizeStr == "" {
		return 0, errors.New("size string is empty")
	}
	// Suffix multipliers
	suffixes := map[string]int64{
		"B": 1,
		"K": 1024, "KB": 1024,
		"M": 1024 * 1024, "MB": 1024 * 1024,
		"G": 1024 * 1024 * 1024, "GB": 1024 * 1024 * 1024,
	}
	sizeStr = strings.ToUpper(strings.TrimSpace(sizeStr))

	// Split into leading digits and whatever follows
	numPart, suffix := sizeStr, ""
	for i, r := range sizeStr {
		if r < '0' || r > '9' {
			numPart = sizeStr[:i]
			suffix = sizeStr[i:]
			break
		}
	}
	if numPart == "" {
		return 0, fmt.Errorf("invalid size number in '%s'", sizeStr)
	}
	baseVal, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size number: %w", err)
	}
	if suffix == "" {
		return baseVal, nil
	}
	mult, ok := suffixes[suffix]
	if !ok {
		return 0, fmt.Errorf("unknown size suffix '%s'", suffix)
	}
	if baseVal > (1<<63-1)/mult {
		return 0, fmt.Errorf("size '%s' overflows int64", sizeStr)
	}
	return baseVal * mult, nil
}

// FormatSize renders a byte count with a binary unit, e.g. 1536 -> "1.5 KB".
func FormatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for q := n / unit; q >= unit && exp < 3; q /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGT"[exp])
}

// SanitizeSegment turns a generated name into a single path segment:
// spaces become underscores and separators or other unsafe characters are dropped.
func SanitizeSegment(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' ||
			r == '"' || r == '<' || r == '>' || r == '|' || r < 0x20:
			// not portable in file names
		default:
			b.WriteRune(r)
		}
	}
	s := strings.Trim(b.String(), ".")
	if s == "" {
		return "unnamed"
	}
	return s
}
