package txt

import (
	"fmt"
	"os"
	"strings"

	"github.com/hailam/filecraft/internal/ports"
)

// TxtGenerator writes files made of newline-joined generated paragraphs.
type TxtGenerator struct {
	text ports.TextGenerator
}

func New(text ports.TextGenerator) ports.FileGenerator {
	return &TxtGenerator{text: text}
}

// Generate writes roughly size bytes of paragraph text to path. The length
// of one sample paragraph is used as the estimate for every paragraph, so
// the result lands near size but rarely on it.
func (g *TxtGenerator) Generate(path string, size int64) error {
	count := g.paragraphCount(size)

	var b strings.Builder
	if count > 0 {
		b.Grow(int(size))
	}
	for i := int64(0); i < count; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(g.text.Paragraph())
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (g *TxtGenerator) paragraphCount(size int64) int64 {
	if size <= 0 {
		return 0
	}
	sample := int64(len(g.text.Paragraph()))
	if sample == 0 {
		return 0
	}
	return size / sample
}
