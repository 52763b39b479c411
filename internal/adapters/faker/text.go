// Package faker implements ports.TextGenerator on top of gofakeit.
package faker

import (
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/hailam/filecraft/internal/ports"
	"github.com/hailam/filecraft/internal/utils"
)

const (
	minSentences     = 3
	maxSentences     = 4
	wordsPerSentence = 10
)

type FakeText struct {
	f *gofakeit.Faker
}

// New returns a TextGenerator seeded with seed. A zero seed picks a random one.
func New(seed uint64) ports.TextGenerator {
	return &FakeText{f: gofakeit.New(seed)}
}

func (t *FakeText) Paragraph() string {
	sentences := t.f.Number(minSentences, maxSentences)
	return t.f.Paragraph(1, sentences, wordsPerSentence, "")
}

func (t *FakeText) FolderName() string {
	return utils.SanitizeSegment(strings.ReplaceAll(t.f.Company(), " ", "_"))
}

func (t *FakeText) FileName() string {
	name := strings.ToLower(t.f.Word()) + "." + t.f.FileExtension()
	return utils.SanitizeSegment(name)
}
