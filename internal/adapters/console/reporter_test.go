package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/hailam/filecraft/internal/ports"
)

func init() {
	color.NoColor = true
}

func TestReporter_Start(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Start("/tmp/data_repo")

	out := buf.String()
	assert.Contains(t, out, "Data will be generated in the following folder: [ /tmp/data_repo ]")
	assert.Contains(t, out, strings.Repeat("=", ruleWidth))
}

func TestReporter_UpdateRewritesLine(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Update(ports.Progress{FilesCount: 1, DiskSize: 40960, BytesWritten: 3000})
	r.Update(ports.Progress{FilesCount: 2, DiskSize: 40960, BytesWritten: 7000})

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "\r"))
	assert.Contains(t, out, "Stats for this run: [ Files created: 2 ] | [ Disk Size(40960) Bytes Written: 7000 ]")
	assert.NotContains(t, out, "\n")
}

func TestReporter_FinishPrintsSummary(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	p := ports.Progress{FilesCount: 12, FoldersCreated: 3, DiskSize: 2 * 1024 * 1024, BytesWritten: 1536}

	r.Update(p)
	r.Finish(p)

	out := buf.String()
	assert.Contains(t, out, "FOLDERS")
	assert.Contains(t, out, "BYTES WRITTEN")
	assert.Contains(t, out, "1536")
	assert.Contains(t, out, "1.5 KB")
	assert.Contains(t, out, "2.0 MB")
}

func TestReporter_FinishWithoutUpdates(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Finish(ports.Progress{})

	out := buf.String()
	assert.NotContains(t, out, "\r")
	assert.Contains(t, out, "0 B")
}
