// Package console renders run progress on a terminal.
package console

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"github.com/hailam/filecraft/internal/ports"
	"github.com/hailam/filecraft/internal/utils"
)

const (
	ruleWidth       = 125
	spinnerCharSet  = 14
	spinnerInterval = 100 * time.Millisecond
)

var (
	title = color.New(color.Bold, color.FgYellow).SprintFunc()
	label = color.New(color.Bold, color.FgBlue).SprintFunc()
	path  = color.New(color.Bold, color.FgGreen).SprintFunc()
)

// Reporter prints a banner, a single progress line that is rewritten after
// every file, and a summary table once the run ends. On a terminal the
// progress line trails a spinner; elsewhere it is redrawn with a carriage return.
type Reporter struct {
	out     io.Writer
	spinner *spinner.Spinner // nil unless out is a terminal
	drawn   bool
}

func New(out io.Writer) *Reporter {
	r := &Reporter{out: out}
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		r.spinner = spinner.New(spinner.CharSets[spinnerCharSet], spinnerInterval, spinner.WithWriter(out))
	}
	return r
}

func (r *Reporter) Start(outputDir string) {
	fmt.Fprintf(r.out, "\nData will be generated in the following folder: [ %s ] \n%s\n\n",
		path(outputDir), strings.Repeat("=", ruleWidth))
	if r.spinner != nil {
		r.spinner.Start()
	}
}

func (r *Reporter) spinning() bool {
	return r.spinner != nil && r.spinner.Active()
}

func (r *Reporter) Update(p ports.Progress) {
	line := progressLine(p)
	if r.spinning() {
		r.spinner.Lock()
		r.spinner.Suffix = " " + line
		r.spinner.Unlock()
		return
	}
	fmt.Fprintf(r.out, "\r%s", line)
	r.drawn = true
}

func (r *Reporter) Finish(p ports.Progress) {
	if r.spinning() {
		r.spinner.Stop()
		fmt.Fprintln(r.out, progressLine(p))
	} else if r.drawn {
		fmt.Fprintln(r.out)
	}
	fmt.Fprintln(r.out)
	printSummary(r.out, p)
}

func progressLine(p ports.Progress) string {
	return fmt.Sprintf("%s [ %s %d ] | [ %s(%d) %s %d ]",
		title("Stats for this run:"),
		label("Files created:"), p.FilesCount,
		label("Disk Size"), p.DiskSize,
		label("Bytes Written:"), p.BytesWritten)
}

func printSummary(w io.Writer, p ports.Progress) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Folders", "Files", "Bytes written", "Disk size", "Written", "Target"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.Append([]string{
		strconv.Itoa(p.FoldersCreated),
		strconv.FormatUint(p.FilesCount, 10),
		strconv.FormatInt(p.BytesWritten, 10),
		strconv.FormatInt(p.DiskSize, 10),
		utils.FormatSize(p.BytesWritten),
		utils.FormatSize(p.DiskSize),
	})
	table.Render()
}
