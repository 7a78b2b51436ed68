package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ababiyaworku/Pandora-Box/internal/media"
	"github.com/ababiyaworku/Pandora-Box/internal/options"
	"github.com/ababiyaworku/Pandora-Box/internal/services/ytdlp"
)

type terminalPrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func newTerminalPrompter(in io.Reader, out io.Writer) *terminalPrompter {
	return &terminalPrompter{reader: bufio.NewReader(in), out: out}
}

func (p *terminalPrompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, prompt)
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

type terminalRenderer struct {
	out         io.Writer
	inProgress  bool
	lastPercent float64
}

func newTerminalRenderer(out io.Writer) *terminalRenderer {
	return &terminalRenderer{out: out, lastPercent: -1}
}

func (r *terminalRenderer) ShowMessage(message string) {
	r.finishProgress()
	fmt.Fprintln(r.out, message)
}

func (r *terminalRenderer) ShowInfo(info media.VideoInfo) {
	r.finishProgress()
	rows := [][]string{
		{"Title", info.Title},
	}
	if info.Uploader != "" {
		rows = append(rows, []string{"Uploader", info.Uploader})
	}
	rows = append(rows, []string{"Duration", media.FormatDuration(info.Duration)})
	if info.ViewCount > 0 {
		rows = append(rows, []string{"Views", media.FormatViews(info.ViewCount)})
	}
	if info.UploadDate != "" {
		rows = append(rows, []string{"Uploaded", info.UploadDate})
	}
	fmt.Fprintln(r.out, renderTable([]string{"Video", ""}, rows, nil))
}

func (r *terminalRenderer) ShowOptions(opts []options.Option) {
	r.finishProgress()
	rows := make([][]string, 0, len(opts))
	for _, opt := range opts {
		rows = append(rows, []string{strconv.Itoa(opt.Ordinal), opt.Description})
	}
	fmt.Fprintln(r.out, renderTable([]string{"#", "Download option"}, rows, []columnAlignment{alignRight, alignLeft}))
	fmt.Fprintln(r.out, "Enter 0 to cancel.")
}

func (r *terminalRenderer) ShowProgress(update ytdlp.ProgressUpdate) {
	if update.Percent == r.lastPercent {
		return
	}
	r.lastPercent = update.Percent
	r.inProgress = true
	fmt.Fprintf(r.out, "\rDownloading... %5.1f%%", update.Percent)
}

// finishProgress terminates an in-place progress line before other output.
func (r *terminalRenderer) finishProgress() {
	if !r.inProgress {
		return
	}
	fmt.Fprintln(r.out)
	r.inProgress = false
	r.lastPercent = -1
}
