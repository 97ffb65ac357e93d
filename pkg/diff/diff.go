// Package diff compares text line by line, for render output that should
// stay stable between passes.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Result is a line diff. Text is empty when the inputs are identical.
type Result struct {
	Text    string
	Added   int
	Removed int
}

// Identical reports whether the inputs had no differing lines.
func (r Result) Identical() bool {
	return r.Added == 0 && r.Removed == 0
}

// Lines diffs before and after by whole lines and formats the result with
// "-"/"+"/" " prefixes under ---/+++ headers.
func Lines(before, after []byte, beforeLabel, afterLabel string) Result {
	if bytes.Equal(before, after) {
		return Result{}
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var res Result
	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", beforeLabel, afterLabel)

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteByte('\n')
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				res.Removed++
			case diffmatchpatch.DiffInsert:
				res.Added++
			}
		}
	}

	res.Text = buf.String()
	if out := strings.Split(res.Text, "\n"); len(out) > maxDiffLines {
		res.Text = strings.Join(out[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return res
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}
