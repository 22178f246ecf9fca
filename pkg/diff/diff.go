// Package diff renders line-oriented differences between two exports of the
// same token set.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated, exceeds 2,000 lines) ..."
)

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// Unified compares old and updated line by line and returns a unified-style diff
// with every line prefixed by ' ', '-' or '+'. Identical input yields "".
func Unified(old, updated []byte, oldLabel, newLabel string) (string, Stats) {
	if bytes.Equal(old, updated) {
		return "", Stats{}
	}

	dmp := diffmatchpatch.New()
	oldChars, newChars, lineArray := dmp.DiffLinesToChars(string(old), string(updated))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(oldChars, newChars, false), lineArray)

	var body strings.Builder
	var stats Stats
	oldCount, newCount := 0, 0
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				body.WriteString(" " + line + "\n")
				oldCount++
				newCount++
			case diffmatchpatch.DiffDelete:
				body.WriteString("-" + line + "\n")
				oldCount++
				stats.Removed++
			case diffmatchpatch.DiffInsert:
				body.WriteString("+" + line + "\n")
				newCount++
				stats.Added++
			}
		}
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", oldLabel)
	fmt.Fprintf(&buf, "+++ %s\n", newLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", oldCount, newCount)
	buf.WriteString(body.String())

	return truncate(buf.String()), stats
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func truncate(result string) string {
	lines := strings.Split(result, "\n")
	if len(lines) <= maxDiffLines {
		return result
	}
	return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
}
