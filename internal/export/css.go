package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
)

// WriteCSS writes ts as a :root block of custom properties, with a blank line
// between ramps and between scales.
func WriteCSS(w io.Writer, ts tokens.TokenSet) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, ":root {")
	fmt.Fprintf(bw, "  /* %s Design Tokens */\n", commentSafe(ts.BrandName))

	var previous string
	for _, row := range Rows(ts) {
		section := sectionOf(row)
		if section != previous {
			fmt.Fprintln(bw)
			previous = section
		}
		fmt.Fprintf(bw, "  %s: %s;\n", row.Token, row.Value)
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// Colors get one section per ramp; other groups are a single section each.
func sectionOf(row Row) string {
	if row.Group != GroupColor {
		return string(row.Group)
	}
	name := strings.TrimPrefix(row.Token, "--color-")
	if i := strings.LastIndex(name, "-"); i >= 0 {
		name = name[:i]
	}
	return "color:" + name
}

func commentSafe(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}
