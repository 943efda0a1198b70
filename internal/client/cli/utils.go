package cli

import (
	"io"
	"strings"
	"text/tabwriter"
	"time"
	"unicode/utf8"
)

// timeNow is a test seam for the clock.
var timeNow = time.Now

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// maskNumber keeps the last four characters of a card or wallet number.
func maskNumber(n string) string {
	if strings.Contains(n, "*") || utf8.RuneCountInString(n) <= 4 {
		return n
	}
	r := []rune(n)
	return strings.Repeat("*", len(r)-4) + string(r[len(r)-4:])
}
