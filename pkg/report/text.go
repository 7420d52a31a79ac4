// Package report renders daily summaries for the console.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/k5aq/adifcount/pkg/core"
)

// Text writes the plain listing of s to w: file, date, count, and the
// sorted calls one per line.
func Text(w io.Writer, s core.Summary) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\nADIF File: %s\n", s.Path)
	fmt.Fprintf(bw, "Date: %s\n", DisplayDate(s.Date))
	fmt.Fprintf(bw, "\nUnique call signs today: %d\n", s.Calls.Len())

	if s.Calls.Len() > 0 {
		fmt.Fprintln(bw, "\nCall signs:")
		for _, call := range s.Calls.Sorted() {
			fmt.Fprintf(bw, "  %s\n", call)
		}
	}

	return bw.Flush()
}

// DisplayDate turns YYYYMMDD into YYYY-MM-DD. Anything else is returned as-is.
func DisplayDate(date string) string {
	if core.ValidateDate(date) != nil {
		return date
	}
	return date[:4] + "-" + date[4:6] + "-" + date[6:]
}
