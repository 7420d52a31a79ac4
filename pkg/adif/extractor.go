package adif

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/k5aq/adifcount/pkg/core"
)

var (
	headerEnd = regexp.MustCompile(`(?i)<EOH>`)
	recordEnd = regexp.MustCompile(`(?i)<EOR>`)

	// <NAME:LEN> or <NAME:LEN:TYPE> followed by the raw value.
	// LEN is ASCII digits only, as ADIF writes it.
	fieldTag = regexp.MustCompile(`<([^:>]+):(\d+)(?::([^>]+))?>([^<]*)`)
)

// Parse reads r fully and returns its records.
// Byte sequences that are not valid UTF-8 are dropped.
func Parse(r io.Reader) ([]core.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}
	return ParseString(strings.ToValidUTF8(string(data), "")), nil
}

// ParseString returns the records of text in file order.
func ParseString(text string) []core.Record {
	var records []core.Record
	for _, seg := range Segments(Body(text)) {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		if rec := DecodeRecord(seg); len(rec) > 0 {
			records = append(records, rec)
		}
	}
	return records
}

// Body strips the header section, up to and including the first <EOH>.
// Without one, the whole text is body.
func Body(text string) string {
	loc := headerEnd.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[loc[1]:]
}

// Segments splits body into candidate record bodies on <EOR>.
func Segments(body string) []string {
	return recordEnd.Split(body, -1)
}

// ScanFields returns every well-formed field tag in segment, in order.
func ScanFields(segment string) []core.Field {
	matches := fieldTag.FindAllStringSubmatch(segment, -1)
	fields := make([]core.Field, 0, len(matches))
	for _, m := range matches {
		length, err := strconv.Atoi(m[2])
		if err != nil {
			// Digits only, so this is an overflow: nothing can be that long.
			length = -1
		}
		fields = append(fields, core.Field{
			Name:   strings.ToUpper(m[1]),
			Length: length,
			Type:   m[3],
			Value:  truncate(m[4], length),
		})
	}
	return fields
}

// DecodeRecord folds the fields of segment into a record.
// A repeated name keeps its last value.
func DecodeRecord(segment string) core.Record {
	rec := make(core.Record)
	for _, f := range ScanFields(segment) {
		rec[f.Name] = f.Value
	}
	return rec
}

// truncate cuts s to n characters. Negative n means no limit.
func truncate(s string, n int) string {
	if n < 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
