package rec

import (
	"regexp"
	"strings"
)

// Line classification for the brace-delimited text format. A line holding
// "{" opens a record group, one holding "}" commits it, and anything else
// is either a key/value pair or ignored. The open check runs before the
// close check so a line is never classified twice.
type lineKind int

const (
	lineSkip lineKind = iota
	lineOpen
	lineClose
	lineField
)

type line struct {
	kind  lineKind
	key   string
	value string
}

// fieldLine matches optional leading whitespace, a word-character key,
// exactly one whitespace separator, then the rest of the line as the value.
var fieldLine = regexp.MustCompile(`^\s*(\w+)\s(.*)$`)

// classify assigns a single classification to one raw line. Double-quote
// characters are stripped from both key and value; escaped quotes and
// braces inside values are not supported.
func classify(s string) line {
	if strings.Contains(s, "{") {
		return line{kind: lineOpen}
	}
	if strings.Contains(s, "}") {
		return line{kind: lineClose}
	}
	m := fieldLine.FindStringSubmatch(s)
	if m == nil {
		return line{kind: lineSkip}
	}
	return line{
		kind:  lineField,
		key:   strings.ReplaceAll(m[1], `"`, ""),
		value: strings.ReplaceAll(m[2], `"`, ""),
	}
}
