/*
Package fieldfile reads small line-oriented data files of the form

	field ; field ; field   # comment

as used for symbol overrides and golden test cases. Blank lines and lines
starting with '#' are skipped. Fields are trimmed of surrounding white space.

The format follows the layout of the Unicode Character Database files
(http://www.unicode.org/reports/tr44/), which is where it comes from.
*/
package fieldfile

import (
	"fmt"
	"strings"
)

// Token subsumes the properties of one data line.
type Token struct {
	LineNo  int      // line number, starting at 1
	Fields  []string // trimmed fields of the line
	Comment string   // rest-of-line comment, if any
	Error   error    // error condition, if any
}

func newToken(line int) *Token {
	return &Token{
		LineNo: line,
		Fields: []string{},
	}
}

func (token *Token) String() string {
	return fmt.Sprintf("token[at %d %#v]", token.LineNo, token.Fields)
}

// Field gets field #i (1…n) from the current data line.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Len returns the number of fields of the line.
func (token *Token) Len() int {
	return len(token.Fields)
}

// Codepoints decodes a field of space-separated hex code points, e.g.
// "1F44D 1F3FD", into a string.
func Codepoints(field string) (string, error) {
	var b strings.Builder
	for _, hex := range strings.Fields(field) {
		hex = strings.TrimPrefix(strings.TrimPrefix(hex, "U+"), "u+")
		r, err := parseHexRune(hex)
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no code points in field %q", field)
	}
	return b.String(), nil
}
