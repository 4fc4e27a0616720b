package fieldfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// --- Line level scanner ----------------------------------------------------

// scanner is a type for a line-level scanner.
//
// The scanner operates by calling scanning steps in a chain. Each step
// function inspects the remainder of the current line and then possibly
// branches out to a subsequent step function.
//
type scanner struct {
	lines     *bufio.Scanner
	lineNo    int
	rest      string      // unconsumed remainder of the current line
	Step      scannerStep // the next scanner step to execute in a chain
	LastError error       // last error, if any
	Token     *Token      // last token produced by scanner
}

// A scanner step will return the next step in the chain, or nil to stop/accept.
type scannerStep func(*Token) (*Token, scannerStep)

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	return &scanner{lines: bufio.NewScanner(inputReader)}, nil
}

// Parse iterates over each data line of the file and calls callback f on it.
// Parsing stops at the first error returned by f.
func Parse(r io.Reader, f func(token *Token) error) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		if err := f(sc.Token); err != nil {
			return fmt.Errorf("line %d: %w", sc.Token.LineNo, err)
		}
	}
	return sc.LastError
}

// Next is called to receive the next data line. Comment-only and empty
// lines are skipped. Next returns false at the end of input or on error.
func (sc *scanner) Next() bool {
	for sc.lines.Scan() {
		sc.lineNo++
		sc.rest = sc.lines.Text()
		if sc.lineNo == 1 {
			sc.rest = strings.TrimPrefix(sc.rest, "\uFEFF")
		}
		token := newToken(sc.lineNo)
		sc.Step = sc.ScanLine
		for sc.Step != nil {
			token, sc.Step = sc.Step(token)
		}
		if token.Error != nil {
			sc.LastError = fmt.Errorf("line %d: %w", token.LineNo, token.Error)
			return false
		}
		if len(token.Fields) == 0 {
			continue
		}
		sc.Token = token
		return true
	}
	sc.LastError = sc.lines.Err()
	return false
}

// ScanLine starts recognizing a line.
//
//	line:
//	  -> blank:   accept empty
//	  -> '#':     comment
//	  -> other:   fields
//
func (sc *scanner) ScanLine(token *Token) (*Token, scannerStep) {
	if !utf8.ValidString(sc.rest) {
		token.Error = errors.New("line is not valid UTF-8")
		return token, nil
	}
	sc.rest = strings.TrimLeftFunc(sc.rest, unicode.IsSpace)
	if sc.rest == "" {
		return token, nil
	}
	if sc.rest[0] == '#' {
		return token, sc.ScanComment
	}
	return token, sc.ScanFields
}

// ScanFields splits the line up to an optional comment into fields.
func (sc *scanner) ScanFields(token *Token) (*Token, scannerStep) {
	body := sc.rest
	if i := strings.IndexByte(body, '#'); i >= 0 {
		body, sc.rest = body[:i], body[i:]
	} else {
		sc.rest = ""
	}
	for _, f := range strings.Split(body, ";") {
		token.Fields = append(token.Fields, strings.TrimSpace(f))
	}
	if sc.rest == "" {
		return token, nil
	}
	return token, sc.ScanComment
}

// ScanComment consumes a rest-of-line comment.
func (sc *scanner) ScanComment(token *Token) (*Token, scannerStep) {
	token.Comment = strings.TrimSpace(strings.TrimPrefix(sc.rest, "#"))
	sc.rest = ""
	return token, nil
}

func parseHexRune(hex string) (rune, error) {
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex decoding error: %w", err)
	}
	if n > unicode.MaxRune || (n >= 0xD800 && n <= 0xDFFF) {
		return 0, fmt.Errorf("not a valid code point: %s", hex)
	}
	return rune(n), nil
}
