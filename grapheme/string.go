package grapheme

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// String is a type to represent a graheme string, i.e. a sequence of
// “user perceived characters” as defined by Unicode.
// A grapheme string is a read-only data structure.
//
// Finding graphemes from a string (or array of bytes) is an operation with
// runtime complexiy O(N). Clients should not convert large texts into grapheme
// strings in one go, but rather operate on manageable fragments.
//
type String interface {
	Nth(int) string // return nth grapheme
	Len() int       // length of string in units of user perceived characters
}

// StringFromString creates a grapheme string from a Go string.
//
// Bytes which are not valid UTF-8 form clusters of their own.
func StringFromString(s string) String {
	gstr := &clusterString{content: s}
	if s == "" {
		return gstr
	}
	gstr.breaks = make([]int, 1, len(s)/2+2)
	state, rest, pos := -1, s, 0
	var cluster string
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.StepString(rest, state)
		pos += len(cluster)
		gstr.breaks = append(gstr.breaks, pos)
	}
	return gstr
}

// StringFromBytes creates a grapheme string from an array of bytes. As grapheme
// strings are a read-only data structure, StringFromBytes will create a private copy
// of the input.
func StringFromBytes(b []byte) String {
	return StringFromString(string(b))
}

type clusterString struct {
	content string
	breaks  []int // byte offsets of cluster boundaries, starting with 0
}

func (gstr *clusterString) Nth(n int) string {
	if n < 0 || n >= gstr.Len() {
		panic(fmt.Sprintf("grapheme string index out of bounds, [%d] in [0:%d]",
			n, gstr.Len()))
	}
	l, r := gstr.breaks[n], gstr.breaks[n+1]
	return gstr.content[l:r]
}

func (gstr *clusterString) Len() int {
	if len(gstr.breaks) < 2 {
		return 0
	}
	return len(gstr.breaks) - 1
}
