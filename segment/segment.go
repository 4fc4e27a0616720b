package segment

import "unicode/utf8"

// A Segmenter steps through a text and splits it into segments, each of
// which either is a phrase known to its Matcher or a maximal run of text in
// between phrases.
type Segmenter struct {
	matcher Matcher
	text    string
	pos     int  // current position in text
	from    int  // start of current segment
	to      int  // end of current segment
	matched bool // current segment is a phrase
	cache   lookahead
}

// lookahead remembers the last match attempt. At the end of an unmatched run
// the next phrase has already been found and need not be searched again.
type lookahead struct {
	offset int
	phrase string
	ok     bool
}

// NewSegmenter creates a new Segmenter for a matcher. A nil matcher will
// never match a phrase.
//
// Before using newly created segmenters, clients will have to call Init(...)
// on them.
func NewSegmenter(m Matcher) *Segmenter {
	if m == nil {
		m = NewMatcher(nil)
	}
	return &Segmenter{matcher: m}
}

// Init initializes a Segmenter with a text to segment. A segmenter may
// be re-initialized at any time.
func (s *Segmenter) Init(text string) {
	s.text = text
	s.pos, s.from, s.to = 0, 0, 0
	s.matched = false
	s.cache = lookahead{offset: -1}
}

// Next advances the Segmenter to the next segment, which will then be
// available through Text() or Span(). It returns false at the end of the text.
func (s *Segmenter) Next() bool {
	if s.pos >= len(s.text) {
		s.from, s.to, s.matched = s.pos, s.pos, false
		return false
	}
	start := s.pos
	if phrase, ok := s.matchAt(start); ok {
		s.from, s.to, s.matched = start, start+len(phrase), true
		s.pos = s.to
		return true
	}
	i := start
	for i < len(s.text) {
		_, size := utf8.DecodeRuneInString(s.text[i:])
		i += size
		if _, ok := s.matchAt(i); ok {
			break
		}
	}
	s.from, s.to, s.matched = start, i, false
	s.pos = i
	return true
}

func (s *Segmenter) matchAt(offset int) (string, bool) {
	if s.cache.offset == offset {
		return s.cache.phrase, s.cache.ok
	}
	phrase, ok := s.matcher.MatchAt(s.text, offset)
	s.cache = lookahead{offset: offset, phrase: phrase, ok: ok}
	return phrase, ok
}

// Text returns the current segment.
func (s *Segmenter) Text() string {
	return s.text[s.from:s.to]
}

// Matched is true if the current segment is a phrase of the matcher.
func (s *Segmenter) Matched() bool {
	return s.matched
}

// Span returns the byte offsets of the current segment within the text.
func (s *Segmenter) Span() (from, to int) {
	return s.from, s.to
}
