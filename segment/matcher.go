package segment

import (
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// Matcher finds the longest phrase starting at a byte offset of a text.
//
// MatchAt returns the phrase and true if one of the matcher's phrases is a
// prefix of text[offset:]. If more than one phrase qualifies, the longest one
// is returned. Offsets not at a rune boundary and offsets outside of the
// text never match.
//
// Matchers are read-only after construction and may be shared between
// goroutines.
type Matcher interface {
	MatchAt(text string, offset int) (string, bool)
	Len() int // number of distinct phrases
}

// bucketMatcher keeps phrases in buckets, one for each first rune. Buckets
// are sorted longest first, so the first candidate which is a prefix wins.
type bucketMatcher struct {
	buckets *treemap.Map // rune -> *arraylist.List of strings
	count   int
}

// NewMatcher creates a matcher from a set of phrases. Empty phrases and
// duplicates are ignored, as are phrases which are not valid UTF-8.
func NewMatcher(phrases []string) Matcher {
	m := &bucketMatcher{buckets: treemap.NewWith(utils.RuneComparator)}
	for _, p := range distinct(phrases) {
		r, _ := utf8.DecodeRuneInString(p)
		var bucket *arraylist.List
		if b, found := m.buckets.Get(r); found {
			bucket = b.(*arraylist.List)
		} else {
			bucket = arraylist.New()
			m.buckets.Put(r, bucket)
		}
		bucket.Add(p)
		m.count++
	}
	m.buckets.Each(func(_ interface{}, b interface{}) {
		b.(*arraylist.List).Sort(longestFirst)
	})
	tracer().Debugf("bucket matcher with %d phrases in %d buckets", m.count, m.buckets.Size())
	return m
}

// longestFirst orders by byte length descending, then lexically. All
// candidates of a match are prefixes of the same text, so ordering by bytes
// is the same as ordering by runes.
func longestFirst(a, b interface{}) int {
	s, t := a.(string), b.(string)
	switch {
	case len(s) > len(t):
		return -1
	case len(s) < len(t):
		return 1
	}
	return strings.Compare(s, t)
}

func (m *bucketMatcher) MatchAt(text string, offset int) (string, bool) {
	if !validOffset(text, offset) {
		return "", false
	}
	rest := text[offset:]
	r, _ := utf8.DecodeRuneInString(rest)
	b, found := m.buckets.Get(r)
	if !found {
		return "", false
	}
	it := b.(*arraylist.List).Iterator()
	for it.Next() {
		if p := it.Value().(string); strings.HasPrefix(rest, p) {
			return p, true
		}
	}
	return "", false
}

func (m *bucketMatcher) Len() int {
	return m.count
}

// --- Helpers ---------------------------------------------------------------

func validOffset(text string, offset int) bool {
	return offset >= 0 && offset < len(text) && utf8.RuneStart(text[offset])
}

func distinct(phrases []string) []string {
	seen := make(map[string]struct{}, len(phrases))
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if p == "" {
			continue
		}
		if !utf8.ValidString(p) {
			tracer().Errorf("ignoring phrase %+q: not valid UTF-8", p)
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
