package segment

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type seg struct {
	text    string
	matched bool
}

func collect(s *Segmenter) []seg {
	var out []seg
	for s.Next() {
		out = append(out, seg{s.Text(), s.Matched()})
	}
	return out
}

func TestSegmenter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.segment")
	defer teardown()
	//
	for name, create := range strategies {
		s := NewSegmenter(create([]string{"good", "good morning", "world"}))
		s.Init("good morning, world!")
		segments := collect(s)
		expected := []seg{
			{"good morning", true},
			{", ", false},
			{"world", true},
			{"!", false},
		}
		if len(segments) != len(expected) {
			t.Fatalf("%s: expected %d segments, have %v", name, len(expected), segments)
		}
		for i, e := range expected {
			if segments[i] != e {
				t.Errorf("%s: expected segment #%d to be %v, is %v", name, i, e, segments[i])
			}
		}
	}
}

func TestSegmenterAdjacentPhrases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.segment")
	defer teardown()
	//
	s := NewSegmenter(NewMatcher([]string{"good", "night"}))
	s.Init("goodnight")
	segments := collect(s)
	if len(segments) != 2 || segments[0].text != "good" || segments[1].text != "night" {
		t.Errorf("expected 'good'+'night', have %v", segments)
	}
}

func TestSegmenterNoOverlap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.segment")
	defer teardown()
	//
	// 'ab' consumes the 'b' which would start 'bc'
	s := NewSegmenter(NewTrieMatcher([]string{"ab", "bc"}))
	s.Init("abc")
	segments := collect(s)
	if len(segments) != 2 || segments[0] != (seg{"ab", true}) || segments[1] != (seg{"c", false}) {
		t.Errorf("expected 'ab' and unmatched 'c', have %v", segments)
	}
}

func TestSegmenterSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.segment")
	defer teardown()
	//
	s := NewSegmenter(NewMatcher([]string{"😀"}))
	s.Init("a😀b")
	var spans [][2]int
	for s.Next() {
		from, to := s.Span()
		spans = append(spans, [2]int{from, to})
	}
	expected := [][2]int{{0, 1}, {1, 5}, {5, 6}}
	if fmt.Sprint(spans) != fmt.Sprint(expected) {
		t.Errorf("expected spans %v, have %v", expected, spans)
	}
}

func TestSegmenterEdgeCases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.segment")
	defer teardown()
	//
	s := NewSegmenter(nil)
	s.Init("")
	if s.Next() {
		t.Errorf("expected no segments for empty text")
	}
	s.Init("plain")
	segments := collect(s)
	if len(segments) != 1 || segments[0] != (seg{"plain", false}) {
		t.Errorf("expected a single unmatched segment, have %v", segments)
	}
	s.Init("\xff\xfe")
	segments = collect(s)
	if len(segments) != 1 || segments[0].text != "\xff\xfe" {
		t.Errorf("expected invalid bytes to form one segment, have %v", segments)
	}
}

func ExampleSegmenter() {
	m := NewMatcher([]string{"good", "good morning", "world"})
	seg := NewSegmenter(m)
	seg.Init("good morning, world")
	for seg.Next() {
		fmt.Printf("%q matched=%v\n", seg.Text(), seg.Matched())
	}
	// Output:
	// "good morning" matched=true
	// ", " matched=false
	// "world" matched=true
}
