package grapheme

import (
	"testing"
)

func TestString(t *testing.T) {
	input := "Hello World"
	s := StringFromString(input)
	if s == nil {
		t.Fatalf("resulting grapheme string should not be nil")
	}
	x := s.Nth(2)
	if x != "l" {
		t.Errorf("expected s.Nth(2) to be 'l', is %#v", x)
	}
	if s.Len() != 11 {
		t.Errorf("expected s.Len() to be 11, is %d", s.Len())
	}
}

func TestChineseString(t *testing.T) {
	s := StringFromString("世界")
	if s.Len() != 2 {
		t.Errorf("expected s.Len() to be 2, is %d", s.Len())
	}
	if len(s.Nth(1)) != 3 {
		t.Errorf("expected len(s.Nth(1)) to be 3, is %d", len(s.Nth(1)))
	}
}

func TestEmojiClusters(t *testing.T) {
	for _, c := range []struct {
		input  string
		length int
		first  string
	}{
		{"🇩🇪!", 2, "🇩🇪"},
		{"❤\uFE0Fx", 2, "❤\uFE0F"},
		{"👩\u200D💻 ", 2, "👩\u200D💻"},
		{"👍🏽👍", 2, "👍🏽"},
	} {
		s := StringFromBytes([]byte(c.input))
		if s.Len() != c.length {
			t.Errorf("expected %+q to have %d graphemes, has %d", c.input, c.length, s.Len())
			continue
		}
		if s.Nth(0) != c.first {
			t.Errorf("expected first grapheme of %+q to be %+q, is %+q", c.input, c.first, s.Nth(0))
		}
	}
}

func TestEmptyString(t *testing.T) {
	s := StringFromString("")
	if s.Len() != 0 {
		t.Errorf("expected empty grapheme string, has length %d", s.Len())
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected Nth(0) of empty string to panic")
		}
	}()
	s.Nth(0)
}
