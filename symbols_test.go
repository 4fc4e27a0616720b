package emojify

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/emojify/internal/fixture"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLoadSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.lexicon")
	defer teardown()
	//
	r, err := fixture.Reader("symbols.txt")
	if err != nil {
		t.Fatal(err)
	}
	so, err := LoadSymbols(r)
	if err != nil {
		t.Fatal(err)
	}
	expected := SymbolOverrides{"❗": "!", "❓": "?", "⁉": "!?", "❤": "<3"}
	if diff := cmp.Diff(expected, so); diff != "" {
		t.Errorf("symbols differ (-want +got):\n%s", diff)
	}
	lex := fixtureLexicon(t, WithSymbols(DefaultSymbols().Merge(so)))
	if s := lex.ToText("❤\uFE0F⁉"); s != "<3 !?" {
		t.Errorf("expected loaded overrides to apply, have %q", s)
	}
}

func TestLoadSymbolsErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.lexicon")
	defer teardown()
	//
	for _, input := range []string{
		"2757",
		"2757 ; 0021 ; 0021",
		"XYZ ; 0021",
		"2757 ; ",
	} {
		if _, err := LoadSymbols(strings.NewReader(input)); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestMergeSymbols(t *testing.T) {
	a := SymbolOverrides{"!": "!", "?": "?"}
	b := SymbolOverrides{"?": "¿"}
	m := a.Merge(b)
	if m["?"] != "¿" || m["!"] != "!" {
		t.Errorf("expected later overrides to take precedence, have %v", m)
	}
	if a["?"] != "?" {
		t.Errorf("expected Merge not to modify its receiver")
	}
}
