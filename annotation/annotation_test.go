package annotation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/emojify/internal/fixture"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/unicode/norm"
)

func loadFixture(t *testing.T) *Dataset {
	r, err := fixture.Reader("annotations.json")
	if err != nil {
		t.Fatal(err)
	}
	ds, err := ReadCLDR(r, "annotations.json")
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

func TestNormalizeFixture(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.annotation")
	defer teardown()
	//
	glosses, phrases, err := Normalize(loadFixture(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(glosses) != 13 {
		t.Errorf("expected 13 glosses, have %d", len(glosses))
	}
	for emoji, gloss := range map[string]string{
		"😀": "grinning face",
		"👍": "thumbs up",
		"❤": "red heart",
		"🇩🇪": "flag: Germany",
	} {
		if glosses[emoji] != gloss {
			t.Errorf("expected gloss of %s to be %q, is %q", emoji, gloss, glosses[emoji])
		}
	}
	for phrase, emoji := range map[string]string{
		"grinning face": "😀",
		"happy":         "😀",
		"good":          "👍",
		"good morning":  "🌅",
		"coffee":        "☕",
	} {
		if phrases[phrase] != emoji {
			t.Errorf("expected phrase %q to map to %s, is %q", phrase, emoji, phrases[phrase])
		}
	}
	if _, ok := phrases["grin"]; ok {
		t.Errorf("expected keywords not to be registered by default")
	}
}

func TestLastWriterWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.annotation")
	defer teardown()
	//
	ds := &Dataset{Source: "inline", Entries: []Entry{
		{Emoji: "A", Labels: []string{"a", "shared"}},
		{Emoji: "B", Labels: []string{"b", "shared"}},
	}}
	glosses, phrases, err := Normalize(ds)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Glosses{"A": "a", "B": "b"}, glosses); diff != "" {
		t.Errorf("glosses differ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Phrases{"a": "A", "b": "B", "shared": "B"}, phrases); diff != "" {
		t.Errorf("phrases differ (-want +got):\n%s", diff)
	}
}

func TestKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.annotation")
	defer teardown()
	//
	ds := &Dataset{Entries: []Entry{
		{Emoji: "A", Labels: []string{"a"}, Keywords: []string{"x", "y", ""}},
		{Emoji: "B", Labels: []string{"b", "x"}, Keywords: []string{"y", "z"}},
	}}
	_, phrases, err := Normalize(ds, WithKeywords(true))
	if err != nil {
		t.Fatal(err)
	}
	expected := Phrases{"a": "A", "b": "B", "x": "B", "y": "A", "z": "B"}
	if diff := cmp.Diff(expected, phrases); diff != "" {
		t.Errorf("phrases differ (-want +got):\n%s", diff)
	}
	_, phrases, _ = Normalize(loadFixture(t), WithKeywords(true))
	if phrases["face"] != "😀" {
		t.Errorf("expected first keyword 'face' to map to 😀, is %q", phrases["face"])
	}
	if phrases["good"] != "👍" {
		t.Errorf("expected label 'good' to be unaffected by keywords, is %q", phrases["good"])
	}
}

func TestNormalizationForm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.annotation")
	defer teardown()
	//
	ds := &Dataset{Entries: []Entry{
		{Emoji: "☕", Labels: []string{"cafe\u0301"}},
	}}
	_, phrases, _ := Normalize(ds)
	if _, ok := phrases["caf\u00e9"]; ok {
		t.Errorf("expected phrases to be literal without normalization")
	}
	glosses, phrases, err := Normalize(ds, WithForm(norm.NFC))
	if err != nil {
		t.Fatal(err)
	}
	if phrases["caf\u00e9"] != "☕" {
		t.Errorf("expected NFC phrase to be registered, have %v", phrases)
	}
	if glosses["☕"] != "caf\u00e9" {
		t.Errorf("expected NFC gloss, have %q", glosses["☕"])
	}
}

func TestFormatErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.annotation")
	defer teardown()
	//
	for _, e := range []Entry{
		{Emoji: "", Labels: []string{"nothing"}},
		{Emoji: "A"},
		{Emoji: "A", Labels: []string{}},
		{Emoji: "A", Labels: []string{"a", ""}},
	} {
		_, _, err := Normalize(&Dataset{Source: "inline", Entries: []Entry{e}})
		var ferr *FormatError
		if !errors.As(err, &ferr) {
			t.Errorf("expected format error for %v, have %v", e, err)
			continue
		}
		t.Logf("error = %v", err)
		if ferr.Source != "inline" {
			t.Errorf("expected error to name source, is %q", ferr.Source)
		}
	}
	_, _, err := Normalize(nil)
	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Errorf("expected load error for nil dataset, have %v", err)
	}
}
