package emojify

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/emojify/emoji"
	"github.com/npillmayer/emojify/grapheme"
)

// TokenSeparator separates the expansions of consecutive characters.
const TokenSeparator = " "

// ToText expands every character of a text: emoji presentation selectors
// (U+FE0F) are skipped, symbol overrides are replaced, emoji are replaced by
// their gloss, and everything else is kept as it is. The expansions are
// joined by TokenSeparator.
//
// With option WithGraphemes, a grapheme cluster of more than one code point
// is first looked up as a whole, with and without presentation selectors.
// An unknown ZWJ sequence is expanded part by part, without the joiners.
// Other unknown clusters are expanded code point by code point.
func (lex *Lexicon) ToText(text string) string {
	if text == "" {
		return ""
	}
	text = lex.normalized(text)
	sc := borrowScratch()
	defer sc.release()
	if lex.graphemes {
		lex.expandClusters(text, sc)
	} else {
		lex.expandRunes(text, sc)
	}
	return strings.Join(sc.tokens, TokenSeparator)
}

func (lex *Lexicon) expandRunes(text string, sc *scratch) {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		c := text[i : i+size]
		i += size
		if r == emoji.VS16 {
			continue
		}
		sc.tokens = append(sc.tokens, lex.expand(c))
	}
}

func (lex *Lexicon) expandClusters(text string, sc *scratch) {
	gstr := grapheme.StringFromString(text)
	for n := 0; n < gstr.Len(); n++ {
		cluster := gstr.Nth(n)
		if emoji.IsSequence(cluster) {
			if t, ok := lex.lookupCluster(cluster); ok {
				sc.tokens = append(sc.tokens, t)
				continue
			}
			if strings.ContainsRune(cluster, emoji.ZWJ) {
				lex.expandComponents(cluster, sc)
				continue
			}
		}
		lex.expandRunes(cluster, sc)
	}
}

// expandComponents expands the parts of an unknown ZWJ sequence one by one.
// The joiners are dropped.
func (lex *Lexicon) expandComponents(cluster string, sc *scratch) {
	for _, part := range emoji.Components(cluster) {
		if t, ok := lex.lookupCluster(part); ok {
			sc.tokens = append(sc.tokens, t)
			continue
		}
		lex.expandRunes(part, sc)
	}
}

func (lex *Lexicon) lookupCluster(cluster string) (string, bool) {
	for _, key := range []string{cluster, emoji.StripVS16(cluster)} {
		if key == "" {
			continue
		}
		if s, ok := lex.symbols[key]; ok {
			return s, true
		}
		if g, ok := lex.glosses[key]; ok {
			return g, true
		}
	}
	return "", false
}

// expand returns the expansion of a single character.
func (lex *Lexicon) expand(c string) string {
	if s, ok := lex.symbols[c]; ok {
		return s
	}
	if g, ok := lex.glosses[c]; ok {
		return g
	}
	return c
}
