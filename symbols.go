package emojify

import (
	"fmt"
	"io"

	"github.com/npillmayer/emojify/internal/fieldfile"
)

// SymbolOverrides maps glyphs to replacement text. During expansion, an
// override takes precedence over the gloss of an emoji.
type SymbolOverrides map[string]string

// DefaultSymbols returns the standard overrides: the red exclamation and
// question marks expand to plain punctuation, and plain punctuation stays
// as it is.
func DefaultSymbols() SymbolOverrides {
	return SymbolOverrides{
		"❗": "!",
		"❓": "?",
		"!": "!",
		"?": "?",
	}
}

// Merge returns a new set of overrides containing so and other. Entries of
// other take precedence.
func (so SymbolOverrides) Merge(other SymbolOverrides) SymbolOverrides {
	merged := make(SymbolOverrides, len(so)+len(other))
	for k, v := range so {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// LoadSymbols reads symbol overrides from a line-oriented file. Each line
// holds the code points of a glyph and of its replacement, in hex:
//
//	2757 ; 0021      # HEAVY EXCLAMATION MARK SYMBOL -> !
//
// Lines starting with '#' are comments.
func LoadSymbols(r io.Reader) (SymbolOverrides, error) {
	so := make(SymbolOverrides)
	err := fieldfile.Parse(r, func(token *fieldfile.Token) error {
		if token.Len() != 2 {
			return fmt.Errorf("expected 2 fields, have %d", token.Len())
		}
		glyph, err := fieldfile.Codepoints(token.Field(1))
		if err != nil {
			return err
		}
		repl, err := fieldfile.Codepoints(token.Field(2))
		if err != nil {
			return err
		}
		so[glyph] = repl
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot read symbol overrides: %w", err)
	}
	tracer().Debugf("read %d symbol overrides", len(so))
	return so, nil
}
