package emojify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/emojify/annotation"
	"github.com/npillmayer/emojify/segment"
	"golang.org/x/text/unicode/norm"
)

// MatchStrategy selects the implementation of phrase matching. Both
// strategies find identical matches.
type MatchStrategy int

// Strategies for phrase matching, see package segment.
const (
	BucketMatch MatchStrategy = iota // phrases bucketed by first rune
	TrieMatch                        // rune trie
)

func (s MatchStrategy) String() string {
	switch s {
	case BucketMatch:
		return "bucket"
	case TrieMatch:
		return "trie"
	}
	return fmt.Sprintf("MatchStrategy(%d)", int(s))
}

// ParseMatchStrategy returns the strategy for a name, "bucket" or "trie".
func ParseMatchStrategy(name string) (MatchStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "bucket":
		return BucketMatch, nil
	case "trie":
		return TrieMatch, nil
	}
	return BucketMatch, fmt.Errorf("unknown match strategy %q", name)
}

// Lexicon holds the lookup tables for translation. It is immutable after
// construction and safe for concurrent use.
type Lexicon struct {
	glosses   annotation.Glosses
	phrases   annotation.Phrases
	symbols   SymbolOverrides
	matcher   segment.Matcher
	strategy  MatchStrategy
	graphemes bool
	form      *norm.Form
	locale    string
}

type options struct {
	symbols    SymbolOverrides
	symbolsSet bool
	strategy   MatchStrategy
	graphemes  bool
	keywords   bool
	form       *norm.Form
	locale     string
}

// Option configures a Lexicon.
type Option func(*options)

// WithSymbols sets the symbol overrides. Without this option DefaultSymbols
// are used; WithSymbols(nil) disables overrides.
func WithSymbols(so SymbolOverrides) Option {
	return func(o *options) {
		o.symbols = so
		o.symbolsSet = true
	}
}

// WithMatchStrategy selects the phrase matcher implementation.
func WithMatchStrategy(s MatchStrategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithGraphemes switches expansion from code points to grapheme clusters.
func WithGraphemes(b bool) Option {
	return func(o *options) {
		o.graphemes = b
	}
}

// WithKeywords registers dataset keywords as additional phrases. It is
// effective for NewFromDataset only.
func WithKeywords(b bool) Option {
	return func(o *options) {
		o.keywords = b
	}
}

// WithNormalization applies a Unicode normalization form to table keys and
// to the input of both translation directions.
func WithNormalization(f norm.Form) Option {
	return func(o *options) {
		o.form = &f
	}
}

// WithLocale records the locale of the lexicon's dataset.
func WithLocale(locale string) Option {
	return func(o *options) {
		o.locale = locale
	}
}

// New creates a lexicon from lookup tables. The tables are copied.
func New(glosses annotation.Glosses, phrases annotation.Phrases, opts ...Option) *Lexicon {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if !o.symbolsSet {
		o.symbols = DefaultSymbols()
	}
	lex := &Lexicon{
		glosses:   make(annotation.Glosses, len(glosses)),
		phrases:   make(annotation.Phrases, len(phrases)),
		symbols:   make(SymbolOverrides, len(o.symbols)),
		strategy:  o.strategy,
		graphemes: o.graphemes,
		form:      o.form,
		locale:    o.locale,
	}
	for k, v := range glosses {
		lex.glosses[lex.normalized(k)] = lex.normalized(v)
	}
	for k, v := range phrases {
		if k = lex.normalized(k); k != "" {
			lex.phrases[k] = lex.normalized(v)
		}
	}
	for k, v := range o.symbols {
		lex.symbols[lex.normalized(k)] = v
	}
	keys := make([]string, 0, len(lex.phrases))
	for k := range lex.phrases {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	switch lex.strategy {
	case TrieMatch:
		lex.matcher = segment.NewTrieMatcher(keys)
	default:
		lex.matcher = segment.NewMatcher(keys)
	}
	tracer().Infof("lexicon with %d emojis, %d phrases, %d symbols (%s matcher)",
		len(lex.glosses), len(lex.phrases), len(lex.symbols), lex.strategy)
	return lex
}

// NewFromDataset normalizes a dataset and creates a lexicon from it.
// Errors are those of annotation.Normalize.
func NewFromDataset(ds *annotation.Dataset, opts ...Option) (*Lexicon, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	var nopts []annotation.NormalizeOption
	if o.keywords {
		nopts = append(nopts, annotation.WithKeywords(true))
	}
	if o.form != nil {
		nopts = append(nopts, annotation.WithForm(*o.form))
	}
	glosses, phrases, err := annotation.Normalize(ds, nopts...)
	if err != nil {
		return nil, err
	}
	if o.locale == "" {
		opts = append(opts, WithLocale(ds.Locale))
	}
	return New(glosses, phrases, opts...), nil
}

func (lex *Lexicon) normalized(s string) string {
	if lex.form == nil {
		return s
	}
	return lex.form.String(s)
}

// Gloss returns the gloss of an emoji.
func (lex *Lexicon) Gloss(emoji string) (string, bool) {
	g, ok := lex.glosses[lex.normalized(emoji)]
	return g, ok
}

// Lookup returns the emoji for a phrase. The phrase has to match exactly.
func (lex *Lexicon) Lookup(phrase string) (string, bool) {
	e, ok := lex.phrases[lex.normalized(phrase)]
	return e, ok
}

// Locale returns the locale of the lexicon's dataset, if known.
func (lex *Lexicon) Locale() string {
	return lex.locale
}

// Stats describes the size and configuration of a lexicon.
type Stats struct {
	Emojis    int           `json:"emojis"`
	Phrases   int           `json:"phrases"`
	Symbols   int           `json:"symbols"`
	Strategy  MatchStrategy `json:"-"`
	Graphemes bool          `json:"graphemes"`
	Locale    string        `json:"locale,omitempty"`
}

// Stats returns statistics about a lexicon.
func (lex *Lexicon) Stats() Stats {
	return Stats{
		Emojis:    len(lex.glosses),
		Phrases:   len(lex.phrases),
		Symbols:   len(lex.symbols),
		Strategy:  lex.strategy,
		Graphemes: lex.graphemes,
		Locale:    lex.locale,
	}
}
