package annotation

import (
	"golang.org/x/text/unicode/norm"
)

// Entry is a single dataset record. Labels[0] is the gloss of the emoji.
// Keywords are looser search terms (CLDR "default" annotations); they are
// registered as phrases only on request.
type Entry struct {
	Emoji    string
	Labels   []string
	Keywords []string
}

// Dataset is an annotation dataset as read from a file. Entries are kept in
// file order.
type Dataset struct {
	Locale  string // BCP 47 tag from the dataset's identity, if any
	Source  string // file name or other description of the input
	Entries []Entry
}

// Len returns the number of entries of a dataset.
func (ds *Dataset) Len() int {
	if ds == nil {
		return 0
	}
	return len(ds.Entries)
}

// Glosses maps an emoji to its gloss.
type Glosses map[string]string

// Phrases maps a phrase to an emoji. Keys are literal: case, punctuation and
// white space are significant.
type Phrases map[string]string

// --- Normalization ---------------------------------------------------------

type normalizer struct {
	keywords bool
	form     *norm.Form
}

// NormalizeOption configures Normalize.
type NormalizeOption func(*normalizer)

// WithKeywords registers the keywords of all entries as additional phrases.
// Keywords are registered after all labels, and a keyword never replaces a
// phrase already present. Among keywords the first one wins.
func WithKeywords(b bool) NormalizeOption {
	return func(n *normalizer) {
		n.keywords = b
	}
}

// WithForm applies a Unicode normalization form to emoji keys and phrases.
func WithForm(f norm.Form) NormalizeOption {
	return func(n *normalizer) {
		n.form = &f
	}
}

func (n *normalizer) apply(s string) string {
	if n.form == nil {
		return s
	}
	return n.form.String(s)
}

// Normalize builds the lookup tables for a dataset.
//
// For every entry, in order, the first label becomes the emoji's gloss and
// every label becomes a phrase for the emoji. If a phrase is used by more than
// one entry, the entry appearing last wins.
//
// Entries with an empty emoji, with no labels or with an empty label result
// in a *FormatError.
func Normalize(ds *Dataset, opts ...NormalizeOption) (Glosses, Phrases, error) {
	if ds == nil {
		return nil, nil, &LoadError{Err: errNoDataset}
	}
	n := &normalizer{}
	for _, opt := range opts {
		opt(n)
	}
	glosses := make(Glosses, len(ds.Entries))
	phrases := make(Phrases, 2*len(ds.Entries))
	for _, e := range ds.Entries {
		if err := e.validate(ds.Source); err != nil {
			return nil, nil, err
		}
		emoji := n.apply(e.Emoji)
		glosses[emoji] = n.apply(e.Labels[0])
		for _, label := range e.Labels {
			label = n.apply(label)
			if prev, ok := phrases[label]; ok && prev != emoji {
				tracer().P("phrase", label).Debugf("re-assigned from %s to %s", prev, emoji)
			}
			phrases[label] = emoji
		}
	}
	if n.keywords {
		for _, e := range ds.Entries {
			emoji := n.apply(e.Emoji)
			for _, kw := range e.Keywords {
				if kw = n.apply(kw); kw == "" {
					continue
				}
				if _, taken := phrases[kw]; !taken {
					phrases[kw] = emoji
				}
			}
		}
	}
	tracer().Debugf("normalized %d entries of %s: %d glosses, %d phrases",
		len(ds.Entries), ds.Source, len(glosses), len(phrases))
	return glosses, phrases, nil
}

func (e Entry) validate(source string) error {
	if e.Emoji == "" {
		return &FormatError{Source: source, Reason: "empty emoji key"}
	}
	if len(e.Labels) == 0 {
		return &FormatError{Source: source, Emoji: e.Emoji, Reason: "no labels"}
	}
	for _, l := range e.Labels {
		if l == "" {
			return &FormatError{Source: source, Emoji: e.Emoji, Reason: "empty label"}
		}
	}
	return nil
}
