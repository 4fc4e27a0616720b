package emojify

import "github.com/npillmayer/emojify/segment"

// ToEmoji renders the known phrases of a text as emoji.
//
// The text is scanned from left to right. At each position the longest
// known phrase is translated to its emoji and scanning continues after the
// phrase. Where no phrase starts, scanning advances by one character, which
// is dropped. Text without known phrases results in an empty string.
func (lex *Lexicon) ToEmoji(phrase string) string {
	if phrase == "" {
		return ""
	}
	phrase = lex.normalized(phrase)
	sc := borrowScratch()
	defer sc.release()
	seg := segment.NewSegmenter(lex.matcher)
	seg.Init(phrase)
	for seg.Next() {
		if seg.Matched() {
			sc.buf.WriteString(lex.phrases[seg.Text()])
		}
	}
	return sc.buf.String()
}

// Segment is a part of a text, as found during phrase scanning.
type Segment struct {
	Text    string `json:"text"`
	Emoji   string `json:"emoji,omitempty"` // empty for unmatched text
	Matched bool   `json:"matched"`
	From    int    `json:"from"` // byte offsets into the (normalized) input
	To      int    `json:"to"`
}

// Explain returns the segmentation of a text as performed by ToEmoji.
// Concatenating the emoji of all segments equals the result of ToEmoji.
func (lex *Lexicon) Explain(phrase string) []Segment {
	if phrase == "" {
		return nil
	}
	phrase = lex.normalized(phrase)
	var segments []Segment
	seg := segment.NewSegmenter(lex.matcher)
	seg.Init(phrase)
	for seg.Next() {
		from, to := seg.Span()
		s := Segment{Text: seg.Text(), Matched: seg.Matched(), From: from, To: to}
		if s.Matched {
			s.Emoji = lex.phrases[s.Text]
		}
		segments = append(segments, s)
	}
	return segments
}
