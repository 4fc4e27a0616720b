/*
Package segment splits text into known phrases and the runs in between.

A Matcher is built once from a set of phrases and answers the question
"which is the longest phrase starting exactly at this position?". Matching is
literal: no character of a phrase has a special meaning, and case, white space
and punctuation are significant. Two strategies are available with identical
results. NewMatcher groups phrases by their first rune and tests candidates
longest first; NewTrieMatcher walks a rune trie.

Typical Usage

Segmenter provides an interface similar to bufio.Scanner for stepping
through a string. Successive calls to a segmenter's Next() method will step
through the segments of the text, each of which is either a known phrase or
a maximal run of text not starting a phrase.

	m := segment.NewMatcher([]string{"good", "good morning", "world"})
	seg := segment.NewSegmenter(m)
	seg.Init("good morning, world")
	for seg.Next() {
		fmt.Printf("%q matched=%v\n", seg.Text(), seg.Matched())
	}

Scanning starts at the beginning of the text. If a phrase matches at the
current position, the longest one is the next segment and scanning continues
after it. Otherwise the position advances by one rune. A phrase is never
matched starting in the middle of a preceding match.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package segment

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'emojify.segment'.
func tracer() tracing.Trace {
	return tracing.Select("emojify.segment")
}
