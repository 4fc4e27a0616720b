/*
Package emojify translates between emoji and natural-language phrases.

Description

Translation works in both directions, from emoji to text and from text to
emoji. Both directions are driven by an annotation dataset, which assigns to
every emoji an ordered list of labels (see package annotation). The first
label of an emoji is its gloss.

ToText expands each emoji of a text into its gloss:

	lex.ToText("🌅☕")   // => "sunrise hot beverage"

ToEmoji scans a text for known phrases and renders each of them as its emoji.
Everything else is dropped:

	lex.ToEmoji("good morning, coffee?")   // => "🌅☕"

Scanning is greedy: at every position the longest known phrase wins, and
after a match scanning continues behind it. Phrases are matched literally,
i.e. with case, white space and punctuation significant.

Translation is not meant to round-trip. ToEmoji(ToText(e)) gives back e only
if the gloss of e is not shadowed by another phrase.

Lexicons

All translation state lives in a Lexicon. A Lexicon is built once and never
changes afterwards, which makes it safe for concurrent use. To switch to a
changed dataset, build a new Lexicon (see package reload).

	ds, err := annotation.Load("annotations.json", annotation.LoadOptions{})
	…
	lex, err := emojify.NewFromDataset(ds, emojify.WithSymbols(emojify.DefaultSymbols()))

Expansion works on code points by default. Option WithGraphemes switches to
grapheme clusters, which allows glosses for multi-code-point emoji such as
flags.

BSD License

Copyright (c) 2021–22, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package emojify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'emojify.lexicon'.
func tracer() tracing.Trace {
	return tracing.Select("emojify.lexicon")
}
