/*
Package annotation loads emoji annotation datasets and normalizes them into
the two lookup tables used for translation.

An annotation dataset maps each emoji to an ordered list of labels. The first
label is the emoji's gloss, i.e. the text it expands to. Every label is
registered as a phrase which maps back to the emoji. Datasets come in the shape
of the CLDR annotation files

	{"annotations": {"identity": {"language": "en"},
	                 "annotations": {"👍": {"tts": ["thumbs up", "good"],
	                                        "default": ["+1", "hand"]}}}}

either as JSON (ReadCLDR) or with identical structure as YAML (ReadYAML).
Load reads a single file or selects a per-locale file from a directory.

Datasets are read once. Errors are reported as *LoadError (the file could not
be read or has no annotations) or *FormatError (an entry is malformed), both
of which are considered fatal for a process starting up.

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
package annotation

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'emojify.annotation'.
func tracer() tracing.Trace {
	return tracing.Select("emojify.annotation")
}
