/*
Package config reads the configuration of emojify and sets up tracing.

Configuration is read from a YAML file, from environment variables with
prefix EMOJIFY_ (e.g., EMOJIFY_SERVER_ADDR for key server.addr) and from
command-line flags bound by the caller. The OpenAI API key may also be given
as OPENAI_API_KEY.

	dataset:
	  path: ./annotations        # file, or directory with one file per locale
	  locale: de-AT              # default: taken from the environment
	  keywords: false            # register CLDR keywords as phrases
	  watch: true                # reload on file changes
	symbols:
	  file: ./symbols.txt        # extra symbol overrides
	match:
	  strategy: bucket           # bucket | trie
	  normalize: none            # none | nfc | nfkc
	expand:
	  graphemes: false
	server:
	  addr: ":5000"
	  cors: ["*"]
	llm:
	  enabled: false
	  model: gpt-4o-mini
	  timeout: 10s
	  cachettl: 10m
	tracing:
	  adapter: go                # go | logrus
	tracelevel:
	  root: Error
	  emojify.lexicon: Debug
	log:
	  file: /var/log/emojify.log # default: stderr
	  maxsize: 10                # megabytes
	  maxbackups: 3

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
package config

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'emojify.config'.
func tracer() tracing.Trace {
	return tracing.Select("emojify.config")
}
