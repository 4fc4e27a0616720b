/*
Package augment provides optional machine translation to complement the
dictionary-based translation of package emojify.

A Translator may answer a translation request or decline it. Service puts a
Translator in front of a translation engine: requests are offered to the
Translator first, bounded by a timeout, and answered by the engine if the
Translator declines, fails or takes too long. Failures never reach the
client.

	svc := augment.NewService(lexicon, augment.NewOpenAI(augment.OpenAIConfig{APIKey: key}), 5*time.Second)
	text, source := svc.ToText(ctx, "🌅☕")

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package augment

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'emojify.augment'.
func tracer() tracing.Trace {
	return tracing.Select("emojify.augment")
}
