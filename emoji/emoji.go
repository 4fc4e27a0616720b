/*
Package emoji provides helpers for the code points which modify emoji
sequences (UTS #51), i.e. variation selectors and the zero width joiner.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package emoji

import (
	"strings"
	"unicode/utf8"
)

// Code points which do not stand for a character of their own.
const (
	VS16 = '\uFE0F' // emoji presentation selector
	ZWJ  = '\u200D' // zero width joiner
)

// StripVS16 removes all emoji presentation selectors from s.
// If s does not contain any, s is returned unchanged.
func StripVS16(s string) string {
	if !strings.ContainsRune(s, VS16) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == VS16 {
			return -1
		}
		return r
	}, s)
}

// IsSequence is true if s consists of more than one code point.
func IsSequence(s string) bool {
	return utf8.RuneCountInString(s) > 1
}

// Components splits a ZWJ sequence into its parts, dropping the joiners.
// "👩‍💻" results in ["👩", "💻"].
func Components(s string) []string {
	parts := strings.Split(s, string(ZWJ))
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
