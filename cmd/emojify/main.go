/*
Command emojify translates between emoji and text, on the command line or
as an HTTP service.

	emojify text 🌅☕                  # => sunrise hot beverage
	echo "good morning" | emojify emoji
	emojify explain "good morning, coffee?"
	emojify serve --addr :8080 --watch

Configuration is read from emojify.yaml (see package config), from the
environment and from flags.
*/
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
