package augment

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// Direction of a translation.
type Direction int

// Translation directions.
const (
	ToText  Direction = iota // emoji to natural-language text
	ToEmoji                  // natural-language text to emoji
)

func (d Direction) String() string {
	switch d {
	case ToText:
		return "text"
	case ToEmoji:
		return "emoji"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Translator is a pluggable translation service. Translate returns false if
// it cannot provide a translation, for whatever reason.
type Translator interface {
	Translate(ctx context.Context, dir Direction, input string) (string, bool)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(ctx context.Context, dir Direction, input string) (string, bool)

// Translate calls f.
func (f TranslatorFunc) Translate(ctx context.Context, dir Direction, input string) (string, bool) {
	return f(ctx, dir, input)
}

// Unavailable is a Translator which never translates.
type Unavailable struct{}

// Translate is part of interface Translator.
func (Unavailable) Translate(context.Context, Direction, string) (string, bool) {
	return "", false
}

// WithTimeout bounds every call to t by d. A call taking longer is
// abandoned and reported as declined. d <= 0 disables the bound.
func WithTimeout(t Translator, d time.Duration) Translator {
	if d <= 0 {
		return t
	}
	return TranslatorFunc(func(ctx context.Context, dir Direction, input string) (string, bool) {
		return bounded(ctx, t, d, dir, input)
	})
}

type answer struct {
	text string
	ok   bool
}

// bounded calls t in a goroutine of its own, so that even a translator
// ignoring its context cannot block the caller beyond d. Panics of t are
// reported as declined.
func bounded(ctx context.Context, t Translator, d time.Duration, dir Direction, input string) (string, bool) {
	if d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}
	ch := make(chan answer, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				tracer().Errorf("translator panicked: %v", r)
				ch <- answer{}
			}
		}()
		text, ok := t.Translate(ctx, dir, input)
		ch <- answer{text, ok}
	}()
	select {
	case a := <-ch:
		return a.text, a.ok
	case <-ctx.Done():
		tracer().Infof("translation to %s abandoned: %v", dir, ctx.Err())
		return "", false
	}
}

// --- Caching ---------------------------------------------------------------

type cached struct {
	next  Translator
	store *cache.Cache
}

// Cached memoizes successful translations of t for a duration of ttl.
// Declined translations are not remembered.
func Cached(t Translator, ttl time.Duration) Translator {
	if ttl <= 0 {
		return t
	}
	return &cached{
		next:  t,
		store: cache.New(ttl, 2*ttl),
	}
}

func (c *cached) Translate(ctx context.Context, dir Direction, input string) (string, bool) {
	key := dir.String() + ":" + input
	if v, found := c.store.Get(key); found {
		tracer().Debugf("cache hit for %q", input)
		return v.(string), true
	}
	text, ok := c.next.Translate(ctx, dir, input)
	if ok {
		c.store.Set(key, text, cache.DefaultExpiration)
	}
	return text, ok
}
