package reload

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/npillmayer/emojify"
)

// BuildFunc builds a lexicon from scratch, usually from files.
type BuildFunc func() (*emojify.Lexicon, error)

// DefaultDebounce is the quiet period Watch waits for after a file event
// before it reloads.
const DefaultDebounce = 250 * time.Millisecond

// Holder holds the lexicon currently in use.
type Holder struct {
	build    BuildFunc
	current  atomic.Pointer[emojify.Lexicon]
	mu       sync.Mutex // serializes reloads
	reloads  atomic.Uint64
	debounce time.Duration
	onReload func(*emojify.Lexicon, error)
}

// Option configures a Holder.
type Option func(*Holder)

// WithDebounce sets the quiet period for Watch.
func WithDebounce(d time.Duration) Option {
	return func(h *Holder) {
		h.debounce = d
	}
}

// OnReload registers a function to be called after every reload attempt,
// with either the new lexicon or the error of the failed build.
func OnReload(f func(*emojify.Lexicon, error)) Option {
	return func(h *Holder) {
		h.onReload = f
	}
}

// NewHolder calls build once and returns a holder for the result. An error
// of the initial build is returned to the caller.
func NewHolder(build BuildFunc, opts ...Option) (*Holder, error) {
	if build == nil {
		return nil, errors.New("reload: build function is nil")
	}
	h := &Holder{build: build, debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(h)
	}
	lex, err := build()
	if err != nil {
		return nil, fmt.Errorf("initial lexicon: %w", err)
	}
	if lex == nil {
		return nil, errors.New("initial lexicon: build returned nil")
	}
	h.current.Store(lex)
	return h, nil
}

// Lexicon returns the lexicon currently in use.
func (h *Holder) Lexicon() *emojify.Lexicon {
	return h.current.Load()
}

// ToText translates with the current lexicon.
func (h *Holder) ToText(text string) string {
	return h.Lexicon().ToText(text)
}

// ToEmoji translates with the current lexicon.
func (h *Holder) ToEmoji(phrase string) string {
	return h.Lexicon().ToEmoji(phrase)
}

// Reloads returns the number of successful reloads so far.
func (h *Holder) Reloads() uint64 {
	return h.reloads.Load()
}

// Reload builds a new lexicon and puts it in place. If the build fails, the
// current lexicon is kept and the error is returned.
func (h *Holder) Reload() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	lex, err := h.build()
	if err == nil && lex == nil {
		err = errors.New("build returned nil")
	}
	if err != nil {
		tracer().Errorf("reload failed, keeping current lexicon: %v", err)
	} else {
		h.current.Store(lex)
		h.reloads.Add(1)
		tracer().Infof("lexicon reloaded: %d emojis, %d phrases",
			lex.Stats().Emojis, lex.Stats().Phrases)
	}
	if h.onReload != nil {
		h.onReload(lex, err)
	}
	return err
}
