package augment

import (
	"context"
	"time"
)

// Engine is the dictionary-based translation, usually an *emojify.Lexicon.
type Engine interface {
	ToText(string) string
	ToEmoji(string) string
}

// Source tells which party produced a translation.
type Source int

// Translation sources.
const (
	SourceEngine  Source = iota // the dictionary-based engine
	SourceAugment               // the Translator
)

func (s Source) String() string {
	if s == SourceAugment {
		return "augment"
	}
	return "engine"
}

// Service combines a Translator with an Engine as its fallback.
type Service struct {
	engine     Engine
	translator Translator
	timeout    time.Duration
}

// DefaultTimeout bounds calls to the translator if no timeout is given.
const DefaultTimeout = 10 * time.Second

// NewService creates a service. A nil translator is replaced by Unavailable.
// Calls to the translator are bounded by timeout, or by DefaultTimeout if
// timeout is not positive.
func NewService(engine Engine, translator Translator, timeout time.Duration) *Service {
	if translator == nil {
		translator = Unavailable{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		engine:     engine,
		translator: translator,
		timeout:    timeout,
	}
}

// ToText translates emoji to text.
func (s *Service) ToText(ctx context.Context, text string) (string, Source) {
	return s.translate(ctx, ToText, text, s.engine.ToText)
}

// ToEmoji translates text to emoji.
func (s *Service) ToEmoji(ctx context.Context, phrase string) (string, Source) {
	return s.translate(ctx, ToEmoji, phrase, s.engine.ToEmoji)
}

func (s *Service) translate(ctx context.Context, dir Direction, input string, fallback func(string) string) (string, Source) {
	if input == "" {
		return "", SourceEngine
	}
	if _, none := s.translator.(Unavailable); !none {
		if out, ok := bounded(ctx, s.translator, s.timeout, dir, input); ok {
			return out, SourceAugment
		}
		tracer().Debugf("translation to %s falls back to engine", dir)
	}
	return fallback(input), SourceEngine
}
