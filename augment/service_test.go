package augment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upper struct{}

func (upper) ToText(s string) string  { return strings.ToUpper(s) }
func (upper) ToEmoji(s string) string { return "<" + s + ">" }

func TestServiceWithoutTranslator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.augment")
	defer teardown()
	//
	svc := NewService(upper{}, nil, time.Second)
	text, src := svc.ToText(context.Background(), "abc")
	assert.Equal(t, "ABC", text)
	assert.Equal(t, SourceEngine, src)
	text, src = svc.ToEmoji(context.Background(), "abc")
	assert.Equal(t, "<abc>", text)
	assert.Equal(t, SourceEngine, src)
}

func TestServicePrefersTranslator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.augment")
	defer teardown()
	//
	svc := NewService(upper{}, echo("llm "), time.Second)
	text, src := svc.ToEmoji(context.Background(), "pizza")
	assert.Equal(t, "llm emoji:pizza", text)
	assert.Equal(t, SourceAugment, src)
	assert.Equal(t, "augment", src.String())
}

func TestServiceFallsBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.augment")
	defer teardown()
	//
	declining := TranslatorFunc(func(context.Context, Direction, string) (string, bool) {
		return "", false
	})
	svc := NewService(upper{}, declining, time.Second)
	text, src := svc.ToText(context.Background(), "abc")
	assert.Equal(t, "ABC", text)
	assert.Equal(t, SourceEngine, src)

	hanging := TranslatorFunc(func(ctx context.Context, _ Direction, _ string) (string, bool) {
		<-ctx.Done()
		return "", false
	})
	svc = NewService(upper{}, hanging, 20*time.Millisecond)
	text, src = svc.ToEmoji(context.Background(), "abc")
	assert.Equal(t, "<abc>", text)
	assert.Equal(t, SourceEngine, src)
}

func TestServiceEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.augment")
	defer teardown()
	//
	called := false
	spy := TranslatorFunc(func(context.Context, Direction, string) (string, bool) {
		called = true
		return "x", true
	})
	svc := NewService(upper{}, spy, time.Second)
	text, src := svc.ToEmoji(context.Background(), "")
	assert.Empty(t, text)
	assert.Equal(t, SourceEngine, src)
	assert.False(t, called)
}

func TestServiceCancelledContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.augment")
	defer teardown()
	//
	hanging := TranslatorFunc(func(ctx context.Context, _ Direction, _ string) (string, bool) {
		<-ctx.Done()
		return "", false
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := NewService(upper{}, hanging, time.Minute)
	text, src := svc.ToText(ctx, "abc")
	assert.Equal(t, "ABC", text)
	assert.Equal(t, SourceEngine, src)
}

func TestServiceAlwaysBoundsTranslator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.augment")
	defer teardown()
	//
	for _, d := range []time.Duration{0, -time.Second} {
		svc := NewService(upper{}, echo(""), d)
		assert.Equal(t, DefaultTimeout, svc.timeout, "timeout %v", d)
	}
	svc := NewService(upper{}, echo(""), time.Second)
	assert.Equal(t, time.Second, svc.timeout)

	var deadline time.Time
	spy := TranslatorFunc(func(ctx context.Context, _ Direction, _ string) (string, bool) {
		deadline, _ = ctx.Deadline()
		return "x", true
	})
	start := time.Now()
	_, src := NewService(upper{}, spy, 0).ToText(context.Background(), "abc")
	assert.Equal(t, SourceAugment, src)
	require.False(t, deadline.IsZero(), "translator must see a deadline")
	assert.WithinDuration(t, start.Add(DefaultTimeout), deadline, time.Second)
}
