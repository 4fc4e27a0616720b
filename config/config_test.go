package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/npillmayer/emojify"
	"github.com/npillmayer/emojify/augment"
	"github.com/npillmayer/emojify/internal/fixture"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.config")
	defer teardown()
	//
	c := New()
	s, err := c.Settings()
	require.NoError(t, err)
	assert.Equal(t, "annotations.json", s.Dataset.Path)
	assert.Equal(t, emojify.BucketMatch, s.Strategy)
	assert.Nil(t, s.Normalize)
	assert.Equal(t, ":5000", s.Server.Addr)
	assert.Equal(t, []string{"*"}, s.Server.CORS)
	assert.False(t, s.LLM.Enabled)
	assert.Equal(t, augment.DefaultModel, s.LLM.Model)
	assert.Equal(t, 10*time.Second, s.LLM.Timeout)
	assert.Equal(t, 10*time.Minute, s.LLM.CacheTTL)
	assert.Equal(t, "go", c.GetString("tracing.adapter"))
	assert.Equal(t, 10, c.GetInt("log.maxsize"))
}

func TestReadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.config")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "emojify.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dataset:
  path: /data/cldr
  locale: de-AT
  keywords: true
match:
  strategy: trie
  normalize: NFC
expand:
  graphemes: true
server:
  addr: "127.0.0.1:8080"
  cors: ["https://example.com"]
llm:
  enabled: true
  timeout: 3s
tracelevel:
  emojify.lexicon: Debug
`), 0o644))
	c := New()
	require.NoError(t, c.ReadFile(path))
	s, err := c.Settings()
	require.NoError(t, err)
	assert.Equal(t, "/data/cldr", s.Dataset.Path)
	assert.Equal(t, "de-AT", s.Dataset.Locale)
	assert.True(t, s.Dataset.Keywords)
	assert.Equal(t, emojify.TrieMatch, s.Strategy)
	require.NotNil(t, s.Normalize)
	assert.Equal(t, norm.NFC, *s.Normalize)
	assert.True(t, s.Graphemes)
	assert.Equal(t, "127.0.0.1:8080", s.Server.Addr)
	assert.Equal(t, []string{"https://example.com"}, s.Server.CORS)
	assert.True(t, s.LLM.Enabled)
	assert.Equal(t, 3*time.Second, s.LLM.Timeout)
	assert.Equal(t, "Debug", c.GetString("tracelevel.emojify.lexicon"))
	assert.True(t, c.IsSet("dataset.keywords"))

	assert.Error(t, New().ReadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestEnvironment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.config")
	defer teardown()
	//
	t.Setenv("EMOJIFY_SERVER_ADDR", ":9999")
	t.Setenv("EMOJIFY_LLM_APIKEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-env")
	c := New()
	s, err := c.Settings()
	require.NoError(t, err)
	assert.Equal(t, ":9999", s.Server.Addr)
	assert.Equal(t, "sk-env", s.LLM.APIKey)
}

func TestInvalidSettings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.config")
	defer teardown()
	//
	c := New()
	c.Set("match.strategy", "regex")
	_, err := c.Settings()
	assert.Error(t, err)

	c = New()
	c.Set("match.normalize", "nfd")
	_, err = c.Settings()
	assert.Error(t, err)

	for _, timeout := range []string{"0s", "-5s"} {
		c = New()
		c.Set("llm.timeout", timeout)
		_, err = c.Settings()
		assert.Error(t, err, "llm.timeout %s", timeout)
	}
}

func TestParseNormalization(t *testing.T) {
	for name, want := range map[string]*norm.Form{"": nil, "none": nil} {
		f, err := ParseNormalization(name)
		require.NoError(t, err)
		assert.Equal(t, want, f)
	}
	f, err := ParseNormalization(" NFKC ")
	require.NoError(t, err)
	assert.Equal(t, norm.NFKC, *f)
}

func fixtureSettings(t *testing.T) Settings {
	c := New()
	c.Set("dataset.path", fixture.Path("annotations.json"))
	s, err := c.Settings()
	require.NoError(t, err)
	return s
}

func TestBuildLexicon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.config")
	defer teardown()
	//
	s := fixtureSettings(t)
	lex, err := BuildLexicon(s)
	require.NoError(t, err)
	assert.Equal(t, "🍕", lex.ToEmoji("pizza"))
	assert.Equal(t, "en", lex.Locale())
	assert.Equal(t, "!", lex.ToText("❗"))

	s.SymbolsFile = fixture.Path("symbols.txt")
	s.Strategy = emojify.TrieMatch
	lex, err = BuildLexicon(s)
	require.NoError(t, err)
	assert.Equal(t, "<3", lex.ToText("❤"))
	assert.Equal(t, emojify.TrieMatch, lex.Stats().Strategy)
	assert.Equal(t, []string{s.Dataset.Path, s.SymbolsFile}, WatchPaths(s))

	s.SymbolsFile = filepath.Join(t.TempDir(), "missing.txt")
	_, err = BuildLexicon(s)
	assert.Error(t, err)
}

func TestBuildLexiconForLocale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.config")
	defer teardown()
	//
	s := fixtureSettings(t)
	s.Dataset.Path = fixture.Path("locales")
	s.Dataset.Locale = "de-AT"
	lex, err := BuildLexicon(s)
	require.NoError(t, err)
	assert.Equal(t, "Sonnenaufgang", lex.ToText("🌅"))
	assert.Equal(t, "de", lex.Locale())
}

func TestBuildTranslator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.config")
	defer teardown()
	//
	s := fixtureSettings(t)
	assert.Nil(t, BuildTranslator(s))
	s.LLM.Enabled = true
	assert.NotNil(t, BuildTranslator(s))
}

func TestSetupTracingToFile(t *testing.T) {
	defer trace2go.Teardown()
	//
	logfile := filepath.Join(t.TempDir(), "emojify.log")
	c := New()
	c.Set("log.file", logfile)
	c.Set("tracelevel.emojify.test", "Info")
	closer, err := SetupTracing(c)
	require.NoError(t, err)
	tracing.Select("emojify.test").Infof("hello from the test")
	tracing.Select("emojify.test").Debugf("not to be seen")
	require.NoError(t, closer.Close())
	data, err := os.ReadFile(logfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from the test")
	assert.NotContains(t, string(data), "not to be seen")
}
