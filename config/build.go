package config

import (
	"fmt"
	"os"

	"github.com/npillmayer/emojify"
	"github.com/npillmayer/emojify/annotation"
	"github.com/npillmayer/emojify/augment"
)

// BuildLexicon loads the dataset and the symbol overrides named by s and
// creates a lexicon from them.
func BuildLexicon(s Settings) (*emojify.Lexicon, error) {
	ds, err := annotation.Load(s.Dataset.Path, annotation.LoadOptions{Locale: s.Dataset.Locale})
	if err != nil {
		return nil, err
	}
	symbols := emojify.DefaultSymbols()
	if s.SymbolsFile != "" {
		f, err := os.Open(s.SymbolsFile)
		if err != nil {
			return nil, &annotation.LoadError{Source: s.SymbolsFile, Err: err}
		}
		defer f.Close()
		extra, err := emojify.LoadSymbols(f)
		if err != nil {
			return nil, fmt.Errorf("symbols file %s: %w", s.SymbolsFile, err)
		}
		symbols = symbols.Merge(extra)
	}
	opts := []emojify.Option{
		emojify.WithSymbols(symbols),
		emojify.WithMatchStrategy(s.Strategy),
		emojify.WithGraphemes(s.Graphemes),
		emojify.WithKeywords(s.Dataset.Keywords),
	}
	if s.Normalize != nil {
		opts = append(opts, emojify.WithNormalization(*s.Normalize))
	}
	return emojify.NewFromDataset(ds, opts...)
}

// WatchPaths returns the files BuildLexicon depends on.
func WatchPaths(s Settings) []string {
	paths := []string{s.Dataset.Path}
	if s.SymbolsFile != "" {
		paths = append(paths, s.SymbolsFile)
	}
	return paths
}

// BuildTranslator creates the LLM translator configured by s. It returns
// nil if augmentation is disabled.
func BuildTranslator(s Settings) augment.Translator {
	if !s.LLM.Enabled {
		return nil
	}
	if s.LLM.APIKey == "" {
		tracer().Infof("LLM augmentation enabled, but no API key is configured")
	}
	t := augment.Translator(augment.NewOpenAI(augment.OpenAIConfig{
		Endpoint: s.LLM.Endpoint,
		Model:    s.LLM.Model,
		APIKey:   s.LLM.APIKey,
	}))
	return augment.Cached(t, s.LLM.CacheTTL)
}
