package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/npillmayer/emojify"
	"golang.org/x/text/unicode/norm"
)

// Settings are the typed settings of a configuration.
type Settings struct {
	Dataset struct {
		Path     string
		Locale   string
		Keywords bool
		Watch    bool
	}
	SymbolsFile string
	Strategy    emojify.MatchStrategy
	Normalize   *norm.Form // nil for no normalization
	Graphemes   bool
	Server      struct {
		Addr string
		CORS []string
	}
	LLM struct {
		Enabled  bool
		Endpoint string
		Model    string
		APIKey   string
		Timeout  time.Duration
		CacheTTL time.Duration
	}
}

// Settings extracts the typed settings. Invalid values of enumerations
// are an error.
func (c *Conf) Settings() (Settings, error) {
	var s Settings
	s.Dataset.Path = c.v.GetString("dataset.path")
	s.Dataset.Locale = c.v.GetString("dataset.locale")
	s.Dataset.Keywords = c.v.GetBool("dataset.keywords")
	s.Dataset.Watch = c.v.GetBool("dataset.watch")
	s.SymbolsFile = c.v.GetString("symbols.file")
	var err error
	if s.Strategy, err = emojify.ParseMatchStrategy(c.v.GetString("match.strategy")); err != nil {
		return s, fmt.Errorf("match.strategy: %w", err)
	}
	if s.Normalize, err = ParseNormalization(c.v.GetString("match.normalize")); err != nil {
		return s, fmt.Errorf("match.normalize: %w", err)
	}
	s.Graphemes = c.v.GetBool("expand.graphemes")
	s.Server.Addr = c.v.GetString("server.addr")
	s.Server.CORS = c.v.GetStringSlice("server.cors")
	s.LLM.Enabled = c.v.GetBool("llm.enabled")
	s.LLM.Endpoint = c.v.GetString("llm.endpoint")
	s.LLM.Model = c.v.GetString("llm.model")
	s.LLM.APIKey = c.v.GetString("llm.apikey")
	s.LLM.Timeout = c.v.GetDuration("llm.timeout")
	if s.LLM.Timeout <= 0 {
		return s, fmt.Errorf("llm.timeout: must be positive, is %q", c.v.GetString("llm.timeout"))
	}
	s.LLM.CacheTTL = c.v.GetDuration("llm.cachettl")
	return s, nil
}

// ParseNormalization returns the Unicode normalization form for a name,
// one of "none", "nfc" or "nfkc". "none" and "" result in nil.
func ParseNormalization(name string) (*norm.Form, error) {
	var f norm.Form
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return nil, nil
	case "nfc":
		f = norm.NFC
	case "nfkc":
		f = norm.NFKC
	default:
		return nil, fmt.Errorf("unknown normalization form %q", name)
	}
	return &f, nil
}
