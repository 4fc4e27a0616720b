package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/emojify/augment"
	"github.com/npillmayer/schuko"
	"github.com/spf13/viper"
)

// Name is the base name of configuration files and the environment prefix.
const Name = "emojify"

// Conf is a configuration backed by viper. Other than schuko's viper
// adapter it does not use viper's global instance.
type Conf struct {
	v *viper.Viper
}

var _ schuko.Configuration = &Conf{}

// New creates a configuration holding the defaults and bound to the
// environment.
func New() *Conf {
	c := &Conf{v: viper.New()}
	c.v.SetEnvPrefix(strings.ToUpper(Name))
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.v.AutomaticEnv()
	_ = c.v.BindEnv("llm.apikey", "EMOJIFY_LLM_APIKEY", "OPENAI_API_KEY")
	c.InitDefaults()
	return c
}

// InitDefaults is part of interface schuko.Configuration.
func (c *Conf) InitDefaults() {
	c.v.SetDefault("dataset.path", "annotations.json")
	c.v.SetDefault("dataset.locale", "")
	c.v.SetDefault("dataset.keywords", false)
	c.v.SetDefault("dataset.watch", false)
	c.v.SetDefault("symbols.file", "")
	c.v.SetDefault("match.strategy", "bucket")
	c.v.SetDefault("match.normalize", "none")
	c.v.SetDefault("expand.graphemes", false)
	c.v.SetDefault("server.addr", ":5000")
	c.v.SetDefault("server.cors", []string{"*"})
	c.v.SetDefault("llm.enabled", false)
	c.v.SetDefault("llm.endpoint", augment.DefaultEndpoint)
	c.v.SetDefault("llm.model", augment.DefaultModel)
	c.v.SetDefault("llm.timeout", "10s")
	c.v.SetDefault("llm.cachettl", "10m")
	c.v.SetDefault("tracing.adapter", "go")
	c.v.SetDefault("tracelevel.root", "Error")
	c.v.SetDefault("log.maxsize", 10)
	c.v.SetDefault("log.maxbackups", 3)
}

// ReadFile reads a configuration file. If path is empty, emojify.yaml is
// searched for in the working directory and in $HOME/.config/emojify; not
// finding one is not an error.
func (c *Conf) ReadFile(path string) error {
	if path != "" {
		c.v.SetConfigFile(path)
	} else {
		c.v.SetConfigName(Name)
		c.v.SetConfigType("yaml")
		c.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			c.v.AddConfigPath(filepath.Join(home, ".config", Name))
		}
	}
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			tracer().Debugf("no configuration file found")
			return nil
		}
		return fmt.Errorf("reading configuration: %w", err)
	}
	tracer().Infof("configuration read from %s", c.v.ConfigFileUsed())
	return nil
}

// Viper returns the underlying viper instance, e.g., for binding flags.
func (c *Conf) Viper() *viper.Viper {
	return c.v
}

// Set overrides a configuration value.
func (c *Conf) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// IsSet is part of interface schuko.Configuration.
func (c *Conf) IsSet(key string) bool {
	return c.v.IsSet(key)
}

// GetString is part of interface schuko.Configuration.
func (c *Conf) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt is part of interface schuko.Configuration.
func (c *Conf) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetBool is part of interface schuko.Configuration.
func (c *Conf) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// IsInteractive is part of interface schuko.Configuration.
func (c *Conf) IsInteractive() bool {
	return c.v.GetBool("tracing.interactive")
}
