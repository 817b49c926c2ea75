package config

import (
	"ataxx/searcher/agent"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug       = "debug"
	ConfigSeed        = "seed"
	ConfigGoroutines  = "goroutines"
	ConfigCache       = "cache"
	ConfigMetrics     = "metrics"
	ConfigHistoryFile = "history-file"
)

const envPrefix = "ATAXX"

// Config layers flags over environment (ATAXX_*) over an optional config file over defaults.
type Config struct {
	*viper.Viper
}

func New() *Config {
	v := viper.New()
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigSeed, 0)
	v.SetDefault(ConfigGoroutines, 1)
	v.SetDefault(ConfigCache, true)
	v.SetDefault(ConfigMetrics, false)
	v.SetDefault(ConfigHistoryFile, "/tmp/ataxx_history.tmp")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Config{Viper: v}
}

// Load reads a config file. An empty path is not an error.
func (c *Config) Load(path string) error {
	if path == "" {
		return nil
	}
	c.SetConfigFile(path)
	if err := c.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

func (c *Config) BindFlags(flags *pflag.FlagSet) error {
	return c.BindPFlags(flags)
}

// AdvisorOptions translates the search settings into advisor options.
func (c *Config) AdvisorOptions() []agent.Option {
	return []agent.Option{
		agent.WithSeed(c.GetUint64(ConfigSeed)),
		agent.WithGoroutines(c.GetInt(ConfigGoroutines)),
		agent.WithCache(c.GetBool(ConfigCache)),
		agent.WithMetrics(c.GetBool(ConfigMetrics)),
	}
}

// SanitizedSettings lists the effective settings for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
