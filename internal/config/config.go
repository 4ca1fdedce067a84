// Package config loads service configuration from an optional YAML file
// with sensible defaults. Secrets (cron secret, Redis password) can be
// supplied or overridden through environment variables so they stay out of
// config files.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like "30s"
// or "24h" (plain integers are taken as nanoseconds).
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		dur, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(dur)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return err
	}
	*d = Duration(n)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type Server struct {
	ListenAddress string   `yaml:"listen_address"`
	ReadTimeout   Duration `yaml:"read_timeout"`
	WriteTimeout  Duration `yaml:"write_timeout"`
	IdleTimeout   Duration `yaml:"idle_timeout"`
}

type Scrape struct {
	BaseURL  string   `yaml:"base_url"`
	Timeout  Duration `yaml:"timeout"`
	MaxPages int      `yaml:"max_pages"`
}

type Cache struct {
	RedisAddr     string   `yaml:"redis_addr"` // empty selects the in-memory store
	RedisPassword string   `yaml:"redis_password"`
	RedisDB       int      `yaml:"redis_db"`
	Key           string   `yaml:"key"`
	TTL           Duration `yaml:"ttl"`
}

type Refresh struct {
	Secret   string   `yaml:"secret"`
	Interval Duration `yaml:"interval"` // 0 disables the in-process ticker
	Notify   bool     `yaml:"notify"`
	DryRun   bool     `yaml:"dry_run"`
}

type Config struct {
	Server  Server  `yaml:"server"`
	Scrape  Scrape  `yaml:"scrape"`
	Cache   Cache   `yaml:"cache"`
	Refresh Refresh `yaml:"refresh"`
}

// Load reads configuration from path (optional; empty path means defaults
// only), applies defaults and then environment overrides.
func Load(path string) (*Config, error) {
	var c Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	}

	// Defaults
	if c.Server.ListenAddress == "" {
		c.Server.ListenAddress = ":8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = Duration(10 * time.Second)
	}
	if c.Server.WriteTimeout == 0 {
		// The cron endpoint runs a full scrape inline.
		c.Server.WriteTimeout = Duration(2 * time.Minute)
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = Duration(60 * time.Second)
	}
	if c.Scrape.Timeout == 0 {
		c.Scrape.Timeout = Duration(30 * time.Second)
	}
	if c.Scrape.MaxPages == 0 {
		c.Scrape.MaxPages = 10
	}
	if c.Cache.Key == "" {
		c.Cache.Key = "pavilion-events"
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = Duration(24 * time.Hour)
	}

	// Environment overrides for secrets and deployment wiring.
	if v := os.Getenv("CRON_SECRET"); v != "" {
		c.Refresh.Secret = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.RedisPassword = v
	}

	return &c, nil
}
