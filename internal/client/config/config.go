package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/insula/internal/common"
)

// Config holds runtime settings for the insulA CLI.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	StorageKey     string
	RequestTimeout time.Duration
	// SealSession encrypts the persisted session with a key kept in KeyFile.
	SealSession bool
	KeyFile     string
	LogLevel    string
}

// LoadDefaults populates c with defaults suitable for a local dev server.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:3000/api"
	c.DatabasePath = "insula.db"
	c.StorageKey = common.DefaultSessionKey
	c.RequestTimeout = 10 * time.Second
	c.SealSession = false
	c.KeyFile = "insula.key"
	c.LogLevel = "warn"
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and finally args (usually os.Args[1:]). Later sources win.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
