package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/insula/internal/flagx"
	"github.com/dmitrijs2005/insula/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell
// an absent key from a zero value so the file only overrides what it names.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	DatabasePath   *string         `json:"database_path"`
	StorageKey     *string         `json:"storage_key"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	SealSession    *bool           `json:"seal_session"`
	KeyFile        *string         `json:"key_file"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.JsonConfigFlags(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.StorageKey != nil {
		cfg.StorageKey = *jc.StorageKey
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SealSession != nil {
		cfg.SealSession = *jc.SealSession
	}
	if jc.KeyFile != nil {
		cfg.KeyFile = *jc.KeyFile
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
