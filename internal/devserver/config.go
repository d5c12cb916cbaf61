package devserver

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/insula/internal/common"
)

// Config of the dev server, read from the environment.
type Config struct {
	Port      string
	JWTSecret []byte
	TokenTTL  time.Duration
	AuthRPS   float64
	AuthBurst int
	LogLevel  string
}

func (c *Config) LoadDefaults() {
	c.Port = "3000"
	c.TokenTTL = 24 * time.Hour
	c.AuthRPS = 5
	c.AuthBurst = 10
	c.LogLevel = "info"
}

// LoadConfig reads PORT, JWT_SECRET, TOKEN_TTL, AUTH_RPS, AUTH_BURST and
// LOG_LEVEL through lookup. Without JWT_SECRET a random per-process secret
// is generated, so tokens don't survive a restart.
func LoadConfig(lookup func(string) (string, bool)) (*Config, error) {
	c := &Config{}
	c.LoadDefaults()

	get := func(k string) string {
		v, _ := lookup(k)
		return v
	}

	if v := get("PORT"); v != "" {
		c.Port = v
	}
	if v := get("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := get("JWT_SECRET"); v != "" {
		c.JWTSecret = []byte(v)
	} else {
		secret, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("generate jwt secret: %w", err)
		}
		c.JWTSecret = []byte(secret)
	}
	if v := get("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("TOKEN_TTL: invalid duration %q", v)
		}
		c.TokenTTL = d
	}
	if v := get("AUTH_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return nil, fmt.Errorf("AUTH_RPS: invalid rate %q", v)
		}
		c.AuthRPS = f
	}
	if v := get("AUTH_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("AUTH_BURST: invalid burst %q", v)
		}
		c.AuthBurst = n
	}
	return c, nil
}
