package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
)

type Config struct {
	ListenAddr     string
	MaxBytes       int64
	Workers        int
	Format         string
	RequestTimeout time.Duration
}

// LoadFromEnv reads KATANA_* variables. Unset or unparsable values fall
// back to the defaults.
func LoadFromEnv() Config {
	return Config{
		ListenAddr:     env("KATANA_LISTEN_ADDR", "127.0.0.1:3000"),
		MaxBytes:       envInt64("KATANA_MAX_BYTES", 8_000_000),
		Workers:        envInt("KATANA_WORKERS", 1),
		Format:         strings.ToLower(env("KATANA_FORMAT", "json")),
		RequestTimeout: envDuration("KATANA_REQUEST_TIMEOUT", 5*time.Second),
	}
}

func env(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := cast.ToIntE(Decimal(v))
	if err != nil {
		return def
	}
	return i
}

func envInt64(key string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := cast.ToInt64E(Decimal(v))
	if err != nil {
		return def
	}
	return i
}

func envDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := cast.ToDurationE(v)
	if err != nil {
		return def
	}
	return d
}

// Decimal strips leading zeros so cast reads "08" as eight rather than as
// a bad octal literal. 0x prefixed values are left alone.
func Decimal(s string) string {
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s
	}
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimLeft(strings.TrimPrefix(s, "-"), "0")
	if s == "" {
		return "0"
	}
	if neg {
		return "-" + s
	}
	return s
}
