// Package testkit starts the Postgres and Redis instances the integration tests run against.
package testkit

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds environment-driven settings for the integration test infrastructure.
type Config struct {
	PGImage        string
	RedisImage     string
	PGDSN          string        // If set, no Postgres container is started.
	RedisAddr      string        // If set, no Redis container is started.
	StartupTimeout time.Duration // Max time to wait for the containers to become ready.
	KeepContainers bool          // If true, containers outlive the test run.
}

// LoadConfig reads the DASHBOARD_TEST_* environment variables.
func LoadConfig() Config {
	return Config{
		PGImage:        envOrDefault("DASHBOARD_TEST_PG_IMAGE", "postgres:18.1-alpine"),
		RedisImage:     envOrDefault("DASHBOARD_TEST_REDIS_IMAGE", "redis:8.4.0-alpine"),
		PGDSN:          os.Getenv("DASHBOARD_TEST_PG_DSN"),
		RedisAddr:      os.Getenv("DASHBOARD_TEST_REDIS_ADDR"),
		StartupTimeout: envDuration("DASHBOARD_TEST_STARTUP_TIMEOUT", 90*time.Second),
		KeepContainers: envBool("DASHBOARD_TEST_KEEP_CONTAINERS"),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envDuration accepts a Go duration or a plain number of seconds.
func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	fmt.Fprintf(os.Stderr, "testkit: ignoring %s=%q, using %v\n", key, v, def)
	return def
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}
