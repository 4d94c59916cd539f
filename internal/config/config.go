package config

import (
	"os"
	"strings"
)

const (
	defaultDataDir           = "."
	defaultServerPort        = "0.0.0.0:3000"
	defaultClientOrigin      = "https://sacandaga.fly.dev"
	defaultDBFilePermissions = 0666

	productionSignal = "production"
)

// Mode selects between permissive development behavior and hardened
// production behavior. It is resolved once at startup and never changes
// for the lifetime of the process.
type Mode string

const (
	Development Mode = "development"
	Production  Mode = "production"
)

// LookupFunc reads a single environment value. os.Getenv satisfies it;
// tests supply their own so they never touch process state.
type LookupFunc func(key string) string

type Config struct {
	Mode              Mode
	AppEnv            string
	AllowedOrigins    []string
	DataDir           string
	ServerPort        string
	DBFilePermissions os.FileMode
}

// Load resolves configuration from the process environment.
func Load() *Config {
	return LoadWith(os.Getenv)
}

// LoadWith resolves configuration from the given lookup. Resolution is a
// pure computation over the values it returns: no I/O, no mutation.
func LoadWith(lookup LookupFunc) *Config {
	appEnv := lookup("APP_ENV")
	return &Config{
		Mode:              resolveMode(appEnv),
		AppEnv:            appEnv,
		AllowedOrigins:    splitOrigins(getOrDefault(lookup, "ALLOWED_ORIGINS", defaultClientOrigin)),
		DataDir:           getOrDefault(lookup, "DATA_DIR", defaultDataDir),
		ServerPort:        getOrDefault(lookup, "SERVER_PORT", defaultServerPort),
		DBFilePermissions: defaultDBFilePermissions,
	}
}

// resolveMode is the production gate. Only the exact value "production"
// hardens the process; any other value, including an empty one, falls back
// to development.
func resolveMode(signal string) Mode {
	if signal == productionSignal {
		return Production
	}
	return Development
}

// DebugEnabled reports whether verbose diagnostics may reach clients.
// True only in development mode.
func (c *Config) DebugEnabled() bool {
	return c.Mode == Development
}

// CORSPolicy is the single value the HTTP layer consumes to decide origin
// admission and error verbosity. It is immutable once built and safe to
// share across request handlers.
type CORSPolicy struct {
	AllowAnyOrigin bool
	AllowedOrigins []string
	DebugEnabled   bool
}

// CORSPolicy derives the request-admission policy for the resolved mode:
// any origin in development, the configured whitelist in production.
func (c *Config) CORSPolicy() CORSPolicy {
	return CORSPolicy{
		AllowAnyOrigin: c.Mode == Development,
		AllowedOrigins: c.AllowedOrigins,
		DebugEnabled:   c.DebugEnabled(),
	}
}

// AllowsOrigin reports whether a request from origin may receive a
// permissive CORS header. Whitelist matching is an exact, case-sensitive
// string comparison.
func (p CORSPolicy) AllowsOrigin(origin string) bool {
	if p.AllowAnyOrigin {
		return true
	}
	for _, allowed := range p.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

func (c *Config) DBPath() string {
	return c.DataDir + "/calendar_events.db"
}

func getOrDefault(lookup LookupFunc, key, defaultValue string) string {
	if value := lookup(key); value != "" {
		return value
	}
	return defaultValue
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
