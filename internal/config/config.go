package config

import (
	"time"
)

// AgentConfig is the top-level configuration container for the workshop sync
// agent. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file, and built-in defaults (in that priority order).
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type AgentConfig struct {
	// App holds agent identity and session settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local durable store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote ERP endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds queue processor and connectivity monitor tuning.
	Sync Sync `envPrefix:"SYNC_"`

	// Server holds the local HTTP API settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds agent identity and session settings.
type App struct {
	// DeviceID identifies this workshop device in every captured Record.
	// Must be unique per installation.
	// Env: APP_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`

	// SessionToken is the bearer token presented to the remote ERP endpoint.
	// Its expiry claim is checked locally before every drain pass.
	// Env: APP_SESSION_TOKEN
	SessionToken string `env:"SESSION_TOKEN"`
}

// Storage holds configuration of the local durable store.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`

	// RetentionWindow is how long synced records are kept before the purge
	// job deletes them (e.g. "168h" for a week).
	// Env: STORAGE_RETENTION_WINDOW
	RetentionWindow time.Duration `env:"RETENTION_WINDOW"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path used to open the local database
	// (e.g. "/var/lib/workshop/sync.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings for the remote ERP RPC endpoint.
type Adapter struct {
	// BaseURL is the remote endpoint base address
	// (e.g. "https://erp.example.om").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every single remote call, probe included.
	// A timed-out call is classified as a transient failure.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds tuning knobs for the queue processor, the connectivity monitor,
// and the retention purge job.
type Sync struct {
	// MaxRetries is the transient-failure retry bound per record. Exceeding
	// it moves the record to the dead-letter state.
	// Env: SYNC_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// BaseBackoff is the base delay of the exponential backoff
	// (delay = BaseBackoff * 2^retry_count, jittered).
	// Env: SYNC_BASE_BACKOFF
	BaseBackoff time.Duration `env:"BASE_BACKOFF"`

	// MaxBackoff caps the backoff delay.
	// Env: SYNC_MAX_BACKOFF
	MaxBackoff time.Duration `env:"MAX_BACKOFF"`

	// DrainInterval is how often the processor attempts a drain pass while
	// online, independent of connectivity-transition triggers.
	// Env: SYNC_DRAIN_INTERVAL
	DrainInterval time.Duration `env:"DRAIN_INTERVAL"`

	// ProbeInterval is how often the connectivity monitor actively probes
	// the remote endpoint.
	// Env: SYNC_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// PurgeSchedule is the cron expression of the retention purge job
	// (e.g. "0 3 * * *" for 03:00 daily).
	// Env: SYNC_PURGE_SCHEDULE
	PurgeSchedule string `env:"PURGE_SCHEDULE"`
}

// Server holds network settings of the local HTTP API that UI clients call.
type Server struct {
	// HTTPAddress is the TCP address the local API listens on,
	// in "host:port" format (e.g. "127.0.0.1:7345").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetAgentConfig loads, merges, and validates the agent configuration from
// all available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *AgentConfig or an error if any source fails to
// load or the final config fails validation.
func GetAgentConfig() (*AgentConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
