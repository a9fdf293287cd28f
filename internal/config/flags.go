package config

import (
	"flag"
	"time"
)

// ParseFlags parses all agent configuration flags.
//
// Flags:
//
//	-a local API address in format [host]:[port]
//	-d local database path (SQLite file)
//	-remote remote ERP endpoint base URL
//	-device-id workshop device identifier
//	-token session bearer token
//	-c/-config json file path with configs
//	-request-timeout remote call timeout (e.g., "30s", "1m")
//	-drain-interval periodic drain interval (e.g., "1m")
//	-probe-interval active connectivity probe interval (e.g., "30s")
//	-max-retries transient retry bound before dead-lettering
//	-retention synced record retention window (e.g., "168h")
func ParseFlags() *AgentConfig {
	var serverAddress string
	var databaseDSN string
	var remoteBaseURL string
	var deviceID string
	var sessionToken string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var drainInterval time.Duration
	var probeInterval time.Duration
	var maxRetries int
	var retentionWindow time.Duration

	flag.StringVar(&serverAddress, "a", "", "Local API address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&remoteBaseURL, "remote", "", "Remote ERP endpoint base URL")
	flag.StringVar(&deviceID, "device-id", "", "Workshop device identifier")
	flag.StringVar(&sessionToken, "token", "", "Session bearer token")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Remote call timeout (e.g., 30s, 1m)")
	flag.DurationVar(&drainInterval, "drain-interval", 0, "Periodic drain interval (e.g., 1m)")
	flag.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 30s)")
	flag.IntVar(&maxRetries, "max-retries", 0, "Transient retry bound")
	flag.DurationVar(&retentionWindow, "retention", 0, "Synced record retention window (e.g., 168h)")

	flag.Parse()

	return &AgentConfig{
		App: App{
			DeviceID:     deviceID,
			SessionToken: sessionToken,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			RetentionWindow: retentionWindow,
		},
		Adapter: Adapter{
			BaseURL:        remoteBaseURL,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			MaxRetries:    maxRetries,
			DrainInterval: drainInterval,
			ProbeInterval: probeInterval,
		},
		Server: Server{
			HTTPAddress: serverAddress,
		},
		JSONFilePath: jsonConfigPath,
	}
}
