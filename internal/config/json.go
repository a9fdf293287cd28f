package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [AgentConfig] with JSON tags and
// string-friendly durations, so operators can keep agent settings in a
// checked-in JSON file.
type StructuredJSONConfig struct {
	App struct {
		DeviceID     string `json:"device_id"`
		SessionToken string `json:"session_token"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		RetentionWindow Duration `json:"retention_window"`
	} `json:"storage,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Sync struct {
		MaxRetries    int      `json:"max_retries"`
		BaseBackoff   Duration `json:"base_backoff"`
		MaxBackoff    Duration `json:"max_backoff"`
		DrainInterval Duration `json:"drain_interval"`
		ProbeInterval Duration `json:"probe_interval"`
		PurgeSchedule string   `json:"purge_schedule"`
	} `json:"sync,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*AgentConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &AgentConfig{
		App: App{
			DeviceID:     jsonCfg.App.DeviceID,
			SessionToken: jsonCfg.App.SessionToken,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			RetentionWindow: time.Duration(jsonCfg.Storage.RetentionWindow),
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Sync: Sync{
			MaxRetries:    jsonCfg.Sync.MaxRetries,
			BaseBackoff:   time.Duration(jsonCfg.Sync.BaseBackoff),
			MaxBackoff:    time.Duration(jsonCfg.Sync.MaxBackoff),
			DrainInterval: time.Duration(jsonCfg.Sync.DrainInterval),
			ProbeInterval: time.Duration(jsonCfg.Sync.ProbeInterval),
			PurgeSchedule: jsonCfg.Sync.PurgeSchedule,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
