package config

// validate checks that the final merged [AgentConfig] satisfies all agent
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *AgentConfig) validate() error {
	if cfg.App.DeviceID == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.MaxRetries <= 0 || cfg.Sync.BaseBackoff <= 0 || cfg.Sync.MaxBackoff < cfg.Sync.BaseBackoff {
		return ErrInvalidSyncConfigs
	}

	if cfg.Sync.DrainInterval <= 0 || cfg.Sync.ProbeInterval <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
