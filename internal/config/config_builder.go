package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*AgentConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*AgentConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*AgentConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	// mergo fills only zero fields, so earlier layers keep priority.
	config := new(AgentConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &AgentConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults appends the built-in defaults as the lowest-priority layer.
// Only fields left zero by every other source pick these up.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func defaultConfig() *AgentConfig {
	return &AgentConfig{
		Adapter: Adapter{
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			RetentionWindow: 7 * 24 * time.Hour,
		},
		Sync: Sync{
			MaxRetries:    5,
			BaseBackoff:   2 * time.Second,
			MaxBackoff:    5 * time.Minute,
			DrainInterval: time.Minute,
			ProbeInterval: 30 * time.Second,
			PurgeSchedule: "0 3 * * *",
		},
		Server: Server{
			HTTPAddress:    "127.0.0.1:7345",
			RequestTimeout: 30 * time.Second,
		},
	}
}
