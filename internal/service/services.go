package service

import (
	"github.com/universal-workshop/syncagent/internal/adapter"
	"github.com/universal-workshop/syncagent/internal/config"
	"github.com/universal-workshop/syncagent/internal/logger"
	"github.com/universal-workshop/syncagent/internal/store"
)

type Services struct {
	Processor QueueProcessor
	Records   RecordManager
	DrainJob  DrainJob
	PurgeJob  PurgeJob
}

func NewServices(storages *store.Storages, remote adapter.RemoteAdapter, gate ConnectivityGate, cfg *config.AgentConfig, log *logger.Logger) *Services {
	processor := NewQueueProcessor(storages.Records, remote, gate, cfg.Sync, log.GetChildLogger())

	return &Services{
		Processor: processor,
		Records:   NewRecordManager(storages.Records, processor, gate, cfg.App, log.GetChildLogger()),
		DrainJob:  NewDrainJob(processor, log.GetChildLogger()),
		PurgeJob:  NewPurgeJob(storages.Records, cfg.Sync, cfg.Storage, log.GetChildLogger()),
	}
}
