package models

import "time"

// QueueStats is a point-in-time summary of the sync queue, used by UI
// clients to render "N items pending / M items failed".
type QueueStats struct {
	Pending    int `json:"pending"`
	InFlight   int `json:"in_flight"`
	Failed     int `json:"failed"`
	Synced     int `json:"synced"`
	DeadLetter int `json:"dead_letter"`
}

// Total returns the number of records in every state combined.
func (s QueueStats) Total() int {
	return s.Pending + s.InFlight + s.Failed + s.Synced + s.DeadLetter
}

// DrainResult summarises a single drain pass over the sync queue.
type DrainResult struct {
	Attempted    int `json:"attempted"`
	Synced       int `json:"synced"`
	Failed       int `json:"failed"`
	DeadLettered int `json:"dead_lettered"`
}

// ConnectivityState is the process-wide connectivity snapshot maintained by
// the connectivity monitor. Only the monitor writes it; everyone else reads.
type ConnectivityState struct {
	Online      bool      `json:"online"`
	LastChecked time.Time `json:"last_checked"`
}
