package adapter

import (
	"context"

	"github.com/universal-workshop/syncagent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter is the transport to the ERP backend's RPC surface. The sync
// core treats the endpoint as an opaque collaborator: it replays captured
// payloads and never interprets their business semantics.
type RemoteAdapter interface {
	// Call replays a single domain operation against the remote endpoint.
	// Failures are wrapped in ErrTransient, ErrPermanent, ErrUnauthorized,
	// or ErrSessionExpired so the caller can classify without knowing HTTP.
	Call(ctx context.Context, req models.RPCRequest) (models.RPCResponse, error)

	// Ping performs the lightweight reachability round-trip used by the
	// connectivity monitor's active probe.
	Ping(ctx context.Context) error

	// SetToken stores the bearer token for subsequent authenticated calls.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter.
	Token() string
}
