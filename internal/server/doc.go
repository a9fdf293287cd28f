// Package server wires and runs the agent's local HTTP transport.
//
// It provides orchestration for the HTTP server lifecycle, including
// startup, signal handling, and graceful shutdown.
package server
