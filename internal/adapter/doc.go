// Package adapter provides the outbound HTTP client used by cmd/client
// to talk to a running API server.
package adapter
