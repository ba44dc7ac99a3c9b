// Package server owns the lifecycle of the application's network
// listeners: startup, serving, and signal-driven graceful shutdown.
package server
