// Package server manages the lifecycle of the inbound transport servers:
// construction, startup, and signal-driven graceful shutdown.
package server
