// Package timeouts defines shared durations used by portfolio services.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// CatalogDebounce groups bursts of catalog file events into one reload.
const CatalogDebounce = 250 * time.Millisecond
