// Package bot holds the state shared by every command invocation.
package bot

import (
	"time"
)

// Data is the process-wide state handed to every command invocation.
//
// It is created once by the runner and never mutated afterwards, so handlers
// may read it concurrently without locking. Per-bot state (clients, caches)
// belongs here as fields; anything mutable must bring its own synchronization.
type Data struct {
	appName   string
	startedAt time.Time
}

// NewData creates the shared state for appName.
func NewData(appName string) *Data {
	return &Data{
		appName:   appName,
		startedAt: time.Now(),
	}
}

// AppName returns the application name the bot was started with.
func (d *Data) AppName() string {
	if d == nil {
		return ""
	}
	return d.appName
}

// Uptime returns how long the shared state has existed.
func (d *Data) Uptime() time.Duration {
	if d == nil {
		return 0
	}
	return time.Since(d.startedAt)
}
