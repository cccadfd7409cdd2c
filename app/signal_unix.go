//go:build !windows
// +build !windows

package app

import (
	"context"
	"syscall"
)

// notifyContext returns a context canceled on SIGINT or SIGTERM, e.g. to
// abort a download that keeps being retried.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return withSignals(parent, syscall.SIGINT, syscall.SIGTERM)
}
