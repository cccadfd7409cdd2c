//go:build windows
// +build windows

package app

import (
	"context"
	"os"
)

func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return withSignals(parent, os.Interrupt)
}
