package util

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WaitForInterruptContext blocks until SIGINT or SIGTERM is received or parent
// is done, then runs callback when non-nil. It reports whether a signal (rather
// than parent cancellation) ended the wait.
func WaitForInterruptContext(parent context.Context, callback func()) bool {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	signalled := parent.Err() == nil

	if callback != nil {
		callback()
	}
	return signalled
}
