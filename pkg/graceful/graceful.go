package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Wait blocks until an interrupt arrives or errc yields. On interrupt it
// calls stop with a context bounded by timeout and returns its result;
// otherwise it returns what errc delivered.
func Wait(errc <-chan error, timeout time.Duration, stop func(ctx context.Context) error) error {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case err := <-errc:
		return err
	case <-done:
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return stop(ctx)
}
