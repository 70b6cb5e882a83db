package common

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WithInterrupt derives a context that ends on SIGINT or SIGTERM, so a
// pending API call is abandoned when the user presses ctrl+c. Call the
// returned func once the command is done.
func WithInterrupt(parent context.Context) (context.Context, func()) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
