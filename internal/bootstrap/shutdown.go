package bootstrap

import (
	"context"
	"io"
	"log/slog"
)

// Stopper is a component that drains in-flight work on shutdown
type Stopper interface {
	Stop(ctx context.Context) error
}

// GracefulShutdown stops the HTTP server, then closes the log file.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, server Stopper, logFile io.Closer) {
	slog.Info(LogMsgShuttingDownServer)

	if err := server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	slog.Info(LogMsgServerStopped)

	if logFile != nil {
		_ = logFile.Close()
	}
}
