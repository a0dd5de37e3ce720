package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-showcase/internal/logging"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

// TelemetryStatus is the outcome class of one command run.
type TelemetryStatus string

const (
	TelemetryStatusSuccess TelemetryStatus = "success"
	// TelemetryStatusRejected marks input the slide rules refused after the
	// message itself validated (for example a merged update that ends up
	// with two owners).
	TelemetryStatusRejected     TelemetryStatus = "rejected"
	TelemetryStatusFailed       TelemetryStatus = "failed"
	TelemetryStatusContextError TelemetryStatus = "context_error"
)

// TelemetryInfo is handed to telemetry callbacks once a command returns.
type TelemetryInfo struct {
	Command   string
	Operation string
	Fields    map[string]any
	Duration  time.Duration
	Error     error
	Status    TelemetryStatus
	// Code is the showcase text code attached to Error, empty on success.
	Code   string
	Logger interfaces.Logger
}

type Telemetry[T command.Message] func(ctx context.Context, msg T, info TelemetryInfo)

// DefaultTelemetry logs the outcome with its duration through logger.
func DefaultTelemetry[T command.Message](logger interfaces.Logger) Telemetry[T] {
	logger = EnsureLogger(logger)
	return func(_ context.Context, _ T, info TelemetryInfo) {
		entry := logging.WithFields(logger, info.Fields)
		logOutcome(entry, info.Status, info.Code, info.Error, "duration_ms", info.Duration.Milliseconds())
	}
}

func logOutcome(logger interfaces.Logger, status TelemetryStatus, code string, err error, args ...any) {
	if code != "" {
		args = append(args, "code", code)
	}
	switch status {
	case TelemetryStatusSuccess:
		logger.Info("command.execute.success", args...)
	case TelemetryStatusRejected:
		logger.Warn("command.execute.rejected", append(args, "error", err)...)
	case TelemetryStatusContextError:
		logger.Error("command.execute.context_error", append(args, "error", err)...)
	default:
		logger.Error("command.execute.failed", append(args, "error", err)...)
	}
}
