// Package cloudlog sends structured entries to Cloud Logging.
//
// Platform scripts log to both the terminal and Cloud Logging. A nil
// *Logger is safe to use and drops entries, so commands keep working with
// local output only when Cloud Logging is unreachable.
package cloudlog

import (
	"context"
	"fmt"

	"cloud.google.com/go/logging"
)

// Logger writes structured payloads to a named Cloud Logging log.
type Logger struct {
	client *logging.Client
	logger *logging.Logger
}

// New connects to Cloud Logging for the project using application
// default credentials.
func New(ctx context.Context, project, logName string) (*Logger, error) {
	client, err := logging.NewClient(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Logging client: %w", err)
	}

	return &Logger{
		client: client,
		logger: client.Logger(logName),
	}, nil
}

// Info logs a message with optional structured fields at INFO severity.
func (l *Logger) Info(msg string, fields map[string]any) {
	l.log(logging.Info, msg, fields)
}

// Error logs a message with optional structured fields at ERROR severity.
func (l *Logger) Error(msg string, fields map[string]any) {
	l.log(logging.Error, msg, fields)
}

func (l *Logger) log(severity logging.Severity, msg string, fields map[string]any) {
	if l == nil {
		return
	}

	payload := map[string]any{"message": msg}
	for k, v := range fields {
		payload[k] = v
	}

	l.logger.Log(logging.Entry{
		Severity: severity,
		Payload:  payload,
	})
}

// Close flushes buffered entries and releases the client. Safe on nil.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	return l.client.Close()
}
