// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

// Package notify delivers password-reset messages.
package notify

import (
	"context"
	"log/slog"
)

// Subject is the subject line of reset messages.
const Subject = "Change password"

// Sender delivers an HTML message to one recipient.
type Sender interface {
	Send(ctx context.Context, to, htmlBody string) error
}

// LogSender writes messages to the log instead of delivering them. It is
// meant for development, where the reset link is read from the log.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a LogSender. A nil logger uses slog.Default.
func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger}
}

// Send logs the message.
func (s *LogSender) Send(ctx context.Context, to, htmlBody string) error {
	s.logger.InfoContext(ctx, "mail not sent (log driver)",
		"to", to,
		"subject", Subject,
		"body", htmlBody)
	return nil
}
