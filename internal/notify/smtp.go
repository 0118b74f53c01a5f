// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package notify

import (
	"context"
	"log/slog"

	"github.com/samber/oops"
	"github.com/wneessen/go-mail"
)

// SMTPConfig holds SMTP connection settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// TLS is one of "mandatory", "opportunistic" or "none".
	TLS string
}

// dialer is the part of *mail.Client used to send.
type dialer interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPSender delivers messages over SMTP. Each Send opens a connection;
// failures are returned to the caller and not retried.
type SMTPSender struct {
	client dialer
	from   string
	logger *slog.Logger
}

// NewSMTPSender builds a sender from cfg.
func NewSMTPSender(cfg SMTPConfig, logger *slog.Logger) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, oops.Code("MAIL_CONFIG_INVALID").Errorf("mail host is required")
	}
	if cfg.From == "" {
		return nil, oops.Code("MAIL_CONFIG_INVALID").Errorf("mail from address is required")
	}
	policy, err := tlsPolicy(cfg.TLS)
	if err != nil {
		return nil, err
	}

	opts := []mail.Option{mail.WithTLSPolicy(policy)}
	if cfg.Port > 0 {
		opts = append(opts, mail.WithPort(cfg.Port))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, oops.Code("MAIL_CONFIG_INVALID").With("host", cfg.Host).Wrap(err)
	}
	return newSMTPSender(client, cfg.From, logger), nil
}

func newSMTPSender(client dialer, from string, logger *slog.Logger) *SMTPSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &SMTPSender{client: client, from: from, logger: logger}
}

// Send delivers htmlBody to the recipient.
func (s *SMTPSender) Send(ctx context.Context, to, htmlBody string) error {
	msg, err := s.message(to, htmlBody)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return oops.Code("MAIL_SEND_FAILED").With("to", to).Wrap(err)
	}
	s.logger.DebugContext(ctx, "mail sent", "to", to)
	return nil
}

func (s *SMTPSender) message(to, htmlBody string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return nil, oops.Code("MAIL_ADDRESS_INVALID").With("from", s.from).Wrap(err)
	}
	if err := msg.To(to); err != nil {
		return nil, oops.Code("MAIL_ADDRESS_INVALID").With("to", to).Wrap(err)
	}
	msg.Subject(Subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	return msg, nil
}

func tlsPolicy(v string) (mail.TLSPolicy, error) {
	switch v {
	case "", "opportunistic":
		return mail.TLSOpportunistic, nil
	case "mandatory":
		return mail.TLSMandatory, nil
	case "none":
		return mail.NoTLS, nil
	}
	return 0, oops.Code("MAIL_CONFIG_INVALID").Errorf("unknown TLS policy %q", v)
}
