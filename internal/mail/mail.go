// Package mail sends outbound email for the contact form and password resets.
package mail

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

var (
	// ErrConnection means the SMTP server could not be reached.
	ErrConnection = errors.New("mail server unreachable")
	// ErrAuth means the SMTP server rejected the credentials.
	ErrAuth = errors.New("mail authentication failed")
	// ErrNotConfigured means no SMTP credentials are set and nothing was sent.
	ErrNotConfigured = errors.New("mail not configured")
)

// Message is a single outbound email. HTML is optional.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Config holds SMTP settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
	Timeout  time.Duration
}

// SMTPMailer sends through an authenticated SMTP server using STARTTLS.
type SMTPMailer struct {
	cfg Config
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &SMTPMailer{cfg: cfg}
}

// Send builds the message and delivers it. Transport failures are wrapped
// with ErrConnection or ErrAuth when they can be classified.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	out, err := m.build(msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
		gomail.WithTimeout(m.cfg.Timeout),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, out); err != nil {
		return classify(err)
	}
	return nil
}

func (m *SMTPMailer) build(msg Message) (*gomail.Msg, error) {
	out := gomail.NewMsg()
	if err := out.FromFormat(m.cfg.FromName, m.cfg.Username); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := out.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := out.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to: %w", err)
		}
	}
	out.Subject(msg.Subject)
	out.SetBodyString(gomail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		out.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}
	return out, nil
}

// classify maps transport errors onto ErrConnection and ErrAuth.
func classify(err error) error {
	var netErr net.Error
	var opErr *net.OpError
	var dnsErr *net.DNSError
	switch {
	case errors.As(err, &opErr), errors.As(err, &dnsErr), errors.As(err, &netErr):
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}

	lower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lower, "auth"), strings.Contains(lower, "535"):
		return fmt.Errorf("%w: %w", ErrAuth, err)
	case strings.Contains(lower, "dial"), strings.Contains(lower, "connection refused"), strings.Contains(lower, "timeout"):
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return fmt.Errorf("send mail: %w", err)
}

// Noop logs and drops messages when SMTP credentials are not configured.
// Send always fails with ErrNotConfigured so callers do not report delivery.
type Noop struct {
	Logger *zap.Logger
}

func (n Noop) Send(_ context.Context, msg Message) error {
	if n.Logger != nil {
		n.Logger.Warn("mail not configured, message dropped",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
		)
	}
	return ErrNotConfigured
}
