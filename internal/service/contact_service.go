package service

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"go.uber.org/zap"

	"github.com/pmafa/internal/mail"
	"github.com/pmafa/internal/markdown"
)

var (
	// ErrContactIncomplete 表示联系表单缺少字段。
	ErrContactIncomplete = errors.New("please fill out all fields")
	// ErrRecipientInvalid 表示联系页面未配置有效的收件邮箱。
	ErrRecipientInvalid = errors.New("contact recipient email is not configured")
)

// ContactMessage 是访客提交的联系表单。
type ContactMessage struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

func (m ContactMessage) complete() bool {
	for _, v := range []string{m.Name, m.Email, m.Subject, m.Message} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// ContactService 将联系表单转发到联系页面配置的邮箱。
type ContactService struct {
	pages  *PageService
	mailer mail.Mailer
	logger *zap.Logger
}

func NewContactService(pages *PageService, mailer mail.Mailer, logger *zap.Logger) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{pages: pages, mailer: mailer, logger: logger}
}

// Submit 校验并发送联系邮件，Reply-To 设为访客邮箱。
func (s *ContactService) Submit(ctx context.Context, msg ContactMessage) error {
	if !msg.complete() {
		return ErrContactIncomplete
	}

	page, err := s.pages.Contact(ctx)
	if err != nil {
		return fmt.Errorf("load contact configuration: %w", err)
	}
	recipient := strings.TrimSpace(page.FormSection.FormRecipientEmail)
	if !strings.Contains(recipient, "@") {
		s.logger.Error("invalid contact recipient", zap.String("recipient", recipient))
		return ErrRecipientInvalid
	}

	out := mail.Message{
		To:      recipient,
		ReplyTo: msg.Email,
		Subject: "Contact Form: " + msg.Subject,
		Text:    contactText(msg),
		HTML:    contactHTML(msg),
	}
	if err := s.mailer.Send(ctx, out); err != nil {
		s.logger.Error("failed to send contact message", zap.String("recipient", recipient), zap.Error(err))
		return err
	}
	s.logger.Info("contact message sent", zap.String("recipient", recipient))
	return nil
}

// ContactFailureMessage 将发送错误转换为面向访客的提示。
func ContactFailureMessage(err error) string {
	switch {
	case errors.Is(err, ErrContactIncomplete):
		return "Validation Error: Please fill out all fields."
	case errors.Is(err, ErrRecipientInvalid):
		return "Server Configuration Error: Cannot send message at this time."
	case errors.Is(err, mail.ErrConnection):
		return "Server Error: Could not connect to the email server."
	case errors.Is(err, mail.ErrAuth):
		return "Server Configuration Error: Email authentication failed."
	case errors.Is(err, mail.ErrNotConfigured):
		return "Server Configuration Error: Email is not configured."
	default:
		return "Server Error: Failed to send message due to an internal issue."
	}
}

func contactText(m ContactMessage) string {
	return fmt.Sprintf("New message from your website contact form:\n\nName: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s",
		m.Name, m.Email, m.Subject, m.Message)
}

func contactHTML(m ContactMessage) string {
	esc := template.HTMLEscapeString
	body := strings.ReplaceAll(esc(m.Message), "\n", "<br>")
	raw := fmt.Sprintf(`<p>New message from your website contact form:</p>
<ul>
  <li><strong>Name:</strong> %s</li>
  <li><strong>Email:</strong> %s</li>
  <li><strong>Subject:</strong> %s</li>
</ul>
<p><strong>Message:</strong></p>
<p>%s</p>`, esc(m.Name), esc(m.Email), esc(m.Subject), body)
	return string(markdown.SanitizeHTML(raw))
}
