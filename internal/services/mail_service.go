// services/mail_service.go
package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	ttemplate "text/template"
	"time"

	"go.uber.org/zap"
	"monastery/internal/models/db_models"
)

type IMailService interface {
	SendContactNotification(message db_models.ContactMessage) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // 587 (STARTTLS) or 465 (SMTPS)
	Username string
	Password string
	From     string // envelope from
	FromName string
	UseSSL   bool   // true for SMTPS 465, false for STARTTLS 587
	NotifyTo string // site owner inbox receiving contact messages
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *ttemplate.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	if cfg.Host == "" || cfg.From == "" || cfg.NotifyTo == "" {
		return nil, fmt.Errorf("smtp host, from and notify_to are required")
	}
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("contactHTML").Parse(contactHTMLTemplate)),
		textTpl: ttemplate.Must(ttemplate.New("contactText").Parse(contactTextTemplate)),
	}, nil
}

type noopMailService struct {
	logger *zap.Logger
}

// NewNoopMailService is used when mail is disabled; it only logs.
func NewNoopMailService(logger *zap.Logger) IMailService {
	return &noopMailService{logger: logger}
}

func (n *noopMailService) SendContactNotification(message db_models.ContactMessage) error {
	n.logger.Debug("mail disabled, skipping contact notification", zap.String("message_id", message.ID.String()))
	return nil
}

// ------------------- Public API -------------------

func (s *smtpMailService) SendContactNotification(message db_models.ContactMessage) error {
	subject := fmt.Sprintf("New contact message from %s", message.Name)
	data := contactEmailData{
		Title:    subject,
		Name:     message.Name,
		Email:    message.Email,
		Message:  message.Message,
		Received: time.Unix(message.CreatedAt, 0).UTC().Format(time.RFC1123),
		AppName:  s.cfg.FromName,
	}

	html, text, err := s.renderEmail(data)
	if err != nil {
		return err
	}
	return s.send(s.cfg.NotifyTo, subject, html, text)
}

// ------------------- Rendering -------------------

type contactEmailData struct {
	Title    string
	Name     string
	Email    string
	Message  string
	Received string
	AppName  string
}

const contactHTMLTemplate = `<!doctype html>
<html>
<head><meta charset="UTF-8"><title>{{.Title}}</title></head>
<body style="font-family: -apple-system, Segoe UI, Roboto, Helvetica, Arial, sans-serif; color: #1e293b;">
  <h2>{{.Title}}</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
  <p><strong>Received:</strong> {{.Received}}</p>
  <blockquote style="border-left: 3px solid #b45309; padding-left: 12px;">{{.Message}}</blockquote>
  <p style="color: #64748b; font-size: 12px;">{{.AppName}}</p>
</body>
</html>`

const contactTextTemplate = `{{.Title}}

Name: {{.Name}}
Email: {{.Email}}
Received: {{.Received}}

{{.Message}}

-- {{.AppName}}
`

func (s *smtpMailService) renderEmail(data contactEmailData) (html string, text string, err error) {
	var hb, tb bytes.Buffer

	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

// ------------------- SMTP Send -------------------

func (s *smtpMailService) buildMessage(to, subject, htmlBody, textBody string) []byte {
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)
	return msg.Bytes()
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	msg := s.buildMessage(to, subject, htmlBody, textBody)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	var conn net.Conn
	var err error
	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		conn, err = tls.DialWithDialer(dialer, "tcp", addr, tlsCfg)
	} else {
		conn, err = dialer.Dial("tcp", addr)
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		ok, _ := c.Extension("STARTTLS")
		if !ok {
			return fmt.Errorf("server does not support STARTTLS")
		}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	}

	if s.cfg.Username != "" {
		if err = c.Auth(auth); err != nil {
			return err
		}
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", name), s.cfg.From)
}
