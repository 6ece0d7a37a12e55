package mailer

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"net/textproto"
	"strings"
)

// Transport error categories surfaced to the contact handler.
var (
	ErrAuth       = errors.New("mail authentication failed")
	ErrConnection = errors.New("mail server unreachable")
	ErrMessage    = errors.New("malformed mail message")
)

// Message is a single outbound email with text and HTML alternatives.
type Message struct {
	To       string
	ReplyTo  string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer delivers messages to outbound email.
type Mailer interface {
	Send(msg Message) error
}

// SMTPMailer sends multipart text+html mail over authenticated SMTP.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	fromName string
}

func NewSMTP(host, port, username, password, fromName string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		fromName: fromName,
	}
}

func (m *SMTPMailer) Send(msg Message) error {
	from := fmt.Sprintf("%s <%s>", m.fromName, m.username)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	addr := net.JoinHostPort(m.host, m.port)

	body, err := buildMIME(from, msg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMessage, err)
	}

	if err := smtp.SendMail(addr, auth, m.username, []string{msg.To}, body); err != nil {
		return classify(err)
	}
	return nil
}

func buildMIME(from string, msg Message) ([]byte, error) {
	if strings.TrimSpace(msg.To) == "" {
		return nil, errors.New("empty recipient")
	}
	if strings.ContainsAny(msg.To+msg.Subject, "\r\n") {
		return nil, errors.New("header injection")
	}

	const boundary = "----=_GUESTHOUSE_MAIL_BOUNDARY"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	if msg.ReplyTo != "" {
		sb.WriteString(fmt.Sprintf("Reply-To: %s\r\n", msg.ReplyTo))
	}
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(msg.TextBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(msg.HTMLBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	return []byte(sb.String()), nil
}

// classify maps SMTP transport failures onto the user-facing categories.
func classify(err error) error {
	var proto *textproto.Error
	if errors.As(err, &proto) {
		switch {
		case proto.Code == 530 || proto.Code == 534 || proto.Code == 535:
			return fmt.Errorf("%w: %v", ErrAuth, err)
		case proto.Code >= 550 && proto.Code <= 554:
			return fmt.Errorf("%w: %v", ErrMessage, err)
		}
	}

	var netErr net.Error
	var opErr *net.OpError
	if errors.As(err, &netErr) || errors.As(err, &opErr) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return err
}

// MockMailer logs instead of sending; used when SMTP is not configured.
type MockMailer struct{}

func (MockMailer) Send(msg Message) error {
	log.Printf("[MOCK EMAIL] to:%s subject:%q", msg.To, msg.Subject)
	return nil
}
