package client

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
)

type EmailSender interface {
	Send(ctx context.Context, to string, subject string, text string, html string) error
}

// LogSender only logs outgoing mail. It is used when no mail provider is configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, to string, subject string, text string, html string) error {
	log.Printf("email to=%s subject=%q (%d bytes text, %d bytes html)", to, subject, len(text), len(html))
	return nil
}

// BuildMessage renders an RFC 2822 multipart/alternative message.
func BuildMessage(from string, to string, subject string, text string, html string) string {
	boundary := "----=_Part_" + uuid.NewString()
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 7bit\r\n\r\n")
	b.WriteString(text + "\r\n\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 7bit\r\n\r\n")
	b.WriteString(html + "\r\n\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return b.String()
}
