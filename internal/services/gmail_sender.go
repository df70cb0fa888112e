package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Attachment is a named PDF included with an outbound application email.
type Attachment struct {
	Filename string
	Content  []byte
}

// EmailSender is the external dispatch collaborator. Exactly one send attempt
// per call; retries are the caller's decision, never this layer's.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string, attachments []Attachment) error
}

type GmailSender struct {
	svc  *gmail.Service
	from string
}

func NewGmailSender(ctx context.Context, httpClient *http.Client, from string) (*GmailSender, error) {
	svc, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail Service: %w", err)
	}
	return &GmailSender{svc: svc, from: from}, nil
}

func (s *GmailSender) Send(ctx context.Context, to, subject, body string, attachments []Attachment) error {
	raw, err := buildMIMEMessage(s.from, to, subject, body, attachments)
	if err != nil {
		return err
	}

	msg := &gmail.Message{Raw: base64.URLEncoding.EncodeToString(raw)}
	if _, err := s.svc.Users.Messages.Send("me", msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gmail send failed: %w", err)
	}
	log.Printf("Email sent to %s", to)
	return nil
}

// buildMIMEMessage assembles the RFC 822 multipart/mixed message the Gmail
// API expects in its Raw field (before base64url encoding).
func buildMIMEMessage(from, to, subject, body string, attachments []Attachment) ([]byte, error) {
	var buf strings.Builder
	w := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", w.Boundary())

	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", `text/plain; charset="UTF-8"`)
	part, err := w.CreatePart(textHeader)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write([]byte(body)); err != nil {
		return nil, err
	}

	for _, att := range attachments {
		h := textproto.MIMEHeader{}
		h.Set("Content-Type", "application/pdf")
		h.Set("Content-Transfer-Encoding", "base64")
		h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", att.Filename))
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write([]byte(base64.StdEncoding.EncodeToString(att.Content))); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}
