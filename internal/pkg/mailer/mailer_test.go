package mailer

import (
	"errors"
	"net"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"535 bad credentials", &textproto.Error{Code: 535, Msg: "authentication failed"}, ErrAuth},
		{"530 auth required", &textproto.Error{Code: 530, Msg: "authentication required"}, ErrAuth},
		{"534 mechanism too weak", &textproto.Error{Code: 534, Msg: "mechanism too weak"}, ErrAuth},
		{"550 mailbox unavailable", &textproto.Error{Code: 550, Msg: "mailbox unavailable"}, ErrMessage},
		{"554 transaction failed", &textproto.Error{Code: 554, Msg: "transaction failed"}, ErrMessage},
		{"connection refused", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, ErrConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classify(tt.err), tt.want)
		})
	}
}

func TestClassify_UnknownErrorPassesThrough(t *testing.T) {
	plain := errors.New("something else")
	got := classify(plain)
	assert.ErrorIs(t, got, plain)
	assert.NotErrorIs(t, got, ErrAuth)
	assert.NotErrorIs(t, got, ErrConnection)
	assert.NotErrorIs(t, got, ErrMessage)
}

func TestBuildMIME(t *testing.T) {
	body, err := buildMIME("Guest House <noreply@example.com>", Message{
		To:       "guest@example.com",
		ReplyTo:  "guest@example.com",
		Subject:  "Booking inquiry",
		TextBody: "plain text part",
		HTMLBody: "<p>html part</p>",
	})
	assert.NoError(t, err)

	raw := string(body)
	assert.Contains(t, raw, "To: guest@example.com")
	assert.Contains(t, raw, "Reply-To: guest@example.com")
	assert.Contains(t, raw, "Content-Type: multipart/alternative")
	assert.Contains(t, raw, "plain text part")
	assert.Contains(t, raw, "<p>html part</p>")
}

func TestBuildMIME_RejectsHeaderInjection(t *testing.T) {
	_, err := buildMIME("x", Message{
		To:      "guest@example.com",
		Subject: "hello\r\nBcc: spam@example.com",
	})
	assert.Error(t, err)

	_, err = buildMIME("x", Message{To: "  "})
	assert.Error(t, err)
}
