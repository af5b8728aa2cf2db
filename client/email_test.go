package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	message := BuildMessage("staff@khe.io", "team@example.com", "Feedback", "plain body", "<p>html body</p>")
	assert.True(t, strings.HasPrefix(message, "From: staff@khe.io\r\nTo: team@example.com\r\nSubject: Feedback\r\n"))
	assert.Contains(t, message, "Content-Type: multipart/alternative; boundary=\"----=_Part_")
	assert.Contains(t, message, "Content-Type: text/plain; charset=UTF-8\r\nContent-Transfer-Encoding: 7bit\r\n\r\nplain body")
	assert.Contains(t, message, "Content-Type: text/html; charset=UTF-8\r\nContent-Transfer-Encoding: 7bit\r\n\r\n<p>html body</p>")
	assert.True(t, strings.HasSuffix(message, "--\r\n"))
}

func TestGmailClientSend(t *testing.T) {
	var received gmailMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := &GmailClient{Client: server.Client(), From: "staff@khe.io", SendURL: server.URL}
	err := client.Send(context.Background(), "team@example.com", "Feedback", "text", "<p>html</p>")
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(received.Raw)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "To: team@example.com")
}

func TestGmailClientSendReportsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := &GmailClient{Client: server.Client(), From: "staff@khe.io", SendURL: server.URL}
	err := client.Send(context.Background(), "team@example.com", "Feedback", "text", "html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestLogSenderNeverFails(t *testing.T) {
	assert.NoError(t, LogSender{}.Send(context.Background(), "a@b.c", "s", "t", "h"))
}
