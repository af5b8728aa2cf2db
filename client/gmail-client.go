package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

const gmailSendURL = "https://gmail.googleapis.com/gmail/v1/users/me/messages/send"

var googleEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.google.com/o/oauth2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
}

// GmailClient sends mail through the Gmail API with a long lived refresh token.
type GmailClient struct {
	Client  *http.Client
	From    string
	SendURL string
}

func NewGmailClient(ctx context.Context, clientID string, clientSecret string, refreshToken string, from string) *GmailClient {
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     googleEndpoint,
		RedirectURL:  "https://developers.google.com/oauthplayground",
		Scopes:       []string{"https://www.googleapis.com/auth/gmail.send"},
	}
	return &GmailClient{
		Client:  config.Client(ctx, &oauth2.Token{RefreshToken: refreshToken}),
		From:    from,
		SendURL: gmailSendURL,
	}
}

type gmailMessage struct {
	Raw string `json:"raw"`
}

func (c *GmailClient) Send(ctx context.Context, to string, subject string, text string, html string) error {
	message := BuildMessage(c.From, to, subject, text, html)
	body, err := json.Marshal(gmailMessage{Raw: base64.RawURLEncoding.EncodeToString([]byte(message))})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.SendURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gmail send to %s failed with status %d: %s", to, resp.StatusCode, string(respBody))
	}
	return nil
}
