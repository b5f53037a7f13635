// Package relay sends contact messages through the EmailJS REST API.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultEndpoint is the public EmailJS API host.
const DefaultEndpoint = "https://api.emailjs.com"

const sendPath = "/api/v1.0/email/send"

// ErrRelay is returned for every failed delivery attempt.
var ErrRelay = errors.New("message relay failed")

// Config holds the routing identifiers that address an EmailJS pipeline.
type Config struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	// AccessToken is the optional private key for accounts that require it.
	AccessToken string
}

// Client is an EmailJS sender.
type Client struct {
	cfg  Config
	http *http.Client
}

// New returns a Client. A nil httpClient uses a client with no timeout;
// callers bound the request through its context.
func New(cfg Config, httpClient *http.Client) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{cfg: cfg, http: httpClient}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send delivers params to the configured template. Param keys are the form
// field names the template references.
func (c *Client) Send(ctx context.Context, params map[string]string) error {
	if c.cfg.ServiceID == "" || c.cfg.TemplateID == "" || c.cfg.PublicKey == "" {
		return fmt.Errorf("%w: emailjs identifiers not configured", ErrRelay)
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     c.cfg.TemplateID,
		UserID:         c.cfg.PublicKey,
		AccessToken:    c.cfg.AccessToken,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("%w: encoding request: %v", ErrRelay, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+sendPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: building request: %v", ErrRelay, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRelay, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrRelay, resp.StatusCode, strings.TrimSpace(string(text)))
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}
