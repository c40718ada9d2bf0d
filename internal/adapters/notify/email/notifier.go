// Package email delivers notifications through a transactional email HTTP
// API (ZeptoMail-compatible JSON). Requests go through the platform HTTP
// client, which adds retries, a circuit breaker, rate limiting, and tracing.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/notification"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/ports"
)

const (
	sendPath        = "/v1.1/email"
	maxErrorBody    = 4 << 10
	defaultFromName = "Projects"
)

var (
	_ ports.Notifier      = (*Notifier)(nil)
	_ ports.HealthChecker = (*Notifier)(nil)
)

// Doer sends HTTP requests. *httpclient.Client satisfies it.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
	BaseURL() string
	HealthCheck(ctx context.Context) error
}

// Config holds sender identity and credentials.
type Config struct {
	From     string
	FromName string
	APIKey   string
}

// Notifier sends one email per notification message.
type Notifier struct {
	client   Doer
	from     string
	fromName string
	apiKey   string
	render   *renderer
}

// New creates an email Notifier.
func New(client Doer, cfg Config) (*Notifier, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}
	fromName := cfg.FromName
	if fromName == "" {
		fromName = defaultFromName
	}
	return &Notifier{
		client:   client,
		from:     cfg.From,
		fromName: fromName,
		apiKey:   cfg.APIKey,
		render:   r,
	}, nil
}

type sendRequest struct {
	From     address     `json:"from"`
	To       []recipient `json:"to"`
	Subject  string      `json:"subject"`
	HTMLBody string      `json:"htmlbody"`
	// ClientReference lets the provider drop a duplicate submission.
	ClientReference string `json:"client_reference,omitempty"`
}

type address struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

type recipient struct {
	EmailAddress address `json:"email_address"`
}

// Notify renders and sends msg to its recipient.
func (n *Notifier) Notify(ctx context.Context, msg notification.Message) error {
	body, err := n.render.render(msg)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(sendRequest{
		From:            address{Address: n.from, Name: n.fromName},
		To:              []recipient{{EmailAddress: address{Address: msg.Recipient}}},
		Subject:         msg.Subject(),
		HTMLBody:        body,
		ClientReference: msg.ID,
	})
	if err != nil {
		return fmt.Errorf("encoding email for %s: %w", msg.Kind, err)
	}

	url := strings.TrimRight(n.client.BaseURL(), "/") + sendPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", n.apiKey)

	// The client returns the last response alongside the error once retries
	// are exhausted.
	resp, err := n.client.Do(ctx, req)
	if resp != nil {
		defer func() { _ = resp.Body.Close() }()
	}
	if err != nil {
		return fmt.Errorf("sending %s email: %w: %w", msg.Kind, domain.ErrUnavailable, err)
	}

	return checkResponse(resp)
}

// checkResponse maps a provider response to an error. Server-side failures
// are reported as unavailable; client-side ones carry the provider message.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode < http.StatusBadRequest {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(detail))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("email api status %d: %s: %w", resp.StatusCode, msg, domain.ErrUnavailable)
	}
	return fmt.Errorf("email api rejected message (status %d): %s", resp.StatusCode, msg)
}

// Name implements ports.HealthChecker.
func (n *Notifier) Name() string { return "email-api" }

// HealthCheck reports the circuit breaker state of the underlying client.
func (n *Notifier) HealthCheck(ctx context.Context) error {
	return n.client.HealthCheck(ctx)
}
