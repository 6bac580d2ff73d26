package channelapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"order-followup/internal/domain/channel"
	"order-followup/internal/pkg/config"
	"order-followup/internal/pkg/errs"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxErrorBody = 4 << 10

var ErrUnexpectedStatus = errs.New("unexpected channel api status")

// Client talks to the inbox provider that owns the watch channel.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(cfg config.KeepAliveConfig) *Client {
	return NewClientWithHTTP(cfg.APIURL, cfg.APIToken, &http.Client{
		Timeout:   cfg.APITimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

func NewClientWithHTTP(baseURL, token string, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    hc,
	}
}

type watchResponse struct {
	ResourceID string    `json:"resourceId"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

type eventDTO struct {
	ID         string     `json:"id"`
	WorkItemID *uuid.UUID `json:"workItemId"`
	From       string     `json:"from"`
	Subject    string     `json:"subject"`
	ReceivedAt time.Time  `json:"receivedAt"`
}

type eventsResponse struct {
	Events []eventDTO `json:"events"`
}

// Renew (re)creates the watch; the provider treats repeated calls as the same subscription.
func (c *Client) Renew(ctx context.Context, channelID string) (channel.Renewal, error) {
	var out watchResponse
	if err := c.do(ctx, http.MethodPost, "/channels/"+url.PathEscape(channelID)+"/watch", nil, &out); err != nil {
		return channel.Renewal{}, errs.Wrap(err, "renew channel watch")
	}
	if out.ExpiresAt.IsZero() {
		return channel.Renewal{}, errs.New("renew channel watch: response has no expiresAt")
	}
	return channel.Renewal{ResourceID: out.ResourceID, ExpiresAt: out.ExpiresAt}, nil
}

// ListEvents returns messages received in [since, until).
func (c *Client) ListEvents(ctx context.Context, channelID string, since, until time.Time) ([]channel.InboundEvent, error) {
	q := url.Values{}
	q.Set("since", since.UTC().Format(time.RFC3339Nano))
	q.Set("until", until.UTC().Format(time.RFC3339Nano))

	var out eventsResponse
	if err := c.do(ctx, http.MethodGet, "/channels/"+url.PathEscape(channelID)+"/events", q, &out); err != nil {
		return nil, errs.Wrap(err, "list channel events")
	}

	events := make([]channel.InboundEvent, 0, len(out.Events))
	for _, e := range out.Events {
		if e.ID == "" {
			continue
		}
		events = append(events, channel.InboundEvent{
			EventID:    e.ID,
			WorkItemID: e.WorkItemID,
			From:       e.From,
			Subject:    e.Subject,
			ReceivedAt: e.ReceivedAt,
		})
	}
	return events, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errs.Wrap(ErrUnexpectedStatus, fmt.Sprintf("%s %s: %d %s", method, path, resp.StatusCode, strings.TrimSpace(string(body))))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "decode response")
	}
	return nil
}
