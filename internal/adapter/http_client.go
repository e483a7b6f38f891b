package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type HTTPClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type httpRemoteStore struct {
	client *resty.Client
	token  string
}

func NewHTTPRemoteStore(cfg HTTPClientConfig) RemoteStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpRemoteStore{client: cli, token: strings.TrimSpace(cfg.Token)}
}

func (h *httpRemoteStore) Ping(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) ExistsByID(ctx context.Context, table, id string) (bool, error) {
	resp, err := h.authedRequest(ctx).
		Get(fmt.Sprintf("/api/%s/%s", table, id))
	if err != nil {
		return false, fmt.Errorf("exists request (%s/%s): %w", table, id, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return true, nil
}

func (h *httpRemoteStore) Insert(ctx context.Context, table string, record any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Post(fmt.Sprintf("/api/%s/", table))
	if err != nil {
		return fmt.Errorf("insert request (%s): %w", table, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) InsertBatch(ctx context.Context, table string, records any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(records).
		Post(fmt.Sprintf("/api/%s/batch", table))
	if err != nil {
		return fmt.Errorf("insert batch request (%s): %w", table, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d", ErrRemoteUnavailable, resp.StatusCode())
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
