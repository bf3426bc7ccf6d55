package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"harvest-planner/internal/domain"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// maxBody bounds how much of an upstream response is read.
const maxBody = 8 << 20

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// StatusCode extracts the upstream HTTP status from err, if there is one.
func StatusCode(err error) (int, bool) {
	var he *httpStatusError
	if errors.As(err, &he) {
		return he.Code, true
	}
	return 0, false
}

// client is the JSON-over-HTTP plumbing shared by the upstream adapters.
// Calls are made once; a failure is terminal for the request.
type client struct {
	session *http.Client
	url     string
	apiKey  string
}

func newClient(url, apiKey string, timeout time.Duration) (client, error) {
	if strings.TrimSpace(url) == "" {
		return client{}, errors.New("upstream url is empty")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return client{
		session: &http.Client{Timeout: timeout},
		url:     url,
		apiKey:  apiKey,
	}, nil
}

func (c client) newRequest(ctx context.Context, payload any) (*http.Request, error) {
	body, err := sonic.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

// post sends payload and returns the raw response body of a 2xx reply.
// Non-2xx replies map onto the domain's upstream error kinds.
func (c client) post(ctx context.Context, payload any) ([]byte, error) {
	req, err := c.newRequest(ctx, payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrGateway, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", domain.ErrGateway, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return b, nil
}

func statusError(code int, body string) error {
	he := &httpStatusError{Code: code, Body: body}
	switch code {
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", domain.ErrRateLimited, he)
	case http.StatusPaymentRequired:
		return fmt.Errorf("%w: %w", domain.ErrPaymentRequired, he)
	default:
		return fmt.Errorf("%w: %w", domain.ErrGateway, he)
	}
}
