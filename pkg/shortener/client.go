package shortener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/propagation"
)

// ErrUnexpectedStatus is returned when the shortening service answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected status from shortener")

const shortenPath = "/shorten"

// Request is the payload sent to the shortening service.
// Short is omitted from the multipart body when empty.
type Request struct {
	Original string
	Short    string
}

// Response is the payload returned by the shortening service.
// Raw holds the body as received, so unknown fields survive for display.
type Response struct {
	Short    string          `json:"short"`
	Original string          `json:"original"`
	Raw      json.RawMessage `json:"-"`
}

type Client struct {
	http *resty.Client
}

type Option func(*resty.Client)

// WithHeader sets a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *resty.Client) {
		c.SetHeader(key, value)
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")

	for _, opt := range opts {
		opt(c)
	}

	return &Client{http: c}
}

// Shorten performs a single POST to the shortening service. It never retries.
func (c *Client) Shorten(ctx context.Context, req Request) (*Response, error) {
	fields := map[string]string{"original": req.Original}
	if req.Short != "" {
		fields["short"] = req.Short
	}

	r := c.http.R().
		SetContext(ctx).
		SetMultipartFormData(fields)

	propagation.TraceContext{}.Inject(ctx, propagation.HeaderCarrier(r.Header))

	resp, err := r.Post(shortenPath)
	if err != nil {
		return nil, fmt.Errorf("send shorten request: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	body := resp.Body()

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode shorten response: %w", err)
	}
	out.Raw = append(json.RawMessage(nil), body...)

	return &out, nil
}
