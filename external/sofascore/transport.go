package sofascore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	maxResponseBodyBytes = 6 << 20
	defaultUserAgent     = "matchday/1.0"
)

// Transport performs a single GET and hands back the raw status and body.
// Retries, breaking and decoding are the client's job.
type Transport interface {
	Get(ctx context.Context, rawURL string) (int, []byte, error)
}

// HTTPTransport uses net/http with otel client instrumentation.
type HTTPTransport struct {
	client    *http.Client
	userAgent string
}

func NewHTTPTransport(client *http.Client, timeout time.Duration) *HTTPTransport {
	if client == nil {
		client = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	if client.Timeout <= 0 {
		client.Timeout = timeout
	}
	if client.Timeout <= 0 {
		client.Timeout = 20 * time.Second
	}
	return &HTTPTransport{client: client, userAgent: defaultUserAgent}
}

func (t *HTTPTransport) Get(ctx context.Context, rawURL string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("user-agent", t.userAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, nil, crerr.Mark(fmt.Errorf("send request: %w", err), errTransient)
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxResponseBodyBytes)); err != nil {
		return resp.StatusCode, nil, crerr.Mark(fmt.Errorf("read response body: %w", err), errTransient)
	}

	body := make([]byte, buf.Len())
	copy(body, buf.B)
	return resp.StatusCode, body, nil
}

// FastHTTPTransport uses a pooled fasthttp client for high request volume.
type FastHTTPTransport struct {
	client  *fasthttp.Client
	timeout time.Duration
}

func NewFastHTTPTransport(timeout time.Duration) *FastHTTPTransport {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &FastHTTPTransport{
		client: &fasthttp.Client{
			Name:                defaultUserAgent,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxResponseBodyBytes,
		},
		timeout: timeout,
	}
}

func (t *FastHTTPTransport) Get(ctx context.Context, rawURL string) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}

	timeout := t.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(rawURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	if err := t.client.DoTimeout(req, resp, timeout); err != nil {
		return 0, nil, crerr.Mark(fmt.Errorf("send request: %w", err), errTransient)
	}

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return resp.StatusCode(), body, nil
}

// RelayTransport routes every request through a same-origin relay endpoint
// of the form <relay>?url=<escaped upstream url>.
type RelayTransport struct {
	next     Transport
	relayURL string
}

func NewRelayTransport(next Transport, relayURL string) *RelayTransport {
	return &RelayTransport{next: next, relayURL: strings.TrimSpace(relayURL)}
}

func (t *RelayTransport) Get(ctx context.Context, rawURL string) (int, []byte, error) {
	return t.next.Get(ctx, RelayURL(t.relayURL, rawURL))
}

// RelayURL builds the relay address for target.
func RelayURL(relayURL, target string) string {
	sep := "?"
	if strings.Contains(relayURL, "?") {
		sep = "&"
	}
	return relayURL + sep + "url=" + url.QueryEscape(target)
}
