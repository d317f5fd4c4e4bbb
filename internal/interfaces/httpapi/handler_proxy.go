package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/riskibarqy/matchday/external/sofascore"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxRelayRedirects = 5

var errRelayHostForbidden = errors.New("relay host not allowed")

var emptyJSONObject = []byte("{}")

// Relay forwards browser requests to allow-listed upstream hosts so the
// dashboard can reach the provider from its own origin.
type Relay struct {
	transport sofascore.Transport
	hosts     map[string]struct{}
}

func NewRelay(transport sofascore.Transport, allowedHosts []string) *Relay {
	hosts := make(map[string]struct{}, len(allowedHosts))
	for _, host := range allowedHosts {
		if host = strings.ToLower(strings.TrimSpace(host)); host != "" {
			hosts[host] = struct{}{}
		}
	}
	return &Relay{transport: transport, hosts: hosts}
}

// NewHTTPRelay relays over net/http and re-checks the allow-list on every
// redirect hop.
func NewHTTPRelay(allowedHosts []string, timeout time.Duration) *Relay {
	r := NewRelay(nil, allowedHosts)
	r.transport = sofascore.NewHTTPTransport(&http.Client{
		Transport:     otelhttp.NewTransport(http.DefaultTransport),
		CheckRedirect: r.checkRedirect,
	}, timeout)
	return r
}

func (r *Relay) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRelayRedirects {
		return fmt.Errorf("stopped after %d redirects", len(via))
	}
	if !r.allows(req.URL) {
		return fmt.Errorf("%w: redirect to %s", errRelayHostForbidden, req.URL.Hostname())
	}
	return nil
}

func (r *Relay) allows(target *url.URL) bool {
	if target.Scheme != "https" && target.Scheme != "http" {
		return false
	}
	_, ok := r.hosts[strings.ToLower(target.Hostname())]
	return ok
}

type proxyQuery struct {
	URL string `validate:"required,url,max=2048"`
}

// Proxy relays GET url. Upstream failures answer 200 with an empty object
// so the dashboard renders its empty states instead of an error.
func (h *Handler) Proxy(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Proxy")
	defer span.End()

	query := proxyQuery{URL: strings.TrimSpace(r.URL.Query().Get("url"))}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}
	target, err := url.Parse(query.URL)
	if err != nil || !h.relay.allows(target) {
		writeError(ctx, w, fmt.Errorf("%w: %s", errRelayHostForbidden, query.URL))
		return
	}

	status, body, err := h.relay.transport.Get(ctx, target.String())
	if errors.Is(err, errRelayHostForbidden) {
		h.logger.WarnContext(ctx, "relay redirect left the allow-list", "host", target.Hostname())
		writeError(ctx, w, fmt.Errorf("%w: %s", errRelayHostForbidden, query.URL))
		return
	}
	if err != nil || status < 200 || status >= 300 {
		h.logger.WarnContext(ctx, "relay upstream failed, serving empty object",
			"host", target.Hostname(),
			"status", status,
			"error", err,
		)
		body = emptyJSONObject
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
