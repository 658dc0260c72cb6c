package olympics

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/oranjelive/medaltracker/internal/platform/logging"
	"github.com/oranjelive/medaltracker/internal/platform/resilience"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var errOlympicsTransient = crerr.New("olympics upstream transient failure")

// maxBodyBytes caps proxy response reads. The medals page is large but
// nowhere near this; anything bigger is a misbehaving mirror.
const maxBodyBytes = 8 << 20

// FetcherConfig tunes the proxy-chain fetcher.
type FetcherConfig struct {
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Fetcher retrieves upstream documents through an ordered candidate chain:
// the direct URL first, then public CORS mirrors. Candidates are tried
// sequentially without per-candidate retries; the first usable body wins.
type Fetcher struct {
	client         *http.Client
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
	candidates     func(sourceURL string) []string
}

func NewFetcher(cfg FetcherConfig, logger *logging.Logger) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		candidates:     proxyCandidates,
	}
}

// proxyCandidates builds the ordered fetch chain for a source URL.
func proxyCandidates(sourceURL string) []string {
	stripped := strings.TrimPrefix(strings.TrimPrefix(sourceURL, "https://"), "http://")
	return []string{
		sourceURL,
		"https://api.allorigins.win/raw?url=" + url.QueryEscape(sourceURL),
		"https://r.jina.ai/http://" + stripped,
		"https://cors.isomorphic-git.org/" + sourceURL,
		"https://api.codetabs.com/v1/proxy?quest=" + url.QueryEscape(sourceURL),
	}
}

// FetchText returns the first 2xx body from the candidate chain. Concurrent
// calls for the same URL are collapsed into one upstream round.
func (f *Fetcher) FetchText(ctx context.Context, sourceURL string) (string, error) {
	value, err, _ := f.flight.Do("text:"+sourceURL, func() (any, error) {
		return f.fetchChain(ctx, sourceURL, func(body string) (any, bool) {
			return body, true
		})
	})
	if err != nil {
		return "", err
	}
	body, _ := value.(string)
	return body, nil
}

// FetchJSON returns the first candidate body that decodes, even loosely, to
// a JSON document. Bodies that fetch fine but refuse to parse just move the
// chain along.
func (f *Fetcher) FetchJSON(ctx context.Context, sourceURL string) (any, error) {
	value, err, _ := f.flight.Do("json:"+sourceURL, func() (any, error) {
		return f.fetchChain(ctx, sourceURL, func(body string) (any, bool) {
			parsed := parseJSONLoose(body)
			return parsed, parsed != nil
		})
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// fetchChain walks the candidate list until accept keeps a body. Individual
// candidate failures are debug noise; only full exhaustion is an error, and
// only that counts against the circuit breaker.
func (f *Fetcher) fetchChain(ctx context.Context, sourceURL string, accept func(body string) (any, bool)) (any, error) {
	if f.circuitEnabled {
		if err := f.breaker.Allow(); err != nil {
			f.logger.WarnContext(ctx, "olympics circuit breaker rejected request", "url", sourceURL, "state", f.breaker.State())
			return nil, fmt.Errorf("olympics upstream is temporarily unavailable: %w", err)
		}
	}

	candidates := f.candidates(sourceURL)

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("olympics.source_url", sourceURL),
			attribute.Int("olympics.candidate_count", len(candidates)),
		)
	}

	for i, candidate := range candidates {
		body, err := f.fetchOnce(ctx, candidate)
		if err != nil {
			f.logger.DebugContext(ctx, "olympics candidate failed", "url", candidate, "candidate", i+1, "error", err)
			continue
		}
		value, ok := accept(body)
		if !ok {
			f.logger.DebugContext(ctx, "olympics candidate body rejected", "url", candidate, "candidate", i+1)
			continue
		}
		f.recordCircuitResult(nil)
		return value, nil
	}

	callErr := fmt.Errorf("%w: all %d candidates exhausted for %s", errOlympicsTransient, len(candidates), sourceURL)
	f.recordCircuitResult(callErr)
	return nil, callErr
}

func (f *Fetcher) fetchOnce(ctx context.Context, candidateURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, candidateURL, nil)
	if err != nil {
		return "", crerr.Wrap(err, "create request")
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", crerr.Wrap(err, "do request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		return "", crerr.Newf("unexpected status %d", resp.StatusCode)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := io.Copy(buf, io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		return "", crerr.Wrap(err, "read body")
	}
	return buf.String(), nil
}

func (f *Fetcher) recordCircuitResult(err error) {
	if !f.circuitEnabled || f.breaker == nil {
		return
	}
	if err == nil {
		f.breaker.RecordSuccess()
		return
	}
	if stderrors.Is(err, errOlympicsTransient) {
		f.breaker.RecordFailure()
		return
	}
	f.breaker.RecordSuccess()
}
