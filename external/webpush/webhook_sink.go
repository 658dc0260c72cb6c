package webpush

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/oranjelive/medaltracker/internal/domain/notification"
	"github.com/oranjelive/medaltracker/internal/platform/logging"
	"github.com/oranjelive/medaltracker/internal/platform/resilience"
)

var errWebhookTransient = crerr.New("notification webhook transient failure")

type WebhookSinkConfig struct {
	WebhookURL     string
	Token          string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// WebhookSink delivers notifications to an external push webhook. A sink
// without a webhook URL reports every message as not sent, which keeps
// dedupe markers unwritten so a later configured deploy can still deliver.
type WebhookSink struct {
	client         *http.Client
	webhookURL     string
	token          string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewWebhookSink(cfg WebhookSinkConfig, logger *logging.Logger) *WebhookSink {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &WebhookSink{
		client:         &http.Client{Timeout: timeout},
		webhookURL:     strings.TrimSpace(cfg.WebhookURL),
		token:          strings.TrimSpace(cfg.Token),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type webhookPayload struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	DedupeKey string `json:"dedupeKey"`
}

func (s *WebhookSink) Notify(ctx context.Context, msg notification.Message) (bool, error) {
	if s.webhookURL == "" {
		s.logger.DebugContext(ctx, "notification webhook not configured, dropping message", "dedupe_key", msg.DedupeKey)
		return false, nil
	}
	if s.circuitEnabled {
		if err := s.breaker.Allow(); err != nil {
			s.logger.WarnContext(ctx, "notification webhook circuit breaker rejected request", "state", s.breaker.State())
			return false, fmt.Errorf("notification webhook is temporarily unavailable: %w", err)
		}
	}

	webhookURL, err := validateHTTPURL(s.webhookURL)
	if err != nil {
		return false, crerr.Wrap(err, "invalid NOTIFY_WEBHOOK_URL")
	}

	body, err := sonic.Marshal(webhookPayload{
		Title:     msg.Title,
		Body:      msg.Body,
		DedupeKey: msg.DedupeKey,
	})
	if err != nil {
		return false, crerr.Wrap(err, "marshal notification payload")
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("webpush.webhook_url", webhookURL),
			attribute.String("webpush.dedupe_key", msg.DedupeKey),
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, strings.NewReader(string(body)))
	if err != nil {
		return false, crerr.Wrap(err, "create notification request")
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	if msg.DedupeKey != "" {
		req.Header.Set("X-Deduplication-Id", msg.DedupeKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		callErr := fmt.Errorf("%w: post notification webhook_url=%s: %v", errWebhookTransient, webhookURL, err)
		s.recordCircuitResult(callErr)
		return false, callErr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		callErr := fmt.Errorf(
			"%w: post notification status=%d webhook_url=%s body=%s",
			errWebhookTransient,
			resp.StatusCode,
			webhookURL,
			strings.TrimSpace(string(raw)),
		)
		s.recordCircuitResult(callErr)
		return false, callErr
	}

	s.logger.InfoContext(ctx, "notification delivered", "dedupe_key", msg.DedupeKey)
	s.recordCircuitResult(nil)
	return true, nil
}

func validateHTTPURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return candidate, nil
}

func (s *WebhookSink) recordCircuitResult(err error) {
	if !s.circuitEnabled || s.breaker == nil {
		return
	}
	if err == nil {
		s.breaker.RecordSuccess()
		return
	}
	if stderrors.Is(err, errWebhookTransient) {
		s.breaker.RecordFailure()
		return
	}
	s.breaker.RecordSuccess()
}
