package middlewares

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// LoggingTransport returns an http.RoundTripper that logs outgoing requests and
// their responses using the provided SugaredLogger. Each request gets a unique
// X-Request-ID header. Every occurrence of a secret in the logged URL is masked.
func LoggingTransport(log *zap.SugaredLogger, next http.RoundTripper, secrets ...string) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{log: log, next: next, secrets: secrets}
}

type loggingTransport struct {
	log     *zap.SugaredLogger
	next    http.RoundTripper
	secrets []string
}

func (t *loggingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	reqID := uuid.New().String()

	// RoundTrippers must not modify the caller's request.
	r = r.Clone(r.Context())
	r.Header.Set(requestIDHeader, reqID)

	uri := t.mask(r.URL.String())
	t.log.Infow("request",
		"request_id", reqID,
		"method", r.Method,
		"uri", uri,
	)

	start := time.Now()
	resp, err := t.next.RoundTrip(r)
	duration := time.Since(start)

	if err != nil {
		t.log.Errorw("request failed",
			"request_id", reqID,
			"uri", uri,
			"duration", duration,
			"error", t.mask(err.Error()),
		)
		return nil, err
	}

	t.log.Infow("response",
		"request_id", reqID,
		"status", resp.StatusCode,
		"response_size", strconv.FormatInt(resp.ContentLength, 10)+"B",
		"duration", duration,
	)
	return resp, nil
}

func (t *loggingTransport) mask(s string) string {
	return maskSecrets(s, t.secrets)
}

func maskSecrets(s string, secrets []string) string {
	for _, secret := range secrets {
		if secret != "" {
			s = strings.ReplaceAll(s, secret, "***")
		}
	}
	return s
}
