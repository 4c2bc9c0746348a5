package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"wallet_monitor/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrRateLimited is returned when a provider answers with HTTP 429. The
// caller decides whether a fallback provider exists for the resource.
var ErrRateLimited = errors.New("provider rate limited")

// getJSON performs a single rate-limited GET against a provider endpoint and
// returns the raw response body. Requests are one-shot: no retry loop, no
// backoff. The fasthttp request/response pair is released on every exit path.
func getJSON(ctx context.Context, c *fasthttp.Client, limiter *rate.Limiter, logger *zap.Logger, provider, resource, requestURL string, timeout time.Duration) ([]byte, error) {
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait for %s: %w", provider, err)
		}
	}

	logger.Debug("Requesting provider endpoint", zap.String("url", requestURL))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetContentTypeBytes([]byte("application/json"))

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.DoDeadline(req, resp, deadline); err != nil {
			metrics.ProviderRequests.WithLabelValues(provider, resource, "error").Inc()
			logger.Error("Failed to execute provider request", zap.String("url", requestURL), zap.Error(err))
			return nil, fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
		}
	} else {
		if err := c.DoTimeout(req, resp, timeout); err != nil {
			metrics.ProviderRequests.WithLabelValues(provider, resource, "error").Inc()
			logger.Error("Failed to execute provider request (with default timeout)", zap.String("url", requestURL), zap.Error(err))
			return nil, fmt.Errorf("failed to execute request to %s with default timeout: %w", requestURL, err)
		}
	}

	rawBody := resp.Body()

	if resp.StatusCode() == fasthttp.StatusTooManyRequests {
		metrics.ProviderRequests.WithLabelValues(provider, resource, "rate_limited").Inc()
		logger.Warn("Provider rate limited request",
			zap.String("provider", provider),
			zap.String("url", requestURL))
		return nil, ErrRateLimited
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		metrics.ProviderRequests.WithLabelValues(provider, resource, "error").Inc()
		logger.Error("Provider API request failed",
			zap.String("url", requestURL),
			zap.Int("statusCode", resp.StatusCode()),
			zap.ByteString("responseBody", rawBody),
		)
		return nil, fmt.Errorf("provider request to %s failed with status %d: %s", requestURL, resp.StatusCode(), string(rawBody))
	}

	metrics.ProviderRequests.WithLabelValues(provider, resource, "success").Inc()

	// fasthttp reuses response buffers after release; hand back a copy.
	body := make([]byte, len(rawBody))
	copy(body, rawBody)
	return body, nil
}
