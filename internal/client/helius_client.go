package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"wallet_monitor/internal/config"
	"wallet_monitor/internal/entity"
)

// HeliusClient defines the interface for the Helius balances API. Helius is
// the primary balance provider.
type HeliusClient interface {
	GetBalances(ctx context.Context, wallet string) (*entity.HeliusBalances, error)
}

// heliusClientImpl is the implementation of HeliusClient.
type heliusClientImpl struct {
	client  *fasthttp.Client
	baseURL string
	apiKey  string
	timeout time.Duration
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewHeliusClient creates a new instance of heliusClientImpl.
func NewHeliusClient(cfg config.ProviderConfig, logger *zap.Logger) HeliusClient {
	return &heliusClientImpl{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		timeout: time.Duration(cfg.RequestTimeoutMillis) * time.Millisecond,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.BurstLimit),
		logger:  logger.Named("HeliusClient"),
	}
}

// GetBalances implements the HeliusClient interface.
func (c *heliusClientImpl) GetBalances(ctx context.Context, wallet string) (*entity.HeliusBalances, error) {
	if wallet == "" {
		return nil, fmt.Errorf("wallet address cannot be empty")
	}

	requestURL := fmt.Sprintf("%s/v0/addresses/%s/balances", c.baseURL, wallet)
	if c.apiKey != "" {
		requestURL = fmt.Sprintf("%s?api-key=%s", requestURL, c.apiKey)
	}

	body, err := getJSON(ctx, c.client, c.limiter, c.logger, entity.ProviderHelius, "balance", requestURL, c.timeout)
	if err != nil {
		return nil, err
	}

	var balances entity.HeliusBalances
	if err := json.Unmarshal(body, &balances); err != nil {
		c.logger.Error("Failed to unmarshal Helius balances response",
			zap.String("wallet", wallet),
			zap.ByteString("responseBody", body),
			zap.Error(err))
		return nil, fmt.Errorf("failed to unmarshal Helius balances response: %w", err)
	}

	c.logger.Debug("Successfully retrieved wallet balances from Helius",
		zap.String("wallet", wallet),
		zap.Int64("nativeBalance", balances.NativeBalance),
		zap.Int("tokenCount", len(balances.Tokens)))
	return &balances, nil
}
