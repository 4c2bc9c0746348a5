package client

import (
	"context"
	stdjson "encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"wallet_monitor/internal/config"
	"wallet_monitor/internal/entity"
)

// MagicEdenClient defines the interface for the Magic Eden wallet API, the
// provider for token and NFT holdings. Neither resource has a fallback.
type MagicEdenClient interface {
	GetWalletTokens(ctx context.Context, wallet string) ([]stdjson.RawMessage, error)
	GetWalletNFTs(ctx context.Context, wallet string) ([]stdjson.RawMessage, error)
}

// magicEdenClientImpl is the implementation of MagicEdenClient.
type magicEdenClientImpl struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewMagicEdenClient creates a new instance of magicEdenClientImpl.
func NewMagicEdenClient(cfg config.ProviderConfig, logger *zap.Logger) MagicEdenClient {
	return &magicEdenClientImpl{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: time.Duration(cfg.RequestTimeoutMillis) * time.Millisecond,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.BurstLimit),
		logger:  logger.Named("MagicEdenClient"),
	}
}

// GetWalletTokens implements the MagicEdenClient interface. Entries are kept
// raw; the aggregator only reports counts and passes payloads through.
func (c *magicEdenClientImpl) GetWalletTokens(ctx context.Context, wallet string) ([]stdjson.RawMessage, error) {
	return c.getWalletCollection(ctx, wallet, "tokens")
}

// GetWalletNFTs implements the MagicEdenClient interface.
func (c *magicEdenClientImpl) GetWalletNFTs(ctx context.Context, wallet string) ([]stdjson.RawMessage, error) {
	return c.getWalletCollection(ctx, wallet, "nfts")
}

func (c *magicEdenClientImpl) getWalletCollection(ctx context.Context, wallet, resource string) ([]stdjson.RawMessage, error) {
	if wallet == "" {
		return nil, fmt.Errorf("wallet address cannot be empty")
	}

	requestURL := fmt.Sprintf("%s/wallets/%s/%s", c.baseURL, wallet, resource)

	body, err := getJSON(ctx, c.client, c.limiter, c.logger, entity.ProviderMagicEden, resource, requestURL, c.timeout)
	if err != nil {
		return nil, err
	}

	var items []stdjson.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		c.logger.Error("Failed to unmarshal Magic Eden wallet response",
			zap.String("wallet", wallet),
			zap.String("resource", resource),
			zap.ByteString("responseBody", body),
			zap.Error(err))
		return nil, fmt.Errorf("failed to unmarshal Magic Eden %s response: %w", resource, err)
	}

	c.logger.Debug("Successfully retrieved wallet collection from Magic Eden",
		zap.String("wallet", wallet),
		zap.String("resource", resource),
		zap.Int("count", len(items)))
	return items, nil
}
