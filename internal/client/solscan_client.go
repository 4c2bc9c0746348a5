package client

import (
	"context"
	stdjson "encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"wallet_monitor/internal/config"
	"wallet_monitor/internal/entity"
)

// SolscanClient defines the interface for the Solscan public API. Solscan is
// the fallback balance provider and the primary transaction provider.
type SolscanClient interface {
	GetAccount(ctx context.Context, wallet string) (stdjson.RawMessage, error)
	GetTransactions(ctx context.Context, wallet string, limit int) ([]map[string]any, error)
}

// solscanClientImpl is the implementation of SolscanClient.
type solscanClientImpl struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewSolscanClient creates a new instance of solscanClientImpl.
func NewSolscanClient(cfg config.ProviderConfig, logger *zap.Logger) SolscanClient {
	return &solscanClientImpl{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: time.Duration(cfg.RequestTimeoutMillis) * time.Millisecond,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.BurstLimit),
		logger:  logger.Named("SolscanClient"),
	}
}

// GetAccount implements the SolscanClient interface. The account payload is
// returned raw: the aggregator does not normalize fallback data against the
// primary provider's shape.
func (c *solscanClientImpl) GetAccount(ctx context.Context, wallet string) (stdjson.RawMessage, error) {
	if wallet == "" {
		return nil, fmt.Errorf("wallet address cannot be empty")
	}

	params := url.Values{}
	params.Set("address", wallet)
	requestURL := fmt.Sprintf("%s/account?%s", c.baseURL, params.Encode())

	body, err := getJSON(ctx, c.client, c.limiter, c.logger, entity.ProviderSolscan, "balance", requestURL, c.timeout)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Successfully retrieved account data from Solscan", zap.String("wallet", wallet))
	return stdjson.RawMessage(body), nil
}

// GetTransactions implements the SolscanClient interface. Records are kept as
// unstructured maps; providers disagree on transaction shapes and only the
// optional "amount" field is consumed downstream.
func (c *solscanClientImpl) GetTransactions(ctx context.Context, wallet string, limit int) ([]map[string]any, error) {
	if wallet == "" {
		return nil, fmt.Errorf("wallet address cannot be empty")
	}

	params := url.Values{}
	params.Set("address", wallet)
	params.Set("limit", strconv.Itoa(limit))
	requestURL := fmt.Sprintf("%s/account/transactions?%s", c.baseURL, params.Encode())

	body, err := getJSON(ctx, c.client, c.limiter, c.logger, entity.ProviderSolscan, "transactions", requestURL, c.timeout)
	if err != nil {
		return nil, err
	}

	var transactions []map[string]any
	if err := json.Unmarshal(body, &transactions); err != nil {
		c.logger.Error("Failed to unmarshal Solscan transactions response",
			zap.String("wallet", wallet),
			zap.ByteString("responseBody", body),
			zap.Error(err))
		return nil, fmt.Errorf("failed to unmarshal Solscan transactions response: %w", err)
	}

	c.logger.Debug("Successfully retrieved transactions from Solscan",
		zap.String("wallet", wallet),
		zap.Int("count", len(transactions)))
	return transactions, nil
}
