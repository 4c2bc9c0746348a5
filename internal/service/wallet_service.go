package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wallet_monitor/internal/client"
	"wallet_monitor/internal/config"
	"wallet_monitor/internal/entity"
	"wallet_monitor/internal/pkg/utils"
	"wallet_monitor/pkg/metrics"
)

// Cache keys for successful provider envelopes.
const (
	cacheKeyBalance      = "balance"
	cacheKeyTokens       = "tokens"
	cacheKeyNFTs         = "nfts"
	cacheKeyTransactions = "transactions"
)

// WalletAggregator owns one fixed account identifier and aggregates data
// about it from third-party providers. Fetch operations never return errors:
// every provider failure degrades to a placeholder envelope so callers always
// receive a well-formed shape.
type WalletAggregator interface {
	Monitor(ctx context.Context) *entity.MonitorSnapshot
	WalletValue(ctx context.Context) *entity.ValueEnvelope
	Balance(ctx context.Context) *entity.BalanceEnvelope
	Tokens(ctx context.Context) *entity.TokenEnvelope
	NFTs(ctx context.Context) *entity.NFTEnvelope
	Transactions(ctx context.Context, limit int) *entity.TransactionEnvelope
	TrackProfit() *entity.ProfitReport
	Status() *entity.WalletStatus
	History() []entity.BalanceEnvelope
}

// walletServiceImpl implements the WalletAggregator interface.
type walletServiceImpl struct {
	wallet    string
	helius    client.HeliusClient
	solscan   client.SolscanClient
	magicEden client.MagicEdenClient
	logger    *zap.Logger

	envelopeCache *cache.Cache
	envelopeTTL   time.Duration

	txLimit      int
	profitWindow int
	historySize  int

	// mu serializes profit accumulation and history writes; the service is
	// shared across concurrent requests.
	mu          sync.Mutex
	profit      entity.ProfitState
	history     []entity.BalanceEnvelope
	lastTxCount int
}

// NewWalletService creates a new instance of walletServiceImpl bound to the
// configured account identifier.
func NewWalletService(
	cfg *config.Config,
	helius client.HeliusClient,
	solscan client.SolscanClient,
	magicEden client.MagicEdenClient,
	logger *zap.Logger,
) WalletAggregator {
	ttl := time.Duration(cfg.Cache.EnvelopeTTLSeconds) * time.Second
	cleanup := time.Duration(cfg.Cache.CleanupIntervalMinutes) * time.Minute

	return &walletServiceImpl{
		wallet:        cfg.Wallet.Address,
		helius:        helius,
		solscan:       solscan,
		magicEden:     magicEden,
		logger:        logger.Named("WalletService"),
		envelopeCache: cache.New(ttl, cleanup),
		envelopeTTL:   ttl,
		txLimit:       cfg.Monitor.TransactionLimit,
		profitWindow:  cfg.Monitor.ProfitWindow,
		historySize:   cfg.Monitor.HistorySize,
	}
}

// Balance fetches the wallet balance from the primary provider, consulting
// the fallback provider on rate limiting or any other failure. Both
// exhausted, it returns a pending placeholder, never an error.
func (s *walletServiceImpl) Balance(ctx context.Context) *entity.BalanceEnvelope {
	if v, ok := s.envelopeCache.Get(cacheKeyBalance); ok {
		if env, ok := v.(entity.BalanceEnvelope); ok {
			return &env
		}
	}

	balances, err := s.helius.GetBalances(ctx, s.wallet)
	if err == nil {
		env := entity.BalanceEnvelope{
			Status:       entity.StatusSuccess,
			Wallet:       s.wallet,
			Source:       entity.ProviderHelius,
			Balance:      balances,
			FormattedSOL: utils.FormatLamports(balances.NativeBalance),
			Timestamp:    time.Now().UTC(),
		}
		s.envelopeCache.Set(cacheKeyBalance, env, cache.DefaultExpiration)
		s.logger.Info("Retrieved wallet balance from primary provider",
			zap.String("wallet", s.wallet),
			zap.Int64("lamports", balances.NativeBalance))
		return &env
	}

	if errors.Is(err, client.ErrRateLimited) {
		s.logger.Warn("Primary balance provider rate limited, using fallback", zap.String("wallet", s.wallet))
	} else {
		s.logger.Error("Error fetching wallet balance, using fallback", zap.String("wallet", s.wallet), zap.Error(err))
	}

	account, ferr := s.solscan.GetAccount(ctx, s.wallet)
	if ferr == nil {
		metrics.FallbackAttempts.WithLabelValues("balance", "success").Inc()
		env := entity.BalanceEnvelope{
			Status:    entity.StatusSuccess,
			Wallet:    s.wallet,
			Source:    entity.ProviderSolscan,
			Account:   account,
			Timestamp: time.Now().UTC(),
		}
		s.envelopeCache.Set(cacheKeyBalance, env, cache.DefaultExpiration)
		s.logger.Info("Retrieved wallet balance from fallback provider", zap.String("wallet", s.wallet))
		return &env
	}

	metrics.FallbackAttempts.WithLabelValues("balance", "error").Inc()
	s.logger.Error("Fallback balance fetch failed", zap.String("wallet", s.wallet), zap.Error(ferr))
	return &entity.BalanceEnvelope{
		Status:    entity.StatusPending,
		Wallet:    s.wallet,
		Message:   "Wallet monitoring active",
		Timestamp: time.Now().UTC(),
	}
}

// Tokens fetches the wallet's token holdings. The resource has no fallback
// provider; failure degrades directly to a pending placeholder.
func (s *walletServiceImpl) Tokens(ctx context.Context) *entity.TokenEnvelope {
	if v, ok := s.envelopeCache.Get(cacheKeyTokens); ok {
		if env, ok := v.(entity.TokenEnvelope); ok {
			return &env
		}
	}

	tokens, err := s.magicEden.GetWalletTokens(ctx, s.wallet)
	if err != nil {
		s.logger.Error("Error fetching token balances", zap.String("wallet", s.wallet), zap.Error(err))
		return &entity.TokenEnvelope{
			Status:    entity.StatusPending,
			Message:   "Token monitoring active",
			Timestamp: time.Now().UTC(),
		}
	}

	env := entity.TokenEnvelope{
		Status:    entity.StatusSuccess,
		Tokens:    tokens,
		Count:     len(tokens),
		Timestamp: time.Now().UTC(),
	}
	s.envelopeCache.Set(cacheKeyTokens, env, cache.DefaultExpiration)
	s.logger.Info("Retrieved token balances", zap.String("wallet", s.wallet), zap.Int("count", len(tokens)))
	return &env
}

// NFTs fetches the wallet's NFT holdings. No fallback provider.
func (s *walletServiceImpl) NFTs(ctx context.Context) *entity.NFTEnvelope {
	if v, ok := s.envelopeCache.Get(cacheKeyNFTs); ok {
		if env, ok := v.(entity.NFTEnvelope); ok {
			return &env
		}
	}

	nfts, err := s.magicEden.GetWalletNFTs(ctx, s.wallet)
	if err != nil {
		s.logger.Error("Error fetching NFTs", zap.String("wallet", s.wallet), zap.Error(err))
		return &entity.NFTEnvelope{
			Status:    entity.StatusPending,
			Message:   "NFT monitoring active",
			Timestamp: time.Now().UTC(),
		}
	}

	env := entity.NFTEnvelope{
		Status:    entity.StatusSuccess,
		NFTs:      nfts,
		Count:     len(nfts),
		Timestamp: time.Now().UTC(),
	}
	s.envelopeCache.Set(cacheKeyNFTs, env, cache.DefaultExpiration)
	s.logger.Info("Retrieved NFTs", zap.String("wallet", s.wallet), zap.Int("count", len(nfts)))
	return &env
}

// Transactions fetches the wallet's recent transaction history. No fallback
// provider.
func (s *walletServiceImpl) Transactions(ctx context.Context, limit int) *entity.TransactionEnvelope {
	key := cacheKeyTransactions + ":" + strconv.Itoa(limit)
	if v, ok := s.envelopeCache.Get(key); ok {
		if env, ok := v.(entity.TransactionEnvelope); ok {
			return &env
		}
	}

	transactions, err := s.solscan.GetTransactions(ctx, s.wallet, limit)
	if err != nil {
		s.logger.Error("Error fetching transactions", zap.String("wallet", s.wallet), zap.Error(err))
		return &entity.TransactionEnvelope{
			Status:    entity.StatusPending,
			Message:   "Transaction monitoring active",
			Timestamp: time.Now().UTC(),
		}
	}

	env := entity.TransactionEnvelope{
		Status:       entity.StatusSuccess,
		Transactions: transactions,
		Count:        len(transactions),
		Timestamp:    time.Now().UTC(),
	}
	s.envelopeCache.Set(key, env, cache.DefaultExpiration)
	s.logger.Info("Retrieved transactions", zap.String("wallet", s.wallet), zap.Int("count", len(transactions)))
	return &env
}

// Monitor performs one monitoring pass: balance, tokens and recent
// transactions are fetched concurrently, a profit delta is derived from the
// transaction batch, and the profit state is updated. The pass is total: a
// failure in any fetch degrades to a placeholder and never aborts the others
// or the pass itself. The session counter increments unconditionally.
func (s *walletServiceImpl) Monitor(ctx context.Context) *entity.MonitorSnapshot {
	s.logger.Info("Monitoring wallet for activity", zap.String("wallet", s.wallet))

	var (
		balance      *entity.BalanceEnvelope
		tokens       *entity.TokenEnvelope
		transactions *entity.TransactionEnvelope
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { balance = s.Balance(gctx); return nil })
	g.Go(func() error { tokens = s.Tokens(gctx); return nil })
	g.Go(func() error { transactions = s.Transactions(gctx, s.txLimit); return nil })
	_ = g.Wait() // goroutines never return errors; failures degrade in place

	delta := profitDelta(transactions.Transactions, s.profitWindow)

	s.mu.Lock()
	s.profit.LastProfit = delta
	s.profit.TotalProfit += delta
	s.profit.Sessions++
	s.profit.UpdatedAt = time.Now().UTC()
	profit := s.profit
	s.lastTxCount = transactions.Count
	s.appendHistoryLocked(*balance)
	s.mu.Unlock()

	metrics.MonitorSessions.Inc()
	metrics.TotalProfit.Set(profit.TotalProfit)

	s.logger.Info("Wallet monitoring complete",
		zap.String("balanceStatus", balance.Status),
		zap.Int("tokens", tokens.Count),
		zap.Int("recentTransactions", transactions.Count),
		zap.Float64("profitDelta", delta))

	return &entity.MonitorSnapshot{
		Status:       entity.StatusSuccess,
		Wallet:       s.wallet,
		Balance:      *balance,
		Tokens:       *tokens,
		Transactions: *transactions,
		Profit:       profit,
		Timestamp:    time.Now().UTC(),
	}
}

// WalletValue rolls up token holdings, NFT holdings and balance into a value
// summary. The monetary fields are placeholders fixed at zero; no pricing
// source is integrated. Only the NFT count is populated from live data.
func (s *walletServiceImpl) WalletValue(ctx context.Context) *entity.ValueEnvelope {
	s.logger.Info("Calculating wallet value", zap.String("wallet", s.wallet))

	var (
		tokens *entity.TokenEnvelope
		nfts   *entity.NFTEnvelope
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { tokens = s.Tokens(gctx); return nil })
	g.Go(func() error { nfts = s.NFTs(gctx); return nil })
	g.Go(func() error { s.Balance(gctx); return nil })
	_ = g.Wait()

	s.logger.Info("Wallet value calculated",
		zap.Int("tokens", tokens.Count),
		zap.Int("nfts", nfts.Count))

	return &entity.ValueEnvelope{
		Status: entity.StatusSuccess,
		Wallet: s.wallet,
		Value: entity.ValueSummary{
			SolBalance:    0.0,
			TokenValue:    0.0,
			NFTCount:      nfts.Count,
			TotalUSDValue: 0.0,
			Timestamp:     time.Now().UTC(),
		},
		Timestamp: time.Now().UTC(),
	}
}

// TrackProfit reports the accumulated profit state.
func (s *walletServiceImpl) TrackProfit() *entity.ProfitReport {
	s.mu.Lock()
	profit := s.profit
	s.mu.Unlock()

	sessions := profit.Sessions
	if sessions < 1 {
		sessions = 1
	}

	return &entity.ProfitReport{
		Status:                  entity.StatusSuccess,
		Profit:                  profit,
		TotalProfit:             profit.TotalProfit,
		AverageProfitPerSession: profit.TotalProfit / float64(sessions),
		Sessions:                profit.Sessions,
		Timestamp:               time.Now().UTC(),
	}
}

// Status reports the aggregator's in-memory state.
func (s *walletServiceImpl) Status() *entity.WalletStatus {
	s.mu.Lock()
	profit := s.profit
	txCount := s.lastTxCount
	historySize := len(s.history)
	s.mu.Unlock()

	return &entity.WalletStatus{
		Wallet:             s.wallet,
		Profit:             profit,
		TransactionCount:   txCount,
		BalanceHistorySize: historySize,
		Status:             "active",
		Timestamp:          time.Now().UTC(),
	}
}

// History returns the balance history ring buffer, oldest first.
func (s *walletServiceImpl) History() []entity.BalanceEnvelope {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.BalanceEnvelope, len(s.history))
	copy(out, s.history)
	return out
}

// appendHistoryLocked appends a balance envelope to the bounded history,
// dropping the oldest entry at capacity. Callers must hold s.mu.
func (s *walletServiceImpl) appendHistoryLocked(env entity.BalanceEnvelope) {
	if s.historySize <= 0 {
		return
	}
	if len(s.history) >= s.historySize {
		s.history = s.history[1:]
	}
	s.history = append(s.history, env)
}

// profitDelta sums the numeric-coercible "amount" fields over the first
// `window` transactions. Entries without an amount, or with one that cannot
// be coerced, are skipped without aborting the loop.
func profitDelta(transactions []map[string]any, window int) float64 {
	delta := 0.0
	for i, tx := range transactions {
		if i >= window {
			break
		}
		raw, ok := tx["amount"]
		if !ok {
			continue
		}
		if amount, ok := coerceAmount(raw); ok {
			delta += amount
		}
	}
	return delta
}

// coerceAmount converts a raw transaction amount to a float64. Providers
// emit numbers, numeric strings or integers depending on the record type.
func coerceAmount(v any) (float64, bool) {
	switch a := v.(type) {
	case float64:
		return a, true
	case float32:
		return float64(a), true
	case int:
		return float64(a), true
	case int64:
		return float64(a), true
	case string:
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
