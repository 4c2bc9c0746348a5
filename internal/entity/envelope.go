package entity

import (
	"encoding/json"
	"time"
)

// Fetch outcome statuses. Wallet operations never surface protocol-level
// errors; degradation is carried in the Status field.
const (
	StatusSuccess = "success"
	StatusPending = "pending"
)

// Provider identifiers reported in envelopes.
const (
	ProviderHelius    = "helius"
	ProviderSolscan   = "solscan"
	ProviderMagicEden = "magiceden"
)

// HeliusBalances is the payload returned by the Helius balances endpoint.
type HeliusBalances struct {
	NativeBalance int64               `json:"nativeBalance"`
	Tokens        []HeliusTokenAmount `json:"tokens"`
}

// HeliusTokenAmount is a single SPL token amount held by the wallet.
type HeliusTokenAmount struct {
	Mint         string `json:"mint"`
	TokenAccount string `json:"tokenAccount"`
	Amount       int64  `json:"amount"`
	Decimals     int    `json:"decimals"`
}

// BalanceEnvelope is the result of a balance fetch. On success it carries the
// primary provider payload (Balance) or the fallback provider payload
// (Account), never both. A pending envelope carries only the wallet address
// and a human-readable message.
type BalanceEnvelope struct {
	Status       string          `json:"status"`
	Wallet       string          `json:"wallet"`
	Source       string          `json:"source,omitempty"`
	Balance      *HeliusBalances `json:"balance,omitempty"`
	Account      json.RawMessage `json:"account,omitempty"`
	FormattedSOL string          `json:"formattedSol,omitempty"`
	Message      string          `json:"message,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}

// TokenEnvelope is the result of a token holdings fetch. Token entries are
// kept raw; no normalization is applied across providers.
type TokenEnvelope struct {
	Status    string            `json:"status"`
	Tokens    []json.RawMessage `json:"tokens,omitempty"`
	Count     int               `json:"count"`
	Message   string            `json:"message,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// NFTEnvelope is the result of an NFT holdings fetch.
type NFTEnvelope struct {
	Status    string            `json:"status"`
	NFTs      []json.RawMessage `json:"nfts,omitempty"`
	Count     int               `json:"count"`
	Message   string            `json:"message,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// TransactionEnvelope is the result of a transaction history fetch.
// Transactions stay unstructured: a record may or may not carry an "amount"
// field, and its type varies by provider.
type TransactionEnvelope struct {
	Status       string           `json:"status"`
	Transactions []map[string]any `json:"transactions,omitempty"`
	Count        int              `json:"count"`
	Message      string           `json:"message,omitempty"`
	Timestamp    time.Time        `json:"timestamp"`
}
