package entity

import "time"

// ProfitState is the process-lifetime profit accumulator. It is never
// persisted and resets to zero on restart. Amounts come straight from
// observed transaction "amount" fields with no sign convention, so the total
// can legitimately go negative.
type ProfitState struct {
	TotalProfit float64   `json:"total_profit"`
	LastProfit  float64   `json:"last_profit"`
	Sessions    int64     `json:"sessions"`
	UpdatedAt   time.Time `json:"timestamp"`
}

// MonitorSnapshot is the composite output of a monitor pass. Status is always
// "success": every internal fetch failure degrades to a placeholder envelope
// rather than propagating.
type MonitorSnapshot struct {
	Status       string              `json:"status"`
	Wallet       string              `json:"wallet"`
	Balance      BalanceEnvelope     `json:"balance"`
	Tokens       TokenEnvelope       `json:"tokens"`
	Transactions TransactionEnvelope `json:"transactions"`
	Profit       ProfitState         `json:"profit_tracking"`
	Timestamp    time.Time           `json:"timestamp"`
}

// ValueSummary is the wallet value roll-up. The monetary fields are fixed at
// zero: no price-oracle integration exists, only the NFT count is real.
type ValueSummary struct {
	SolBalance    float64   `json:"sol_balance"`
	TokenValue    float64   `json:"token_value"`
	NFTCount      int       `json:"nft_count"`
	TotalUSDValue float64   `json:"total_usd_value"`
	Timestamp     time.Time `json:"timestamp"`
}

// ValueEnvelope wraps a ValueSummary with the account identifier.
type ValueEnvelope struct {
	Status    string       `json:"status"`
	Wallet    string       `json:"wallet"`
	Value     ValueSummary `json:"value"`
	Timestamp time.Time    `json:"timestamp"`
}

// ProfitReport is the profit-tracking view returned to callers.
type ProfitReport struct {
	Status                  string      `json:"status"`
	Profit                  ProfitState `json:"profit_tracking"`
	TotalProfit             float64     `json:"total_profit"`
	AverageProfitPerSession float64     `json:"average_profit_per_session"`
	Sessions                int64       `json:"sessions"`
	Timestamp               time.Time   `json:"timestamp"`
}

// WalletStatus summarizes the aggregator's in-memory state.
type WalletStatus struct {
	Wallet             string      `json:"wallet_address"`
	Profit             ProfitState `json:"profit_tracking"`
	TransactionCount   int         `json:"transaction_count"`
	BalanceHistorySize int         `json:"balance_history_size"`
	Status             string      `json:"status"`
	Timestamp          time.Time   `json:"timestamp"`
}
