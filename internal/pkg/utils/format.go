package utils

import (
	"math/big"
	"os"
	"strings"
)

// solDecimals is the number of decimal places in one SOL (lamports per SOL = 1e9).
const solDecimals = 9

// GetEnv returns the value of an environment variable or a default.
func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// FormatLamports converts a lamport amount to a human-readable SOL string.
// Example: 1234500000 => "1.2345". Trailing zeros after the decimal point
// are trimmed.
func FormatLamports(lamports int64) string {
	return FormatUnits(big.NewInt(lamports), solDecimals)
}

// FormatUnits converts a raw integer amount to a decimal string using the
// given number of decimals.
func FormatUnits(amount *big.Int, decimals uint8) string {
	if amount == nil {
		return "0"
	}
	if decimals == 0 {
		return amount.String()
	}

	amountFloat := new(big.Float).SetInt(amount)
	divisor := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	value := new(big.Float).Quo(amountFloat, divisor)

	formatted := value.Text('f', int(decimals))
	if strings.Contains(formatted, ".") {
		formatted = strings.TrimRight(formatted, "0")
		formatted = strings.TrimRight(formatted, ".")
	}
	if strings.HasPrefix(formatted, ".") {
		formatted = "0" + formatted
	}
	if strings.HasPrefix(formatted, "-.") {
		formatted = "-0." + formatted[2:]
	}
	if formatted == "" {
		return "0"
	}
	return formatted
}
