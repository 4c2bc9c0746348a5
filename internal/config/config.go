package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the overall configuration for the application.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Wallet    WalletConfig    `yaml:"wallet"`
	Providers ProvidersConfig `yaml:"providers"`
	Monitor   MonitorConfig   `yaml:"monitor"`
	Cache     CacheConfig     `yaml:"cache"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig holds the server-specific configuration.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout"`
	IdleTimeout  int    `yaml:"idleTimeout"`
}

// WalletConfig names the monitored account. The address is opaque to the
// service and immutable for the process lifetime.
type WalletConfig struct {
	Address string `yaml:"address"`
}

// ProviderConfig holds the configuration for one external data provider.
type ProviderConfig struct {
	BaseURL              string  `yaml:"baseURL"`
	APIKey               string  `yaml:"apiKey"`
	RequestTimeoutMillis int64   `yaml:"requestTimeoutMillis"`
	RateLimit            float64 `yaml:"rateLimit"`
	BurstLimit           int     `yaml:"burstLimit"`
}

// ProvidersConfig groups the third-party data providers. Providers are
// configuration, not logic: swapping a base URL must not change the
// aggregator's contract.
type ProvidersConfig struct {
	Helius    ProviderConfig `yaml:"helius"`
	Solscan   ProviderConfig `yaml:"solscan"`
	MagicEden ProviderConfig `yaml:"magicEden"`
}

// MonitorConfig holds tunables for the monitor pass.
type MonitorConfig struct {
	TransactionLimit int `yaml:"transactionLimit"`
	ProfitWindow     int `yaml:"profitWindow"`
	HistorySize      int `yaml:"historySize"`
}

// CacheConfig holds configuration for the provider envelope cache.
type CacheConfig struct {
	EnvelopeTTLSeconds     int `yaml:"envelopeTTLSeconds"`
	CleanupIntervalMinutes int `yaml:"cleanupIntervalMinutes"`
}

// LoggingConfig holds the configuration for logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
	File  string `yaml:"file"`
}

// LoadConfig loads configuration from a YAML file and applies defaults.
func LoadConfig(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if cfg.Wallet.Address == "" {
		return nil, fmt.Errorf("wallet.address must be set in %s", path)
	}

	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = ":8000"
		logrus.Infof("Server.Port not set, defaulting to %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}

	defaultProvider(&cfg.Providers.Helius, "https://api.helius.xyz", "helius")
	defaultProvider(&cfg.Providers.Solscan, "https://api.solscan.io/api", "solscan")
	defaultProvider(&cfg.Providers.MagicEden, "https://api.magiceden.dev/v2", "magicEden")

	if cfg.Monitor.TransactionLimit == 0 {
		cfg.Monitor.TransactionLimit = 10
		logrus.Infof("Monitor.TransactionLimit not set, defaulting to %d", cfg.Monitor.TransactionLimit)
	}
	if cfg.Monitor.ProfitWindow == 0 {
		cfg.Monitor.ProfitWindow = 5
		logrus.Infof("Monitor.ProfitWindow not set, defaulting to %d", cfg.Monitor.ProfitWindow)
	}
	if cfg.Monitor.HistorySize == 0 {
		cfg.Monitor.HistorySize = 100
		logrus.Infof("Monitor.HistorySize not set, defaulting to %d", cfg.Monitor.HistorySize)
	}

	if cfg.Cache.EnvelopeTTLSeconds == 0 {
		cfg.Cache.EnvelopeTTLSeconds = 30
		logrus.Infof("Cache.EnvelopeTTLSeconds not set, defaulting to %d seconds", cfg.Cache.EnvelopeTTLSeconds)
	}
	if cfg.Cache.CleanupIntervalMinutes == 0 {
		cfg.Cache.CleanupIntervalMinutes = 10
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

func defaultProvider(p *ProviderConfig, baseURL, name string) {
	if p.BaseURL == "" {
		p.BaseURL = baseURL
		logrus.Infof("Providers.%s.BaseURL not set, defaulting to %s", name, baseURL)
	}
	if p.RequestTimeoutMillis == 0 {
		p.RequestTimeoutMillis = 10000 // one-shot calls, 10 second budget
	}
	if p.RateLimit == 0 {
		p.RateLimit = 5
	}
	if p.BurstLimit == 0 {
		p.BurstLimit = 5
	}
}
