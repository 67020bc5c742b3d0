package app

import (
	"net/http"

	"go.uber.org/zap"

	"xorcrack/internal/crack"
	"xorcrack/internal/domain"
	"xorcrack/internal/remote"
	"xorcrack/internal/services/recovery"
)

// Wire bundles the services and clients for the CLI and server.
type Wire struct {
	Config  *Config
	Logger  *zap.Logger
	Breaker *crack.Breaker
	Crack   domain.CrackService
	Remote  domain.RemoteCracker // nil unless Config.Server.URL is set
	HTTP    *http.Client
}

// NewWire constructs the dependency graph from cfg. A nil logger logs nothing.
func NewWire(cfg *Config, logger *zap.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	breaker := &crack.Breaker{Keys: cfg.KeyRange(), Scorer: cfg.Scorer()}
	svc := recovery.New(breaker, cfg.Batch.Workers, cfg.Search.Top, logger.Named("recovery"))

	timeout, _ := cfg.ServerTimeout()
	httpClient := &http.Client{Timeout: timeout}

	w := &Wire{
		Config:  cfg,
		Logger:  logger,
		Breaker: breaker,
		Crack:   svc,
		HTTP:    httpClient,
	}
	if cfg.Server.URL != "" {
		w.Remote = remote.NewHTTP(cfg.Server.URL, httpClient)
	}
	return w, nil
}
