package cloudflare

import (
	"errors"

	"github.com/cloudflare/cloudflare-go/v6"
	"github.com/cloudflare/cloudflare-go/v6/option"
)

// Client wraps the Cloudflare cache API
type Client struct {
	CacheService CacheService
}

// New creates a new Cloudflare client from the given config, failing fast if
// the base URL, credentials or zone identifier are missing
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("configuration cannot be nil")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if cfg.APIToken == "" && (cfg.Email == "" || cfg.AuthKey == "") {
		return nil, errors.New("API credentials are required")
	}
	if cfg.ZoneID == "" {
		return nil, errors.New("zone ID is required")
	}

	opts := []option.RequestOption{option.WithBaseURL(cfg.BaseURL)}
	if cfg.APIToken != "" {
		opts = append(opts, option.WithAPIToken(cfg.APIToken))
	} else {
		opts = append(opts, option.WithAPIEmail(cfg.Email), option.WithAPIKey(cfg.AuthKey))
	}

	api := cloudflare.NewClient(opts...)

	return &Client{
		CacheService: api.Cache,
	}, nil
}
