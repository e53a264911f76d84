package cloudflare

import (
	"context"

	"github.com/ONSdigital/dp-cache-purge-api/models"
	"github.com/cloudflare/cloudflare-go/v6/cache"
	"github.com/cloudflare/cloudflare-go/v6/option"
)

//go:generate moq -out mocks/client.go -pkg mocks . Clienter
//go:generate moq -out mocks/cache_service.go -pkg mocks . CacheService

// Clienter defines the interface for Cloudflare cache purge operations
type Clienter interface {
	PurgeZone(ctx context.Context, zoneID string) (*models.PurgeResponse, error)
	PurgeFiles(ctx context.Context, zoneID string, urls []string) (*models.PurgeResponse, error)
}

// CacheService defines the interface for Cloudflare cache service operations
type CacheService interface {
	Purge(ctx context.Context, params cache.CachePurgeParams, opts ...option.RequestOption) (*cache.CachePurgeResponse, error)
}
