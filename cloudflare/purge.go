package cloudflare

import (
	"context"
	"errors"

	"github.com/ONSdigital/dp-cache-purge-api/models"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/cloudflare/cloudflare-go/v6"
	"github.com/cloudflare/cloudflare-go/v6/cache"
)

// PurgeZone evicts every cached object in the given zone with a single
// purge_everything call
func (c *Client) PurgeZone(ctx context.Context, zoneID string) (*models.PurgeResponse, error) {
	log.Info(ctx, "purging entire cloudflare zone", log.Data{"zone_id": zoneID})

	params := cache.CachePurgeParams{
		ZoneID: cloudflare.F(zoneID),
		Body: cache.CachePurgeParamsBody{
			PurgeEverything: cloudflare.F(true),
		},
	}

	if _, err := c.CacheService.Purge(ctx, params); err != nil {
		return purgeResponseForError(err)
	}

	return &models.PurgeResponse{Success: true}, nil
}

// PurgeFiles evicts the given URLs from the zone's cache in a single call.
// Callers are responsible for keeping the list within the per-request cap.
func (c *Client) PurgeFiles(ctx context.Context, zoneID string, urls []string) (*models.PurgeResponse, error) {
	log.Info(ctx, "purging cloudflare files", log.Data{"zone_id": zoneID, "url_count": len(urls)})

	params := cache.CachePurgeParams{
		ZoneID: cloudflare.F(zoneID),
		Body: cache.CachePurgeParamsBody{
			Files: cloudflare.F[any](urls),
		},
	}

	if _, err := c.CacheService.Purge(ctx, params); err != nil {
		return purgeResponseForError(err)
	}

	return &models.PurgeResponse{Success: true}, nil
}

// purgeResponseForError maps a Cloudflare API error carrying a structured
// error list onto a failed PurgeResponse. API errors without a structured
// list, and transport errors, are returned unchanged for the caller to treat
// as fatal.
func purgeResponseForError(err error) (*models.PurgeResponse, error) {
	var apiErr *cloudflare.Error
	if !errors.As(err, &apiErr) || len(apiErr.Errors) == 0 {
		return nil, err
	}

	response := &models.PurgeResponse{Success: false}
	for _, responseInfo := range apiErr.Errors {
		response.Errors = append(response.Errors, models.ErrorDetail{
			Code:    responseInfo.Code,
			Message: responseInfo.Message,
		})
	}

	return response, nil
}
