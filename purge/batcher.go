package purge

import (
	"context"

	"github.com/ONSdigital/dp-cache-purge-api/models"
	"github.com/ONSdigital/log.go/v2/log"
)

// MaxPurgePerRequest is the provider's cap on the number of targets accepted
// in a single purge call.
const MaxPurgePerRequest = 500

// purgeTargets submits the target list in contiguous batches of at most
// MaxPurgePerRequest, preserving order. A failed batch is recorded in the
// result and the remaining batches are still submitted; a call error carrying
// no structured detail is recorded the same way, so the result accounts for
// every batch. Requested always holds the full unbatched list.
func (s *Service) purgeTargets(ctx context.Context, targets []string) (*models.PurgeResult, error) {
	requested := make([]string, len(targets))
	copy(requested, targets)

	result := &models.PurgeResult{Requested: requested}

	zoneID := s.ZoneIdentifier()
	for i := 0; i < len(targets); i += MaxPurgePerRequest {
		end := i + MaxPurgePerRequest
		if end > len(targets) {
			end = len(targets)
		}
		batch := targets[i:end]

		response, err := s.client.PurgeFiles(ctx, zoneID, batch)
		if err != nil {
			log.Error(ctx, "purge batch failed", err, log.Data{"batch": i / MaxPurgePerRequest, "batch_size": len(batch)})
			result.Errors = append(result.Errors, models.ErrorDetail{Message: err.Error()})
			continue
		}
		if !response.Success {
			result.Errors = append(result.Errors, response.Errors...)
		}
	}

	return result, nil
}
