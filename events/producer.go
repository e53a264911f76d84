package events

import (
	"context"

	"github.com/ONSdigital/dp-cache-purge-api/models"
	kafka "github.com/ONSdigital/dp-kafka/v4"
	"github.com/ONSdigital/log.go/v2/log"
)

// CachePurgedProducer announces executed purge operations to the rest of the
// platform, so downstream services can refresh anything they derived from the
// purged content.
type CachePurgedProducer struct {
	Producer   KafkaProducer
	Marshaller Marshaller
}

// PurgeCompleted sends a cache purged event for the given purge record
func (p *CachePurgedProducer) PurgeCompleted(ctx context.Context, purge *models.Purge) error {
	if purge == nil {
		return purgeNilErr
	}
	if purge.ID == "" {
		return purgeIDEmptyErr
	}

	event := CachePurged{
		PurgeID:        purge.ID,
		PurgeType:      purge.Type,
		RequestedCount: int32(purge.RequestedCount),
		ErrorCount:     int32(len(purge.Errors)),
	}

	log.Info(ctx, "sending cache purged event", log.Data{
		"purge_id":        purge.ID,
		"purge_type":      purge.Type,
		"requested_count": purge.RequestedCount,
		"error_count":     len(purge.Errors),
	})

	avroBytes, err := p.Marshaller.Marshal(event)
	if err != nil {
		return newProducerError(err, avroMarshalErr)
	}

	p.Producer.Output() <- kafka.BytesMessage{Value: avroBytes, Context: ctx}

	return nil
}
