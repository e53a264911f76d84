package mongo

import (
	"context"
	"errors"
	"time"

	errs "github.com/ONSdigital/dp-cache-purge-api/apierrors"
	"github.com/ONSdigital/dp-cache-purge-api/config"
	"github.com/ONSdigital/dp-cache-purge-api/models"
	"go.mongodb.org/mongo-driver/bson"

	mongodriver "github.com/ONSdigital/dp-mongodb/v3/mongodb"
)

// GetPurge retrieves a purge document by its id
func (m *Mongo) GetPurge(ctx context.Context, id string) (*models.Purge, error) {
	var purge models.Purge
	err := m.Connection.Collection(m.ActualCollectionName(config.PurgesCollection)).
		FindOne(ctx, bson.M{"_id": id}, &purge)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocumentFound) {
			return nil, errs.ErrPurgeNotFound
		}
		return nil, err
	}

	return &purge, nil
}

// GetPurges retrieves all purge documents, most recent first, filtered by type
// when purgeTypes is non empty
func (m *Mongo) GetPurges(ctx context.Context, offset, limit int, purgeTypes []string) ([]*models.Purge, int, error) {
	filter := buildPurgesQuery(purgeTypes)

	purges := []*models.Purge{}
	totalCount, err := m.Connection.Collection(m.ActualCollectionName(config.PurgesCollection)).
		Find(ctx, filter, &purges,
			mongodriver.Sort(bson.M{"last_updated": -1}),
			mongodriver.Offset(offset),
			mongodriver.Limit(limit))
	if err != nil {
		return nil, 0, err
	}

	return purges, totalCount, nil
}

// UpsertPurge adds or overrides an existing purge document and updates its last updated time
func (m *Mongo) UpsertPurge(ctx context.Context, purge *models.Purge) error {
	purge.LastUpdated = time.Now().UTC()

	update := bson.M{"$set": purge}

	_, err := m.Connection.Collection(m.ActualCollectionName(config.PurgesCollection)).
		UpsertById(ctx, purge.ID, update)

	return err
}

func buildPurgesQuery(purgeTypes []string) bson.M {
	filter := bson.M{}
	if len(purgeTypes) > 0 {
		filter["type"] = bson.M{"$in": purgeTypes}
	}

	return filter
}
