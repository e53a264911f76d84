package store

import (
	"context"

	"github.com/ONSdigital/dp-cache-purge-api/models"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
)

// DataStore provides a datastore.Storer interface used to store, retrieve or update purges
type DataStore struct {
	Backend Storer
}

//go:generate moq -out datastoretest/mongo.go -pkg storetest . MongoDB
//go:generate moq -out datastoretest/datastore.go -pkg storetest . Storer

type dataMongoDB interface {
	GetFilesWithExtensions(ctx context.Context, extensions []string) ([]models.StoredFile, error)
	GetPurge(ctx context.Context, id string) (*models.Purge, error)
	GetPurges(ctx context.Context, offset, limit int, purgeTypes []string) ([]*models.Purge, int, error)
	UpsertPurge(ctx context.Context, purge *models.Purge) error
}

// MongoDB represents all the required methods from mongo DB
type MongoDB interface {
	dataMongoDB
	Close(context.Context) error
	Checker(context.Context, *healthcheck.CheckState) error
}

// Storer represents basic data access via Get and Upsert methods, abstracting it from mongoDB
type Storer interface {
	dataMongoDB
}
