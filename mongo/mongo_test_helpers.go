package mongo

import (
	"context"
	"time"

	"github.com/ONSdigital/dp-cache-purge-api/config"
	"github.com/ONSdigital/dp-cache-purge-api/models"
	mim "github.com/ONSdigital/dp-mongodb-in-memory"
	mongoDriver "github.com/ONSdigital/dp-mongodb/v3/mongodb"
)

// getTestMongoDB initializes a MongoDB connection for use in tests
func getTestMongoDB(ctx context.Context) (*Mongo, *mim.Server, error) {
	mongoVersion := "4.4.8"

	cfg, err := config.Get()
	if err != nil {
		return nil, nil, err
	}

	mongoServer, err := mim.Start(ctx, mongoVersion)
	if err != nil {
		return nil, nil, err
	}
	mongoConfig := getTestMongoDriverConfig(mongoServer, cfg.Database, cfg.Collections)
	conn, err := mongoDriver.Open(mongoConfig)
	if err != nil {
		return nil, nil, err
	}

	return &Mongo{
		MongoConfig: cfg.MongoConfig,
		Connection:  conn,
	}, mongoServer, nil
}

// Custom config to work with mongo in memory
func getTestMongoDriverConfig(mongoServer *mim.Server, database string, collections map[string]string) *mongoDriver.MongoDriverConfig {
	return &mongoDriver.MongoDriverConfig{
		ConnectTimeout:  5 * time.Second,
		QueryTimeout:    5 * time.Second,
		ClusterEndpoint: mongoServer.URI(),
		Database:        database,
		Collections:     collections,
	}
}

func setupPurgesTestData(ctx context.Context, mongoStore *Mongo) ([]*models.Purge, error) {
	if err := mongoStore.Connection.DropDatabase(ctx); err != nil {
		return nil, err
	}

	now := time.Now()

	purges := []*models.Purge{
		{
			ID:             "purge1",
			Type:           models.PurgeTypePage,
			State:          models.CompletedState,
			RequestedCount: 3,
			LastUpdated:    now.Add(-2 * time.Hour),
		},
		{
			ID:             "purge2",
			Type:           models.PurgeTypeImages,
			State:          models.FailedState,
			RequestedCount: 12,
			Errors: []models.ErrorDetail{
				{Code: 10000, Message: "authentication error"},
			},
			LastUpdated: now.Add(-time.Hour),
		},
		{
			ID:             "purge3",
			Type:           models.PurgeTypeAll,
			State:          models.CompletedState,
			RequestedCount: 1,
			LastUpdated:    now,
		},
	}

	for _, purge := range purges {
		if _, err := mongoStore.Connection.Collection(mongoStore.ActualCollectionName(config.PurgesCollection)).InsertOne(ctx, purge); err != nil {
			return nil, err
		}
	}

	return purges, nil
}

func setupFilesTestData(ctx context.Context, mongoStore *Mongo) ([]models.StoredFile, error) {
	if err := mongoStore.Connection.DropDatabase(ctx); err != nil {
		return nil, err
	}

	files := []models.StoredFile{
		{ID: "file1", Filename: "charts.css", Link: "/assets/css/charts.css"},
		{ID: "file2", Filename: "app.js", Link: "/assets/javascript/app.js"},
		{ID: "file3", Filename: "logo.png", Link: "/assets/images/logo.png"},
		{ID: "file4", Filename: "report.pdf", Link: "/assets/documents/report.pdf"},
	}

	for i := range files {
		if _, err := mongoStore.Connection.Collection(mongoStore.ActualCollectionName(config.FilesCollection)).InsertOne(ctx, files[i]); err != nil {
			return nil, err
		}
	}

	return files, nil
}
