package sdk

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ONSdigital/dp-api-clients-go/v2/health"
	"github.com/ONSdigital/dp-cache-purge-api/models"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
)

//go:generate moq -out ./mocks/client.go -pkg mocks . Clienter

type Clienter interface {
	Checker(ctx context.Context, check *healthcheck.CheckState) error
	Health() *health.Client
	URL() string
	DoAuthenticatedGetRequest(ctx context.Context, headers Headers, uri *url.URL) (resp *http.Response, err error)
	DoAuthenticatedPostRequest(ctx context.Context, headers Headers, uri *url.URL, payload []byte) (resp *http.Response, err error)
	GetPurge(ctx context.Context, headers Headers, purgeID string) (purge models.Purge, err error)
	GetPurges(ctx context.Context, headers Headers, queryParams *QueryParams) (purgesList PurgesList, err error)
	GetPurgesInBatches(ctx context.Context, headers Headers, batchSize, maxWorkers int) (purgesList PurgesList, err error)
	GetPurgesBatchProcess(ctx context.Context, headers Headers, processBatch PurgesBatchProcessor, batchSize, maxWorkers int) (err error)
	GetZone(ctx context.Context, headers Headers) (zone models.Zone, err error)
	PostPurge(ctx context.Context, headers Headers, purgeRequest models.PurgeRequest) (purge models.Purge, err error)
}
