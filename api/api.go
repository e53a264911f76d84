package api

//go:generate moq -out ../mocks/mocks.go -pkg mocks . PurgeService PurgeEventProducer

import (
	"context"
	"net/http"

	"github.com/ONSdigital/dp-authorisation/auth"
	"github.com/ONSdigital/dp-cache-purge-api/config"
	"github.com/ONSdigital/dp-cache-purge-api/models"
	"github.com/ONSdigital/dp-cache-purge-api/pagination"
	"github.com/ONSdigital/dp-cache-purge-api/state"
	"github.com/ONSdigital/dp-cache-purge-api/store"
	dphandlers "github.com/ONSdigital/dp-net/v2/handlers"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
)

var (
	createPermission = auth.Permissions{Create: true}
	readPermission   = auth.Permissions{Read: true}
)

// PurgeService executes purge operations against the CDN provider
type PurgeService interface {
	Enabled() bool
	ZoneIdentifier() string
	PurgePage(ctx context.Context, page models.PageRef) (*models.PurgeResult, error)
	PurgeAll(ctx context.Context) (*models.PurgeResult, error)
	PurgeImages(ctx context.Context) (*models.PurgeResult, error)
	PurgeCSSAndJavascript(ctx context.Context) (*models.PurgeResult, error)
	PurgeURLs(ctx context.Context, urls []string) (*models.PurgeResult, error)
}

// PurgeEventProducer sends an event recording an executed purge
type PurgeEventProducer interface {
	PurgeCompleted(ctx context.Context, purge *models.Purge) error
}

// AuthHandler provides authorisation checks on requests
type AuthHandler interface {
	Require(required auth.Permissions, handler http.HandlerFunc) http.HandlerFunc
}

// CachePurgeAPI executes cache purges and manages the records of past purges
type CachePurgeAPI struct {
	Router                 *mux.Router
	dataStore              store.DataStore
	purgeService           PurgeService
	eventProducer          PurgeEventProducer
	stateMachine           *state.StateMachine
	enablePrivateEndpoints bool
	permissions            AuthHandler
	defaultLimit           int
	defaultOffset          int
	maxLimit               int
}

// Setup creates a new Cache Purge API instance and register the API routes based on the application configuration.
func Setup(ctx context.Context, cfg *config.Configuration, router *mux.Router, dataStore store.DataStore, purgeService PurgeService, eventProducer PurgeEventProducer, permissions AuthHandler) *CachePurgeAPI {
	api := &CachePurgeAPI{
		Router:                 router,
		dataStore:              dataStore,
		purgeService:           purgeService,
		eventProducer:          eventProducer,
		stateMachine:           state.NewPurgeStateMachine(),
		enablePrivateEndpoints: cfg.EnablePrivateEndpoints,
		permissions:            permissions,
		defaultLimit:           cfg.DefaultLimit,
		defaultOffset:          cfg.DefaultOffset,
		maxLimit:               cfg.DefaultMaxLimit,
	}

	paginator := pagination.NewPaginator(cfg.DefaultLimit, cfg.DefaultOffset, cfg.DefaultMaxLimit)

	if api.enablePrivateEndpoints {
		log.Info(ctx, "enabling private endpoints for cache purge api")
		api.enablePrivatePurgeEndpoints(paginator)
	} else {
		log.Info(ctx, "enabling only public endpoints for cache purge api")
		api.enablePublicEndpoints(paginator)
	}
	return api
}

// enablePublicEndpoints register the endpoints without any authentication or
// authorisation checks.
func (api *CachePurgeAPI) enablePublicEndpoints(paginator *pagination.Paginator) {
	api.get("/zone", api.getZone)
	api.get("/purges", paginator.Paginate(api.getPurges))
	api.get("/purges/{id}", api.getPurge)
	api.post("/purges", api.addPurge)
}

// enablePrivatePurgeEndpoints register the endpoints with the appropriate authentication and authorisation
// checks required when running the cache purge API in publishing (private) mode.
func (api *CachePurgeAPI) enablePrivatePurgeEndpoints(paginator *pagination.Paginator) {
	api.get(
		"/zone",
		api.isAuthorised(readPermission,
			api.getZone),
	)

	api.get(
		"/purges",
		api.isAuthorised(readPermission,
			paginator.Paginate(api.getPurges)),
	)

	api.get(
		"/purges/{id}",
		api.isAuthorised(readPermission,
			api.getPurge),
	)

	api.post(
		"/purges",
		api.isAuthenticated(
			api.isAuthorised(createPermission,
				api.addPurge)),
	)
}

// isAuthenticated wraps a http handler func in another http handler func that checks the caller is authenticated to
// perform the requested action. handler is the http.HandlerFunc to wrap in an
// authentication check. The wrapped handler is only called if the caller is authenticated
func (api *CachePurgeAPI) isAuthenticated(handler http.HandlerFunc) http.HandlerFunc {
	return dphandlers.CheckIdentity(handler)
}

// isAuthorised wraps a http.HandlerFunc another http.HandlerFunc that checks the caller is authorised to perform the
// requested action. required is the permissions required to perform the action, handler is the http.HandlerFunc to
// apply the check to. The wrapped handler is only called if the caller has the required permissions.
func (api *CachePurgeAPI) isAuthorised(required auth.Permissions, handler http.HandlerFunc) http.HandlerFunc {
	return api.permissions.Require(required, handler)
}

// get registers a GET http.HandlerFunc.
func (api *CachePurgeAPI) get(path string, handler http.HandlerFunc) {
	api.Router.HandleFunc(path, handler).Methods(http.MethodGet)
}

// post registers a POST http.HandlerFunc.
func (api *CachePurgeAPI) post(path string, handler http.HandlerFunc) {
	api.Router.HandleFunc(path, handler).Methods(http.MethodPost)
}

func setJSONContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
}
