package service

import (
	"context"
	"net/http"
	neturl "net/url"

	clientsidentity "github.com/ONSdigital/dp-api-clients-go/v2/identity"
	"github.com/ONSdigital/dp-authorisation/auth"
	"github.com/ONSdigital/dp-cache-purge-api/api"
	"github.com/ONSdigital/dp-cache-purge-api/cloudflare"
	"github.com/ONSdigital/dp-cache-purge-api/config"
	"github.com/ONSdigital/dp-cache-purge-api/events"
	adapter "github.com/ONSdigital/dp-cache-purge-api/kafka"
	"github.com/ONSdigital/dp-cache-purge-api/purge"
	"github.com/ONSdigital/dp-cache-purge-api/scanner"
	"github.com/ONSdigital/dp-cache-purge-api/schema"
	"github.com/ONSdigital/dp-cache-purge-api/store"
	"github.com/ONSdigital/dp-cache-purge-api/url"
	kafka "github.com/ONSdigital/dp-kafka/v4"
	dphandlers "github.com/ONSdigital/dp-net/v2/handlers"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Service contains all the configs, server and clients to run the cache purge API
type Service struct {
	config              *config.Configuration
	serviceList         *ExternalServiceList
	mongoDB             store.MongoDB
	cloudflareClient    cloudflare.Clienter
	cachePurgedProducer kafka.IProducer
	identityClient      *clientsidentity.Client
	server              HTTPServer
	healthCheck         HealthChecker
	api                 *api.CachePurgeAPI
}

// New creates a new service
func New(cfg *config.Configuration, serviceList *ExternalServiceList) *Service {
	return &Service{
		config:      cfg,
		serviceList: serviceList,
	}
}

// SetServer sets the http server for a service
func (svc *Service) SetServer(server HTTPServer) {
	svc.server = server
}

// SetHealthCheck sets the healthchecker for a service
func (svc *Service) SetHealthCheck(healthCheck HealthChecker) {
	svc.healthCheck = healthCheck
}

// SetCachePurgedProducer sets the kafka producer for a service
func (svc *Service) SetCachePurgedProducer(producer kafka.IProducer) {
	svc.cachePurgedProducer = producer
}

// SetMongoDB sets the mongoDB connection for a service
func (svc *Service) SetMongoDB(mongoDB store.MongoDB) {
	svc.mongoDB = mongoDB
}

// SetCloudflareClient sets the cloudflare client for a service
func (svc *Service) SetCloudflareClient(client cloudflare.Clienter) {
	svc.cloudflareClient = client
}

// Run the service
func (svc *Service) Run(ctx context.Context, buildTime, gitCommit, version string, svcErrors chan error) (err error) {
	// Get MongoDB connection
	svc.mongoDB, err = svc.serviceList.GetMongoDB(ctx, svc.config.MongoConfig)
	if err != nil {
		log.Error(ctx, "could not obtain mongo session", err)
		return err
	}
	dataStore := store.DataStore{Backend: svc.mongoDB}

	// Get cloudflare client (only when purging is enabled)
	if svc.config.CloudflareEnabled {
		svc.cloudflareClient, err = svc.serviceList.GetCloudflareClient(svc.config)
		if err != nil {
			log.Error(ctx, "could not obtain cloudflare client", err)
			return err
		}
	} else {
		log.Info(ctx, "skipping cloudflare client creation, because cache purging is disabled")
	}

	// Get CachePurged Kafka Producer
	svc.cachePurgedProducer, err = svc.serviceList.GetKafkaProducer(ctx, svc.config)
	if err != nil {
		log.Error(ctx, "could not obtain cache purged kafka producer", err)
		return err
	}
	svc.cachePurgedProducer.LogErrors(ctx)

	eventProducer := &events.CachePurgedProducer{
		Producer:   adapter.NewProducerAdapter(svc.cachePurgedProducer),
		Marshaller: schema.CachePurgedEvent,
	}

	// Get Identity Client (only if private endpoints are enabled)
	if svc.config.EnablePrivateEndpoints {
		svc.identityClient = clientsidentity.New(svc.config.ZebedeeURL)
	}

	// Get HealthCheck
	svc.healthCheck, err = svc.serviceList.GetHealthCheck(svc.config, buildTime, gitCommit, version)
	if err != nil {
		log.Error(ctx, "could not instantiate healthcheck", err)
		return err
	}
	if err := svc.registerCheckers(ctx); err != nil {
		return errors.Wrap(err, "unable to register checkers")
	}

	// Get HTTP router and server with middleware
	r := mux.NewRouter()
	if svc.config.OtelEnabled {
		r.Use(otelmux.Middleware(svc.config.OTServiceName))
	}
	m := svc.createMiddleware(svc.config)
	if svc.config.OtelEnabled {
		svc.server = svc.serviceList.GetHTTPServer(svc.config.BindAddr, otelhttp.NewHandler(m.Then(r), "/"))
	} else {
		svc.server = svc.serviceList.GetHTTPServer(svc.config.BindAddr, m.Then(r))
	}

	// Create the purge service and cache purge API
	baseURL := svc.config.PurgeBaseURL
	if baseURL == "" {
		baseURL = svc.config.WebsiteURL
	}
	purgeBaseURL, err := neturl.Parse(baseURL)
	if err != nil {
		log.Error(ctx, "could not parse purge base url", err, log.Data{"url": baseURL})
		return err
	}
	urlBuilder := url.NewBuilder(purgeBaseURL)
	fileScanner := scanner.New(scanner.NewFilter(svc.config.DisableDefaultBlacklist))
	purgeService := purge.New(svc.config, svc.cloudflareClient, fileScanner, dataStore.Backend, urlBuilder)

	permissions := getAuthorisationHandlers(ctx, svc.config)
	svc.api = api.Setup(ctx, svc.config, r, dataStore, purgeService, eventProducer, permissions)

	svc.healthCheck.Start(ctx)

	// Run the http server in a new go-routine
	go func() {
		if err := svc.server.ListenAndServe(); err != nil {
			svcErrors <- errors.Wrap(err, "failure in http listen and serve")
		}
	}()

	return nil
}

func getAuthorisationHandlers(ctx context.Context, cfg *config.Configuration) api.AuthHandler {
	if !cfg.EnablePermissionsAuth {
		log.Info(ctx, "feature flag not enabled defaulting to nop auth impl", log.Data{"feature": "ENABLE_PERMISSIONS_AUTH"})
		return &auth.NopHandler{}
	}

	log.Info(ctx, "feature flag enabled", log.Data{"feature": "ENABLE_PERMISSIONS_AUTH"})
	auth.LoggerNamespace("dp-cache-purge-api-auth")

	authClient := auth.NewPermissionsClient(dphttp.NewClient())
	authVerifier := auth.DefaultPermissionsVerifier()

	// for checking caller permissions when we only have a user/service token
	permissions := auth.NewHandler(
		auth.NewPermissionsRequestBuilder(cfg.ZebedeeURL),
		authClient,
		authVerifier,
	)

	return permissions
}

// createMiddleware creates an Alice middleware chain of handlers
func (svc *Service) createMiddleware(cfg *config.Configuration) alice.Chain {
	// healthcheck
	healthcheckHandler := newMiddleware(svc.healthCheck.Handler, "/health")
	middleware := alice.New(healthcheckHandler)

	// Only add the identity middleware when running in publishing.
	if cfg.EnablePrivateEndpoints {
		middleware = middleware.Append(dphandlers.IdentityWithHTTPClient(svc.identityClient))
	}

	return middleware
}

// newMiddleware creates a new http.Handler to intercept /health requests.
func newMiddleware(healthcheckHandler func(http.ResponseWriter, *http.Request), path string) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Method == "GET" && req.URL.Path == path {
				healthcheckHandler(w, req)
				return
			}

			h.ServeHTTP(w, req)
		})
	}
}

// Close gracefully shuts the service down in the required order, with timeout
func (svc *Service) Close(ctx context.Context) error {
	timeout := svc.config.GracefulShutdownTimeout
	log.Info(ctx, "commencing graceful shutdown", log.Data{"graceful_shutdown_timeout": timeout})
	shutdownContext, cancel := context.WithTimeout(ctx, timeout)
	hasShutdownError := false

	// Gracefully shutdown the application closing any open resources.
	go func() {
		defer cancel()

		// stop healthcheck, as it depends on everything else
		if svc.serviceList.HealthCheck {
			svc.healthCheck.Stop()
		}

		// stop any incoming requests
		if err := svc.server.Shutdown(shutdownContext); err != nil {
			log.Error(shutdownContext, "failed to shutdown http server", err)
			hasShutdownError = true
		}

		// Close MongoDB (if it exists)
		if svc.serviceList.MongoDB {
			if err := svc.mongoDB.Close(shutdownContext); err != nil {
				log.Error(shutdownContext, "failed to close mongo db session", err)
				hasShutdownError = true
			}
		}

		// Close CachePurgedProducer (if it exists)
		if svc.serviceList.CachePurgedProducer {
			log.Info(shutdownContext, "closing cache purged kafka producer")
			if err := svc.cachePurgedProducer.Close(shutdownContext); err != nil {
				log.Error(shutdownContext, "failed to close cache purged kafka producer", err)
				hasShutdownError = true
			}
			log.Info(shutdownContext, "closed cache purged kafka producer")
		}
	}()

	// wait for shutdown success (via cancel) or failure (timeout)
	<-shutdownContext.Done()

	// timeout expired
	if shutdownContext.Err() == context.DeadlineExceeded {
		log.Error(shutdownContext, "shutdown timed out", shutdownContext.Err())
		return shutdownContext.Err()
	}

	// other error
	if hasShutdownError {
		err := errors.New("failed to shutdown gracefully")
		log.Error(shutdownContext, "failed to shutdown gracefully ", err)
		return err
	}

	log.Info(shutdownContext, "graceful shutdown was successful")
	return nil
}

// registerCheckers adds the checkers for the provided clients to the health check object
func (svc *Service) registerCheckers(ctx context.Context) (err error) {
	hasErrors := false

	if svc.config.EnablePrivateEndpoints {
		if err = svc.healthCheck.AddCheck("Zebedee", svc.identityClient.Checker); err != nil {
			hasErrors = true
			log.Error(ctx, "error adding check for zebedee", err)
		}
	}

	if err = svc.healthCheck.AddCheck("Kafka Cache Purged Producer", svc.cachePurgedProducer.Checker); err != nil {
		hasErrors = true
		log.Error(ctx, "error adding check for kafka cache purged producer", err)
	}

	if err = svc.healthCheck.AddCheck("Mongo DB", svc.mongoDB.Checker); err != nil {
		hasErrors = true
		log.Error(ctx, "error adding check for mongo db", err)
	}

	if hasErrors {
		return errors.New("Error(s) registering checkers for healthcheck")
	}
	return nil
}
