package service

import (
	"context"
	"net/http"

	"github.com/ONSdigital/dp-cache-purge-api/cloudflare"
	"github.com/ONSdigital/dp-cache-purge-api/config"
	"github.com/ONSdigital/dp-cache-purge-api/mongo"
	"github.com/ONSdigital/dp-cache-purge-api/store"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	kafka "github.com/ONSdigital/dp-kafka/v4"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/log.go/v2/log"
)

// ExternalServiceList holds the initialiser and initialisation state of external services.
type ExternalServiceList struct {
	CachePurgedProducer bool
	Cloudflare          bool
	HealthCheck         bool
	MongoDB             bool
	Init                Initialiser
}

// NewServiceList creates a new service list with the provided initialiser
func NewServiceList(initialiser Initialiser) *ExternalServiceList {
	return &ExternalServiceList{
		Init: initialiser,
	}
}

// Init implements the Initialiser interface to initialise dependencies
type Init struct{}

// GetHTTPServer creates an http server
func (e *ExternalServiceList) GetHTTPServer(bindAddr string, router http.Handler) HTTPServer {
	s := e.Init.DoGetHTTPServer(bindAddr, router)
	return s
}

// GetHealthCheck creates a healthcheck with versionInfo and sets the HealthCheck flag to true
func (e *ExternalServiceList) GetHealthCheck(cfg *config.Configuration, buildTime, gitCommit, version string) (HealthChecker, error) {
	hc, err := e.Init.DoGetHealthCheck(cfg, buildTime, gitCommit, version)
	if err != nil {
		return nil, err
	}
	e.HealthCheck = true
	return hc, nil
}

// GetKafkaProducer returns a kafka producer for cache purged events, which might not be initialised yet.
func (e *ExternalServiceList) GetKafkaProducer(ctx context.Context, cfg *config.Configuration) (kafka.IProducer, error) {
	kafkaProducer, err := e.Init.DoGetKafkaProducer(ctx, cfg, cfg.CachePurgedTopic)
	if err != nil {
		return nil, err
	}
	e.CachePurgedProducer = true
	return kafkaProducer, nil
}

// GetMongoDB returns a mongodb health client and purge mongo object
func (e *ExternalServiceList) GetMongoDB(ctx context.Context, cfg config.MongoConfig) (store.MongoDB, error) {
	mongodb, err := e.Init.DoGetMongoDB(ctx, cfg)
	if err != nil {
		log.Error(ctx, "failed to initialise mongo", err)
		return nil, err
	}
	e.MongoDB = true
	return mongodb, nil
}

// GetCloudflareClient returns a client for the cloudflare cache API
func (e *ExternalServiceList) GetCloudflareClient(cfg *config.Configuration) (cloudflare.Clienter, error) {
	client, err := e.Init.DoGetCloudflareClient(cfg)
	if err != nil {
		return nil, err
	}
	e.Cloudflare = true
	return client, nil
}

// DoGetHTTPServer creates an HTTP Server with the provided bind address and router
func (e *Init) DoGetHTTPServer(bindAddr string, router http.Handler) HTTPServer {
	s := dphttp.NewServer(bindAddr, router)
	s.HandleOSSignals = false
	return s
}

// DoGetHealthCheck creates a healthcheck with versionInfo
func (e *Init) DoGetHealthCheck(cfg *config.Configuration, buildTime, gitCommit, version string) (HealthChecker, error) {
	versionInfo, err := healthcheck.NewVersionInfo(buildTime, gitCommit, version)
	if err != nil {
		return nil, err
	}
	hc := healthcheck.New(versionInfo, cfg.HealthCheckCriticalTimeout, cfg.HealthCheckInterval)
	return &hc, nil
}

// DoGetKafkaProducer creates a new Kafka Producer on the provided topic
func (e *Init) DoGetKafkaProducer(ctx context.Context, cfg *config.Configuration, topic string) (kafka.IProducer, error) {
	pConfig := &kafka.ProducerConfig{
		BrokerAddrs:       cfg.KafkaAddr,
		Topic:             topic,
		MinBrokersHealthy: &cfg.KafkaProducerMinBrokersHealthy,
		KafkaVersion:      &cfg.KafkaVersion,
	}
	if cfg.KafkaSecProtocol == "TLS" {
		pConfig.SecurityConfig = kafka.GetSecurityConfig(
			cfg.KafkaSecCACerts,
			cfg.KafkaSecClientCert,
			cfg.KafkaSecClientKey,
			cfg.KafkaSecSkipVerify,
		)
	}
	return kafka.NewProducer(ctx, pConfig)
}

// DoGetMongoDB returns a MongoDB
func (e *Init) DoGetMongoDB(ctx context.Context, cfg config.MongoConfig) (store.MongoDB, error) {
	mongodb := &mongo.Mongo{MongoConfig: cfg}
	if err := mongodb.Init(ctx); err != nil {
		return nil, err
	}
	log.Info(ctx, "listening to mongo db session", log.Data{"uri": cfg.ClusterEndpoint})
	return mongodb, nil
}

// DoGetCloudflareClient creates a client for the cloudflare cache API
func (e *Init) DoGetCloudflareClient(cfg *config.Configuration) (cloudflare.Clienter, error) {
	return cloudflare.New(cfg.CloudflareConfig)
}
