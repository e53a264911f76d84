package config

import (
	"encoding/json"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/ONSdigital/dp-cache-purge-api/cloudflare"
	mongodriver "github.com/ONSdigital/dp-mongodb/v3/mongodb"
)

type MongoConfig struct {
	mongodriver.MongoDriverConfig
}

// Configuration structure which hold information for configuring the cache purge API
type Configuration struct {
	BindAddr                       string        `envconfig:"BIND_ADDR"`
	KafkaAddr                      []string      `envconfig:"KAFKA_ADDR"                       json:"-"`
	KafkaProducerMinBrokersHealthy int           `envconfig:"KAFKA_PRODUCER_MIN_BROKERS_HEALTHY"`
	KafkaSecProtocol               string        `envconfig:"KAFKA_SEC_PROTO"`
	KafkaSecCACerts                string        `envconfig:"KAFKA_SEC_CA_CERTS"`
	KafkaSecClientCert             string        `envconfig:"KAFKA_SEC_CLIENT_CERT"`
	KafkaSecClientKey              string        `envconfig:"KAFKA_SEC_CLIENT_KEY"             json:"-"`
	KafkaSecSkipVerify             bool          `envconfig:"KAFKA_SEC_SKIP_VERIFY"`
	KafkaVersion                   string        `envconfig:"KAFKA_VERSION"`
	CachePurgedTopic               string        `envconfig:"CACHE_PURGED_TOPIC"`
	WebsiteURL                     string        `envconfig:"WEBSITE_URL"`
	PurgeBaseURL                   string        `envconfig:"PURGE_BASE_URL"`
	ZebedeeURL                     string        `envconfig:"ZEBEDEE_URL"`
	ServiceAuthToken               string        `envconfig:"SERVICE_AUTH_TOKEN"               json:"-"`
	GracefulShutdownTimeout        time.Duration `envconfig:"GRACEFUL_SHUTDOWN_TIMEOUT"`
	HealthCheckInterval            time.Duration `envconfig:"HEALTHCHECK_INTERVAL"`
	HealthCheckCriticalTimeout     time.Duration `envconfig:"HEALTHCHECK_CRITICAL_TIMEOUT"`
	EnablePrivateEndpoints         bool          `envconfig:"ENABLE_PRIVATE_ENDPOINTS"`
	EnablePermissionsAuth          bool          `envconfig:"ENABLE_PERMISSIONS_AUTH"`
	DefaultMaxLimit                int           `envconfig:"DEFAULT_MAXIMUM_LIMIT"`
	DefaultLimit                   int           `envconfig:"DEFAULT_LIMIT"`
	DefaultOffset                  int           `envconfig:"DEFAULT_OFFSET"`
	ComponentTestUseLogFile        bool          `envconfig:"COMPONENT_TEST_USE_LOG_FILE"`
	OTExporterOTLPEndpoint         string        `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTServiceName                  string        `envconfig:"OTEL_SERVICE_NAME"`
	OTBatchTimeout                 time.Duration `envconfig:"OTEL_BATCH_TIMEOUT"`
	OtelEnabled                    bool          `envconfig:"OTEL_ENABLED"`
	CombinedAssetsFolder           string        `envconfig:"COMBINED_ASSETS_FOLDER"`
	ProjectBaseFolder              string        `envconfig:"PROJECT_BASE_FOLDER"`
	ImageFileExtensions            []string      `envconfig:"IMAGE_FILE_EXTENSIONS"`
	AdditionalImageFileExtensions  []string      `envconfig:"ADDITIONAL_IMAGE_FILE_EXTENSIONS"`
	DisableDefaultBlacklist        bool          `envconfig:"DISABLE_DEFAULT_BLACKLIST_ABSOLUTE_PATHNAMES"`
	MongoConfig
	CloudflareEnabled bool `envconfig:"CLOUDFLARE_ENABLED"`
	CloudflareConfig  *cloudflare.Config
}

var cfg *Configuration

const (
	FilesCollection  = "FilesCollection"
	PurgesCollection = "PurgesCollection"
)

// Get the application and returns the configuration structure, and initialises with default values.
func Get() (*Configuration, error) {
	if cfg != nil {
		return cfg, nil
	}

	cfg = &Configuration{
		BindAddr:                       ":29600",
		KafkaAddr:                      []string{"localhost:9092", "localhost:9093", "localhost:9094"},
		KafkaProducerMinBrokersHealthy: 2,
		KafkaVersion:                   "1.0.2",
		CachePurgedTopic:               "cache-purged",
		WebsiteURL:                     "http://localhost:20000",
		PurgeBaseURL:                   "",
		ZebedeeURL:                     "http://localhost:8082",
		ServiceAuthToken:               "FD0108EA-825D-411C-9B1D-41EF7727F465",
		GracefulShutdownTimeout:        5 * time.Second,
		HealthCheckInterval:            30 * time.Second,
		HealthCheckCriticalTimeout:     90 * time.Second,
		EnablePrivateEndpoints:         false,
		EnablePermissionsAuth:          false,
		DefaultMaxLimit:                1000,
		DefaultLimit:                   20,
		DefaultOffset:                  0,
		ComponentTestUseLogFile:        false,
		OTExporterOTLPEndpoint:         "localhost:4317",
		OTServiceName:                  "dp-cache-purge-api",
		OTBatchTimeout:                 5 * time.Second,
		OtelEnabled:                    false,
		CombinedAssetsFolder:           "assets/_combinedfiles",
		ProjectBaseFolder:              "themes/website",
		ImageFileExtensions:            []string{"png", "jpg", "jpeg", "gif", "svg", "ico"},
		AdditionalImageFileExtensions:  []string{},
		DisableDefaultBlacklist:        false,
		MongoConfig: MongoConfig{
			MongoDriverConfig: mongodriver.MongoDriverConfig{
				ClusterEndpoint:               "localhost:27017",
				Username:                      "",
				Password:                      "",
				Database:                      "cache-purges",
				Collections:                   map[string]string{FilesCollection: "files", PurgesCollection: "purges"},
				ReplicaSet:                    "",
				IsStrongReadConcernEnabled:    false,
				IsWriteConcernMajorityEnabled: true,
				ConnectTimeout:                5 * time.Second,
				QueryTimeout:                  15 * time.Second,
				TLSConnectionConfig: mongodriver.TLSConnectionConfig{
					IsSSL: false,
				},
			},
		},
		CloudflareEnabled: false,
		CloudflareConfig:  cloudflare.NewDefaultConfig(),
	}

	return cfg, envconfig.Process("", cfg)
}

// String is implemented to prevent sensitive fields being logged.
// The config is returned as JSON with sensitive fields omitted.
func (config Configuration) String() string {
	b, _ := json.Marshal(config)
	return string(b)
}
