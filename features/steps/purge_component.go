package steps

import (
	"context"
	"net/http"

	"github.com/ONSdigital/dp-cache-purge-api/cloudflare"
	cloudflareMock "github.com/ONSdigital/dp-cache-purge-api/cloudflare/mocks"
	"github.com/ONSdigital/dp-cache-purge-api/config"
	"github.com/ONSdigital/dp-cache-purge-api/models"
	"github.com/ONSdigital/dp-cache-purge-api/mongo"
	"github.com/ONSdigital/dp-cache-purge-api/service"
	serviceMock "github.com/ONSdigital/dp-cache-purge-api/service/mock"
	"github.com/ONSdigital/dp-cache-purge-api/store"
	componenttest "github.com/ONSdigital/dp-component-test"
	"github.com/ONSdigital/dp-component-test/utils"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	kafka "github.com/ONSdigital/dp-kafka/v4"
	"github.com/ONSdigital/dp-kafka/v4/kafkatest"
	"github.com/ONSdigital/log.go/v2/log"
)

type PurgeComponent struct {
	ErrorFeature   componenttest.ErrorFeature
	svc            *service.Service
	errorChan      chan error
	MongoClient    *mongo.Mongo
	CloudflareAPI  *cloudflareMock.ClienterMock
	KafkaProducer  *kafkatest.IProducerMock
	kafkaOutput    chan kafka.BytesMessage
	Config         *config.Configuration
	HTTPServer     *http.Server
	ServiceRunning bool
}

func NewPurgeComponent(mongoFeature *componenttest.MongoFeature, zebedeeURL string) (*PurgeComponent, error) {
	f := &PurgeComponent{
		HTTPServer:     &http.Server{},
		errorChan:      make(chan error),
		ServiceRunning: false,
	}

	var err error

	f.Config, err = config.Get()
	if err != nil {
		return nil, err
	}

	f.Config.ZebedeeURL = zebedeeURL
	f.Config.EnablePermissionsAuth = false
	f.Config.CloudflareEnabled = true

	f.Config.Database = utils.RandomDatabase()
	f.Config.ClusterEndpoint = mongoFeature.Server.URI()

	mongodb := &mongo.Mongo{MongoConfig: f.Config.MongoConfig}
	if err := mongodb.Init(context.Background()); err != nil {
		return nil, err
	}

	f.MongoClient = mongodb

	f.resetCloudflareAPI()
	f.resetKafkaProducer()

	initMock := &serviceMock.InitialiserMock{
		DoGetMongoDBFunc:          f.DoGetMongoDB,
		DoGetCloudflareClientFunc: f.DoGetCloudflareClient,
		DoGetKafkaProducerFunc:    f.DoGetKafkaProducer,
		DoGetHealthCheckFunc:      f.DoGetHealthcheckOk,
		DoGetHTTPServerFunc:       f.DoGetHTTPServer,
	}

	f.svc = service.New(f.Config, service.NewServiceList(initMock))

	return f, nil
}

func (f *PurgeComponent) Reset() *PurgeComponent {
	ctx := context.Background()
	f.MongoClient.Database = utils.RandomDatabase()
	if err := f.MongoClient.Init(ctx); err != nil {
		log.Warn(ctx, "error initialising MongoClient during Reset", log.Data{"err": err.Error()})
	}

	f.Config.EnablePrivateEndpoints = false
	f.Config.CloudflareEnabled = true

	f.resetCloudflareAPI()
	f.resetKafkaProducer()

	return f
}

func (f *PurgeComponent) Close() error {
	if f.svc != nil && f.ServiceRunning {
		if err := f.svc.Close(context.Background()); err != nil {
			return err
		}
		f.ServiceRunning = false
	}
	return nil
}

func (f *PurgeComponent) InitialiseService() (http.Handler, error) {
	if err := f.svc.Run(context.Background(), "1", "", "", f.errorChan); err != nil {
		return nil, err
	}
	f.ServiceRunning = true
	return f.HTTPServer.Handler, nil
}

// resetCloudflareAPI replaces the client mock, so call records do not leak
// between scenarios. Every purge succeeds unless a scenario reconfigures it.
func (f *PurgeComponent) resetCloudflareAPI() {
	f.CloudflareAPI = &cloudflareMock.ClienterMock{
		PurgeZoneFunc: func(ctx context.Context, zoneID string) (*models.PurgeResponse, error) {
			return &models.PurgeResponse{Success: true}, nil
		},
		PurgeFilesFunc: func(ctx context.Context, zoneID string, urls []string) (*models.PurgeResponse, error) {
			return &models.PurgeResponse{Success: true}, nil
		},
	}
}

func (f *PurgeComponent) resetKafkaProducer() {
	output := make(chan kafka.BytesMessage, 100)
	f.kafkaOutput = output
	f.KafkaProducer = &kafkatest.IProducerMock{
		ChannelsFunc: func() *kafka.ProducerChannels {
			return &kafka.ProducerChannels{Output: output}
		},
		LogErrorsFunc: func(context.Context) {},
		CloseFunc:     func(context.Context) error { return nil },
	}
}

func (f *PurgeComponent) DoGetHealthcheckOk(cfg *config.Configuration, buildTime, gitCommit, version string) (service.HealthChecker, error) {
	return &serviceMock.HealthCheckerMock{
		AddCheckFunc: func(name string, checker healthcheck.Checker) error { return nil },
		StartFunc:    func(ctx context.Context) {},
		StopFunc:     func() {},
	}, nil
}

func (f *PurgeComponent) DoGetHTTPServer(bindAddr string, router http.Handler) service.HTTPServer {
	f.HTTPServer.Addr = bindAddr
	f.HTTPServer.Handler = router
	return f.HTTPServer
}

// DoGetMongoDB returns the component test mongo connection
func (f *PurgeComponent) DoGetMongoDB(ctx context.Context, cfg config.MongoConfig) (store.MongoDB, error) {
	return f.MongoClient, nil
}

func (f *PurgeComponent) DoGetCloudflareClient(cfg *config.Configuration) (cloudflare.Clienter, error) {
	return f.CloudflareAPI, nil
}

func (f *PurgeComponent) DoGetKafkaProducer(ctx context.Context, cfg *config.Configuration, topic string) (kafka.IProducer, error) {
	return f.KafkaProducer, nil
}
