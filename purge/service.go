package purge

import (
	"context"

	"github.com/ONSdigital/dp-cache-purge-api/cloudflare"
	"github.com/ONSdigital/dp-cache-purge-api/config"
	"github.com/ONSdigital/dp-cache-purge-api/models"
	"github.com/ONSdigital/dp-cache-purge-api/store"
	"github.com/ONSdigital/dp-cache-purge-api/url"
	"github.com/ONSdigital/dp-cache-purge-api/utils"
	"github.com/ONSdigital/log.go/v2/log"
)

// staticAssetExtensions are the extensions purged for stylesheet and script
// bundles. Generated bundle manifests are json, so json is part of the set.
var staticAssetExtensions = []string{"css", "js", "json"}

// FileScanner finds cacheable asset files on disk.
type FileScanner interface {
	Scan(ctx context.Context, roots, extensions []string) ([]string, error)
}

// Service exposes the purge operations for the website's cached content.
type Service struct {
	cfg        *config.Configuration
	client     cloudflare.Clienter
	scanner    FileScanner
	datastore  store.Storer
	urlBuilder *url.Builder
}

// New returns a purge service submitting requests through the given client.
func New(cfg *config.Configuration, client cloudflare.Clienter, fileScanner FileScanner, datastore store.Storer, urlBuilder *url.Builder) *Service {
	return &Service{
		cfg:        cfg,
		client:     client,
		scanner:    fileScanner,
		datastore:  datastore,
		urlBuilder: urlBuilder,
	}
}

// Enabled reports whether purge requests will be sent to the provider. While
// purging is disabled every operation is a silent no-op returning no result.
func (s *Service) Enabled() bool {
	return s.cfg.CloudflareEnabled && s.client != nil
}

// ZoneIdentifier returns the configured zone identifier.
func (s *Service) ZoneIdentifier() string {
	if s.cfg.CloudflareConfig == nil {
		return ""
	}
	return s.cfg.CloudflareConfig.ZoneID
}

// PurgePage invalidates the cached copies of a single page: its absolute
// link, the same link with a trailing slash and, for the home page, the site
// root without the trailing home segment.
func (s *Service) PurgePage(ctx context.Context, page models.PageRef) (*models.PurgeResult, error) {
	if !s.Enabled() {
		return nil, nil
	}

	targets := utils.GeneratePageTargets(page)
	log.Info(ctx, "purging page", log.Data{"targets": targets})

	return s.purgeTargets(ctx, targets)
}

// PurgeAll evicts every cached entry in the zone with a single purge call.
func (s *Service) PurgeAll(ctx context.Context) (*models.PurgeResult, error) {
	if !s.Enabled() {
		return nil, nil
	}

	zoneID := s.ZoneIdentifier()
	log.Info(ctx, "purging entire zone", log.Data{"zone_id": zoneID})

	response, err := s.client.PurgeZone(ctx, zoneID)
	if err != nil {
		return nil, err
	}

	result := &models.PurgeResult{Requested: []string{}}
	if response != nil && !response.Success {
		result.Errors = append(result.Errors, response.Errors...)
	}

	return result, nil
}

// PurgeImages purges every image asset on disk and on record. The extension
// set is the union of the configured image extensions and the configured
// additional extensions; an empty set purges nothing.
func (s *Service) PurgeImages(ctx context.Context) (*models.PurgeResult, error) {
	if !s.Enabled() {
		return nil, nil
	}

	extensions := utils.UnionExtensions(s.cfg.ImageFileExtensions, s.cfg.AdditionalImageFileExtensions)
	if len(extensions) == 0 {
		log.Warn(ctx, "no image file extensions configured, nothing to purge")
		return nil, nil
	}

	return s.purgeFilesByExtensions(ctx, extensions)
}

// PurgeCSSAndJavascript purges the stylesheet and script assets on disk and
// on record, bundle manifests included.
func (s *Service) PurgeCSSAndJavascript(ctx context.Context) (*models.PurgeResult, error) {
	if !s.Enabled() {
		return nil, nil
	}

	return s.purgeFilesByExtensions(ctx, staticAssetExtensions)
}

// PurgeURLs purges an explicit list of targets. Absolute URLs pass through
// unchanged and site-relative ones are joined to the purge base URL.
func (s *Service) PurgeURLs(ctx context.Context, urls []string) (*models.PurgeResult, error) {
	if !s.Enabled() {
		return nil, nil
	}

	targets := s.urlBuilder.BuildPurgeURLs(urls)
	log.Info(ctx, "purging urls", log.Data{"url_count": len(targets)})

	return s.purgeTargets(ctx, targets)
}

func (s *Service) purgeFilesByExtensions(ctx context.Context, extensions []string) (*models.PurgeResult, error) {
	targets, err := s.buildPurgeTargets(ctx, extensions, true)
	if err != nil {
		return nil, err
	}

	log.Info(ctx, "purging files by extension", log.Data{"extensions": extensions, "target_count": len(targets)})

	return s.purgeTargets(ctx, targets)
}
