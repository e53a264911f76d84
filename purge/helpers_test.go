package purge

import (
	"context"
	"fmt"
	neturl "net/url"
	"testing"

	"github.com/ONSdigital/dp-cache-purge-api/cloudflare"
	"github.com/ONSdigital/dp-cache-purge-api/config"
	"github.com/ONSdigital/dp-cache-purge-api/url"
)

var ctx = context.Background()

const testZoneID = "a1b2c3d4e5f6g7h8i9j1k2l3m4n5o6p7"

func testConfig() *config.Configuration {
	return &config.Configuration{
		CloudflareEnabled: true,
		CloudflareConfig: &cloudflare.Config{
			ZoneID: testZoneID,
		},
		CombinedAssetsFolder:          "assets/_combinedfiles",
		ProjectBaseFolder:             "themes/website",
		ImageFileExtensions:           []string{"png", "jpg", "jpeg", "gif", "svg", "ico"},
		AdditionalImageFileExtensions: []string{},
	}
}

func newURLBuilder(t *testing.T, rawURL string) *url.Builder {
	parsed, err := neturl.Parse(rawURL)
	if err != nil {
		t.Fatalf("failed to parse base url %q: %v", rawURL, err)
	}
	return url.NewBuilder(parsed)
}

func manyTargets(n int) []string {
	targets := make([]string, 0, n)
	for i := 0; i < n; i++ {
		targets = append(targets, fmt.Sprintf("/assets/file-%d.css", i))
	}
	return targets
}

// stubScanner stands in for the filesystem scanner where a test only cares
// about what the scan feeds into the purge pipeline.
type stubScanner struct {
	paths []string
	err   error
	calls [][]string
}

func (s *stubScanner) Scan(_ context.Context, _, extensions []string) ([]string, error) {
	s.calls = append(s.calls, extensions)
	if s.err != nil {
		return nil, s.err
	}
	return s.paths, nil
}
