package url

import (
	"fmt"
	"net/url"
	"strings"
)

// Builder encapsulates the building of purge target urls in a central place,
// with knowledge of the website's base host name.
type Builder struct {
	baseURL *url.URL
}

// NewBuilder returns a new instance of url.Builder
func NewBuilder(baseURL *url.URL) *Builder {
	return &Builder{
		baseURL: baseURL,
	}
}

func (builder *Builder) GetBaseURL() *url.URL {
	return builder.baseURL
}

// BuildPurgeURL returns an absolute URL for the given purge target. Targets
// already carrying a scheme pass through unchanged, everything else is joined
// to the base URL.
func (builder *Builder) BuildPurgeURL(target string) string {
	if IsAbsolute(target) {
		return target
	}

	base := strings.TrimSuffix(builder.baseURL.String(), "/")
	if strings.HasPrefix(target, "/") {
		return fmt.Sprintf("%s%s", base, target)
	}
	return fmt.Sprintf("%s/%s", base, target)
}

// BuildPurgeURLs maps BuildPurgeURL over the given targets, preserving order
func (builder *Builder) BuildPurgeURLs(targets []string) []string {
	urls := make([]string, 0, len(targets))
	for _, target := range targets {
		urls = append(urls, builder.BuildPurgeURL(target))
	}
	return urls
}

// IsAbsolute reports whether the target already carries a recognised URL
// scheme prefix
func IsAbsolute(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}
