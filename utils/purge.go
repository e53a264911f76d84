package utils

import (
	"strings"

	"github.com/ONSdigital/dp-cache-purge-api/models"
)

const homeSegment = "home"

// GeneratePageTargets generates the list of URLs to send for cache purging
// when a page changes. Every page yields its absolute link and the same link
// with a trailing slash. The home page additionally yields the site root,
// the link with its trailing home segment removed.
func GeneratePageTargets(page models.PageRef) []string {
	link := page.AbsoluteLink()
	targets := []string{link, link + "/"}

	if IsHomePage(page) {
		targets = append(targets, strings.TrimSuffix(link, "/"+homeSegment))
	}

	return targets
}

// IsHomePage reports whether the page is a site's home page: its URL segment
// is "home" and it sits at the tree root, or directly under a multi-site root
func IsHomePage(page models.PageRef) bool {
	if page.URLSegment() != homeSegment {
		return false
	}

	parent := page.Parent()
	if parent == nil {
		return true
	}

	siteAware, ok := parent.(models.SiteAware)
	return ok && siteAware.IsSiteRoot()
}
