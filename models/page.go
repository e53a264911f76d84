package models

// PageRef describes the minimum the purge operations need to know about a
// content-managed page: its public link, its URL segment and its position in
// the site tree.
type PageRef interface {
	AbsoluteLink() string
	URLSegment() string
	Parent() PageRef
}

// SiteAware is an optional capability a PageRef may implement when the content
// model hosts multiple sites in a single tree. A parent reporting itself as a
// site root marks its child pages as top-level pages of that site.
type SiteAware interface {
	IsSiteRoot() bool
}

// Page is the representation of a page accepted by the purge API. ParentPage
// is absent for pages at the root of the tree.
type Page struct {
	URL        string `json:"url"`
	Segment    string `json:"url_segment"`
	SiteRoot   bool   `json:"site_root,omitempty"`
	ParentPage *Page  `json:"parent,omitempty"`
}

// AbsoluteLink returns the page's public URL.
func (p *Page) AbsoluteLink() string {
	return p.URL
}

// URLSegment returns the final segment of the page's URL.
func (p *Page) URLSegment() string {
	return p.Segment
}

// Parent returns the page's parent, or nil for a root page.
func (p *Page) Parent() PageRef {
	if p.ParentPage == nil {
		return nil
	}
	return p.ParentPage
}

// IsSiteRoot reports whether this page is the root record of a site.
func (p *Page) IsSiteRoot() bool {
	return p.SiteRoot
}
