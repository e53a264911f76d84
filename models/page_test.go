package models

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPageParent(t *testing.T) {
	t.Parallel()
	Convey("Given a page without a parent", t, func() {
		page := &Page{URL: "http://site.com/home/", Segment: "home"}

		Convey("Then Parent returns nil rather than a typed nil", func() {
			So(page.Parent(), ShouldBeNil)
		})
	})

	Convey("Given a page with a parent", t, func() {
		page := &Page{
			URL:        "http://site.com/news/budget",
			Segment:    "budget",
			ParentPage: &Page{URL: "http://site.com/news/", Segment: "news"},
		}

		Convey("Then Parent exposes the parent as a PageRef", func() {
			parent := page.Parent()
			So(parent, ShouldNotBeNil)
			So(parent.AbsoluteLink(), ShouldEqual, "http://site.com/news/")
			So(parent.URLSegment(), ShouldEqual, "news")
		})

		Convey("And the parent satisfies the SiteAware capability", func() {
			_, ok := page.Parent().(SiteAware)
			So(ok, ShouldBeTrue)
		})
	})

	Convey("Given a page whose parent is a site root", t, func() {
		page := &Page{
			URL:        "http://site.com/home/",
			Segment:    "home",
			ParentPage: &Page{URL: "http://site.com/", SiteRoot: true},
		}

		Convey("Then the parent reports itself as a site root", func() {
			site, ok := page.Parent().(SiteAware)
			So(ok, ShouldBeTrue)
			So(site.IsSiteRoot(), ShouldBeTrue)
		})
	})
}
