package models

import (
	"bytes"
	"encoding/json"
	"testing"

	errs "github.com/ONSdigital/dp-cache-purge-api/apierrors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCreatePurgeRequest(t *testing.T) {
	t.Parallel()
	Convey("Successfully return without any errors", t, func() {
		Convey("when the request has all fields", func() {
			b, err := json.Marshal(&PurgeRequest{
				Type: PurgeTypeURLs,
				URLs: []string{"/about-us", "http://static.example.com/logo.png"},
			})
			So(err, ShouldBeNil)

			request, err := CreatePurgeRequest(bytes.NewReader(b))
			So(err, ShouldBeNil)
			So(request.Type, ShouldEqual, PurgeTypeURLs)
			So(request.URLs, ShouldResemble, []string{"/about-us", "http://static.example.com/logo.png"})
			So(request.Page, ShouldBeNil)
		})

		Convey("when the request contains a page", func() {
			b, err := json.Marshal(&PurgeRequest{
				Type: PurgeTypePage,
				Page: &Page{URL: "http://site.com/home/", Segment: "home"},
			})
			So(err, ShouldBeNil)

			request, err := CreatePurgeRequest(bytes.NewReader(b))
			So(err, ShouldBeNil)
			So(request.Type, ShouldEqual, PurgeTypePage)
			So(request.Page.URL, ShouldEqual, "http://site.com/home/")
			So(request.Page.Segment, ShouldEqual, "home")
		})
	})

	Convey("Return with error when the request body is not valid json", t, func() {
		request, err := CreatePurgeRequest(bytes.NewReader([]byte("not json")))
		So(request, ShouldBeNil)
		So(err, ShouldResemble, errs.ErrUnableToParseJSON)
	})
}

func TestValidatePurgeRequest(t *testing.T) {
	t.Parallel()
	Convey("Successfully return without any errors", t, func() {
		Convey("when the purge type is all", func() {
			So(ValidatePurgeRequest(&PurgeRequest{Type: PurgeTypeAll}), ShouldBeNil)
		})

		Convey("when the purge type is images", func() {
			So(ValidatePurgeRequest(&PurgeRequest{Type: PurgeTypeImages}), ShouldBeNil)
		})

		Convey("when the purge type is static-assets", func() {
			So(ValidatePurgeRequest(&PurgeRequest{Type: PurgeTypeStaticAssets}), ShouldBeNil)
		})

		Convey("when the purge type is urls and urls are provided", func() {
			So(ValidatePurgeRequest(&PurgeRequest{Type: PurgeTypeURLs, URLs: []string{"/a"}}), ShouldBeNil)
		})

		Convey("when the purge type is page and a page is provided", func() {
			So(ValidatePurgeRequest(&PurgeRequest{Type: PurgeTypePage, Page: &Page{URL: "http://site.com/news"}}), ShouldBeNil)
		})
	})

	Convey("Return with error", t, func() {
		Convey("when the purge type is missing", func() {
			So(ValidatePurgeRequest(&PurgeRequest{}), ShouldResemble, errs.ErrMissingPurgeType)
		})

		Convey("when the purge type is not recognised", func() {
			So(ValidatePurgeRequest(&PurgeRequest{Type: "everything"}), ShouldResemble, errs.ErrInvalidPurgeType)
		})

		Convey("when the purge type is urls but no urls are provided", func() {
			So(ValidatePurgeRequest(&PurgeRequest{Type: PurgeTypeURLs}), ShouldResemble, errs.ErrMissingPurgeURLs)
		})

		Convey("when the purge type is page but no page is provided", func() {
			So(ValidatePurgeRequest(&PurgeRequest{Type: PurgeTypePage}), ShouldResemble, errs.ErrMissingPurgePage)
		})
	})
}

func TestNewPurge(t *testing.T) {
	t.Parallel()
	Convey("Given a result where every batch was accepted", t, func() {
		result := &PurgeResult{Requested: []string{"http://site.com/a", "http://site.com/b"}}

		Convey("When NewPurge is called", func() {
			purge, err := NewPurge(PurgeTypeURLs, result)
			So(err, ShouldBeNil)

			Convey("Then the record is completed with the requested count", func() {
				So(purge.ID, ShouldNotBeEmpty)
				So(purge.Type, ShouldEqual, PurgeTypeURLs)
				So(purge.State, ShouldEqual, CompletedState)
				So(purge.RequestedCount, ShouldEqual, 2)
				So(purge.Errors, ShouldBeEmpty)
			})
		})
	})

	Convey("Given a result carrying provider errors", t, func() {
		result := &PurgeResult{
			Requested: []string{"http://site.com/a"},
			Errors:    []ErrorDetail{{Code: 1012, Message: "zone temporarily unavailable"}},
		}

		Convey("When NewPurge is called", func() {
			purge, err := NewPurge(PurgeTypeAll, result)
			So(err, ShouldBeNil)

			Convey("Then the record is failed and keeps the provider errors", func() {
				So(purge.State, ShouldEqual, FailedState)
				So(purge.Errors, ShouldResemble, result.Errors)
			})

			Convey("And the record's errors do not alias the result's", func() {
				purge.Errors[0].Message = "changed"
				So(result.Errors[0].Message, ShouldEqual, "zone temporarily unavailable")
			})
		})
	})

	Convey("Given no result", t, func() {
		Convey("When NewPurge is called", func() {
			purge, err := NewPurge(PurgeTypePage, nil)
			So(err, ShouldBeNil)

			Convey("Then the record stays in the created state", func() {
				So(purge.State, ShouldEqual, CreatedState)
				So(purge.RequestedCount, ShouldEqual, 0)
			})
		})
	})
}
