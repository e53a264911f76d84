package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ONSdigital/dp-cache-purge-api/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildPurgesQuery(t *testing.T) {
	t.Parallel()
	Convey("When no purge types were given", t, func() {
		expectedSelector := bson.M{}

		selector := buildPurgesQuery(nil)
		So(selector, ShouldNotBeNil)
		So(selector, ShouldResemble, expectedSelector)
	})

	Convey("When purge types were given", t, func() {
		expectedSelector := bson.M{
			"type": bson.M{"$in": []string{models.PurgeTypePage, models.PurgeTypeAll}},
		}

		selector := buildPurgesQuery([]string{models.PurgeTypePage, models.PurgeTypeAll})
		So(selector, ShouldNotBeNil)
		So(selector, ShouldResemble, expectedSelector)
	})
}

func TestFilenameSuffixPattern(t *testing.T) {
	t.Parallel()
	Convey("When a single extension was given", t, func() {
		pattern := filenameSuffixPattern([]string{"css"})
		So(pattern, ShouldEqual, `\.(css)$`)
	})

	Convey("When multiple extensions were given", t, func() {
		pattern := filenameSuffixPattern([]string{"css", "js", "json"})
		So(pattern, ShouldEqual, `\.(css|js|json)$`)
	})

	Convey("When an extension contains a regular expression metacharacter", t, func() {
		pattern := filenameSuffixPattern([]string{"c+"})
		So(pattern, ShouldEqual, `\.(c\+)$`)
	})
}
