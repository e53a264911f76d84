package purge

import (
	"context"
	"errors"
	"testing"

	"github.com/ONSdigital/dp-cache-purge-api/cloudflare/mocks"
	"github.com/ONSdigital/dp-cache-purge-api/models"
	"github.com/google/go-cmp/cmp"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPurgeTargetsBatching(t *testing.T) {
	Convey("Given a client accepting every purge call", t, func() {
		clientMock := &mocks.ClienterMock{
			PurgeFilesFunc: func(ctx context.Context, zoneID string, urls []string) (*models.PurgeResponse, error) {
				return &models.PurgeResponse{Success: true}, nil
			},
		}
		s := New(testConfig(), clientMock, &stubScanner{}, nil, nil)

		Convey("When 1203 targets are purged", func() {
			targets := manyTargets(1203)
			result, err := s.purgeTargets(ctx, targets)

			Convey("Then the list is split into three ordered batches within the cap", func() {
				So(err, ShouldBeNil)
				calls := clientMock.PurgeFilesCalls()
				So(calls, ShouldHaveLength, 3)
				So(calls[0].Urls, ShouldHaveLength, MaxPurgePerRequest)
				So(calls[1].Urls, ShouldHaveLength, MaxPurgePerRequest)
				So(calls[2].Urls, ShouldHaveLength, 203)

				var recombined []string
				for _, call := range calls {
					So(call.ZoneID, ShouldEqual, testZoneID)
					recombined = append(recombined, call.Urls...)
				}
				So(cmp.Diff(targets, recombined), ShouldBeEmpty)
			})

			Convey("And the result records the full requested list with no errors", func() {
				So(result.Requested, ShouldResemble, targets)
				So(result.Errors, ShouldBeEmpty)
				So(result.Succeeded(), ShouldBeTrue)
			})
		})

		Convey("When exactly one batch worth of targets is purged", func() {
			targets := manyTargets(MaxPurgePerRequest)
			result, err := s.purgeTargets(ctx, targets)

			Convey("Then a single call carries every target", func() {
				So(err, ShouldBeNil)
				So(clientMock.PurgeFilesCalls(), ShouldHaveLength, 1)
				So(result.Requested, ShouldHaveLength, MaxPurgePerRequest)
			})
		})

		Convey("When no targets are purged", func() {
			result, err := s.purgeTargets(ctx, []string{})

			Convey("Then no call is made and the result is an empty success", func() {
				So(err, ShouldBeNil)
				So(clientMock.PurgeFilesCalls(), ShouldBeEmpty)
				So(result.Requested, ShouldBeEmpty)
				So(result.Succeeded(), ShouldBeTrue)
			})
		})

		Convey("When the caller mutates its slice after purging", func() {
			targets := manyTargets(3)
			result, err := s.purgeTargets(ctx, targets)
			So(err, ShouldBeNil)

			targets[0] = "/assets/overwritten.css"

			Convey("Then the recorded request list is unchanged", func() {
				So(result.Requested[0], ShouldEqual, "/assets/file-0.css")
			})
		})
	})
}

func TestPurgeTargetsAccumulatesFailures(t *testing.T) {
	Convey("Given a client rejecting the second of three batches", t, func() {
		rejection := []models.ErrorDetail{
			{Code: 1107, Message: "unable to purge url"},
		}

		var batchCount int
		clientMock := &mocks.ClienterMock{
			PurgeFilesFunc: func(ctx context.Context, zoneID string, urls []string) (*models.PurgeResponse, error) {
				batchCount++
				if batchCount == 2 {
					return &models.PurgeResponse{Success: false, Errors: rejection}, nil
				}
				return &models.PurgeResponse{Success: true}, nil
			},
		}
		s := New(testConfig(), clientMock, &stubScanner{}, nil, nil)

		Convey("When 1200 targets are purged", func() {
			targets := manyTargets(1200)
			result, err := s.purgeTargets(ctx, targets)

			Convey("Then every batch is still submitted", func() {
				So(err, ShouldBeNil)
				So(clientMock.PurgeFilesCalls(), ShouldHaveLength, 3)
			})

			Convey("And the rejection is recorded against the full request list", func() {
				So(result.Requested, ShouldResemble, targets)
				So(result.Errors, ShouldResemble, rejection)
				So(result.Succeeded(), ShouldBeFalse)
			})
		})
	})

	Convey("Given a client whose first call fails without structured errors", t, func() {
		var batchCount int
		clientMock := &mocks.ClienterMock{
			PurgeFilesFunc: func(ctx context.Context, zoneID string, urls []string) (*models.PurgeResponse, error) {
				batchCount++
				if batchCount == 1 {
					return nil, errors.New("connection reset by peer")
				}
				return &models.PurgeResponse{Success: true}, nil
			},
		}
		s := New(testConfig(), clientMock, &stubScanner{}, nil, nil)

		Convey("When two batches worth of targets are purged", func() {
			targets := manyTargets(600)
			result, err := s.purgeTargets(ctx, targets)

			Convey("Then the failure is recorded and the second batch is still submitted", func() {
				So(err, ShouldBeNil)
				So(clientMock.PurgeFilesCalls(), ShouldHaveLength, 2)
				So(result.Errors, ShouldResemble, []models.ErrorDetail{
					{Message: "connection reset by peer"},
				})
				So(result.Requested, ShouldResemble, targets)
			})
		})
	})
}
