package sdk

import (
	"io"
	"net/http"
	"testing"

	"github.com/ONSdigital/dp-cache-purge-api/apierrors"
	"github.com/ONSdigital/dp-cache-purge-api/models"
	. "github.com/smartystreets/goconvey/convey"
)

const purgeID = "de7a6775-94e4-4b48-b646-09f2a8e24f09"

// Tests for the `GetPurge` client method
func TestGetPurge(t *testing.T) {
	mockGetResponse := models.Purge{
		ID:             purgeID,
		Type:           models.PurgeTypePage,
		State:          models.CompletedState,
		RequestedCount: 2,
	}

	Convey("If requested purge is valid and get request returns 200", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusOK, mockGetResponse, map[string]string{}})
		cachePurgeAPIClient := newCachePurgeAPIHealthcheckClient(t, httpClient)
		returnedPurge, err := cachePurgeAPIClient.GetPurge(ctx, headers, purgeID)

		Convey("Test that the request URI is constructed correctly and the correct method is used", func() {
			expectedURI := "/purges/" + purgeID
			So(httpClient.DoCalls()[0].Req.Method, ShouldEqual, http.MethodGet)
			So(httpClient.DoCalls()[0].Req.URL.RequestURI(), ShouldResemble, expectedURI)
		})

		Convey("Test that the requested purge is returned without error", func() {
			So(err, ShouldBeNil)
			So(returnedPurge, ShouldResemble, mockGetResponse)
		})
	})

	Convey("If requested purge is not found and get request returns 404", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusNotFound, apierrors.ErrPurgeNotFound.Error(), map[string]string{}})
		cachePurgeAPIClient := newCachePurgeAPIHealthcheckClient(t, httpClient)
		_, err := cachePurgeAPIClient.GetPurge(ctx, headers, purgeID)

		Convey("Test that an error is raised with the response body as its message", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, apierrors.ErrPurgeNotFound.Error())
		})
	})

	Convey("If the request encounters a server error and returns 500", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusInternalServerError, "internal error", map[string]string{}})
		cachePurgeAPIClient := newCachePurgeAPIHealthcheckClient(t, httpClient)
		_, err := cachePurgeAPIClient.GetPurge(ctx, headers, purgeID)

		Convey("Test that an error is raised with the correct message", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "internal error")
		})
	})
}

// Tests for the `GetPurges` client method
func TestGetPurges(t *testing.T) {
	mockGetResponse := PurgesList{
		Items: []models.Purge{
			{ID: "purge2", Type: models.PurgeTypeAll, State: models.CompletedState},
			{ID: "purge1", Type: models.PurgeTypePage, State: models.CompletedState, RequestedCount: 2},
		},
		Count:      2,
		Offset:     0,
		Limit:      20,
		TotalCount: 2,
	}

	Convey("If get request returns 200 and query parameters are provided", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusOK, mockGetResponse, map[string]string{}})
		cachePurgeAPIClient := newCachePurgeAPIHealthcheckClient(t, httpClient)
		queryParams := &QueryParams{Offset: 0, Limit: 20, Types: []string{models.PurgeTypePage, models.PurgeTypeAll}}
		returnedPurges, err := cachePurgeAPIClient.GetPurges(ctx, headers, queryParams)

		Convey("Test that the request URI is constructed correctly and the correct method is used", func() {
			expectedURI := "/purges?limit=20&offset=0&type=page%2Call"
			So(httpClient.DoCalls()[0].Req.Method, ShouldEqual, http.MethodGet)
			So(httpClient.DoCalls()[0].Req.URL.RequestURI(), ShouldResemble, expectedURI)
		})

		Convey("Test that the requested purges list is returned without error", func() {
			So(err, ShouldBeNil)
			So(returnedPurges, ShouldResemble, mockGetResponse)
		})
	})

	Convey("If get request returns 200 and no query parameters are provided", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusOK, mockGetResponse, map[string]string{}})
		cachePurgeAPIClient := newCachePurgeAPIHealthcheckClient(t, httpClient)
		_, err := cachePurgeAPIClient.GetPurges(ctx, headers, nil)

		Convey("Test that the request URI carries no query", func() {
			So(err, ShouldBeNil)
			So(httpClient.DoCalls()[0].Req.URL.RequestURI(), ShouldResemble, "/purges")
		})
	})

	Convey("If negative query parameters are provided", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusOK, mockGetResponse, map[string]string{}})
		cachePurgeAPIClient := newCachePurgeAPIHealthcheckClient(t, httpClient)
		queryParams := &QueryParams{Offset: -1, Limit: 20}
		_, err := cachePurgeAPIClient.GetPurges(ctx, headers, queryParams)

		Convey("Test that an error is raised and no request is sent", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "negative offsets or limits are not allowed")
			So(httpClient.DoCalls(), ShouldHaveLength, 0)
		})
	})
}

// Tests for the `PostPurge` client method
func TestPostPurge(t *testing.T) {
	mockPostResponse := models.Purge{
		ID:             purgeID,
		Type:           models.PurgeTypeURLs,
		State:          models.CompletedState,
		RequestedCount: 1,
	}

	Convey("If the purge request is valid and post request returns 201", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusCreated, mockPostResponse, map[string]string{}})
		cachePurgeAPIClient := newCachePurgeAPIHealthcheckClient(t, httpClient)
		purgeRequest := models.PurgeRequest{Type: models.PurgeTypeURLs, URLs: []string{"/economy"}}
		returnedPurge, err := cachePurgeAPIClient.PostPurge(ctx, headers, purgeRequest)

		Convey("Test that the request URI is constructed correctly and the correct method is used", func() {
			So(httpClient.DoCalls()[0].Req.Method, ShouldEqual, http.MethodPost)
			So(httpClient.DoCalls()[0].Req.URL.RequestURI(), ShouldResemble, "/purges")
		})

		Convey("Test that the purge request is sent as the request body", func() {
			b, readErr := io.ReadAll(httpClient.DoCalls()[0].Req.Body)
			So(readErr, ShouldBeNil)
			So(string(b), ShouldEqual, `{"type":"urls","urls":["/economy"]}`)
		})

		Convey("Test that the stored purge record is returned without error", func() {
			So(err, ShouldBeNil)
			So(returnedPurge, ShouldResemble, mockPostResponse)
		})
	})

	Convey("If the purge request is rejected with a 400", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusBadRequest, apierrors.ErrMissingPurgeURLs.Error(), map[string]string{}})
		cachePurgeAPIClient := newCachePurgeAPIHealthcheckClient(t, httpClient)
		purgeRequest := models.PurgeRequest{Type: models.PurgeTypeURLs}
		_, err := cachePurgeAPIClient.PostPurge(ctx, headers, purgeRequest)

		Convey("Test that an error is raised with the response body as its message", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, apierrors.ErrMissingPurgeURLs.Error())
		})
	})

	Convey("If purging is disabled and post request returns 404", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusNotFound, apierrors.ErrPurgingDisabled.Error(), map[string]string{}})
		cachePurgeAPIClient := newCachePurgeAPIHealthcheckClient(t, httpClient)
		purgeRequest := models.PurgeRequest{Type: models.PurgeTypeAll}
		_, err := cachePurgeAPIClient.PostPurge(ctx, headers, purgeRequest)

		Convey("Test that an error is raised with the response body as its message", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, apierrors.ErrPurgingDisabled.Error())
		})
	})
}

func TestClient_GetPurgesInBatches(t *testing.T) {
	purgesResponse1 := PurgesList{
		Items:      []models.Purge{{ID: "purge1", Type: models.PurgeTypePage}},
		TotalCount: 2, // Total count is read from the first response to determine how many batches are required
		Offset:     0,
		Count:      1,
	}

	purgesResponse2 := PurgesList{
		Items:      []models.Purge{{ID: "purge2", Type: models.PurgeTypeAll}},
		TotalCount: 2,
		Offset:     1,
		Count:      1,
	}

	expectedPurges := PurgesList{
		Items: []models.Purge{
			purgesResponse1.Items[0],
			purgesResponse2.Items[0],
		},
		Count:      2,
		TotalCount: 2,
	}

	batchSize := 1
	maxWorkers := 1

	Convey("When a 200 OK status is returned in 2 consecutive calls", t, func() {
		httpClient := createHTTPClientMock(
			MockedHTTPResponse{http.StatusOK, purgesResponse1, nil},
			MockedHTTPResponse{http.StatusOK, purgesResponse2, nil})

		cachePurgeAPIClient := newCachePurgeAPIHealthcheckClient(t, httpClient)

		processedBatches := []PurgesList{}
		var testProcess PurgesBatchProcessor = func(batch PurgesList) (abort bool, err error) {
			processedBatches = append(processedBatches, batch)
			return false, nil
		}

		Convey("then GetPurgesInBatches succeeds and returns the accumulated items from all the batches", func() {
			purges, err := cachePurgeAPIClient.GetPurgesInBatches(ctx, headers, batchSize, maxWorkers)

			So(err, ShouldBeNil)
			So(purges, ShouldResemble, expectedPurges)
		})

		Convey("then GetPurgesBatchProcess calls the batchProcessor function twice, with the expected batches", func() {
			err := cachePurgeAPIClient.GetPurgesBatchProcess(ctx, headers, testProcess, batchSize, maxWorkers)
			So(err, ShouldBeNil)
			So(processedBatches, ShouldResemble, []PurgesList{purgesResponse1, purgesResponse2})
			So(httpClient.DoCalls(), ShouldHaveLength, 2)
			So(httpClient.DoCalls()[0].Req.URL.String(), ShouldResemble,
				"http://localhost:29600/purges?limit=1&offset=0")
			So(httpClient.DoCalls()[1].Req.URL.String(), ShouldResemble,
				"http://localhost:29600/purges?limit=1&offset=1")
		})
	})

	Convey("When a 400 error status is returned in the first call", t, func() {
		httpClient := createHTTPClientMock(
			MockedHTTPResponse{http.StatusBadRequest, "", nil})
		cachePurgeAPIClient := newCachePurgeAPIHealthcheckClient(t, httpClient)

		processedBatches := []PurgesList{}
		var testProcess PurgesBatchProcessor = func(batch PurgesList) (abort bool, err error) {
			processedBatches = append(processedBatches, batch)
			return false, nil
		}

		Convey("then GetPurgesInBatches fails with the expected error and the process is aborted", func() {
			_, err := cachePurgeAPIClient.GetPurgesInBatches(ctx, headers, batchSize, maxWorkers)
			So(err, ShouldNotBeNil)
			So(err.(*ErrInvalidCachePurgeAPIResponse).actualCode, ShouldEqual, http.StatusBadRequest)
			So(err.(*ErrInvalidCachePurgeAPIResponse).uri, ShouldResemble, "http://localhost:29600/purges?limit=1&offset=0")
		})

		Convey("then GetPurgesBatchProcess fails with the expected error and doesn't call the batchProcessor", func() {
			err := cachePurgeAPIClient.GetPurgesBatchProcess(ctx, headers, testProcess, batchSize, maxWorkers)
			So(err, ShouldNotBeNil)
			So(err.(*ErrInvalidCachePurgeAPIResponse).actualCode, ShouldEqual, http.StatusBadRequest)
			So(err.(*ErrInvalidCachePurgeAPIResponse).uri, ShouldResemble, "http://localhost:29600/purges?limit=1&offset=0")
			So(processedBatches, ShouldResemble, []PurgesList{})
		})
	})

	Convey("When a 200 status is returned in the first call and a 400 error is returned in the second call", t, func() {
		httpClient := createHTTPClientMock(
			MockedHTTPResponse{http.StatusOK, purgesResponse1, nil},
			MockedHTTPResponse{http.StatusBadRequest, "", nil})
		cachePurgeAPIClient := newCachePurgeAPIHealthcheckClient(t, httpClient)

		processedBatches := []PurgesList{}
		var testProcess PurgesBatchProcessor = func(batch PurgesList) (abort bool, err error) {
			processedBatches = append(processedBatches, batch)
			return false, nil
		}

		Convey("then GetPurgesInBatches fails with the expected error, corresponding to the second batch, and the process is aborted", func() {
			_, err := cachePurgeAPIClient.GetPurgesInBatches(ctx, headers, batchSize, maxWorkers)
			So(err, ShouldNotBeNil)
			So(err.(*ErrInvalidCachePurgeAPIResponse).actualCode, ShouldEqual, http.StatusBadRequest)
			So(err.(*ErrInvalidCachePurgeAPIResponse).uri, ShouldResemble, "http://localhost:29600/purges?limit=1&offset=1")
		})

		Convey("then GetPurgesBatchProcess fails with the expected error and calls the batchProcessor for the first batch only", func() {
			err := cachePurgeAPIClient.GetPurgesBatchProcess(ctx, headers, testProcess, batchSize, maxWorkers)
			So(err, ShouldNotBeNil)
			So(err.(*ErrInvalidCachePurgeAPIResponse).actualCode, ShouldEqual, http.StatusBadRequest)
			So(err.(*ErrInvalidCachePurgeAPIResponse).uri, ShouldResemble, "http://localhost:29600/purges?limit=1&offset=1")
			So(processedBatches, ShouldResemble, []PurgesList{purgesResponse1})
		})
	})
}
