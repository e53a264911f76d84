package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/ONSdigital/dp-api-clients-go/v2/health"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	dpNetRequest "github.com/ONSdigital/dp-net/v2/request"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	cachePurgeAPIURL = "http://localhost:29600"
)

var (
	ctx     = context.Background()
	headers = Headers{}
)

type MockedHTTPResponse struct {
	StatusCode int
	Body       interface{}
	Headers    map[string]string
}

func newCachePurgeAPIClient(_ *testing.T) *Client {
	return New(cachePurgeAPIURL)
}

// createHTTPClientMock returns a client stepping through the given responses, one per
// call. String bodies are written as plain text, the way the api writes its errors.
func createHTTPClientMock(mockedHTTPResponse ...MockedHTTPResponse) *dphttp.ClienterMock {
	numCall := 0
	return &dphttp.ClienterMock{
		DoFunc: func(ctx context.Context, req *http.Request) (*http.Response, error) {
			var body []byte
			switch v := mockedHTTPResponse[numCall].Body.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}
			resp := &http.Response{
				StatusCode: mockedHTTPResponse[numCall].StatusCode,
				Body:       io.NopCloser(bytes.NewReader(body)),
				Header:     http.Header{},
			}
			for hKey, hVal := range mockedHTTPResponse[numCall].Headers {
				resp.Header.Set(hKey, hVal)
			}
			numCall++
			return resp, nil
		},
		SetPathsWithNoRetriesFunc: func(paths []string) {},
		GetPathsWithNoRetriesFunc: func() []string {
			return []string{"/healthcheck"}
		},
	}
}

func newCachePurgeAPIHealthcheckClient(_ *testing.T, httpClient *dphttp.ClienterMock) *Client {
	healthClient := health.NewClientWithClienter(service, cachePurgeAPIURL, httpClient)
	return NewWithHealthClient(healthClient)
}

// Tests for the `New()` sdk client method
func TestClient(t *testing.T) {
	client := newCachePurgeAPIClient(t)

	Convey("Test client URL() method returns correct url", t, func() {
		So(client.URL(), ShouldEqual, cachePurgeAPIURL)
	})

	Convey("Test client Health() method returns correct health client", t, func() {
		So(client.Health(), ShouldNotBeNil)
		So(client.hcCli.Name, ShouldEqual, service)
		So(client.hcCli.URL, ShouldEqual, cachePurgeAPIURL)
	})
}

// Tests for the `NewWithHealthClient()` sdk client method
func TestHealthCheckerClient(t *testing.T) {
	initialStateCheck := health.CreateCheckState(service)

	Convey("If http client returns 200 OK response", t, func() {
		mockHTTPClient := createHTTPClientMock(MockedHTTPResponse{http.StatusOK, "", nil})
		client := newCachePurgeAPIHealthcheckClient(t, mockHTTPClient)

		Convey("Test client URL() method returns correct url", func() {
			So(client.URL(), ShouldEqual, cachePurgeAPIURL)
		})

		Convey("Test client Health() method returns correct health client", func() {
			So(client.Health(), ShouldNotBeNil)
			So(client.hcCli.Name, ShouldEqual, service)
			So(client.hcCli.URL, ShouldEqual, cachePurgeAPIURL)
		})

		Convey("Test client Checker() method returns expected check", func() {
			err := client.Checker(ctx, &initialStateCheck)
			So(err, ShouldBeNil)
			So(initialStateCheck.Name(), ShouldEqual, service)
			So(initialStateCheck.Status(), ShouldEqual, healthcheck.StatusOK)
		})
	})
}

// Tests for the `Headers.Add()` method
func TestHeadersAdd(t *testing.T) {
	Convey("Given a set of auth headers", t, func() {
		authHeaders := Headers{
			ServiceToken:    "service-token",
			UserAccessToken: "user-token",
		}

		Convey("When the headers are added to a request", func() {
			req, err := http.NewRequest(http.MethodGet, cachePurgeAPIURL, http.NoBody)
			So(err, ShouldBeNil)
			authHeaders.Add(req)

			Convey("Then the florence and service token headers are set", func() {
				So(req.Header.Get(dpNetRequest.FlorenceHeaderKey), ShouldEqual, "user-token")
				So(req.Header.Get(dpNetRequest.AuthHeaderKey), ShouldEqual, dpNetRequest.BearerPrefix+"service-token")
			})
		})
	})
}
