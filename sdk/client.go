package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ONSdigital/dp-api-clients-go/v2/health"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	dpNetRequest "github.com/ONSdigital/dp-net/v2/request"
	"github.com/ONSdigital/log.go/v2/log"
)

const (
	service = "dp-cache-purge-api"
)

type Client struct {
	hcCli *health.Client
}

// Contains the headers to be added to any request
type Headers struct {
	ServiceToken    string
	UserAccessToken string
}

// Adds headers to the input request
func (h *Headers) Add(request *http.Request) {
	dpNetRequest.AddFlorenceHeader(request, h.UserAccessToken)
	dpNetRequest.AddServiceTokenHeader(request, h.ServiceToken)
}

// Checker calls the cache purge api health endpoint and returns a check object to the caller
func (c *Client) Checker(ctx context.Context, check *healthcheck.CheckState) error {
	return c.hcCli.Checker(ctx, check)
}

// Health returns the underlying Healthcheck Client for this API client
func (c *Client) Health() *health.Client {
	return c.hcCli
}

// URL returns the URL used by this client
func (c *Client) URL() string {
	return c.hcCli.URL
}

// New creates a new instance of Client for the service
func New(cachePurgeAPIURL string) *Client {
	return &Client{
		hcCli: health.NewClient(service, cachePurgeAPIURL),
	}
}

// NewWithHealthClient creates a new instance of service API Client, reusing the URL and Clienter
// from the provided healthcheck client
func NewWithHealthClient(hcCli *health.Client) *Client {
	return &Client{
		hcCli: health.NewClientWithClienter(service, hcCli.URL, hcCli.Client),
	}
}

// DoAuthenticatedGetRequest sends a GET request to the given uri, with the given headers
// applied. The uri's Path carries the full joined request URL.
func (c *Client) DoAuthenticatedGetRequest(ctx context.Context, headers Headers, uri *url.URL) (resp *http.Response, err error) {
	req, err := http.NewRequest(http.MethodGet, uri.Path, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = uri.RawQuery

	headers.Add(req)

	return c.hcCli.Client.Do(ctx, req)
}

// DoAuthenticatedPostRequest sends a POST request with a json payload to the given uri,
// with the given headers applied
func (c *Client) DoAuthenticatedPostRequest(ctx context.Context, headers Headers, uri *url.URL, payload []byte) (resp *http.Response, err error) {
	req, err := http.NewRequest(http.MethodPost, uri.Path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = uri.RawQuery
	req.Header.Set("Content-Type", "application/json")

	headers.Add(req)

	return c.hcCli.Client.Do(ctx, req)
}

// closeResponseBody closes the response body and logs an error if unsuccessful
func closeResponseBody(ctx context.Context, resp *http.Response) {
	if resp.Body != nil {
		if err := resp.Body.Close(); err != nil {
			log.Error(ctx, "error closing http response body", err)
		}
	}
}

// Takes the input http response and unmarshalls the body to the input target. The api
// writes its errors as plain text, so a response with an unexpected status becomes an
// error carrying the response body.
func unmarshalResponseBody(response *http.Response, expectedStatus int, target interface{}) (err error) {
	b, err := io.ReadAll(response.Body)
	if err != nil {
		return errors.New("client failed to read CachePurgeAPI body")
	}

	if response.StatusCode != expectedStatus {
		return errors.New(strings.TrimSpace(string(b)))
	}

	return json.Unmarshal(b, &target)
}
