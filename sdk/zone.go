package sdk

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ONSdigital/dp-cache-purge-api/models"
)

// GetZone returns the identity of the CDN zone the api purges
func (c *Client) GetZone(ctx context.Context, headers Headers) (zone models.Zone, err error) {
	zone = models.Zone{}

	// Build URI
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "zone")
	if err != nil {
		return zone, err
	}

	// Make request
	resp, err := c.DoAuthenticatedGetRequest(ctx, headers, uri)
	if err != nil {
		return zone, err
	}
	defer closeResponseBody(ctx, resp)

	// Unmarshal the response body to target
	err = unmarshalResponseBody(resp, http.StatusOK, &zone)

	return zone, err
}
