package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ONSdigital/dp-cache-purge-api/models"
	"github.com/pkg/errors"
)

// PurgesList represents an object containing a page of purge records. This struct is based
// on the `pagination.page` struct which is returned when we call the `api.getPurges` endpoint
type PurgesList struct {
	Items      []models.Purge `json:"items"`
	Count      int            `json:"count"`
	Offset     int            `json:"offset"`
	Limit      int            `json:"limit"`
	TotalCount int            `json:"total_count"`
}

// QueryParams represents the query parameters accepted when listing purge records
type QueryParams struct {
	Offset int
	Limit  int
	Types  []string
}

// Validate validates that no negative values are provided for limit or offset
func (q *QueryParams) Validate() error {
	if q.Offset < 0 || q.Limit < 0 {
		return errors.New("negative offsets or limits are not allowed")
	}

	return nil
}

// ErrInvalidCachePurgeAPIResponse is returned when the cache purge api does not respond
// with a valid status
type ErrInvalidCachePurgeAPIResponse struct {
	actualCode int
	uri        string
}

// Error should be called by the user to print out the stringified version of the error
func (e ErrInvalidCachePurgeAPIResponse) Error() string {
	return fmt.Sprintf("invalid response: %d from cache purge api: %s", e.actualCode, e.uri)
}

// Code returns the status code received from the cache purge api if an error is returned
func (e ErrInvalidCachePurgeAPIResponse) Code() int {
	return e.actualCode
}

// GetPurge returns the stored record of a single executed purge
func (c *Client) GetPurge(ctx context.Context, headers Headers, purgeID string) (purge models.Purge, err error) {
	purge = models.Purge{}

	// Build URI
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "purges", purgeID)
	if err != nil {
		return purge, err
	}

	// Make request
	resp, err := c.DoAuthenticatedGetRequest(ctx, headers, uri)
	if err != nil {
		return purge, err
	}
	defer closeResponseBody(ctx, resp)

	// Unmarshal the response body to target
	err = unmarshalResponseBody(resp, http.StatusOK, &purge)

	return purge, err
}

// GetPurges returns a page of purge records, newest first, optionally filtered by purge type
func (c *Client) GetPurges(ctx context.Context, headers Headers, queryParams *QueryParams) (purgesList PurgesList, err error) {
	purgesList = PurgesList{}

	// Build URI
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "purges")
	if err != nil {
		return purgesList, err
	}

	// Add query parameters to request if valid
	if queryParams != nil {
		if err := queryParams.Validate(); err != nil {
			return purgesList, err
		}

		query := url.Values{}
		query.Add("limit", strconv.Itoa(queryParams.Limit))
		query.Add("offset", strconv.Itoa(queryParams.Offset))
		if len(queryParams.Types) > 0 {
			query.Add("type", strings.Join(queryParams.Types, ","))
		}
		uri.RawQuery = query.Encode()
	}

	// Make request
	resp, err := c.DoAuthenticatedGetRequest(ctx, headers, uri)
	if err != nil {
		return purgesList, err
	}
	defer closeResponseBody(ctx, resp)

	// Unmarshal the response body to target
	err = unmarshalResponseBody(resp, http.StatusOK, &purgesList)

	return purgesList, err
}

// PostPurge executes a purge of the given type and returns the stored record of its outcome
func (c *Client) PostPurge(ctx context.Context, headers Headers, purgeRequest models.PurgeRequest) (purge models.Purge, err error) {
	purge = models.Purge{}

	// Build URI
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "purges")
	if err != nil {
		return purge, err
	}

	payload, err := json.Marshal(purgeRequest)
	if err != nil {
		return purge, errors.Wrap(err, "error while attempting to marshall purge request")
	}

	// Make request
	resp, err := c.DoAuthenticatedPostRequest(ctx, headers, uri, payload)
	if err != nil {
		return purge, errors.Wrap(err, "http client returned error while attempting to make request")
	}
	defer closeResponseBody(ctx, resp)

	// Unmarshal the response body to target
	err = unmarshalResponseBody(resp, http.StatusCreated, &purge)

	return purge, err
}

// getPurgesBatch returns a batch of purge records for the given limit and offset, along
// with a typed error carrying the status code when the response is not a 200
func (c *Client) getPurgesBatch(ctx context.Context, headers Headers, limit, offset int) (purgesList PurgesList, err error) {
	purgesList = PurgesList{}

	// Build URI
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "purges")
	if err != nil {
		return purgesList, err
	}

	query := url.Values{}
	query.Add("limit", strconv.Itoa(limit))
	query.Add("offset", strconv.Itoa(offset))
	uri.RawQuery = query.Encode()

	// Make request
	resp, err := c.DoAuthenticatedGetRequest(ctx, headers, uri)
	if err != nil {
		return purgesList, err
	}
	defer closeResponseBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		return purgesList, &ErrInvalidCachePurgeAPIResponse{
			actualCode: resp.StatusCode,
			uri:        fmt.Sprintf("%s?%s", uri.Path, uri.RawQuery),
		}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return purgesList, err
	}

	err = json.Unmarshal(b, &purgesList)

	return purgesList, err
}
