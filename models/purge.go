package models

import (
	"encoding/json"
	"io"
	"time"

	errs "github.com/ONSdigital/dp-cache-purge-api/apierrors"
	"github.com/jinzhu/copier"
	uuid "github.com/satori/go.uuid"
)

// A list of reusable states across the api
const (
	CreatedState   = "created"
	CompletedState = "completed"
	FailedState    = "failed"
)

// A list of purge types accepted by the api
const (
	PurgeTypePage         = "page"
	PurgeTypeAll          = "all"
	PurgeTypeImages       = "images"
	PurgeTypeStaticAssets = "static-assets"
	PurgeTypeURLs         = "urls"
)

// ValidPurgeTypes is the set of purge types the api will execute
var ValidPurgeTypes = map[string]bool{
	PurgeTypePage:         true,
	PurgeTypeAll:          true,
	PurgeTypeImages:       true,
	PurgeTypeStaticAssets: true,
	PurgeTypeURLs:         true,
}

// ErrorDetail is a single provider-reported purge failure, carried through
// unchanged from the provider's response.
type ErrorDetail struct {
	Code    int64  `bson:"code"    json:"code"`
	Message string `bson:"message" json:"message"`
}

// PurgeResponse is the outcome of one purge call against the provider.
type PurgeResponse struct {
	Success bool
	Errors  []ErrorDetail
}

// PurgeResult records what a purge operation asked for and every error the
// provider reported while serving it. Requested always holds the full target
// list handed to the operation, whether or not any batch failed.
type PurgeResult struct {
	Requested []string
	Errors    []ErrorDetail
}

// Succeeded reports whether every batch of the operation was accepted.
func (r *PurgeResult) Succeeded() bool {
	return len(r.Errors) == 0
}

// Purge is the stored record of an executed purge operation.
type Purge struct {
	ID             string        `bson:"_id"              json:"id"`
	Type           string        `bson:"type"             json:"type"`
	State          string        `bson:"state"            json:"state"`
	RequestedCount int           `bson:"requested_count"  json:"requested_count"`
	Errors         []ErrorDetail `bson:"errors,omitempty" json:"errors,omitempty"`
	LastUpdated    time.Time     `bson:"last_updated"     json:"last_updated"`
}

// PurgeRequest is the body accepted when creating a purge.
type PurgeRequest struct {
	Type string   `json:"type"`
	URLs []string `json:"urls,omitempty"`
	Page *Page    `json:"page,omitempty"`
}

// CreatePurgeRequest manages the creation of a purge request from a reader
func CreatePurgeRequest(reader io.Reader) (*PurgeRequest, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, errs.ErrUnableToReadMessage
	}

	var request PurgeRequest
	if err = json.Unmarshal(b, &request); err != nil {
		return nil, errs.ErrUnableToParseJSON
	}

	return &request, nil
}

// ValidatePurgeRequest checks the content of the request structure
func ValidatePurgeRequest(request *PurgeRequest) error {
	if request.Type == "" {
		return errs.ErrMissingPurgeType
	}
	if !ValidPurgeTypes[request.Type] {
		return errs.ErrInvalidPurgeType
	}
	if request.Type == PurgeTypeURLs && len(request.URLs) == 0 {
		return errs.ErrMissingPurgeURLs
	}
	if request.Type == PurgeTypePage && request.Page == nil {
		return errs.ErrMissingPurgePage
	}
	return nil
}

// NewPurge builds the stored record for an executed purge operation. The
// state is derived from the result: completed when every batch was accepted,
// failed when the provider reported any error.
func NewPurge(purgeType string, result *PurgeResult) (*Purge, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	purge := &Purge{
		ID:    id.String(),
		Type:  purgeType,
		State: CreatedState,
	}

	if result == nil {
		return purge, nil
	}

	// local copy so the record never aliases the result's error slice
	var providerErrors []ErrorDetail
	if err := copier.Copy(&providerErrors, &result.Errors); err != nil {
		return nil, err
	}

	purge.RequestedCount = len(result.Requested)
	purge.Errors = providerErrors
	if result.Succeeded() {
		purge.State = CompletedState
	} else {
		purge.State = FailedState
	}

	return purge, nil
}
