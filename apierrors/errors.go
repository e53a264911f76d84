package apierrors

import "errors"

// Error messages for Cache Purge API
var (
	ErrPurgeNotFound          = errors.New("purge not found")
	ErrPurgingDisabled        = errors.New("cache purging is disabled")
	ErrMissingPurgeType       = errors.New("missing purge type in request body")
	ErrInvalidPurgeType       = errors.New("invalid purge type in request body")
	ErrMissingPurgeURLs       = errors.New("missing urls for purge request")
	ErrMissingPurgePage       = errors.New("missing page for purge request")
	ErrNoImageExtensions      = errors.New("no image file extensions configured")
	ErrUnableToReadMessage    = errors.New("failed to read message body")
	ErrUnableToParseJSON      = errors.New("failed to parse json body")
	ErrInvalidQueryParameter  = errors.New("invalid query parameter")
	ErrTooManyQueryParameters = errors.New("too many query parameters have been provided")
	ErrUnauthorised           = errors.New("unauthorised access to API")
	ErrInternalServer         = errors.New("internal error")
)

// NotFoundMap contains all the errors that should return a 404 status code
var NotFoundMap = map[error]bool{
	ErrPurgeNotFound:   true,
	ErrPurgingDisabled: true,
}

// BadRequestMap contains all the errors that should return a 400 status code
var BadRequestMap = map[error]bool{
	ErrMissingPurgeType:       true,
	ErrInvalidPurgeType:       true,
	ErrMissingPurgeURLs:       true,
	ErrMissingPurgePage:       true,
	ErrUnableToReadMessage:    true,
	ErrUnableToParseJSON:      true,
	ErrInvalidQueryParameter:  true,
	ErrTooManyQueryParameters: true,
}
