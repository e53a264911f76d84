package events

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	avroMarshalErr = "error while attempting to marshal cachePurged event to avro bytes"

	purgeNilErr     = newProducerError(nil, "failed to send cache purged event as no purge record was given")
	purgeIDEmptyErr = newProducerError(nil, "failed to send cache purged event as the purge ID was empty")
)

// ProducerError is a wrapper for errors returned from the CachePurgedProducer
type ProducerError struct {
	originalErr error
	message     string
	args        []interface{}
}

func newProducerError(err error, message string, args ...interface{}) ProducerError {
	return ProducerError{
		originalErr: err,
		message:     message,
		args:        args,
	}
}

// Error return details about the error
func (prodErr ProducerError) Error() string {
	if prodErr.originalErr == nil {
		return errors.Errorf(prodErr.message, prodErr.args...).Error()
	}
	return errors.Wrap(prodErr.originalErr, fmt.Sprintf(prodErr.message, prodErr.args...)).Error()
}
