package events

import (
	"context"
	"testing"

	"github.com/ONSdigital/dp-cache-purge-api/mocks"
	"github.com/ONSdigital/dp-cache-purge-api/models"
	kafka "github.com/ONSdigital/dp-kafka/v4"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

var testContext = context.Background()

func TestPurgeCompletedValidationErrors(t *testing.T) {
	producerMock := &mocks.KafkaProducerMock{
		OutputFunc: func() chan kafka.BytesMessage {
			return nil
		},
	}

	marshallerMock := &mocks.MarshallerMock{
		MarshalFunc: func(s interface{}) ([]byte, error) {
			return nil, nil
		},
	}

	producer := CachePurgedProducer{
		Producer:   producerMock,
		Marshaller: marshallerMock,
	}

	Convey("Given no purge record", t, func() {

		Convey("When the producer is called", func() {
			err := producer.PurgeCompleted(testContext, nil)

			Convey("Then the expected error is returned", func() {
				So(err, ShouldResemble, purgeNilErr)
			})

			Convey("And marshaller is never called", func() {
				So(len(marshallerMock.MarshalCalls()), ShouldEqual, 0)
			})

			Convey("And producer is never called", func() {
				So(len(producerMock.OutputCalls()), ShouldEqual, 0)
			})
		})
	})

	Convey("Given a purge record without an ID", t, func() {
		Convey("When the producer is called", func() {
			err := producer.PurgeCompleted(testContext, &models.Purge{Type: models.PurgeTypeAll})

			Convey("Then the expected error is returned", func() {
				So(err, ShouldResemble, purgeIDEmptyErr)
			})

			Convey("And marshaller is never called", func() {
				So(len(marshallerMock.MarshalCalls()), ShouldEqual, 0)
			})

			Convey("And producer is never called", func() {
				So(len(producerMock.OutputCalls()), ShouldEqual, 0)
			})
		})
	})
}

func TestPurgeCompletedMarshalError(t *testing.T) {
	Convey("when marshal returns an error", t, func() {
		mockErr := errors.New("bork")

		producerMock := &mocks.KafkaProducerMock{
			OutputFunc: func() chan kafka.BytesMessage {
				return nil
			},
		}

		marshallerMock := &mocks.MarshallerMock{
			MarshalFunc: func(s interface{}) ([]byte, error) {
				return nil, mockErr
			},
		}

		producer := CachePurgedProducer{
			Producer:   producerMock,
			Marshaller: marshallerMock,
		}

		err := producer.PurgeCompleted(testContext, &models.Purge{
			ID:   "6a022657-99a5-4c26-aedb-1192ddbb96f2",
			Type: models.PurgeTypeAll,
		})

		Convey("then the expected error is returned", func() {
			So(err, ShouldResemble, newProducerError(mockErr, avroMarshalErr))
		})

		Convey("and marshal is called one time", func() {
			So(len(marshallerMock.MarshalCalls()), ShouldEqual, 1)
		})

		Convey("and kafka producer is never called", func() {
			So(len(producerMock.OutputCalls()), ShouldEqual, 0)
		})
	})
}

func TestPurgeCompleted(t *testing.T) {
	Convey("given a completed purge record", t, func() {
		purge := &models.Purge{
			ID:             "6a022657-99a5-4c26-aedb-1192ddbb96f2",
			Type:           models.PurgeTypeImages,
			State:          models.FailedState,
			RequestedCount: 42,
			Errors:         []models.ErrorDetail{{Code: 1107, Message: "unable to purge url"}},
		}

		expectedEvent := CachePurged{
			PurgeID:        purge.ID,
			PurgeType:      models.PurgeTypeImages,
			RequestedCount: 42,
			ErrorCount:     1,
		}

		output := make(chan kafka.BytesMessage, 1)
		avroBytes := []byte("hello world")

		producerMock := &mocks.KafkaProducerMock{
			OutputFunc: func() chan kafka.BytesMessage {
				return output
			},
		}

		marshallerMock := &mocks.MarshallerMock{
			MarshalFunc: func(s interface{}) ([]byte, error) {
				return avroBytes, nil
			},
		}

		producer := CachePurgedProducer{
			Producer:   producerMock,
			Marshaller: marshallerMock,
		}

		Convey("when the producer is called no error is returned", func() {
			err := producer.PurgeCompleted(testContext, purge)
			So(err, ShouldBeNil)

			Convey("then marshal is called with the expected parameters", func() {
				So(len(marshallerMock.MarshalCalls()), ShouldEqual, 1)
				So(marshallerMock.MarshalCalls()[0].S, ShouldResemble, expectedEvent)
			})

			Convey("and producer output is called one time with the expected parameters", func() {
				So(len(producerMock.OutputCalls()), ShouldEqual, 1)

				sent := <-output
				So(sent.Value, ShouldResemble, avroBytes)
				So(sent.Context, ShouldEqual, testContext)
			})
		})
	})
}
