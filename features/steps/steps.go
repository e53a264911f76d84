package steps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	assistdog "github.com/ONSdigital/dp-assistdog"
	"github.com/ONSdigital/dp-cache-purge-api/config"
	"github.com/ONSdigital/dp-cache-purge-api/events"
	"github.com/ONSdigital/dp-cache-purge-api/models"
	"github.com/ONSdigital/dp-cache-purge-api/schema"
	"github.com/cucumber/godog"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func (c *PurgeComponent) RegisterSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^private endpoints are enabled$`, c.privateEndpointsAreEnabled)
	ctx.Step(`^cloudflare purging is disabled$`, c.cloudflarePurgingIsDisabled)
	ctx.Step(`^there are no purges$`, c.thereAreNoPurges)
	ctx.Step(`^I have these purges:$`, c.iHaveThesePurges)
	ctx.Step(`^these files are recorded in the site database:$`, c.theseFilesAreRecordedInTheSiteDatabase)
	ctx.Step(`^a purge record of type "([^"]*)" in state "([^"]*)" with requested count (\d+) should be stored$`, c.aPurgeRecordShouldBeStored)
	ctx.Step(`^the cloudflare zone received a purge of these files:$`, c.theCloudflareZoneReceivedAPurgeOfTheseFiles)
	ctx.Step(`^the whole cloudflare zone is purged$`, c.theWholeCloudflareZoneIsPurged)
	ctx.Step(`^no cloudflare purge is executed$`, c.noCloudflarePurgeIsExecuted)
	ctx.Step(`^these cache purged events are produced:$`, c.theseCachePurgedEventsAreProduced)
}

func (c *PurgeComponent) privateEndpointsAreEnabled() error {
	c.Config.EnablePrivateEndpoints = true
	return nil
}

func (c *PurgeComponent) cloudflarePurgingIsDisabled() error {
	c.Config.CloudflareEnabled = false
	return nil
}

func (c *PurgeComponent) thereAreNoPurges() error {
	return c.MongoClient.Connection.DropDatabase(context.Background())
}

func (c *PurgeComponent) iHaveThesePurges(purgesJSON *godog.DocString) error {
	purges := []models.Purge{}

	if err := json.Unmarshal([]byte(purgesJSON.Content), &purges); err != nil {
		return err
	}

	for _, purgeDoc := range purges {
		if err := c.putDocumentInDatabase(purgeDoc, purgeDoc.ID, config.PurgesCollection); err != nil {
			return err
		}
	}

	return nil
}

func (c *PurgeComponent) theseFilesAreRecordedInTheSiteDatabase(filesJSON *godog.DocString) error {
	files := []models.StoredFile{}

	if err := json.Unmarshal([]byte(filesJSON.Content), &files); err != nil {
		return err
	}

	for _, fileDoc := range files {
		if err := c.putDocumentInDatabase(fileDoc, fileDoc.ID, config.FilesCollection); err != nil {
			return err
		}
	}

	return nil
}

func (c *PurgeComponent) aPurgeRecordShouldBeStored(purgeType, state string, requestedCount int) error {
	purges := []models.Purge{}

	collection := c.MongoClient.ActualCollectionName(config.PurgesCollection)
	_, err := c.MongoClient.Connection.Collection(collection).
		Find(context.Background(), bson.M{"type": purgeType}, &purges)
	if err != nil {
		return err
	}

	if len(purges) != 1 {
		return fmt.Errorf("expected exactly one stored purge of type %q, got %d", purgeType, len(purges))
	}

	assert.NotEmpty(&c.ErrorFeature, purges[0].ID)
	assert.Equal(&c.ErrorFeature, state, purges[0].State)
	assert.Equal(&c.ErrorFeature, requestedCount, purges[0].RequestedCount)

	return c.ErrorFeature.StepError()
}

func (c *PurgeComponent) theCloudflareZoneReceivedAPurgeOfTheseFiles(filesJSON *godog.DocString) error {
	var expected []string
	if err := json.Unmarshal([]byte(filesJSON.Content), &expected); err != nil {
		return err
	}

	var got []string
	for _, call := range c.CloudflareAPI.PurgeFilesCalls() {
		got = append(got, call.Urls...)
	}

	if diff := cmp.Diff(got, expected); diff != "" {
		return fmt.Errorf("-got +expected)\n%s\n", diff)
	}

	return nil
}

func (c *PurgeComponent) theWholeCloudflareZoneIsPurged() error {
	calls := c.CloudflareAPI.PurgeZoneCalls()
	if len(calls) != 1 {
		return fmt.Errorf("expected a single zone purge, got %d", len(calls))
	}

	assert.Equal(&c.ErrorFeature, c.Config.CloudflareConfig.ZoneID, calls[0].ZoneID)

	return c.ErrorFeature.StepError()
}

func (c *PurgeComponent) noCloudflarePurgeIsExecuted() error {
	if calls := len(c.CloudflareAPI.PurgeZoneCalls()); calls > 0 {
		return fmt.Errorf("expected no zone purges, got %d", calls)
	}
	if calls := len(c.CloudflareAPI.PurgeFilesCalls()); calls > 0 {
		return fmt.Errorf("expected no file purges, got %d", calls)
	}

	return nil
}

// theseCachePurgedEventsAreProduced reads the events the service under test has
// sent to its kafka output channel and validates that they match the expected
// values in the test. Purge ids are generated, so the table omits them.
func (c *PurgeComponent) theseCachePurgedEventsAreProduced(eventsTable *godog.Table) error {
	assist := assistdog.NewDefault()
	assist.RegisterParser(int32(0), func(raw string) (interface{}, error) {
		value, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, err
		}
		return int32(value), nil
	})

	rawExpected, err := assist.CreateSlice(new(events.CachePurged), eventsTable)
	if err != nil {
		return fmt.Errorf("failed to create slice from godog table: %w", err)
	}

	expected, ok := rawExpected.([]*events.CachePurged)
	if !ok {
		return errors.New("unexpected type from godog table")
	}

	var got []*events.CachePurged
	listen := true

	for listen {
		select {
		case <-time.After(time.Second * 2):
			listen = false
		case msg, ok := <-c.kafkaOutput:
			if !ok {
				return errors.New("output channel closed")
			}

			var e events.CachePurged
			if err := schema.CachePurgedEvent.Unmarshal(msg.Value, &e); err != nil {
				return fmt.Errorf("error unmarshalling message: %w", err)
			}

			got = append(got, &e)

			if len(got) == len(expected) {
				listen = false
			}
		}
	}

	for _, e := range got {
		if e.PurgeID == "" {
			return errors.New("expected event to carry the purge id")
		}
		e.PurgeID = ""
	}

	if diff := cmp.Diff(got, expected); diff != "" {
		return fmt.Errorf("-got +expected)\n%s\n", diff)
	}

	return nil
}

func (c *PurgeComponent) putDocumentInDatabase(document interface{}, id, collectionName string) error {
	update := bson.M{
		"$set": document,
	}

	collection := c.MongoClient.ActualCollectionName(collectionName)
	_, err := c.MongoClient.Connection.Collection(collection).
		UpsertById(context.Background(), id, update)

	return err
}
