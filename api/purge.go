package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	errs "github.com/ONSdigital/dp-cache-purge-api/apierrors"
	"github.com/ONSdigital/dp-cache-purge-api/models"
	"github.com/ONSdigital/dp-cache-purge-api/utils"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
)

// maxPurgeTypeFilters is the maximum number of type filters accepted on a
// list request
const maxPurgeTypeFilters = 10

// addPurge executes the requested purge operation and stores the record of
// its outcome. The stored record is returned in the response body.
func (api *CachePurgeAPI) addPurge(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Error(r.Context(), "error closing request body", err)
		}
	}()

	ctx := r.Context()
	logData := log.Data{}

	purge, err := func() (*models.Purge, error) {
		purgeRequest, err := models.CreatePurgeRequest(r.Body)
		if err != nil {
			log.Error(ctx, "addPurge endpoint: failed to unmarshal purge request", err, logData)
			return nil, err
		}
		logData["purge_type"] = purgeRequest.Type

		if err = models.ValidatePurgeRequest(purgeRequest); err != nil {
			log.Error(ctx, "addPurge endpoint: purge request failed validation", err, logData)
			return nil, err
		}

		if !api.purgeService.Enabled() {
			log.Warn(ctx, "addPurge endpoint: purging is disabled, request rejected", logData)
			return nil, errs.ErrPurgingDisabled
		}

		result, err := api.executePurge(ctx, purgeRequest)
		if err != nil {
			log.Error(ctx, "addPurge endpoint: purge operation failed", err, logData)
			return nil, err
		}
		if result == nil {
			return nil, errs.ErrNoImageExtensions
		}
		logData["requested_count"] = len(result.Requested)
		logData["error_count"] = len(result.Errors)

		purge, err := models.NewPurge(purgeRequest.Type, result)
		if err != nil {
			log.Error(ctx, "addPurge endpoint: failed to create purge record", err, logData)
			return nil, err
		}
		logData["purge_id"] = purge.ID

		if err = api.stateMachine.Transition(models.CreatedState, purge.State); err != nil {
			log.Error(ctx, "addPurge endpoint: invalid purge state transition", err, logData)
			return nil, err
		}

		if err = api.dataStore.Backend.UpsertPurge(ctx, purge); err != nil {
			log.Error(ctx, "addPurge endpoint: failed to upsert purge record", err, logData)
			return nil, err
		}

		return purge, nil
	}()

	if err != nil {
		handlePurgeAPIErr(ctx, err, w, logData)
		return
	}

	if err = api.eventProducer.PurgeCompleted(ctx, purge); err != nil {
		log.Error(ctx, "addPurge endpoint: failed to send cache purged event", err, logData)
	} else {
		log.Info(ctx, "addPurge endpoint: queued cache purged event for kafka", logData)
	}

	b, err := json.Marshal(purge)
	if err != nil {
		log.Error(ctx, "addPurge endpoint: failed to marshal purge record into bytes", err, logData)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	setJSONContentType(w)
	w.WriteHeader(http.StatusCreated)
	if _, err = w.Write(b); err != nil {
		log.Error(ctx, "addPurge endpoint: error writing response body", err, logData)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Info(ctx, "addPurge endpoint: request successful", logData)
}

// executePurge dispatches the validated request to the purge operation for
// its type.
func (api *CachePurgeAPI) executePurge(ctx context.Context, purgeRequest *models.PurgeRequest) (*models.PurgeResult, error) {
	switch purgeRequest.Type {
	case models.PurgeTypePage:
		return api.purgeService.PurgePage(ctx, purgeRequest.Page)
	case models.PurgeTypeAll:
		return api.purgeService.PurgeAll(ctx)
	case models.PurgeTypeImages:
		return api.purgeService.PurgeImages(ctx)
	case models.PurgeTypeStaticAssets:
		return api.purgeService.PurgeCSSAndJavascript(ctx)
	case models.PurgeTypeURLs:
		return api.purgeService.PurgeURLs(ctx, purgeRequest.URLs)
	default:
		return nil, errs.ErrInvalidPurgeType
	}
}

// getPurge returns the record of a single executed purge
func (api *CachePurgeAPI) getPurge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	id := vars["id"]
	logData := log.Data{"purge_id": id}

	purge, err := api.dataStore.Backend.GetPurge(ctx, id)
	if err != nil {
		log.Error(ctx, "getPurge endpoint: failed to find purge record", err, logData)
		handlePurgeAPIErr(ctx, err, w, logData)
		return
	}

	b, err := json.Marshal(purge)
	if err != nil {
		log.Error(ctx, "getPurge endpoint: failed to marshal purge record into bytes", err, logData)
		handlePurgeAPIErr(ctx, err, w, logData)
		return
	}

	setJSONContentType(w)
	if _, err = w.Write(b); err != nil {
		log.Error(ctx, "getPurge endpoint: error writing response body", err, logData)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Info(ctx, "getPurge endpoint: request successful", logData)
}

// getPurges returns a page of purge records, newest first, optionally
// filtered by purge type
func (api *CachePurgeAPI) getPurges(w http.ResponseWriter, r *http.Request, limit, offset int) (interface{}, int, error) {
	ctx := r.Context()
	logData := log.Data{}

	purges, totalCount, err := func() ([]*models.Purge, int, error) {
		purgeTypes, err := utils.GetQueryParamListValues(r.URL.Query(), "type", maxPurgeTypeFilters)
		if err != nil {
			log.Error(ctx, "getPurges endpoint: invalid type query parameter", err, logData)
			return nil, 0, err
		}

		for _, purgeType := range purgeTypes {
			if !models.ValidPurgeTypes[purgeType] {
				logData["type"] = purgeType
				err = errs.ErrInvalidQueryParameter
				log.Error(ctx, "getPurges endpoint: unknown purge type filter", err, logData)
				return nil, 0, err
			}
		}
		logData["types"] = purgeTypes

		purges, totalCount, err := api.dataStore.Backend.GetPurges(ctx, offset, limit, purgeTypes)
		if err != nil {
			log.Error(ctx, "getPurges endpoint: failed to retrieve purge records", err, logData)
			return nil, 0, err
		}

		return purges, totalCount, nil
	}()

	if err != nil {
		handlePurgeAPIErr(ctx, err, w, logData)
		return nil, 0, err
	}

	log.Info(ctx, "getPurges endpoint: request successful", logData)
	return purges, totalCount, nil
}

func handlePurgeAPIErr(ctx context.Context, err error, w http.ResponseWriter, data log.Data) {
	if data == nil {
		data = log.Data{}
	}

	status := getPurgeAPIErrStatusCode(err)
	if status == http.StatusInternalServerError {
		err = fmt.Errorf("%s: %w", errs.ErrInternalServer.Error(), err)
	}

	log.Error(ctx, "request unsuccessful", err, data)
	http.Error(w, err.Error(), status)
}

func getPurgeAPIErrStatusCode(err error) int {
	var status int
	switch {
	case errs.NotFoundMap[err]:
		status = http.StatusNotFound
	case errs.BadRequestMap[err]:
		status = http.StatusBadRequest
	case strings.HasPrefix(err.Error(), "state not allowed to transition"):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return status
}
