package api

import (
	"encoding/json"
	"net/http"

	errs "github.com/ONSdigital/dp-cache-purge-api/apierrors"
	"github.com/ONSdigital/dp-cache-purge-api/models"
	"github.com/ONSdigital/log.go/v2/log"
)

// getZone returns the identifier of the CDN zone purges are issued against
func (api *CachePurgeAPI) getZone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logData := log.Data{}

	if !api.purgeService.Enabled() {
		log.Warn(ctx, "getZone endpoint: purging is disabled, no zone to report")
		handlePurgeAPIErr(ctx, errs.ErrPurgingDisabled, w, logData)
		return
	}

	zone := models.Zone{ID: api.purgeService.ZoneIdentifier()}
	logData["zone_id"] = zone.ID

	b, err := json.Marshal(zone)
	if err != nil {
		log.Error(ctx, "getZone endpoint: failed to marshal zone into bytes", err, logData)
		handlePurgeAPIErr(ctx, err, w, logData)
		return
	}

	setJSONContentType(w)
	if _, err = w.Write(b); err != nil {
		log.Error(ctx, "getZone endpoint: error writing response body", err, logData)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Info(ctx, "getZone endpoint: request successful", logData)
}
