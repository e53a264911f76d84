package models

// Zone identifies the CDN zone purge requests are issued against.
type Zone struct {
	ID string `json:"zone_id"`
}
