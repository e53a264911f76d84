package events

// CachePurged provides an avro structure for a cache purged event
type CachePurged struct {
	PurgeID        string `avro:"purge_id"`
	PurgeType      string `avro:"purge_type"`
	RequestedCount int32  `avro:"requested_count"`
	ErrorCount     int32  `avro:"error_count"`
}
