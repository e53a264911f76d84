package schema

import "github.com/ONSdigital/dp-kafka/v4/avro"

var cachePurged = `{
  "type": "record",
  "name": "cache-purged",
  "fields": [
    {"name": "purge_id",        "type": "string", "default": ""},
    {"name": "purge_type",      "type": "string", "default": ""},
    {"name": "requested_count", "type": "int",    "default": 0},
    {"name": "error_count",     "type": "int",    "default": 0}
  ]
}`

// CachePurgedEvent the Avro schema for CachePurged messages.
var CachePurgedEvent = &avro.Schema{
	Definition: cachePurged,
}
