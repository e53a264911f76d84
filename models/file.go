package models

// StoredFile is a persisted file record, as held by the record store. Link is
// the file's public URL, which may point at a host the filesystem scan never
// sees (remotely stored assets).
type StoredFile struct {
	ID       string `bson:"_id"      json:"id"`
	Filename string `bson:"filename" json:"filename"`
	Link     string `bson:"link"     json:"link"`
}
