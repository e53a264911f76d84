package mongo

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ONSdigital/dp-cache-purge-api/config"
	"github.com/ONSdigital/dp-cache-purge-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	mongodriver "github.com/ONSdigital/dp-mongodb/v3/mongodb"
)

// GetFilesWithExtensions retrieves all stored file records whose filename ends with
// one of the given extensions. An empty extension list matches no files.
func (m *Mongo) GetFilesWithExtensions(ctx context.Context, extensions []string) ([]models.StoredFile, error) {
	if len(extensions) == 0 {
		return []models.StoredFile{}, nil
	}

	filter := bson.M{"filename": primitive.Regex{Pattern: filenameSuffixPattern(extensions)}}

	files := []models.StoredFile{}
	_, err := m.Connection.Collection(m.ActualCollectionName(config.FilesCollection)).
		Find(ctx, filter, &files, mongodriver.Sort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}

	return files, nil
}

// filenameSuffixPattern builds a case sensitive regular expression matching filenames
// with any of the given extensions, e.g. []string{"css", "js"} becomes `\.(css|js)$`.
func filenameSuffixPattern(extensions []string) string {
	quoted := make([]string, 0, len(extensions))
	for _, extension := range extensions {
		quoted = append(quoted, regexp.QuoteMeta(extension))
	}

	return fmt.Sprintf(`\.(%s)$`, strings.Join(quoted, "|"))
}
