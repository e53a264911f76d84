package purge

import (
	"context"
	"strings"
)

// buildPurgeTargets assembles the target list for an extension set: asset
// files found on disk under the combined assets and project base folders,
// followed by the stored file links when includeStore is set. The two sources
// are concatenated in that order and never deduplicated, so a file visible to
// both is purged twice.
func (s *Service) buildPurgeTargets(ctx context.Context, extensions []string, includeStore bool) ([]string, error) {
	roots := []string{s.cfg.CombinedAssetsFolder, s.cfg.ProjectBaseFolder}

	paths, err := s.scanner.Scan(ctx, roots, extensions)
	if err != nil {
		return nil, err
	}

	targets := make([]string, 0, len(paths))
	for _, path := range paths {
		targets = append(targets, s.siteRelativeTarget(path))
	}

	if includeStore {
		files, err := s.datastore.GetFilesWithExtensions(ctx, extensions)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			targets = append(targets, file.Link)
		}
	}

	return targets, nil
}

// siteRelativeTarget trims the project base folder from a scanned path so the
// target matches the path the file is served under.
func (s *Service) siteRelativeTarget(path string) string {
	return strings.TrimPrefix(path, s.cfg.ProjectBaseFolder)
}
