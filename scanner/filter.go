package scanner

import (
	"path/filepath"
	"strings"
)

// defaultBlacklist holds the path fragments that mark framework and
// third-party install files. Assets under these paths are never served to
// end users under a purgeable public URL.
var defaultBlacklist = []string{
	"/vendor/",
	"/framework/",
	"/cms/",
	"/node_modules/",
}

// Filter decides whether a discovered filesystem path is eligible for
// purging. The zero value accepts every path.
type Filter struct {
	blacklist []string
}

// NewFilter returns a filter applying the default blacklist. When
// disableDefaults is true the returned filter accepts every path, leaving
// extension matching as the only eligibility check.
func NewFilter(disableDefaults bool) *Filter {
	if disableDefaults {
		return &Filter{}
	}
	return &Filter{blacklist: defaultBlacklist}
}

// Accepts reports whether path passes the blacklist. Matching is a plain
// substring test against the slash-separated form of the path.
func (f *Filter) Accepts(path string) bool {
	p := filepath.ToSlash(path)
	for _, fragment := range f.blacklist {
		if strings.Contains(p, fragment) {
			return false
		}
	}
	return true
}
