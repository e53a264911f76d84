package scanner

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

var ctx = context.Background()

// createProjectTree writes a small website project to a temp dir: a combined
// assets folder, a theme folder and a vendored framework install.
func createProjectTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := []string{
		"assets/_combinedfiles/combined.min-3f8a9c.css",
		"themes/site/css/layout.css",
		"themes/site/javascript/app.js",
		"themes/site/images/logo.png",
		"vendor/framework-lib/client/install.css",
		"README.md",
	}
	for _, f := range files {
		path := filepath.Join(root, f)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return root
}

func TestScan(t *testing.T) {
	t.Parallel()
	Convey("Given a project tree containing theme, combined and vendored assets", t, func() {
		root := createProjectTree(t)

		Convey("When scanning for css and js with the default blacklist", func() {
			s := New(NewFilter(false))
			paths, err := s.Scan(ctx, []string{root}, []string{"css", "js"})
			So(err, ShouldBeNil)
			sort.Strings(paths)

			Convey("Then matching files are returned and vendored files are excluded", func() {
				So(paths, ShouldResemble, []string{
					filepath.Join(root, "assets/_combinedfiles/combined.min-3f8a9c.css"),
					filepath.Join(root, "themes/site/css/layout.css"),
					filepath.Join(root, "themes/site/javascript/app.js"),
				})
			})
		})

		Convey("When scanning with the blacklist disabled", func() {
			s := New(NewFilter(true))
			paths, err := s.Scan(ctx, []string{root}, []string{"css"})
			So(err, ShouldBeNil)
			sort.Strings(paths)

			Convey("Then the vendored framework file appears in the results", func() {
				So(paths, ShouldResemble, []string{
					filepath.Join(root, "assets/_combinedfiles/combined.min-3f8a9c.css"),
					filepath.Join(root, "themes/site/css/layout.css"),
					filepath.Join(root, "vendor/framework-lib/client/install.css"),
				})
			})
		})

		Convey("When scanning for an extension with no matches", func() {
			s := New(NewFilter(false))
			paths, err := s.Scan(ctx, []string{root}, []string{"webp"})
			So(err, ShouldBeNil)

			Convey("Then no paths are returned", func() {
				So(paths, ShouldBeEmpty)
			})
		})

		Convey("When one of the scan roots does not exist", func() {
			s := New(NewFilter(false))
			paths, err := s.Scan(ctx, []string{filepath.Join(root, "no-such-folder"), root}, []string{"js"})
			So(err, ShouldBeNil)

			Convey("Then the missing root is skipped and the other root is still scanned", func() {
				So(paths, ShouldResemble, []string{
					filepath.Join(root, "themes/site/javascript/app.js"),
				})
			})
		})

		Convey("When a directory name carries a matching extension", func() {
			So(os.MkdirAll(filepath.Join(root, "themes/site/widget.js"), 0o755), ShouldBeNil)

			s := New(NewFilter(false))
			paths, err := s.Scan(ctx, []string{root}, []string{"js"})
			So(err, ShouldBeNil)

			Convey("Then only regular files are returned", func() {
				So(paths, ShouldResemble, []string{
					filepath.Join(root, "themes/site/javascript/app.js"),
				})
			})
		})

		Convey("When the same root is scanned twice", func() {
			s := New(NewFilter(false))
			paths, err := s.Scan(ctx, []string{root, root}, []string{"js"})
			So(err, ShouldBeNil)

			Convey("Then duplicate paths are reported once per root", func() {
				So(paths, ShouldResemble, []string{
					filepath.Join(root, "themes/site/javascript/app.js"),
					filepath.Join(root, "themes/site/javascript/app.js"),
				})
			})
		})
	})
}
