package svg

import (
	"github.com/tdewolff/minify/v2"
	minifysvg "github.com/tdewolff/minify/v2/svg"
)

// MediaType is the media type of documents produced by this package.
const MediaType = "image/svg+xml"

var minifier = func() *minify.M {
	m := minify.New()
	m.AddFunc(MediaType, minifysvg.Minify)
	return m
}()

// Minify returns a minified SVG document. The output renders identically but drops the one-attribute-per-line layout.
func Minify(s string) (string, error) {
	return minifier.String(MediaType, s)
}
