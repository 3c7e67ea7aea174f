package cube

// SizeConfig holds the dimensions of a diagram, all derived from the cubie size.
type SizeConfig struct {
	cubieSize int
}

// MaxCubieSize bounds the cubie size so that all derived coordinates fit comfortably in an int.
const MaxCubieSize = 10000

// DefaultSizeConfig is used by the command line tools when no size is given.
var DefaultSizeConfig = FromCubieSize(25)

// FromCubieSize returns the configuration for cubies of n by n pixels. The caller must ensure that n is positive.
func FromCubieSize(n int) SizeConfig {
	return SizeConfig{cubieSize: n}
}

// CubieSize is the edge length of one of the nine inner squares.
func (c SizeConfig) CubieSize() int {
	return c.cubieSize
}

// BorderWidth is the width of the black frame around the grid.
func (c SizeConfig) BorderWidth() int {
	return 2
}

// GutterSize is the spacing between cubies.
func (c SizeConfig) GutterSize() int {
	return c.cubieSize / 10
}

// StickerWidth is the thickness of an edge sticker.
func (c SizeConfig) StickerWidth() int {
	return c.cubieSize / 5
}

// Valid returns true if the cubie size is in 1..MaxCubieSize.
func (c SizeConfig) Valid() bool {
	return 0 < c.cubieSize && c.cubieSize <= MaxCubieSize
}
