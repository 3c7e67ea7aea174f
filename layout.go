package cube

import (
	"strings"

	"github.com/tdewolff/cube/svg"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// BigSquareSize returns the side of the black square behind the grid.
func BigSquareSize(cfg SizeConfig) int {
	return cfg.BorderWidth()*2 + cfg.GutterSize()*4 + cfg.CubieSize()*3
}

// RowOrColStart returns the pixel offset of row or column idx ∈ [0,2] of the grid.
func RowOrColStart(idx int, cfg SizeConfig) int {
	return cfg.StickerWidth() + cfg.GutterSize()*(2+idx) + cfg.BorderWidth() + cfg.CubieSize()*idx
}

// CellCenter returns the pixel offset of the center of row or column idx.
func CellCenter(idx int, cfg SizeConfig) int {
	return RowOrColStart(idx, cfg) + cfg.CubieSize()/2
}

// CanvasSize returns the width and height of the SVG document.
func CanvasSize(cfg SizeConfig) int {
	return BigSquareSize(cfg) + cfg.GutterSize()*2 + cfg.StickerWidth()*2
}

// outerBand is the offset of the bottom and right sticker bands.
func outerBand(cfg SizeConfig) int {
	return BigSquareSize(cfg) + cfg.StickerWidth() + cfg.GutterSize()*2
}

////////////////////////////////////////////////////////////////

// document collects the elements of one diagram.
type document struct {
	sb   strings.Builder
	root *svg.Tag
}

func newDocument(cfg SizeConfig) *document {
	size := CanvasSize(cfg)
	d := &document{
		root: svg.NewTag("svg").Attr("xmlns", svgNamespace).AttrInt("height", size).AttrInt("width", size),
	}
	d.sb.WriteString(d.root.Open())
	return d
}

func (d *document) open(tag *svg.Tag) {
	d.sb.WriteString(tag.Open())
}

func (d *document) close(tag *svg.Tag) {
	d.sb.WriteString(tag.Close())
}

func (d *document) add(tag *svg.Tag) {
	d.sb.WriteString(tag.String())
}

func (d *document) String() string {
	return d.sb.String() + d.root.Close()
}

func (d *document) bigSquare(cfg SizeConfig) {
	offset := cfg.StickerWidth() + cfg.GutterSize()
	d.square(offset, offset, BigSquareSize(cfg), "black")
}

func (d *document) square(x, y, size int, fill string) {
	d.add(svg.NewTag("path").
		Attr("fill", fill).
		Attr("border-width", "0").
		Attr("d", (&svg.Path{}).Rect(x, y, size, size).String()))
}

func (d *document) rect(x, y, w, h int, fill string) {
	d.add(svg.NewTag("path").
		Attr("fill", fill).
		Attr("stroke", "black").
		AttrInt("stroke-width", 2).
		Attr("d", (&svg.Path{}).Rect(x, y, w, h).String()))
}

// grid draws the nine inner squares, fill returns the color of grid position i.
func (d *document) grid(cfg SizeConfig, fill func(i int) string) {
	for i := 0; i < 9; i++ {
		x := RowOrColStart(i%3, cfg)
		y := RowOrColStart(i/3, cfg)
		d.square(x, y, cfg.CubieSize(), fill(i))
	}
}
