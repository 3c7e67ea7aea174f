package cube

import (
	"github.com/tdewolff/cube/svg"
)

const arrowMarkerID = "arrow"

// RenderPLL returns an SVG document of a uniform grid with one arrow per statement.
func RenderPLL(prog Program, cfg SizeConfig) string {
	d := newDocument(cfg)
	renderDefs(d)
	d.bigSquare(cfg)
	d.grid(cfg, func(int) string {
		return "yellow"
	})
	for _, stmt := range prog {
		renderStatement(d, stmt, cfg)
	}
	return d.String()
}

func renderDefs(d *document) {
	defs := svg.NewTag("defs")
	marker := svg.NewTag("marker").
		Attr("id", arrowMarkerID).
		Attr("viewBox", "0 0 10 10").
		AttrInt("refX", 5).
		AttrInt("refY", 5).
		AttrInt("markerWidth", 3).
		AttrInt("markerHeight", 3).
		Attr("orient", "auto-start-reverse")
	head := (&svg.Path{}).MoveTo(0, 0).LineTo(10, 5).LineTo(0, 10).Close()

	d.open(defs)
	d.open(marker)
	d.add(svg.NewTag("path").Attr("d", head.String()).Attr("fill", "red"))
	d.close(marker)
	d.close(defs)
}

func renderStatement(d *document, stmt Statement, cfg SizeConfig) {
	line := svg.NewTag("line").
		AttrInt("x1", CellCenter(stmt.Start.Col(), cfg)).
		AttrInt("y1", CellCenter(stmt.Start.Row(), cfg)).
		AttrInt("x2", CellCenter(stmt.End.Col(), cfg)).
		AttrInt("y2", CellCenter(stmt.End.Row(), cfg)).
		AttrInt("stroke-width", 4).
		Attr("stroke", "red")
	if stmt.Op.HasStartHead() {
		line.Attr("marker-start", "url(#"+arrowMarkerID+")")
	}
	if stmt.Op.HasEndHead() {
		line.Attr("marker-end", "url(#"+arrowMarkerID+")")
	}
	d.add(line)
}
