package svg

import (
	"strconv"
	"strings"
)

// Path accumulates SVG path data commands. Coordinates are integer pixels.
type Path struct {
	cmds []string
}

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y int) *Path {
	return p.add("M", x, y)
}

// LineTo draws a straight line to (x,y).
func (p *Path) LineTo(x, y int) *Path {
	return p.add("L", x, y)
}

// HLine draws a horizontal line relative to the current position.
func (p *Path) HLine(dx int) *Path {
	return p.add("h", dx)
}

// VLine draws a vertical line relative to the current position.
func (p *Path) VLine(dy int) *Path {
	return p.add("v", dy)
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	return p.add("z")
}

// Rect draws a w by h rectangle with its top-left corner at (x,y), drawn clockwise with relative lines. The subpath is not closed.
func (p *Path) Rect(x, y, w, h int) *Path {
	return p.MoveTo(x, y).HLine(w).VLine(h).HLine(-w).VLine(-h)
}

func (p *Path) add(cmd string, args ...int) *Path {
	var sb strings.Builder
	sb.WriteString(cmd)
	for _, arg := range args {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(arg))
	}
	p.cmds = append(p.cmds, sb.String())
	return p
}

// String returns the path data, e.g. "M 10 10 h 20 v 20".
func (p *Path) String() string {
	return strings.Join(p.cmds, " ")
}
