package cube

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestRenderPLLEmpty(t *testing.T) {
	prog, err := ParsePLLProgram("")
	test.Error(t, err)

	svg := RenderPLL(prog, FromCubieSize(25))
	test.That(t, strings.HasPrefix(svg, "<svg\n   xmlns=\"http://www.w3.org/2000/svg\"\n   height=\"101\"\n   width=\"101\">\n<defs\n>\n<marker\n"))
	test.That(t, strings.Contains(svg, "<path\n   d=\"M 0 0 L 10 5 L 0 10 z\"\n   fill=\"red\">\n</path>\n</marker>\n</defs>\n"))

	elems := parseElements(t, svg)
	test.T(t, len(filterElements(elems, "defs")), 1)
	test.T(t, len(filterElements(elems, "marker")), 1)
	test.T(t, len(filterElements(elems, "path")), 1+1+9)
	test.T(t, len(filterElements(elems, "line")), 0)
}

func TestRenderPLLMarker(t *testing.T) {
	elems := parseElements(t, RenderPLL(Program{}, DefaultSizeConfig))
	marker := filterElements(elems, "marker")[0]
	test.T(t, marker.keys, []string{"id", "viewBox", "refX", "refY", "markerWidth", "markerHeight", "orient"})
	test.String(t, marker.attrs["id"], "arrow")
	test.String(t, marker.attrs["viewBox"], "0 0 10 10")
	test.String(t, marker.attrs["orient"], "auto-start-reverse")
}

func TestRenderPLLGrid(t *testing.T) {
	cfg := FromCubieSize(25)
	paths := filterElements(parseElements(t, RenderPLL(Program{}, cfg)), "path")
	test.String(t, paths[1].attrs["fill"], "black")
	test.T(t, paths[1].rect(t), [4]int{7, 7, 87, 87})
	for i, e := range paths[2:] {
		test.String(t, e.attrs["fill"], "yellow", i)
		test.T(t, e.rect(t), [4]int{RowOrColStart(i%3, cfg), RowOrColStart(i/3, cfg), 25, 25}, i)
	}
}

func TestRenderPLLLines(t *testing.T) {
	prog, err := ParsePLLProgram("1<2 3>4 5<>6")
	test.Error(t, err)

	lines := filterElements(parseElements(t, RenderPLL(prog, FromCubieSize(25))), "line")
	test.T(t, len(lines), 3)

	var tts = []struct {
		x1, y1, x2, y2 int
		start, end     bool
	}{
		{23, 23, 50, 23, true, false},
		{77, 23, 23, 50, false, true},
		{50, 50, 77, 50, true, true},
	}
	for i, tt := range tts {
		line := lines[i]
		test.T(t, line.int(t, "x1"), tt.x1, i)
		test.T(t, line.int(t, "y1"), tt.y1, i)
		test.T(t, line.int(t, "x2"), tt.x2, i)
		test.T(t, line.int(t, "y2"), tt.y2, i)
		test.String(t, line.attrs["stroke"], "red")
		test.String(t, line.attrs["stroke-width"], "4")

		_, hasStart := line.attrs["marker-start"]
		_, hasEnd := line.attrs["marker-end"]
		test.T(t, hasStart, tt.start, i)
		test.T(t, hasEnd, tt.end, i)
		if hasStart {
			test.String(t, line.attrs["marker-start"], "url(#arrow)")
		}
		if hasEnd {
			test.String(t, line.attrs["marker-end"], "url(#arrow)")
		}
	}
	test.T(t, lines[2].keys, []string{"x1", "y1", "x2", "y2", "stroke-width", "stroke", "marker-start", "marker-end"})
}

func TestRenderPLLOrder(t *testing.T) {
	prog := Program{{8, EndHead, 0}, {0, EndHead, 8}}
	lines := filterElements(parseElements(t, RenderPLL(prog, DefaultSizeConfig)), "line")
	test.T(t, lines[0].int(t, "x1"), 77)
	test.T(t, lines[1].int(t, "x1"), 23)
}

func TestRenderPLLDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		prog := RandomProgram(i)
		cfg := FromCubieSize(10 + i*7)
		test.String(t, RenderPLL(prog, cfg), RenderPLL(prog, cfg))
		test.String(t, prog.Render(cfg), RenderPLL(prog, cfg))
		test.T(t, len(filterElements(parseElements(t, RenderPLL(prog, cfg)), "line")), i)
	}
}
