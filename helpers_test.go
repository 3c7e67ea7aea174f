package cube

import (
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

func RandomFaceDescriptor() FaceDescriptor {
	desc := FaceDescriptor{}
	for i := range desc {
		choices := append([]Orientation{Face, Empty}, legalOrientations[i]...)
		desc[i] = choices[rand.IntN(len(choices))]
	}
	return desc
}

func RandomProgram(n int) Program {
	prog := Program{}
	for i := 0; i < n; i++ {
		prog = append(prog, Statement{
			Start: Cubie(rand.IntN(9)),
			Op:    Operator(rand.IntN(3)),
			End:   Cubie(rand.IntN(9)),
		})
	}
	return prog
}

////////////////////////////////////////////////////////////////

type element struct {
	name  string
	keys  []string
	attrs map[string]string
}

func (e element) rect(t *testing.T) [4]int {
	t.Helper()
	// M x y h w v h h -w v -h
	fields := strings.Fields(e.attrs["d"])
	if len(fields) != 11 || fields[0] != "M" || fields[3] != "h" || fields[5] != "v" {
		t.Fatalf("bad rectangle path: %s", e.attrs["d"])
	}
	r := [4]int{}
	for i, j := range []int{1, 2, 4, 6} {
		v, err := strconv.Atoi(fields[j])
		if err != nil {
			t.Fatalf("bad rectangle path: %s", e.attrs["d"])
		}
		r[i] = v
	}
	return r
}

func (e element) int(t *testing.T, key string) int {
	t.Helper()
	v, err := strconv.Atoi(e.attrs[key])
	if err != nil {
		t.Fatalf("bad %s attribute on %s: %v", key, e.name, err)
	}
	return v
}

// parseElements lexes an SVG document and returns its elements in document order. It fails when tags are not balanced.
func parseElements(t *testing.T, s string) []element {
	t.Helper()
	l := xml.NewLexer(parse.NewInputString(s))
	elems := []element{}
	open := []string{}
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				t.Fatalf("bad SVG: %v", l.Err())
			} else if len(open) != 0 {
				t.Fatalf("unclosed elements: %v", open)
			}
			return elems
		case xml.StartTagToken:
			name := string(l.Text())
			elems = append(elems, element{name: name, attrs: map[string]string{}})
			open = append(open, name)
		case xml.AttributeToken:
			val := l.AttrVal()
			val = val[1 : len(val)-1]
			e := &elems[len(elems)-1]
			e.keys = append(e.keys, string(l.Text()))
			e.attrs[string(l.Text())] = string(val)
		case xml.StartTagCloseVoidToken:
			open = open[:len(open)-1]
		case xml.EndTagToken:
			name := string(l.Text())
			if len(open) == 0 || open[len(open)-1] != name {
				t.Fatalf("unexpected end tag %s", name)
			}
			open = open[:len(open)-1]
		}
	}
}

func filterElements(elems []element, name string) []element {
	filtered := []element{}
	for _, e := range elems {
		if e.name == name {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
