package cube

import (
	"strings"

	"github.com/tdewolff/parse/v2"
)

// Orientation is the state of one grid position in an OLL diagram: the outer edge carrying its sticker, or whether the position itself is colored.
type Orientation int

// see Orientation
const (
	Up Orientation = iota
	Down
	Left
	Right
	Face
	Empty
)

func (o Orientation) String() string {
	switch o {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Face:
		return "Face"
	case Empty:
		return "Empty"
	}
	return "Orientation(?)"
}

// Char returns the canonical notation character.
func (o Orientation) Char() byte {
	switch o {
	case Up:
		return 'U'
	case Down:
		return 'D'
	case Left:
		return 'L'
	case Right:
		return 'R'
	case Face:
		return '='
	}
	return '.'
}

// Directional returns true for Up, Down, Left and Right.
func (o Orientation) Directional() bool {
	return o == Up || o == Down || o == Left || o == Right
}

func orientationFromChar(c byte) (Orientation, bool) {
	switch c {
	case 'U':
		return Up, true
	case 'D':
		return Down, true
	case 'L':
		return Left, true
	case 'R':
		return Right, true
	case '=', 'F':
		return Face, true
	case '.', 'E', 'X', 'x':
		return Empty, true
	}
	return 0, false
}

// legalOrientations lists for each grid position the edges that are outer edges of the face.
// Face and Empty are legal everywhere. Positions are numbered
//
//	0 1 2
//	3 4 5
//	6 7 8
var legalOrientations = [9][]Orientation{
	{Left, Up},
	{Up},
	{Right, Up},
	{Left},
	{},
	{Right},
	{Left, Down},
	{Down},
	{Right, Down},
}

// Legal returns true if orientation o may appear at grid position i.
func Legal(i int, o Orientation) bool {
	if !o.Directional() {
		return o == Face || o == Empty
	} else if i < 0 || len(legalOrientations) <= i {
		return false
	}
	for _, legal := range legalOrientations[i] {
		if legal == o {
			return true
		}
	}
	return false
}

// FaceDescriptor is the orientation of each grid position in row-major order.
type FaceDescriptor [9]Orientation

// ParseFaceDescriptor parses a string such as "LUR L=R LDR" of exactly nine non-whitespace characters.
func ParseFaceDescriptor(s string) (FaceDescriptor, error) {
	desc := FaceDescriptor{}
	z := parse.NewInputString(s)
	i := 0
	for {
		if skipSpace(z); atEnd(z) {
			break
		}

		c := z.Peek(0)
		o, ok := orientationFromChar(c)
		if !ok {
			r, found := peekChar(z)
			err := newParseError(z, ErrUnknownOrientationChar, "%s", found)
			err.Char = r
			err.Position = i
			return FaceDescriptor{}, err
		} else if len(desc) <= i {
			err := newParseError(z, ErrMalformedDescriptor, "more than %d positions", len(desc))
			err.Char = rune(c)
			return FaceDescriptor{}, err
		} else if !Legal(i, o) {
			err := newParseError(z, ErrIllegalOrientation, "%v at position %d", o, i)
			err.Char = rune(c)
			err.Position = i
			err.Orientation = o
			return FaceDescriptor{}, err
		}
		desc[i] = o
		i++
		z.Move(1)
	}
	if i < len(desc) {
		return FaceDescriptor{}, newParseError(z, ErrMalformedDescriptor, "got %d of %d positions", i, len(desc))
	}
	return desc, nil
}

// String returns the canonical notation, three rows separated by spaces.
func (desc FaceDescriptor) String() string {
	var sb strings.Builder
	for i, o := range desc {
		if i != 0 && i%3 == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(o.Char())
	}
	return sb.String()
}

// Render returns the OLL diagram as an SVG document.
func (desc FaceDescriptor) Render(cfg SizeConfig) string {
	return RenderOLL(desc, cfg)
}
