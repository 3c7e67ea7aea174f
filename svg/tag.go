package svg

import (
	"strconv"
	"strings"
)

type attr struct {
	key, val string
}

// Tag is a single SVG element with an ordered attribute list. Attributes are written in the order they were added.
type Tag struct {
	name  string
	attrs []attr
}

// NewTag returns an element named name without attributes.
func NewTag(name string) *Tag {
	return &Tag{name: name}
}

// Attr appends an attribute. Values are written verbatim and must not contain double quotes.
func (t *Tag) Attr(key, val string) *Tag {
	t.attrs = append(t.attrs, attr{key, val})
	return t
}

// AttrInt appends an integer attribute.
func (t *Tag) AttrInt(key string, val int) *Tag {
	return t.Attr(key, strconv.Itoa(val))
}

// Open returns the opening tag, one attribute per line.
func (t *Tag) Open() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(t.name)
	sb.WriteByte('\n')
	for i, a := range t.attrs {
		if i != 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("   ")
		sb.WriteString(a.key)
		sb.WriteString(`="`)
		sb.WriteString(a.val)
		sb.WriteByte('"')
	}
	sb.WriteString(">\n")
	return sb.String()
}

// Close returns the closing tag.
func (t *Tag) Close() string {
	return "</" + t.name + ">\n"
}

// String returns the element without content, the opening tag directly followed by the closing tag.
func (t *Tag) String() string {
	return t.Open() + t.Close()
}
