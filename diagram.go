package cube

import (
	"strings"

	"github.com/tdewolff/parse/v2"
)

// Diagram is a parsed OLL descriptor or PLL program.
type Diagram interface {
	Render(SizeConfig) string
	String() string
}

// ParseDiagram detects the notation of s and parses it. Strings containing '=' are OLL descriptors, otherwise strings containing '<' or '>' are PLL programs.
func ParseDiagram(s string) (Diagram, error) {
	if strings.ContainsRune(s, '=') {
		desc, err := ParseFaceDescriptor(s)
		if err != nil {
			return nil, err
		}
		return desc, nil
	} else if strings.ContainsAny(s, "<>") {
		prog, err := ParsePLLProgram(s)
		if err != nil {
			return nil, err
		}
		return prog, nil
	}
	return nil, newParseError(parse.NewInputString(s), ErrUnknownNotation, "%q", s)
}
