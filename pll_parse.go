package cube

import (
	"github.com/tdewolff/parse/v2"
)

// Grammar:
//
//	program   := statement*
//	statement := cubie operator cubie
//	cubie     := '1'..'9'
//	operator  := '<>' | '<' | '>'
type pllParser struct {
	z *parse.Input
}

// ParsePLLProgram parses a list of arrows such as "1<2 3>4 5<>6". Whitespace between tokens is ignored, the empty string is an empty program.
func ParsePLLProgram(s string) (Program, error) {
	p := &pllParser{parse.NewInputString(s)}
	prog := Program{}
	for {
		if skipSpace(p.z); atEnd(p.z) {
			return prog, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog = append(prog, stmt)
	}
}

func (p *pllParser) parseStatement() (Statement, error) {
	start, err := p.parseCubie()
	if err != nil {
		return Statement{}, err
	}
	op, err := p.parseOperator()
	if err != nil {
		return Statement{}, err
	}
	end, err := p.parseCubie()
	if err != nil {
		return Statement{}, err
	}
	return Statement{start, op, end}, nil
}

func (p *pllParser) parseCubie() (Cubie, error) {
	skipSpace(p.z)
	c := p.z.Peek(0)
	if c < '0' || '9' < c || atEnd(p.z) {
		r, found := peekChar(p.z)
		err := newParseError(p.z, ErrExpectedDigit, "found %s", found)
		err.Char = r
		return 0, err
	} else if c == '0' {
		err := newParseError(p.z, ErrOutOfRangeCubie, "%c not in 1-9", c)
		err.Char = rune(c)
		err.Digit = 0
		return 0, err
	}
	p.z.Move(1)
	return Cubie(c - '1'), nil
}

func (p *pllParser) parseOperator() (Operator, error) {
	skipSpace(p.z)
	if p.z.Peek(0) == '<' && p.z.Peek(1) == '>' {
		p.z.Move(2)
		return BothHead, nil
	} else if p.z.Peek(0) == '<' {
		p.z.Move(1)
		return StartHead, nil
	} else if p.z.Peek(0) == '>' {
		p.z.Move(1)
		return EndHead, nil
	}
	r, found := peekChar(p.z)
	err := newParseError(p.z, ErrUnexpectedOperator, "found %s", found)
	err.Char = r
	return 0, err
}
