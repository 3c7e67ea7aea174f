package cube

import (
	"strconv"
	"strings"
)

// Cubie is a grid position in [0,8], written in the notation as the digit 1 to 9.
type Cubie int

// Row returns the grid row in [0,2].
func (c Cubie) Row() int {
	return int(c) / 3
}

// Col returns the grid column in [0,2].
func (c Cubie) Col() int {
	return int(c) % 3
}

func (c Cubie) String() string {
	return strconv.Itoa(int(c) + 1)
}

// Operator tells which ends of an arrow have an arrowhead.
type Operator int

// see Operator
const (
	StartHead Operator = iota
	EndHead
	BothHead
)

func (op Operator) String() string {
	switch op {
	case StartHead:
		return "<"
	case EndHead:
		return ">"
	case BothHead:
		return "<>"
	}
	return "Operator(?)"
}

// HasStartHead returns true for StartHead and BothHead.
func (op Operator) HasStartHead() bool {
	return op == StartHead || op == BothHead
}

// HasEndHead returns true for EndHead and BothHead.
func (op Operator) HasEndHead() bool {
	return op == EndHead || op == BothHead
}

// Statement is one arrow between two cubies.
type Statement struct {
	Start Cubie
	Op    Operator
	End   Cubie
}

func (stmt Statement) String() string {
	return stmt.Start.String() + stmt.Op.String() + stmt.End.String()
}

// Program is a list of arrows, drawn in order.
type Program []Statement

// String returns the canonical notation with statements separated by spaces.
func (prog Program) String() string {
	stmts := make([]string, len(prog))
	for i, stmt := range prog {
		stmts[i] = stmt.String()
	}
	return strings.Join(stmts, " ")
}

// Render returns the PLL diagram as an SVG document.
func (prog Program) Render(cfg SizeConfig) string {
	return RenderPLL(prog, cfg)
}
