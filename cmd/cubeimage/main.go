package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/cube"
	"github.com/tdewolff/cube/svg"
)

type Main struct{}

type OLL struct {
	CubieSize int    `short:"w" default:"25" desc:"Width of each cubie"`
	Minify    bool   `short:"m" desc:"Minify SVG output"`
	Input     string `index:"0" desc:"Face descriptor, e.g. 'LUR L=R LDR'"`
}

type PLL struct {
	CubieSize int    `short:"w" default:"25" desc:"Width of each cubie"`
	Minify    bool   `short:"m" desc:"Minify SVG output"`
	Input     string `index:"0" desc:"Arrow program, e.g. '1<2 3>4 5<>6'"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Cube face diagram generator")
	root.AddCmd(&OLL{}, "oll", "Print an OLL diagram")
	root.AddCmd(&PLL{}, "pll", "Print a PLL diagram")
	root.AddCmd(&Gen{}, "gen", "Generate diagrams for all image comments in a markdown file")
	root.AddCmd(&Table{}, "table", "Align the columns of markdown tables")
	root.AddCmd(&Serve{}, "serve", "Serve diagrams over HTTP")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	return argp.ShowUsage
}

func (cmd *OLL) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	cfg, err := sizeConfig(cmd.CubieSize)
	if err != nil {
		return err
	}

	desc, err := cube.ParseFaceDescriptor(cmd.Input)
	if err != nil {
		return err
	}
	return writeSVG(os.Stdout, cube.RenderOLL(desc, cfg), cmd.Minify)
}

func (cmd *PLL) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	cfg, err := sizeConfig(cmd.CubieSize)
	if err != nil {
		return err
	}

	prog, err := cube.ParsePLLProgram(cmd.Input)
	if err != nil {
		return err
	}
	return writeSVG(os.Stdout, cube.RenderPLL(prog, cfg), cmd.Minify)
}

func sizeConfig(cubieSize int) (cube.SizeConfig, error) {
	cfg := cube.FromCubieSize(cubieSize)
	if !cfg.Valid() {
		return cube.SizeConfig{}, fmt.Errorf("cubie size must be in 1..%d: %d", cube.MaxCubieSize, cubieSize)
	}
	return cfg, nil
}

// writeSVG writes the document followed by a newline.
func writeSVG(w io.Writer, s string, minify bool) error {
	if minify {
		var err error
		if s, err = svg.Minify(s); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}
