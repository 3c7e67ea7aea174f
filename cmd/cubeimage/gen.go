package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/cube"
)

type Gen struct {
	Dest      string `short:"d" default:"images/" desc:"Destination directory"`
	CubieSize int    `short:"w" default:"25" desc:"Width of each cubie"`
	Minify    bool   `short:"m" desc:"Minify SVG output"`
	Verbose   bool   `short:"v" desc:"Print each written file"`
	Input     string `index:"0" desc:"Markdown input file"`
}

// imageComment matches e.g. '[//]: # (bar  xUx===xDx)', the file stem and the notation are separated by two spaces.
var imageComment = regexp.MustCompile(`# *\(([[:alnum:]]+)  (.*)\)`)

type imageDesc struct {
	stem    string
	line    int
	diagram cube.Diagram
}

func (cmd *Gen) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	cfg, err := sizeConfig(cmd.CubieSize)
	if err != nil {
		return err
	}

	f, err := os.Open(cmd.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	descs, err := scanImageDescs(f)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Input, err)
	}

	var log io.Writer = io.Discard
	if cmd.Verbose {
		log = os.Stdout
	}
	return writeImages(descs, cmd.Dest, cfg, cmd.Minify, log)
}

// scanImageDescs parses all image comments. It stops at the first comment that does not parse.
func scanImageDescs(r io.Reader) ([]imageDesc, error) {
	descs := []imageDesc{}
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		m := imageComment.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		diagram, err := cube.ParseDiagram(m[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: image %s: %w", line, m[1], err)
		}
		descs = append(descs, imageDesc{m[1], line, diagram})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return descs, nil
}

func writeImages(descs []imageDesc, dest string, cfg cube.SizeConfig, minify bool, log io.Writer) error {
	for _, desc := range descs {
		filename := filepath.Join(dest, desc.stem+".svg")
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("cannot create %s: %w", filename, err)
		}
		if err := writeSVG(f, desc.diagram.Render(cfg), minify); err != nil {
			f.Close()
			return fmt.Errorf("%s: %w", filename, err)
		} else if err := f.Close(); err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
		fmt.Fprintf(log, "%s: %s (line %d)\n", filename, desc.diagram, desc.line)
	}
	return nil
}
