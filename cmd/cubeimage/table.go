package main

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/argp"
)

type Table struct {
	Input string `index:"0" desc:"Markdown input file"`
}

func (cmd *Table) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	f, err := os.Open(cmd.Input)
	if err != nil {
		return err
	}
	defer f.Close()
	return prettifyTables(f, os.Stdout)
}

// prettifyTables copies r to w and pads the cells of every table, being a run of lines starting with '|', so that the columns line up.
func prettifyTables(r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	table := []string{}
	flush := func() {
		for _, line := range formatTable(table) {
			bw.WriteString(line)
			bw.WriteByte('\n')
		}
		table = table[:0]
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "|") {
			table = append(table, line)
			continue
		}
		flush()
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	flush()
	if err := scanner.Err(); err != nil {
		return err
	}
	return bw.Flush()
}

func formatTable(lines []string) []string {
	rows := make([][]string, len(lines))
	widths := []int{}
	for i, line := range lines {
		cells := strings.Split(line, "|")
		for j, cell := range cells {
			cells[j] = strings.TrimSpace(cell)
			if len(widths) <= j {
				widths = append(widths, 0)
			}
			widths[j] = max(widths[j], utf8.RuneCountInString(cells[j]))
		}
		rows[i] = cells
	}

	formatted := make([]string, len(rows))
	for i, cells := range rows {
		for j, cell := range cells {
			if widths[j] != 0 {
				cells[j] = " " + cell + strings.Repeat(" ", widths[j]-utf8.RuneCountInString(cell)) + " "
			}
		}
		formatted[i] = strings.Join(cells, "|")
	}
	return formatted
}
