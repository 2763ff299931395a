package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Layout is a named grid read from a maze file.
type Layout struct {
	Name string
	Grid *Grid
}

// Parse builds a grid from text rows, one rune per cell.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Cell, len(rows))
	for r, line := range rows {
		runes := []rune(line)
		cells[r] = make([]Cell, len(runes))
		for c, ch := range runes {
			cell, err := ParseCell(ch)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			cells[r][c] = cell
		}
	}
	return New(cells)
}

// ParseString parses a newline separated grid. A single trailing newline is
// ignored and CRLF line endings are accepted.
func ParseString(s string) (*Grid, error) {
	s = strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r")
	if s == "" {
		return nil, ErrEmptyGrid
	}
	rows := strings.Split(s, "\n")
	for i, row := range rows {
		rows[i] = strings.TrimSuffix(row, "\r")
	}
	return Parse(rows)
}

// LoadFile reads every layout in the file at path.
func LoadFile(path string) ([]Layout, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	layouts, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return layouts, nil
}

// Load reads layouts separated by "---" lines. Each layout may start with
// "name: value" metadata lines. Empty lines are skipped; a line of spaces is
// an all-open row.
func Load(r io.Reader) ([]Layout, error) {
	var (
		layouts []Layout
		current []string
		name    string
	)

	flush := func() error {
		if len(current) == 0 {
			name = ""
			return nil
		}
		g, err := Parse(current)
		if err != nil {
			return fmt.Errorf("layout %d: %w", len(layouts)+1, err)
		}
		layouts = append(layouts, Layout{Name: name, Grid: g})
		current, name = nil, ""
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "---" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if line == "" {
			continue
		}
		// metadata is only recognized before the first grid row
		if len(current) == 0 {
			if key, value, ok := parseMetaLine(line); ok {
				if key == "name" {
					name = value
				}
				continue
			}
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(layouts) == 0 {
		return nil, ErrEmptyGrid
	}
	return layouts, nil
}

func parseMetaLine(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}
	key = strings.ToLower(strings.TrimSpace(line[:idx]))
	for _, r := range key {
		if r < 'a' || r > 'z' {
			return "", "", false
		}
	}
	return key, strings.TrimSpace(line[idx+1:]), true
}
