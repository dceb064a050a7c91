// Package pointfile loads the flat text point format consumed by the tool:
// one point per line as "id x y" (integer id, two float coordinates),
// whitespace separated. Blank lines are skipped.
package pointfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/banshee-data/cluster.report/internal/cluster"
	"github.com/banshee-data/cluster.report/internal/geom"
)

// Load reads points from r and returns a collection holding one singleton
// cluster per point, in input order. chunk is the growth increment wired
// into each cluster (pass cluster.DefaultGrowthChunk when in doubt).
// Malformed lines fail the whole load with an error naming the offending
// line.
func Load(r io.Reader, chunk int) (*cluster.Collection, error) {
	col := cluster.NewCollection(0)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		p, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		c, err := cluster.NewWithChunk(1, chunk)
		if err != nil {
			return nil, err
		}
		c.Append(p)
		col.Append(c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading points: %w", err)
	}
	return col, nil
}

// LoadFile opens path and loads it via Load.
func LoadFile(path string, chunk int) (*cluster.Collection, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("opening point file: %w", err)
	}
	defer f.Close()

	col, err := Load(f, chunk)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return col, nil
}

// parseLine decodes a single "id x y" record.
func parseLine(line string) (geom.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return geom.Point{}, fmt.Errorf("expected 3 fields \"id x y\", got %d", len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid id %q: %w", fields[0], err)
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid x %q: %w", fields[1], err)
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid y %q: %w", fields[2], err)
	}
	return geom.NewPoint(id, x, y), nil
}
