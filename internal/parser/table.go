package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// minFields is the number of leading tokens a data line must carry.
// Tokens past the third are ignored.
const minFields = 3

// ParseRecord parses a single data line into a Record. The line is split
// on runs of whitespace; the first three tokens must be valid floats.
func ParseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < minFields {
		return Record{}, fmt.Errorf("expected at least %d columns, got %d", minFields, len(fields))
	}
	var vals [minFields]float64
	for i := 0; i < minFields; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Record{}, fmt.Errorf("could not convert column %d value %q to float: %w", i+1, fields[i], err)
		}
		vals[i] = v
	}
	return Record{X: vals[0], Exact: vals[1], Approx: vals[2]}, nil
}

// ParseTable reads a plot table from r. The first line is the header and
// is kept verbatim but never parsed; every following line must parse as a
// Record. A header with no data rows yields an empty table. Parsing stops
// at the first malformed line with an error naming it.
func ParseTable(r io.Reader, name string) (*Table, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read table: %w", err)
		}
		return nil, fmt.Errorf("%s: missing header line", name)
	}

	table := &Table{
		Path:   name,
		Header: strings.TrimSpace(scanner.Text()),
	}

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		rec, err := ParseRecord(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		table.Append(rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	return table, nil
}

// ParseTableFile opens the named file and parses it with ParseTable.
func ParseTableFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file: %w", err)
	}
	defer file.Close()

	return ParseTable(file, path)
}
