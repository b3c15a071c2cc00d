package strategy

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Load reads a strategy table from a CSV file. The first non-comment row is
// the header: a label column followed by dealer up-cards (2-9, T, A). Each
// following row is a hand signature and its action codes.
//
// A missing or unreadable file is not fatal: the built-in default table is
// returned instead so the round engine never sees a load failure. Cells with
// invalid codes are skipped with a warning.
func Load(filename string, logger *log.Logger) *Table {
	f, err := os.Open(filename)
	if err != nil {
		logger.Warn("strategy file not found, using default conservative strategy", "file", filename, "error", err)
		return Default()
	}
	defer f.Close()

	t, err := Parse(f, logger)
	if err != nil {
		logger.Warn("strategy file unparseable, using default conservative strategy", "file", filename, "error", err)
		return Default()
	}
	return t
}

// Parse reads a strategy table in CSV form from r. Lines starting with '#'
// are comments. Rows with an unparseable signature and cells with invalid
// action codes are skipped with a warning rather than failing the load.
func Parse(r io.Reader, logger *log.Logger) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var header []Upcard
	t := NewTable()
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("strategy: read error: %w", err)
		}
		line++
		if len(record) == 0 {
			continue
		}

		if header == nil {
			header = make([]Upcard, 0, len(record)-1)
			for _, col := range record[1:] {
				up, ok := ParseUpcard(col)
				if !ok {
					return nil, fmt.Errorf("strategy: invalid dealer up-card %q in header", col)
				}
				header = append(header, up)
			}
			continue
		}

		sig, ok := ParseSignature(record[0])
		if !ok {
			logger.Warn("skipping row with invalid hand signature", "line", line, "hand", record[0])
			continue
		}
		for i, up := range header {
			if i+1 >= len(record) {
				break
			}
			raw, ok := ParseCode(record[i+1])
			if !ok {
				logger.Warn("skipping invalid action code",
					"line", line, "hand", record[0], "dealer", up.String(), "code", record[i+1])
				continue
			}
			t.set(sig, up, raw)
		}
	}
	if header == nil {
		return nil, fmt.Errorf("strategy: no header row found")
	}
	return t, nil
}
