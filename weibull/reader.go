package weibull

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadSeries parses the whitespace-delimited measurement format: the first
// line is a header and is skipped; each subsequent non-blank line carries
// at least three columns, of which the third is the observation.
//
// Errors: ErrBadFormat (wrapped with the offending line number) on short
// rows or unparseable values; read errors from r are returned as-is.
//
// Complexity: O(lines) time, O(n) space for the result.
func ReadSeries(r io.Reader) ([]float64, error) {
	var (
		xs     []float64
		lineno int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineno++
		if lineno == 1 {
			// header
			continue
		}

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("weibull: line %d has %d columns, want at least 3: %w", lineno, len(fields), ErrBadFormat)
		}

		v, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("weibull: line %d: %q is not a number: %w", lineno, fields[2], ErrBadFormat)
		}
		xs = append(xs, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return xs, nil
}
