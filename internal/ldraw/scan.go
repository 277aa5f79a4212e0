package ldraw

import (
	"bufio"
	"io"
)

// ScanStats runs the measurement pass over a whole model: every line is
// classified and folded into the returned Stats. Malformed lines never abort
// the scan; only a read error on the underlying stream does. A final line
// without a trailing newline is accepted.
func ScanStats(r io.Reader) (*Stats, error) {
	stats := NewStats()
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		stats.Observe(ParseLine(scan.Text()))
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}
