package transform

import (
	"bufio"
	"io"

	"github.com/vhermecz/ldtweak/internal/ldraw"
)

// Process streams a whole model through Apply: each input line is
// classified, transformed against the fixed bounds and written back out in
// textual form, one record per line. The bounds must come from a prior
// measurement pass over the same input. Malformed lines flow through
// verbatim; only I/O errors abort.
func Process(r io.Reader, w io.Writer, bounds ldraw.Bounds, cfg Config) error {
	bw := bufio.NewWriter(w)
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		rec := Apply(ldraw.ParseLine(scan.Text()), bounds, cfg)
		if _, err := bw.WriteString(rec.Serialize()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := scan.Err(); err != nil {
		return err
	}
	return bw.Flush()
}
