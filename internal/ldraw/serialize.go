package ldraw

import (
	"strconv"
	"strings"
)

// Serialize renders the record back to its textual line form.
// Comment/Include/Raw records return the stored original text byte for byte;
// they are never re-tokenized. Shape records render as
// "<linetype> <color> <c0> ... <cN>" with single-space separation.
func (r Record) Serialize() string {
	if r.Kind != KindShape {
		return r.Text
	}
	var b strings.Builder
	b.WriteString(strconv.Itoa(r.LineType))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(r.Color))
	for _, c := range r.Coords {
		b.WriteByte(' ')
		b.WriteString(FormatCoord(c))
	}
	return b.String()
}

// FormatCoord renders a coordinate in its shortest exact form, with a ".0"
// suffix forced onto integral values so shape output is always visibly
// floating point (0.0, 1.0, -12.0). The representation is
// platform-independent and round-trips through ParseFloat.
func FormatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.IndexAny(s, ".eE") < 0 && s[len(s)-1] >= '0' && s[len(s)-1] <= '9' {
		s += ".0"
	}
	return s
}
