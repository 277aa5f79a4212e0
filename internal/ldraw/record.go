// Package ldraw implements classification, measurement and re-serialization
// of line-oriented LDraw model files. Every input line becomes exactly one
// Record; lines that fail to parse are carried through verbatim rather than
// rejected, since vendor extensions and metadata lines are common in the
// format.
package ldraw

import (
	"strconv"
	"strings"
)

// Kind discriminates the record variants produced by ParseLine.
type Kind int

const (
	KindRaw     Kind = iota // unrecognised or malformed line, passed through verbatim
	KindComment             // line type 0
	KindInclude             // line type 1, sub-file reference
	KindShape               // line types 2..5, geometry
)

// LDraw line types. 2..5 carry geometry as a flat list of 3D points.
const (
	LineTypeComment  = 0
	LineTypeInclude  = 1
	LineTypeLine     = 2
	LineTypeTriangle = 3
	LineTypeQuad     = 4
	LineTypeOptional = 5
)

// Record is one classified input line.
type Record struct {
	Kind Kind
	Text string // original line without the trailing newline

	// LineType is the parsed leading token, valid whenever HasLineType is
	// set. Raw records keep it when the first token parsed as an integer
	// but the rest of the line did not; the stats counter keys on it.
	LineType    int
	HasLineType bool

	// Shape payload, set only for KindShape.
	Color  int
	Coords []float64
}

// ParseLine classifies one input line. It never fails: any parse problem
// (missing tokens, non-integer color, bad coordinate, coordinate count not a
// multiple of 3) downgrades the line to a Raw record holding the original
// text.
func ParseLine(line string) Record {
	line = strings.TrimRight(line, "\r\n")
	rec := Record{Kind: KindRaw, Text: line}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return rec
	}
	lineType, err := strconv.Atoi(fields[0])
	if err != nil {
		return rec
	}
	rec.LineType = lineType
	rec.HasLineType = true

	switch {
	case lineType == LineTypeComment:
		rec.Kind = KindComment
	case lineType == LineTypeInclude:
		rec.Kind = KindInclude
	case lineType >= LineTypeLine && lineType <= LineTypeOptional:
		if len(fields) < 2 {
			return rec
		}
		color, err := strconv.Atoi(fields[1])
		if err != nil {
			return rec
		}
		coords := make([]float64, 0, len(fields)-2)
		for _, tok := range fields[2:] {
			// Coordinates stay float64 even when integral, so shape
			// lines always re-render with floating-point formatting.
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return rec
			}
			coords = append(coords, v)
		}
		if len(coords)%3 != 0 {
			return rec
		}
		rec.Kind = KindShape
		rec.Color = color
		rec.Coords = coords
	}
	return rec
}
