// Command ldtweak analyses an LDraw model file, reporting per-linetype
// counts and the model bounding box, and optionally rewrites the model with
// flip/normalize/swap/rotate operations applied.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/vhermecz/ldtweak/internal/ldraw"
	"github.com/vhermecz/ldtweak/internal/ldraw/transform"
	"github.com/vhermecz/ldtweak/internal/runlog"
)

type options struct {
	input    string
	out      string
	rotate   string
	swap     string
	flip     string
	norm     bool
	flipface bool
	round    int
	jsonOut  bool
	dbPath   string
}

func main() {
	opts := &options{}
	flag.StringVar(&opts.out, "out", "", "output file name; without it only the analysis runs")
	flag.StringVar(&opts.rotate, "rotate", "", "ordered list of cw rotations around the three axes (xyz)")
	flag.BoolVar(&opts.norm, "norm", false, "normalize coordinates to be in range [0..v]")
	flag.StringVar(&opts.swap, "swap", "", "swap axes based on this permutation of xyz")
	flag.StringVar(&opts.flip, "flip", "", "flip the axes given in the argument")
	flag.BoolVar(&opts.flipface, "flipface", false, "change polygon winding between cw and ccw point order")
	flag.IntVar(&opts.round, "round", -1, "round output coordinates to this many decimals (-1 to disable)")
	flag.BoolVar(&opts.jsonOut, "json", false, "print the analysis report as JSON")
	flag.StringVar(&opts.dbPath, "db", "", "append this run to a history database at the given path")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ldtweak [flags] <input>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	opts.input = flag.Arg(0)

	if err := run(opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// buildConfig validates the textual axis arguments into an immutable
// transform configuration. Rejections happen here, before any pass runs.
func buildConfig(opts *options) (transform.Config, error) {
	cfg := transform.Config{Norm: opts.norm, FlipFace: opts.flipface, Round: opts.round}
	var err error
	if opts.flip != "" {
		if cfg.Flip, err = transform.ParseFlip(opts.flip); err != nil {
			return cfg, fmt.Errorf("invalid -flip: %v", err)
		}
	}
	if opts.swap != "" {
		if cfg.Swap, err = transform.ParseSwap(opts.swap); err != nil {
			return cfg, fmt.Errorf("invalid -swap: %v", err)
		}
	}
	if opts.rotate != "" {
		if cfg.Rotations, err = transform.ParseRotations(opts.rotate); err != nil {
			return cfg, fmt.Errorf("invalid -rotate: %v", err)
		}
	}
	return cfg, nil
}

func run(opts *options, w io.Writer) error {
	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}

	in, err := os.Open(opts.input)
	if err != nil {
		return err
	}
	stats, err := ldraw.ScanStats(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("failed to scan %s: %v", opts.input, err)
	}

	if err := printReport(w, opts, stats); err != nil {
		return err
	}

	if opts.out != "" {
		if err := transformFile(opts.input, opts.out, stats.Bounds, cfg); err != nil {
			return err
		}
	}

	if opts.dbPath != "" {
		if err := recordRun(opts, stats); err != nil {
			return err
		}
	}
	return nil
}

// transformFile runs the rewrite pass: the input is re-read from the start
// and transformed records stream into the output file, which is closed on
// every exit path.
func transformFile(input, output string, bounds ldraw.Bounds, cfg transform.Config) error {
	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := transform.Process(in, out, bounds, cfg); err != nil {
		out.Close()
		return fmt.Errorf("failed to transform %s: %v", input, err)
	}
	return out.Close()
}

// axisRange mirrors ldraw.Range for the JSON report.
type axisRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// report is the JSON shape of the analysis summary.
type report struct {
	Input  string               `json:"input"`
	Lines  int                  `json:"lines"`
	Counts map[int]int          `json:"linetype_counts"`
	Bounds map[string]axisRange `json:"bounds,omitempty"`
}

func printReport(w io.Writer, opts *options, stats *ldraw.Stats) error {
	if opts.jsonOut {
		rep := report{Input: opts.input, Lines: stats.Lines, Counts: stats.Counts}
		if !stats.Bounds.Empty() {
			rep.Bounds = make(map[string]axisRange, 3)
			for i, name := range []string{"x", "y", "z"} {
				rep.Bounds[name] = axisRange{Min: stats.Bounds[i].Min, Max: stats.Bounds[i].Max}
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Fprintf(w, "Lines: %d\n", stats.Lines)
	lineTypes := make([]int, 0, len(stats.Counts))
	for lt := range stats.Counts {
		lineTypes = append(lineTypes, lt)
	}
	sort.Ints(lineTypes)
	for _, lt := range lineTypes {
		fmt.Fprintf(w, "Linetype %d: %d\n", lt, stats.Counts[lt])
	}
	if stats.Bounds.Empty() {
		fmt.Fprintln(w, "Bounds: empty model")
		return nil
	}
	for i, name := range []string{"x", "y", "z"} {
		fmt.Fprintf(w, "Bounds %s: [%s, %s]\n", name,
			ldraw.FormatCoord(stats.Bounds[i].Min), ldraw.FormatCoord(stats.Bounds[i].Max))
	}
	return nil
}

// opsSummary renders the enabled operations for the run history, in
// pipeline order.
func opsSummary(opts *options) string {
	var ops []string
	if opts.flip != "" {
		ops = append(ops, "flip="+opts.flip)
	}
	if opts.norm {
		ops = append(ops, "norm")
	}
	if opts.swap != "" {
		ops = append(ops, "swap="+opts.swap)
	}
	if opts.rotate != "" {
		ops = append(ops, "rotate="+opts.rotate)
	}
	if opts.flipface {
		ops = append(ops, "flipface")
	}
	if opts.round >= 0 {
		ops = append(ops, fmt.Sprintf("round=%d", opts.round))
	}
	return strings.Join(ops, " ")
}

func recordRun(opts *options, stats *ldraw.Stats) error {
	db, err := runlog.Open(opts.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open run history %s: %v", opts.dbPath, err)
	}
	defer db.Close()

	_, err = db.RecordRun(runlog.Run{
		Input:  opts.input,
		Output: opts.out,
		Ops:    opsSummary(opts),
		Lines:  stats.Lines,
		Counts: stats.Counts,
		Bounds: stats.Bounds,
	})
	return err
}
