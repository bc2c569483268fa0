// Command bginfo compares baseline estimators on synthetic diffraction
// scans with a known background.
//
// Usage:
//
//	bginfo [flags] [method ...]
//
// Without arguments it runs every method.
//
// Examples:
//
//	bginfo als snip
//	bginfo -param lambda=1e6 -param p=0.005 als
//	bginfo -protect -fill interp -median 5 modpoly
//	bginfo -curves 16 -workers 4 -metrics
//	bginfo -list
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-xrd/background"
	"github.com/cwbudde/algo-xrd/curve"
	"github.com/cwbudde/algo-xrd/dsp/baseline"
	"github.com/cwbudde/algo-xrd/dsp/smooth"
	"github.com/cwbudde/algo-xrd/internal/synth"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// paramFlag collects repeated -param key=value flags.
type paramFlag map[string]float64

func (p paramFlag) String() string {
	parts := make([]string, 0, len(p))
	for k, v := range p {
		parts = append(parts, k+"="+strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strings.Join(parts, ",")
}

func (p paramFlag) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("want key=value, got %q", s)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fmt.Errorf("%s: %w", k, err)
	}
	p[strings.ToLower(strings.TrimSpace(k))] = f
	return nil
}

type options struct {
	samples int
	noise   float64
	curves  int
	workers int
	protect bool
	fill    string
	median  int
	anchors int
	params  paramFlag
	metrics bool
	verbose bool
}

func main() {
	opts := options{params: paramFlag{}}
	flag.IntVar(&opts.samples, "n", 2000, "samples per scan")
	flag.Float64Var(&opts.noise, "noise", 2, "noise amplitude in counts")
	flag.IntVar(&opts.curves, "curves", 4, "number of scans, each with its own noise seed")
	flag.IntVar(&opts.workers, "workers", 0, "parallel computations (0 = GOMAXPROCS)")
	flag.BoolVar(&opts.protect, "protect", false, "mask detected peaks before estimation")
	flag.StringVar(&opts.fill, "fill", "min", "masked sample fill: min or interp")
	flag.IntVar(&opts.median, "median", 0, "median pre-smoothing kernel (0 = off)")
	flag.IntVar(&opts.anchors, "anchors", 8, "automatic anchor count for the anchor method")
	flag.Var(opts.params, "param", "estimator parameter key=value (repeatable)")
	flag.BoolVar(&opts.metrics, "metrics", false, "print computation counters")
	flag.BoolVar(&opts.verbose, "v", false, "verbose logging")
	list := flag.Bool("list", false, "list available methods")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bginfo [flags] [method ...]\n\n")
		fmt.Fprintf(os.Stderr, "Runs baseline estimators on synthetic XRD scans and reports the error\n")
		fmt.Fprintf(os.Stderr, "against the known background.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bginfo als snip\n")
		fmt.Fprintf(os.Stderr, "  bginfo -param lambda=1e6 als\n")
		fmt.Fprintf(os.Stderr, "  bginfo -protect -fill interp modpoly\n")
	}
	flag.Parse()

	if *list {
		for _, m := range baseline.Methods() {
			fmt.Println(m)
		}
		return
	}

	methods, err := resolveMethods(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(context.Background(), logger, methods, opts); err != nil {
		logger.Error("bginfo failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

func resolveMethods(names []string) ([]baseline.Method, error) {
	if len(names) == 0 {
		return baseline.Methods(), nil
	}
	methods := make([]baseline.Method, 0, len(names))
	for _, name := range names {
		m, err := baseline.ParseMethod(name)
		if err != nil {
			return nil, fmt.Errorf("%w (use -list to see available)", err)
		}
		methods = append(methods, m)
	}
	return methods, nil
}

type scan struct {
	id    curve.ID
	truth []float64
}

func run(ctx context.Context, logger *zap.Logger, methods []baseline.Method, opts options) error {
	if opts.samples < 16 || opts.curves < 1 {
		return fmt.Errorf("need -n >= 16 and -curves >= 1")
	}

	store := curve.NewStore()
	scans := make([]scan, 0, opts.curves)
	var anchors []baseline.Point
	for i := 0; i < opts.curves; i++ {
		p := synth.XRDPattern(opts.samples, opts.noise, int64(i+1))
		c, err := curve.New(p.X, p.Y, fmt.Sprintf("scan-%d", i+1))
		if err != nil {
			return err
		}
		store.Add(c)
		scans = append(scans, scan{id: c.ID(), truth: p.Background})
		if anchors == nil {
			anchors = autoAnchors(p.X, p.Y, opts.anchors)
		}
	}
	logger.Debug("synthesised scans", zap.Int("curves", opts.curves), zap.Int("samples", opts.samples))

	estOpts, err := baseline.OptionsFromParams(opts.params)
	if err != nil {
		return err
	}
	estOpts = append(estOpts, baseline.WithAnchors(anchors...))

	fill, err := background.ParseFill(opts.fill)
	if err != nil {
		return err
	}
	req := background.Request{ProtectPeaks: opts.protect, Fill: fill}
	if opts.median > 0 {
		req.Smoother = smooth.MedianSmoother{KernelSize: opts.median}
	}

	reg := prometheus.NewRegistry()
	metrics, err := background.NewMetrics(reg)
	if err != nil {
		return err
	}

	batchOpts := []background.BatchOption{background.WithLogger(logger), background.WithMetrics(metrics)}
	if opts.workers > 0 {
		batchOpts = append(batchOpts, background.WithWorkers(opts.workers))
	}
	batch := background.NewBatch(background.New(store), batchOpts...)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Method\tRMS err\tMax |err|\tFailed\tTime\n")
	fmt.Fprintf(tw, "------\t-------\t---------\t------\t----\n")

	for _, m := range methods {
		est, err := baseline.New(m, estOpts...)
		if err != nil {
			return err
		}
		req.Estimator = est

		start := time.Now()
		out, err := batch.Run(ctx, req)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		rms, worst, failed := score(out, scans)
		fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%d\t%s\n", m, rms, worst, failed, elapsed.Round(time.Microsecond))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if opts.metrics {
		return printCounters(reg)
	}
	return nil
}

// score compares each baseline with the background the scan was built on
// and returns the mean per-scan RMS error and the largest single deviation.
func score(out []background.Outcome, scans []scan) (rms, worst float64, failed int) {
	truth := make(map[curve.ID][]float64, len(scans))
	for _, s := range scans {
		truth[s.id] = s.truth
	}

	var n int
	for _, o := range out {
		if o.Err != nil {
			failed++
			continue
		}
		want := truth[o.CurveID]
		r, err := synth.RMSDiff(o.Result.Baseline, want)
		if err != nil {
			failed++
			continue
		}
		rms += r
		n++
		for i, b := range o.Result.Baseline {
			worst = math.Max(worst, math.Abs(b-want[i]))
		}
	}
	if n > 0 {
		rms /= float64(n)
	}
	return rms, worst, failed
}

// autoAnchors picks the lowest sample in each of k equal segments.
func autoAnchors(x, y []float64, k int) []baseline.Point {
	k = max(2, min(k, len(y)))
	pts := make([]baseline.Point, 0, k)
	for s := 0; s < k; s++ {
		lo, hi := s*len(y)/k, (s+1)*len(y)/k
		best := lo
		for i := lo; i < hi; i++ {
			if y[i] < y[best] {
				best = i
			}
		}
		pts = append(pts, baseline.Point{X: x[best], Y: y[best]})
	}
	return pts
}

func printCounters(reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nMetric\tLabels\tValue\n")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			var v float64
			switch {
			case m.GetCounter() != nil:
				v = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				v = float64(m.GetHistogram().GetSampleCount())
			default:
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%g\n", mf.GetName(), strings.Join(labels, ","), v)
		}
	}
	return tw.Flush()
}
