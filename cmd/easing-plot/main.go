// Command easing-plot samples an easing curve and prints its values.
//
// Usage:
//
//	easing-plot -curve back-out
//	easing-plot -curve elastic-in-out -steps 41 -plot
//	easing-plot -curve elastic-out -amplitude 1.5 -period 0.4 -from 10 -to 20
//	easing-plot -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	easing "github.com/tphakala/go-easing"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("easing-plot", flag.ContinueOnError)
	var (
		curveName = fs.String("curve", defaultCurve, "Curve name, e.g. back-out, elastic-in-out, sine")
		steps     = fs.Int("steps", defaultSteps, "Number of samples including both endpoints")
		from      = fs.Float64("from", defaultFrom, "Start value")
		to        = fs.Float64("to", defaultTo, "End value")
		duration  = fs.Float64("duration", defaultDuration, "Duration in arbitrary time units")
		overshoot = fs.Float64("overshoot", easing.DefaultOvershoot, "Back overshoot")
		amplitude = fs.Float64("amplitude", 0, "Elastic amplitude (default: the change)")
		period    = fs.Float64("period", 0, "Elastic period (default: scales with duration)")
		plot      = fs.Bool("plot", false, "Draw an ASCII plot")
		list      = fs.Bool("list", false, "List curve names and exit")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		for _, c := range easing.Curves() {
			fmt.Fprintln(out, c)
		}
		return nil
	}

	if *steps < minSteps {
		return fmt.Errorf("steps must be at least %d, got %d", minSteps, *steps)
	}

	curve, err := easing.ParseCurve(*curveName)
	if err != nil {
		return err
	}

	// Shape flags apply only when set explicitly.
	var opts []easing.Option
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "overshoot":
			opts = append(opts, easing.WithOvershoot(*overshoot))
		case "amplitude":
			opts = append(opts, easing.WithAmplitude(*amplitude))
		case "period":
			opts = append(opts, easing.WithPeriod(*period))
		}
	})

	f := curve.Func(opts...)
	values, err := easing.Sample(f, *from, *to-*from, *duration, *steps)
	if err != nil {
		return fmt.Errorf("failed to sample %s: %w", curve, err)
	}

	fmt.Fprintf(out, "Curve: %s (%g -> %g over %g)\n", curve, *from, *to, *duration)
	renderTable(out, values, *duration)
	renderSummary(out, values, *from, *to)
	if *plot {
		fmt.Fprintln(out)
		renderPlot(out, values, plotWidth, plotHeight)
	}
	return nil
}
