// Command fade-wav applies eased fade-in and fade-out envelopes to WAV files.
//
// Usage:
//
//	fade-wav -in 500 -out 2000 input.wav output.wav
//	fade-wav -in 250 -curve-in expo-out input.wav output.wav
//	fade-wav -out 3000 -curve-out elastic-out -v input.wav output.wav
//
// Fade lengths are in milliseconds. The fade-in gain rises from 0 to 1 along
// -curve-in and the fade-out gain falls from 1 to 0 along -curve-out.
// Curves that overshoot (back, elastic) are clipped to the sample range.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	easing "github.com/tphakala/go-easing"
)

const (
	// CLI defaults
	defaultFadeInMs  = 0.0
	defaultFadeOutMs = 0.0
	defaultCurveIn   = "sine-out"
	defaultCurveOut  = "sine-in"
	minRequiredArgs  = 2

	// Conversion constants
	msPerSecond = 1000.0

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
	maxInt16        = 32767.0
	maxInt24        = 8388607.0
	maxInt32        = 2147483647.0

	// WAV format tag for integer PCM
	wavFormatPCM = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	fadeInMs := flag.Float64("in", defaultFadeInMs, "Fade-in length in milliseconds")
	fadeOutMs := flag.Float64("out", defaultFadeOutMs, "Fade-out length in milliseconds")
	curveIn := flag.String("curve-in", defaultCurveIn, "Easing curve for the fade-in")
	curveOut := flag.String("curve-out", defaultCurveOut, "Easing curve for the fade-out")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -in 500 -out 2000 in.wav out.wav          # Sine fades\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -out 3000 -curve-out expo-in in.wav out.wav # Exponential fade-out\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	fadeIn, err := easing.ParseCurve(*curveIn)
	if err != nil {
		return fmt.Errorf("invalid -curve-in: %w", err)
	}
	fadeOut, err := easing.ParseCurve(*curveOut)
	if err != nil {
		return fmt.Errorf("invalid -curve-out: %w", err)
	}

	start := time.Now()

	input, err := openWAVInput(args[0], *verbose)
	if err != nil {
		return err
	}
	defer func() { _ = input.Close() }()

	buf, err := input.decoder.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("failed to read audio data: %w", err)
	}

	plan := fadePlan{
		inFrames:  msToFrames(*fadeInMs, input.rate),
		outFrames: msToFrames(*fadeOutMs, input.rate),
		inCurve:   fadeIn.Func(),
		outCurve:  fadeOut.Func(),
	}
	if *verbose {
		log.Printf("Fade-in: %d frames (%s), fade-out: %d frames (%s)",
			plan.inFrames, fadeIn, plan.outFrames, fadeOut)
	}

	clipped, err := applyFades(buf.Data, input.channels, input.bitDepth, plan)
	if err != nil {
		return err
	}
	if clipped > 0 {
		log.Printf("Warning: %d samples clipped", clipped)
	}

	if err := writeWAV(args[1], buf, input.bitDepth); err != nil {
		return err
	}

	if *verbose {
		log.Printf("Wrote %s in %v", args[1], time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// msToFrames converts a duration in milliseconds to whole frames.
func msToFrames(ms float64, rate int) int {
	if ms <= 0 {
		return 0
	}
	return int(ms * float64(rate) / msPerSecond)
}
