package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	easing "github.com/tphakala/go-easing"
)

// Fade errors
var (
	errFadeTooLong       = errors.New("fades are longer than the input")
	errUnsupportedFormat = errors.New("unsupported bit depth")
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file     *os.File
	decoder  *wav.Decoder
	rate     int
	channels int
	bitDepth int
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)
	if _, err := maxSampleValue(bitDepth); err != nil {
		_ = inputFile.Close()
		return nil, err
	}

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, format.NumChannels, bitDepth)
	}

	return &wavInputInfo{
		file:     inputFile,
		decoder:  decoder,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: bitDepth,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// maxSampleValue returns the largest positive sample for a PCM bit depth.
func maxSampleValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("%w: %d", errUnsupportedFormat, bitDepth)
	}
}

// fadePlan describes the fades applied to one file.
type fadePlan struct {
	inFrames  int
	outFrames int
	inCurve   easing.Func
	outCurve  easing.Func
}

// fadeEnvelope returns per-frame gains moving from `from` to `to` along f.
// The first gain is from and the last is to. Fewer than two frames yield no
// envelope.
func fadeEnvelope(f easing.Func, frames int, from, to float64) []float64 {
	if frames < 2 {
		return nil
	}
	env, err := easing.Sample(f, from, to-from, float64(frames-1), frames)
	if err != nil {
		return nil
	}
	return env
}

// applyFades scales interleaved samples in place and returns the number of
// samples clipped to the bit depth range.
func applyFades(data []int, channels, bitDepth int, plan fadePlan) (int, error) {
	maxVal, err := maxSampleValue(bitDepth)
	if err != nil {
		return 0, err
	}
	if channels < 1 {
		return 0, fmt.Errorf("invalid channel count %d", channels)
	}

	totalFrames := len(data) / channels
	if plan.inFrames+plan.outFrames > totalFrames {
		return 0, fmt.Errorf("%w: %d + %d frames, input has %d",
			errFadeTooLong, plan.inFrames, plan.outFrames, totalFrames)
	}

	clipped := 0
	fadeIn := fadeEnvelope(plan.inCurve, plan.inFrames, 0, 1)
	clipped += applyGain(data, channels, 0, fadeIn, maxVal)

	fadeOut := fadeEnvelope(plan.outCurve, plan.outFrames, 1, 0)
	clipped += applyGain(data, channels, totalFrames-len(fadeOut), fadeOut, maxVal)

	return clipped, nil
}

// applyGain multiplies every channel of frames [startFrame, startFrame+len(gains))
// by the matching gain, rounding and clipping to [-maxVal-1, maxVal].
func applyGain(data []int, channels, startFrame int, gains []float64, maxVal float64) int {
	clipped := 0
	for i, g := range gains {
		base := (startFrame + i) * channels
		for ch := range channels {
			v := math.Round(float64(data[base+ch]) * g)
			switch {
			case v > maxVal:
				v = maxVal
				clipped++
			case v < -maxVal-1:
				v = -maxVal - 1
				clipped++
			}
			data[base+ch] = int(v)
		}
	}
	return clipped
}

// writeWAV encodes buf as integer PCM at the given bit depth.
func writeWAV(path string, buf *audio.IntBuffer, bitDepth int) error {
	outputFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	encoder := wav.NewEncoder(outputFile, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, wavFormatPCM)
	if err := encoder.Write(buf); err != nil {
		_ = outputFile.Close()
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := encoder.Close(); err != nil {
		_ = outputFile.Close()
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return outputFile.Close()
}
