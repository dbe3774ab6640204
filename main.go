package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/brrsuite/wav2brr/brr"
	"github.com/brrsuite/wav2brr/brs"
	"github.com/brrsuite/wav2brr/convert"
	"github.com/brrsuite/wav2brr/resample"
	"github.com/brrsuite/wav2brr/wav"
)

func main() {
	var (
		resamplerName = pflag.StringP("resampler", "r", "linear", "resampler kernel ("+strings.Join(resample.Names(), ", ")+")")
		factor        = pflag.Float64P("factor", "f", 1.0, "resample factor: input rate / target rate")
		truncate      = pflag.IntP("truncate", "t", 0, "use at most this many input samples (0 = all)")
		leadingZeros  = pflag.Int("leading-zeros", -1, "force this many leading zero samples (negative = align only)")
		loopSample    = pflag.IntP("loop", "l", -1, "loop start as an input sample index (negative = no loop)")
		loopFilter0   = pflag.Bool("loop-filter0", false, "pin filter 0 at the loop block")
		disableFilter = pflag.IntSlice("disable-filter", nil, "prediction filters to keep out of the search")
		name          = pflag.StringP("name", "n", "", "instrument name for .brs output (default: input base name)")
		vxPitch       = pflag.Int("pitch", brr.DEFAULT_VX_PITCH, "DSP pitch register value")
		seconds       = pflag.Float64P("seconds", "s", 1.0, "minimum decode length for looping samples")
		loopHeader    = pflag.Bool("loop-header", false, "read/write .brr files with a 2 byte loop offset header")
		settingsFile  = pflag.String("settings", "", "YAML encoder settings file")
	)

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage
	wav2brr [options] input.wav output.brr
	wav2brr [options] input.wav output.brs
	wav2brr [options] input.brr output.wav
	wav2brr [options] input.brs output.wav

Options:
%s`, pflag.CommandLine.FlagUsages())
	}

	pflag.Parse()

	if pflag.NArg() != 2 {
		pflag.Usage()
		os.Exit(1)
	}

	var input = pflag.Arg(0)
	var output = pflag.Arg(1)

	var inExt = filepath.Ext(input)
	var outExt = filepath.Ext(output)

	if inExt == ".wav" && (outExt == ".brr" || outExt == brs.EXTENSION) {
		var encoder = convert.NewEncoder()

		kernel, err := resample.ByName(*resamplerName)

		if err != nil {
			log.Fatal(err)
		}

		encoder.Resampler = kernel
		encoder.ResampleFactor = *factor
		encoder.Truncate = *truncate
		encoder.LeadingZeros = *leadingZeros
		encoder.ForceFilter0OnLoop = *loopFilter0

		for _, filter := range *disableFilter {
			if filter >= 0 && filter < 4 {
				encoder.EnableFilter[filter] = false
			}
		}

		if *settingsFile != "" {
			settings, err := LoadEncodeSettings(*settingsFile)

			if err != nil {
				log.Fatal(err)
			}

			err = settings.Apply(encoder)

			if err != nil {
				log.Fatal(err)
			}
		}

		err = encodeFile(encoder, input, output, outExt, *loopSample, *name, *vxPitch, *loopHeader)

		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Wrote %s\n", output)
	} else if (inExt == ".brr" || inExt == brs.EXTENSION) && outExt == ".wav" {
		err := decodeFile(input, inExt, output, *vxPitch, *seconds, *loopHeader)

		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Wrote %s\n", output)
	} else {
		log.Fatal(fmt.Sprintf("Cannot convert %s to %s", input, output))
	}
}

func encodeFile(encoder *convert.Encoder, input string, output string, outExt string, loopSample int, name string, vxPitch int, loopHeader bool) error {
	file, err := os.Open(input)

	if err != nil {
		return err
	}

	defer file.Close()

	wave, err := wav.Parse(file)

	if err != nil {
		return err
	}

	pcm, err := wave.MonoSamples()

	if err != nil {
		return err
	}

	sample, err := encoder.Encode(pcm, loopSample)

	if err != nil {
		return err
	}

	outputFile, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0664)

	if err != nil {
		return err
	}

	defer outputFile.Close()

	if outExt == brs.EXTENSION {
		if name == "" {
			var base = filepath.Base(input)
			name = base[0 : len(base)-len(filepath.Ext(base))]
		}

		suite, err := brs.New(sample, name)

		if err != nil {
			return err
		}

		suite.SetVxPitch(vxPitch)
		suite.EncodingFrequency = int32(wave.Header.SampleRate)

		return suite.Serialize(outputFile)
	}

	if loopHeader {
		return sample.SerializeLoopHeadered(outputFile)
	}

	return sample.SerializeRaw(outputFile)
}

func decodeFile(input string, inExt string, output string, pitch int, seconds float64, loopHeader bool) error {
	data, err := os.ReadFile(input)

	if err != nil {
		return err
	}

	var sample *brr.Sample

	if inExt == brs.EXTENSION {
		suite, err := brs.Parse(data)

		if err != nil {
			return err
		}

		sample = suite.Sample
	} else if loopHeader {
		sample, err = brr.ParseLoopHeadered(data)

		if err != nil {
			return err
		}
	} else {
		sample, err = brr.SampleFromBytes(data)

		if err != nil {
			return err
		}
	}

	var pcm = brr.Decode(sample, pitch, seconds)

	outputFile, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0664)

	if err != nil {
		return err
	}

	defer outputFile.Close()

	return wav.FromSamples(pcm, brr.DSP_FREQUENCY).Serialize(outputFile)
}
