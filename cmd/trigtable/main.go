// Command trigtable generates quarter-sine tables for go:generate.
//
// Usage:
//
//	//go:generate go run ./cmd/trigtable -samples 1024 -precision single -name quarterSine1024F32Bits -out zz_table_1024_f32.go
//	//go:generate go run ./cmd/trigtable -samples 4096 -precision double -format bin -out tables/quarter_sine_4096_f64.bin
//
// Any error exits with a non-zero status, which fails go generate.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tphakala/go-static-trig/internal/floatops"
	"github.com/tphakala/go-static-trig/internal/generate"
)

// options holds the parsed command line.
type options struct {
	samples   int
	precision floatops.Precision
	name      string
	pkg       string
	format    string
	out       string
	args      string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("trigtable: ")

	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	if err := run(opts); err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	var (
		samples   = fs.Int("samples", defaultSamples, "Number of quarter-wave samples N")
		precision = fs.String("precision", defaultPrecision, "Sample precision: single or double")
		name      = fs.String("name", "", "Variable name of the generated array (go format)")
		pkg       = fs.String("package", os.Getenv("GOPACKAGE"), "Package clause of the generated file (go format)")
		format    = fs.String("format", formatGo, "Output format: go or bin")
		out       = fs.String("out", "", "Output file (default stdout)")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	p, err := floatops.ParsePrecision(*precision)
	if err != nil {
		return nil, err
	}

	opts := &options{
		samples:   *samples,
		precision: p,
		name:      *name,
		pkg:       *pkg,
		format:    *format,
		out:       *out,
		args:      strings.Join(args, " "),
	}

	switch opts.format {
	case formatGo:
		if opts.name == "" {
			opts.name = defaultName(opts.samples, p)
		}
		if opts.pkg == "" {
			return nil, errors.New("-package is required outside go generate")
		}
	case formatBin:
	default:
		return nil, fmt.Errorf("unknown format %q (want %s or %s)", opts.format, formatGo, formatBin)
	}

	return opts, nil
}

// defaultName derives a variable name such as quarterSine1024F32Bits.
func defaultName(samples int, p floatops.Precision) string {
	return fmt.Sprintf("quarterSine%dF%dBits", samples, p.Bits())
}

// run renders the table into memory first so that a failed generation never
// truncates an existing output file.
func run(opts *options) error {
	var buf bytes.Buffer

	switch opts.format {
	case formatBin:
		if err := generate.EmitBinary(&buf, opts.samples, opts.precision); err != nil {
			return err
		}
	default:
		err := generate.Emit(&buf, generate.EmitOptions{
			Package:     opts.pkg,
			Name:        opts.name,
			SampleCount: opts.samples,
			Precision:   opts.precision,
			Args:        opts.args,
		})
		if err != nil {
			return err
		}
	}

	if opts.out == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}

	if dir := filepath.Dir(opts.out); dir != "." {
		if err := os.MkdirAll(dir, outputDirPerm); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(opts.out, buf.Bytes(), outputFilePerm); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
