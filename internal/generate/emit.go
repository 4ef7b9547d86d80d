package generate

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strings"

	"github.com/tphakala/go-static-trig/internal/codec"
	"github.com/tphakala/go-static-trig/internal/floatops"
)

// EmitOptions describes a generated Go source file.
type EmitOptions struct {
	// Package is the package clause of the generated file.
	Package string

	// Name is the identifier of the generated array variable.
	Name string

	// SampleCount is the table size N.
	SampleCount int

	// Precision selects a [N]uint32 (Single) or [N]uint64 (Double) array.
	Precision floatops.Precision

	// Args is the generator command line recorded in the header, if any.
	Args string
}

// Validate checks the options before any table is generated.
func (o *EmitOptions) Validate() error {
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("%w: package %q", ErrInvalidIdentifier, o.Package)
	}
	if !token.IsIdentifier(o.Name) {
		return fmt.Errorf("%w: variable %q", ErrInvalidIdentifier, o.Name)
	}
	return validate(o.SampleCount, o.Precision)
}

// Emit writes a gofmt-formatted Go source file declaring the table as an
// array of hexadecimal bit-pattern literals. Decimal literals are never
// emitted, so the compiled constant equals the generated value bit for bit.
func Emit(w io.Writer, opts EmitOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	bits, err := GenerateBits(opts.SampleCount, opts.Precision)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	writeHeader(&buf, opts)
	writeArray(&buf, opts, bits)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format generated source: %w", err)
	}

	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("failed to write generated source: %w", err)
	}
	return nil
}

func writeHeader(buf *bytes.Buffer, opts EmitOptions) {
	if opts.Args == "" {
		fmt.Fprintf(buf, "// Code generated by %s; DO NOT EDIT.\n\n", generatorName)
	} else {
		fmt.Fprintf(buf, "// Code generated by \"%s %s\"; DO NOT EDIT.\n\n", generatorName, opts.Args)
	}
	fmt.Fprintf(buf, "package %s\n\n", opts.Package)
}

func writeArray(buf *bytes.Buffer, opts EmitOptions, bits []uint64) {
	n := opts.SampleCount
	layout := layoutFor(opts.Precision)

	fmt.Fprintf(buf, "// %s holds sin(i·(π/2)/%d) for i in [0, %d) as IEEE-754 %s bit patterns.\n",
		opts.Name, n, n, layout.ieeeName)
	fmt.Fprintf(buf, "var %s = [%d]%s{\n", opts.Name, n, layout.goType)

	literals := make([]string, 0, layout.perLine)
	for i, b := range bits {
		literals = append(literals, fmt.Sprintf(layout.literal, b))
		if len(literals) == layout.perLine || i == len(bits)-1 {
			buf.WriteString("\t" + strings.Join(literals, ", ") + ",\n")
			literals = literals[:0]
		}
	}
	buf.WriteString("}\n")
}

// arrayLayout controls how one precision is rendered in Go source.
type arrayLayout struct {
	goType   string
	ieeeName string
	literal  string
	perLine  int
}

func layoutFor(p floatops.Precision) arrayLayout {
	if p == floatops.Single {
		return arrayLayout{goType: "uint32", ieeeName: "binary32", literal: "0x%08x", perLine: literalsPerLineSingle}
	}
	return arrayLayout{goType: "uint64", ieeeName: "binary64", literal: "0x%016x", perLine: literalsPerLineDouble}
}

// EmitBinary writes the table as concatenated big-endian IEEE-754 bit
// patterns, the encoding engine.Load decodes.
func EmitBinary(w io.Writer, n int, p floatops.Precision) error {
	bits, err := GenerateBits(n, p)
	if err != nil {
		return err
	}

	data, err := codec.EncodeBits(bits, p)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write encoded table: %w", err)
	}
	return nil
}
