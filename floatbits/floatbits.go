// SPDX-License-Identifier: MIT

package floatbits

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/numerics/internal/textfmt"
)

// Precision selects an IEEE-754 binary interchange format.
type Precision int

const (
	// Single is binary32: 1 sign, 8 exponent, 23 mantissa bits.
	Single Precision = iota
	// Double is binary64: 1 sign, 11 exponent, 52 mantissa bits.
	Double
)

func (p Precision) String() string {
	if p == Single {
		return "single"
	}

	return "double"
}

// layout returns exponent width, mantissa width and bias.
func (p Precision) layout() (expBits, manBits, bias int) {
	if p == Single {
		return 8, 23, 127
	}

	return 11, 52, 1023
}

// Class is the IEEE-754 category of an encoded value.
type Class int

const (
	Zero Class = iota
	Subnormal
	Normal
	Infinite
	NaN
)

func (c Class) String() string {
	switch c {
	case Zero:
		return "zero"
	case Subnormal:
		return "subnormal"
	case Normal:
		return "normal"
	case Infinite:
		return "infinite"
	default:
		return "nan"
	}
}

// FloatBits is one precision's encoding of the analysed value.
type FloatBits struct {
	Precision Precision
	Sign      string // 1 bit
	Exponent  string // 8 or 11 bits, biased
	Mantissa  string // 23 or 52 bits, implicit leading bit omitted
	Raw       uint64 // the full pattern, right aligned
	Hex       string // Raw as 0x-prefixed, zero padded
	Bias      int

	// UnbiasedExponent is e−bias for normals and 1−bias for subnormals,
	// 0 for the reserved classes.
	UnbiasedExponent int
	Class            Class

	// Reconstructed is rebuilt from the three bit strings only.
	Reconstructed float64
	// Error is input − Reconstructed; 0 when both are the same infinity,
	// NaN when the input is NaN.
	Error float64
}

// Analysis holds both encodings of one input.
type Analysis struct {
	Input  string  // the text as given
	Value  float64 // the parsed double
	Single FloatBits
	Double FloatBits
}

// Decompose parses text and encodes it in single and double precision.
//
// Errors:
//   - ErrInvalidInput if text is not a float literal. Out-of-range literals
//     are not errors: they parse to ±Inf.
func Decompose(text string) (*Analysis, error) {
	s := strings.TrimSpace(text)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInput, text)
	}

	return &Analysis{
		Input:  text,
		Value:  v,
		Single: encode(uint64(math.Float32bits(float32(v))), Single, v),
		Double: encode(math.Float64bits(v), Double, v),
	}, nil
}

// encode splits raw into its fields and reconstructs the value independently.
func encode(raw uint64, p Precision, input float64) FloatBits {
	expBits, manBits, bias := p.layout()
	total := 1 + expBits + manBits
	bits := fmt.Sprintf("%0*b", total, raw)

	fb := FloatBits{
		Precision: p,
		Sign:      bits[:1],
		Exponent:  bits[1 : 1+expBits],
		Mantissa:  bits[1+expBits:],
		Raw:       raw,
		Hex:       fmt.Sprintf("0x%0*X", total/4, raw),
		Bias:      bias,
	}
	fb.Reconstructed, fb.Class, fb.UnbiasedExponent = reconstruct(fb.Sign, fb.Exponent, fb.Mantissa, p)

	switch {
	case math.IsNaN(input):
		fb.Error = math.NaN()
	case input == fb.Reconstructed:
		fb.Error = 0
	default:
		fb.Error = input - fb.Reconstructed
	}

	return fb
}

// reconstruct evaluates the bit strings by the IEEE-754 formulas.
func reconstruct(sign, exponent, mantissa string, p Precision) (float64, Class, int) {
	expBits, manBits, bias := p.layout()
	e, _ := strconv.ParseUint(exponent, 2, 64)
	m, _ := strconv.ParseUint(mantissa, 2, 64)
	neg := sign == "1"
	maxExp := uint64(1)<<expBits - 1

	var (
		v     float64
		class Class
		unb   int
	)
	switch {
	case e == maxExp && m != 0:
		return math.NaN(), NaN, 0
	case e == maxExp:
		v, class = math.Inf(1), Infinite
	case e == 0 && m == 0:
		v, class = 0, Zero
	case e == 0:
		// 0.m × 2^(1−bias)
		unb = 1 - bias
		v, class = math.Ldexp(float64(m), unb-manBits), Subnormal
	default:
		// 1.m × 2^(e−bias)
		unb = int(e) - bias
		v, class = math.Ldexp(float64(m|1<<manBits), unb-manBits), Normal
	}
	if neg {
		v = math.Copysign(v, -1)
	}

	return v, class, unb
}

// Report renders both encodings side by side.
func (a *Analysis) Report() string {
	row := func(label string, f func(FloatBits) string) []string {
		return []string{label, f(a.Single), f(a.Double)}
	}
	rows := [][]string{
		row("sign", func(b FloatBits) string { return b.Sign }),
		row("exponent", func(b FloatBits) string { return b.Exponent }),
		row("mantissa", func(b FloatBits) string { return b.Mantissa }),
		row("hex", func(b FloatBits) string { return b.Hex }),
		row("class", func(b FloatBits) string { return b.Class.String() }),
		row("bias", func(b FloatBits) string { return textfmt.I(b.Bias) }),
		row("exponent − bias", func(b FloatBits) string { return textfmt.I(b.UnbiasedExponent) }),
		row("reconstructed", func(b FloatBits) string { return strconv.FormatFloat(b.Reconstructed, 'g', 17, 64) }),
		row("error", func(b FloatBits) string { return textfmt.E(b.Error, 6) }),
	}

	var sb strings.Builder
	sb.WriteString(textfmt.Section("IEEE-754 decomposition of " + strings.TrimSpace(a.Input)))
	sb.WriteString("\n")
	sb.WriteString(textfmt.Table([]string{"", "single (32-bit)", "double (64-bit)"}, rows))

	return sb.String()
}
