// SPDX-License-Identifier: MIT

package worksheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Format names a worksheet encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
	HCL  Format = "hcl"
)

// FormatOf maps a file extension to its Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".hcl":
		return HCL, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads path and decodes it with the decoder its extension selects.
func Load(path string) (*Worksheet, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	ws, err := decode(format, filepath.Base(path), src)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}

	return ws, nil
}

// Decode decodes src in the given format and validates every problem.
func Decode(format Format, src []byte) (*Worksheet, error) {
	ws, err := decode(format, "worksheet."+string(format), src)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	return ws, nil
}

func decode(format Format, filename string, src []byte) (*Worksheet, error) {
	var (
		doc fileDoc
		err error
	)
	switch format {
	case TOML:
		err = decodeTOML(src, &doc)
	case YAML:
		err = decodeYAML(src, &doc)
	case HCL:
		err = decodeHCL(filename, src, &doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}

	return doc.build()
}

func decodeTOML(src []byte, doc *fileDoc) error {
	md, err := toml.Decode(string(src), doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalidField, keys[0].String())
	}

	return nil
}

func decodeYAML(src []byte, doc *fileDoc) error {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return nil
}

// evalContext exposes the constants pi and e to HCL expressions.
var evalContext = &hcl.EvalContext{
	Variables: map[string]cty.Value{
		"pi": cty.NumberFloatVal(math.Pi),
		"e":  cty.NumberFloatVal(math.E),
	},
}

func decodeHCL(filename string, src []byte, doc *fileDoc) error {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("%w: %w", ErrDecode, diags)
	}
	if diags = gohcl.DecodeBody(file.Body, evalContext, doc); diags.HasErrors() {
		return fmt.Errorf("%w: %w", ErrDecode, diags)
	}

	return nil
}

// fileDoc is the on-disk shape shared by all three formats.
type fileDoc struct {
	Name     string        `toml:"name" yaml:"name" hcl:"name,optional"`
	Defaults *defaultsDoc  `toml:"defaults" yaml:"defaults" hcl:"defaults,block"`
	Problems []*problemDoc `toml:"problem" yaml:"problems" hcl:"problem,block"`
}

type defaultsDoc struct {
	Tolerance *float64 `toml:"tolerance" yaml:"tolerance" hcl:"tolerance,optional"`
	MaxIter   *int     `toml:"max_iter" yaml:"max_iter" hcl:"max_iter,optional"`
	Pivoting  *bool    `toml:"pivoting" yaml:"pivoting" hcl:"pivoting,optional"`
}

type problemDoc struct {
	Name     string `toml:"name" yaml:"name" hcl:"name,label"`
	Kind     string `toml:"kind" yaml:"kind" hcl:"kind,optional"`
	Value    string `toml:"value" yaml:"value" hcl:"value,optional"`
	Function string `toml:"function" yaml:"function" hcl:"function,optional"`

	A  *float64 `toml:"a" yaml:"a" hcl:"a,optional"`
	B  *float64 `toml:"b" yaml:"b" hcl:"b,optional"`
	X0 *float64 `toml:"x0" yaml:"x0" hcl:"x0,optional"`
	X  *float64 `toml:"x" yaml:"x" hcl:"x,optional"`

	Tolerance *float64 `toml:"tolerance" yaml:"tolerance" hcl:"tolerance,optional"`
	MaxIter   *int     `toml:"max_iter" yaml:"max_iter" hcl:"max_iter,optional"`
	Pivoting  *bool    `toml:"pivoting" yaml:"pivoting" hcl:"pivoting,optional"`

	Matrix string `toml:"matrix" yaml:"matrix" hcl:"matrix,optional"`
	RHS    string `toml:"rhs" yaml:"rhs" hcl:"rhs,optional"`
	Points string `toml:"points" yaml:"points" hcl:"points,optional"`

	Model  string `toml:"model" yaml:"model" hcl:"model,optional"`
	Degree int    `toml:"degree" yaml:"degree" hcl:"degree,optional"`
	Rule   string `toml:"rule" yaml:"rule" hcl:"rule,optional"`
	N      int    `toml:"n" yaml:"n" hcl:"n,optional"`
	Terms  int    `toml:"terms" yaml:"terms" hcl:"terms,optional"`
}

func (f *fileDoc) build() (*Worksheet, error) {
	ws := &Worksheet{Name: f.Name, Defaults: DefaultDefaults()}
	if d := f.Defaults; d != nil {
		if d.Tolerance != nil {
			ws.Defaults.Tolerance = *d.Tolerance
		}
		if d.MaxIter != nil {
			ws.Defaults.MaxIter = *d.MaxIter
		}
		if d.Pivoting != nil {
			ws.Defaults.Pivoting = *d.Pivoting
		}
	}

	ws.Problems = make([]Problem, 0, len(f.Problems))
	for i, ps := range f.Problems {
		p, err := ps.build()
		if err != nil {
			return nil, fmt.Errorf("problem %d %q: %w", i, ps.Name, err)
		}
		ws.Problems = append(ws.Problems, p)
	}

	return ws, nil
}

func (s *problemDoc) build() (Problem, error) {
	if strings.TrimSpace(s.Name) == "" {
		return Problem{}, fmt.Errorf("%w: name", ErrMissingField)
	}
	if strings.TrimSpace(s.Kind) == "" {
		return Problem{}, fmt.Errorf("%w: kind", ErrMissingField)
	}
	kind, err := ParseKind(s.Kind)
	if err != nil {
		return Problem{}, err
	}

	p := Problem{
		Name: s.Name, Kind: kind,
		Value: s.Value, Function: s.Function,
		A: s.A, B: s.B, X0: s.X0, X: s.X,
		Tolerance: s.Tolerance, MaxIter: s.MaxIter, Pivoting: s.Pivoting,
		Matrix: s.Matrix, RHS: s.RHS, Points: s.Points,
		Degree: s.Degree, N: s.N,
		Terms: s.Terms,
	}
	if kind == KindLSQ && strings.TrimSpace(s.Model) != "" {
		if p.Model, err = ParseModel(s.Model); err != nil {
			return Problem{}, err
		}
	}
	if kind == KindQuad && strings.TrimSpace(s.Rule) != "" {
		if p.Rule, err = ParseRule(s.Rule); err != nil {
			return Problem{}, err
		}
	}
	if err = p.validate(); err != nil {
		return Problem{}, err
	}

	return p, nil
}

// validate checks that p names a known kind, carries every field the kind
// requires and, for lsq and quad, selects a known model or rule.
func (p *Problem) validate() error {
	if p.Kind <= KindInvalid || int(p.Kind) >= len(kindNames) {
		return fmt.Errorf("%w: %s", ErrUnknownKind, p.Kind)
	}
	if err := p.require(); err != nil {
		return err
	}
	switch {
	case p.Kind == KindLSQ && (p.Model < ModelLinear || int(p.Model) >= len(modelNames)):
		return fmt.Errorf("%w: model %s", ErrInvalidField, p.Model)
	case p.Kind == KindQuad && (p.Rule < RuleTrapezoid || int(p.Rule) >= len(ruleNames)):
		return fmt.Errorf("%w: rule %s", ErrInvalidField, p.Rule)
	}

	return nil
}

// require lists every field p's kind needs but lacks.
func (p *Problem) require() error {
	var missing []string
	need := func(name string, present bool) {
		if !present {
			missing = append(missing, name)
		}
	}

	switch p.Kind {
	case KindFloat:
		need("value", p.Value != "")
	case KindBisection:
		need("function", p.Function != "")
		need("a", p.A != nil)
		need("b", p.B != nil)
	case KindNewton:
		need("function", p.Function != "")
		need("x0", p.X0 != nil)
	case KindGauss:
		need("matrix", p.Matrix != "")
		need("rhs", p.RHS != "")
	case KindLagrange:
		need("points", p.Points != "")
	case KindLSQ:
		need("points", p.Points != "")
		need("model", p.Model != ModelInvalid)
	case KindQuad:
		need("function", p.Function != "")
		need("a", p.A != nil)
		need("b", p.B != nil)
		need("rule", p.Rule != RuleInvalid)
		need("n", p.N != 0)
	case KindTaylor:
		need("function", p.Function != "")
		need("x", p.X != nil)
		need("terms", p.Terms != 0)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	return nil
}
