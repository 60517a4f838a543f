package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	intpoly "github.com/crate-crypto/go-int-poly"
	log "github.com/sirupsen/logrus"
	"github.com/ugorji/go/codec"
	"gopkg.in/yaml.v2"
)

var (
	ErrUnnamedStep       = errors.New("step has no name")
	ErrUnknownPolynomial = errors.New("unknown polynomial")
	ErrInvalidOperand    = errors.New("operand must be a polynomial name, an integer or a coefficient list")
)

// Worksheet is a set of named polynomials and the steps evaluated on them.
//
//	polynomials:
//	  p: [1, 2, 4]
//	steps:
//	  - name: doubled
//	    op: mul
//	    lhs: 2
//	    rhs: p
type Worksheet struct {
	Polynomials map[string]*intpoly.Polynomial `yaml:"polynomials"`
	Steps       []Step                         `yaml:"steps"`
}

// Step is one operation. Operands are polynomial names, integer literals or
// inline coefficient lists.
type Step struct {
	Name string        `yaml:"name"`
	Op   string        `yaml:"op"`
	Lhs  interface{}   `yaml:"lhs"`
	Rhs  interface{}   `yaml:"rhs"`
	Args []interface{} `yaml:"args"`
	At   int64         `yaml:"at"`
}

// Result is the outcome of a step. Exactly one of Polynomial and Value is set.
type Result struct {
	Name       string
	Polynomial *intpoly.Polynomial
	Value      interface{}
}

// LoadWorksheet reads and decodes a worksheet file.
func LoadWorksheet(path string) (*Worksheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseWorksheet(data)
}

// ParseWorksheet decodes a worksheet from YAML.
func ParseWorksheet(data []byte) (*Worksheet, error) {
	var sheet Worksheet
	if err := yaml.UnmarshalStrict(data, &sheet); err != nil {
		return nil, fmt.Errorf("could not decode worksheet: %w", err)
	}
	if sheet.Polynomials == nil {
		sheet.Polynomials = make(map[string]*intpoly.Polynomial)
	}
	for name, p := range sheet.Polynomials {
		if p == nil {
			return nil, fmt.Errorf("%w: polynomial %q is null", ErrInvalidOperand, name)
		}
	}
	return &sheet, nil
}

// Evaluate runs the steps in order. Every polynomial result is stored under
// the step name and can be referenced by later steps.
func (w *Worksheet) Evaluate(workers int) ([]Result, error) {
	env := make(map[string]*intpoly.Polynomial, len(w.Polynomials)+len(w.Steps))
	for name, p := range w.Polynomials {
		env[name] = p
	}

	results := make([]Result, 0, len(w.Steps))
	for i, step := range w.Steps {
		stepLog := log.WithFields(log.Fields{
			"index": i,
			"step":  step.Name,
			"op":    step.Op,
		})
		if step.Name == "" {
			return nil, fmt.Errorf("step %d: %w", i, ErrUnnamedStep)
		}

		stepLog.Debug("Evaluating step")
		result, err := step.evaluate(env, workers)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", step.Name, err)
		}
		if result.Polynomial != nil {
			env[step.Name] = result.Polynomial
			stepLog.WithField("degree", result.Polynomial.Degree()).Trace("Stored result")
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *Step) evaluate(env map[string]*intpoly.Polynomial, workers int) (Result, error) {
	result := Result{Name: s.Name}

	switch s.Op {
	case "neg", "eval", "evalfield":
		p, err := resolvePolynomial(env, s.Lhs)
		if err != nil {
			return result, err
		}
		switch s.Op {
		case "neg":
			result.Polynomial = p.Neg()
		case "eval":
			result.Value = p.Eval(s.At)
		default:
			var z fr.Element
			z.SetInt64(s.At)
			eval := p.EvalField(z)
			result.Value = eval.String()
		}

	case "eq":
		lhs, err := resolve(env, s.Lhs)
		if err != nil {
			return result, err
		}
		rhs, err := resolve(env, s.Rhs)
		if err != nil {
			return result, err
		}
		eq, err := intpoly.Equal(lhs, rhs)
		if err != nil {
			return result, err
		}
		result.Value = eq

	case "product":
		polys := make([]*intpoly.Polynomial, len(s.Args))
		for i, arg := range s.Args {
			p, err := resolvePolynomial(env, arg)
			if err != nil {
				return result, err
			}
			polys[i] = p
		}
		product, err := intpoly.Product(polys, workers)
		if err != nil {
			return result, err
		}
		result.Polynomial = product

	default:
		lhs, err := resolve(env, s.Lhs)
		if err != nil {
			return result, err
		}
		rhs, err := resolve(env, s.Rhs)
		if err != nil {
			return result, err
		}
		p, err := intpoly.Apply(intpoly.Op(s.Op), lhs, rhs)
		if err != nil {
			return result, err
		}
		result.Polynomial = p
	}
	return result, nil
}

// resolve turns a YAML operand into an int or a *intpoly.Polynomial.
func resolve(env map[string]*intpoly.Polynomial, node interface{}) (interface{}, error) {
	switch node := node.(type) {
	case string:
		p, ok := env[node]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPolynomial, node)
		}
		if p == nil {
			return nil, fmt.Errorf("%w: polynomial %q is null", ErrInvalidOperand, node)
		}
		return p, nil
	case int:
		return node, nil
	case []interface{}:
		p, err := intpoly.FromValue(toInts(node))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOperand, err)
		}
		return p, nil
	}
	return nil, fmt.Errorf("%w, got %T", ErrInvalidOperand, node)
}

func resolvePolynomial(env map[string]*intpoly.Polynomial, node interface{}) (*intpoly.Polynomial, error) {
	v, err := resolve(env, node)
	if err != nil {
		return nil, err
	}
	p, ok := v.(*intpoly.Polynomial)
	if !ok {
		return nil, fmt.Errorf("%w: expected Polynomial, got %T", intpoly.ErrInvalidArgumentType, v)
	}
	return p, nil
}

// toInts converts a YAML sequence to []int when every element is an int.
// Otherwise the sequence is returned unchanged so FromValue rejects it.
func toInts(seq []interface{}) interface{} {
	ints := make([]int, len(seq))
	for i, v := range seq {
		n, ok := v.(int)
		if !ok {
			return seq
		}
		ints[i] = n
	}
	return ints
}

// Format renders the result in one of the output formats.
// The msgpack format is hex encoded.
func (r *Result) Format(format string) (string, error) {
	if r.Polynomial == nil {
		switch format {
		case FormatJSON:
			out, err := json.Marshal(r.Value)
			return string(out), err
		case FormatMsgpack:
			var out []byte
			if err := codec.NewEncoderBytes(&out, new(codec.MsgpackHandle)).Encode(r.Value); err != nil {
				return "", err
			}
			return hex.EncodeToString(out), nil
		}
		return fmt.Sprint(r.Value), nil
	}

	switch format {
	case FormatMsgpack:
		out, err := r.Polynomial.EncodeMsgpack()
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(out), nil
	case FormatLaTeX:
		return r.Polynomial.LaTeX(), nil
	case FormatRepr:
		return r.Polynomial.GoString(), nil
	case FormatJSON:
		out, err := json.Marshal(r.Polynomial)
		return string(out), err
	default:
		return r.Polynomial.String(), nil
	}
}
