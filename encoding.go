package intpoly

import (
	"encoding/json"
	"fmt"

	"github.com/ugorji/go/codec"
)

// msgpackHandle is shared by all encoders; codec handles are safe for
// concurrent use once configured.
var msgpackHandle = func() *codec.MsgpackHandle {
	h := new(codec.MsgpackHandle)
	h.WriteExt = true
	h.Canonical = true
	return h
}()

// MarshalJSON encodes the coefficients as a JSON array, highest degree first.
func (p *Polynomial) MarshalJSON() ([]byte, error) {
	return json.Marshal([]int64(p.raw()))
}

// UnmarshalJSON decodes a JSON array of integers and normalizes it.
func (p *Polynomial) UnmarshalJSON(data []byte) error {
	var coeffs []int64
	if err := json.Unmarshal(data, &coeffs); err != nil {
		return fmt.Errorf("could not decode polynomial coefficients: %w", err)
	}
	*p = *newOwned(coeffs)
	return nil
}

// MarshalYAML encodes the coefficients as a YAML sequence.
func (p *Polynomial) MarshalYAML() (interface{}, error) {
	return []int64(p.raw()), nil
}

// UnmarshalYAML decodes a YAML sequence of integers and normalizes it.
func (p *Polynomial) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var coeffs []int64
	if err := unmarshal(&coeffs); err != nil {
		return fmt.Errorf("could not decode polynomial coefficients: %w", err)
	}
	*p = *newOwned(coeffs)
	return nil
}

// EncodeMsgpack encodes the coefficients as a msgpack array.
func (p *Polynomial) EncodeMsgpack() ([]byte, error) {
	var out []byte
	enc := codec.NewEncoderBytes(&out, msgpackHandle)
	if err := enc.Encode([]int64(p.raw())); err != nil {
		return nil, fmt.Errorf("could not encode polynomial: %w", err)
	}
	return out, nil
}

// DecodeMsgpack decodes a msgpack array of integers into a normalized
// polynomial.
func DecodeMsgpack(data []byte) (*Polynomial, error) {
	var coeffs []int64
	dec := codec.NewDecoderBytes(data, msgpackHandle)
	if err := dec.Decode(&coeffs); err != nil {
		return nil, fmt.Errorf("could not decode polynomial: %w", err)
	}
	return newOwned(coeffs), nil
}
