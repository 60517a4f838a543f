package intpoly_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	intpoly "github.com/crate-crypto/go-int-poly"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

var arithmeticVectors = filepath.Join("testdata", "arithmetic_vectors.yaml")

func TestArithmeticVectors(t *testing.T) {
	type Test struct {
		Name     string              `yaml:"name"`
		Op       string              `yaml:"op"`
		Lhs      interface{}         `yaml:"lhs"`
		Rhs      interface{}         `yaml:"rhs"`
		Output   *intpoly.Polynomial `yaml:"output"`
		Rendered string              `yaml:"rendered"`
	}

	testFile, err := os.Open(arithmeticVectors)
	require.NoError(t, err)
	defer testFile.Close()

	var tests []Test
	err = yaml.NewDecoder(testFile).Decode(&tests)
	require.NoError(t, err)
	require.True(t, len(tests) > 0)

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			lhs, err := operandFromYAML(test.Lhs)
			require.NoError(t, err)

			var got *intpoly.Polynomial
			if test.Op == "neg" {
				p, ok := lhs.(*intpoly.Polynomial)
				require.True(t, ok)
				got = p.Neg()
			} else {
				rhs, err := operandFromYAML(test.Rhs)
				require.NoError(t, err)
				got, err = intpoly.Apply(intpoly.Op(test.Op), lhs, rhs)
				require.NoError(t, err)
			}

			require.NotNil(t, test.Output)
			require.Equal(t, test.Output.Coefficients(), got.Coefficients())
			require.Equal(t, test.Rendered, got.String())
		})
	}
}

// operandFromYAML turns a decoded YAML node into an int or a polynomial.
func operandFromYAML(node interface{}) (any, error) {
	switch node := node.(type) {
	case int:
		return node, nil
	case []interface{}:
		coeffs := make([]int64, len(node))
		for i, c := range node {
			n, ok := c.(int)
			if !ok {
				return nil, fmt.Errorf("coefficient %d is %T, not an integer", i, c)
			}
			coeffs[i] = int64(n)
		}
		return intpoly.New(coeffs...), nil
	}
	return nil, fmt.Errorf("unsupported operand %T", node)
}
