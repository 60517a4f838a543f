package intpoly_test

import (
	"fmt"

	intpoly "github.com/crate-crypto/go-int-poly"
)

func Example() {
	p := intpoly.New(1, 2, 4)
	q := intpoly.New(-1, 2, 4)

	fmt.Println(p.Add(q))
	fmt.Println(p.Sub(p))
	fmt.Println(p.Mul(intpoly.Int(-1)))
	fmt.Printf("%#v\n", p)
	// Output:
	// 4x + 8
	// 0
	// -x^2 - 2x - 4
	// Polynomial([1, 2, 4])
}

func ExamplePolynomial_Mul() {
	p := intpoly.New(3, 0, 0)
	q := intpoly.New(4, -5, 7)
	fmt.Println(p.Mul(q))
	// Output: 12x^4 - 15x^3 + 21x^2
}

func ExampleIntSub() {
	p := intpoly.New(1, 2, 4)
	fmt.Println(intpoly.IntSub(1, p).Coefficients())
	// Output: [-1 -2 -3]
}

func ExampleApply() {
	sum, err := intpoly.Apply(intpoly.OpAdd, -1, intpoly.New(1, 2, 4))
	if err != nil {
		panic(err)
	}
	fmt.Println(sum)

	_, err = intpoly.Apply(intpoly.OpAdd, intpoly.New(1), "x")
	fmt.Println(err)
	// Output:
	// x^2 + 2x + 3
	// incorrect argument type: add expected int or Polynomial, got string
}

func ExampleProduct() {
	roots := []*intpoly.Polynomial{intpoly.New(1, -1), intpoly.New(1, -2), intpoly.New(1, -3)}
	product, err := intpoly.Product(roots, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(product)
	// Output: x^3 - 6x^2 + 11x - 6
}
