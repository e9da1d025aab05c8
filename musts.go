package bigint

import "fmt"

// MustQuo is like [Int.Quo] but panics if computing error.
func (x Int) MustQuo(y Int) Int {
	q, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", x, err))
	}
	return q
}

// MustRem is like [Int.Rem] but panics if computing error.
func (x Int) MustRem(y Int) Int {
	r, err := x.Rem(y)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", x, err))
	}
	return r
}

// MustQuoRem is like [Int.QuoRem] but panics if computing error.
func (x Int) MustQuoRem(y Int) (Int, Int) {
	q, r, err := x.QuoRem(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuoRem(%v) failed: %v", x, err))
	}
	return q, r
}
