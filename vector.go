package bigint

import (
	"fmt"
	"math/bits"
)

// vec is a two's-complement integer stored as a little-endian sequence of
// 64-bit limbs, so vec[0] is the least significant limb.
// The top bit of the last limb is the sign bit.
//
// A vec is never written after it has been returned by one of the methods
// below, which allows several values to share the same backing array.
// Every method that produces a vec allocates a fresh one.
type vec []uint64

const (
	wordBits  = 64           // width of a limb in bits
	hexDigits = wordBits / 4 // width of a limb in hexadecimal digits
)

var (
	vecZero = vec{0}
	vecOne  = vec{1}
)

// check panics if x is empty.
func (x vec) check(op string) {
	if len(x) == 0 {
		panic(fmt.Sprintf("%v() failed: %v", op, errEmptyVector))
	}
}

// msw returns the most significant word of x.
func (x vec) msw() uint64 {
	x.check("msw")
	return x[len(x)-1]
}

// signExt returns the word that extends w to the left without changing
// its two's-complement value.
func signExt(w uint64) uint64 {
	return uint64(int64(w) >> (wordBits - 1))
}

func (x vec) isNeg() bool {
	return x.msw()>>(wordBits-1) == 1
}

// fill returns 0 if x is non-negative and all ones otherwise.
func (x vec) fill() uint64 {
	return signExt(x.msw())
}

func (x vec) isZero() bool {
	if x.msw() != 0 {
		return false
	}
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

// width returns the current, not the minimal, width of x in bits.
func (x vec) width() int {
	return len(x) * wordBits
}

// bit returns bit i of the infinite two's-complement expansion of x.
func (x vec) bit(i uint) uint {
	k := i / wordBits
	if k >= uint(len(x)) {
		return uint(x.fill() & 1)
	}
	return uint(x[k]>>(i%wordBits)) & 1
}

// bitLen returns the length of a non-negative x in bits.
func (x vec) bitLen() int {
	x = x.norm()
	return (len(x)-1)*wordBits + bits.Len64(x.msw())
}

// grow returns a copy of x extended with its fill word to at least n limbs.
// The copy has room for one more limb.
func (x vec) grow(n int) vec {
	f := x.fill()
	if n < len(x) {
		n = len(x)
	}
	z := make(vec, n, n+1)
	copy(z, x)
	for i := len(x); i < n; i++ {
		z[i] = f
	}
	return z
}

// norm drops the most significant limbs that only repeat the sign.
// At least one limb is always kept.
func (x vec) norm() vec {
	x.check("norm")
	n := len(x)
	for n > 1 && x[n-1] == signExt(x[n-2]) {
		n--
	}
	return x[:n:n]
}

func (x vec) clone() vec {
	x.check("clone")
	z := make(vec, len(x))
	copy(z, x)
	return z
}

// add returns x + y.
func (x vec) add(y vec) vec {
	xneg, yneg := x.isNeg(), y.isNeg()
	xf, yf := x.fill(), y.fill()
	z := x.grow(len(y))
	var carry uint64
	for i := range z {
		w := yf
		if i < len(y) {
			w = y[i]
		}
		z[i], carry = bits.Add64(z[i], w, carry)
	}
	// Operands of different signs can not overflow.
	if xneg == yneg && z.isNeg() != xneg {
		z = append(z, xf)
	}
	return z
}

// sub returns x - y.
func (x vec) sub(y vec) vec {
	return x.add(y.neg())
}

// neg returns -x.
// Negating the minimum value of a given width grows it by one limb.
func (x vec) neg() vec {
	return x.not().add(vecOne)
}

// not returns ^x.
func (x vec) not() vec {
	x.check("not")
	z := make(vec, len(x))
	for i, w := range x {
		z[i] = ^w
	}
	return z
}

func andWord(a, b uint64) uint64 { return a & b }
func orWord(a, b uint64) uint64  { return a | b }
func xorWord(a, b uint64) uint64 { return a ^ b }

// combine applies op limb by limb.
// The shorter operand is extended with its own fill word, so the result
// is never narrower than the wider operand.
func (x vec) combine(y vec, op func(a, b uint64) uint64) vec {
	xf, yf := x.fill(), y.fill()
	z := make(vec, max(len(x), len(y)))
	for i := range z {
		a, b := xf, yf
		if i < len(x) {
			a = x[i]
		}
		if i < len(y) {
			b = y[i]
		}
		z[i] = op(a, b)
	}
	return z
}

func (x vec) and(y vec) vec { return x.combine(y, andWord) }
func (x vec) or(y vec) vec  { return x.combine(y, orWord) }
func (x vec) xor(y vec) vec { return x.combine(y, xorWord) }

// lsh returns x << n.
func (x vec) lsh(n uint) vec {
	f := x.fill()
	k, s := int(n/wordBits), n%wordBits
	z := make(vec, k, k+len(x)+1)
	z = append(z, x...)
	if s == 0 {
		return z
	}
	var carry uint64
	for i := k; i < len(z); i++ {
		w := z[i]
		z[i] = w<<s | carry
		carry = w >> (wordBits - s)
	}
	// The limb above the current top holds the bits shifted out of it
	// followed by the sign. It is needed only if the new top limb
	// does not already imply it.
	if top := carry | f<<s; top != signExt(z[len(z)-1]) {
		z = append(z, top)
	}
	return z
}

// rsh returns x >> n, rounding towards negative infinity.
func (x vec) rsh(n uint) vec {
	f := x.fill()
	if n/wordBits >= uint(len(x)) {
		return vec{f}
	}
	k, s := int(n/wordBits), n%wordBits
	z := make(vec, len(x)-k, len(x)-k+1)
	copy(z, x[k:])
	if s == 0 {
		return z.norm()
	}
	z = append(z, f)
	for i := 0; i < len(z)-1; i++ {
		z[i] = z[i]>>s | z[i+1]<<(wordBits-s)
	}
	return z.norm()
}

// mul returns x * y.
func (x vec) mul(y vec) vec {
	if y.isNeg() {
		x, y = x.neg(), y.neg()
	}
	z := vecZero
	n := y.bitLen()
	for i := 0; i < n; i++ {
		if y.bit(uint(i)) == 1 {
			z = z.add(x)
		}
		x = x.lsh(1)
	}
	return z
}

// quoRem returns the quotient q = x / y truncated towards zero and
// the remainder r = x - y * q, which has the sign of x.
func quoRem(x, y vec) (q, r vec, err error) {
	if y.isZero() {
		return nil, nil, errDivisionByZero
	}
	xneg, yneg := x.isNeg(), y.isNeg()
	if xneg {
		x = x.neg()
	}
	if yneg {
		y = y.neg()
	}

	// Largest power-of-two multiple of the divisor
	d, m := y, vecOne
	for d.cmp(x) <= 0 {
		d, m = d.lsh(1), m.lsh(1)
	}

	// Long division
	q, r = vecZero, x
	for !m.isZero() {
		for !m.isZero() && d.cmp(r) > 0 {
			d, m = d.rsh(1), m.rsh(1)
		}
		if m.isZero() {
			break
		}
		r = r.sub(d)
		q = q.add(m)
	}

	// Signs
	if xneg {
		r = r.neg()
	}
	if xneg != yneg {
		q = q.neg()
	}
	return q.norm(), r.norm(), nil
}

func (x vec) cmp(y vec) int {
	xneg, yneg := x.isNeg(), y.isNeg()
	switch {
	case xneg && !yneg:
		return -1
	case !xneg && yneg:
		return 1
	}
	f := x.fill()
	for i := max(len(x), len(y)) - 1; i >= 0; i-- {
		a, b := f, f
		if i < len(x) {
			a = x[i]
		}
		if i < len(y) {
			b = y[i]
		}
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	return 0
}

func (x vec) eq(y vec) bool {
	if x.isNeg() != y.isNeg() {
		return false
	}
	f := x.fill()
	for i := 0; i < max(len(x), len(y)); i++ {
		a, b := f, f
		if i < len(x) {
			a = x[i]
		}
		if i < len(y) {
			b = y[i]
		}
		if a != b {
			return false
		}
	}
	return true
}

// appendHex appends the hexadecimal digits of every limb of x,
// most significant limb first, each padded to its full width.
func (x vec) appendHex(buf []byte, upper bool) []byte {
	x.check("appendHex")
	digits := "0123456789abcdef"
	if upper {
		digits = "0123456789ABCDEF"
	}
	for i := len(x) - 1; i >= 0; i-- {
		w := x[i]
		for j := hexDigits - 1; j >= 0; j-- {
			buf = append(buf, digits[(w>>(4*j))&0xf])
		}
	}
	return buf
}
